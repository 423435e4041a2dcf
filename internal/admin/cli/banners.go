package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Dowlet20/ecom-admin/internal/admin/screens"
)

const bannerSkeletonRows = 4

// Banners runs the promotional banner screen.
func (a *App) Banners(ctx context.Context) error {
	skeleton(a.out, bannerSkeletonRows)
	if err := a.banners.Fetch(ctx); err == nil {
		a.renderBanners()
	}

	for {
		fmt.Fprint(a.out, "banners> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			fmt.Fprintln(a.out, "Commands: list, add, del <id>, back")

		case "list":
			if err := a.banners.Fetch(ctx); err == nil {
				a.renderBanners()
			}

		case "add":
			a.addBanner(ctx)

		case "del":
			id, ok := parseID(a, parts, "del <id>")
			if !ok {
				continue
			}
			if err := a.banners.Delete(ctx, id); err == nil {
				a.renderBanners()
			}

		case "back":
			return nil

		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}

func (a *App) renderBanners() {
	header(a.out, "Banners")
	for _, b := range a.banners.Items() {
		fmt.Fprintf(a.out, "#%d %s\n", b.ID, b.Description)
		if b.ThumbnailURL != "" {
			fmt.Fprintf(a.out, "   Thumbnail: %s\n", a.api.ImageURL(b.ThumbnailURL))
		}
	}
}

func (a *App) addBanner(ctx context.Context) {
	var form screens.BannerForm

	for {
		var err error
		if form.Description, err = GetTextDefault(a.reader, "Description", form.Description, a.out); err != nil {
			return
		}
		path, err := GetSimpleText(a.reader, "Thumbnail file (required)", a.out)
		if err != nil {
			return
		}
		if path != "" {
			f, err := os.Open(path)
			if err != nil {
				a.notify.Error("Cannot open file: " + err.Error())
				continue
			}
			defer f.Close()
			form.Thumbnail = &screens.FileUpload{Name: f.Name(), Reader: f}
		}

		fieldErrs, err := a.banners.Create(ctx, form)
		if err == nil && fieldErrs == nil {
			return
		}
		for field, msg := range fieldErrs {
			a.notify.Error(field + ": " + msg)
		}
		if !Confirm(a.reader, "Try again?", a.out) {
			return
		}
	}
}
