package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Dowlet20/ecom-admin/internal/admin/screens"
)

const categorySkeletonRows = 8

// Categories runs the category screen.
func (a *App) Categories(ctx context.Context) error {
	skeleton(a.out, categorySkeletonRows)
	if err := a.categories.Fetch(ctx); err == nil {
		a.renderCategories()
	}

	for {
		fmt.Fprint(a.out, "categories> ")
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
			fmt.Fprintln(a.out, "Commands: list, add, del <id>, next, prev, back")

		case "list":
			if err := a.categories.Fetch(ctx); err == nil {
				a.renderCategories()
			}

		case "next":
			if err := a.categories.NextPage(ctx); err == nil {
				a.renderCategories()
			}

		case "prev":
			if err := a.categories.PrevPage(ctx); err == nil {
				a.renderCategories()
			}

		case "add":
			a.addCategory(ctx)

		case "del":
			id, ok := parseID(a, parts, "del <id>")
			if !ok {
				continue
			}
			if err := a.categories.Delete(ctx, id); err == nil {
				a.renderCategories()
			}

		case "back":
			return nil

		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}

func (a *App) renderCategories() {
	header(a.out, "Categories")
	for _, c := range a.categories.Items() {
		fmt.Fprintf(a.out, "#%d %s / %s\n", c.ID, c.Name, c.NameRu)
		if c.ThumbnailURL != "" {
			fmt.Fprintf(a.out, "   Thumbnail: %s\n", a.api.ImageURL(c.ThumbnailURL))
		}
	}
	pageLine(a.out, a.categories.Page(), a.categories.TotalPages())
}

func (a *App) addCategory(ctx context.Context) {
	var form screens.CategoryForm

	for {
		var err error
		if form.Name, err = GetTextDefault(a.reader, "Name (English)", form.Name, a.out); err != nil {
			return
		}
		if form.NameRu, err = GetTextDefault(a.reader, "Name (Russian)", form.NameRu, a.out); err != nil {
			return
		}
		path, err := GetSimpleText(a.reader, "Thumbnail file (optional, Enter to skip)", a.out)
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

		fieldErrs, err := a.categories.Create(ctx, form)
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

// parseID extracts the numeric argument of a two-token command.
func parseID(a *App, parts []string, usage string) (int, bool) {
	if len(parts) != 2 {
		fmt.Fprintln(a.out, "Usage: "+usage)
		return 0, false
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil {
		fmt.Fprintln(a.out, "Usage: "+usage)
		return 0, false
	}
	return id, true
}
