package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Dowlet20/ecom-admin/internal/admin/models"
	"github.com/Dowlet20/ecom-admin/internal/admin/screens"
)

const marketSkeletonRows = 6

// Markets runs the markets screen: a card list with inline field editing.
func (a *App) Markets(ctx context.Context) error {
	skeleton(a.out, marketSkeletonRows)
	if err := a.markets.Fetch(ctx); err == nil {
		a.renderMarkets()
	}

	for {
		fmt.Fprint(a.out, a.marketsPrompt())
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
			fmt.Fprintln(a.out, "Commands: list, add, edit <id> <field>, set <value>, commit, cancel, thumb <id> <file>, del <id>, next, prev, back")

		case "list":
			if err := a.markets.Fetch(ctx); err == nil {
				a.renderMarkets()
			}

		case "next":
			if err := a.markets.NextPage(ctx); err == nil {
				a.renderMarkets()
			}

		case "prev":
			if err := a.markets.PrevPage(ctx); err == nil {
				a.renderMarkets()
			}

		case "add":
			a.addMarket(ctx)

		case "edit":
			if len(parts) != 3 {
				fmt.Fprintln(a.out, "Usage: edit <id> <field>")
				continue
			}
			id, err := strconv.Atoi(parts[1])
			if err != nil {
				fmt.Fprintln(a.out, "Usage: edit <id> <field>")
				continue
			}
			if err := a.markets.StartEdit(id, parts[2]); err != nil {
				a.notify.Error(err.Error())
			}

		case "set":
			if len(parts) < 2 {
				fmt.Fprintln(a.out, "Usage: set <value>")
				continue
			}
			if err := a.markets.SetPending(strings.Join(parts[1:], " ")); err != nil {
				a.notify.Error(err.Error())
			}

		case "commit":
			_ = a.markets.Commit(ctx)

		case "cancel":
			a.markets.Cancel()

		case "thumb":
			if len(parts) != 3 {
				fmt.Fprintln(a.out, "Usage: thumb <id> <file>")
				continue
			}
			id, err := strconv.Atoi(parts[1])
			if err != nil {
				fmt.Fprintln(a.out, "Usage: thumb <id> <file>")
				continue
			}
			a.updateMarketThumbnail(ctx, id, parts[2])

		case "del":
			if len(parts) != 2 {
				fmt.Fprintln(a.out, "Usage: del <id>")
				continue
			}
			id, err := strconv.Atoi(parts[1])
			if err != nil {
				fmt.Fprintln(a.out, "Usage: del <id>")
				continue
			}
			if err := a.markets.Delete(ctx, id); err == nil {
				a.renderMarkets()
			}

		case "back":
			return nil

		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}

func (a *App) marketsPrompt() string {
	if key, ok := a.markets.Editing(); ok {
		pending, _ := a.markets.PendingValue(key.MarketID, key.Field)
		return fmt.Sprintf("markets [editing %d.%s = %q]> ", key.MarketID, key.Field, pending)
	}
	return "markets> "
}

func (a *App) renderMarkets() {
	header(a.out, "Markets")
	for _, m := range a.markets.Items() {
		a.renderMarketCard(m)
	}
	pageLine(a.out, a.markets.Page(), a.markets.TotalPages())
}

func (a *App) renderMarketCard(m models.Market) {
	fmt.Fprintf(a.out, "#%d %s", m.ID, m.Name)
	if m.IsVIP {
		fmt.Fprint(a.out, " ")
		badgeColor.Fprint(a.out, "VIP")
	}
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "   Name (RU): %s\n", m.NameRu)
	fmt.Fprintf(a.out, "   Phone: %s  Password: %s\n", m.Phone, m.Password)
	fmt.Fprintf(a.out, "   Delivery Price: $%s\n", strconv.FormatFloat(m.DeliveryPrice, 'f', -1, 64))
	fmt.Fprintf(a.out, "   Location: %s / %s\n", m.Location, m.LocationRu)
	if m.ThumbnailURL != "" {
		fmt.Fprintf(a.out, "   Thumbnail: %s\n", a.api.ImageURL(m.ThumbnailURL))
	}
}

func (a *App) addMarket(ctx context.Context) {
	var form screens.MarketForm

	for {
		var err error
		if form.Name, err = GetTextDefault(a.reader, "Name (English)", form.Name, a.out); err != nil {
			return
		}
		if form.NameRu, err = GetTextDefault(a.reader, "Name (Russian)", form.NameRu, a.out); err != nil {
			return
		}
		if form.Phone, err = GetTextDefault(a.reader, "Phone", form.Phone, a.out); err != nil {
			return
		}
		if form.Password, err = GetTextDefault(a.reader, "Password", form.Password, a.out); err != nil {
			return
		}
		if form.DeliveryPrice, err = GetTextDefault(a.reader, "Delivery price", form.DeliveryPrice, a.out); err != nil {
			return
		}
		if form.Location, err = GetTextDefault(a.reader, "Location (English)", form.Location, a.out); err != nil {
			return
		}
		if form.LocationRu, err = GetTextDefault(a.reader, "Location (Russian)", form.LocationRu, a.out); err != nil {
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

		fieldErrs, err := a.markets.Create(ctx, form)
		if err == nil && fieldErrs == nil {
			return
		}
		for field, msg := range fieldErrs {
			a.notify.Error(field + ": " + msg)
		}
		// Entered values stay in form for the retry.
		if !Confirm(a.reader, "Try again?", a.out) {
			return
		}
	}
}

func (a *App) updateMarketThumbnail(ctx context.Context, id int, path string) {
	f, err := os.Open(path)
	if err != nil {
		a.notify.Error("Cannot open file: " + err.Error())
		return
	}
	defer f.Close()
	_ = a.markets.UpdateThumbnail(ctx, id, screens.FileUpload{Name: f.Name(), Reader: f})
}
