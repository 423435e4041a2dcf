package cli

import (
	"context"
	"fmt"
	"strings"
)

const userSkeletonRows = 10

// Users runs the end-user account screen.
func (a *App) Users(ctx context.Context) error {
	skeleton(a.out, userSkeletonRows)
	if err := a.users.Fetch(ctx); err == nil {
		a.renderUsers()
	}

	for {
		fmt.Fprint(a.out, "users> ")
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
			fmt.Fprintln(a.out, "Commands: list, search <text>, verify <id>, unverify <id>, del <id>, next, prev, back")

		case "list":
			if err := a.users.Fetch(ctx); err == nil {
				a.renderUsers()
			}

		case "search":
			query := strings.Join(parts[1:], " ")
			if err := a.users.SetSearch(ctx, query); err == nil {
				a.renderUsers()
			}

		case "next":
			if err := a.users.NextPage(ctx); err == nil {
				a.renderUsers()
			}

		case "prev":
			if err := a.users.PrevPage(ctx); err == nil {
				a.renderUsers()
			}

		case "verify":
			id, ok := parseID(a, parts, "verify <id>")
			if !ok {
				continue
			}
			if err := a.users.SetVerified(ctx, id, true); err == nil {
				a.renderUsers()
			}

		case "unverify":
			id, ok := parseID(a, parts, "unverify <id>")
			if !ok {
				continue
			}
			if err := a.users.SetVerified(ctx, id, false); err == nil {
				a.renderUsers()
			}

		case "del":
			id, ok := parseID(a, parts, "del <id>")
			if !ok {
				continue
			}
			if err := a.users.Delete(ctx, id); err == nil {
				a.renderUsers()
			}

		case "back":
			return nil

		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}

func (a *App) renderUsers() {
	header(a.out, "Users")
	for _, u := range a.users.Items() {
		mark := " "
		if u.Verified {
			mark = "✓"
		}
		fmt.Fprintf(a.out, "[%s] #%d %s (%s)\n", mark, u.ID, u.FullName, u.Phone)
	}
	if q := a.users.Search(); q != "" {
		fmt.Fprintf(a.out, "filter: %q\n", q)
	}
	pageLine(a.out, a.users.Page(), a.users.TotalPages())
}
