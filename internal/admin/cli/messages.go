package cli

import (
	"context"
	"fmt"
	"strings"
)

const messageSkeletonRows = 5

// UserMessages runs the end-user message screen.
func (a *App) UserMessages(ctx context.Context) error {
	skeleton(a.out, messageSkeletonRows)
	if err := a.userMessages.Fetch(ctx); err == nil {
		a.renderUserMessages()
	}

	for {
		fmt.Fprint(a.out, "user-messages> ")
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
			fmt.Fprintln(a.out, "Commands: list, del <id>, back")

		case "list":
			if err := a.userMessages.Fetch(ctx); err == nil {
				a.renderUserMessages()
			}

		case "del":
			id, ok := parseID(a, parts, "del <id>")
			if !ok {
				continue
			}
			if err := a.userMessages.Delete(ctx, id); err == nil {
				a.renderUserMessages()
			}

		case "back":
			return nil

		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}

func (a *App) renderUserMessages() {
	header(a.out, "User Messages")
	for _, m := range a.userMessages.Items() {
		fmt.Fprintf(a.out, "#%d %s (%s)\n   %s\n", m.ID, m.FullName, m.Phone, m.Message)
	}
}

// MarketMessages runs the market message screen.
func (a *App) MarketMessages(ctx context.Context) error {
	skeleton(a.out, messageSkeletonRows)
	if err := a.marketMessages.Fetch(ctx); err == nil {
		a.renderMarketMessages()
	}

	for {
		fmt.Fprint(a.out, "market-messages> ")
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
			fmt.Fprintln(a.out, "Commands: list, del <id>, back")

		case "list":
			if err := a.marketMessages.Fetch(ctx); err == nil {
				a.renderMarketMessages()
			}

		case "del":
			id, ok := parseID(a, parts, "del <id>")
			if !ok {
				continue
			}
			if err := a.marketMessages.Delete(ctx, id); err == nil {
				a.renderMarketMessages()
			}

		case "back":
			return nil

		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}

func (a *App) renderMarketMessages() {
	header(a.out, "Market Messages")
	for _, m := range a.marketMessages.Items() {
		fmt.Fprintf(a.out, "#%d %s (%s)\n   %s\n", m.ID, m.FullName, m.Phone, m.Message)
	}
}
