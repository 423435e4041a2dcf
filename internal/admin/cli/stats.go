package cli

import (
	"context"
	"fmt"
)

// Stats prints the dashboard overview counts.
func (a *App) Stats(ctx context.Context) error {
	totals := a.stats.Fetch(ctx)

	header(a.out, "Dashboard")
	fmt.Fprintf(a.out, "Markets:         %d\n", totals.Markets)
	fmt.Fprintf(a.out, "Categories:      %d\n", totals.Categories)
	fmt.Fprintf(a.out, "Banners:         %d\n", totals.Banners)
	fmt.Fprintf(a.out, "User Messages:   %d\n", totals.UserMessages)
	fmt.Fprintf(a.out, "Market Messages: %d\n", totals.MarketMessages)
	fmt.Fprintf(a.out, "Users:           %d\n", totals.Users)
	return nil
}
