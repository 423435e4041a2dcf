package screens

import (
	"context"
	"sync"

	"github.com/Dowlet20/ecom-admin/internal/admin/api"
	"github.com/Dowlet20/ecom-admin/internal/admin/models"
	"github.com/Dowlet20/ecom-admin/internal/logging"
)

// Totals are the collection counts shown on the dashboard landing screen.
type Totals struct {
	Markets        int
	Categories     int
	Banners        int
	UserMessages   int
	MarketMessages int
	Users          int
}

// Stats is the dashboard overview controller.
type Stats struct {
	api *api.Client
	log logging.Logger
}

func NewStats(c *api.Client, log logging.Logger) *Stats {
	return &Stats{api: c, log: log.With("screen", "dashboard")}
}

// Fetch gathers all six counts concurrently. A failed count degrades to
// zero with a logged warning; the dashboard is informational only.
func (s *Stats) Fetch(ctx context.Context) Totals {
	var t Totals
	var wg sync.WaitGroup

	count := func(name, path string, dst *int, fetch func(context.Context, string) (int, error)) {
		defer wg.Done()
		n, err := fetch(ctx, path)
		if err != nil {
			s.log.Warn(ctx, "stat fetch failed", "stat", name, "error", err)
			return
		}
		*dst = n
	}

	wg.Add(6)
	go count("markets", "/markets?page=1&limit=1", &t.Markets, countOf[models.Market](s.api))
	go count("categories", "/categories?page=1&limit=1", &t.Categories, countOf[models.Category](s.api))
	go count("banners", "/banners", &t.Banners, countOf[models.Banner](s.api))
	go count("user_messages", "/api/superadmin/user-messages", &t.UserMessages, countOf[models.UserMessage](s.api))
	go count("market_messages", "/api/superadmin/market-messages", &t.MarketMessages, countOf[models.MarketMessage](s.api))
	go count("users", "/api/superadmin/users?page=1&limit=1", &t.Users, countOf[models.User](s.api))
	wg.Wait()

	return t
}

func countOf[T any](c *api.Client) func(context.Context, string) (int, error) {
	return func(ctx context.Context, path string) (int, error) {
		var list api.List[T]
		if err := c.GetJSON(ctx, path, &list); err != nil {
			return 0, err
		}
		return list.Total, nil
	}
}
