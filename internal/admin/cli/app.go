// Package cli is the terminal front end of the admin console: a REPL over
// the screen controllers, with colored rendering and interactive prompts.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/Dowlet20/ecom-admin/internal/admin/api"
	"github.com/Dowlet20/ecom-admin/internal/admin/config"
	"github.com/Dowlet20/ecom-admin/internal/admin/screens"
	"github.com/Dowlet20/ecom-admin/internal/admin/session"
	"github.com/Dowlet20/ecom-admin/internal/logging"
)

// App wires the session store, the API client and one controller per
// screen. Screens are independent; the only cross-cutting rule is that a
// 401 anywhere drops the session and sends the operator back to login.
type App struct {
	cfg     *config.Config
	log     logging.Logger
	session *session.Store
	api     *api.Client
	notify  *notifier

	reader *bufio.Reader
	out    io.Writer

	markets        *screens.Markets
	categories     *screens.Categories
	banners        *screens.Banners
	userMessages   *screens.UserMessages
	marketMessages *screens.MarketMessages
	users          *screens.Users
	stats          *screens.Stats
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	sessionFile := cfg.SessionFile
	if sessionFile == "" {
		var err error
		sessionFile, err = session.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	store := session.NewStore(sessionFile)
	client := api.New(cfg.BaseURL, cfg.ImageBaseURL, cfg.RequestTimeout, store, log)

	a := &App{
		cfg:     cfg,
		log:     log,
		session: store,
		api:     client,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	a.notify = &notifier{w: a.out}

	// The "redirect to /login": the store is already cleared by the API
	// client, so the next prompt renders logged out. The caller's own
	// error path still fires.
	client.OnSessionExpired(func() {
		a.notify.Error("Session expired, please login again")
	})

	confirm := screens.ConfirmerFunc(func(prompt string) bool {
		return Confirm(a.reader, prompt, a.out)
	})

	a.markets = screens.NewMarkets(client, log, a.notify, confirm)
	a.categories = screens.NewCategories(client, log, a.notify, confirm)
	a.banners = screens.NewBanners(client, log, a.notify, confirm)
	a.userMessages = screens.NewUserMessages(client, log, a.notify, confirm)
	a.marketMessages = screens.NewMarketMessages(client, log, a.notify, confirm)
	a.users = screens.NewUsers(client, log, a.notify, confirm)
	a.stats = screens.NewStats(client, log)

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return "(admin)"
	}
	return "(logged out)"
}
