package screens

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Dowlet20/ecom-admin/internal/admin/api"
	"github.com/Dowlet20/ecom-admin/internal/admin/models"
	"github.com/Dowlet20/ecom-admin/internal/logging"
)

const usersPageSize = 20

// Users is the end-user account screen controller. It carries an optional
// text search filter; the only mutation besides deletion is toggling a
// user's verified flag.
type Users struct {
	api     *api.Client
	log     logging.Logger
	notify  Notifier
	confirm Confirmer

	page       int
	totalPages int
	search     string
	loading    bool
	users      []models.User

	updatingID int
}

func NewUsers(c *api.Client, log logging.Logger, notify Notifier, confirm Confirmer) *Users {
	return &Users{
		api:        c,
		log:        log.With("screen", "users"),
		notify:     notify,
		confirm:    confirm,
		page:       1,
		totalPages: 1,
	}
}

func (s *Users) Items() []models.User { return s.users }
func (s *Users) Page() int            { return s.page }
func (s *Users) TotalPages() int      { return s.totalPages }
func (s *Users) Search() string       { return s.search }
func (s *Users) Loading() bool        { return s.loading }

// Updating reports the user whose verified flag is being committed, or 0.
func (s *Users) Updating() int { return s.updatingID }

func (s *Users) Fetch(ctx context.Context) error {
	s.loading = true
	defer func() { s.loading = false }()

	params := url.Values{}
	params.Set("page", strconv.Itoa(s.page))
	params.Set("limit", strconv.Itoa(usersPageSize))
	if q := strings.TrimSpace(s.search); q != "" {
		params.Set("search", q)
	}

	var list api.List[models.User]
	if err := s.api.GetJSON(ctx, "/api/superadmin/users?"+params.Encode(), &list); err != nil {
		s.log.Error(ctx, "fetch failed", "error", err)
		s.notify.Error(api.Message(err, "Failed to fetch users"))
		return err
	}
	s.users = list.Items
	s.totalPages = TotalPages(list.Total, usersPageSize)
	return nil
}

// SetSearch applies a new search filter and resets to the first page.
func (s *Users) SetSearch(ctx context.Context, query string) error {
	s.search = query
	s.page = 1
	return s.Fetch(ctx)
}

func (s *Users) NextPage(ctx context.Context) error {
	if s.page >= s.totalPages {
		return nil
	}
	s.page++
	return s.Fetch(ctx)
}

func (s *Users) PrevPage(ctx context.Context) error {
	if s.page <= 1 {
		return nil
	}
	s.page--
	return s.Fetch(ctx)
}

// SetVerified flips the one mutable field of a user via a JSON PUT and
// re-fetches the page.
func (s *Users) SetVerified(ctx context.Context, userID int, verified bool) error {
	s.updatingID = userID
	defer func() { s.updatingID = 0 }()

	body := map[string]bool{"verified": verified}
	if err := s.api.PutJSON(ctx, fmt.Sprintf("/api/superadmin/users/%d", userID), body, nil); err != nil {
		s.log.Error(ctx, "verification update failed", "user_id", userID, "error", err)
		s.notify.Error(api.Message(err, "Failed to update user verification status"))
		return err
	}

	state := "unverified"
	if verified {
		state = "verified"
	}
	s.notify.Success(fmt.Sprintf("User %s successfully", state))
	return s.Fetch(ctx)
}

func (s *Users) Delete(ctx context.Context, userID int) error {
	if !s.confirm.Confirm("Are you sure you want to delete this user?") {
		return nil
	}
	if err := s.api.Delete(ctx, fmt.Sprintf("/api/superadmin/users/%d", userID)); err != nil {
		s.log.Error(ctx, "delete failed", "user_id", userID, "error", err)
		s.notify.Error(api.Message(err, "Failed to delete user"))
		return err
	}
	s.notify.Success("User deleted successfully")
	return s.Fetch(ctx)
}
