package screens

import (
	"context"
	"fmt"

	"github.com/Dowlet20/ecom-admin/internal/admin/api"
	"github.com/Dowlet20/ecom-admin/internal/admin/models"
	"github.com/Dowlet20/ecom-admin/internal/logging"
)

// UserMessages is the inbound end-user message screen. Messages are
// read-only apart from deletion, and the collection is unpaginated.
type UserMessages struct {
	api     *api.Client
	log     logging.Logger
	notify  Notifier
	confirm Confirmer

	loading  bool
	messages []models.UserMessage
}

func NewUserMessages(c *api.Client, log logging.Logger, notify Notifier, confirm Confirmer) *UserMessages {
	return &UserMessages{
		api:     c,
		log:     log.With("screen", "user-messages"),
		notify:  notify,
		confirm: confirm,
	}
}

func (s *UserMessages) Items() []models.UserMessage { return s.messages }
func (s *UserMessages) Loading() bool               { return s.loading }

func (s *UserMessages) Fetch(ctx context.Context) error {
	s.loading = true
	defer func() { s.loading = false }()

	var list api.List[models.UserMessage]
	if err := s.api.GetJSON(ctx, "/api/superadmin/user-messages", &list); err != nil {
		s.log.Error(ctx, "fetch failed", "error", err)
		s.notify.Error(api.Message(err, "Failed to fetch user messages"))
		return err
	}
	s.messages = list.Items
	return nil
}

func (s *UserMessages) Delete(ctx context.Context, messageID int) error {
	if !s.confirm.Confirm("Are you sure you want to delete this message?") {
		return nil
	}
	if err := s.api.Delete(ctx, fmt.Sprintf("/user-messages/%d", messageID)); err != nil {
		s.log.Error(ctx, "delete failed", "message_id", messageID, "error", err)
		s.notify.Error(api.Message(err, "Failed to delete message"))
		return err
	}
	s.notify.Success("Message deleted successfully")
	return s.Fetch(ctx)
}

// MarketMessages is the inbound market message screen; same shape as
// UserMessages.
type MarketMessages struct {
	api     *api.Client
	log     logging.Logger
	notify  Notifier
	confirm Confirmer

	loading  bool
	messages []models.MarketMessage
}

func NewMarketMessages(c *api.Client, log logging.Logger, notify Notifier, confirm Confirmer) *MarketMessages {
	return &MarketMessages{
		api:     c,
		log:     log.With("screen", "market-messages"),
		notify:  notify,
		confirm: confirm,
	}
}

func (s *MarketMessages) Items() []models.MarketMessage { return s.messages }
func (s *MarketMessages) Loading() bool                 { return s.loading }

func (s *MarketMessages) Fetch(ctx context.Context) error {
	s.loading = true
	defer func() { s.loading = false }()

	var list api.List[models.MarketMessage]
	if err := s.api.GetJSON(ctx, "/api/superadmin/market-messages", &list); err != nil {
		s.log.Error(ctx, "fetch failed", "error", err)
		s.notify.Error(api.Message(err, "Failed to fetch market messages"))
		return err
	}
	s.messages = list.Items
	return nil
}

func (s *MarketMessages) Delete(ctx context.Context, messageID int) error {
	if !s.confirm.Confirm("Are you sure you want to delete this message?") {
		return nil
	}
	if err := s.api.Delete(ctx, fmt.Sprintf("/market-messages/%d", messageID)); err != nil {
		s.log.Error(ctx, "delete failed", "message_id", messageID, "error", err)
		s.notify.Error(api.Message(err, "Failed to delete message"))
		return err
	}
	s.notify.Success("Message deleted successfully")
	return s.Fetch(ctx)
}
