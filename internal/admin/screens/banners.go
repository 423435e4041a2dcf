package screens

import (
	"context"
	"fmt"

	"github.com/Dowlet20/ecom-admin/internal/admin/api"
	"github.com/Dowlet20/ecom-admin/internal/admin/models"
	"github.com/Dowlet20/ecom-admin/internal/logging"
)

// Banners is the promotional banner screen controller. The banner
// collection is small and unpaginated.
type Banners struct {
	api     *api.Client
	log     logging.Logger
	notify  Notifier
	confirm Confirmer

	loading bool
	banners []models.Banner
}

func NewBanners(c *api.Client, log logging.Logger, notify Notifier, confirm Confirmer) *Banners {
	return &Banners{
		api:     c,
		log:     log.With("screen", "banners"),
		notify:  notify,
		confirm: confirm,
	}
}

func (s *Banners) Items() []models.Banner { return s.banners }
func (s *Banners) Loading() bool          { return s.loading }

func (s *Banners) Fetch(ctx context.Context) error {
	s.loading = true
	defer func() { s.loading = false }()

	var list api.List[models.Banner]
	if err := s.api.GetJSON(ctx, "/banners", &list); err != nil {
		s.log.Error(ctx, "fetch failed", "error", err)
		s.notify.Error(api.Message(err, "Failed to fetch banners"))
		return err
	}
	s.banners = list.Items
	return nil
}

func (s *Banners) Create(ctx context.Context, form BannerForm) (map[string]string, error) {
	if fields := validateForm(form); fields != nil {
		return fields, nil
	}

	body := api.NewForm().
		Set("description", form.Description).
		File("thumbnail", form.Thumbnail.Name, form.Thumbnail.Reader)

	if err := s.api.PostForm(ctx, "/api/superadmin/banners", body, nil); err != nil {
		s.log.Error(ctx, "create failed", "error", err)
		s.notify.Error(api.Message(err, "Failed to create banner"))
		return nil, err
	}

	s.notify.Success("Banner created successfully")
	return nil, s.Fetch(ctx)
}

func (s *Banners) Delete(ctx context.Context, bannerID int) error {
	if !s.confirm.Confirm("Are you sure you want to delete this banner?") {
		return nil
	}
	if err := s.api.Delete(ctx, fmt.Sprintf("/api/superadmin/banners/%d", bannerID)); err != nil {
		s.log.Error(ctx, "delete failed", "banner_id", bannerID, "error", err)
		s.notify.Error(api.Message(err, "Failed to delete banner"))
		return err
	}
	s.notify.Success("Banner deleted successfully")
	return s.Fetch(ctx)
}
