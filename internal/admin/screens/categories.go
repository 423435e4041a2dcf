package screens

import (
	"context"
	"fmt"

	"github.com/Dowlet20/ecom-admin/internal/admin/api"
	"github.com/Dowlet20/ecom-admin/internal/admin/models"
	"github.com/Dowlet20/ecom-admin/internal/logging"
)

const categoriesPageSize = 12

// Categories is the product category screen controller.
type Categories struct {
	api     *api.Client
	log     logging.Logger
	notify  Notifier
	confirm Confirmer

	page       int
	totalPages int
	loading    bool
	categories []models.Category
}

func NewCategories(c *api.Client, log logging.Logger, notify Notifier, confirm Confirmer) *Categories {
	return &Categories{
		api:        c,
		log:        log.With("screen", "categories"),
		notify:     notify,
		confirm:    confirm,
		page:       1,
		totalPages: 1,
	}
}

func (s *Categories) Items() []models.Category { return s.categories }
func (s *Categories) Page() int                { return s.page }
func (s *Categories) TotalPages() int          { return s.totalPages }
func (s *Categories) Loading() bool            { return s.loading }

func (s *Categories) Fetch(ctx context.Context) error {
	s.loading = true
	defer func() { s.loading = false }()

	var list api.List[models.Category]
	path := fmt.Sprintf("/categories?page=%d&limit=%d", s.page, categoriesPageSize)
	if err := s.api.GetJSON(ctx, path, &list); err != nil {
		s.log.Error(ctx, "fetch failed", "error", err)
		s.notify.Error(api.Message(err, "Failed to fetch categories"))
		return err
	}
	s.categories = list.Items
	s.totalPages = TotalPages(list.Total, categoriesPageSize)
	return nil
}

func (s *Categories) NextPage(ctx context.Context) error {
	if s.page >= s.totalPages {
		return nil
	}
	s.page++
	return s.Fetch(ctx)
}

func (s *Categories) PrevPage(ctx context.Context) error {
	if s.page <= 1 {
		return nil
	}
	s.page--
	return s.Fetch(ctx)
}

func (s *Categories) Create(ctx context.Context, form CategoryForm) (map[string]string, error) {
	if fields := validateForm(form); fields != nil {
		return fields, nil
	}

	body := api.NewForm().
		Set("name", form.Name).
		Set("name_ru", form.NameRu)
	if form.Thumbnail != nil {
		body.File("thumbnail", form.Thumbnail.Name, form.Thumbnail.Reader)
	}

	if err := s.api.PostForm(ctx, "/api/superadmin/categories", body, nil); err != nil {
		s.log.Error(ctx, "create failed", "error", err)
		s.notify.Error(api.Message(err, "Failed to create category"))
		return nil, err
	}

	s.notify.Success("Category created successfully")
	return nil, s.Fetch(ctx)
}

func (s *Categories) Delete(ctx context.Context, categoryID int) error {
	if !s.confirm.Confirm("Are you sure you want to delete this category?") {
		return nil
	}
	if err := s.api.Delete(ctx, fmt.Sprintf("/api/superadmin/categories/%d", categoryID)); err != nil {
		s.log.Error(ctx, "delete failed", "category_id", categoryID, "error", err)
		s.notify.Error(api.Message(err, "Failed to delete category"))
		return err
	}
	s.notify.Success("Category deleted successfully")
	return s.Fetch(ctx)
}
