package screens

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Dowlet20/ecom-admin/internal/admin/api"
	"github.com/Dowlet20/ecom-admin/internal/admin/models"
	"github.com/Dowlet20/ecom-admin/internal/logging"
)

const marketsPageSize = 10

// Editable market fields, by wire name.
const (
	FieldName          = "name"
	FieldNameRu        = "name_ru"
	FieldPhone         = "phone"
	FieldPassword      = "password"
	FieldDeliveryPrice = "delivery_price"
	FieldLocation      = "location"
	FieldLocationRu    = "location_ru"
)

var editableMarketFields = map[string]string{
	FieldName:          "Name (EN)",
	FieldNameRu:        "Name (RU)",
	FieldPhone:         "Phone",
	FieldPassword:      "Password",
	FieldDeliveryPrice: "Delivery Price",
	FieldLocation:      "Location (EN)",
	FieldLocationRu:    "Location (RU)",
}

// EditKey identifies one field of one market on the screen.
type EditKey struct {
	MarketID int
	Field    string
}

func (k EditKey) String() string {
	return fmt.Sprintf("%d-%s", k.MarketID, k.Field)
}

var errNoEditSession = errors.New("no field is being edited")

// Markets is the markets screen controller. Besides the usual snapshot and
// pagination it owns the inline field editor: at most one (market, field)
// pair is in edit mode across the whole screen, pending values live in an
// overlay keyed by EditKey strings, and per-key in-flight flags keep a
// field's commits serial.
type Markets struct {
	api     *api.Client
	log     logging.Logger
	notify  Notifier
	confirm Confirmer

	page       int
	totalPages int
	loading    bool
	markets    []models.Market

	editing    *EditKey
	editValues map[string]string
	updating   map[string]bool
}

func NewMarkets(c *api.Client, log logging.Logger, notify Notifier, confirm Confirmer) *Markets {
	return &Markets{
		api:        c,
		log:        log.With("screen", "markets"),
		notify:     notify,
		confirm:    confirm,
		page:       1,
		totalPages: 1,
		editValues: make(map[string]string),
		updating:   make(map[string]bool),
	}
}

// Items returns the snapshot of the last successful fetch.
func (s *Markets) Items() []models.Market { return s.markets }

func (s *Markets) Page() int       { return s.page }
func (s *Markets) TotalPages() int { return s.totalPages }
func (s *Markets) Loading() bool   { return s.loading }

// Fetch replaces the snapshot with the current server collection. On
// failure the previous snapshot is kept and the operator is notified.
func (s *Markets) Fetch(ctx context.Context) error {
	s.loading = true
	defer func() { s.loading = false }()

	var list api.List[models.Market]
	if err := s.api.GetJSON(ctx, "/markets", &list); err != nil {
		s.log.Error(ctx, "fetch failed", "error", err)
		s.notify.Error(api.Message(err, "Failed to fetch markets"))
		return err
	}
	s.markets = list.Items
	s.totalPages = TotalPages(list.Total, marketsPageSize)
	s.log.Debug(ctx, "fetched", "count", len(list.Items), "total", list.Total)
	return nil
}

func (s *Markets) NextPage(ctx context.Context) error {
	if s.page >= s.totalPages {
		return nil
	}
	s.page++
	return s.Fetch(ctx)
}

func (s *Markets) PrevPage(ctx context.Context) error {
	if s.page <= 1 {
		return nil
	}
	s.page--
	return s.Fetch(ctx)
}

// StartEdit puts (marketID, field) into edit mode, seeding the pending
// overlay with the record's current value. Any edit session already open
// anywhere on the screen is abandoned and its overlay cleared.
func (s *Markets) StartEdit(marketID int, field string) error {
	if _, ok := editableMarketFields[field]; !ok {
		return fmt.Errorf("field %q is not editable", field)
	}
	m := s.find(marketID)
	if m == nil {
		return fmt.Errorf("market %d is not on this screen", marketID)
	}

	key := EditKey{MarketID: marketID, Field: field}
	s.editing = &key
	s.editValues = map[string]string{key.String(): marketFieldString(m, field)}
	return nil
}

// SetPending replaces the pending value of the active edit session.
func (s *Markets) SetPending(value string) error {
	if s.editing == nil {
		return errNoEditSession
	}
	s.editValues[s.editing.String()] = value
	return nil
}

// Editing returns the active edit key, if any.
func (s *Markets) Editing() (EditKey, bool) {
	if s.editing == nil {
		return EditKey{}, false
	}
	return *s.editing, true
}

// PendingValue returns the overlay value for (marketID, field).
func (s *Markets) PendingValue(marketID int, field string) (string, bool) {
	v, ok := s.editValues[EditKey{MarketID: marketID, Field: field}.String()]
	return v, ok
}

// Updating reports whether a commit for (marketID, field) is in flight.
func (s *Markets) Updating(marketID int, field string) bool {
	return s.updating[EditKey{MarketID: marketID, Field: field}.String()]
}

// Cancel leaves edit mode and discards the pending overlay. No network
// call is made; a commit already in flight is not aborted.
func (s *Markets) Cancel() {
	s.editing = nil
	s.editValues = make(map[string]string)
}

// Commit sends the active edit session's pending value as a single-field
// multipart PUT. Password commits require an extra confirmation naming the
// new plaintext value; a declined confirmation leaves edit mode untouched
// and issues no network call. On success exactly the committed field of
// exactly the committed record is patched in the snapshot and edit state
// clears. On failure edit mode and the pending value survive so the
// operator can retry without retyping.
func (s *Markets) Commit(ctx context.Context) error {
	if s.editing == nil {
		return errNoEditSession
	}
	key := *s.editing
	keyStr := key.String()
	if s.updating[keyStr] {
		return nil
	}

	value := s.editValues[keyStr]
	label := editableMarketFields[key.Field]

	if key.Field == FieldDeliveryPrice {
		price, err := strconv.ParseFloat(value, 64)
		if err != nil || price < 0 {
			s.notify.Error("Delivery price must be a non-negative number")
			return nil
		}
		value = strconv.FormatFloat(price, 'f', -1, 64)
	}

	if key.Field == FieldPassword {
		prompt := fmt.Sprintf("Are you sure you want to update this password to %q?", value)
		if !s.confirm.Confirm(prompt) {
			return nil
		}
	}

	s.updating[keyStr] = true
	defer delete(s.updating, keyStr)

	form := api.NewForm().Set(key.Field, value)
	path := fmt.Sprintf("/api/superadmin/markets/%d", key.MarketID)
	if err := s.api.PutForm(ctx, path, form, nil); err != nil {
		s.log.Error(ctx, "field update failed", "market_id", key.MarketID, "field", key.Field, "error", err)
		s.notify.Error(api.Message(err, "Failed to update "+label))
		return err
	}

	if m := s.find(key.MarketID); m != nil {
		setMarketField(m, key.Field, value)
	}
	s.editing = nil
	s.editValues = make(map[string]string)
	s.notify.Success(label + " updated successfully")
	return nil
}

// UpdateThumbnail replaces a market's thumbnail straight from a picked
// file, bypassing text edit mode. It shares the in-flight tracking of the
// editor under the "thumbnail" field key, and on success patches only the
// thumbnail URL of the matching record.
func (s *Markets) UpdateThumbnail(ctx context.Context, marketID int, file FileUpload) error {
	keyStr := EditKey{MarketID: marketID, Field: "thumbnail"}.String()
	if s.updating[keyStr] {
		return nil
	}
	s.updating[keyStr] = true
	defer delete(s.updating, keyStr)

	var updated struct {
		ThumbnailURL string `json:"thumbnail_url"`
	}
	form := api.NewForm().File("image", file.Name, file.Reader)
	path := fmt.Sprintf("/api/superadmin/markets/%d", marketID)
	if err := s.api.PutForm(ctx, path, form, &updated); err != nil {
		s.log.Error(ctx, "thumbnail update failed", "market_id", marketID, "error", err)
		s.notify.Error(api.Message(err, "Failed to update thumbnail"))
		return err
	}

	if m := s.find(marketID); m != nil {
		m.ThumbnailURL = updated.ThumbnailURL
	}
	s.notify.Success("Thumbnail updated successfully")
	return nil
}

// Create validates the form and, when it is clean, submits it as a
// multipart POST and re-fetches the list. Validation failures return
// per-field messages and issue no network call. On a server failure the
// caller keeps the entered values for retry.
func (s *Markets) Create(ctx context.Context, form MarketForm) (map[string]string, error) {
	if fields := validateForm(form); fields != nil {
		return fields, nil
	}

	body := api.NewForm().
		Set("name", form.Name).
		Set("name_ru", form.NameRu).
		Set("phone", form.Phone).
		Set("delivery_price", form.DeliveryPrice).
		Set("location", form.Location).
		Set("location_ru", form.LocationRu).
		Set("password", form.Password)
	if form.Thumbnail != nil {
		body.File("thumbnail", form.Thumbnail.Name, form.Thumbnail.Reader)
	}

	var created models.Market
	if err := s.api.PostForm(ctx, "/api/superadmin/markets", body, &created); err != nil {
		s.log.Error(ctx, "create failed", "error", err)
		s.notify.Error(api.Message(err, "Failed to create market"))
		return nil, err
	}

	s.notify.Success(fmt.Sprintf("Market created! Phone: %s, Password: %s", created.Phone, created.Password))
	return nil, s.Fetch(ctx)
}

// Delete asks for confirmation, deletes the market and re-fetches the
// current page.
func (s *Markets) Delete(ctx context.Context, marketID int) error {
	if !s.confirm.Confirm("Are you sure you want to delete this market?") {
		return nil
	}
	if err := s.api.Delete(ctx, fmt.Sprintf("/api/superadmin/markets/%d", marketID)); err != nil {
		s.log.Error(ctx, "delete failed", "market_id", marketID, "error", err)
		s.notify.Error(api.Message(err, "Failed to delete market"))
		return err
	}
	s.notify.Success("Market deleted successfully")
	return s.Fetch(ctx)
}

func (s *Markets) find(marketID int) *models.Market {
	for i := range s.markets {
		if s.markets[i].ID == marketID {
			return &s.markets[i]
		}
	}
	return nil
}

func marketFieldString(m *models.Market, field string) string {
	switch field {
	case FieldName:
		return m.Name
	case FieldNameRu:
		return m.NameRu
	case FieldPhone:
		return m.Phone
	case FieldPassword:
		return m.Password
	case FieldDeliveryPrice:
		return strconv.FormatFloat(m.DeliveryPrice, 'f', -1, 64)
	case FieldLocation:
		return m.Location
	case FieldLocationRu:
		return m.LocationRu
	}
	return ""
}

func setMarketField(m *models.Market, field, value string) {
	switch field {
	case FieldName:
		m.Name = value
	case FieldNameRu:
		m.NameRu = value
	case FieldPhone:
		m.Phone = value
	case FieldPassword:
		m.Password = value
	case FieldDeliveryPrice:
		// Commit already canonicalized the value, so this cannot fail.
		m.DeliveryPrice, _ = strconv.ParseFloat(value, 64)
	case FieldLocation:
		m.Location = value
	case FieldLocationRu:
		m.LocationRu = value
	}
}
