package screens

import (
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FileUpload is a picked file attached to a form or an inline thumbnail
// update.
type FileUpload struct {
	Name   string
	Reader io.Reader
}

// MarketForm is the create-market form. Field names follow the wire keys
// the API expects.
type MarketForm struct {
	Name          string      `form:"name" validate:"required"`
	NameRu        string      `form:"name_ru" validate:"required"`
	Phone         string      `form:"phone" validate:"required"`
	Password      string      `form:"password" validate:"required"`
	DeliveryPrice string      `form:"delivery_price" validate:"required,numeric,money"`
	Location      string      `form:"location" validate:"required"`
	LocationRu    string      `form:"location_ru" validate:"required"`
	Thumbnail     *FileUpload `form:"thumbnail"`
}

// CategoryForm is the create-category form.
type CategoryForm struct {
	Name      string      `form:"name" validate:"required"`
	NameRu    string      `form:"name_ru" validate:"required"`
	Thumbnail *FileUpload `form:"thumbnail"`
}

// BannerForm is the create-banner form. Unlike the other entities the
// thumbnail is mandatory here.
type BannerForm struct {
	Description string      `form:"description" validate:"required"`
	Thumbnail   *FileUpload `form:"thumbnail" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// money: non-negative. Runs after "numeric", which already guarantees
	// a parseable decimal, so rejecting a leading minus is enough.
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		return !strings.HasPrefix(strings.TrimSpace(fl.Field().String()), "-")
	})
	return v
}

// validateForm runs struct validation and flattens failures into a
// field -> message map keyed by wire field names. A nil map means the form
// may be submitted.
func validateForm(form any) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": err.Error()}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "numeric":
		return "Must be a number"
	case "money":
		return "Price must be positive"
	default:
		return "Invalid value"
	}
}
