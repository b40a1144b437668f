package entity

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Title length bounds, counted in characters (runes).
const (
	MinTitleLength = 6
	MaxTitleLength = 100
)

// Draft carries the user-editable fields of an announcement.
// A Draft obtained from NewDraft has already passed validation.
type Draft struct {
	Title    string `json:"title" validate:"required,title_length"`
	Contents string `json:"contents"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validatorInstance returns the shared validator, reporting fields by their json names.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})
		v.RegisterAlias("title_length", fmt.Sprintf("min=%d,max=%d", MinTitleLength, MaxTitleLength))
		validate = v
	})
	return validate
}

// NewDraft builds a Draft from raw title and contents.
// Malformed input is reported as a *ValidationError rather than a panic.
func NewDraft(title, contents string) (Draft, error) {
	d := Draft{Title: title, Contents: contents}
	if err := d.Validate(); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// Validate checks the draft against the title length rules.
// Only the first failing field is reported.
func (d Draft) Validate() error {
	err := validatorInstance().Struct(d)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{Field: fe.Field(), Message: describe(fe)}
	}
	return fmt.Errorf("validate draft: %w", err)
}

// ValidateID rejects non-positive identifiers before they reach the store.
func ValidateID(id int64) error {
	if id <= 0 {
		return &ValidationError{Field: "id", Message: "must be positive"}
	}
	return nil
}

// describe renders a field error; aliases report the tag that actually failed.
func describe(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "is invalid"
	}
}
