// Package validators implements the form-validation layer: submitted form
// structs are checked against the constraints declared in their `validate`
// struct tags and the failures are turned into per-field, user-facing
// messages ready for template rendering.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a submitted form field name to the messages shown next to
// that field when the form is re-rendered.
type FieldErrors map[string][]string

// Has reports whether any message was recorded for the given field.
func (f FieldErrors) Has(field string) bool {
	return len(f[field]) > 0
}

// Add appends a message for the given field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Empty reports whether no field has any message.
func (f FieldErrors) Empty() bool {
	return len(f) == 0
}

// FormValidator validates form structs using go-playground/validator.
// Field names in the produced [FieldErrors] come from the `form` struct tag,
// matching the names the browser submitted.
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator constructs a ready-to-use [FormValidator].
func NewFormValidator() *FormValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &FormValidator{validate: v}
}

// Validate checks form against its `validate` tags.
//
// Constraint failures are a normal outcome: they are returned as a non-empty
// [FieldErrors] with a nil error. A non-nil error indicates the value could
// not be validated at all (e.g. a non-struct was passed) and is a programming
// fault, not user input.
func (f *FormValidator) Validate(form any) (FieldErrors, error) {
	err := f.validate.Struct(form)
	if err == nil {
		return FieldErrors{}, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, fmt.Errorf("%w: %w", ErrNotValidatable, err)
	}

	fieldErrors := FieldErrors{}
	for _, fieldError := range validationErrors {
		fieldErrors.Add(fieldError.Field(), messageFor(fieldError))
	}

	return fieldErrors, nil
}

// messageFor renders a single constraint failure as user-facing text.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Must be at most %s characters long.", fe.Param())
	case "email":
		return "Must be a valid email address."
	default:
		return "Invalid value."
	}
}
