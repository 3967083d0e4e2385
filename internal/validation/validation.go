// Package validation wires the catalog's closed vocabularies into the request
// validator and turns validator failures into field-level messages.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Register installs the vocabulary-backed tags (genre, platform, companyrole)
// on v and makes error messages report json/form field names.
func Register(v *validator.Validate, vocab Vocabulary) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			name = fld.Tag.Get("form")
		}
		if i := strings.Index(name, ","); i >= 0 {
			name = name[:i]
		}
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	tags := map[string][]string{
		"genre":       vocab.Genres,
		"platform":    vocab.Platforms,
		"companyrole": vocab.Roles,
	}
	for tag, values := range tags {
		if err := v.RegisterValidation(tag, oneOf(values)); err != nil {
			return err
		}
	}
	return nil
}

func oneOf(values []string) validator.Func {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	}
}

// Message renders the first failed rule as a "field reason" sentence. Only the
// first failure is surfaced; the request is rejected as a whole.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fe.Field() + " " + reason(fe)
	}
	return err.Error()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return "must be at least " + fe.Param() + " characters"
		case reflect.Slice, reflect.Array, reflect.Map:
			return "must contain at least " + fe.Param() + " items"
		default:
			return "must be at least " + fe.Param()
		}
	case "email":
		return "must be a valid email address"
	case "genre":
		return "must be one of the known genres"
	case "platform":
		return "must be one of the known platforms"
	case "companyrole":
		return `must be "developer" or "publisher"`
	default:
		return "is invalid"
	}
}
