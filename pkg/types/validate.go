package types

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance with the closed-enum checks
// registered. Struct tags carry the field constraints; see RecipeDraft.
var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return ValidCategory(Category(fl.Field().String()))
	})
	_ = v.RegisterValidation("unit", func(fl validator.FieldLevel) bool {
		return ValidUnit(Unit(fl.Field().String()))
	})
	return v
}()

// ValidateDraft checks a form payload against the recipe constraints.
// Returns ValidationErrors listing every offending field, or nil when the
// draft is acceptable. Validation failures never reach the store.
func ValidateDraft(d RecipeDraft) error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "recipe", Message: err.Error()}}
	}
	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: constraintMessage(fe),
		})
	}
	return out
}

// fieldPath strips the leading struct name from a validator namespace and
// lowercases the first rune of each segment to match the JSON field names.
func fieldPath(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToLower(p[:1]) + p[1:]
	}
	return strings.Join(parts, ".")
}

// constraintMessage renders a human-readable message for a failed tag.
func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("needs at least %s entry", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("allows at most %s entries", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "unique":
		return "contains duplicates"
	case "url":
		return "must be a valid URL"
	case "category":
		return "is not a recognized category"
	case "unit":
		return "is not a recognized measurement unit"
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}
