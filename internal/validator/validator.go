// internal/validator/validator.go
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"finance-tracker/internal/domain"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DateLayout = "2006-01-02"

var Validate *validator.Validate

var (
	nonBlank = regexp.MustCompile(`\S`)
	lower    = cases.Lower(language.Und)
)

func init() {
	Validate = validator.New()

	// Report fields by their JSON names so clients see entity_name, not Name.
	Validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// "income" or "expense", any case
	_ = Validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		_, ok := NormalizeCategory(fl.Field().String())
		return ok
	})

	// calendar date: "2024-12-31"
	_ = Validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})

	_ = Validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return nonBlank.MatchString(fl.Field().String())
	})
}

// NormalizeCategory lowercases s and reports whether it is an accepted category.
func NormalizeCategory(s string) (string, bool) {
	c := lower.String(strings.TrimSpace(s))
	switch c {
	case domain.CategoryIncome, domain.CategoryExpense:
		return c, true
	}
	return "", false
}

// NormalizeCategoryPtr is NormalizeCategory for optional fields. Callers
// validate first, so an unknown value is passed through unchanged.
func NormalizeCategoryPtr(s *string) *string {
	if s == nil {
		return nil
	}
	if c, ok := NormalizeCategory(*s); ok {
		return &c
	}
	return s
}

// Struct validates v and returns a *domain.Error of kind Validation that
// lists every failing field.
func Struct(v any) error {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.Validation("Invalid input", err.Error())
	}

	var missing, invalid []string
	for _, e := range verrs {
		if e.Tag() == "required" {
			missing = append(missing, e.Field())
			continue
		}
		invalid = append(invalid, fieldErrorToString(e))
	}

	if len(missing) > 0 {
		msg := "Missing required fields: " + strings.Join(missing, ", ")
		return domain.Validation(msg, strings.Join(append(missingDetail(missing), invalid...), "; "))
	}
	return domain.Validation("Invalid input", strings.Join(invalid, "; "))
}

func missingDetail(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = fmt.Sprintf("%s is required", f)
	}
	return out
}

func fieldErrorToString(e validator.FieldError) string {
	switch e.Tag() {
	case "category":
		return fmt.Sprintf("%s must be either 'income' or 'expense'", e.Field())
	case "isodate":
		return fmt.Sprintf("%s must be in YYYY-MM-DD format", e.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", e.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
