package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	indianPhoneRe = regexp.MustCompile(`^[6-9]\d{9}$`)
	tenDigitsRe   = regexp.MustCompile(`^\d{10}$`)
	alphaSpaceRe  = regexp.MustCompile(`^[A-Za-z\s]+$`)
)

// FieldError attributes a validation message to one input field.
type FieldError struct {
	Field   string
	Message string
}

// Error is returned when one or more fields fail validation.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field has at least one error.
func (e *Error) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Validator wraps go-playground/validator with the project's custom tags and
// human-readable messages. It is safe for concurrent use once built.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator. Field names are reported using their json tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	_ = v.RegisterValidation("indian_phone", func(fl validator.FieldLevel) bool {
		return indianPhoneRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("ten_digits", func(fl validator.FieldLevel) bool {
		return tenDigitsRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("alpha_space", func(fl validator.FieldLevel) bool {
		return alphaSpaceRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("trimmed_min", func(fl validator.FieldLevel) bool {
		var n int
		if _, err := fmt.Sscanf(fl.Param(), "%d", &n); err != nil {
			return false
		}
		return len([]rune(strings.TrimSpace(fl.Field().String()))) >= n
	})

	return &Validator{v: v}
}

// RegisterStructValidation adds a cross-field rule for the given struct types.
func (v *Validator) RegisterStructValidation(fn validator.StructLevelFunc, types ...any) {
	v.v.RegisterStructValidation(fn, types...)
}

// Struct validates s and returns *Error listing every failing field, or nil.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &Error{Fields: []FieldError{{Field: "", Message: err.Error()}}}
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		out.Fields = append(out.Fields, FieldError{Field: field, Message: message(field, fe)})
	}
	return out
}

func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(fe.Param()), ", "))
	case "gte", "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte", "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "finite":
		return fmt.Sprintf("%s must be a finite number", field)
	case "email":
		return "Please provide a valid email"
	case "indian_phone":
		return "Please provide a valid 10-digit Indian phone number"
	case "ten_digits":
		return "Phone number must be exactly 10 digits"
	case "alpha_space":
		return fmt.Sprintf("%s can only contain letters and spaces", field)
	case "trimmed_min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "required_for_layout":
		return fmt.Sprintf("Dimension %s is required for %s layout", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
