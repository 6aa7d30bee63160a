package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports the first offending field of a rejected
// payload along with the violated constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// Validator wraps a go-playground validator configured to report field
// names by their json tag. It is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

// New constructs a Validator.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Struct checks every validate tag on s. It has no side effects and
// returns a *ValidationError for the first violation, or nil when the
// payload is acceptable.
func (va *Validator) Struct(s any) error {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		return &ValidationError{Field: fe.Field(), Reason: reason(fe)}
	}
	return err
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "number":
		return "must contain only digits"
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}
