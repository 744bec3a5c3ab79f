package text

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidProps is wrapped by every construction-time rejection.
var ErrInvalidProps = errors.New("invalid text props")

// PropError describes a single prop that failed validation.
type PropError struct {
	Field   string
	Value   string
	Allowed []string
}

func newPropError(field, value string, allowed []string) *PropError {
	return &PropError{Field: field, Value: value, Allowed: allowed}
}

func (e *PropError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("text: %s is required", e.Field)
	}
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("text: invalid %s %q", e.Field, e.Value)
	}
	return fmt.Sprintf("text: invalid %s %q (allowed: %s)", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

func (e *PropError) Unwrap() error {
	return ErrInvalidProps
}

// translateValidation turns validator failures into PropErrors so callers
// never see validator types.
func translateValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidProps, err)
	}

	out := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		var allowed []string
		if fe.Tag() == "oneof" {
			allowed = strings.Fields(fe.Param())
		}
		out = append(out, newPropError(fe.Field(), fmt.Sprint(fe.Value()), allowed))
	}
	return errors.Join(out...)
}
