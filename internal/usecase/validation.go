package usecase

import (
	"fmt"

	domainerrors "shop/internal/domain/errors"
	"shop/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CommandValidator runs structural field validation on every command before
// its handler executes. Violations are aggregated into a single
// ValidationError listing one entry per broken rule; validation never
// touches the store.
type CommandValidator struct {
	validate *validator.Validate
}

// NewCommandValidator creates the shared validator instance.
func NewCommandValidator() *CommandValidator {
	return &CommandValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks a command against its struct tags.
func (v *CommandValidator) Validate(command any) error {
	err := v.validate.Struct(command)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Non-field failure (e.g. passing a non-struct) is a programming error.
		return domainerrors.ErrInvariantViolation.WrapMessage(err.Error())
	}

	violations := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, describeViolation(fe))
	}

	return errors.WithStack(domainerrors.NewValidationError(violations))
}

func describeViolation(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", fe.Field())
	case "alpha":
		return fmt.Sprintf("%s must contain only letters", fe.Field())
	case "alphanum":
		return fmt.Sprintf("%s must contain only letters and digits", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	default:
		return fmt.Sprintf("%s failed rule %s", fe.Field(), fe.Tag())
	}
}
