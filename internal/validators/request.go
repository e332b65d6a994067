package validators

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/MKhiriev/go-auth-service/models"
)

// Field names accepted by RequestValidator.Validate for field-level scoping.
// They equal the JSON names of the request bodies.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldToken           = "token"
	FieldNewPassword     = "newPassword"
)

const (
	minRequestPasswordLength = 8
	maxRequestPasswordLength = 30
)

// RequestValidator checks the request bodies of the auth endpoints.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate returns nil or a [validation.Errors] keyed by JSON field name.
// Passing field names restricts validation to those fields.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.EmailRequest:
		return v.validateEmailRequest(value, fields...)
	case *models.EmailRequest:
		return v.validateEmailRequest(*value, fields...)

	case models.PasswordResetRequest:
		return v.validatePasswordResetRequest(value, fields...)
	case *models.PasswordResetRequest:
		return v.validatePasswordResetRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateLoginRequest(request models.LoginRequest, fields ...string) error {
	return validateFields(&request, fields, map[string]*validation.FieldRules{
		FieldEmail:    validation.Field(&request.Email, validation.Required, is.Email),
		FieldPassword: validation.Field(&request.Password, validation.Required),
	})
}

func (v *RequestValidator) validateRegisterRequest(request models.RegisterRequest, fields ...string) error {
	return validateFields(&request, fields, map[string]*validation.FieldRules{
		FieldEmail: validation.Field(&request.Email, validation.Required, is.Email),
		FieldPassword: validation.Field(&request.Password,
			validation.Required,
			validation.RuneLength(minRequestPasswordLength, maxRequestPasswordLength),
		),
		FieldConfirmPassword: validation.Field(&request.ConfirmPassword,
			validation.Required,
			validation.By(StringEquals(request.Password)),
		),
	})
}

func (v *RequestValidator) validateEmailRequest(request models.EmailRequest, fields ...string) error {
	return validateFields(&request, fields, map[string]*validation.FieldRules{
		FieldEmail: validation.Field(&request.Email, validation.Required, is.Email),
	})
}

func (v *RequestValidator) validatePasswordResetRequest(request models.PasswordResetRequest, fields ...string) error {
	return validateFields(&request, fields, map[string]*validation.FieldRules{
		FieldToken: validation.Field(&request.Token, validation.Required),
		FieldNewPassword: validation.Field(&request.NewPassword,
			validation.Required,
			validation.RuneLength(minRequestPasswordLength, maxRequestPasswordLength),
		),
	})
}

// validateFields runs the rules of the requested fields, or all of them when
// fields is empty. rules must reference fields of structPtr.
func validateFields(structPtr any, fields []string, rules map[string]*validation.FieldRules) error {
	selected := make([]*validation.FieldRules, 0, len(rules))

	if len(fields) == 0 {
		for _, rule := range rules {
			selected = append(selected, rule)
		}
		return validation.ValidateStruct(structPtr, selected...)
	}

	for _, f := range fields {
		rule, ok := rules[f]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		selected = append(selected, rule)
	}

	return validation.ValidateStruct(structPtr, selected...)
}

// StringEquals returns a rule that fails unless the value equals str.
func StringEquals(str string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if s != str {
			return ErrValuesMustMatch
		}
		return nil
	}
}

// FieldErrors flattens a [validation.Errors] into field → message. It
// returns nil for any other error.
func FieldErrors(err error) map[string]string {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return nil
	}

	out := make(map[string]string, len(errs))
	for field, fieldErr := range errs {
		out[field] = fieldErr.Error()
	}
	return out
}
