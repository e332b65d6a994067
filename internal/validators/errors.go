package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrValuesMustMatch = errors.New("values must match")
	ErrPasswordDigit   = errors.New("must contain at least one digit")
	ErrPasswordLower   = errors.New("must contain at least one lower-case letter")
	ErrPasswordUpper   = errors.New("must contain at least one upper-case letter")
	ErrPasswordSymbol  = errors.New("must contain at least one non-alphanumeric character")
	ErrPasswordTooLong = errors.New("must be no longer than 72 bytes")
)
