package validators

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

// MinPasswordLength is the shortest password the identity store accepts.
const MinPasswordLength = 6

// MaxPasswordBytes is the longest password bcrypt can hash, in bytes.
const MaxPasswordBytes = 72

var (
	digitRe  = regexp.MustCompile(`\p{Nd}`)
	lowerRe  = regexp.MustCompile(`\p{Ll}`)
	upperRe  = regexp.MustCompile(`\p{Lu}`)
	symbolRe = regexp.MustCompile(`[^\p{L}\p{N}]`)
)

// PasswordPolicy returns the composition rules for stored passwords.
func PasswordPolicy() []validation.Rule {
	return []validation.Rule{
		validation.Required,
		validation.RuneLength(MinPasswordLength, 0),
		validation.By(maxBytes(MaxPasswordBytes)),
		validation.Match(digitRe).Error(ErrPasswordDigit.Error()),
		validation.Match(lowerRe).Error(ErrPasswordLower.Error()),
		validation.Match(upperRe).Error(ErrPasswordUpper.Error()),
		validation.Match(symbolRe).Error(ErrPasswordSymbol.Error()),
	}
}

// CheckPasswordPolicy returns the first policy rule password violates.
func CheckPasswordPolicy(password string) error {
	return validation.Validate(password, PasswordPolicy()...)
}

func maxBytes(limit int) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if len(s) > limit {
			return ErrPasswordTooLong
		}
		return nil
	}
}
