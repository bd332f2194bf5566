package utils

import "unicode"

// ValidatePasswordStrength enforces the change-password rule: at least 8
// characters with one lowercase, one uppercase, one digit and one symbol.
// Returns field-level errors suitable for a VALIDATION_ERROR response.
func ValidatePasswordStrength(password string) []FieldError {
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	var errs []FieldError
	if len(password) < 8 {
		errs = append(errs, FieldError{Field: "newPassword", Message: "must be at least 8 characters"})
	}
	if !hasLower {
		errs = append(errs, FieldError{Field: "newPassword", Message: "must contain a lowercase letter"})
	}
	if !hasUpper {
		errs = append(errs, FieldError{Field: "newPassword", Message: "must contain an uppercase letter"})
	}
	if !hasDigit {
		errs = append(errs, FieldError{Field: "newPassword", Message: "must contain a digit"})
	}
	if !hasSymbol {
		errs = append(errs, FieldError{Field: "newPassword", Message: "must contain a symbol"})
	}
	return errs
}
