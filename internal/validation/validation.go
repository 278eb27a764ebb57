package validation

import (
	"errors"
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Validation checks run per field, in declaration order (fullname, email,
// phone_number, password), and stop at the first failure. Only that first
// message is returned to the client.

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^0\d+$`)
	lowerPattern = regexp.MustCompile(`[a-z]`)
	spacePattern = regexp.MustCompile(`\s`)
)

// ValidateRegister checks a registration payload.
func ValidateRegister(payload map[string]any) error {
	fullname, err := requiredString(payload, "fullname", "Fullname")
	if err != nil {
		return err
	}
	if err := validateFullname(fullname); err != nil {
		return err
	}

	email, err := requiredString(payload, "email", "Email")
	if err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}

	password, err := requiredString(payload, "password", "Password")
	if err != nil {
		return err
	}
	return validatePassword(password)
}

// ValidateLogin checks a login payload.
func ValidateLogin(payload map[string]any) error {
	email, err := requiredString(payload, "email", "Email")
	if err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}

	password, err := requiredString(payload, "password", "Password")
	if err != nil {
		return err
	}
	return validatePassword(password)
}

// ValidateCreateContact checks a create-contact payload.
func ValidateCreateContact(payload map[string]any) error {
	fullname, err := requiredString(payload, "fullname", "Fullname")
	if err != nil {
		return err
	}
	if err := validateFullname(fullname); err != nil {
		return err
	}

	phone, err := requiredString(payload, "phone_number", "Phone number")
	if err != nil {
		return err
	}
	return validatePhoneNumber(phone)
}

// ValidateUpdateContact checks an update-contact payload. Both fields are
// optional; omitted fields keep their stored value, present fields must
// still satisfy the content rules.
func ValidateUpdateContact(payload map[string]any) error {
	fullname, err := optionalString(payload, "fullname", "Fullname")
	if err != nil {
		return err
	}
	if fullname != nil {
		if err := validateFullname(*fullname); err != nil {
			return err
		}
	}

	phone, err := optionalString(payload, "phone_number", "Phone number")
	if err != nil {
		return err
	}
	if phone != nil {
		if err := validatePhoneNumber(*phone); err != nil {
			return err
		}
	}
	return nil
}

// Length rules count characters, not bytes, so non-ASCII names and
// addresses measure the way they read.

func validateFullname(fullname string) error {
	if n := utf8.RuneCountInString(fullname); n < 10 || n > 200 {
		return errors.New("Fullname must be between 10 and 200 characters long.")
	}
	for _, r := range fullname {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return errors.New("Fullname must contain only letters and spaces.")
		}
	}
	return nil
}

func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return errors.New("Email is not a valid email address.")
	}
	if n := utf8.RuneCountInString(email); n < 10 || n > 200 {
		return errors.New("Email must be between 10 and 200 characters long.")
	}
	return nil
}

func validatePassword(password string) error {
	if n := utf8.RuneCountInString(password); n < 6 || n > 32 {
		return errors.New("Password must be at least 6 to 32 characters long.")
	}
	if !lowerPattern.MatchString(password) {
		return errors.New("Password must contain at least one lowercase letter.")
	}
	if spacePattern.MatchString(password) {
		return errors.New("Password must not contain spaces.")
	}
	return nil
}

func validatePhoneNumber(phone string) error {
	if !phonePattern.MatchString(phone) {
		return errors.New("Phone number must start with zero, contain only numbers, and have no spaces.")
	}
	if n := len(phone); n < 10 || n > 20 {
		return errors.New("Phone number length must be between 10 and 20 digits.")
	}
	return nil
}

// requiredString reads a mandatory string value from the payload.
func requiredString(payload map[string]any, key, label string) (string, error) {
	v, exists := payload[key]
	if !exists {
		return "", errors.New(label + " is required.")
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.New(label + " must be a string.")
	}
	return s, nil
}

// optionalString reads an optional string value from the payload. An absent
// key is nil; a present value of any other type is rejected.
func optionalString(payload map[string]any, key, label string) (*string, error) {
	v, exists := payload[key]
	if !exists {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, errors.New(label + " must be a string.")
	}
	return &s, nil
}
