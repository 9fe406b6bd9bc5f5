/*
Package validate holds the storefront's field validation rules.

Every validator takes a raw input string and returns "" when the value is
acceptable or a human-readable error otherwise. The "required" check always
runs before any format check so the most specific message wins. Filter
functions implement the live input filtering applied while typing; they never
reject, they strip.
*/
package validate

import (
	"regexp"
	"strings"
)

var (
	nameRe     = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe    = regexp.MustCompile(`^[6-9]\d{9}$`)
	digitRe    = regexp.MustCompile(`\d`)
	nonLetter  = regexp.MustCompile(`[^a-zA-Z\s]`)
	nonDigitRe = regexp.MustCompile(`[^0-9]`)
)

// FilterName strips every character that is not a letter or space.
func FilterName(s string) string {
	return nonLetter.ReplaceAllString(s, "")
}

// FilterPhone strips non-digits and caps the value at 10 digits.
func FilterPhone(s string) string {
	digits := nonDigitRe.ReplaceAllString(s, "")
	if len(digits) > 10 {
		return digits[:10]
	}
	return digits
}

// Name validates a contact name: 2-50 letters and spaces, no surrounding
// whitespace. The surrounding-whitespace rule is defense in depth; the live
// filter keeps the character set clean but not the edges.
func Name(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "Name is required"
	}
	if len(trimmed) < 2 {
		return "Name must be at least 2 characters long"
	}
	if !nameRe.MatchString(trimmed) {
		return "Name must contain only letters and spaces"
	}
	if len(trimmed) > 50 {
		return "Name must be less than 50 characters"
	}
	if trimmed != name {
		return "Name cannot start or end with spaces"
	}
	return ""
}

// BookingName is the consultancy booking variant of Name: same character
// rules, minimum three characters.
func BookingName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "This field is required"
	}
	if !nameRe.MatchString(trimmed) {
		return "Name can contain only letters and spaces"
	}
	if len(trimmed) < 3 {
		return "Name must be at least 3 characters"
	}
	return ""
}

// Email validates a local@domain.tld shape. No TLD length rules.
func Email(email string) string {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "Email is required"
	}
	if !emailRe.MatchString(trimmed) {
		return "Please enter a valid email format (example@domain.com)"
	}
	return ""
}

// BookingEmail is the consultancy booking variant of Email with the
// booking form's wording.
func BookingEmail(email string) string {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "This field is required"
	}
	if !emailRe.MatchString(trimmed) {
		return "Please enter a valid email"
	}
	return ""
}

// Phone validates an Indian mobile number: exactly 10 digits, first in 6-9.
func Phone(phone string) string {
	if strings.TrimSpace(phone) == "" {
		return "Phone number is required"
	}
	if !phoneRe.MatchString(strings.TrimSpace(phone)) {
		return "Phone must be exactly 10 digits and start with 6, 7, 8, or 9"
	}
	return ""
}

// BookingPhone is the consultancy booking variant of Phone with the
// booking form's wording.
func BookingPhone(phone string) string {
	if strings.TrimSpace(phone) == "" {
		return "This field is required"
	}
	if !phoneRe.MatchString(strings.TrimSpace(phone)) {
		return "Phone must be 10 digits and start with 6,7,8 or 9"
	}
	return ""
}

// Message validates a free-text message: 5 to 50 whitespace-delimited words.
func Message(message string) string {
	if strings.TrimSpace(message) == "" {
		return "Message is required"
	}
	words := WordCount(message)
	if words < 5 {
		return "Message must contain at least 5 words"
	}
	if words > 50 {
		return "Message must not exceed 50 words"
	}
	return ""
}

// WordCount counts non-empty whitespace-delimited tokens.
func WordCount(message string) int {
	return len(strings.Fields(message))
}

// FarmSize requires a value containing at least one digit ("2 acres").
func FarmSize(farmSize string) string {
	if strings.TrimSpace(farmSize) == "" {
		return "This field is required"
	}
	if !digitRe.MatchString(farmSize) {
		return "Please specify farm size (e.g., '2 acres')"
	}
	return ""
}

// CropType requires at least two characters.
func CropType(cropType string) string {
	trimmed := strings.TrimSpace(cropType)
	if trimmed == "" {
		return "This field is required"
	}
	if len(trimmed) < 2 {
		return "Crop type must be at least 2 characters"
	}
	return ""
}

// Location allows letters and spaces only.
func Location(location string) string {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return "This field is required"
	}
	if !nameRe.MatchString(trimmed) {
		return "Location can contain only letters and spaces"
	}
	return ""
}

// Required is the generic non-empty check used by the checkout wizard's
// shipping step, with the field label baked into the message.
func Required(value, label string) string {
	if strings.TrimSpace(value) == "" {
		return label + " is required"
	}
	return ""
}
