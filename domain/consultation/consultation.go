/*
Package consultation Consultancy bookings and contact messages.

Both are write-once records: the storefront validates, stores, and
acknowledges. Follow-up happens offline.
*/
package consultation

import (
	"time"

	"github.com/krishivishwa/storefront/pkg/validate"
)

// Booking A consultancy booking request.
type Booking struct {
	ID               string
	Name             string
	Email            string
	Phone            string
	FarmSize         string
	CropType         string
	Location         string
	ConsultationType string
	Description      string // optional
	CreatedAt        time.Time
}

// Validate returns per-field errors, empty when the booking is valid.
func (b Booking) Validate() map[string]string {
	errs := make(map[string]string)
	if msg := validate.BookingName(b.Name); msg != "" {
		errs["name"] = msg
	}
	if msg := validate.BookingEmail(b.Email); msg != "" {
		errs["email"] = msg
	}
	if msg := validate.BookingPhone(b.Phone); msg != "" {
		errs["phone"] = msg
	}
	if msg := validate.FarmSize(b.FarmSize); msg != "" {
		errs["farmSize"] = msg
	}
	if msg := validate.CropType(b.CropType); msg != "" {
		errs["cropType"] = msg
	}
	if msg := validate.Location(b.Location); msg != "" {
		errs["location"] = msg
	}
	if b.ConsultationType == "" {
		errs["consultationType"] = "Please select consultation type"
	}
	return errs
}

// ContactMessage A message sent from the contact page.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Message   string
	CreatedAt time.Time
}

// Validate returns per-field errors using the contact form's rules.
func (m ContactMessage) Validate() map[string]string {
	errs := make(map[string]string)
	if msg := validate.Name(m.Name); msg != "" {
		errs["name"] = msg
	}
	if msg := validate.Email(m.Email); msg != "" {
		errs["email"] = msg
	}
	if msg := validate.Phone(m.Phone); msg != "" {
		errs["phone"] = msg
	}
	if msg := validate.Message(m.Message); msg != "" {
		errs["message"] = msg
	}
	return errs
}
