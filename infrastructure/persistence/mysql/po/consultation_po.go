package po

import (
	"time"

	"github.com/krishivishwa/storefront/domain/consultation"
	"github.com/krishivishwa/storefront/domain/content"
)

// BookingPO Consultancy booking persistence object.
type BookingPO struct {
	ID               string    `gorm:"primaryKey;size:64"`
	Name             string    `gorm:"size:100;not null"`
	Email            string    `gorm:"size:255;not null"`
	Phone            string    `gorm:"size:20;not null"`
	FarmSize         string    `gorm:"size:100;not null"`
	CropType         string    `gorm:"size:100;not null"`
	Location         string    `gorm:"size:255;not null"`
	ConsultationType string    `gorm:"size:64;not null"`
	Description      string    `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"not null"`
}

func (BookingPO) TableName() string { return "consultation_bookings" }

// FromBookingDomain Convert domain model to persistence object.
func FromBookingDomain(b *consultation.Booking) BookingPO {
	return BookingPO{
		ID:               b.ID,
		Name:             b.Name,
		Email:            b.Email,
		Phone:            b.Phone,
		FarmSize:         b.FarmSize,
		CropType:         b.CropType,
		Location:         b.Location,
		ConsultationType: b.ConsultationType,
		Description:      b.Description,
		CreatedAt:        b.CreatedAt,
	}
}

// ContactMessagePO Contact message persistence object.
type ContactMessagePO struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Name      string    `gorm:"size:100;not null"`
	Email     string    `gorm:"size:255;not null"`
	Phone     string    `gorm:"size:20;not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (ContactMessagePO) TableName() string { return "contact_messages" }

// FromContactDomain Convert domain model to persistence object.
func FromContactDomain(m *consultation.ContactMessage) ContactMessagePO {
	return ContactMessagePO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// SubscriberPO Newsletter subscriber persistence object.
type SubscriberPO struct {
	Email        string    `gorm:"primaryKey;size:255"`
	SubscribedAt time.Time `gorm:"not null"`
}

func (SubscriberPO) TableName() string { return "newsletter_subscribers" }

// FromSubscriberDomain Convert domain model to persistence object.
func FromSubscriberDomain(s content.Subscriber) SubscriberPO {
	return SubscriberPO{Email: s.Email, SubscribedAt: s.SubscribedAt}
}
