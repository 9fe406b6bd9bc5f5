package consultation

import (
	"time"

	"github.com/krishivishwa/storefront/domain/consultation"
)

// BookingRequest Consultancy booking payload.
type BookingRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	FarmSize         string `json:"farm_size"`
	CropType         string `json:"crop_type"`
	Location         string `json:"location"`
	ConsultationType string `json:"consultation_type"`
	Description      string `json:"description"`
}

// BookingResponse Stored booking acknowledgement.
type BookingResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	FarmSize         string    `json:"farm_size"`
	CropType         string    `json:"crop_type"`
	Location         string    `json:"location"`
	ConsultationType string    `json:"consultation_type"`
	Description      string    `json:"description,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// ContactRequest Contact page payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ContactResponse Stored contact message acknowledgement.
type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func toBookingResponse(b *consultation.Booking) *BookingResponse {
	return &BookingResponse{
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

func toContactResponse(m *consultation.ContactMessage) *ContactResponse {
	return &ContactResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}
