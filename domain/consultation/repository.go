package consultation

import "context"

// BookingRepository Booking persistence.
type BookingRepository interface {
	Save(ctx context.Context, b *Booking) error
}

// ContactRepository Contact message persistence.
type ContactRepository interface {
	Save(ctx context.Context, m *ContactMessage) error
}
