package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/krishivishwa/storefront/domain/consultation"
	"github.com/krishivishwa/storefront/domain/content"
)

// BookingRepository In-memory booking persistence.
type BookingRepository struct {
	mu       sync.Mutex
	bookings []*consultation.Booking
}

// NewBookingRepository Create an empty booking repository.
func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// Save Persist a booking.
func (r *BookingRepository) Save(ctx context.Context, b *consultation.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, b)
	return nil
}

// ContactRepository In-memory contact message persistence.
type ContactRepository struct {
	mu       sync.Mutex
	messages []*consultation.ContactMessage
}

// NewContactRepository Create an empty contact repository.
func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

// Save Persist a contact message.
func (r *ContactRepository) Save(ctx context.Context, m *consultation.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, m)
	return nil
}

// SubscriberRepository In-memory newsletter signups.
type SubscriberRepository struct {
	mu          sync.Mutex
	subscribers map[string]content.Subscriber
}

// NewSubscriberRepository Create an empty subscriber repository.
func NewSubscriberRepository() *SubscriberRepository {
	return &SubscriberRepository{subscribers: make(map[string]content.Subscriber)}
}

// Add Store a signup; duplicate emails are a conflict.
func (r *SubscriberRepository) Add(ctx context.Context, s content.Subscriber) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(s.Email)
	if _, ok := r.subscribers[key]; ok {
		return content.ErrAlreadySubscribed
	}
	r.subscribers[key] = s
	return nil
}
