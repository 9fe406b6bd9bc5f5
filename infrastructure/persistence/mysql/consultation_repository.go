package mysql

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/krishivishwa/storefront/domain/consultation"
	"github.com/krishivishwa/storefront/domain/content"
	"github.com/krishivishwa/storefront/infrastructure/persistence/mysql/po"
)

// BookingRepository MySQL/GORM implementation of booking persistence.
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository Create booking repository.
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Save Persist a booking.
func (r *BookingRepository) Save(ctx context.Context, b *consultation.Booking) error {
	bookingPO := po.FromBookingDomain(b)
	return r.db.WithContext(ctx).Create(&bookingPO).Error
}

// ContactRepository MySQL/GORM implementation of contact persistence.
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository Create contact repository.
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Save Persist a contact message.
func (r *ContactRepository) Save(ctx context.Context, m *consultation.ContactMessage) error {
	contactPO := po.FromContactDomain(m)
	return r.db.WithContext(ctx).Create(&contactPO).Error
}

// SubscriberRepository MySQL/GORM implementation of newsletter signups.
// The email column is the primary key, so duplicates surface as key
// violations and map to the domain's conflict error.
type SubscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository Create subscriber repository.
func NewSubscriberRepository(db *gorm.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

// Add Store a signup; duplicate emails are a conflict.
func (r *SubscriberRepository) Add(ctx context.Context, s content.Subscriber) error {
	subscriberPO := po.FromSubscriberDomain(s)
	err := r.db.WithContext(ctx).Create(&subscriberPO).Error
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return content.ErrAlreadySubscribed
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return content.ErrAlreadySubscribed
		}
		return err
	}
	return nil
}
