/*
Package consultation Application layer for consultancy bookings and
contact messages: validate, store, acknowledge.
*/
package consultation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/krishivishwa/storefront/domain/consultation"
	apperrors "github.com/krishivishwa/storefront/pkg/errors"
	"github.com/krishivishwa/storefront/pkg/logger"
	"github.com/krishivishwa/storefront/pkg/validate"
)

// Service Booking and contact intake.
type Service struct {
	bookings consultation.BookingRepository
	contacts consultation.ContactRepository
}

// NewService Create consultation application service.
func NewService(bookings consultation.BookingRepository, contacts consultation.ContactRepository) *Service {
	return &Service{bookings: bookings, contacts: contacts}
}

// BookConsultation validates and stores a booking request. Validation
// failures return every field error at once.
func (s *Service) BookConsultation(ctx context.Context, req BookingRequest) (*BookingResponse, error) {
	b := consultation.Booking{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		FarmSize:         req.FarmSize,
		CropType:         req.CropType,
		Location:         req.Location,
		ConsultationType: req.ConsultationType,
		Description:      req.Description,
		CreatedAt:        time.Now(),
	}

	if errs := b.Validate(); len(errs) > 0 {
		return nil, fieldErrors(errs)
	}

	if err := s.bookings.Save(ctx, &b); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to save booking")
	}

	logger.Info("consultation booked",
		zap.String("booking_id", b.ID),
		zap.String("consultation_type", b.ConsultationType))

	return toBookingResponse(&b), nil
}

// SubmitContact validates and stores a contact message. Inputs pass
// through the same live filters the form applies while typing.
func (s *Service) SubmitContact(ctx context.Context, req ContactRequest) (*ContactResponse, error) {
	m := consultation.ContactMessage{
		ID:        uuid.NewString(),
		Name:      validate.FilterName(req.Name),
		Email:     req.Email,
		Phone:     validate.FilterPhone(req.Phone),
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if errs := m.Validate(); len(errs) > 0 {
		return nil, fieldErrors(errs)
	}

	if err := s.contacts.Save(ctx, &m); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to save contact message")
	}

	logger.Info("contact message received", zap.String("contact_id", m.ID))
	return toContactResponse(&m), nil
}

// fieldErrors wraps per-field validation errors in a single AppError
// carrying the details.
func fieldErrors(errs map[string]string) *apperrors.AppError {
	appErr := apperrors.Validation("validation failed")
	appErr.Details = errs
	return appErr
}
