/*
Package checkout Application layer for the checkout wizard and order
placement. The wizard lives in a session store next to the cart; placing
an order snapshots both, persists the order, publishes its events, and
resets the session.
*/
package checkout

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	cartapp "github.com/krishivishwa/storefront/application/cart"
	"github.com/krishivishwa/storefront/domain/cart"
	"github.com/krishivishwa/storefront/domain/checkout"
	"github.com/krishivishwa/storefront/domain/order"
	"github.com/krishivishwa/storefront/domain/shared"
	apperrors "github.com/krishivishwa/storefront/pkg/errors"
	"github.com/krishivishwa/storefront/pkg/logger"
)

// WizardStore Session-scoped wizard storage, same contract as the cart
// store: fn runs under the store's lock.
type WizardStore interface {
	With(sessionID string, fn func(*checkout.Wizard) error) error
	Drop(sessionID string)
}

// ScreenshotUpload An incoming payment-proof file.
type ScreenshotUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ScreenshotStore Persists accepted payment proofs and returns where they
// landed.
type ScreenshotStore interface {
	Save(ctx context.Context, upload ScreenshotUpload) (checkout.Screenshot, error)
}

// Service Checkout orchestration for one storefront session.
type Service struct {
	wizards     WizardStore
	carts       cartapp.Store
	orders      order.Repository
	screenshots ScreenshotStore
	publisher   shared.EventPublisher
	rules       cart.Rules
	policy      checkout.ScreenshotPolicy

	now func() time.Time
}

// NewService Create checkout application service.
func NewService(
	wizards WizardStore,
	carts cartapp.Store,
	orders order.Repository,
	screenshots ScreenshotStore,
	publisher shared.EventPublisher,
	rules cart.Rules,
	policy checkout.ScreenshotPolicy,
) *Service {
	return &Service{
		wizards:     wizards,
		carts:       carts,
		orders:      orders,
		screenshots: screenshots,
		publisher:   publisher,
		rules:       rules,
		policy:      policy,
		now:         time.Now,
	}
}

// State returns the wizard's current step, forms, field errors, and the
// checkout totals for the selected payment method.
func (s *Service) State(ctx context.Context, sessionID string) (*WizardResponse, error) {
	var resp *WizardResponse
	err := s.wizards.With(sessionID, func(w *checkout.Wizard) error {
		return s.carts.With(sessionID, func(c *cart.Cart) error {
			resp = toWizardResponse(w, c, s.rules)
			return nil
		})
	})
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}
	return resp, nil
}

// Next advances the wizard one step. A validation failure returns the
// field errors without moving.
func (s *Service) Next(ctx context.Context, sessionID string) (*WizardResponse, error) {
	return s.transition(ctx, sessionID, func(w *checkout.Wizard) error {
		return w.Next()
	})
}

// Prev moves the wizard back one step, keeping entered data.
func (s *Service) Prev(ctx context.Context, sessionID string) (*WizardResponse, error) {
	return s.transition(ctx, sessionID, func(w *checkout.Wizard) error {
		w.Prev()
		return nil
	})
}

// UpdateShipping applies the given shipping fields, clearing each field's
// error as the form does while typing.
func (s *Service) UpdateShipping(ctx context.Context, sessionID string, req UpdateShippingRequest) (*WizardResponse, error) {
	return s.transition(ctx, sessionID, func(w *checkout.Wizard) error {
		for field, value := range req.Fields {
			w.SetShippingField(field, value)
		}
		return nil
	})
}

// UpdatePayment selects the payment method and records the transaction id.
func (s *Service) UpdatePayment(ctx context.Context, sessionID string, req UpdatePaymentRequest) (*WizardResponse, error) {
	return s.transition(ctx, sessionID, func(w *checkout.Wizard) error {
		if req.Method != "" {
			if err := w.SetPaymentMethod(cart.PaymentMethod(req.Method)); err != nil {
				return err
			}
		}
		if req.TransactionID != nil {
			w.SetTransactionID(*req.TransactionID)
		}
		return nil
	})
}

// UploadScreenshot validates the payment proof, stores it, and attaches it
// to the wizard. A rejected file returns the wizard state carrying the
// field error.
func (s *Service) UploadScreenshot(ctx context.Context, sessionID string, upload ScreenshotUpload) (*WizardResponse, error) {
	candidate := checkout.Screenshot{
		Filename:    upload.Filename,
		ContentType: upload.ContentType,
		Size:        upload.Size,
	}
	if msg := s.policy.Check(candidate); msg != "" {
		// Record the field error on the wizard before refusing.
		var resp *WizardResponse
		err := s.wizards.With(sessionID, func(w *checkout.Wizard) error {
			_ = w.AttachScreenshot(candidate, s.policy)
			return s.carts.With(sessionID, func(c *cart.Cart) error {
				resp = toWizardResponse(w, c, s.rules)
				return nil
			})
		})
		if err != nil {
			return nil, apperrors.FromDomainError(err)
		}
		return resp, apperrors.New(apperrors.CodeInvalidScreenshot, msg)
	}

	stored, err := s.screenshots.Save(ctx, upload)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to store screenshot")
	}

	return s.transition(ctx, sessionID, func(w *checkout.Wizard) error {
		return w.AttachScreenshot(stored, s.policy)
	})
}

// PlaceOrder cuts an order from the session's cart and wizard. On success
// the cart is cleared, the wizard reset, and the order's events published;
// on failure every piece of session state stays put so the customer can
// retry.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string) (*OrderResponse, error) {
	var placed *order.Order

	err := s.wizards.With(sessionID, func(w *checkout.Wizard) error {
		if err := w.BeginSubmit(); err != nil {
			return err
		}
		defer w.EndSubmit()

		return s.carts.With(sessionID, func(c *cart.Cart) error {
			payment := order.PaymentData{
				Method:        w.Payment().Method,
				TransactionID: w.Payment().TransactionID,
			}
			if shot := w.Payment().Screenshot; shot != nil {
				payment.HasScreenshot = true
				payment.ScreenshotRef = shot.StoredPath
			}

			o, err := order.Place(c, w.Shipping(), payment, s.rules, s.now())
			if err != nil {
				return err
			}
			if err := s.orders.Save(ctx, o); err != nil {
				return err
			}

			placed = o
			c.Clear()
			return nil
		})
	})
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}

	// Event delivery must not fail a placed order.
	if events := placed.PullEvents(); len(events) > 0 {
		if pubErr := s.publisher.Publish(ctx, events...); pubErr != nil {
			logger.Error("failed to publish order events",
				zap.String("order_id", placed.ID()),
				zap.Error(pubErr))
		}
	}

	s.wizards.Drop(sessionID)

	logger.Info("order placed",
		zap.String("order_id", placed.ID()),
		zap.String("session_id", sessionID),
		zap.Int64("total", placed.Totals().Total.Amount()))

	return toOrderResponse(placed), nil
}

// GetOrder returns a placed order for the confirmation page.
func (s *Service) GetOrder(ctx context.Context, id string) (*OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}
	return toOrderResponse(o), nil
}

// ListOrders returns all placed orders, newest first.
func (s *Service) ListOrders(ctx context.Context) ([]*OrderResponse, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to list orders")
	}
	out := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return out, nil
}

// transition runs a wizard mutation and returns the refreshed state. A
// blocked step is not an error at this level; the response carries the
// field errors.
func (s *Service) transition(ctx context.Context, sessionID string, fn func(*checkout.Wizard) error) (*WizardResponse, error) {
	var resp *WizardResponse

	err := s.wizards.With(sessionID, func(w *checkout.Wizard) error {
		if fnErr := fn(w); fnErr != nil {
			switch fnErr {
			case checkout.ErrStepBlocked, checkout.ErrInvalidScreenshot:
				// Field errors already recorded on the wizard.
			default:
				return fnErr
			}
		}
		return s.carts.With(sessionID, func(c *cart.Cart) error {
			resp = toWizardResponse(w, c, s.rules)
			return nil
		})
	})
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}
	return resp, nil
}
