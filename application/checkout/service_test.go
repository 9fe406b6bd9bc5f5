package checkout

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartapp "github.com/krishivishwa/storefront/application/cart"
	domaincart "github.com/krishivishwa/storefront/domain/cart"
	"github.com/krishivishwa/storefront/domain/catalog"
	"github.com/krishivishwa/storefront/domain/checkout"
	"github.com/krishivishwa/storefront/domain/shared"
	"github.com/krishivishwa/storefront/infrastructure/persistence/memory"
	apperrors "github.com/krishivishwa/storefront/pkg/errors"
)

type stubScreenshotStore struct {
	saved []ScreenshotUpload
	fail  error
}

func (s *stubScreenshotStore) Save(ctx context.Context, upload ScreenshotUpload) (checkout.Screenshot, error) {
	if s.fail != nil {
		return checkout.Screenshot{}, s.fail
	}
	s.saved = append(s.saved, upload)
	return checkout.Screenshot{
		Filename:    upload.Filename,
		ContentType: upload.ContentType,
		Size:        upload.Size,
		StoredPath:  "uploads/" + upload.Filename,
	}, nil
}

type capturingPublisher struct {
	published []shared.DomainEvent
}

func (p *capturingPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	p.published = append(p.published, events...)
	return nil
}

type checkoutFixture struct {
	service   *Service
	carts     cartapp.Store
	orders    *memory.OrderRepository
	shots     *stubScreenshotStore
	publisher *capturingPublisher
}

func newFixture() *checkoutFixture {
	carts := memory.NewCartStore()
	orders := memory.NewOrderRepository()
	shots := &stubScreenshotStore{}
	publisher := &capturingPublisher{}

	service := NewService(
		memory.NewWizardStore(),
		carts,
		orders,
		shots,
		publisher,
		domaincart.DefaultRules(),
		checkout.DefaultScreenshotPolicy(),
	)
	service.now = func() time.Time {
		return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	}

	return &checkoutFixture{
		service:   service,
		carts:     carts,
		orders:    orders,
		shots:     shots,
		publisher: publisher,
	}
}

func (f *checkoutFixture) fillCart(t *testing.T, sessionID string) {
	t.Helper()
	err := f.carts.With(sessionID, func(c *domaincart.Cart) error {
		_, err := c.Add(catalog.Product{
			ID: "p1", Name: "Bio Boost", Category: "Biofertilizers", Price: shared.Rupees(300),
		}, 1)
		return err
	})
	require.NoError(t, err)
}

func (f *checkoutFixture) fillShipping(t *testing.T, sessionID string) {
	t.Helper()
	_, err := f.service.UpdateShipping(context.Background(), sessionID, UpdateShippingRequest{
		Fields: map[string]string{
			"firstName": "Asha",
			"lastName":  "Patel",
			"email":     "asha@example.com",
			"phone":     "9876543210",
			"address":   "12 Farm Road",
			"city":      "Nashik",
			"state":     "Maharashtra",
			"zipCode":   "422001",
		},
	})
	require.NoError(t, err)
}

func TestStateStartsAtReview(t *testing.T) {
	f := newFixture()

	state, err := f.service.State(context.Background(), "sess")
	require.NoError(t, err)

	assert.Equal(t, 1, state.Step)
	assert.Equal(t, "Review Order", state.StepName)
	assert.Equal(t, "India", state.Shipping.Country)
	assert.Equal(t, "online", state.Payment.Method)
}

func TestNextBlocksOnIncompleteShipping(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.service.Next(ctx, "sess")
	require.NoError(t, err)

	state, err := f.service.Next(ctx, "sess")
	require.NoError(t, err)

	assert.Equal(t, 2, state.Step)
	assert.Equal(t, "First name is required", state.Errors["firstName"])
	assert.Equal(t, "Email is required", state.Errors["email"])
}

func TestUpdateShippingClearsFieldErrors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.service.Next(ctx, "sess")
	f.service.Next(ctx, "sess")

	state, err := f.service.UpdateShipping(ctx, "sess", UpdateShippingRequest{
		Fields: map[string]string{"email": "asha@example.com"},
	})
	require.NoError(t, err)

	assert.NotContains(t, state.Errors, "email")
	assert.Contains(t, state.Errors, "firstName")
}

func TestCheckoutTotalsFollowPaymentMethod(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fillCart(t, "sess")

	state, err := f.service.State(ctx, "sess")
	require.NoError(t, err)
	// 300 + 50 checkout shipping + 54 GST
	assert.Equal(t, int64(404), state.Cart.Totals.Total)

	state, err = f.service.UpdatePayment(ctx, "sess", UpdatePaymentRequest{Method: "cod"})
	require.NoError(t, err)
	assert.Equal(t, int64(20), state.Cart.Totals.CODSurcharge)
	assert.Equal(t, int64(424), state.Cart.Totals.Total)
}

func TestUploadScreenshotRejectsNonImage(t *testing.T) {
	f := newFixture()

	state, err := f.service.UploadScreenshot(context.Background(), "sess", ScreenshotUpload{
		Filename:    "receipt.pdf",
		ContentType: "application/pdf",
		Size:        1024,
		Content:     strings.NewReader("%PDF"),
	})

	assert.True(t, apperrors.Is(err, apperrors.CodeInvalidScreenshot))
	require.NotNil(t, state)
	assert.Equal(t, "Please upload a valid image file (JPG, PNG, GIF)", state.Errors["transactionScreenshot"])
	assert.Empty(t, f.shots.saved)
}

func TestUploadScreenshotStoresAndAttaches(t *testing.T) {
	f := newFixture()

	state, err := f.service.UploadScreenshot(context.Background(), "sess", ScreenshotUpload{
		Filename:    "payment.png",
		ContentType: "image/png",
		Size:        2048,
		Content:     strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)

	assert.True(t, state.Payment.HasScreenshot)
	require.Len(t, f.shots.saved, 1)
	assert.Equal(t, "payment.png", f.shots.saved[0].Filename)
}

func TestPlaceOrderRequiresConfirmationStep(t *testing.T) {
	f := newFixture()
	f.fillCart(t, "sess")

	_, err := f.service.PlaceOrder(context.Background(), "sess")
	assert.True(t, apperrors.Is(err, apperrors.CodeStepBlocked))
}

func TestPlaceOrderFullCODFlow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fillCart(t, "sess")
	f.fillShipping(t, "sess")

	_, err := f.service.UpdatePayment(ctx, "sess", UpdatePaymentRequest{Method: "cod"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		state, err := f.service.Next(ctx, "sess")
		require.NoError(t, err)
		require.Empty(t, state.Errors, "step %d should not block", state.Step)
	}

	placed, err := f.service.PlaceOrder(ctx, "sess")
	require.NoError(t, err)

	assert.Equal(t, "ORD-1741608000000", placed.ID)
	assert.Equal(t, "pending", placed.Status)
	assert.Equal(t, "cod", placed.PaymentMethod)
	// 300 + 50 shipping + 54 GST + 20 COD surcharge
	assert.Equal(t, int64(424), placed.Totals.Total)
	assert.Equal(t, "Asha", placed.Customer.FirstName)

	// Cart is cleared and the wizard reset for the next purchase.
	cartState, err := f.service.State(ctx, "sess")
	require.NoError(t, err)
	assert.Equal(t, 1, cartState.Step)
	assert.Zero(t, cartState.Cart.ItemCount)

	require.Len(t, f.publisher.published, 1)
	assert.Equal(t, "order.placed", f.publisher.published[0].EventName())

	stored, err := f.orders.FindByID(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, placed.ID, stored.ID())
}

func TestPlaceOrderOnlineNeedsPaymentProof(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fillCart(t, "sess")
	f.fillShipping(t, "sess")

	f.service.Next(ctx, "sess")
	f.service.Next(ctx, "sess")

	// Step 3 with online payment blocks without screenshot and reference.
	state, err := f.service.Next(ctx, "sess")
	require.NoError(t, err)
	assert.Equal(t, 3, state.Step)
	assert.Equal(t, "Payment screenshot is required", state.Errors["transactionScreenshot"])
	assert.Equal(t, "Transaction ID is required", state.Errors["transactionId"])

	_, err = f.service.UploadScreenshot(ctx, "sess", ScreenshotUpload{
		Filename:    "payment.jpg",
		ContentType: "image/jpeg",
		Size:        4096,
		Content:     strings.NewReader("jpeg"),
	})
	require.NoError(t, err)

	txn := "TXN12345678"
	_, err = f.service.UpdatePayment(ctx, "sess", UpdatePaymentRequest{TransactionID: &txn})
	require.NoError(t, err)

	state, err = f.service.Next(ctx, "sess")
	require.NoError(t, err)
	require.Equal(t, 4, state.Step)

	placed, err := f.service.PlaceOrder(ctx, "sess")
	require.NoError(t, err)
	assert.Equal(t, "online", placed.PaymentMethod)
	assert.Equal(t, "TXN12345678", placed.TransactionID)
	assert.True(t, placed.HasScreenshot)
	assert.Equal(t, int64(404), placed.Totals.Total)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.fillShipping(t, "sess")
	_, err := f.service.UpdatePayment(ctx, "sess", UpdatePaymentRequest{Method: "cod"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		f.service.Next(ctx, "sess")
	}

	_, err = f.service.PlaceOrder(ctx, "sess")
	assert.True(t, apperrors.Is(err, apperrors.CodeCartEmpty))
}

func TestListOrdersNewestFirst(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	times := []time.Time{
		time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC),
	}
	var call int
	f.service.now = func() time.Time {
		ts := times[call]
		call++
		return ts
	}

	for _, session := range []string{"s1", "s2"} {
		f.fillCart(t, session)
		f.fillShipping(t, session)
		_, err := f.service.UpdatePayment(ctx, session, UpdatePaymentRequest{Method: "cod"})
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			f.service.Next(ctx, session)
		}
		_, err = f.service.PlaceOrder(ctx, session)
		require.NoError(t, err)
	}

	orders, err := f.service.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.True(t, orders[0].CreatedAt.After(orders[1].CreatedAt))
}

func TestGetOrderNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.service.GetOrder(context.Background(), "ORD-0")
	assert.True(t, apperrors.Is(err, apperrors.CodeOrderNotFound))
}
