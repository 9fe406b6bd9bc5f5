package checkout

import (
	cartapp "github.com/krishivishwa/storefront/application/cart"
	"github.com/krishivishwa/storefront/domain/cart"
	"github.com/krishivishwa/storefront/domain/checkout"
	"github.com/krishivishwa/storefront/domain/order"
)

func toShippingResponse(s checkout.ShippingInfo) ShippingResponse {
	return ShippingResponse{
		FirstName:           s.FirstName,
		LastName:            s.LastName,
		Email:               s.Email,
		Phone:               s.Phone,
		Address:             s.Address,
		City:                s.City,
		State:               s.State,
		ZipCode:             s.ZipCode,
		Country:             s.Country,
		SpecialInstructions: s.SpecialInstructions,
	}
}

func toWizardResponse(w *checkout.Wizard, c *cart.Cart, rules cart.Rules) *WizardResponse {
	payment := w.Payment()
	return &WizardResponse{
		Step:     int(w.Step()),
		StepName: w.Step().String(),
		Shipping: toShippingResponse(w.Shipping()),
		Payment: PaymentResponse{
			Method:        string(payment.Method),
			TransactionID: payment.TransactionID,
			HasScreenshot: payment.Screenshot != nil,
		},
		Errors:        w.Errors(),
		AllowContinue: w.AllowContinue(),
		Cart:          cartapp.Snapshot(c, cart.CheckoutView, payment.Method, rules),
	}
}

func toOrderResponse(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = OrderItemResponse{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice().Amount(),
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal().Amount(),
			Image:       item.Image(),
		}
	}

	totals := o.Totals()
	return &OrderResponse{
		ID:    o.ID(),
		Items: items,
		Totals: cartapp.TotalsResponse{
			Subtotal:     totals.Subtotal.Amount(),
			ShippingFee:  totals.ShippingFee.Amount(),
			Tax:          totals.Tax.Amount(),
			CODSurcharge: totals.CODSurcharge.Amount(),
			Total:        totals.Total.Amount(),
		},
		Customer:      toShippingResponse(o.Customer()),
		PaymentMethod: string(o.Payment().Method),
		TransactionID: o.Payment().TransactionID,
		HasScreenshot: o.Payment().HasScreenshot,
		Status:        string(o.Status()),
		CreatedAt:     o.CreatedAt(),
	}
}
