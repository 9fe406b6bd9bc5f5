package shared

import "errors"

// Money value object. Amounts are whole rupees; catalog prices carry no
// paise in this store, and the only rounding point is the GST line.
type Money struct {
	amount   int64
	currency string
}

// NewMoney creates a Money value object.
func NewMoney(amount int64, currency string) Money {
	if currency == "" {
		currency = "INR"
	}
	return Money{amount: amount, currency: currency}
}

// Rupees is shorthand for NewMoney(amount, "INR").
func Rupees(amount int64) Money {
	return NewMoney(amount, "INR")
}

func (m Money) Amount() int64    { return m.amount }
func (m Money) Currency() string { return m.currency }
func (m Money) IsZero() bool     { return m.amount == 0 }

// Add returns the sum of two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, errors.New("cannot add money with different currencies")
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// MultiplyInt scales the amount by a non-negative quantity.
func (m Money) MultiplyInt(n int) (Money, error) {
	if n < 0 {
		return Money{}, errors.New("cannot multiply money by a negative quantity")
	}
	return Money{amount: m.amount * int64(n), currency: m.currency}, nil
}

// Percent returns percent% of the amount, rounded half up.
func (m Money) Percent(percent int64) Money {
	scaled := m.amount * percent
	rounded := (scaled + 50) / 100
	if scaled < 0 {
		rounded = (scaled - 50) / 100
	}
	return Money{amount: rounded, currency: m.currency}
}

// IsGreaterThan reports whether m exceeds other.
func (m Money) IsGreaterThan(other Money) bool {
	return m.amount > other.amount
}

// Equals reports value equality.
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}
