// Package core holds the personal-finance domain model: currency-tagged
// money, jobs, people and the families they form.
//
// The types here do no I/O and carry no locking. Callers sharing a Person,
// Job or Family across goroutines must synchronize access themselves.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// Currency is an ISO-like currency code. Only the constants below are valid.
type Currency string

const (
	USD Currency = "USD"
	GBP Currency = "GBP"
	EUR Currency = "EUR"
	CAN Currency = "CAN"
)

// ErrInvalidCurrency is returned by ParseCurrency for codes outside the supported set.
var ErrInvalidCurrency = errors.New("invalid currency")

// Fixed rates: one USD buys this much of the keyed currency.
var usdRates = map[Currency]float64{
	USD: 1,
	GBP: 0.5,
	EUR: 1.5,
	CAN: 1.25,
}

// Currencies returns the supported currencies in a stable order.
func Currencies() []Currency {
	return []Currency{USD, GBP, EUR, CAN}
}

// ParseCurrency normalizes s to upper case and checks it against the
// supported set. Use it on untrusted input before calling NewMoney.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(s))
	if _, ok := usdRates[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, s)
	}
	return c, nil
}

// Money is an immutable integer amount tagged with a currency.
// The zero value is not valid; build values with NewMoney.
type Money struct {
	amount   int
	currency Currency
}

// NewMoney returns amount in currency. The currency is matched
// case-insensitively. An unsupported currency is a programming error and
// panics.
func NewMoney(amount int, currency string) Money {
	c, err := ParseCurrency(currency)
	if err != nil {
		panic(fmt.Sprintf("core: %v", err))
	}
	return Money{amount: amount, currency: c}
}

// Amount returns the integer amount.
func (m Money) Amount() int {
	return m.amount
}

// Currency returns the upper-case currency code.
func (m Money) Currency() Currency {
	return m.currency
}

// Convert returns m expressed in the target currency. Conversion pivots
// through USD and truncates toward zero after each hop, so chained
// conversions do not always round-trip. Panics if to is unsupported.
func (m Money) Convert(to string) Money {
	target := NewMoney(0, to).currency
	if target == m.currency {
		return m
	}

	usd := m.amount
	if m.currency != USD {
		usd = int(float64(m.amount) / usdRates[m.currency])
	}

	out := usd
	if target != USD {
		out = int(float64(usd) * usdRates[target])
	}
	return Money{amount: out, currency: target}
}

// Add converts m into other's currency and returns the sum in that currency.
func (m Money) Add(other Money) Money {
	c := m.Convert(string(other.currency))
	return Money{amount: c.amount + other.amount, currency: other.currency}
}

// Subtract converts m into other's currency and returns m - other in that currency.
func (m Money) Subtract(other Money) Money {
	c := m.Convert(string(other.currency))
	return Money{amount: c.amount - other.amount, currency: other.currency}
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}
