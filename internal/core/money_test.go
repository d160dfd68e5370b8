package core

import (
	"errors"
	"strings"
	"testing"
)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestParseCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want Currency
		ok   bool
	}{
		{"USD", USD, true},
		{"usd", USD, true},
		{"gBp", GBP, true},
		{"EUR", EUR, true},
		{"can", CAN, true},
		{"JPY", "", false},
		{"", "", false},
		{" USD", "", false},
	}
	for _, tc := range cases {
		got, err := ParseCurrency(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Fatalf("%q expected %s, got %s (err=%v)", tc.in, tc.want, got, err)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidCurrency) {
			t.Fatalf("%q expected ErrInvalidCurrency, got %v", tc.in, err)
		}
	}
}

func TestNewMoneyNormalizesCurrency(t *testing.T) {
	a := NewMoney(100, "usd")
	b := NewMoney(100, "USD")
	if a.Currency() != b.Currency() || a.Currency() != USD {
		t.Fatalf("expected USD for both, got %s and %s", a.Currency(), b.Currency())
	}
	if a != b {
		t.Fatalf("expected equal values, got %v and %v", a, b)
	}
}

func TestNewMoneyInvalidCurrencyPanics(t *testing.T) {
	mustPanic(t, "NewMoney JPY", func() { NewMoney(1, "JPY") })
	mustPanic(t, "NewMoney empty", func() { NewMoney(1, "") })
}

func TestConvertIdentity(t *testing.T) {
	for _, c := range Currencies() {
		for _, amount := range []int{0, 1, -7, 123456, -1000001} {
			m := NewMoney(amount, string(c))
			got := m.Convert(strings.ToLower(string(c)))
			if got != m {
				t.Fatalf("%v converted to itself gave %v", m, got)
			}
		}
	}
}

func TestConvert(t *testing.T) {
	cases := []struct {
		name   string
		in     Money
		to     string
		amount int
	}{
		{"zero", NewMoney(0, "USD"), "GBP", 0},
		{"negative", NewMoney(-100, "USD"), "GBP", -50},
		{"large", NewMoney(1_000_000, "USD"), "GBP", 500_000},
		{"usd to eur", NewMoney(100, "USD"), "EUR", 150},
		{"usd to can", NewMoney(100, "USD"), "CAN", 125},
		{"gbp to usd", NewMoney(50, "GBP"), "USD", 100},
		{"gbp to eur", NewMoney(15, "GBP"), "eur", 45},
		{"truncates small", NewMoney(1, "USD"), "GBP", 0},
		{"truncates toward zero", NewMoney(-1, "USD"), "GBP", 0},
		{"truncates each hop", NewMoney(10, "EUR"), "GBP", 3},
	}
	for _, tc := range cases {
		got := tc.in.Convert(tc.to)
		if got.Amount() != tc.amount {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.amount, got.Amount())
		}
		if got.Currency() != Currency(strings.ToUpper(tc.to)) {
			t.Fatalf("%s: expected currency %s, got %s", tc.name, strings.ToUpper(tc.to), got.Currency())
		}
	}
}

func TestConvertChainRoundTrip(t *testing.T) {
	start := NewMoney(100, "USD")
	got := start.Convert("GBP").Convert("EUR").Convert("CAN").Convert("USD")
	if got != start {
		t.Fatalf("expected %v after round trip, got %v", start, got)
	}
}

func TestConvertInvalidTargetPanics(t *testing.T) {
	mustPanic(t, "Convert XYZ", func() { NewMoney(1, "USD").Convert("XYZ") })
}

func TestAddAndSubtract(t *testing.T) {
	usd := NewMoney(100, "USD")
	gbp := NewMoney(50, "GBP")

	sum := usd.Add(gbp)
	if sum.Amount() != 100 || sum.Currency() != GBP {
		t.Fatalf("expected 100 GBP, got %v", sum)
	}

	diff := usd.Subtract(NewMoney(20, "GBP"))
	if diff.Amount() != 30 || diff.Currency() != GBP {
		t.Fatalf("expected 30 GBP, got %v", diff)
	}

	if usd.Amount() != 100 || usd.Currency() != USD {
		t.Fatalf("operands must not change, got %v", usd)
	}
}

func TestMultipleCurrencyOperations(t *testing.T) {
	usd := NewMoney(100, "USD")
	gbp := NewMoney(50, "GBP")
	eur := NewMoney(150, "EUR")

	got := usd.Convert("EUR").Add(gbp.Convert("EUR")).Add(eur)
	if got.Currency() != EUR || got.Amount() != 450 {
		t.Fatalf("expected 450 EUR, got %v", got)
	}
}

func TestMoneyString(t *testing.T) {
	if s := NewMoney(-42, "can").String(); s != "-42 CAN" {
		t.Fatalf("unexpected string %q", s)
	}
}
