// Package money provides currency-safe amounts in integer minor units plus a
// locale-aware display formatter. Arithmetic goes through go-money and
// shopspring/decimal so no precision is lost between parsing and display.
package money

import (
	"fmt"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Common ISO-4217 currency codes.
const (
	CAD = "CAD"
	USD = "USD"
	EUR = "EUR"
	CLP = "CLP"
	MXN = "MXN"
)

// Money is a monetary value in minor units of one currency.
type Money struct {
	m *gomoney.Money
}

// New creates Money from minor units (cents) and a currency code.
func New(cents int64, currencyCode string) *Money {
	return &Money{m: gomoney.New(cents, currencyCode)}
}

// NewFromDecimal creates Money from a decimal major-unit amount, rounding to
// the currency's fraction.
func NewFromDecimal(amount decimal.Decimal, currencyCode string) *Money {
	currency := gomoney.GetCurrency(currencyCode)
	if currency == nil {
		currency = gomoney.GetCurrency(CAD)
	}
	multiplier := decimal.New(1, int32(currency.Fraction))
	cents := amount.Mul(multiplier).Round(0).IntPart()
	return New(cents, currency.Code)
}

// Amount returns the value in minor units.
func (m *Money) Amount() int64 {
	if m == nil || m.m == nil {
		return 0
	}
	return m.m.Amount()
}

// Currency returns the ISO-4217 code.
func (m *Money) Currency() string {
	if m == nil || m.m == nil {
		return ""
	}
	return m.m.Currency().Code
}

// IsNegative reports whether the amount is below zero.
func (m *Money) IsNegative() bool {
	return m != nil && m.m != nil && m.m.IsNegative()
}

// Add returns m + other; currencies must match.
func (m *Money) Add(other *Money) (*Money, error) {
	if m == nil || m.m == nil {
		return other, nil
	}
	if other == nil || other.m == nil {
		return m, nil
	}
	result, err := m.m.Add(other.m)
	if err != nil {
		return nil, err
	}
	return &Money{m: result}, nil
}

// ToDecimal converts to a major-unit decimal.
func (m *Money) ToDecimal() decimal.Decimal {
	if m == nil || m.m == nil {
		return decimal.Zero
	}
	d := decimal.NewFromInt(m.m.Amount())
	divisor := decimal.New(1, int32(m.m.Currency().Fraction))
	return d.Div(divisor)
}

// Locale carries the separator conventions of one display locale.
type Locale struct {
	Tag               string // BCP-47 tag, e.g. "es-CL"
	ThousandSeparator string
	DecimalSeparator  string
}

// Known display locales. Lookups fall back to en-CA conventions.
var locales = map[string]Locale{
	"es-CL": {Tag: "es-CL", ThousandSeparator: ".", DecimalSeparator: ","},
	"es-MX": {Tag: "es-MX", ThousandSeparator: ",", DecimalSeparator: "."},
	"en-CA": {Tag: "en-CA", ThousandSeparator: ",", DecimalSeparator: "."},
	"en-US": {Tag: "en-US", ThousandSeparator: ",", DecimalSeparator: "."},
}

// LocaleFor returns the locale conventions for a BCP-47 tag.
func LocaleFor(tag string) Locale {
	if l, ok := locales[tag]; ok {
		return l
	}
	return locales["en-CA"]
}

// Format renders the amount with the currency's symbol and the locale's
// separator conventions, e.g. 123456 CAD as "$1.234,56" under es-CL and
// "$1,234.56" under en-CA.
func (m *Money) Format(locale Locale) string {
	if m == nil || m.m == nil {
		return "$0"
	}
	currency := m.m.Currency()

	negative := m.m.IsNegative()
	cents := m.m.Amount()
	if negative {
		cents = -cents
	}

	digits := fmt.Sprintf("%d", cents)
	fraction := currency.Fraction
	for len(digits) <= fraction {
		digits = "0" + digits
	}

	whole := digits[:len(digits)-fraction]
	frac := digits[len(digits)-fraction:]

	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteString(locale.ThousandSeparator)
		}
		grouped.WriteRune(r)
	}

	out := currency.Grapheme + grouped.String()
	if fraction > 0 {
		out += locale.DecimalSeparator + frac
	}
	if negative {
		out = "-" + out
	}
	return out
}

// FormatCents is a convenience wrapper over New + Format.
func FormatCents(cents int64, currencyCode, localeTag string) string {
	return New(cents, currencyCode).Format(LocaleFor(localeTag))
}
