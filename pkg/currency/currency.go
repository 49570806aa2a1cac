// Package currency holds the static profiles of the countries and currencies
// a transfer can be quoted between.
package currency

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnsupportedCurrency is returned when a country code has no registered profile.
var ErrUnsupportedCurrency = errors.New("currency not supported")

const (
	// Ghana is the country code for the Ghana cedi.
	Ghana = "GH"
	// UnitedStates is the country code for the US dollar.
	UnitedStates = "US"
	// Europe is the country code for the euro.
	Europe = "EU"

	// DefaultDecimals is the number of decimal places used when formatting amounts
	DefaultDecimals = 2
)

// Profile describes a supported country and the currency it sends and receives in.
type Profile struct {
	Country  string `json:"country"`
	Code     string `json:"code"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int    `json:"decimals"`
}

// Registry is an immutable, ordered set of currency profiles keyed by country code.
type Registry struct {
	profiles map[string]Profile
	order    []string
}

// NewRegistry builds a registry from the given profiles. Later profiles with
// the same country code replace earlier ones.
func NewRegistry(profiles ...Profile) *Registry {
	r := &Registry{profiles: make(map[string]Profile, len(profiles))}
	for _, p := range profiles {
		if p.Decimals == 0 {
			p.Decimals = DefaultDecimals
		}
		if _, exists := r.profiles[p.Country]; !exists {
			r.order = append(r.order, p.Country)
		}
		r.profiles[p.Country] = p
	}
	return r
}

var defaultRegistry = NewRegistry(
	Profile{Country: Ghana, Code: "GHS", Symbol: "₵", Name: "Ghana Cedi"},
	Profile{Country: UnitedStates, Code: "USD", Symbol: "$", Name: "US Dollar"},
	Profile{Country: Europe, Code: "EUR", Symbol: "€", Name: "Euro"},
)

// Default returns the registry seeded with the GH, US and EU profiles.
func Default() *Registry {
	return defaultRegistry
}

// Get returns the profile registered for a country code.
func (r *Registry) Get(country string) (Profile, error) {
	p, ok := r.profiles[country]
	if !ok {
		return Profile{}, ErrUnsupportedCurrency
	}
	return p, nil
}

// IsSupported reports whether a country code is registered.
func (r *Registry) IsSupported(country string) bool {
	_, ok := r.profiles[country]
	return ok
}

// List returns all profiles in registration order.
func (r *Registry) List() []Profile {
	out := make([]Profile, 0, len(r.order))
	for _, c := range r.order {
		out = append(out, r.profiles[c])
	}
	return out
}

// Count returns the number of registered profiles.
func (r *Registry) Count() int {
	return len(r.order)
}

// Format renders an amount with the country's currency symbol and grouped
// thousands, e.g. "₵1,000.00". Unknown countries fall back to the bare code.
func (r *Registry) Format(amount decimal.Decimal, country string) string {
	symbol := country
	decimals := DefaultDecimals
	if p, err := r.Get(country); err == nil {
		symbol = p.Symbol
		decimals = p.Decimals
	}
	return symbol + groupThousands(amount.StringFixed(int32(decimals)))
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return sign + b.String()
}
