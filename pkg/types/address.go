package types

import "strings"

// Address is the shipping address collected at checkout. All four fields are
// free text; the only rule enforced client-side is non-emptiness.
type Address struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// IsComplete reports whether every address field carries a non-blank value.
func (a Address) IsComplete() bool {
	for _, field := range []string{a.Street, a.City, a.PostalCode, a.Country} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}
