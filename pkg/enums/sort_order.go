package enums

import "fmt"

// SortOrder selects how a catalog listing is ordered.
type SortOrder string

const (
	SortOrderRelevant  SortOrder = "relevant"
	SortOrderPriceAsc  SortOrder = "low-high"
	SortOrderPriceDesc SortOrder = "high-low"
)

var validSortOrders = []SortOrder{
	SortOrderRelevant,
	SortOrderPriceAsc,
	SortOrderPriceDesc,
}

// String implements fmt.Stringer.
func (s SortOrder) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortOrder.
func (s SortOrder) IsValid() bool {
	for _, candidate := range validSortOrders {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortOrder converts raw input into a SortOrder. Empty input means relevance.
func ParseSortOrder(value string) (SortOrder, error) {
	if value == "" {
		return SortOrderRelevant, nil
	}
	for _, candidate := range validSortOrders {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort order %q", value)
}
