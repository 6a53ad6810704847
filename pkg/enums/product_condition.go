package enums

import "fmt"

// ProductCondition narrows a listing to new or second-hand stock.
type ProductCondition string

const (
	ProductConditionNew        ProductCondition = "new"
	ProductConditionSecondHand ProductCondition = "second-hand"
)

var validProductConditions = []ProductCondition{
	ProductConditionNew,
	ProductConditionSecondHand,
}

// String implements fmt.Stringer.
func (p ProductCondition) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProductCondition.
func (p ProductCondition) IsValid() bool {
	for _, candidate := range validProductConditions {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProductCondition converts raw input into a ProductCondition.
func ParseProductCondition(value string) (ProductCondition, error) {
	for _, candidate := range validProductConditions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product condition %q", value)
}
