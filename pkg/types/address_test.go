package types

import "testing"

func TestAddressIsComplete(t *testing.T) {
	complete := Address{Street: "1 Main St", City: "Sofia", PostalCode: "1000", Country: "Bulgaria"}
	if !complete.IsComplete() {
		t.Fatalf("expected complete address")
	}

	incomplete := []Address{
		{},
		{Street: "1 Main St", City: "Sofia", PostalCode: "1000"},
		{Street: "1 Main St", City: "Sofia", PostalCode: "  ", Country: "Bulgaria"},
	}
	for _, address := range incomplete {
		if address.IsComplete() {
			t.Fatalf("expected incomplete address: %+v", address)
		}
	}
}
