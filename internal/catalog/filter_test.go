package catalog

import (
	"testing"

	"github.com/ZeroVik/PlayScaleFrontend/pkg/enums"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/shop"
	"github.com/shopspring/decimal"
)

func sampleCatalog() []shop.Product {
	return []shop.Product{
		{ID: 1, Name: "Electric Guitar", Price: decimal.NewFromInt(450), CategoryID: 1, CategoryName: "Instruments"},
		{ID: 2, Name: "Bass Guitar", Price: decimal.NewFromInt(380), CategoryID: 1, CategoryName: "Instruments", IsSecondHand: true},
		{ID: 3, Name: "Guitar Strings", Price: decimal.NewFromInt(12), CategoryID: 2, CategoryName: "Accessories"},
		{ID: 4, Name: "Drum Kit", Price: decimal.NewFromInt(700), CategoryID: 1, CategoryName: "Instruments"},
		{ID: 5, Name: "Headphones", Price: decimal.NewFromInt(90), CategoryID: 3, CategoryName: "Audio"},
	}
}

func ids(products []shop.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplySearchIsCaseInsensitiveContains(t *testing.T) {
	got := Apply(sampleCatalog(), Query{Search: "guitar"})
	if !equalIDs(ids(got), []int64{1, 2, 3}) {
		t.Fatalf("expected products 1,2,3 for %q, got %v", "guitar", ids(got))
	}

	got = Apply(sampleCatalog(), Query{Search: "GUITAR"})
	if !equalIDs(ids(got), []int64{1, 2, 3}) {
		t.Fatalf("search must be case-insensitive, got %v", ids(got))
	}
}

func TestApplyCategorySetIsUnion(t *testing.T) {
	got := Apply(sampleCatalog(), Query{Categories: []int64{2, 3}})
	if !equalIDs(ids(got), []int64{3, 5}) {
		t.Fatalf("expected union of categories 2 and 3, got %v", ids(got))
	}
}

func TestApplySearchAndCategoryIntersect(t *testing.T) {
	got := Apply(sampleCatalog(), Query{Search: "guitar", Categories: []int64{1}})
	if !equalIDs(ids(got), []int64{1, 2}) {
		t.Fatalf("expected search AND category, got %v", ids(got))
	}
}

func TestApplyConditionFilter(t *testing.T) {
	got := Apply(sampleCatalog(), Query{Condition: enums.ProductConditionSecondHand})
	if !equalIDs(ids(got), []int64{2}) {
		t.Fatalf("expected only second-hand stock, got %v", ids(got))
	}

	got = Apply(sampleCatalog(), Query{Condition: enums.ProductConditionNew})
	if !equalIDs(ids(got), []int64{1, 3, 4, 5}) {
		t.Fatalf("expected only new stock, got %v", ids(got))
	}
}

func TestApplySortByPrice(t *testing.T) {
	got := Apply(sampleCatalog(), Query{Sort: enums.SortOrderPriceAsc})
	if !equalIDs(ids(got), []int64{3, 5, 2, 1, 4}) {
		t.Fatalf("expected ascending price order, got %v", ids(got))
	}

	got = Apply(sampleCatalog(), Query{Sort: enums.SortOrderPriceDesc})
	if !equalIDs(ids(got), []int64{4, 1, 2, 5, 3}) {
		t.Fatalf("expected descending price order, got %v", ids(got))
	}
}

func TestApplyRelevantKeepsCatalogOrder(t *testing.T) {
	got := Apply(sampleCatalog(), Query{Sort: enums.SortOrderRelevant})
	if !equalIDs(ids(got), []int64{1, 2, 3, 4, 5}) {
		t.Fatalf("relevance must keep catalog order, got %v", ids(got))
	}
}

func TestApplyNeverMutatesInput(t *testing.T) {
	input := sampleCatalog()
	Apply(input, Query{Sort: enums.SortOrderPriceAsc, Search: "guitar"})
	if !equalIDs(ids(input), []int64{1, 2, 3, 4, 5}) {
		t.Fatalf("input slice was reordered: %v", ids(input))
	}
}

func TestApplyNoMatchesYieldsEmptySlice(t *testing.T) {
	got := Apply(sampleCatalog(), Query{Search: "piano"})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %v", got)
	}
}
