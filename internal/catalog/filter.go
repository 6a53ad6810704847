package catalog

import (
	"sort"
	"strings"

	"github.com/ZeroVik/PlayScaleFrontend/pkg/enums"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/shop"
)

// Query narrows and orders a catalog listing. The zero value matches
// everything in catalog order.
type Query struct {
	Search     string
	Categories []int64
	Condition  enums.ProductCondition
	Sort       enums.SortOrder
}

// Apply filters and sorts the catalog per the query. The input slice is never
// mutated; the result is a fresh slice.
func Apply(products []shop.Product, q Query) []shop.Product {
	matched := make([]shop.Product, 0, len(products))

	search := strings.ToLower(strings.TrimSpace(q.Search))
	categorySet := make(map[int64]struct{}, len(q.Categories))
	for _, id := range q.Categories {
		categorySet[id] = struct{}{}
	}

	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if len(categorySet) > 0 {
			if _, ok := categorySet[p.CategoryID]; !ok {
				continue
			}
		}
		if q.Condition != "" && condition(p) != q.Condition {
			continue
		}
		matched = append(matched, p)
	}

	switch q.Sort {
	case enums.SortOrderPriceAsc:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Price.LessThan(matched[j].Price)
		})
	case enums.SortOrderPriceDesc:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Price.GreaterThan(matched[j].Price)
		})
	}

	return matched
}

func condition(p shop.Product) enums.ProductCondition {
	if p.IsSecondHand {
		return enums.ProductConditionSecondHand
	}
	return enums.ProductConditionNew
}
