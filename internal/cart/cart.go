package cart

import (
	"github.com/ZeroVik/PlayScaleFrontend/pkg/shop"
	"github.com/shopspring/decimal"
)

// Discount tier thresholds and rates. Applied to the cart total after every
// mutation so the grand total never goes stale.
var (
	tierHighThreshold = decimal.NewFromInt(500)
	tierLowThreshold  = decimal.NewFromInt(200)
	tierHighRate      = decimal.NewFromFloat(0.10)
	tierLowRate       = decimal.NewFromFloat(0.05)
)

const (
	tierHighMessage = "10% discount on orders over $500!"
	tierLowMessage  = "5% discount on orders over $200!"
)

// Discount returns the discount amount and tier message for a total price.
func Discount(total decimal.Decimal) (decimal.Decimal, string) {
	switch {
	case total.GreaterThanOrEqual(tierHighThreshold):
		return total.Mul(tierHighRate), tierHighMessage
	case total.GreaterThanOrEqual(tierLowThreshold):
		return total.Mul(tierLowRate), tierLowMessage
	default:
		return decimal.Zero, ""
	}
}

// Recompute re-derives every item subtotal and the cart-level totals from the
// current item set. It is the single place the totals invariant lives:
// subtotal = unitPrice x quantity, totalPrice = sum(subtotals),
// grandTotal = totalPrice - discountAmount.
func Recompute(c *shop.Cart) {
	if c == nil {
		return
	}

	total := decimal.Zero
	for i := range c.Items {
		c.Items[i].Subtotal = c.Items[i].UnitPrice.Mul(decimal.NewFromInt(int64(c.Items[i].Quantity)))
		total = total.Add(c.Items[i].Subtotal)
	}

	c.TotalPrice = total
	c.DiscountAmount, c.DiscountMessage = Discount(total)
	c.GrandTotal = total.Sub(c.DiscountAmount)
}

// Empty returns a zeroed cart for the user, the shape rendered when the remote
// side reports no cart at all.
func Empty(userID int64) *shop.Cart {
	c := &shop.Cart{
		UserID: userID,
		Items:  []shop.CartItem{},
	}
	Recompute(c)
	return c
}

// findItem returns the index of the cart item or -1.
func findItem(c *shop.Cart, cartItemID int64) int {
	if c == nil {
		return -1
	}
	for i := range c.Items {
		if c.Items[i].CartItemID == cartItemID {
			return i
		}
	}
	return -1
}

// applyQuantity patches one item's quantity and re-derives totals.
func applyQuantity(c *shop.Cart, index, quantity int) {
	c.Items[index].Quantity = quantity
	Recompute(c)
}

// applyRemove drops one item and re-derives totals.
func applyRemove(c *shop.Cart, index int) {
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	Recompute(c)
}

// EnrichImages copies product image URLs onto matching cart lines. The cart
// DTO itself carries no image, so the view stitches it in from the catalog.
func EnrichImages(c *shop.Cart, products []shop.Product) map[int64]string {
	if c == nil || len(products) == 0 {
		return nil
	}
	byID := make(map[int64]string, len(products))
	for _, p := range products {
		byID[p.ID] = p.ImageURL
	}
	images := make(map[int64]string, len(c.Items))
	for _, item := range c.Items {
		if url, ok := byID[item.ProductID]; ok && url != "" {
			images[item.ProductID] = url
		}
	}
	return images
}

// mergeLine folds a new line into an item set, summing quantities when the
// product already has a line. Used by the session mirror.
func mergeLine(items []shop.CartItem, line shop.CartItem) []shop.CartItem {
	for i := range items {
		if items[i].ProductID == line.ProductID {
			items[i].Quantity += line.Quantity
			return items
		}
	}
	return append(items, line)
}
