package shop

import (
	"time"

	"github.com/ZeroVik/PlayScaleFrontend/pkg/enums"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/types"
	"github.com/shopspring/decimal"
)

// Product is the read-only catalog shape returned by the shop API.
type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"imageUrl"`
	IsSecondHand bool            `json:"isSecondHand"`
	CategoryID   int64           `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
}

// Category identifies a product category, used for filtering and admin CRUD.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CartItem is one line of the remote cart.
type CartItem struct {
	CartItemID  int64           `json:"cartItemId"`
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Cart is the remote cart snapshot for one user.
type Cart struct {
	CartID          int64           `json:"cartId"`
	UserID          int64           `json:"userId"`
	Items           []CartItem      `json:"items"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	GrandTotal      decimal.Decimal `json:"grandTotal"`
	DiscountMessage string          `json:"discountMessage,omitempty"`
}

// OrderDetail is one purchased line item.
type OrderDetail struct {
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Order is a placed order as reported by the shop API.
type Order struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"userId"`
	Details     []OrderDetail     `json:"orderDetails"`
	TotalAmount decimal.Decimal   `json:"totalAmount"`
	Address     types.Address     `json:"address"`
	Status      enums.OrderStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// User is the account shape exposed by the shop API.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// AddCartItemRequest is the payload for POST /api/Cart/AddItem. Prices travel
// as plain JSON numbers, which is what the remote decimal binding expects.
type AddCartItemRequest struct {
	CartItemID  int64   `json:"cartItemId"`
	UserID      int64   `json:"userId"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// OrderDetailPayload is one line of a checkout submission.
type OrderDetailPayload struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// PlaceOrderRequest is the payload for POST /api/orders.
type PlaceOrderRequest struct {
	UserID       int64                `json:"userId"`
	OrderDetails []OrderDetailPayload `json:"orderDetails"`
	TotalAmount  float64              `json:"totalAmount"`
	Address      types.Address        `json:"address"`
}

// LoginRequest is the payload for POST /api/Auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token minted by the shop API.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest is the payload for POST /api/Auth/register.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// ProductPayload is the admin create/update shape. Image handling is by URL
// reference only; binary upload stays with the remote service.
type ProductPayload struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"imageUrl"`
	IsSecondHand bool    `json:"isSecondHand"`
	CategoryID   int64   `json:"categoryId"`
}

// CategoryPayload is the admin category create/update shape.
type CategoryPayload struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// UpdateUserRequest edits profile fields on PUT /api/User/{id}.
type UpdateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UpdateUserRoleRequest edits the role on PUT /api/User/{id}/role.
type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}

// UpdateOrderStatusRequest is the payload for PUT /api/Orders/UpdateStatus/{id}.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
