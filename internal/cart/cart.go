package cart

import "github.com/smartbuyr/storefront/internal/product"

// Item is one cart line: a product reference plus its quantity.
type Item struct {
	ID       int             `json:"id"`
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart is the server's full cart snapshot. The client never patches it
// locally; every mutation is followed by a fresh List.
type Cart struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total"`
}
