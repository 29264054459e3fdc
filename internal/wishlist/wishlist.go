package wishlist

import "github.com/smartbuyr/storefront/internal/product"

// Entry is one saved product in the wishlist.
type Entry struct {
	ID      int             `json:"id"`
	Product product.Product `json:"product"`
}
