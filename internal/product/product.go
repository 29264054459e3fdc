package product

// Product is a catalog item as served by the backend. The client never
// mutates one; cart lines and wishlist entries only reference it.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Page is one page of catalog results with the pagination flag already
// resolved by the gateway.
type Page struct {
	Items   []Product
	HasMore bool
}
