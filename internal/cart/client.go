package cart

import (
	"context"
	"fmt"

	"github.com/smartbuyr/storefront/internal/rest"
)

// Client talks to the account cart endpoints. Every call requires a
// credential; callers guarantee a session exists before invoking one.
type Client struct {
	api *rest.Client
}

func NewClient(api *rest.Client) *Client {
	return &Client{api: api}
}

type addRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// Add puts qty units of a product in the cart. The displayed cart is not
// updated from this response; callers refetch with List.
func (c *Client) Add(ctx context.Context, token string, productID, qty int) error {
	return c.api.Post(ctx, "/api/accounts/cart/add/", token, addRequest{ProductID: productID, Quantity: qty}, nil)
}

// Remove deletes a cart line by its line id.
func (c *Client) Remove(ctx context.Context, token string, lineID int) error {
	return c.api.Delete(ctx, fmt.Sprintf("/api/accounts/cart/remove/%d/", lineID), token, nil)
}

// List returns the full server-side cart.
func (c *Client) List(ctx context.Context, token string) (Cart, error) {
	var out Cart
	if err := c.api.Get(ctx, "/api/accounts/cart/", token, &out); err != nil {
		return Cart{}, err
	}
	if out.Items == nil {
		out.Items = []Item{}
	}
	return out, nil
}
