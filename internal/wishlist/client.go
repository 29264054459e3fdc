package wishlist

import (
	"context"
	"fmt"

	"github.com/smartbuyr/storefront/internal/rest"
)

// Client talks to the account wishlist endpoints.
type Client struct {
	api *rest.Client
}

func NewClient(api *rest.Client) *Client {
	return &Client{api: api}
}

type addRequest struct {
	ProductID int `json:"product_id"`
}

type addResponse struct {
	Message string `json:"message"`
}

// Add saves a product to the wishlist and returns the backend's message.
// Adding a product that is already present is not an error: the backend
// answers 200 with an "Already in wishlist" message and callers render it
// as informational.
func (c *Client) Add(ctx context.Context, token string, productID int) (string, error) {
	var res addResponse
	if err := c.api.Post(ctx, "/api/accounts/wishlist/add/", token, addRequest{ProductID: productID}, &res); err != nil {
		return "", err
	}
	if res.Message == "" {
		res.Message = "Added to wishlist"
	}
	return res.Message, nil
}

// Remove deletes a wishlist entry by its entry id.
func (c *Client) Remove(ctx context.Context, token string, entryID int) error {
	return c.api.Delete(ctx, fmt.Sprintf("/api/accounts/wishlist/remove/%d/", entryID), token, nil)
}

// List returns all wishlist entries.
func (c *Client) List(ctx context.Context, token string) ([]Entry, error) {
	var out struct {
		Items []Entry `json:"items"`
	}
	if err := c.api.Get(ctx, "/api/accounts/wishlist/", token, &out); err != nil {
		return nil, err
	}
	if out.Items == nil {
		out.Items = []Entry{}
	}
	return out.Items, nil
}
