package product

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/smartbuyr/storefront/internal/rest"
)

// Client fetches catalog data. All calls are read-only and unauthenticated.
type Client struct {
	api *rest.Client
}

func NewClient(api *rest.Client) *Client {
	return &Client{api: api}
}

// List returns one page of the catalog in server order.
func (c *Client) List(ctx context.Context, page int) (Page, error) {
	return c.fetchPage(ctx, fmt.Sprintf("/api/products/?page=%d", page))
}

// Search returns one page of server-ranked results for q. Callers must not
// call it with an empty query.
func (c *Client) Search(ctx context.Context, q string, page int) (Page, error) {
	path := fmt.Sprintf("/api/products/search/?q=%s&page=%d", url.QueryEscape(q), page)
	return c.fetchPage(ctx, path)
}

// Get returns a single product; a missing id surfaces as a not-found error.
func (c *Client) Get(ctx context.Context, id int) (Product, error) {
	var p Product
	if err := c.api.Get(ctx, fmt.Sprintf("/api/products/%d/", id), "", &p); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Recommendations returns related items for a product. The list may be empty;
// callers treat failures as independent of their primary content.
func (c *Client) Recommendations(ctx context.Context, id int) ([]Product, error) {
	var items []Product
	path := fmt.Sprintf("/api/products/%d/recommendations/", id)
	if err := c.api.Get(ctx, path, "", &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []Product{}
	}
	return items, nil
}

func (c *Client) fetchPage(ctx context.Context, path string) (Page, error) {
	var raw json.RawMessage
	if err := c.api.Get(ctx, path, "", &raw); err != nil {
		return Page{}, err
	}
	itemsRaw, hasMore, err := rest.DecodePage(raw)
	if err != nil {
		return Page{}, err
	}
	items := []Product{}
	if err := json.Unmarshal(itemsRaw, &items); err != nil {
		return Page{}, &rest.Error{Kind: rest.KindDecode, Message: "unexpected product list", Err: err}
	}
	return Page{Items: items, HasMore: hasMore}, nil
}
