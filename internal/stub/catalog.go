package stub

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/smartbuyr/storefront/internal/product"
)

// pageResponse mirrors the production backend's paginated envelope.
type pageResponse struct {
	Results []product.Product `json:"results"`
	Next    *string           `json:"next"`
}

func (s *Server) listProducts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	items, hasMore := s.store.ListProducts(page)
	return c.JSON(envelope(items, hasMore, fmt.Sprintf("/api/products/?page=%d", page+1)))
}

func (s *Server) searchProducts(c *fiber.Ctx) error {
	q := c.Query("q")
	page := c.QueryInt("page", 1)
	items, hasMore := s.store.SearchProducts(q, page)
	next := fmt.Sprintf("/api/products/search/?q=%s&page=%d", q, page+1)
	return c.JSON(envelope(items, hasMore, next))
}

func (s *Server) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}
	p, err := s.store.GetProduct(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}
	return c.JSON(p)
}

func (s *Server) recommendations(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}
	items, err := s.store.Recommendations(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}
	return c.JSON(items)
}

func envelope(items []product.Product, hasMore bool, nextPath string) pageResponse {
	res := pageResponse{Results: items}
	if hasMore {
		res.Next = &nextPath
	}
	return res
}
