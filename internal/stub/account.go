package stub

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/smartbuyr/storefront/internal/wishlist"
)

type cartAddRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

func (s *Server) addToCart(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(cartAddRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product_id"})
	}

	if err := s.store.AddToCart(userID, payload.ProductID, payload.Quantity); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Added to cart"})
}

func (s *Server) getCart(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(s.store.GetCart(userID))
}

func (s *Server) removeFromCart(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	lineID, err := strconv.Atoi(c.Params("itemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid item id"})
	}

	if err := s.store.RemoveFromCart(userID, lineID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Cart item not found"})
	}
	return c.JSON(fiber.Map{"message": "Removed from cart"})
}

type wishlistAddRequest struct {
	ProductID int `json:"product_id"`
}

func (s *Server) addToWishlist(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(wishlistAddRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product_id"})
	}

	switch err := s.store.AddToWishlist(userID, payload.ProductID); err {
	case nil:
		return c.JSON(fiber.Map{"message": "Added to wishlist"})
	case ErrAlreadySaved:
		// a duplicate add is a distinguishable informational outcome, not a failure
		return c.JSON(fiber.Map{"message": "Already in wishlist"})
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}

func (s *Server) getWishlist(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	entries := s.store.GetWishlist(userID)
	if entries == nil {
		entries = []wishlist.Entry{}
	}
	return c.JSON(fiber.Map{"items": entries})
}

func (s *Server) removeFromWishlist(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	entryID, err := strconv.Atoi(c.Params("itemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid item id"})
	}

	if err := s.store.RemoveFromWishlist(userID, entryID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Wishlist item not found"})
	}
	return c.JSON(fiber.Map{"message": "Removed from wishlist"})
}
