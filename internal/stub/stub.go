// Package stub is an in-memory stand-in for the storefront backend. It
// serves the exact REST surface the client consumes so the TUI can run and
// be tested without the production service.
package stub

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Server struct {
	store  *Store
	secret []byte
	log    *zap.Logger
}

// New builds the fiber app with all routes registered. Public catalog and
// auth routes come first; everything under /api/accounts sits behind the
// Token-scheme JWT middleware.
func New(store *Store, jwtSecret string, log *zap.Logger) *fiber.App {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{store: store, secret: []byte(jwtSecret), log: log}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(s.requestLogger)

	// specific paths before :id so "search" is never captured as a product id
	app.Get("/api/products/search/", s.searchProducts)
	app.Get("/api/products/", s.listProducts)
	app.Get("/api/products/:id/recommendations/", s.recommendations)
	app.Get("/api/products/:id/", s.getProduct)

	app.Post("/api/signup/", s.signUp)
	app.Post("/api/signin/", s.signIn)

	// the client sends "Authorization: Token <credential>"
	app.Use("/api/accounts", jwtware.New(jwtware.Config{
		SigningKey: s.secret,
		AuthScheme: "Token",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		},
	}))

	app.Post("/api/accounts/cart/add/", s.addToCart)
	app.Get("/api/accounts/cart/", s.getCart)
	app.Delete("/api/accounts/cart/remove/:itemId/", s.removeFromCart)

	app.Post("/api/accounts/wishlist/add/", s.addToWishlist)
	app.Get("/api/accounts/wishlist/", s.getWishlist)
	app.Delete("/api/accounts/wishlist/remove/:itemId/", s.removeFromWishlist)

	return app
}

// requestLogger tags every request with an id so stub logs can be correlated
// with client-side logs during development.
func (s *Server) requestLogger(c *fiber.Ctx) error {
	reqID := uuid.NewString()
	c.Set("X-Request-ID", reqID)
	err := c.Next()
	s.log.Debug("request",
		zap.String("id", reqID),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", c.Response().StatusCode()))
	return err
}
