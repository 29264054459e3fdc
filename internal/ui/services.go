package ui

import (
	"context"

	"github.com/smartbuyr/storefront/internal/cart"
	"github.com/smartbuyr/storefront/internal/product"
	"github.com/smartbuyr/storefront/internal/user"
	"github.com/smartbuyr/storefront/internal/wishlist"
)

// The page models depend on these narrow interfaces rather than the concrete
// REST clients, so tests can drive them with fakes.

type CatalogService interface {
	List(ctx context.Context, page int) (product.Page, error)
	Search(ctx context.Context, q string, page int) (product.Page, error)
	Get(ctx context.Context, id int) (product.Product, error)
	Recommendations(ctx context.Context, id int) ([]product.Product, error)
}

type CartService interface {
	Add(ctx context.Context, token string, productID, qty int) error
	Remove(ctx context.Context, token string, lineID int) error
	List(ctx context.Context, token string) (cart.Cart, error)
}

type WishlistService interface {
	Add(ctx context.Context, token string, productID int) (string, error)
	Remove(ctx context.Context, token string, entryID int) error
	List(ctx context.Context, token string) ([]wishlist.Entry, error)
}

type AuthService interface {
	SignIn(ctx context.Context, username, password string) (user.Session, error)
	SignUp(ctx context.Context, fields user.SignUpFields) (user.Session, error)
}

type SessionStore interface {
	Load() (*user.Session, error)
	Save(user.Session) error
	Clear() error
	LoadAddress() (*user.Address, error)
	SaveAddress(user.Address) error
	ClearAddress() error
}

// Services bundles everything the root model injects into pages.
type Services struct {
	Catalog  CatalogService
	Cart     CartService
	Wishlist WishlistService
	Auth     AuthService
	Sessions SessionStore
}
