package ui

import (
	"github.com/smartbuyr/storefront/internal/cart"
	"github.com/smartbuyr/storefront/internal/product"
	"github.com/smartbuyr/storefront/internal/user"
	"github.com/smartbuyr/storefront/internal/wishlist"
)

// Every fetch result carries the sequence number of the request that produced
// it. A page only accepts messages matching its latest sequence; anything
// older is a stale response from a superseded fetch (or a page the user
// already left) and is discarded instead of written into view state.

type productsLoadedMsg struct {
	seq  int
	page product.Page
	err  error
}

type searchLoadedMsg struct {
	seq  int
	page product.Page
	err  error
}

type recommendationsLoadedMsg struct {
	seq   int
	items []product.Product
	err   error
}

type detailLoadedMsg struct {
	seq int
	p   product.Product
	err error
}

type cartLoadedMsg struct {
	seq int
	c   cart.Cart
	err error
}

type wishlistLoadedMsg struct {
	seq     int
	entries []wishlist.Entry
	err     error
}

// cartMutatedMsg reports the outcome of an add or remove; a nil err means the
// owning page should refetch the cart.
type cartMutatedMsg struct {
	added bool
	err   error
}

// wishlistMutatedMsg carries the backend's message for adds so the
// notification can distinguish "Already in wishlist".
type wishlistMutatedMsg struct {
	added   bool
	message string
	err     error
}

type authDoneMsg struct {
	sess   user.Session
	signUp bool
	err    error
}
