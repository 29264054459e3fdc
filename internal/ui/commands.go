package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smartbuyr/storefront/internal/user"
)

// Commands wrap the service calls as bubbletea commands. The UI goroutine
// never blocks on the network; results come back as messages.

func (m *Model) loadProductsCmd(seq, page int) tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Catalog.List(context.Background(), page)
		return productsLoadedMsg{seq: seq, page: p, err: err}
	}
}

func (m *Model) searchCmd(seq int, q string, page int) tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Catalog.Search(context.Background(), q, page)
		return searchLoadedMsg{seq: seq, page: p, err: err}
	}
}

func (m *Model) loadDetailCmd(seq, id int) tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Catalog.Get(context.Background(), id)
		return detailLoadedMsg{seq: seq, p: p, err: err}
	}
}

func (m *Model) loadRecommendationsCmd(seq, id int) tea.Cmd {
	return func() tea.Msg {
		items, err := m.svc.Catalog.Recommendations(context.Background(), id)
		return recommendationsLoadedMsg{seq: seq, items: items, err: err}
	}
}

func (m *Model) loadCartCmd(seq int, token string) tea.Cmd {
	return func() tea.Msg {
		c, err := m.svc.Cart.List(context.Background(), token)
		return cartLoadedMsg{seq: seq, c: c, err: err}
	}
}

func (m *Model) addToCartCmd(token string, productID, qty int) tea.Cmd {
	return func() tea.Msg {
		err := m.svc.Cart.Add(context.Background(), token, productID, qty)
		return cartMutatedMsg{added: true, err: err}
	}
}

func (m *Model) removeFromCartCmd(token string, lineID int) tea.Cmd {
	return func() tea.Msg {
		err := m.svc.Cart.Remove(context.Background(), token, lineID)
		return cartMutatedMsg{err: err}
	}
}

func (m *Model) loadWishlistCmd(seq int, token string) tea.Cmd {
	return func() tea.Msg {
		entries, err := m.svc.Wishlist.List(context.Background(), token)
		return wishlistLoadedMsg{seq: seq, entries: entries, err: err}
	}
}

func (m *Model) addToWishlistCmd(token string, productID int) tea.Cmd {
	return func() tea.Msg {
		msg, err := m.svc.Wishlist.Add(context.Background(), token, productID)
		return wishlistMutatedMsg{added: true, message: msg, err: err}
	}
}

func (m *Model) removeFromWishlistCmd(token string, entryID int) tea.Cmd {
	return func() tea.Msg {
		err := m.svc.Wishlist.Remove(context.Background(), token, entryID)
		return wishlistMutatedMsg{err: err}
	}
}

func (m *Model) signInCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		sess, err := m.svc.Auth.SignIn(context.Background(), username, password)
		return authDoneMsg{sess: sess, err: err}
	}
}

func (m *Model) signUpCmd(fields user.SignUpFields) tea.Cmd {
	return func() tea.Msg {
		sess, err := m.svc.Auth.SignUp(context.Background(), fields)
		return authDoneMsg{sess: sess, signUp: true, err: err}
	}
}
