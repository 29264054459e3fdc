// Package ui implements the storefront's terminal pages. A single root model
// owns the session, the notification surface and the active page; pages hold
// only their own view state and never talk to each other directly.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/smartbuyr/storefront/internal/notify"
	"github.com/smartbuyr/storefront/internal/rest"
	"github.com/smartbuyr/storefront/internal/user"
)

type page int

const (
	pageHome page = iota
	pageAuth
	pageShop
	pageProducts
	pageSearch
	pageDetail
	pageCart
	pageWishlist
	pageProfile
	pageAbout
	pageContact
	pageSizeGuide
)

// Model is the root bubbletea model. It carries the one injected session
// context every page reads, instead of each page rehydrating storage itself.
type Model struct {
	svc     Services
	styles  Styles
	log     *zap.Logger
	session *user.Session
	notices *notify.Center

	active page
	width  int
	height int

	// seq numbers outstanding fetches so stale results are discarded
	seq int

	home     homePage
	auth     authPage
	shop     shopPage
	products productsPage
	search   searchPage
	detail   detailPage
	cart     cartPage
	wishlist wishlistPage
	profile  profilePage
	static   staticPage
}

// New loads the persisted session once and builds the root model.
func New(svc Services, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	sess, err := svc.Sessions.Load()
	if err != nil {
		log.Warn("could not load session, starting anonymous", zap.Error(err))
		sess = nil
	}

	m := &Model{
		svc:     svc,
		styles:  DefaultStyles(),
		log:     log,
		session: sess,
		notices: notify.NewCenter(),
		active:  pageHome,
	}
	m.auth = newAuthPage()
	m.search = newSearchPage()
	m.profile = newProfilePage()
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.home.enter(m)
}

// token returns the current credential, empty when anonymous.
func (m *Model) token() string {
	if m.session == nil {
		return ""
	}
	return m.session.Token
}

// requireSession gates a mutation: with no active session the login prompt is
// shown and no network call is issued.
func (m *Model) requireSession(then func() tea.Cmd) tea.Cmd {
	if m.session == nil {
		m.notices.ShowPrompt()
		return nil
	}
	return then()
}

func (m *Model) nextSeq() int {
	m.seq++
	return m.seq
}

func (m *Model) signOut() {
	if err := m.svc.Sessions.Clear(); err != nil {
		m.log.Warn("could not clear persisted session", zap.Error(err))
	}
	m.session = nil
	m.notices.Show("Signed out", notify.Info)
}

func (m *Model) goTo(p page) tea.Cmd {
	m.active = p
	switch p {
	case pageHome:
		return m.home.enter(m)
	case pageShop:
		return m.shop.enter(m)
	case pageProducts:
		return m.products.enter(m)
	case pageSearch:
		return m.search.enter(m)
	case pageCart:
		return m.cart.enter(m)
	case pageWishlist:
		return m.wishlist.enter(m)
	case pageProfile:
		return m.profile.enter(m)
	case pageAuth:
		m.auth.reset()
	}
	return nil
}

// openDetail navigates to the product detail page for id.
func (m *Model) openDetail(id int) tea.Cmd {
	m.active = pageDetail
	return m.detail.enter(m, id)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, m.routeData(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// the login prompt swallows keys while open
	if m.notices.PromptVisible() {
		switch key {
		case "i":
			m.notices.DismissPrompt()
			m.auth.mode = authSignIn
			return m, m.goTo(pageAuth)
		case "u":
			m.notices.DismissPrompt()
			m.auth.mode = authSignUp
			return m, m.goTo(pageAuth)
		case "esc", "x", "q":
			m.notices.DismissPrompt()
		}
		return m, nil
	}

	// pages with focused text inputs consume keys first
	if m.capturing() {
		return m, m.routeKey(msg)
	}

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "x":
		m.notices.Dismiss()
		return m, nil
	case "h":
		return m, m.goTo(pageHome)
	case "s":
		return m, m.goTo(pageShop)
	case "p":
		return m, m.goTo(pageProducts)
	case "/":
		return m, m.goTo(pageSearch)
	case "c":
		return m, m.requireSession(func() tea.Cmd { return m.goTo(pageCart) })
	case "w":
		return m, m.requireSession(func() tea.Cmd { return m.goTo(pageWishlist) })
	case "m":
		return m, m.requireSession(func() tea.Cmd { return m.goTo(pageProfile) })
	case "a":
		m.static.kind = staticAbout
		m.active = pageAbout
		return m, nil
	case "t":
		m.static.kind = staticContact
		m.active = pageContact
		return m, nil
	case "g":
		m.static.kind = staticSizeGuide
		m.active = pageSizeGuide
		return m, nil
	case "l":
		if m.session != nil {
			m.signOut()
			return m, nil
		}
		m.auth.mode = authSignIn
		return m, m.goTo(pageAuth)
	}

	return m, m.routeKey(msg)
}

// capturing reports whether the active page holds a focused text input, in
// which case global shortcuts are suspended.
func (m *Model) capturing() bool {
	switch m.active {
	case pageAuth:
		return true
	case pageSearch:
		return m.search.capturing()
	case pageProfile:
		return m.profile.capturing()
	}
	return false
}

func (m *Model) routeKey(msg tea.KeyMsg) tea.Cmd {
	switch m.active {
	case pageHome:
		return m.home.handleKey(m, msg.String())
	case pageAuth:
		return m.auth.handleKey(m, msg)
	case pageShop:
		return m.shop.handleKey(m, msg.String())
	case pageProducts:
		return m.products.handleKey(m, msg.String())
	case pageSearch:
		return m.search.handleKey(m, msg)
	case pageDetail:
		return m.detail.handleKey(m, msg.String())
	case pageCart:
		return m.cart.handleKey(m, msg.String())
	case pageWishlist:
		return m.wishlist.handleKey(m, msg.String())
	case pageProfile:
		return m.profile.handleKey(m, msg)
	case pageAbout, pageContact, pageSizeGuide:
		m.static.handleKey(m, msg.String())
		return nil
	}
	return nil
}

// routeData delivers async results to the page that owns them. Pages check
// sequence numbers themselves; a message for an inactive page still reaches
// its owner, which will drop it when the sequence no longer matches.
func (m *Model) routeData(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		m.home.onProducts(m, msg)
		m.shop.onProducts(m, msg)
		m.products.onProducts(m, msg)
		return nil
	case searchLoadedMsg:
		return m.search.onResults(m, msg)
	case recommendationsLoadedMsg:
		m.search.onRecommendations(m, msg)
		m.detail.onRecommendations(m, msg)
		return nil
	case detailLoadedMsg:
		return m.detail.onLoaded(m, msg)
	case cartLoadedMsg:
		m.cart.onLoaded(m, msg)
		return nil
	case wishlistLoadedMsg:
		m.wishlist.onLoaded(m, msg)
		return nil
	case cartMutatedMsg:
		return m.onCartMutated(msg)
	case wishlistMutatedMsg:
		return m.onWishlistMutated(msg)
	case authDoneMsg:
		return m.onAuthDone(msg)
	}
	return nil
}

func (m *Model) onCartMutated(msg cartMutatedMsg) tea.Cmd {
	if msg.err != nil {
		fallback := "Failed to update cart"
		if msg.added {
			fallback = "Failed to add to cart"
		}
		m.notices.Show(reasonOrFallback(msg.err, fallback), notify.Error)
		return nil
	}
	if msg.added {
		m.notices.Show("Added to cart successfully!", notify.Success)
	} else {
		m.notices.Show("Removed from cart", notify.Success)
	}
	// the displayed cart is always a fresh server read
	if m.active == pageCart {
		return m.cart.refetch(m)
	}
	return nil
}

func (m *Model) onWishlistMutated(msg wishlistMutatedMsg) tea.Cmd {
	if msg.err != nil {
		fallback := "Failed to update wishlist"
		if msg.added {
			fallback = "Failed to add to wishlist"
		}
		m.notices.Show(reasonOrFallback(msg.err, fallback), notify.Error)
		return nil
	}
	if msg.added {
		m.notices.Show(msg.message, notify.WishlistSeverity(msg.message))
	} else {
		m.notices.Show("Removed from wishlist", notify.Success)
	}
	if m.active == pageWishlist {
		return m.wishlist.refetch(m)
	}
	return nil
}

func (m *Model) onAuthDone(msg authDoneMsg) tea.Cmd {
	if msg.err != nil {
		m.auth.failure = reasonOrFallback(msg.err, "Authentication failed")
		return nil
	}
	sess := msg.sess
	m.session = &sess
	if err := m.svc.Sessions.Save(sess); err != nil {
		m.log.Warn("could not persist session", zap.Error(err))
	}
	if msg.signUp {
		m.notices.Show("Account created, welcome "+sess.User.DisplayName()+"!", notify.Success)
	} else {
		m.notices.Show("Welcome back, "+sess.User.DisplayName()+"!", notify.Success)
	}
	return m.goTo(pageHome)
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")

	switch m.active {
	case pageHome:
		b.WriteString(m.home.view(m))
	case pageAuth:
		b.WriteString(m.auth.view(m))
	case pageShop:
		b.WriteString(m.shop.view(m))
	case pageProducts:
		b.WriteString(m.products.view(m))
	case pageSearch:
		b.WriteString(m.search.view(m))
	case pageDetail:
		b.WriteString(m.detail.view(m))
	case pageCart:
		b.WriteString(m.cart.view(m))
	case pageWishlist:
		b.WriteString(m.wishlist.view(m))
	case pageProfile:
		b.WriteString(m.profile.view(m))
	case pageAbout, pageContact, pageSizeGuide:
		b.WriteString(m.static.view(m))
	}

	if n := m.notices.Current(); n.Visible {
		b.WriteString("\n\n")
		b.WriteString(m.renderNotification(n))
	}
	if m.notices.PromptVisible() {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Prompt.Render(
			m.styles.Title.Render("Sign in to continue") + "\n" +
				"Please sign in to add items to your cart or wishlist\n\n" +
				"[i] sign in   [u] sign up   [esc] not now"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) header() string {
	left := m.styles.Logo.Render("SmartBuyr")
	nav := " [h]ome [s]hop [p]roducts [/]search [a]bout [t]contact"

	var right string
	if m.session != nil {
		// authenticated affordances render purely from session presence
		right = fmt.Sprintf("[c]art [w]ishlist [m]y account  %s ([l]ogout)",
			m.session.User.DisplayName())
	} else {
		right = "[l] sign in"
	}
	return left + m.styles.Help.Render(nav+"  |  "+right+"  [q]uit")
}

func (m *Model) renderNotification(n notify.Notification) string {
	text := n.Message + "  [x] dismiss"
	switch n.Severity {
	case notify.Success:
		return m.styles.NotifyOK.Render("✔ " + text)
	case notify.Info:
		return m.styles.NotifyInfo.Render("ℹ " + text)
	default:
		return m.styles.NotifyErr.Render("✘ " + text)
	}
}

// reasonOrFallback surfaces the user-safe message carried by transport errors,
// or the given fallback for anything else.
func reasonOrFallback(err error, fallback string) string {
	return rest.Reason(err, fallback)
}
