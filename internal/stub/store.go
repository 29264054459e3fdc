package stub

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/smartbuyr/storefront/internal/cart"
	"github.com/smartbuyr/storefront/internal/product"
	"github.com/smartbuyr/storefront/internal/wishlist"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUserExists   = errors.New("username or email already exists")
	ErrBadPassword  = errors.New("invalid username or password")
	ErrAlreadySaved = errors.New("already in wishlist")
)

// pageSize matches the production backend's paginated responses.
const pageSize = 10

type account struct {
	ID           int
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash []byte
}

// Store is the stub's entire state: a seeded catalog plus per-user carts and
// wishlists, all in memory. It is the development stand-in for the real
// service, so everything resets on restart.
type Store struct {
	mu        sync.RWMutex
	products  []product.Product
	accounts  []account
	carts     map[int][]cart.Item
	wishlists map[int][]wishlist.Entry
	nextUser  int
	nextLine  int
	nextEntry int
}

func NewStore(seed []product.Product) *Store {
	if seed == nil {
		seed = SeedProducts()
	}
	return &Store{
		products:  seed,
		carts:     make(map[int][]cart.Item),
		wishlists: make(map[int][]wishlist.Entry),
		nextUser:  1,
		nextLine:  1,
		nextEntry: 1,
	}
}

// ListProducts returns one page of the catalog and whether more pages exist.
func (s *Store) ListProducts(page int) ([]product.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate(s.products, page)
}

// SearchProducts matches the query case-insensitively against name and
// description, keeping catalog order as the relevance order.
func (s *Store) SearchProducts(q string, page int) ([]product.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q = strings.ToLower(strings.TrimSpace(q))
	matched := make([]product.Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
			matched = append(matched, p)
		}
	}
	return paginate(matched, page)
}

// GetProduct returns a product by id.
func (s *Store) GetProduct(id int) (product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return product.Product{}, ErrNotFound
}

// Recommendations picks up to four catalog neighbours by price proximity.
func (s *Store) Recommendations(id int) ([]product.Product, error) {
	base, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	others := make([]product.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.ID != base.ID {
			others = append(others, p)
		}
	}
	sort.SliceStable(others, func(i, j int) bool {
		return abs(others[i].Price-base.Price) < abs(others[j].Price-base.Price)
	})
	if len(others) > 4 {
		others = others[:4]
	}
	return others, nil
}

// Register creates an account, rejecting duplicate usernames and emails.
func (s *Store) Register(username, email, password, firstName, lastName string) (account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.Username == username || a.Email == email {
			return account{}, ErrUserExists
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return account{}, err
	}
	a := account{
		ID:           s.nextUser,
		Username:     username,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hash,
	}
	s.nextUser++
	s.accounts = append(s.accounts, a)
	return a, nil
}

// Authenticate verifies a username/password pair.
func (s *Store) Authenticate(username, password string) (account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if a.Username == username {
			if bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(password)) != nil {
				return account{}, ErrBadPassword
			}
			return a, nil
		}
	}
	return account{}, ErrBadPassword
}

// GetAccount looks an account up by id; used by the token middleware.
func (s *Store) GetAccount(id int) (account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return account{}, ErrNotFound
}

// AddToCart appends qty units to the user's cart, merging into an existing
// line for the same product.
func (s *Store) AddToCart(userID, productID, qty int) error {
	p, err := s.GetProduct(productID)
	if err != nil {
		return err
	}
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[userID]
	for i := range lines {
		if lines[i].Product.ID == productID {
			lines[i].Quantity += qty
			s.carts[userID] = lines
			return nil
		}
	}
	s.carts[userID] = append(lines, cart.Item{ID: s.nextLine, Product: p, Quantity: qty})
	s.nextLine++
	return nil
}

// RemoveFromCart deletes a line by its line id.
func (s *Store) RemoveFromCart(userID, lineID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ID == lineID {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// GetCart returns the user's cart snapshot with the computed total.
func (s *Store) GetCart(userID int) cart.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.carts[userID]
	out := cart.Cart{Items: make([]cart.Item, len(lines))}
	copy(out.Items, lines)
	for _, l := range out.Items {
		out.Total += l.Product.Price * float64(l.Quantity)
	}
	return out
}

// AddToWishlist saves a product; a duplicate add reports ErrAlreadySaved,
// which the handler turns into an informational message, not a failure.
func (s *Store) AddToWishlist(userID, productID int) error {
	p, err := s.GetProduct(productID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.wishlists[userID] {
		if e.Product.ID == productID {
			return ErrAlreadySaved
		}
	}
	s.wishlists[userID] = append(s.wishlists[userID], wishlist.Entry{ID: s.nextEntry, Product: p})
	s.nextEntry++
	return nil
}

// RemoveFromWishlist deletes an entry by its entry id.
func (s *Store) RemoveFromWishlist(userID, entryID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.wishlists[userID]
	for i := range entries {
		if entries[i].ID == entryID {
			s.wishlists[userID] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// GetWishlist returns the user's saved entries.
func (s *Store) GetWishlist(userID int) []wishlist.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]wishlist.Entry, len(s.wishlists[userID]))
	copy(out, s.wishlists[userID])
	return out
}

func paginate(list []product.Product, page int) ([]product.Product, bool) {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(list) {
		return []product.Product{}, false
	}
	end := start + pageSize
	if end > len(list) {
		end = len(list)
	}
	out := make([]product.Product, end-start)
	copy(out, list[start:end])
	return out, end < len(list)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// SeedProducts is the default development catalog.
func SeedProducts() []product.Product {
	seed := []struct {
		name  string
		price float64
		rate  float64
		revs  int
		desc  string
	}{
		{"Wireless Earbuds", 2499, 4.3, 812, "Compact earbuds with noise isolation and 24h battery case"},
		{"Smart Watch Pro", 6999, 4.5, 1544, "Fitness tracking, AMOLED display and 7-day battery"},
		{"Bluetooth Speaker", 1799, 4.1, 623, "Portable speaker with deep bass and IPX6 rating"},
		{"Laptop Backpack", 1299, 4.4, 980, "Water resistant backpack with padded 15.6 inch compartment"},
		{"Mechanical Keyboard", 3499, 4.6, 441, "Hot-swappable switches with per-key RGB"},
		{"Running Shoes", 2899, 4.2, 1320, "Lightweight cushioned trainers for daily runs"},
		{"Cotton T-Shirt", 499, 3.9, 2105, "Regular fit crew neck in combed cotton"},
		{"Denim Jacket", 1999, 4.0, 356, "Classic wash with a relaxed fit"},
		{"Stainless Water Bottle", 699, 4.7, 1765, "Vacuum insulated, keeps drinks cold for 18 hours"},
		{"Yoga Mat", 899, 4.3, 540, "Non-slip 6mm mat with carry strap"},
		{"Desk Lamp", 1099, 4.1, 287, "Dimmable LED lamp with USB charging port"},
		{"Espresso Maker", 4599, 4.4, 198, "Compact 15-bar machine with milk frother"},
		{"Noise Cancelling Headphones", 8999, 4.6, 2210, "Over-ear ANC with 30h playback"},
		{"Phone Case", 399, 3.8, 3150, "Shockproof clear case with raised edges"},
		{"Gaming Mouse", 1599, 4.5, 705, "Ultralight mouse with 16k DPI sensor"},
		{"Ceramic Mug Set", 799, 4.2, 412, "Set of four 300ml stoneware mugs"},
	}

	out := make([]product.Product, 0, len(seed))
	for i, sp := range seed {
		id := i + 1
		out = append(out, product.Product{
			ID:          id,
			Name:        sp.name,
			Price:       sp.price,
			Rating:      sp.rate,
			Reviews:     sp.revs,
			Image:       fmt.Sprintf("https://picsum.photos/400/400?random=%d", id),
			Description: sp.desc,
		})
	}
	return out
}
