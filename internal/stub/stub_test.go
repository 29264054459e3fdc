package stub

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/smartbuyr/storefront/internal/cart"
	"github.com/smartbuyr/storefront/internal/product"
	"github.com/smartbuyr/storefront/internal/wishlist"
)

const testSecret = "test-secret"

func newTestApp() *fiber.App {
	return New(NewStore(nil), testSecret, nil)
}

func decodeBody(t *testing.T, res io.Reader, out any) {
	t.Helper()
	raw, err := io.ReadAll(res)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decoding body %s: %v", raw, err)
	}
}

// signUpTestUser registers a user and returns the issued token.
func signUpTestUser(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"email":"%s@example.com","password":"hunter22"}`, username, username)
	req := httptest.NewRequest("POST", "/api/signup/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("signup request: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 from signup, got %d", res.StatusCode)
	}
	var out struct {
		Token string `json:"token"`
	}
	decodeBody(t, res.Body, &out)
	if out.Token == "" {
		t.Fatalf("signup returned empty token")
	}
	return out.Token
}

func TestProductsPagination(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/products/?page=1", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var page struct {
		Results []product.Product `json:"results"`
		Next    *string           `json:"next"`
	}
	decodeBody(t, res.Body, &page)
	if len(page.Results) != 10 {
		t.Fatalf("expected page size 10, got %d", len(page.Results))
	}
	if page.Next == nil {
		t.Fatalf("expected a next link on page 1")
	}

	// last page has no next link
	req = httptest.NewRequest("GET", "/api/products/?page=2", nil)
	res, _ = app.Test(req)
	decodeBody(t, res.Body, &page)
	if len(page.Results) == 0 {
		t.Fatalf("expected remaining products on page 2")
	}
	if page.Next != nil {
		t.Fatalf("expected no next link on the last page, got %s", *page.Next)
	}
}

func TestSearchMatchesNameAndDescription(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/products/search/?q=watch", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var page struct {
		Results []product.Product `json:"results"`
	}
	decodeBody(t, res.Body, &page)
	if len(page.Results) == 0 {
		t.Fatalf("expected at least one match for 'watch'")
	}
	for _, p := range page.Results {
		text := strings.ToLower(p.Name + " " + p.Description)
		if !strings.Contains(text, "watch") {
			t.Fatalf("product %q does not match query", p.Name)
		}
	}
}

func TestProductDetailAndNotFound(t *testing.T) {
	app := newTestApp()

	res, _ := app.Test(httptest.NewRequest("GET", "/api/products/1/", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for product 1, got %d", res.StatusCode)
	}
	var p product.Product
	decodeBody(t, res.Body, &p)
	if p.ID != 1 || p.Name == "" {
		t.Fatalf("unexpected product payload: %+v", p)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/products/9999/", nil))
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for missing product, got %d", res.StatusCode)
	}
}

func TestRecommendationsExcludeSelf(t *testing.T) {
	app := newTestApp()

	res, _ := app.Test(httptest.NewRequest("GET", "/api/products/2/recommendations/", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var items []product.Product
	decodeBody(t, res.Body, &items)
	if len(items) == 0 || len(items) > 4 {
		t.Fatalf("expected 1..4 recommendations, got %d", len(items))
	}
	for _, p := range items {
		if p.ID == 2 {
			t.Fatalf("recommendations must not include the product itself")
		}
	}
}

func TestSignInFlow(t *testing.T) {
	app := newTestApp()
	signUpTestUser(t, app, "asha")

	// wrong password
	req := httptest.NewRequest("POST", "/api/signin/", strings.NewReader(`{"username":"asha","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", res.StatusCode)
	}
	var out struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	decodeBody(t, res.Body, &out)
	if out.Message == "" {
		t.Fatalf("expected a human-readable reason for the failure")
	}

	// correct password
	req = httptest.NewRequest("POST", "/api/signin/", strings.NewReader(`{"username":"asha","password":"hunter22"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for valid signin, got %d", res.StatusCode)
	}
	decodeBody(t, res.Body, &out)
	if out.Token == "" {
		t.Fatalf("expected a token from signin")
	}
}

func TestDuplicateSignUpConflicts(t *testing.T) {
	app := newTestApp()
	signUpTestUser(t, app, "dev")

	body := `{"username":"dev","email":"dev@example.com","password":"hunter22"}`
	req := httptest.NewRequest("POST", "/api/signup/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 for duplicate signup, got %d", res.StatusCode)
	}
}

func TestAccountRoutesRequireToken(t *testing.T) {
	app := newTestApp()

	for _, tc := range []struct{ method, path string }{
		{"GET", "/api/accounts/cart/"},
		{"POST", "/api/accounts/cart/add/"},
		{"GET", "/api/accounts/wishlist/"},
		{"POST", "/api/accounts/wishlist/add/"},
	} {
		var body io.Reader
		if tc.method == "POST" {
			body = strings.NewReader(`{"product_id":1,"quantity":1}`)
		}
		req := httptest.NewRequest(tc.method, tc.path, body)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		res, _ := app.Test(req)
		if res.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 without token, got %d", tc.method, tc.path, res.StatusCode)
		}
	}
}

func TestCartAddListRemove(t *testing.T) {
	app := newTestApp()
	token := signUpTestUser(t, app, "ravi")

	doReq := func(method, path, body string) (int, []byte) {
		t.Helper()
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, path, reader)
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Authorization", "Token "+token)
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s %s: %v", method, path, err)
		}
		raw, _ := io.ReadAll(res.Body)
		return res.StatusCode, raw
	}

	status, _ := doReq("POST", "/api/accounts/cart/add/", `{"product_id":1,"quantity":2}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 adding to cart, got %d", status)
	}
	// adding the same product merges into the existing line
	status, _ = doReq("POST", "/api/accounts/cart/add/", `{"product_id":1,"quantity":1}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on second add, got %d", status)
	}

	status, raw := doReq("GET", "/api/accounts/cart/", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 listing cart, got %d", status)
	}
	var got cart.Cart
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("decoding cart: %v", err)
	}
	if len(got.Items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(got.Items))
	}
	if got.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3 after merge, got %d", got.Items[0].Quantity)
	}
	wantTotal := got.Items[0].Product.Price * 3
	if got.Total != wantTotal {
		t.Fatalf("expected total %v, got %v", wantTotal, got.Total)
	}

	status, _ = doReq("DELETE", fmt.Sprintf("/api/accounts/cart/remove/%d/", got.Items[0].ID), "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 removing line, got %d", status)
	}
	status, raw = doReq("GET", "/api/accounts/cart/", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 after removal, got %d", status)
	}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("decoding cart: %v", err)
	}
	if len(got.Items) != 0 || got.Total != 0 {
		t.Fatalf("expected empty cart after removal, got %+v", got)
	}
}

func TestWishlistDuplicateAddIsInformational(t *testing.T) {
	app := newTestApp()
	token := signUpTestUser(t, app, "zoya")

	doReq := func(method, path, body string) (int, []byte) {
		t.Helper()
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, path, reader)
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Authorization", "Token "+token)
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s %s: %v", method, path, err)
		}
		raw, _ := io.ReadAll(res.Body)
		return res.StatusCode, raw
	}

	status, raw := doReq("POST", "/api/accounts/wishlist/add/", `{"product_id":3}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 adding to wishlist, got %d", status)
	}
	if !strings.Contains(string(raw), "Added to wishlist") {
		t.Fatalf("unexpected add message: %s", raw)
	}

	status, raw = doReq("POST", "/api/accounts/wishlist/add/", `{"product_id":3}`)
	if status != fiber.StatusOK {
		t.Fatalf("duplicate add must not be an error, got %d", status)
	}
	if !strings.Contains(string(raw), "Already in wishlist") {
		t.Fatalf("expected distinguishable duplicate message, got %s", raw)
	}

	status, raw = doReq("GET", "/api/accounts/wishlist/", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 listing wishlist, got %d", status)
	}
	var out struct {
		Items []wishlist.Entry `json:"items"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decoding wishlist: %v", err)
	}
	if len(out.Items) != 1 {
		t.Fatalf("duplicate add must not create a second entry, got %d", len(out.Items))
	}

	status, _ = doReq("DELETE", fmt.Sprintf("/api/accounts/wishlist/remove/%d/", out.Items[0].ID), "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 removing entry, got %d", status)
	}
	status, raw = doReq("GET", "/api/accounts/wishlist/", "")
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decoding wishlist: %v", err)
	}
	if len(out.Items) != 0 {
		t.Fatalf("expected empty wishlist after removal, got %d", len(out.Items))
	}
}
