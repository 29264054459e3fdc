package product

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartbuyr/storefront/internal/rest"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(rest.New(srv.URL, srv.Client(), nil))
}

func TestListDecodesPaginatedEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Write([]byte(`{"results":[{"id":1,"name":"Mug","price":199}],"next":"http://x/api/products/?page=3"}`))
	})

	page, err := c.List(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, page.HasMore)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Mug", page.Items[0].Name)
}

func TestListDecodesBareArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":7,"name":"Lamp","price":899,"rating":4.2}]`))
	})

	page, err := c.List(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, page.HasMore)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 7, page.Items[0].ID)
}

func TestSearchEscapesQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/search/", r.URL.Path)
		assert.Equal(t, "red shoes", r.URL.Query().Get("q"))
		w.Write([]byte(`{"results":[],"next":null}`))
	})

	page, err := c.Search(context.Background(), "red shoes", 1)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore)
}

func TestGetNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Not found."}`))
	})

	_, err := c.Get(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, rest.IsNotFound(err))
	assert.Equal(t, "Not found.", rest.Reason(err, "fallback"))
}

func TestRecommendationsEmptyBodyIsNotAnError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/4/recommendations/", r.URL.Path)
		w.Write([]byte(`[]`))
	})

	items, err := c.Recommendations(context.Background(), 4)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestNetworkFailureIsTagged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // force a connection failure
	c := NewClient(rest.New(srv.URL, nil, nil))

	_, err := c.List(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, "could not reach the server", rest.Reason(err, ""))
}
