package news

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("test-key")
	c.baseURL = srv.URL
	return c
}

func TestLatest_BuildsQueryAndDecodes(t *testing.T) {
	var gotQuery map[string][]string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"status":"success","totalResults":2,"results":[{"article_id":"a1","title":"First"},{"article_id":"a2","title":"Second"}],"nextPage":"cursor-123"}`))
	})

	resp, err := c.Latest(context.Background(), SearchParams{Category: "business", Size: 10})
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotQuery["apikey"][0])
	assert.Equal(t, "en", gotQuery["language"][0], "default language should be en")
	assert.Equal(t, "business", gotQuery["category"][0])
	assert.Equal(t, "10", gotQuery["size"][0])

	require.Len(t, resp.Results, 2)
	assert.Equal(t, "a1", resp.Results[0].ArticleID)
	assert.Equal(t, "cursor-123", resp.NextPage, "opaque cursor passthrough")
}

func TestLatest_CursorIsSentVerbatim(t *testing.T) {
	var gotPage string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		w.Write([]byte(`{"status":"success","totalResults":0,"results":[]}`))
	})

	_, err := c.Latest(context.Background(), SearchParams{Page: "cursor-123"})
	require.NoError(t, err)
	assert.Equal(t, "cursor-123", gotPage, "cursor must be passed verbatim")
}

func TestSearch_SetsQueryParam(t *testing.T) {
	var gotQ string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQ = r.URL.Query().Get("q")
		w.Write([]byte(`{"status":"success","totalResults":0,"results":[]}`))
	})

	_, err := c.Search(context.Background(), "fintech", SearchParams{})
	require.NoError(t, err)
	assert.Equal(t, "fintech", gotQ)
}

func TestByCategory_SetsCategoryParam(t *testing.T) {
	var gotCategory string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotCategory = r.URL.Query().Get("category")
		w.Write([]byte(`{"status":"success","totalResults":0,"results":[]}`))
	})

	_, err := c.ByCategory(context.Background(), "technology", SearchParams{})
	require.NoError(t, err)
	assert.Equal(t, "technology", gotCategory)
}

func TestMarket_SetsFilters(t *testing.T) {
	var gotQuery map[string][]string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"status":"success","totalResults":0,"results":[]}`))
	})

	_, err := c.Market(context.Background(), MarketParams{Symbol: "ACME", Sentiment: "positive"})
	require.NoError(t, err)
	assert.Equal(t, "ACME", gotQuery["symbol"][0])
	assert.Equal(t, "positive", gotQuery["sentiment"][0])
}

func TestSources_BuildsQueryAndDecodes(t *testing.T) {
	var gotQuery map[string][]string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"status":"success","totalResults":1,"results":[{"id":"s1","name":"Example Wire","url":"https://example.com"}]}`))
	})

	resp, err := c.Sources(context.Background(), "us", "business", "en")
	require.NoError(t, err)

	assert.Equal(t, "us", gotQuery["country"][0])
	assert.Equal(t, "business", gotQuery["category"][0])
	assert.Equal(t, "en", gotQuery["language"][0])

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "s1", resp.Results[0].ID)
	assert.Equal(t, "Example Wire", resp.Results[0].Name)
}

func TestGet_NonOKStatusIsError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.Latest(context.Background(), SearchParams{})
	assert.Error(t, err)
}

func TestUnconfiguredClientReturnsErrNotConfigured(t *testing.T) {
	c := NewClient("")
	_, err := c.Latest(context.Background(), SearchParams{})
	assert.True(t, errors.Is(err, ErrNotConfigured))
}
