package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrNotConfigured is returned when no NewsData API key was provided
var ErrNotConfigured = errors.New("news api not configured")

const defaultBaseURL = "https://newsdata.io/api/1"

// Article is a single NewsData.io article
type Article struct {
	ArticleID   string   `json:"article_id"`
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Keywords    []string `json:"keywords,omitempty"`
	Creator     []string `json:"creator,omitempty"`
	Description string   `json:"description,omitempty"`
	Content     string   `json:"content,omitempty"`
	PubDate     string   `json:"pubDate"`
	ImageURL    string   `json:"image_url,omitempty"`
	SourceID    string   `json:"source_id"`
	SourceName  string   `json:"source_name,omitempty"`
	SourceURL   string   `json:"source_url,omitempty"`
	SourceIcon  string   `json:"source_icon,omitempty"`
	Language    string   `json:"language"`
	Country     []string `json:"country,omitempty"`
	Category    []string `json:"category,omitempty"`
	Sentiment   string   `json:"sentiment,omitempty"`
}

// Response is a paginated NewsData.io result. NextPage is an opaque
// cursor passed back verbatim to fetch the following page.
type Response struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Results      []Article `json:"results"`
	NextPage     string    `json:"nextPage,omitempty"`
}

// Source is a NewsData.io publisher entry
type Source struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Category    []string `json:"category,omitempty"`
	Language    []string `json:"language,omitempty"`
	Country     []string `json:"country,omitempty"`
	Description string   `json:"description,omitempty"`
}

// SourcesResponse is the /sources endpoint result
type SourcesResponse struct {
	Status       string   `json:"status"`
	TotalResults int      `json:"totalResults"`
	Results      []Source `json:"results"`
}

// SearchParams are the optional filters for latest/search requests.
// Zero values are omitted from the query string.
type SearchParams struct {
	Query           string
	QueryInTitle    string
	Timeframe       string
	FromDate        string
	ToDate          string
	Country         string
	Language        string
	Category        string
	Domain          string
	ExcludeDomain   string
	PriorityDomain  string
	FullContent     bool
	Image           bool
	RemoveDuplicate bool
	Size            int
	Page            string // opaque cursor from a previous Response
}

func (p SearchParams) apply(q url.Values) {
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set("q", p.Query)
	set("qInTitle", p.QueryInTitle)
	set("timeframe", p.Timeframe)
	set("from_date", p.FromDate)
	set("to_date", p.ToDate)
	set("country", p.Country)
	set("language", p.Language)
	set("category", p.Category)
	set("domain", p.Domain)
	set("excludedomain", p.ExcludeDomain)
	set("prioritydomain", p.PriorityDomain)
	set("page", p.Page)
	if p.FullContent {
		q.Set("full_content", "1")
	}
	if p.Image {
		q.Set("image", "1")
	}
	if p.RemoveDuplicate {
		q.Set("removeduplicate", "1")
	}
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
}

// MarketParams are the filters for the market/financial endpoint
type MarketParams struct {
	Symbol       string
	Organization string
	Sentiment    string
}

// Client is a NewsData.io API client
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a news client. An empty apiKey yields an
// unconfigured client whose calls return ErrNotConfigured.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether requests can be made
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

// Latest fetches the latest news with optional filters. English is the
// default language unless the params override it.
func (c *Client) Latest(ctx context.Context, params SearchParams) (*Response, error) {
	if params.Language == "" {
		params.Language = "en"
	}
	q := url.Values{}
	params.apply(q)

	var resp Response
	if err := c.get(ctx, "/latest", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search fetches news matching a keyword query
func (c *Client) Search(ctx context.Context, query string, params SearchParams) (*Response, error) {
	params.Query = query
	return c.Latest(ctx, params)
}

// ByCategory fetches the latest news for one category
func (c *Client) ByCategory(ctx context.Context, category string, params SearchParams) (*Response, error) {
	params.Category = category
	return c.Latest(ctx, params)
}

// Market fetches market/financial news
func (c *Client) Market(ctx context.Context, params MarketParams) (*Response, error) {
	q := url.Values{}
	q.Set("language", "en")
	if params.Symbol != "" {
		q.Set("symbol", params.Symbol)
	}
	if params.Organization != "" {
		q.Set("organization", params.Organization)
	}
	if params.Sentiment != "" {
		q.Set("sentiment", params.Sentiment)
	}

	var resp Response
	if err := c.get(ctx, "/market", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Sources fetches the available publishers
func (c *Client) Sources(ctx context.Context, country, category, language string) (*SourcesResponse, error) {
	q := url.Values{}
	if country != "" {
		q.Set("country", country)
	}
	if category != "" {
		q.Set("category", category)
	}
	if language != "" {
		q.Set("language", language)
	}

	var resp SourcesResponse
	if err := c.get(ctx, "/sources", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	q.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("news request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("news api error: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode news response: %w", err)
	}
	return nil
}
