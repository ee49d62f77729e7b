package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/trigenthq/trigent/trigent-backend/internal/middleware"
	"github.com/trigenthq/trigent/trigent-backend/internal/news"
)

// NewsHandler proxies the NewsData.io provider. The opaque page cursor
// from the provider is passed to clients verbatim and accepted back
// unchanged.
type NewsHandler struct {
	newsClient *news.Client
}

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(newsClient *news.Client) *NewsHandler {
	return &NewsHandler{newsClient: newsClient}
}

func (h *NewsHandler) searchParams(c echo.Context) news.SearchParams {
	return news.SearchParams{
		Country:  c.QueryParam("country"),
		Language: c.QueryParam("language"),
		Page:     c.QueryParam("page"),
	}
}

func (h *NewsHandler) respond(c echo.Context, resp any, err error) error {
	if err != nil {
		if errors.Is(err, news.ErrNotConfigured) {
			return NewInternalError(c, "News provider is not configured")
		}
		log.Error().Err(err).Msg("News request failed")
		return NewInternalError(c, "Failed to fetch news")
	}
	return c.JSON(http.StatusOK, resp)
}

// Latest handles GET /news/latest
func (h *NewsHandler) Latest(c echo.Context) error {
	if middleware.GetUserID(c) == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	params := h.searchParams(c)
	if category := c.QueryParam("category"); category != "" {
		resp, err := h.newsClient.ByCategory(c.Request().Context(), category, params)
		return h.respond(c, resp, err)
	}
	resp, err := h.newsClient.Latest(c.Request().Context(), params)
	return h.respond(c, resp, err)
}

// Search handles GET /news/search
func (h *NewsHandler) Search(c echo.Context) error {
	if middleware.GetUserID(c) == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "q", Message: "Query is required"},
		})
	}

	resp, err := h.newsClient.Search(c.Request().Context(), query, h.searchParams(c))
	return h.respond(c, resp, err)
}

// Market handles GET /news/market
func (h *NewsHandler) Market(c echo.Context) error {
	if middleware.GetUserID(c) == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	resp, err := h.newsClient.Market(c.Request().Context(), news.MarketParams{
		Symbol:       c.QueryParam("symbol"),
		Organization: c.QueryParam("organization"),
		Sentiment:    c.QueryParam("sentiment"),
	})
	return h.respond(c, resp, err)
}

// Sources handles GET /news/sources
func (h *NewsHandler) Sources(c echo.Context) error {
	if middleware.GetUserID(c) == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	resp, err := h.newsClient.Sources(
		c.Request().Context(),
		c.QueryParam("country"),
		c.QueryParam("category"),
		c.QueryParam("language"),
	)
	return h.respond(c, resp, err)
}
