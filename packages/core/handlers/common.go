package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"footy-api/packages/core/links"
	"footy-api/packages/core/models"
	"footy-api/packages/core/services"
	"footy-api/packages/core/validation"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Settings are the request-independent knobs shared by every handler
type Settings struct {
	// PublicURL, when set, replaces the request origin in generated links
	PublicURL       string
	DefaultPageSize int
	MaxPageSize     int
}

func DefaultSettings() Settings {
	return Settings{
		DefaultPageSize: services.DefaultPageSize,
		MaxPageSize:     services.MaxPageSize,
	}
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error  string            `json:"error" example:"validation failed"`
	Fields map[string]string `json:"fields,omitempty"`
}

// links returns a link builder rooted at the origin the client used
func (s Settings) links(c *gin.Context) links.Builder {
	if s.PublicURL != "" {
		return links.NewBuilder(s.PublicURL)
	}
	return links.NewBuilder(requestOrigin(c))
}

func requestOrigin(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}

// pageRequest reads page and page_size. page_size above the maximum is clamped.
func (s Settings) pageRequest(c *gin.Context) (services.PageRequest, error) {
	req := services.PageRequest{Page: 1, PageSize: s.DefaultPageSize}
	verr := services.NewValidationError()

	if raw, ok := c.GetQuery("page"); ok {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			verr.Add("page", "must be a positive integer")
		}
		req.Page = page
	}

	if raw, ok := c.GetQuery("page_size"); ok {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			verr.Add("page_size", "must be a positive integer")
		}
		req.PageSize = min(size, s.MaxPageSize)
	}

	return req, verr.OrNil()
}

// paginated wraps one page of entities in the list envelope with next and
// previous links that keep the caller's filters.
func paginated[T, R any](c *gin.Context, s Settings, page *services.Page[T], represent func(*T) R) models.PaginatedResponse[R] {
	results := make([]R, 0, len(page.Items))
	for i := range page.Items {
		results = append(results, represent(&page.Items[i]))
	}

	resp := models.PaginatedResponse[R]{
		Count:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
		Results:    results,
	}
	if page.HasNext() {
		next := pageLink(c, s, page.Page+1)
		resp.Next = &next
	}
	if page.HasPrevious() {
		previous := pageLink(c, s, min(page.Page-1, max(page.TotalPages, 1)))
		resp.Previous = &previous
	}
	return resp
}

func pageLink(c *gin.Context, s Settings, page int) string {
	origin := s.PublicURL
	if origin == "" {
		origin = requestOrigin(c)
	}

	query := url.Values{}
	for key, values := range c.Request.URL.Query() {
		query[key] = values
	}
	query.Set("page", strconv.Itoa(page))

	return origin + c.Request.URL.Path + "?" + query.Encode()
}

// bindJSON decodes and validates the request body, responding 400 on failure
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Fields: validation.FieldErrors(err),
		})
		return false
	}
	return true
}

// respondError maps service errors onto HTTP responses
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError

	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Fields: verr.Fields,
		})
	case errors.Is(err, services.ErrProtected):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		log.Ctx(c.Request.Context()).Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// created responds 201 with body and a Location header pointing at location
func created(c *gin.Context, location string, body interface{}) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, body)
}
