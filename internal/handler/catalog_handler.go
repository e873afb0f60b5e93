package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"movie-browse-server/internal/tmdb"
)

// CatalogHandler proxies browse, search and detail requests to TMDB. The
// upstream body is passed through verbatim.
type CatalogHandler struct {
	tmdb *tmdb.Client
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(client *tmdb.Client) *CatalogHandler {
	return &CatalogHandler{tmdb: client}
}

// ListCategory returns one page of a named browse category. Unknown
// categories fall back to trending.
// @Summary Browse a category
// @Tags catalog
// @Produce json
// @Param type path string true "Category name" Enums(trending,originals,top_rated,action,comedy,horror,romance,documentaries)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /movies/{type} [get]
func (h *CatalogHandler) ListCategory(c fiber.Ctx) error {
	name := c.Params("type")
	page := fiber.Query(c, "page", 1)

	slog.Info("fetching category", "category", name, "page", page)
	body, err := h.tmdb.ListCategory(name, page)
	if err != nil {
		return h.sendError(c, err)
	}
	return sendJSON(c, body)
}

// Search runs a multi-type search.
// @Summary Search the catalog
// @Tags catalog
// @Produce json
// @Param q query string true "Free-text query"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /search [get]
func (h *CatalogHandler) Search(c fiber.Ctx) error {
	query := c.Query("q")

	body, err := h.tmdb.Search(query)
	if err != nil {
		return h.sendError(c, err)
	}
	return sendJSON(c, body)
}

// GetDetails returns one title with videos, credits and similar titles
// inlined.
// @Summary Title details
// @Tags catalog
// @Produce json
// @Param type path string true "Media type (tv or movie)"
// @Param id path int true "Title ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /details/{type}/{id} [get]
func (h *CatalogHandler) GetDetails(c fiber.Ctx) error {
	mediaType := c.Params("type")
	id := c.Params("id")

	body, err := h.tmdb.GetDetails(mediaType, id)
	if err != nil {
		return h.sendError(c, err)
	}
	return sendJSON(c, body)
}

// sendError maps gateway failures onto HTTP statuses: the upstream status
// when TMDB answered, 500 for everything else.
func (h *CatalogHandler) sendError(c fiber.Ctx, err error) error {
	var upstream *tmdb.UpstreamError
	if errors.As(err, &upstream) {
		return c.Status(upstream.StatusCode).JSON(ErrorResponse{Error: err.Error()})
	}
	if !errors.Is(err, tmdb.ErrMissingAPIKey) {
		slog.Error("TMDB request failed", "error", err)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
}

func sendJSON(c fiber.Ctx, body []byte) error {
	c.Set("Content-Type", "application/json")
	return c.Send(body)
}
