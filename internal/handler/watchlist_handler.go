package handler

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"movie-browse-server/internal/models"
	"movie-browse-server/internal/service"
)

// WatchlistHandler handles the shared watchlist collection. Every endpoint
// responds with the full post-operation collection.
type WatchlistHandler struct {
	svc *service.WatchlistService
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(svc *service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{svc: svc}
}

// List returns the full watchlist in insertion order.
// @Summary List watchlist
// @Tags watchlist
// @Produce json
// @Success 200 {array} models.WatchlistItem
// @Router /watchlist [get]
func (h *WatchlistHandler) List(c fiber.Ctx) error {
	items, err := h.svc.List()
	if err != nil {
		slog.Error("failed to load watchlist", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to load watchlist"})
	}
	return c.JSON(items)
}

// Add inserts the posted item. Adding an id that is already present is a
// no-op; the response is the full collection either way.
// @Summary Add to watchlist
// @Tags watchlist
// @Accept json
// @Produce json
// @Param item body models.WatchlistItem true "Catalog item"
// @Success 200 {array} models.WatchlistItem
// @Router /watchlist [post]
func (h *WatchlistHandler) Add(c fiber.Ctx) error {
	var item models.WatchlistItem
	if err := c.Bind().JSON(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	items, err := h.svc.Add(item)
	if err != nil {
		slog.Error("failed to update watchlist", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to update watchlist"})
	}
	return c.JSON(items)
}

// Remove deletes the entry with the matching id if present. A non-numeric
// id matches nothing; the response is still the full collection.
// @Summary Remove from watchlist
// @Tags watchlist
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {array} models.WatchlistItem
// @Router /watchlist/{id} [delete]
func (h *WatchlistHandler) Remove(c fiber.Ctx) error {
	id, parseErr := strconv.ParseInt(c.Params("id"), 10, 64)

	var items []models.WatchlistItem
	var err error
	if parseErr != nil {
		items, err = h.svc.List()
	} else {
		items, err = h.svc.Remove(id)
	}
	if err != nil {
		slog.Error("failed to update watchlist", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to update watchlist"})
	}
	return c.JSON(items)
}
