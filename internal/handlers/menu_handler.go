package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/BVEnterprisess/table1837-tavern-app/internal/models"
	"github.com/BVEnterprisess/table1837-tavern-app/internal/repository"
	"github.com/BVEnterprisess/table1837-tavern-app/internal/service"
	"github.com/go-chi/chi/v5"
)

// MenuHandler handles menu read requests
type MenuHandler struct {
	service *service.MenuService
	logger  *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(service *service.MenuService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger,
	}
}

// ListMenu handles GET /api/menu/{menuType}
// Returns all persisted items for one menu type:
// - 200: successful operation
// - 400: unknown menu type
func (h *MenuHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	menuType, ok := models.ParseMenuType(chi.URLParam(r, "menuType"))
	if !ok {
		h.logger.Warn("unknown menu type requested", "menuType", chi.URLParam(r, "menuType"))
		WriteError(w, http.StatusBadRequest, "Unknown menu type", h.logger)
		return
	}

	items, err := h.service.ListByCategory(ctx, menuType)
	if err != nil {
		h.logger.Error("failed to list menu items", "menuType", menuType, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, items, h.logger)
}

// GetItem handles GET /api/menu/{menuType}/items/{itemId}
// Returns a single persisted item:
// - 200: successful operation
// - 400: unknown menu type or missing ID
// - 404: item not found
func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := models.ParseMenuType(chi.URLParam(r, "menuType")); !ok {
		WriteError(w, http.StatusBadRequest, "Unknown menu type", h.logger)
		return
	}

	itemID := chi.URLParam(r, "itemId")
	if itemID == "" {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	item, err := h.service.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			h.logger.Info("menu item not found", "itemId", itemID)
			WriteError(w, http.StatusNotFound, "Menu item not found", h.logger)
			return
		}

		h.logger.Error("failed to get menu item", "itemId", itemID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, item, h.logger)
}
