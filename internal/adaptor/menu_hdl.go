package adaptor

import (
	"net/http"

	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/usecase"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MenuHandler struct {
	service usecase.MenuService
	log     *zap.Logger
}

func NewMenuHandler(service usecase.MenuService, log *zap.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		log:     log.With(zap.String("handler", "menu")),
	}
}

func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetMenu(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get menu")
		return
	}

	utils.ResponseSuccess(w, items)
}

// GetMenuItem answers with a list holding zero or one item.
func (h *MenuHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetMenuItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get menu item")
		return
	}

	utils.ResponseSuccess(w, items)
}

func (h *MenuHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req request.MenuItemRequest
	if !decodeAndValidate(w, r, h.log, &req) {
		return
	}

	result, err := h.service.CreateMenuItem(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create menu item")
		return
	}

	utils.ResponseSuccess(w, result)
}

func (h *MenuHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req request.MenuUpdateRequest
	if !decodeAndValidate(w, r, h.log, &req) {
		return
	}

	result, err := h.service.UpdateMenuItem(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update menu item")
		return
	}

	utils.ResponseSuccess(w, result)
}

func (h *MenuHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.DeleteMenuItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "delete menu item")
		return
	}

	utils.ResponseSuccess(w, result)
}
