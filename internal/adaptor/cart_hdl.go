package adaptor

import (
	"net/http"

	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/usecase"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log.With(zap.String("handler", "cart")),
	}
}

// GetCart handles GET /cart?email=
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetCart(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		handleServiceError(w, h.log, err, "get cart")
		return
	}

	utils.ResponseSuccess(w, items)
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req request.CartItemRequest
	if !decodeAndValidate(w, r, h.log, &req) {
		return
	}

	result, err := h.service.AddToCart(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add to cart")
		return
	}

	utils.ResponseSuccess(w, result)
}

func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.RemoveFromCart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "remove from cart")
		return
	}

	utils.ResponseSuccess(w, result)
}
