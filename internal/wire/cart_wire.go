package wire

import (
	"bistro-boss/internal/adaptor"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCart(
	r chi.Router,
	cartHandler *adaptor.CartHandler,
	g gates,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Get("/cart", cartHandler.GetCart)
	r.With(g.limit).Post("/cart", cartHandler.AddToCart)
	r.Delete("/cart/{id}", cartHandler.RemoveFromCart)
}
