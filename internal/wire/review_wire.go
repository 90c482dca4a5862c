package wire

import (
	"bistro-boss/internal/adaptor"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	g gates,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Get("/reviews", reviewHandler.GetReviews)
}
