package wire

import (
	"bistro-boss/internal/adaptor"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStats(
	r chi.Router,
	statsHandler *adaptor.StatsHandler,
	g gates,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Get("/order-stats", statsHandler.OrderStats)
	r.With(g.token, g.admin).Get("/admin-stats", statsHandler.AdminStats)
}
