package wire

import (
	"bistro-boss/internal/adaptor"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMenu(
	r chi.Router,
	menuHandler *adaptor.MenuHandler,
	g gates,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/menu", menuHandler.GetMenu)
	r.Get("/menu/{id}", menuHandler.GetMenuItem)

	if config.App.MenuUpdateRequiresAdmin {
		r.With(g.token, g.admin).Patch("/menu/{id}", menuHandler.UpdateMenuItem)
	} else {
		log.Warn("PATCH /menu/{id} is not behind the admin gate; set MENU_UPDATE_REQUIRES_ADMIN=true to protect it")
		r.Patch("/menu/{id}", menuHandler.UpdateMenuItem)
	}

	// ==================== ADMIN ROUTES ====================
	r.With(g.token, g.admin).Post("/menu", menuHandler.CreateMenuItem)
	r.With(g.token, g.admin).Delete("/menu/{id}", menuHandler.DeleteMenuItem)
}
