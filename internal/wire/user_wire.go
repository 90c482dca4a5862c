package wire

import (
	"bistro-boss/internal/adaptor"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	g gates,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/users", userHandler.CreateUser)

	// ==================== ADMIN ROUTES ====================
	admin := r.With(g.token, g.admin)
	admin.Get("/users", userHandler.GetAllUsers)
	// the handler also requires the path email to match the token email
	admin.Get("/users/admin/{email}", userHandler.GetAdminStatus)
	admin.Patch("/users/admin/{id}", userHandler.MakeAdmin)
	admin.Delete("/users/{id}", userHandler.DeleteUser)
}
