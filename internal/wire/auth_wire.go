package wire

import (
	"bistro-boss/internal/adaptor"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	g gates,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Post("/jwt", authHandler.IssueToken)
}
