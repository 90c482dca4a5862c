package wire

import (
	"context"
	"net/http"
	"time"

	"bistro-boss/internal/adaptor"
	"bistro-boss/internal/data/repository"
	"bistro-boss/internal/usecase"
	"bistro-boss/pkg/middleware"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators built in main before routing.
type Deps struct {
	Integrations usecase.Integrations
	Verifier     middleware.TokenVerifier
	// Limiter is optional; nil disables rate limiting.
	Limiter middleware.RateLimiter
	DB      Pinger
	// Cache is the limiter's store; nil skips it in /health.
	Cache Pinger
}

type App struct {
	Router *chi.Mux
}

// gates are the per-route middleware shared by the wire functions.
type gates struct {
	token func(http.Handler) http.Handler
	admin func(http.Handler) http.Handler
	limit func(http.Handler) http.Handler
}

func Wiring(repo *repository.Repository, deps Deps, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, deps.Integrations, config, logger)
	handler := adaptor.NewHandler(service, logger)

	g := gates{
		token: middleware.VerifyToken(deps.Verifier, logger),
		admin: middleware.VerifyAdmin(repo.User, logger),
		limit: passthrough,
	}
	if deps.Limiter != nil {
		g.limit = middleware.RateLimit(deps.Limiter, logger)
	}

	return &App{
		Router: setupRouter(handler, g, deps, config, logger),
	}
}

func setupRouter(
	handler *adaptor.Handler,
	g gates,
	deps Deps,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	wireAuth(r, handler.Auth, g, config, logger)
	wireUser(r, handler.User, g, config, logger)
	wireMenu(r, handler.Menu, g, config, logger)
	wireReview(r, handler.Review, g, config, logger)
	wireCart(r, handler.Cart, g, config, logger)
	wirePayment(r, handler.Payment, g, config, logger)
	wireStats(r, handler.Stats, g, config, logger)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseText(w, "Restaurant is Open now!")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := deps.DB.Ping(ctx); err != nil {
			logger.Error("Health check failed", zap.Error(err), zap.String("component", "database"))
			utils.ResponseUnavailable(w, "Database unavailable")
			return
		}
		if deps.Cache != nil {
			if err := deps.Cache.Ping(ctx); err != nil {
				logger.Error("Health check failed", zap.Error(err), zap.String("component", "cache"))
				utils.ResponseUnavailable(w, "Cache unavailable")
				return
			}
		}
		utils.ResponseText(w, "OK")
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

func passthrough(next http.Handler) http.Handler {
	return next
}
