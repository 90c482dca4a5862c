// main.go
package main

import (
	"context"
	"log"
	"time"

	"bistro-boss/cmd"
	"bistro-boss/internal/data/repository"
	"bistro-boss/internal/usecase"
	"bistro-boss/internal/wire"
	"bistro-boss/pkg/cache"
	"bistro-boss/pkg/database"
	"bistro-boss/pkg/mailer"
	"bistro-boss/pkg/payment"
	"bistro-boss/pkg/token"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			logger.Error("Failed to disconnect database", zap.Error(err))
		}
	}()

	logger.Info("Database connected successfully", zap.String("database", config.Database.Name))

	repos := repository.NewRepository(db, logger)

	tokens := token.NewManager(config.JWT.Secret, config.JWT.Expiry)

	if config.Payment.SecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY is empty; payment intents will fail")
	}
	integrations := usecase.Integrations{
		Tokens:   tokens,
		Payments: payment.NewStripeProcessor(config.Payment.SecretKey, config.Payment.Currency, logger),
		Mailer:   newMailer(config.Email, logger),
	}

	deps := wire.Deps{
		Integrations: integrations,
		Verifier:     tokens,
		DB:           db,
	}

	if config.RateLimit.RedisAddr != "" {
		limiter, err := cache.NewClient(config.RateLimit.RedisAddr, config.RateLimit.MaxRequests, config.RateLimit.Window)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer limiter.Close()

		deps.Limiter = limiter
		deps.Cache = limiter
		logger.Info("Rate limiting enabled",
			zap.Int("max_requests", config.RateLimit.MaxRequests),
			zap.Duration("window", config.RateLimit.Window),
		)
	}

	// Wire all dependencies
	app := wire.Wiring(repos, deps, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}

// newMailer picks Mailgun when it is configured and a logging stand-in
// otherwise, so every recorded payment still dispatches a confirmation.
func newMailer(config utils.EmailConfig, logger *zap.Logger) usecase.Mailer {
	if config.APIKey == "" || config.Domain == "" {
		logger.Warn("Mailgun not configured; order confirmation emails are only logged")
		return mailer.NewLogMailer(logger)
	}
	return mailer.NewMailgunMailer(config.Domain, config.APIKey, config.From, config.ShopURL, logger)
}
