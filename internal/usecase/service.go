package usecase

import (
	"context"

	"bistro-boss/internal/data/repository"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

// TokenSigner issues access tokens for a claims payload.
type TokenSigner interface {
	Sign(payload map[string]any) (string, error)
}

// PaymentProcessor stages a charge and returns the client secret.
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, amount int64) (string, error)
}

// Mailer delivers the order confirmation email.
type Mailer interface {
	SendOrderConfirmation(ctx context.Context, to, transactionID string) error
}

// Integrations groups the external collaborators created once in main.
type Integrations struct {
	Tokens   TokenSigner
	Payments PaymentProcessor
	Mailer   Mailer
}

type Service struct {
	Auth    AuthService
	User    UserService
	Menu    MenuService
	Review  ReviewService
	Cart    CartService
	Payment PaymentService
	Stats   StatsService
}

func NewService(repo *repository.Repository, ext Integrations, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(ext.Tokens, log),
		User:    NewUserService(repo.User, log),
		Menu:    NewMenuService(repo.Menu, log),
		Review:  NewReviewService(repo.Review, log),
		Cart:    NewCartService(repo.Cart, log),
		Payment: NewPaymentService(repo, ext.Payments, ext.Mailer, log),
		Stats:   NewStatsService(repo, log),
	}
}
