package usecase

import (
	"context"
	"fmt"

	"bistro-boss/internal/dto/response"

	"go.uber.org/zap"
)

type AuthService interface {
	IssueToken(ctx context.Context, payload map[string]any) (*response.TokenResponse, error)
}

type authService struct {
	tokens TokenSigner
	log    *zap.Logger
}

func NewAuthService(tokens TokenSigner, log *zap.Logger) AuthService {
	return &authService{
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

// IssueToken signs whatever identity payload the client signed in with.
func (s *authService) IssueToken(ctx context.Context, payload map[string]any) (*response.TokenResponse, error) {
	signed, err := s.tokens.Sign(payload)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	email, _ := payload["email"].(string)
	s.log.Info("Token issued", zap.String("email", email))

	return &response.TokenResponse{Token: signed}, nil
}
