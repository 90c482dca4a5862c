package adaptor

import (
	"encoding/json"
	"net/http"
	"net/url"

	"bistro-boss/internal/usecase"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Menu    *MenuHandler
	Review  *ReviewHandler
	Cart    *CartHandler
	Payment *PaymentHandler
	Stats   *StatsHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Menu:    NewMenuHandler(service.Menu, log),
		Review:  NewReviewHandler(service.Review, log),
		Cart:    NewCartHandler(service.Cart, log),
		Payment: NewPaymentHandler(service.Payment, log),
		Stats:   NewStatsHandler(service.Stats, log),
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

// emailParam returns the {email} path segment with percent-escapes decoded,
// so /payments/ann%40bistro.test names ann@bistro.test.
func emailParam(r *http.Request) (string, error) {
	return url.PathUnescape(chi.URLParam(r, "email"))
}
