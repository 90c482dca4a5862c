package wire

import (
	"bistro-boss/internal/adaptor"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	g gates,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.With(g.limit).Post("/create-payment-intent", paymentHandler.CreatePaymentIntent)
	r.With(g.limit).Post("/payments", paymentHandler.RecordPayment)

	// ==================== PROTECTED ROUTES ====================
	r.With(g.token).Get("/payments/{email}", paymentHandler.GetUserPayments)

	// ==================== ADMIN ROUTES ====================
	r.With(g.token, g.admin).Get("/payments", paymentHandler.GetAllPayments)
}
