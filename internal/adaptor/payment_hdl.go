package adaptor

import (
	"net/http"

	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/usecase"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// CreatePaymentIntent handles POST /create-payment-intent
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req request.PaymentIntentRequest
	if !decodeAndValidate(w, r, h.log, &req) {
		return
	}

	result, err := h.service.CreatePaymentIntent(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create payment intent")
		return
	}

	utils.ResponseSuccess(w, result)
}

// RecordPayment handles POST /payments
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req request.PaymentRequest
	if !decodeAndValidate(w, r, h.log, &req) {
		return
	}

	result, err := h.service.RecordPayment(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "record payment")
		return
	}

	utils.ResponseSuccess(w, result)
}

// GetUserPayments handles GET /payments/{email}; callers see only their own.
func (h *PaymentHandler) GetUserPayments(w http.ResponseWriter, r *http.Request) {
	requester, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "forbidden access")
		return
	}

	email, err := emailParam(r)
	if err != nil {
		h.log.Warn("Invalid email parameter", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid email parameter", nil)
		return
	}

	payments, err := h.service.GetUserPayments(r.Context(), requester, email)
	if err != nil {
		handleServiceError(w, h.log, err, "get user payments")
		return
	}

	utils.ResponseSuccess(w, payments)
}

func (h *PaymentHandler) GetAllPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.GetAllPayments(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get all payments")
		return
	}

	utils.ResponseSuccess(w, payments)
}
