package usecase

import (
	"context"
	"fmt"
	"time"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/data/repository"
	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/dto/response"

	"go.uber.org/zap"
)

const confirmationTimeout = 30 * time.Second

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, req *request.PaymentIntentRequest) (*response.ClientSecretResponse, error)
	RecordPayment(ctx context.Context, req *request.PaymentRequest) (*response.PaymentResponse, error)
	GetUserPayments(ctx context.Context, requesterEmail, email string) ([]*entity.Payment, error)
	GetAllPayments(ctx context.Context) ([]*entity.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	cartRepo    repository.CartRepository
	processor   PaymentProcessor
	mailer      Mailer
	log         *zap.Logger

	now func() time.Time
}

// NewPaymentService wires checkout. A nil mailer skips the confirmation;
// main always passes one.
func NewPaymentService(repo *repository.Repository, processor PaymentProcessor, mailer Mailer, log *zap.Logger) PaymentService {
	return &paymentService{
		paymentRepo: repo.Payment,
		cartRepo:    repo.Cart,
		processor:   processor,
		mailer:      mailer,
		log:         log.With(zap.String("service", "payment")),
		now:         time.Now,
	}
}

// CreatePaymentIntent converts price to cents, truncating, and stages a charge.
func (s *paymentService) CreatePaymentIntent(ctx context.Context, req *request.PaymentIntentRequest) (*response.ClientSecretResponse, error) {
	price, err := req.Price.Float64()
	if err != nil {
		return nil, fmt.Errorf("%w: price %q is not a number", ErrValidation, req.Price.String())
	}

	amount := int64(price * 100)

	secret, err := s.processor.CreateIntent(ctx, amount)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	s.log.Info("Payment intent created", zap.Int64("amount", amount))
	return &response.ClientSecretResponse{ClientSecret: secret}, nil
}

// RecordPayment stores the payment, clears the purchased cart lines and mails
// a confirmation in the background. The two writes are not atomic.
func (s *paymentService) RecordPayment(ctx context.Context, req *request.PaymentRequest) (*response.PaymentResponse, error) {
	cartIDs, err := parseObjectIDs(req.CartIDs)
	if err != nil {
		return nil, err
	}
	menuItemIDs, err := parseObjectIDs(req.MenuItemIDs)
	if err != nil {
		return nil, err
	}

	payment := &entity.Payment{
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		Date:          s.now().UTC(),
		CartIDs:       cartIDs,
		MenuItemIDs:   menuItemIDs,
		Status:        entity.PaymentStatusPending,
	}
	if req.Date != nil {
		payment.Date = req.Date.UTC()
	}
	if req.Status != "" {
		payment.Status = entity.PaymentStatus(req.Status)
	}

	id, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	deleted, err := s.cartRepo.DeleteMany(ctx, cartIDs)
	if err != nil {
		// payment row is not rolled back
		s.log.Error("Payment stored but cart cleanup failed",
			zap.Error(err),
			zap.String("payment_id", id.Hex()),
			zap.String("transaction_id", req.TransactionID),
		)
		return nil, fmt.Errorf("clear cart after payment: %w", err)
	}

	s.log.Info("Payment recorded",
		zap.String("payment_id", id.Hex()),
		zap.String("email", req.Email),
		zap.String("transaction_id", req.TransactionID),
		zap.Float64("price", req.Price),
		zap.Int64("cart_items_removed", deleted),
	)

	if s.mailer != nil {
		go s.sendConfirmation(req.Email, req.TransactionID)
	}

	return &response.PaymentResponse{
		PaymentResult: response.Inserted(id.Hex()),
		DeleteResult:  response.Deleted(deleted),
	}, nil
}

// sendConfirmation runs detached from the request; failures are only logged.
func (s *paymentService) sendConfirmation(email, transactionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), confirmationTimeout)
	defer cancel()

	if err := s.mailer.SendOrderConfirmation(ctx, email, transactionID); err != nil {
		s.log.Error("Failed to send order confirmation",
			zap.Error(err),
			zap.String("email", email),
			zap.String("transaction_id", transactionID),
		)
		return
	}

	s.log.Debug("Order confirmation sent", zap.String("email", email))
}

func (s *paymentService) GetUserPayments(ctx context.Context, requesterEmail, email string) ([]*entity.Payment, error) {
	if email != requesterEmail {
		s.log.Warn("Payment history requested for another user",
			zap.String("requester", requesterEmail),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("%w: payments of %s", ErrForbidden, email)
	}

	payments, err := s.paymentRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user payments: %w", err)
	}
	return payments, nil
}

func (s *paymentService) GetAllPayments(ctx context.Context) ([]*entity.Payment, error) {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get payments: %w", err)
	}
	return payments, nil
}
