package usecase

import (
	"context"
	"fmt"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/data/repository"
	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/dto/response"

	"go.uber.org/zap"
)

type CartService interface {
	AddToCart(ctx context.Context, req *request.CartItemRequest) (*response.InsertResponse, error)
	GetCart(ctx context.Context, email string) ([]*entity.CartItem, error)
	RemoveFromCart(ctx context.Context, id string) (*response.DeleteResponse, error)
}

type cartService struct {
	cartRepo repository.CartRepository
	log      *zap.Logger
}

func NewCartService(cartRepo repository.CartRepository, log *zap.Logger) CartService {
	return &cartService{
		cartRepo: cartRepo,
		log:      log.With(zap.String("service", "cart")),
	}
}

func (s *cartService) AddToCart(ctx context.Context, req *request.CartItemRequest) (*response.InsertResponse, error) {
	item := &entity.CartItem{
		MenuID: req.MenuID,
		Email:  req.Email,
		Name:   req.Name,
		Image:  req.Image,
		Price:  req.Price,
	}

	id, err := s.cartRepo.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("add to cart: %w", err)
	}

	s.log.Debug("Cart item added",
		zap.String("cart_id", id.Hex()),
		zap.String("email", req.Email),
		zap.String("menu_id", req.MenuID),
	)
	return response.Inserted(id.Hex()), nil
}

// GetCart lists the cart of email. There is no ownership check.
func (s *cartService) GetCart(ctx context.Context, email string) ([]*entity.CartItem, error) {
	items, err := s.cartRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return items, nil
}

func (s *cartService) RemoveFromCart(ctx context.Context, id string) (*response.DeleteResponse, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	deleted, err := s.cartRepo.Delete(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("remove from cart: %w", err)
	}

	return response.Deleted(deleted), nil
}
