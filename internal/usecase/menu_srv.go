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

const objectIDLength = 24

type MenuService interface {
	GetMenu(ctx context.Context) ([]*entity.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) ([]*entity.MenuItem, error)
	CreateMenuItem(ctx context.Context, req *request.MenuItemRequest) (*response.InsertResponse, error)
	UpdateMenuItem(ctx context.Context, id string, req *request.MenuUpdateRequest) (*response.UpdateResponse, error)
	DeleteMenuItem(ctx context.Context, id string) (*response.DeleteResponse, error)
}

type menuService struct {
	menuRepo repository.MenuRepository
	log      *zap.Logger
}

func NewMenuService(menuRepo repository.MenuRepository, log *zap.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		log:      log.With(zap.String("service", "menu")),
	}
}

func (s *menuService) GetMenu(ctx context.Context) ([]*entity.MenuItem, error) {
	items, err := s.menuRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get menu: %w", err)
	}
	return items, nil
}

// GetMenuItem returns the matching items as a list (empty or one element),
// the shape the web client reads. Ids that are not 24 characters are rejected
// before the store is touched.
func (s *menuService) GetMenuItem(ctx context.Context, id string) ([]*entity.MenuItem, error) {
	if len(id) != objectIDLength {
		return nil, fmt.Errorf("%w: menu id must be %d characters", ErrInvalidID, objectIDLength)
	}

	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	item, err := s.menuRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", err)
	}

	items := make([]*entity.MenuItem, 0, 1)
	if item != nil {
		items = append(items, item)
	}
	return items, nil
}

func (s *menuService) CreateMenuItem(ctx context.Context, req *request.MenuItemRequest) (*response.InsertResponse, error) {
	item := &entity.MenuItem{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    req.Price,
	}

	id, err := s.menuRepo.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}

	s.log.Info("Menu item created",
		zap.String("menu_id", id.Hex()),
		zap.String("name", item.Name),
		zap.String("category", item.Category),
	)
	return response.Inserted(id.Hex()), nil
}

// UpdateMenuItem sets only the fields present in req.
func (s *menuService) UpdateMenuItem(ctx context.Context, id string, req *request.MenuUpdateRequest) (*response.UpdateResponse, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := repository.MenuUpdate{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Recipe:   req.Recipe,
	}
	if update.IsEmpty() {
		return nil, fmt.Errorf("%w: no menu fields to update", ErrValidation)
	}

	result, err := s.menuRepo.Update(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}

	s.log.Info("Menu item updated", zap.String("menu_id", id), zap.Int64("modified", result.ModifiedCount))
	return &response.UpdateResponse{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
	}, nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id string) (*response.DeleteResponse, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	deleted, err := s.menuRepo.Delete(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("delete menu item: %w", err)
	}

	return response.Deleted(deleted), nil
}
