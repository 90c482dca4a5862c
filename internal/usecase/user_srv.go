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

type UserService interface {
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.InsertResponse, error)
	GetAllUsers(ctx context.Context) ([]*entity.User, error)
	GetAdminStatus(ctx context.Context, requesterEmail, email string) (*response.AdminStatusResponse, error)
	MakeAdmin(ctx context.Context, userID string) (*response.UpdateResponse, error)
	DeleteUser(ctx context.Context, userID string) (*response.DeleteResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

// CreateUser inserts the user unless one with the same email exists, in which
// case nothing is written and InsertedID is nil.
func (us *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.InsertResponse, error) {
	existing, err := us.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		us.log.Debug("User already exists", zap.String("email", req.Email))
		return &response.InsertResponse{Message: "User already exists!", InsertedID: nil}, nil
	}

	user := &entity.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
		Extra:    req.Extra,
	}

	id, err := us.userRepo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	us.log.Info("User created", zap.String("user_id", id.Hex()), zap.String("email", req.Email))
	return response.Inserted(id.Hex()), nil
}

func (us *userService) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	us.log.Debug("Users retrieved", zap.Int("count", len(users)))
	return users, nil
}

// GetAdminStatus reports whether email belongs to an admin. Callers may only
// ask about themselves.
func (us *userService) GetAdminStatus(ctx context.Context, requesterEmail, email string) (*response.AdminStatusResponse, error) {
	if email != requesterEmail {
		us.log.Warn("Admin status requested for another user",
			zap.String("requester", requesterEmail),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("%w: admin status of %s", ErrForbidden, email)
	}

	user, err := us.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get admin status: %w", err)
	}

	return &response.AdminStatusResponse{Admin: user.IsAdmin()}, nil
}

func (us *userService) MakeAdmin(ctx context.Context, userID string) (*response.UpdateResponse, error) {
	id, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	result, err := us.userRepo.SetRole(ctx, id, entity.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("make admin: %w", err)
	}

	us.log.Info("User promoted to admin",
		zap.String("user_id", userID),
		zap.Int64("matched", result.MatchedCount),
	)
	return &response.UpdateResponse{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
	}, nil
}

func (us *userService) DeleteUser(ctx context.Context, userID string) (*response.DeleteResponse, error) {
	id, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	deleted, err := us.userRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}

	return response.Deleted(deleted), nil
}
