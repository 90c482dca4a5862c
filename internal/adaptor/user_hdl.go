package adaptor

import (
	"net/http"

	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/usecase"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if !decodeAndValidate(w, r, h.log, &req) {
		return
	}

	result, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create user")
		return
	}

	utils.ResponseSuccess(w, result)
}

// GetAllUsers handles GET /users (admin only)
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get all users")
		return
	}

	utils.ResponseSuccess(w, users)
}

// GetAdminStatus handles GET /users/admin/{email}
func (h *UserHandler) GetAdminStatus(w http.ResponseWriter, r *http.Request) {
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

	status, err := h.service.GetAdminStatus(r.Context(), requester, email)
	if err != nil {
		handleServiceError(w, h.log, err, "get admin status")
		return
	}

	utils.ResponseSuccess(w, status)
}

// MakeAdmin handles PATCH /users/admin/{id} (admin only)
func (h *UserHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.MakeAdmin(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "make admin")
		return
	}

	utils.ResponseSuccess(w, result)
}

// DeleteUser handles DELETE /users/{id} (admin only)
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, result)
}
