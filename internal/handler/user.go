package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/deppfellow/lightbnb/internal/validation"
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// CreateUserRequest registers a user. Password is hashed before it is
// stored; bcrypt reads at most 72 bytes of it.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (r *CreateUserRequest) Validate() error {
	return validation.Struct(r)
}

type GetUserRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *GetUserRequest) Validate() error {
	return validation.Struct(r)
}

type FindUserRequest struct {
	Email string `query:"email" validate:"required,email"`
}

func (r *FindUserRequest) Validate() error {
	return validation.Struct(r)
}

type UserResponse struct {
	User *model.User `json:"user"`
}

func (h *UserHandler) CreateUser(c echo.Context, req *CreateUserRequest) (*UserResponse, error) {
	user, err := h.users.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return &UserResponse{User: user}, nil
}

func (h *UserHandler) GetUser(c echo.Context, req *GetUserRequest) (*UserResponse, error) {
	user, err := h.users.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &UserResponse{User: user}, nil
}

func (h *UserHandler) FindUser(c echo.Context, req *FindUserRequest) (*UserResponse, error) {
	user, err := h.users.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return nil, err
	}
	return &UserResponse{User: user}, nil
}

