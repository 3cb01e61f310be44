package rest

import (
	"context"
	"net/http"
	"strings"
	"time"
	"urbankicks/domain"
	"urbankicks/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type UserService interface {
	Signup(ctx context.Context, user *domain.User) (domain.User, error)
	Login(ctx context.Context, email, password string) (string, domain.User, error)
	Logout(ctx context.Context, userID uint, token string) error
	GetAllCustomers(ctx context.Context) ([]domain.User, error)
	ToggleBlock(ctx context.Context, id uint) (bool, error)
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type AuthHandler struct {
	userService UserService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewAuthHandler(userService UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate signup request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	_, err := h.userService.Signup(ctx, &domain.User{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		logger.Error("Failed to sign up user", err)
		if strings.Contains(err.Error(), "already in use") {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "Email already in use"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Server error"})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Signup successful",
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate login request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	token, user, err := h.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		logger.Error("Failed to log in user", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "User not found"})
		}
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "Invalid credentials"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user": map[string]interface{}{
			"email":    user.Email,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// Logout revokes the caller's session. Relies on the auth middleware
// having stashed user_id and token on the request context.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "not logged in"})
	}
	token, _ := c.Get("token").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.userService.Logout(ctx, userID, token); err != nil {
		logger.Error("Failed to log out user", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Server error"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Logged out",
	})
}
