package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"movie-browse-server/internal/auth"
	"movie-browse-server/internal/middleware"
	"movie-browse-server/internal/models"
	"movie-browse-server/internal/service"
)

// AuthHandler handles signup and login requests.
type AuthHandler struct {
	svc *service.AccountService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AccountService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Signup registers a new account.
// @Summary Sign up
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.Credentials true "Email and password"
// @Success 201 {object} models.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var req models.Credentials
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	slog.Info("signup attempt", "email", req.Email)
	resp, err := h.svc.Signup(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
		}
		slog.Error("signup failed", "email", req.Email, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login authenticates an existing account.
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.Credentials true "Email and password"
// @Success 200 {object} models.AuthResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req models.Credentials
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	slog.Info("login attempt", "email", req.Email)
	resp, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: err.Error()})
		}
		slog.Error("login failed", "email", req.Email, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
	}

	return c.JSON(resp)
}

// Me returns the account identified by the request's bearer token. This is
// the only route behind token verification.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} models.PublicUser
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c fiber.Ctx) error {
	claims, ok := c.Locals(middleware.ClaimsLocal).(*auth.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "missing token claims"})
	}
	return c.JSON(models.PublicUser{ID: claims.ID, Email: claims.Email})
}
