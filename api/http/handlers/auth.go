package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"employer-hub/api/http/presenter"
	"employer-hub/pkg/auth"
	"employer-hub/pkg/security/jwt"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	identity, err := h.useCase.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		var verr auth.ErrValidation
		switch {
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		case errors.Is(err, auth.ErrUserAlreadyExists):
			return presenter.Error(c, http.StatusConflict, "User is already registered.")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "Server error")
		}
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"success": true,
		"message": "User registered successfully",
		"user":    identity,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		var verr auth.ErrValidation
		switch {
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		case errors.Is(err, auth.ErrEmailNotFound):
			return presenter.Error(c, http.StatusUnauthorized, "Email does not exist.")
		case errors.Is(err, auth.ErrPasswordMismatch):
			return presenter.Error(c, http.StatusUnauthorized, "Password does not match.")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "Server error")
		}
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"message": "User login successfully",
		"token":   result.Token,
		"user":    result.User,
	})
}

// VerifyToken echoes the session claims attached by the auth middleware;
// a ping-style "am I logged in" check.
// @Summary Verify session token
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /verifyToken [get]
func (h *AuthHandler) VerifyToken(c *fiber.Ctx) error {
	claims := jwt.ClaimsFrom(c)
	if claims == nil {
		return presenter.Error(c, http.StatusUnauthorized, "missing session")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"message": "Token is valid",
		"user": fiber.Map{
			"id":    claims.Subject,
			"name":  claims.Name,
			"email": claims.Email,
		},
	})
}
