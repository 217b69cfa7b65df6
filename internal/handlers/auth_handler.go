package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pasar/internal/services"
)

// AuthHandler handles HTTP requests for registration, verification, and
// login.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the public authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/verify", h.HandleVerify)
	authRoutes.Post("/login", h.HandleLogin)
}

// RegisterRequest is the request body for registration.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// VerifyRequest is the request body for email verification.
type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"token" validate:"required"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries a signed access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// HandleRegister registers a new customer account.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	if err := h.authService.Register(req.Email, req.Password); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"detail": "verification email sent, please verify your account before logging in",
	})
}

// HandleVerify consumes a verification token and issues an access token.
func (h *AuthHandler) HandleVerify(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	token, err := h.authService.VerifyEmail(req.Email, req.Token)
	if err != nil {
		return err
	}
	return c.JSON(TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// HandleLogin checks credentials and issues an access token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(TokenResponse{AccessToken: token, TokenType: "bearer"})
}
