package auth

import (
	"errors"
	"log"

	"github.com/mehraj28/Payroll-Mangement/app/database"
	"github.com/mehraj28/Payroll-Mangement/app/models"

	"github.com/gofiber/fiber/v2"
)

// Handler owns the auth route group's dependencies.
type Handler struct {
	Store  *database.Store
	Tokens *TokenService
}

func NewHandler(store *database.Store, tokens *TokenService) *Handler {
	return &Handler{Store: store, Tokens: tokens}
}

func (h *Handler) SignupAPI(c *fiber.Ctx) error {
	type SignupRequest struct {
		Email    string      `json:"email"`
		Password string      `json:"password"`
		FullName string      `json:"full_name"`
		Role     models.Role `json:"role"`
	}

	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash password"})
	}

	user, err := h.Store.CreateUser(req.Email, hash, req.FullName, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrEmailTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "email already registered"})
		case errors.Is(err, database.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			log.Printf("signup: create user: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// LoginAPI verifies credentials and issues a bearer token. Unknown email
// and wrong password produce the same response, so a caller cannot probe
// which addresses are registered.
func (h *Handler) LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	user, err := h.Store.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid email or password"})
		}
		log.Printf("login: lookup user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid email or password"})
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		log.Printf("login: issue token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (h *Handler) MeAPI(c *fiber.Ctx) error {
	user, err := h.Store.GetUserByID(UserID(c))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "could not validate credentials"})
		}
		log.Printf("me: lookup user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "database error"})
	}
	return c.JSON(user)
}
