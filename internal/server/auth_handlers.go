package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/taskflow/taskflow/internal/auth"
	"github.com/taskflow/taskflow/internal/model"
	"github.com/taskflow/taskflow/internal/repository"
)

// Register creates a new account, issues a session token, and attaches the
// session cookie.
func (s *Server) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return respondValidationError(c, err)
	}

	name := sanitizeInput(req.Name)
	email := normalizeEmail(req.Email)

	if _, err := s.repos.Users().GetByEmail(c.Context(), email); err == nil {
		return respondError(c, fiber.StatusConflict, "User with this email already exists")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         auth.RoleUser,
	}

	user, err = s.repos.Users().Create(c.Context(), user)
	if err != nil {
		// The existence check can race a concurrent registration.
		if repository.IsUniqueViolation(err) {
			return respondError(c, fiber.StatusConflict, "User with this email already exists")
		}
		return err
	}

	token, err := s.authn.IssueToken(user.Record())
	if err != nil {
		return err
	}

	s.cookies.Attach(c, token)

	encryptedEmail, err := s.cipher.Encrypt(user.Email)
	if err != nil {
		return err
	}

	return respondMessage(c, fiber.StatusCreated, "Registration successful", fiber.Map{
		"user": fiber.Map{
			"id":             user.ID,
			"name":           user.Name,
			"email":          user.Email,
			"role":           user.Role,
			"encryptedEmail": encryptedEmail,
		},
	})
}

// Login authenticates credentials and attaches a fresh session cookie.
func (s *Server) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return respondValidationError(c, err)
	}

	token, record, err := s.authn.Login(c.Context(), normalizeEmail(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrMismatchedHashAndPassword) {
			return respondError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return err
	}

	s.cookies.Attach(c, token)

	encryptedEmail, err := s.cipher.Encrypt(record.Email)
	if err != nil {
		return err
	}

	return respondMessage(c, fiber.StatusOK, "Login successful", fiber.Map{
		"user": fiber.Map{
			"id":             record.ID,
			"name":           record.Name,
			"email":          record.Email,
			"role":           record.Role,
			"encryptedEmail": encryptedEmail,
		},
	})
}

// Logout clears the session cookie. There is no server-side session to
// destroy; the token stays valid until it expires.
func (s *Server) Logout(c *fiber.Ctx) error {
	s.cookies.Clear(c)
	return respondMessage(c, fiber.StatusOK, "Logged out successfully", nil)
}

// Me returns the account behind the verified identity.
func (s *Server) Me(c *fiber.Ctx) error {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	id, err := uuid.Parse(identity.UserID)
	if err != nil {
		return respondError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	user, err := s.repos.Users().GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return respondError(c, fiber.StatusNotFound, "User not found")
		}
		return err
	}

	return respondData(c, fiber.StatusOK, fiber.Map{
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
