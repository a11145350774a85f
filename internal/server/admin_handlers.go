package server

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/taskflow/taskflow/internal/auth"
	"github.com/taskflow/taskflow/internal/repository"
)

// AdminListUsers returns every account. Password hashes never leave the
// model's JSON representation.
func (s *Server) AdminListUsers(c *fiber.Ctx) error {
	users, err := s.repos.Users().List(c.Context())
	if err != nil {
		return err
	}

	return respondData(c, fiber.StatusOK, fiber.Map{
		"users": users,
		"total": len(users),
	})
}

// AdminListTasks returns tasks across all users with pagination.
func (s *Server) AdminListTasks(c *fiber.Ctx) error {
	filter := taskFilterFromQuery(c).Normalize()

	tasks, total, err := s.repos.Tasks().List(c.Context(), filter)
	if err != nil {
		return err
	}

	return respondData(c, fiber.StatusOK, fiber.Map{
		"tasks":      tasks,
		"pagination": NewPagination(filter.Page, filter.Limit, total),
	})
}

// AdminDeleteTask removes any user's task.
func (s *Server) AdminDeleteTask(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid task ID format")
	}

	if err := s.repos.Tasks().DeleteByID(c.Context(), id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return respondError(c, fiber.StatusNotFound, "Task not found")
		}
		return err
	}

	return respondMessage(c, fiber.StatusOK, "Task deleted successfully by admin", nil)
}

// AdminUpdateUserRole changes a user's role. A principal may not modify
// its own role, independent of the access guard's checks.
func (s *Server) AdminUpdateUserRole(c *fiber.Ctx) error {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	var req UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	role, ok := auth.ParseRole(req.Role)
	if !ok {
		return respondError(c, fiber.StatusBadRequest, "Invalid role. Must be one of: user, admin")
	}

	if identity.UserID == id.String() {
		return respondError(c, fiber.StatusBadRequest, "Cannot change your own role")
	}

	user, err := s.repos.Users().UpdateRole(c.Context(), id, role)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return respondError(c, fiber.StatusNotFound, "User not found")
		}
		return err
	}

	return respondMessage(c, fiber.StatusOK, fmt.Sprintf("User role updated to %s", role), fiber.Map{
		"user": user,
	})
}
