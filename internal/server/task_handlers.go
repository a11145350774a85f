package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/taskflow/taskflow/internal/auth"
	"github.com/taskflow/taskflow/internal/model"
	"github.com/taskflow/taskflow/internal/repository"
)

// identityUserID returns the acting user's id from the guard-injected
// identity. Guarded routes always have one.
func identityUserID(c *fiber.Ctx) (uuid.UUID, error) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
	}
	return uuid.Parse(identity.UserID)
}

func taskFilterFromQuery(c *fiber.Ctx) repository.TaskFilter {
	return repository.TaskFilter{
		Status:    model.TaskStatus(c.Query("status")),
		Search:    sanitizeInput(c.Query("search")),
		SortBy:    c.Query("sortBy", "createdAt"),
		SortOrder: c.Query("sortOrder", "desc"),
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", repository.DefaultPageSize),
	}
}

// ListTasks returns the acting user's tasks with pagination, status
// filtering, and title search.
func (s *Server) ListTasks(c *fiber.Ctx) error {
	userID, err := identityUserID(c)
	if err != nil {
		return err
	}

	filter := taskFilterFromQuery(c)
	filter.UserID = &userID
	filter = filter.Normalize()

	tasks, total, err := s.repos.Tasks().List(c.Context(), filter)
	if err != nil {
		return err
	}

	return respondData(c, fiber.StatusOK, fiber.Map{
		"tasks":      tasks,
		"pagination": NewPagination(filter.Page, filter.Limit, total),
	})
}

// CreateTask creates a task owned by the acting user.
func (s *Server) CreateTask(c *fiber.Ctx) error {
	userID, err := identityUserID(c)
	if err != nil {
		return err
	}

	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return respondValidationError(c, err)
	}

	status := model.TaskStatus(req.Status)
	if status == "" {
		status = model.StatusTodo
	}

	task := &model.Task{
		ID:          uuid.New(),
		Title:       sanitizeInput(req.Title),
		Description: sanitizeInput(req.Description),
		Status:      status,
		UserID:      userID,
	}

	task, err = s.repos.Tasks().Create(c.Context(), task)
	if err != nil {
		return err
	}

	encrypted, err := s.cipher.EncryptFields(map[string]string{
		"description": task.Description,
	}, "description")
	if err != nil {
		return err
	}

	return respondMessage(c, fiber.StatusCreated, "Task created successfully", fiber.Map{
		"task":          task,
		"encryptedTask": encrypted,
	})
}

// GetTask returns one of the acting user's tasks.
func (s *Server) GetTask(c *fiber.Ctx) error {
	userID, err := identityUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid task ID format")
	}

	task, err := s.repos.Tasks().GetForUser(c.Context(), id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return respondError(c, fiber.StatusNotFound, "Task not found")
		}
		return err
	}

	return respondData(c, fiber.StatusOK, fiber.Map{"task": task})
}

// UpdateTask applies a partial update to one of the acting user's tasks.
func (s *Server) UpdateTask(c *fiber.Ctx) error {
	userID, err := identityUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid task ID format")
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Empty() {
		return respondError(c, fiber.StatusBadRequest, "No valid fields provided for update")
	}

	if err := req.Validate(); err != nil {
		return respondValidationError(c, err)
	}

	task, err := s.repos.Tasks().GetForUser(c.Context(), id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return respondError(c, fiber.StatusNotFound, "Task not found")
		}
		return err
	}

	if req.Title != nil {
		task.Title = sanitizeInput(*req.Title)
	}
	if req.Description != nil {
		task.Description = sanitizeInput(*req.Description)
	}
	if req.Status != nil {
		task.Status = model.TaskStatus(*req.Status)
	}

	task, err = s.repos.Tasks().Update(c.Context(), task)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return respondError(c, fiber.StatusNotFound, "Task not found")
		}
		return err
	}

	return respondMessage(c, fiber.StatusOK, "Task updated successfully", fiber.Map{"task": task})
}

// DeleteTask removes one of the acting user's tasks.
func (s *Server) DeleteTask(c *fiber.Ctx) error {
	userID, err := identityUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid task ID format")
	}

	if err := s.repos.Tasks().DeleteForUser(c.Context(), id, userID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return respondError(c, fiber.StatusNotFound, "Task not found")
		}
		return err
	}

	return respondMessage(c, fiber.StatusOK, "Task deleted successfully", nil)
}
