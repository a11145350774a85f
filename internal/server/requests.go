package server

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/taskflow/taskflow/internal/model"
)

// sanitizeInput strips angle brackets and trims whitespace. Field content
// rules beyond this belong to the clients rendering the values.
func sanitizeInput(input string) string {
	out := strings.NewReplacer("<", "", ">", "").Replace(input)
	return strings.TrimSpace(out)
}

func normalizeEmail(email string) string {
	return strings.ToLower(sanitizeInput(email))
}

// RegisterRequest payload
type RegisterRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Validate the payload
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 128)),
	)
}

// LoginRequest payload
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Validate the payload
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// CreateTaskRequest payload
type CreateTaskRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Status      string `json:"status" form:"status"`
}

// Validate the payload
func (r CreateTaskRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Status, validation.In(
			string(model.StatusTodo),
			string(model.StatusInProgress),
			string(model.StatusDone),
		)),
	)
}

// UpdateTaskRequest payload. Pointer fields distinguish "not provided"
// from explicit empty values.
type UpdateTaskRequest struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
	Status      *string `json:"status" form:"status"`
}

// Empty reports whether no updatable field was provided.
func (r UpdateTaskRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Status == nil
}

// Validate the payload
func (r UpdateTaskRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 200)),
		validation.Field(&r.Status, validation.In(
			string(model.StatusTodo),
			string(model.StatusInProgress),
			string(model.StatusDone),
		)),
	)
}

// UpdateRoleRequest payload
type UpdateRoleRequest struct {
	Role string `json:"role" form:"role"`
}

// Validate the payload
func (r UpdateRoleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Role, validation.Required, validation.In("user", "admin")),
	)
}
