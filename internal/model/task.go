package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// TaskStatus is the task workflow state
type TaskStatus string

const (
	// StatusTodo is the initial state
	StatusTodo TaskStatus = "todo"
	// StatusInProgress marks started work
	StatusInProgress TaskStatus = "in-progress"
	// StatusDone marks finished work
	StatusDone TaskStatus = "done"
)

// IsValid checks if the status is one of the predefined states
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// Task is the task model
type Task struct {
	bun.BaseModel `bun:"table:tasks,alias:task"`

	ID          uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	Title       string     `bun:"title,notnull" json:"title"`
	Description string     `bun:"description" json:"description"`
	Status      TaskStatus `bun:"status,notnull,default:'todo'" json:"status"`
	UserID      uuid.UUID  `bun:"user_id,notnull,type:uuid" json:"userId"`
	CreatedAt   *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updatedAt,omitempty"`
}
