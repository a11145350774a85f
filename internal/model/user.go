package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/taskflow/taskflow/internal/auth"
)

// User is the user model
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID           uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	Name         string     `bun:"name,notnull" json:"name"`
	Email        string     `bun:"email,notnull,unique" json:"email"`
	PasswordHash string     `bun:"password_hash,notnull" json:"-"`
	Role         auth.Role  `bun:"role,notnull,default:'user'" json:"role"`
	CreatedAt    *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt,omitempty"`
	UpdatedAt    *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updatedAt,omitempty"`
}

// Record adapts the row to the credential store contract.
func (u *User) Record() *auth.UserRecord {
	return &auth.UserRecord{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
	}
}
