package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/taskflow/taskflow/internal/auth"
	"github.com/taskflow/taskflow/internal/model"
)

// ErrUserNotFound is returned when no user row matches the lookup
var ErrUserNotFound = errors.New("user not found")

// Users exposes user persistence plus the credential store contract the
// auth core consumes.
type Users interface {
	auth.CredentialStore

	Create(ctx context.Context, record *model.User) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role auth.Role) (*model.User, error)
}

type users struct {
	repository.Repository[*model.User]
	db *bun.DB
}

var (
	_ Users                = (*users)(nil)
	_ auth.CredentialStore = (*users)(nil)
)

// NewUsersRepository builds the users repository over bun.
func NewUsersRepository(db *bun.DB) Users {
	repo := repository.NewRepository[*model.User](db, repository.ModelHandlers[*model.User]{
		NewRecord: func() *model.User { return &model.User{} },
		GetID: func(u *model.User) uuid.UUID {
			if u == nil {
				return uuid.Nil
			}
			return u.ID
		},
		SetID: func(u *model.User, id uuid.UUID) {
			if u != nil {
				u.ID = id
			}
		},
		GetIdentifier: func() string {
			return "email"
		},
	})

	return &users{
		Repository: repo,
		db:         db,
	}
}

func (r *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	record := &model.User{}
	err := r.db.NewSelect().
		Model(record).
		Where("?TableAlias.email = ?", strings.ToLower(strings.TrimSpace(email))).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || repository.IsRecordNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return record, nil
}

func (r *users) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	record := &model.User{}
	err := r.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || repository.IsRecordNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return record, nil
}

func (r *users) List(ctx context.Context) ([]*model.User, error) {
	var records []*model.User
	err := r.db.NewSelect().
		Model(&records).
		Order("created_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *users) UpdateRole(ctx context.Context, id uuid.UUID, role auth.Role) (*model.User, error) {
	record := &model.User{}
	res, err := r.db.NewUpdate().
		Model(record).
		Set("role = ?", role).
		Set("updated_at = current_timestamp").
		Where("?TableAlias.id = ?", id).
		Exec(ctx)

	if err != nil {
		return nil, err
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, ErrUserNotFound
	}

	return r.GetByID(ctx, id)
}

// FindByEmail satisfies auth.CredentialStore
func (r *users) FindByEmail(ctx context.Context, email string) (*auth.UserRecord, error) {
	user, err := r.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, auth.ErrIdentityNotFound
		}
		return nil, err
	}
	return user.Record(), nil
}

// FindByID satisfies auth.CredentialStore
func (r *users) FindByID(ctx context.Context, id uuid.UUID) (*auth.UserRecord, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, auth.ErrIdentityNotFound
		}
		return nil, err
	}
	return user.Record(), nil
}

// IsUniqueViolation reports whether err comes from a unique constraint,
// e.g. a duplicate registration email racing the existence check.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "duplicate key")
}
