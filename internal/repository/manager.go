package repository

import (
	"context"
	"errors"

	"github.com/uptrace/bun"

	"github.com/taskflow/taskflow/internal/model"
)

// Manager exposes all repositories
type Manager interface {
	Users() Users
	Tasks() Tasks
	Validate() error
}

type mngr struct {
	db    *bun.DB
	users Users
	tasks Tasks
}

// NewManager builds the repository manager over a bun DB.
func NewManager(db *bun.DB) Manager {
	return &mngr{
		db:    db,
		users: NewUsersRepository(db),
		tasks: NewTasksRepository(db),
	}
}

func (m *mngr) Users() Users {
	return m.users
}

func (m *mngr) Tasks() Tasks {
	return m.tasks
}

func (m *mngr) Validate() error {
	if m.users == nil {
		return errors.New("repository users should be initialized")
	}
	if m.tasks == nil {
		return errors.New("repository tasks should be initialized")
	}
	return nil
}

// CreateTables creates the schema when it does not exist yet. Kept simple
// on purpose; schema changes beyond this go through real migrations.
func CreateTables(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().
		Model((*model.User)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return err
	}

	if _, err := db.NewCreateTable().
		Model((*model.Task)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return err
	}

	return nil
}
