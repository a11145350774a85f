package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/taskflow/taskflow/internal/model"
)

// ErrTaskNotFound is returned when no task row matches the lookup
var ErrTaskNotFound = errors.New("task not found")

// MaxPageSize caps the page size for task listings
const MaxPageSize = 50

// DefaultPageSize is used when the caller does not ask for a page size
const DefaultPageSize = 10

// TaskFilter narrows and pages task listings. A nil UserID means all users
// (admin listings); Status and Search are optional.
type TaskFilter struct {
	UserID    *uuid.UUID
	Status    model.TaskStatus
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// Normalize clamps paging values and resolves the sort column.
func (f TaskFilter) Normalize() TaskFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	if _, ok := taskSortColumns[f.SortBy]; !ok {
		f.SortBy = "createdAt"
	}
	if f.SortOrder != "asc" {
		f.SortOrder = "desc"
	}
	return f
}

var taskSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
	"status":    "status",
}

// Tasks exposes task persistence.
type Tasks interface {
	Create(ctx context.Context, record *model.Task) (*model.Task, error)
	GetForUser(ctx context.Context, id, userID uuid.UUID) (*model.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]*model.Task, int, error)
	Update(ctx context.Context, record *model.Task) (*model.Task, error)
	DeleteForUser(ctx context.Context, id, userID uuid.UUID) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type tasks struct {
	repository.Repository[*model.Task]
	db *bun.DB
}

var _ Tasks = (*tasks)(nil)

// NewTasksRepository builds the tasks repository over bun.
func NewTasksRepository(db *bun.DB) Tasks {
	repo := repository.NewRepository[*model.Task](db, repository.ModelHandlers[*model.Task]{
		NewRecord: func() *model.Task { return &model.Task{} },
		GetID: func(t *model.Task) uuid.UUID {
			if t == nil {
				return uuid.Nil
			}
			return t.ID
		},
		SetID: func(t *model.Task, id uuid.UUID) {
			if t != nil {
				t.ID = id
			}
		},
	})

	return &tasks{
		Repository: repo,
		db:         db,
	}
}

func (r *tasks) GetForUser(ctx context.Context, id, userID uuid.UUID) (*model.Task, error) {
	record := &model.Task{}
	err := r.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id).
		Where("?TableAlias.user_id = ?", userID).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || repository.IsRecordNotFound(err) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	return record, nil
}

func (r *tasks) List(ctx context.Context, filter TaskFilter) ([]*model.Task, int, error) {
	filter = filter.Normalize()

	var records []*model.Task
	q := r.db.NewSelect().Model(&records)

	if filter.UserID != nil {
		q = q.Where("?TableAlias.user_id = ?", *filter.UserID)
	}
	if filter.Status != "" && filter.Status.IsValid() {
		q = q.Where("?TableAlias.status = ?", filter.Status)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		q = q.Where("lower(?TableAlias.title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	order := fmt.Sprintf("%s %s", taskSortColumns[filter.SortBy], strings.ToUpper(filter.SortOrder))
	q = q.Order(order).
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit)

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *tasks) Update(ctx context.Context, record *model.Task) (*model.Task, error) {
	res, err := r.db.NewUpdate().
		Model((*model.Task)(nil)).
		Set("title = ?", record.Title).
		Set("description = ?", record.Description).
		Set("status = ?", record.Status).
		Set("updated_at = current_timestamp").
		Where("?TableAlias.id = ?", record.ID).
		Where("?TableAlias.user_id = ?", record.UserID).
		Exec(ctx)

	if err != nil {
		return nil, err
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, ErrTaskNotFound
	}

	return r.GetForUser(ctx, record.ID, record.UserID)
}

func (r *tasks) DeleteForUser(ctx context.Context, id, userID uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*model.Task)(nil)).
		Where("?TableAlias.id = ?", id).
		Where("?TableAlias.user_id = ?", userID).
		Exec(ctx)

	if err != nil {
		return err
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (r *tasks) DeleteByID(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*model.Task)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)

	if err != nil {
		return err
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrTaskNotFound
	}

	return nil
}
