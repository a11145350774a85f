package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/taskflow/internal/auth"
	"github.com/taskflow/taskflow/internal/model"
	"github.com/taskflow/taskflow/internal/repository"
)

func TestTaskFilter_Normalize(t *testing.T) {
	t.Run("clamps paging values", func(t *testing.T) {
		f := repository.TaskFilter{Page: -3, Limit: 0}.Normalize()
		assert.Equal(t, 1, f.Page)
		assert.Equal(t, repository.DefaultPageSize, f.Limit)

		f = repository.TaskFilter{Page: 2, Limit: 500}.Normalize()
		assert.Equal(t, repository.MaxPageSize, f.Limit)
	})

	t.Run("falls back on unknown sort parameters", func(t *testing.T) {
		f := repository.TaskFilter{SortBy: "password_hash", SortOrder: "sideways"}.Normalize()
		assert.Equal(t, "createdAt", f.SortBy)
		assert.Equal(t, "desc", f.SortOrder)

		f = repository.TaskFilter{SortBy: "title", SortOrder: "asc"}.Normalize()
		assert.Equal(t, "title", f.SortBy)
		assert.Equal(t, "asc", f.SortOrder)
	})
}

func TestTasks_OwnerScoping(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUsersRepository(db)
	repo := repository.NewTasksRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, "owner@example.com", auth.RoleUser)
	other := seedUser(t, users, "other@example.com", auth.RoleUser)

	task := seedTask(t, repo, owner.ID, "Write release notes", model.StatusTodo, time.Now())

	t.Run("owner can fetch", func(t *testing.T) {
		got, err := repo.GetForUser(ctx, task.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, task.Title, got.Title)
	})

	t.Run("another user cannot see it", func(t *testing.T) {
		_, err := repo.GetForUser(ctx, task.ID, other.ID)
		assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	})

	t.Run("another user cannot update it", func(t *testing.T) {
		stolen := *task
		stolen.UserID = other.ID
		stolen.Title = "hijacked"

		_, err := repo.Update(ctx, &stolen)
		assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	})

	t.Run("another user cannot delete it", func(t *testing.T) {
		err := repo.DeleteForUser(ctx, task.ID, other.ID)
		assert.ErrorIs(t, err, repository.ErrTaskNotFound)

		_, err = repo.GetForUser(ctx, task.ID, owner.ID)
		assert.NoError(t, err)
	})
}

func TestTasks_List(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUsersRepository(db)
	repo := repository.NewTasksRepository(db)
	ctx := context.Background()

	alice := seedUser(t, users, "alice@example.com", auth.RoleUser)
	bob := seedUser(t, users, "bob@example.com", auth.RoleUser)

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	seedTask(t, repo, alice.ID, "Plan sprint", model.StatusTodo, base)
	seedTask(t, repo, alice.ID, "Review PRs", model.StatusInProgress, base.Add(time.Hour))
	seedTask(t, repo, alice.ID, "Ship build", model.StatusDone, base.Add(2*time.Hour))
	seedTask(t, repo, bob.ID, "Plan vacation", model.StatusTodo, base)

	t.Run("scopes by owner", func(t *testing.T) {
		records, total, err := repo.List(ctx, repository.TaskFilter{UserID: &alice.ID})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, records, 3)
	})

	t.Run("nil owner lists everything", func(t *testing.T) {
		_, total, err := repo.List(ctx, repository.TaskFilter{})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
	})

	t.Run("filters by status", func(t *testing.T) {
		records, total, err := repo.List(ctx, repository.TaskFilter{
			UserID: &alice.ID,
			Status: model.StatusInProgress,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, records, 1)
		assert.Equal(t, "Review PRs", records[0].Title)
	})

	t.Run("searches titles case-insensitively", func(t *testing.T) {
		records, total, err := repo.List(ctx, repository.TaskFilter{Search: "PLAN"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, records, 2)
	})

	t.Run("pages with a stable total", func(t *testing.T) {
		records, total, err := repo.List(ctx, repository.TaskFilter{
			UserID: &alice.ID,
			Page:   2,
			Limit:  2,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, records, 1)
	})

	t.Run("sorts by the requested column", func(t *testing.T) {
		records, _, err := repo.List(ctx, repository.TaskFilter{
			UserID:    &alice.ID,
			SortBy:    "title",
			SortOrder: "asc",
		})
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "Plan sprint", records[0].Title)
		assert.Equal(t, "Ship build", records[2].Title)
	})

	t.Run("defaults to newest first", func(t *testing.T) {
		records, _, err := repo.List(ctx, repository.TaskFilter{UserID: &alice.ID})
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "Ship build", records[0].Title)
	})
}

func TestTasks_Update(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUsersRepository(db)
	repo := repository.NewTasksRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, "owner@example.com", auth.RoleUser)
	task := seedTask(t, repo, owner.ID, "Draft proposal", model.StatusTodo, time.Now())

	task.Title = "Draft and share proposal"
	task.Description = "Circulate before Friday"
	task.Status = model.StatusInProgress

	updated, err := repo.Update(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, "Draft and share proposal", updated.Title)
	assert.Equal(t, "Circulate before Friday", updated.Description)
	assert.Equal(t, model.StatusInProgress, updated.Status)
}

func TestTasks_Delete(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUsersRepository(db)
	repo := repository.NewTasksRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, "owner@example.com", auth.RoleUser)

	t.Run("owner scoped delete", func(t *testing.T) {
		task := seedTask(t, repo, owner.ID, "Temporary", model.StatusTodo, time.Now())

		require.NoError(t, repo.DeleteForUser(ctx, task.ID, owner.ID))

		_, err := repo.GetForUser(ctx, task.ID, owner.ID)
		assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	})

	t.Run("unscoped delete ignores ownership", func(t *testing.T) {
		task := seedTask(t, repo, owner.ID, "Removed by admin", model.StatusTodo, time.Now())

		require.NoError(t, repo.DeleteByID(ctx, task.ID))
		assert.ErrorIs(t, repo.DeleteByID(ctx, uuid.New()), repository.ErrTaskNotFound)
	})
}
