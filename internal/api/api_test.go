package api

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlite"
	"todo-list/internal/validation"
)

func setupTestAPI(t *testing.T) (API, *sqlite.SQLiteRepository) {
	t.Helper()
	repo, err := sqlite.New(filepath.Join(t.TempDir(), "todos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return New(repo), repo
}

func TestAPI_CRUD_Task(t *testing.T) {
	api, _ := setupTestAPI(t)
	ctx := context.Background()

	// Create
	task, err := api.CreateTask(ctx, "Test Task")
	require.NoError(t, err)
	assert.NotZero(t, task.ID)
	assert.Equal(t, "Test Task", task.Text)

	// List
	tasks, err := api.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task, tasks[0])

	// Update
	require.NoError(t, api.UpdateTask(ctx, task.ID, "Updated Task"))
	tasks, err = api.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Updated Task", tasks[0].Text)

	// Delete
	removed, err := api.DeleteTasks(ctx, []int64{task.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	tasks, err = api.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestCreateTask(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedText string
		expectError  bool
	}{
		{name: "should store plain text", input: "Buy milk", expectedText: "Buy milk"},
		{name: "should trim surrounding whitespace", input: "  Buy milk \n", expectedText: "Buy milk"},
		{name: "should keep markup verbatim", input: "<b>x</b>", expectedText: "<b>x</b>"},
		{name: "should reject empty text", input: "", expectError: true},
		{name: "should reject whitespace-only text", input: "   ", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, _ := setupTestAPI(t)
			ctx := context.Background()

			task, err := api.CreateTask(ctx, tt.input)
			tasks, listErr := api.ListTasks(ctx)
			require.NoError(t, listErr)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, task)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				_, isValidation := validation.AsValidationError(err)
				assert.True(t, isValidation)
				assert.Empty(t, tasks, "nothing may be stored for invalid text")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedText, task.Text)
			require.Len(t, tasks, 1)
			assert.Equal(t, tt.expectedText, tasks[0].Text)
		})
	}
}

func TestCreateTask_AssignsFreshIDs(t *testing.T) {
	api, _ := setupTestAPI(t)
	ctx := context.Background()

	seen := map[int64]bool{}
	for _, text := range []string{"a", "b", "c"} {
		task, err := api.CreateTask(ctx, text)
		require.NoError(t, err)
		assert.False(t, seen[task.ID], "id %d reused", task.ID)
		seen[task.ID] = true
	}

	tasks, err := api.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{tasks[0].Text, tasks[1].Text, tasks[2].Text})
}

func TestUpdateTask(t *testing.T) {
	t.Run("should succeed without change when id does not exist", func(t *testing.T) {
		api, _ := setupTestAPI(t)
		ctx := context.Background()
		_, err := api.CreateTask(ctx, "keep")
		require.NoError(t, err)

		require.NoError(t, api.UpdateTask(ctx, 999, "ghost"))

		tasks, err := api.ListTasks(ctx)
		require.NoError(t, err)
		assert.Equal(t, []*domain.Task{{ID: tasks[0].ID, Text: "keep"}}, tasks)
	})

	t.Run("should reject blank text and leave the row unchanged", func(t *testing.T) {
		api, _ := setupTestAPI(t)
		ctx := context.Background()
		task, err := api.CreateTask(ctx, "original")
		require.NoError(t, err)

		err = api.UpdateTask(ctx, task.ID, "  ")
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

		tasks, err := api.ListTasks(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "original", tasks[0].Text)
	})

	t.Run("should trim replacement text", func(t *testing.T) {
		api, _ := setupTestAPI(t)
		ctx := context.Background()
		task, err := api.CreateTask(ctx, "original")
		require.NoError(t, err)

		require.NoError(t, api.UpdateTask(ctx, task.ID, "  changed  "))

		tasks, err := api.ListTasks(ctx)
		require.NoError(t, err)
		assert.Equal(t, "changed", tasks[0].Text)
	})
}

func TestDeleteTasks(t *testing.T) {
	t.Run("should remove only existing ids", func(t *testing.T) {
		api, repo := setupTestAPI(t)
		ctx := context.Background()

		for _, text := range []string{"one", "two", "three"} {
			_, err := api.CreateTask(ctx, text)
			require.NoError(t, err)
		}
		_, err := repo.DeleteTasks(ctx, []int64{2})
		require.NoError(t, err)

		removed, err := api.DeleteTasks(ctx, []int64{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, int64(2), removed)

		tasks, err := api.ListTasks(ctx)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("should accept an empty id list", func(t *testing.T) {
		api, _ := setupTestAPI(t)

		removed, err := api.DeleteTasks(context.Background(), nil)
		require.NoError(t, err)
		assert.Zero(t, removed)
	})
}

func TestAPI_StorageFailure(t *testing.T) {
	api, repo := setupTestAPI(t)
	require.NoError(t, repo.Close())

	_, err := api.ListTasks(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
}

func TestValidationFailure(t *testing.T) {
	ve := validation.NewValidationError()
	ve.AddRequiredError(validation.FieldTask)

	tests := []struct {
		name           string
		err            error
		wantValidation bool
	}{
		{name: "direct validation error", err: ve, wantValidation: true},
		{name: "wrapped validation error", err: fmt.Errorf("check text: %w", ve), wantValidation: true},
		{name: "storage error passes through", err: errors.NewDatabaseError("insert task", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validationFailure(tt.err)
			assert.Equal(t, tt.wantValidation, errors.IsErrorType(got, errors.ErrorTypeValidation))
			if tt.wantValidation {
				assert.Equal(t, "task is required", got.(*errors.AppError).Message)
			} else {
				assert.Same(t, tt.err, got)
			}
		})
	}
}
