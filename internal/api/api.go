package api

import (
	"context"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlite"
	"todo-list/internal/validation"
)

// API defines the interface for all task operations.
type API interface {
	CreateTask(ctx context.Context, text string) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, text string) error
	DeleteTasks(ctx context.Context, ids []int64) (int64, error)
}

type apiImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// New creates a new API instance.
func New(repo sqlite.Repository) API {
	return &apiImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

// CreateTask stores the trimmed text as a new task.
// Blank text is rejected with a validation error before anything is written.
func (a *apiImpl) CreateTask(ctx context.Context, text string) (*domain.Task, error) {
	cleaned, err := a.validText(text)
	if err != nil {
		return nil, err
	}

	dbTask := a.mapper.Task.ToDatabase(domain.NewTask(cleaned))
	if err := a.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}
	domainTask := a.mapper.Task.FromDatabase(dbTask)
	return &domainTask, nil
}

func (a *apiImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := a.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return a.mapper.Task.FromDatabaseList(dbTasks), nil
}

// UpdateTask replaces the text of task id. Updating an id that does not exist succeeds
// without changing anything.
func (a *apiImpl) UpdateTask(ctx context.Context, id int64, text string) error {
	cleaned, err := a.validText(text)
	if err != nil {
		return err
	}

	dbTask := a.mapper.Task.ToDatabase(domain.Task{ID: id, Text: cleaned})
	return a.repo.UpdateTask(ctx, &dbTask)
}

// DeleteTasks removes every listed task in one transaction and returns the number of
// rows that actually went away. Unknown ids are skipped.
func (a *apiImpl) DeleteTasks(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return a.repo.DeleteTasks(ctx, ids)
}

func (a *apiImpl) validText(text string) (string, error) {
	cleaned, err := a.taskValidator.GetValidTaskText(text)
	if err != nil {
		return "", validationFailure(err)
	}
	return cleaned, nil
}

// validationFailure lifts a ValidationError anywhere in err's chain into a validation AppError
func validationFailure(err error) error {
	if ve, ok := validation.AsValidationError(err); ok {
		return errors.NewValidationError(ve.GetUserFriendlyMessage(), err)
	}
	return err
}
