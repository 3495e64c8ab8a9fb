package task

import (
	"context"

	"go.uber.org/zap"

	"github.com/KwonOil/easyplanner/domain"
	"github.com/KwonOil/easyplanner/repository"
)

type UseCase struct {
	tasks    repository.TaskRepository
	projects repository.ProjectRepository
	users    repository.UserRepository
	logger   *zap.Logger
}

func New(
	tasks repository.TaskRepository,
	projects repository.ProjectRepository,
	users repository.UserRepository,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:    tasks,
		projects: projects,
		users:    users,
		logger:   logger,
	}
}

// ListForProject returns all tasks of a project the viewer belongs to.
func (uc *UseCase) ListForProject(ctx context.Context, viewer *domain.Session, projectID int64) ([]domain.Task, error) {
	if err := uc.requireMember(ctx, projectID, viewer.UserID); err != nil {
		return nil, err
	}
	return uc.tasks.ListForProject(ctx, projectID)
}

// Create adds a task. The server assigns the id and the default status; the
// echoed task is what clients must render.
func (uc *UseCase) Create(ctx context.Context, viewer *domain.Session, projectID int64, name, startDate, endDate string) (*domain.Task, error) {
	if err := uc.requireMember(ctx, projectID, viewer.UserID); err != nil {
		return nil, err
	}
	if name == "" || startDate == "" || endDate == "" {
		return nil, domain.ErrFieldsRequired
	}

	task := &domain.Task{
		ProjectID: projectID,
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    domain.StatusTodo,
	}
	return uc.tasks.Create(ctx, task)
}

// Edit updates the task's name and bounds.
func (uc *UseCase) Edit(ctx context.Context, viewer *domain.Session, taskID int64, name, startDate, endDate string) (*domain.Task, error) {
	task, err := uc.memberTask(ctx, viewer, taskID, domain.ErrNoEditRight)
	if err != nil {
		return nil, err
	}
	if name == "" || startDate == "" || endDate == "" {
		return nil, domain.ErrFieldsRequired
	}
	if err := uc.tasks.Update(ctx, taskID, name, startDate, endDate); err != nil {
		return nil, err
	}
	task.Name = name
	task.StartDate = startDate
	task.EndDate = endDate
	return task, nil
}

// UpdateStatus moves the task to a new status and returns it.
func (uc *UseCase) UpdateStatus(ctx context.Context, viewer *domain.Session, taskID int64, status string) (string, error) {
	if _, err := uc.memberTask(ctx, viewer, taskID, domain.ErrNotMember); err != nil {
		return "", err
	}
	if status == "" {
		return "", domain.ErrNoStatusValue
	}
	if err := uc.tasks.UpdateStatus(ctx, taskID, status); err != nil {
		return "", err
	}
	return status, nil
}

// Assign sets the task's assignee and returns the assignee's display name.
// The assignee must be a member of the task's project.
func (uc *UseCase) Assign(ctx context.Context, viewer *domain.Session, taskID, assigneeID int64) (string, error) {
	task, err := uc.memberTask(ctx, viewer, taskID, domain.ErrNotMember)
	if err != nil {
		return "", err
	}

	assignee, err := uc.users.GetByID(ctx, assigneeID)
	if err != nil {
		return "", err
	}
	ok, err := uc.projects.IsMember(ctx, task.ProjectID, assigneeID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrNotMember
	}

	if err := uc.tasks.Assign(ctx, taskID, assigneeID); err != nil {
		return "", err
	}
	return assignee.Username, nil
}

// Delete removes the task.
func (uc *UseCase) Delete(ctx context.Context, viewer *domain.Session, taskID int64) error {
	if _, err := uc.memberTask(ctx, viewer, taskID, domain.ErrNoDeleteRight); err != nil {
		return err
	}
	return uc.tasks.Delete(ctx, taskID)
}

// memberTask loads the task and verifies the viewer belongs to its project,
// returning denyErr otherwise.
func (uc *UseCase) memberTask(ctx context.Context, viewer *domain.Session, taskID int64, denyErr error) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	ok, err := uc.projects.IsMember(ctx, task.ProjectID, viewer.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, denyErr
	}
	return task, nil
}

func (uc *UseCase) requireMember(ctx context.Context, projectID, userID int64) error {
	ok, err := uc.projects.IsMember(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotMember
	}
	return nil
}
