package project

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/KwonOil/easyplanner/domain"
	"github.com/KwonOil/easyplanner/repository"
	"github.com/KwonOil/easyplanner/usecase"
)

type UseCase struct {
	projects repository.ProjectRepository
	tasks    repository.TaskRepository
	users    repository.UserRepository
	notifier usecase.InviteNotifier
	logger   *zap.Logger
}

func New(
	projects repository.ProjectRepository,
	tasks repository.TaskRepository,
	users repository.UserRepository,
	notifier usecase.InviteNotifier,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		projects: projects,
		tasks:    tasks,
		users:    users,
		notifier: notifier,
		logger:   logger,
	}
}

// Create adds a project owned by the viewer. Only the administrator may
// create projects.
func (uc *UseCase) Create(ctx context.Context, viewer *domain.Session, name, startDate, endDate string) (*domain.Project, error) {
	if viewer.Role != domain.RoleAdmin {
		return nil, domain.ErrNotMember
	}
	if name == "" {
		return nil, domain.ErrFieldsRequired
	}
	project := &domain.Project{
		Name:      name,
		CreatedBy: viewer.UserID,
		StartDate: startDate,
		EndDate:   endDate,
	}
	return uc.projects.Create(ctx, project)
}

// ListForViewer returns the projects the viewer belongs to.
func (uc *UseCase) ListForViewer(ctx context.Context, viewer *domain.Session) ([]domain.Project, error) {
	return uc.projects.ListForUser(ctx, viewer.UserID)
}

// Get returns a project the viewer is a member of.
func (uc *UseCase) Get(ctx context.Context, viewer *domain.Session, projectID int64) (*domain.Project, error) {
	if err := uc.requireMember(ctx, projectID, viewer.UserID); err != nil {
		return nil, err
	}
	return uc.projects.GetByID(ctx, projectID)
}

// Edit updates project metadata. Only the creator may edit.
func (uc *UseCase) Edit(ctx context.Context, viewer *domain.Session, projectID int64, name, startDate, endDate string) (*domain.Project, error) {
	project, err := uc.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.CreatedBy != viewer.UserID {
		return nil, domain.ErrNoEditRight
	}
	if name == "" || startDate == "" || endDate == "" {
		return nil, domain.ErrFieldsRequired
	}
	if err := uc.projects.Update(ctx, projectID, name, startDate, endDate); err != nil {
		return nil, err
	}
	project.Name = name
	project.StartDate = startDate
	project.EndDate = endDate
	return project, nil
}

// Delete removes a project. Only the creator may delete.
func (uc *UseCase) Delete(ctx context.Context, viewer *domain.Session, projectID int64) error {
	project, err := uc.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.CreatedBy != viewer.UserID {
		return domain.ErrNoDeleteRight
	}
	return uc.projects.Delete(ctx, projectID)
}

// Invite enrolls an existing user as a project member and queues a
// notification. A failed enqueue is logged, never surfaced: the membership
// row is already committed.
func (uc *UseCase) Invite(ctx context.Context, viewer *domain.Session, projectID int64, username string) error {
	if username == "" {
		return domain.ErrFieldsRequired
	}
	if err := uc.requireMember(ctx, projectID, viewer.UserID); err != nil {
		return err
	}

	invitee, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	if err := uc.projects.AddMember(ctx, projectID, invitee.ID, domain.RoleMember); err != nil {
		return err
	}

	if uc.notifier != nil {
		project, err := uc.projects.GetByID(ctx, projectID)
		if err == nil {
			invite := domain.Invite{
				ProjectID:   projectID,
				ProjectName: project.Name,
				InviterName: viewer.Username,
				InviteeID:   invitee.ID,
				InviteeName: invitee.Username,
			}
			if err := uc.notifier.NotifyInvite(ctx, invite); err != nil {
				uc.logger.Warn("failed to queue invite notification", zap.Error(err))
			}
		}
	}
	return nil
}

// Stats returns the task completion percentage.
func (uc *UseCase) Stats(ctx context.Context, viewer *domain.Session, projectID int64) (int, error) {
	if err := uc.requireMember(ctx, projectID, viewer.UserID); err != nil {
		return 0, err
	}
	if _, err := uc.projects.GetByID(ctx, projectID); err != nil {
		return 0, err
	}
	tasks, err := uc.tasks.ListForProject(ctx, projectID)
	if err != nil {
		return 0, err
	}
	return domain.TaskProgress(tasks), nil
}

// TimeProgress returns how far the current instant sits inside the project
// window.
func (uc *UseCase) TimeProgress(ctx context.Context, viewer *domain.Session, projectID int64) (int, error) {
	project, err := uc.Get(ctx, viewer, projectID)
	if err != nil {
		return 0, err
	}
	return domain.TimeProgress(project.StartDate, project.EndDate, time.Now()), nil
}

// ChartData assembles the gantt series for the project.
func (uc *UseCase) ChartData(ctx context.Context, viewer *domain.Session, projectID int64) (*domain.ChartData, error) {
	if err := uc.requireMember(ctx, projectID, viewer.UserID); err != nil {
		return nil, err
	}
	project, err := uc.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	tasks, err := uc.tasks.ListForProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return domain.BuildGanttData(project, tasks), nil
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
