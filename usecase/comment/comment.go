package comment

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/KwonOil/easyplanner/domain"
	"github.com/KwonOil/easyplanner/repository"
)

type UseCase struct {
	comments repository.CommentRepository
	tasks    repository.TaskRepository
	projects repository.ProjectRepository
	logger   *zap.Logger
}

func New(
	comments repository.CommentRepository,
	tasks repository.TaskRepository,
	projects repository.ProjectRepository,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		comments: comments,
		tasks:    tasks,
		projects: projects,
		logger:   logger,
	}
}

// ListForTask returns the task's comments oldest first.
func (uc *UseCase) ListForTask(ctx context.Context, viewer *domain.Session, taskID int64) ([]domain.Comment, error) {
	return uc.comments.ListForTask(ctx, taskID)
}

// Add creates a comment authored by the viewer, stamped with the current UTC
// instant.
func (uc *UseCase) Add(ctx context.Context, viewer *domain.Session, taskID int64, content string) (*domain.Comment, error) {
	if content == "" {
		return nil, domain.ErrNoCommentContent
	}
	if _, err := uc.tasks.GetByID(ctx, taskID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		TaskID:    taskID,
		UserID:    viewer.UserID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		Username:  viewer.Username,
	}
	return uc.comments.Create(ctx, comment)
}

// Edit replaces a comment's content. Allowed for the author or a project
// team lead.
func (uc *UseCase) Edit(ctx context.Context, viewer *domain.Session, commentID int64, content string) (string, error) {
	if content == "" {
		return "", domain.ErrNoCommentContent
	}
	if err := uc.requireModifyRight(ctx, viewer, commentID, domain.ErrNoEditRight); err != nil {
		return "", err
	}
	if err := uc.comments.UpdateContent(ctx, commentID, content); err != nil {
		return "", err
	}
	return content, nil
}

// Delete removes a comment. Allowed for the author or a project team lead.
func (uc *UseCase) Delete(ctx context.Context, viewer *domain.Session, commentID int64) error {
	if err := uc.requireModifyRight(ctx, viewer, commentID, domain.ErrNoDeleteRight); err != nil {
		return err
	}
	return uc.comments.Delete(ctx, commentID)
}

func (uc *UseCase) requireModifyRight(ctx context.Context, viewer *domain.Session, commentID int64, denyErr error) error {
	comment, err := uc.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	task, err := uc.tasks.GetByID(ctx, comment.TaskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return domain.ErrCommentTaskGone
		}
		return err
	}

	role, err := uc.projects.MemberRole(ctx, task.ProjectID, viewer.UserID)
	if err != nil {
		return err
	}
	if !comment.CanModify(viewer.UserID, role) {
		return denyErr
	}
	return nil
}
