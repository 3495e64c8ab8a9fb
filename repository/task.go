package repository

import (
	"context"

	"github.com/KwonOil/easyplanner/domain"
)

type TaskRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	ListForProject(ctx context.Context, projectID int64) ([]domain.Task, error)
	ListForAssignee(ctx context.Context, userID int64) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, id int64, name, startDate, endDate string) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Assign(ctx context.Context, id int64, assigneeID int64) error
	Delete(ctx context.Context, id int64) error
}
