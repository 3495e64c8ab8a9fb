package repository

import (
	"context"

	"github.com/KwonOil/easyplanner/domain"
)

type CommentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	// ListForTask returns comments oldest first with the author username
	// joined in.
	ListForTask(ctx context.Context, taskID int64) ([]domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	UpdateContent(ctx context.Context, id int64, content string) error
	Delete(ctx context.Context, id int64) error
}
