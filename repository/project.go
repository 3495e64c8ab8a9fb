package repository

import (
	"context"

	"github.com/KwonOil/easyplanner/domain"
)

type ProjectRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Project, error)
	// Create inserts the project and enrolls the creator as team lead in one
	// transaction.
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id int64, name, startDate, endDate string) error
	Delete(ctx context.Context, id int64) error

	IsMember(ctx context.Context, projectID, userID int64) (bool, error)
	// MemberRole returns the per-project role, or "" when the user is not a
	// member.
	MemberRole(ctx context.Context, projectID, userID int64) (string, error)
	AddMember(ctx context.Context, projectID, userID int64, role string) error
}
