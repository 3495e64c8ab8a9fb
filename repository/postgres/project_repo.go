package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KwonOil/easyplanner/domain"
	"github.com/KwonOil/easyplanner/repository"
)

type projectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository returns a Postgres-backed ProjectRepository.
func NewProjectRepository(pool *pgxpool.Pool) repository.ProjectRepository {
	return &projectRepository{pool: pool}
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	const query = `
	SELECT id, project_name, created_by, start_date, end_date
	FROM projects
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var project domain.Project
	if err := row.Scan(
		&project.ID,
		&project.Name,
		&project.CreatedBy,
		&project.StartDate,
		&project.EndDate,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) ListForUser(ctx context.Context, userID int64) ([]domain.Project, error) {
	const query = `
	SELECT p.id, p.project_name, p.created_by, p.start_date, p.end_date
	FROM projects p
	JOIN project_members pm ON p.id = pm.project_id
	WHERE pm.user_id = $1
	ORDER BY p.id
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var project domain.Project
		if err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.CreatedBy,
			&project.StartDate,
			&project.EndDate,
		); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if project == nil {
		return nil, domain.ErrInvalidPayload
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const insertProject = `
	INSERT INTO projects (project_name, created_by, start_date, end_date)
	VALUES ($1, $2, $3, $4)
	RETURNING id
	`
	if err := tx.QueryRow(ctx, insertProject,
		project.Name,
		project.CreatedBy,
		project.StartDate,
		project.EndDate,
	).Scan(&project.ID); err != nil {
		return nil, err
	}

	const insertMember = `
	INSERT INTO project_members (project_id, user_id, role)
	VALUES ($1, $2, $3)
	`
	if _, err := tx.Exec(ctx, insertMember, project.ID, project.CreatedBy, domain.RoleTeamLead); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return project, nil
}

func (r *projectRepository) Update(ctx context.Context, id int64, name, startDate, endDate string) error {
	const query = `
	UPDATE projects
	SET project_name = $2, start_date = $3, end_date = $4
	WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, id, name, startDate, endDate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	// Memberships, tasks and comments go with it via ON DELETE CASCADE.
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepository) IsMember(ctx context.Context, projectID, userID int64) (bool, error) {
	const query = `
	SELECT 1 FROM project_members
	WHERE project_id = $1 AND user_id = $2
	`
	var one int
	if err := r.pool.QueryRow(ctx, query, projectID, userID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *projectRepository) MemberRole(ctx context.Context, projectID, userID int64) (string, error) {
	const query = `
	SELECT role FROM project_members
	WHERE project_id = $1 AND user_id = $2
	`
	var role string
	if err := r.pool.QueryRow(ctx, query, projectID, userID).Scan(&role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return role, nil
}

func (r *projectRepository) AddMember(ctx context.Context, projectID, userID int64, role string) error {
	const query = `
	INSERT INTO project_members (project_id, user_id, role)
	VALUES ($1, $2, $3)
	ON CONFLICT (project_id, user_id) DO NOTHING
	`
	tag, err := r.pool.Exec(ctx, query, projectID, userID, role)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyMember
	}
	return nil
}
