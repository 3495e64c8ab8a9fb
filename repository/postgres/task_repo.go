package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KwonOil/easyplanner/domain"
	"github.com/KwonOil/easyplanner/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	const query = `
	SELECT id, project_id, task_name, start_date, end_date, status, assignee_id
	FROM tasks
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanTask(row)
}

func (r *taskRepository) ListForProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	const query = `
	SELECT id, project_id, task_name, start_date, end_date, status, assignee_id
	FROM tasks
	WHERE project_id = $1
	ORDER BY id
	`
	return r.list(ctx, query, projectID)
}

func (r *taskRepository) ListForAssignee(ctx context.Context, userID int64) ([]domain.Task, error) {
	const query = `
	SELECT id, project_id, task_name, start_date, end_date, status, assignee_id
	FROM tasks
	WHERE assignee_id = $1
	ORDER BY id
	`
	return r.list(ctx, query, userID)
}

func (r *taskRepository) list(ctx context.Context, query string, arg interface{}) ([]domain.Task, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	if task.Status == "" {
		task.Status = domain.StatusTodo
	}

	const query = `
	INSERT INTO tasks (project_id, task_name, start_date, end_date, status, assignee_id)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id
	`
	if err := r.pool.QueryRow(ctx, query,
		task.ProjectID,
		task.Name,
		task.StartDate,
		task.EndDate,
		task.Status,
		nullInt64(task.AssigneeID),
	).Scan(&task.ID); err != nil {
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, id int64, name, startDate, endDate string) error {
	const query = `
	UPDATE tasks
	SET task_name = $2, start_date = $3, end_date = $4
	WHERE id = $1
	`
	return r.exec(ctx, query, id, name, startDate, endDate)
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	const query = `UPDATE tasks SET status = $2 WHERE id = $1`
	return r.exec(ctx, query, id, status)
}

func (r *taskRepository) Assign(ctx context.Context, id int64, assigneeID int64) error {
	const query = `UPDATE tasks SET assignee_id = $2 WHERE id = $1`
	return r.exec(ctx, query, id, assigneeID)
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
}

func (r *taskRepository) exec(ctx context.Context, query string, args ...interface{}) error {
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func scanTask(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Task, error) {
	var task domain.Task
	var assignee sql.NullInt64

	if err := row.Scan(
		&task.ID,
		&task.ProjectID,
		&task.Name,
		&task.StartDate,
		&task.EndDate,
		&task.Status,
		&assignee,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	task.AssigneeID = int64Ptr(assignee)
	return &task, nil
}
