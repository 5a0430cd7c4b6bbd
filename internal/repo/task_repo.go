package repo

import (
	"context"

	dom "github.com/arkesh-choudhury/task-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskRepo provides task persistence. Not-found surfaces as pgx.ErrNoRows
// so callers never have to guess from error text.
type TaskRepo interface {
	List(ctx context.Context, page, limit int) ([]dom.Task, error)
	GetByID(ctx context.Context, id string) (dom.Task, error)
	Create(ctx context.Context, title, description, status string) (dom.Task, error)
	Update(ctx context.Context, id, title, description, status string) (dom.Task, error)
	Delete(ctx context.Context, id string) error
}

type PGTaskRepo struct {
	db *pgxpool.Pool
}

func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

func (r *PGTaskRepo) List(ctx context.Context, page, limit int) ([]dom.Task, error) {
	query := `
		SELECT id, title, description, status, created_at, updated_at
		FROM tasks ORDER BY created_at DESC
		OFFSET $1 LIMIT $2`
	rows, err := r.db.Query(ctx, query, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		var t dom.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTaskRepo) GetByID(ctx context.Context, id string) (dom.Task, error) {
	query := `
		SELECT id, title, description, status, created_at, updated_at
		FROM tasks WHERE id = $1`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PGTaskRepo) Create(ctx context.Context, title, description, status string) (dom.Task, error) {
	query := `
		INSERT INTO tasks (id, title, description, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, status, created_at, updated_at`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, uuid.NewString(), title, description, status).Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PGTaskRepo) Update(ctx context.Context, id, title, description, status string) (dom.Task, error) {
	query := `
		UPDATE tasks SET title = $2, description = $3, status = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, description, status, created_at, updated_at`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id, title, description, status).Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Delete removes the task. Zero affected rows is reported as pgx.ErrNoRows.
func (r *PGTaskRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
