package service

import (
	"context"
	"errors"
	"testing"

	dom "github.com/arkesh-choudhury/task-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTaskRepo struct {
	task dom.Task
	err  error
}

func (s *stubTaskRepo) List(ctx context.Context, page, limit int) ([]dom.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []dom.Task{s.task}, nil
}

func (s *stubTaskRepo) GetByID(ctx context.Context, id string) (dom.Task, error) {
	return s.task, s.err
}

func (s *stubTaskRepo) Create(ctx context.Context, title, description, status string) (dom.Task, error) {
	return s.task, s.err
}

func (s *stubTaskRepo) Update(ctx context.Context, id, title, description, status string) (dom.Task, error) {
	return s.task, s.err
}

func (s *stubTaskRepo) Delete(ctx context.Context, id string) error {
	return s.err
}

func TestTaskServiceNotFoundMapping(t *testing.T) {
	svc := NewTaskService(&stubTaskRepo{err: pgx.ErrNoRows}, nil)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, "missing", "t", "d", "s")
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskServicePassesStoreErrorsThrough(t *testing.T) {
	storeErr := errors.New("db down")
	svc := NewTaskService(&stubTaskRepo{err: storeErr}, nil)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, "1")
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, err = svc.Create(ctx, "t", "d", "s")
	assert.ErrorIs(t, err, storeErr)

	err = svc.Delete(ctx, "1")
	assert.ErrorIs(t, err, storeErr)
}

func TestTaskServiceCreatePassthrough(t *testing.T) {
	want := dom.Task{ID: "1", Title: "t", Description: "d", Status: "pending"}
	svc := NewTaskService(&stubTaskRepo{task: want}, nil)

	got, err := svc.Create(context.Background(), "t", "d", "pending")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
