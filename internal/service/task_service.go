package service

import (
	"context"
	"errors"
	"strconv"

	dom "github.com/arkesh-choudhury/task-backend/internal/domain"
	"github.com/arkesh-choudhury/task-backend/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"

	"github.com/arkesh-choudhury/task-backend/internal/cache"
)

var ErrNotFound = errors.New("not found")

type TaskService struct {
	repo  repo.TaskRepo
	cache *cache.TaskCache
	sf    singleflight.Group
}

// NewTaskService creates a TaskService. If c is nil, caching is disabled.
func NewTaskService(r repo.TaskRepo, c *cache.TaskCache) *TaskService {
	return &TaskService{repo: r, cache: c}
}

// List returns one page of tasks. Cache hits skip the store; concurrent
// misses for the same page collapse into a single store call.
func (s *TaskService) List(ctx context.Context, page, limit int) ([]dom.Task, error) {
	if s.cache != nil {
		key := "list:" + strconv.Itoa(page) + ":" + strconv.Itoa(limit)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, page, limit); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx, page, limit)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, page, limit, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Task), nil
	}
	return s.repo.List(ctx, page, limit)
}

func (s *TaskService) GetByID(ctx context.Context, id string) (dom.Task, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	return t, nil
}

func (s *TaskService) Create(ctx context.Context, title, description, status string) (dom.Task, error) {
	t, err := s.repo.Create(ctx, title, description, status)
	if err != nil {
		return dom.Task{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

func (s *TaskService) Update(ctx context.Context, id, title, description, status string) (dom.Task, error) {
	t, err := s.repo.Update(ctx, id, title, description, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *TaskService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateAll(ctx)
	}
}
