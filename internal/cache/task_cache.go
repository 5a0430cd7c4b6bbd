package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "github.com/arkesh-choudhury/task-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyListPrefix = "task:list:"

// TaskCache caches paginated task lists in Redis.
type TaskCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTaskCache returns a new TaskCache.
func NewTaskCache(rdb *redis.Client, ttl time.Duration) *TaskCache {
	return &TaskCache{rdb: rdb, ttl: ttl}
}

func listKey(page, limit int) string {
	return keyListPrefix + strconv.Itoa(page) + ":" + strconv.Itoa(limit)
}

// GetList returns the cached page or nil on miss.
func (c *TaskCache) GetList(ctx context.Context, page, limit int) ([]dom.Task, error) {
	b, err := c.rdb.Get(ctx, listKey(page, limit)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Task
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the page in cache.
func (c *TaskCache) SetList(ctx context.Context, page, limit int, list []dom.Task) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listKey(page, limit), b, c.ttl).Err()
}

// InvalidateAll removes every cached list page (cache invalidation on write).
func (c *TaskCache) InvalidateAll(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, keyListPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
