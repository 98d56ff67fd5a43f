package cache

import (
	"context"
	"encoding/json"
	"time"

	"lexdraft/internal/model"

	"github.com/redis/go-redis/v9"
)

// TemplateCache caches template library listings per category
type TemplateCache interface {
	SetList(ctx context.Context, category string, templates []*model.Template) error
	GetList(ctx context.Context, category string) ([]*model.Template, bool, error)
	Invalidate(ctx context.Context, category string) error
}

type templateCache struct {
	client *redis.Client
}

func NewTemplateCache(client *redis.Client) TemplateCache {
	return &templateCache{
		client: client,
	}
}

func listKey(category string) string {
	if category == "" {
		return "templates:all"
	}
	return "templates:" + category
}

func (c *templateCache) SetList(ctx context.Context, category string, templates []*model.Template) error {
	data, err := json.Marshal(templates)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listKey(category), data, 5*time.Minute).Err()
}

func (c *templateCache) GetList(ctx context.Context, category string) ([]*model.Template, bool, error) {
	data, err := c.client.Get(ctx, listKey(category)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var templates []*model.Template
	if err := json.Unmarshal([]byte(data), &templates); err != nil {
		return nil, false, err
	}
	return templates, true, nil
}

func (c *templateCache) Invalidate(ctx context.Context, category string) error {
	return c.client.Del(ctx, listKey(category)).Err()
}
