package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"lexdraft/internal/model"

	"github.com/redis/go-redis/v9"
)

// ErrFlowNotFound signals a missing or expired flow session
var ErrFlowNotFound = errors.New("flow session not found")

// FlowCache stores questionnaire sessions with a sliding TTL
type FlowCache interface {
	Save(ctx context.Context, st *model.FlowState) error
	Get(ctx context.Context, id string) (*model.FlowState, error)
	Delete(ctx context.Context, id string) error
}

type flowCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFlowCache(client *redis.Client, ttl time.Duration) FlowCache {
	return &flowCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *flowCache) Save(ctx context.Context, st *model.FlowState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "flow:"+st.ID, data, c.ttl).Err()
}

func (c *flowCache) Get(ctx context.Context, id string) (*model.FlowState, error) {
	data, err := c.client.Get(ctx, "flow:"+id).Result()
	if err == redis.Nil {
		return nil, ErrFlowNotFound
	}
	if err != nil {
		return nil, err
	}
	var st model.FlowState
	err = json.Unmarshal([]byte(data), &st)
	return &st, err
}

func (c *flowCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, "flow:"+id).Err()
}
