package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"study-assistant-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

type VisitorPreferenceRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewVisitorPreferenceRepository(rdb *redis.Client, ttl time.Duration) contract.VisitorPreferenceRepository {
	return &VisitorPreferenceRepository{
		rdb: rdb,
		ttl: ttl,
	}
}

func visitorKey(visitorId string) string {
	return fmt.Sprintf("visitor:%s:prefs", visitorId)
}

func (r *VisitorPreferenceRepository) Get(ctx context.Context, visitorId, key, fallback string) (string, error) {
	v, found, err := r.Lookup(ctx, visitorId, key)
	if err != nil {
		return "", err
	}
	if !found {
		return fallback, nil
	}
	return v, nil
}

// Lookup treats redis.Nil (missing hash or field) as not found.
func (r *VisitorPreferenceRepository) Lookup(ctx context.Context, visitorId, key string) (string, bool, error) {
	v, err := r.rdb.HGet(ctx, visitorKey(visitorId), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set writes the field and slides the expiry in one round trip.
func (r *VisitorPreferenceRepository) Set(ctx context.Context, visitorId, key, value string) error {
	k := visitorKey(visitorId)
	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, k, key, value)
	pipe.Expire(ctx, k, r.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *VisitorPreferenceRepository) Delete(ctx context.Context, visitorId string) error {
	return r.rdb.Del(ctx, visitorKey(visitorId)).Err()
}
