package memory

import (
	"context"
	"time"

	"study-assistant-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// VisitorPreferenceTTL matches the lifetime of a browser visitor session.
const VisitorPreferenceTTL = 14 * 24 * time.Hour

type VisitorPreferenceRepository struct {
	cache *cache.Cache
}

func NewVisitorPreferenceRepository() contract.VisitorPreferenceRepository {
	// Purge expired visitors every hour
	c := cache.New(VisitorPreferenceTTL, time.Hour)
	return &VisitorPreferenceRepository{
		cache: c,
	}
}

func (r *VisitorPreferenceRepository) Get(ctx context.Context, visitorId, key, fallback string) (string, error) {
	v, found, err := r.Lookup(ctx, visitorId, key)
	if err != nil || !found {
		return fallback, err
	}
	return v, nil
}

func (r *VisitorPreferenceRepository) Lookup(_ context.Context, visitorId, key string) (string, bool, error) {
	x, found := r.cache.Get(visitorId)
	if !found {
		return "", false, nil
	}
	v, ok := x.(map[string]string)[key]
	return v, ok, nil
}

// Set copies the visitor's map so readers holding the old one never race the write.
func (r *VisitorPreferenceRepository) Set(_ context.Context, visitorId, key, value string) error {
	next := map[string]string{key: value}
	if x, found := r.cache.Get(visitorId); found {
		for k, v := range x.(map[string]string) {
			if k != key {
				next[k] = v
			}
		}
	}
	r.cache.Set(visitorId, next, cache.DefaultExpiration)
	return nil
}

func (r *VisitorPreferenceRepository) Delete(_ context.Context, visitorId string) error {
	r.cache.Delete(visitorId)
	return nil
}
