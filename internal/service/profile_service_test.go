package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileCreatesOnFirstAccess(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newTestFactory(t))

	first, err := svc.GetProfile(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, uint(42), first.UserId)
	assert.Equal(t, "light", first.ThemePreference)
	assert.Empty(t, first.FavouriteTopics)

	second, err := svc.GetProfile(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)
}

func TestGetProfileConcurrentFirstAccess(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newTestFactory(t))

	const callers = 8
	var wg sync.WaitGroup
	ids := make([]uint, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			profile, err := svc.GetProfile(ctx, 7)
			errs[i] = err
			if err == nil {
				ids[i] = profile.Id
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}
}
