package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedSkill struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func withTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestGetSetJSON(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	var miss cachedSkill
	found, err := GetJSON(ctx, SkillKey(1), &miss)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, SkillKey(1), cachedSkill{ID: 1, Name: "Guitar"}, SkillTTL))

	var hit cachedSkill
	found, err = GetJSON(ctx, SkillKey(1), &hit)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Guitar", hit.Name)
}

func TestAside(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedSkill) func() error {
		return func() error {
			fetches++
			*dest = cachedSkill{ID: 2, Name: "Chess"}
			return nil
		}
	}

	var first cachedSkill
	require.NoError(t, Aside(ctx, SkillKey(2), &first, time.Minute, fetch(&first)))
	assert.Equal(t, "Chess", first.Name)
	assert.Equal(t, 1, fetches)

	// Second call is served from the cache.
	var second cachedSkill
	require.NoError(t, Aside(ctx, SkillKey(2), &second, time.Minute, fetch(&second)))
	assert.Equal(t, "Chess", second.Name)
	assert.Equal(t, 1, fetches)

	// Invalidation forces a refetch.
	Invalidate(ctx, SkillKey(2))
	var third cachedSkill
	require.NoError(t, Aside(ctx, SkillKey(2), &third, time.Minute, fetch(&third)))
	assert.Equal(t, 2, fetches)
}

func TestHelpersDegradeWithoutRedis(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	found, err := GetJSON(ctx, "any", &cachedSkill{})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "any", cachedSkill{}, time.Minute))

	// Aside falls through to fetch every time.
	fetches := 0
	var dest cachedSkill
	for i := 0; i < 2; i++ {
		require.NoError(t, Aside(ctx, "any", &dest, time.Minute, func() error {
			fetches++
			dest = cachedSkill{ID: 3, Name: "Yoga"}
			return nil
		}))
	}
	assert.Equal(t, 2, fetches)
	assert.Equal(t, "Yoga", dest.Name)
}
