package concept_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/core/concept"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

/*
TestCachedRepository_ServesHitsFromRedis loads through the wrapped store once
and serves the second read from the cache with the same values.
*/
func TestCachedRepository_ServesHitsFromRedis(t *testing.T) {
	server, client := newRedis(t)
	inner := newFixture()
	cached := concept.NewCachedRepository(inner, client, time.Minute, slog.New(slog.DiscardHandler))

	first, err := cached.ListFields(context.Background(), []int64{1, 2})
	require.NoError(t, err)

	second, err := cached.ListFields(context.Background(), []int64{1, 2})
	require.NoError(t, err)

	require.Len(t, inner.fieldCalls, 1)

	require.Len(t, second[1], 2)
	for i, link := range second[1] {
		original := first[1][i]
		assert.Equal(t, original.ID, link.ID)
		assert.Equal(t, original.AltName(), link.AltName())
		assert.Equal(t, original.AltPluralName(), link.AltPluralName())
		assert.Equal(t, original.Field.Name, link.Field.Name)
		assert.True(t, original.Field.Modified.Equal(link.Field.Modified))
	}
	assert.Equal(t, "SBP", second[1][0].AltName())
	assert.Equal(t, "SBPs", second[1][0].AltPluralName())
	assert.Equal(t, "Diastolic readings", second[1][1].AltPluralName())

	assert.NotNil(t, second[2])
	assert.Empty(t, second[2])

	raw, err := server.Get("catalog:concept_fields:2")
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	assert.Equal(t, time.Minute, server.TTL("catalog:concept_fields:1"))
	assert.Equal(t, time.Minute, server.TTL("catalog:concept_fields:2"))
}

// Only the concepts missing from the cache reach the wrapped store.
func TestCachedRepository_LoadsOnlyMisses(t *testing.T) {
	_, client := newRedis(t)
	inner := newFixture()
	cached := concept.NewCachedRepository(inner, client, time.Minute, slog.New(slog.DiscardHandler))

	_, err := cached.ListFields(context.Background(), []int64{1})
	require.NoError(t, err)

	links, err := cached.ListFields(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	assert.Len(t, links[1], 2)

	require.Len(t, inner.fieldCalls, 2)
	assert.Equal(t, []int64{2}, inner.fieldCalls[1])
}

// An undecodable entry is logged, reloaded and overwritten.
func TestCachedRepository_CorruptEntry(t *testing.T) {
	server, client := newRedis(t)
	require.NoError(t, server.Set("catalog:concept_fields:1", "{not json"))

	var logs bytes.Buffer
	inner := newFixture()
	cached := concept.NewCachedRepository(inner, client, time.Minute, slog.New(slog.NewJSONHandler(&logs, nil)))

	links, err := cached.ListFields(context.Background(), []int64{1})
	require.NoError(t, err)
	assert.Len(t, links[1], 2)
	require.Len(t, inner.fieldCalls, 1)
	assert.Contains(t, logs.String(), "concept_fields_cache_decode_failed")

	_, err = cached.ListFields(context.Background(), []int64{1})
	require.NoError(t, err)
	assert.Len(t, inner.fieldCalls, 1)
}

// An unreachable Redis must degrade to the wrapped repository.
func TestCachedRepository_FallsThroughWhenRedisIsDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	inner := newFixture()
	cached := concept.NewCachedRepository(inner, client, time.Minute, slog.New(slog.DiscardHandler))

	links, err := cached.ListFields(context.Background(), []int64{1, 2})
	require.NoError(t, err)

	require.Len(t, links[1], 2)
	assert.Equal(t, "Systolic", links[1][0].Field.Name)
	assert.NotNil(t, links[2])
	assert.Empty(t, links[2])
	require.Len(t, inner.fieldCalls, 1)

	c, err := cached.GetByID(context.Background(), 1, concept.Filter{})
	require.NoError(t, err)
	assert.Equal(t, "Blood Pressure", c.Name)
}

func TestCachedRepository_NoIDs(t *testing.T) {
	_, client := newRedis(t)
	inner := newFixture()
	cached := concept.NewCachedRepository(inner, client, time.Minute, slog.New(slog.DiscardHandler))

	links, err := cached.ListFields(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, links)
	assert.Empty(t, inner.fieldCalls)
}
