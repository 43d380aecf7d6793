// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package concept

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/catalog/internal/platform/constants"
)

// CachedRepository decorates a [Repository] with a Redis cache over
// [Repository.ListFields]. Concept reads pass straight through.
//
// Cache failures never fail a request: they are logged and the lookup falls
// through to the wrapped repository.
type CachedRepository struct {
	Repository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRepository wraps inner with a field link cache whose entries
// expire after ttl.
func NewCachedRepository(inner Repository, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{Repository: inner, client: client, ttl: ttl, logger: logger}
}

/*
ListFields serves cached link lists with a single MGET and loads the misses
from the wrapped repository in one batch.

Misses are written back in a single pipeline. A concept without fields is
cached as an empty list so it does not miss on every request.
*/
func (repository *CachedRepository) ListFields(ctx context.Context, conceptIDs []int64) (map[int64][]ConceptField, error) {
	links := make(map[int64][]ConceptField, len(conceptIDs))
	if len(conceptIDs) == 0 {
		return links, nil
	}

	keys := make([]string, len(conceptIDs))
	for i, id := range conceptIDs {
		keys[i] = fieldsKey(id)
	}

	misses := conceptIDs
	values, err := repository.client.MGet(ctx, keys...).Result()
	if err != nil {
		repository.logger.WarnContext(ctx, "concept_fields_cache_read_failed", slog.Any("error", err))
	} else {
		misses = nil
		for i, value := range values {
			raw, ok := value.(string)
			if !ok {
				misses = append(misses, conceptIDs[i])
				continue
			}

			var cached []ConceptField
			if err := json.Unmarshal([]byte(raw), &cached); err != nil {
				repository.logger.WarnContext(ctx, "concept_fields_cache_decode_failed",
					slog.Int64("concept_id", conceptIDs[i]),
					slog.Any("error", err),
				)
				misses = append(misses, conceptIDs[i])
				continue
			}
			links[conceptIDs[i]] = cached
		}
	}

	if len(misses) == 0 {
		return links, nil
	}

	loaded, err := repository.Repository.ListFields(ctx, misses)
	if err != nil {
		return nil, err
	}

	pipe := repository.client.Pipeline()
	for _, id := range misses {
		fields := loaded[id]
		if fields == nil {
			fields = []ConceptField{}
		}
		links[id] = fields

		raw, err := json.Marshal(fields)
		if err != nil {
			continue
		}
		pipe.Set(ctx, fieldsKey(id), raw, repository.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		repository.logger.WarnContext(ctx, "concept_fields_cache_write_failed",
			slog.Int("entries", len(misses)),
			slog.Any("error", err),
		)
	}

	return links, nil
}

func fieldsKey(conceptID int64) string {
	return constants.RedisPrefixConceptFields + strconv.FormatInt(conceptID, 10)
}
