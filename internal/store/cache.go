// internal/store/cache.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"esg-workers/internal/esg/assess"
)

const cacheKeyPrefix = "esg:assessment:"

// AssessmentCache is a read-through Redis cache for finished assessments,
// keyed by company. Cache misses and transport errors look the same to the
// caller; the pipeline recomputes on either.
type AssessmentCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewAssessmentCache(client redis.Cmdable, ttl time.Duration) *AssessmentCache {
	return &AssessmentCache{client: client, ttl: ttl}
}

// Get returns the cached assessment for a company, or found=false.
func (c *AssessmentCache) Get(ctx context.Context, companyID string) (assess.Assessment, bool) {
	val, err := c.client.Get(ctx, cacheKey(companyID)).Result()
	if err != nil {
		return assess.Assessment{}, false
	}

	var a assess.Assessment
	if err := json.Unmarshal([]byte(val), &a); err != nil {
		return assess.Assessment{}, false
	}
	return a, true
}

// Set stores an assessment under the company key. Failures are returned but
// callers treat them as advisory.
func (c *AssessmentCache) Set(ctx context.Context, companyID string, a assess.Assessment) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode assessment for cache: %w", err)
	}
	return c.client.Set(ctx, cacheKey(companyID), data, c.ttl).Err()
}

// Invalidate drops the cached assessment for a company.
func (c *AssessmentCache) Invalidate(ctx context.Context, companyID string) error {
	return c.client.Del(ctx, cacheKey(companyID)).Err()
}

func cacheKey(companyID string) string {
	return cacheKeyPrefix + companyID
}
