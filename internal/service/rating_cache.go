package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RatingSummary is the cached aggregate shown next to a barber's reviews
type RatingSummary struct {
	Average float64 `json:"average"`
	Total   int64   `json:"total"`
}

// RatingCache keeps per-barber rating summaries in Redis so the review
// list endpoint does not recompute the aggregate on every page. Entries
// are invalidated whenever a review is written.
type RatingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRatingCache(client *redis.Client, ttl time.Duration) *RatingCache {
	return &RatingCache{client: client, ttl: ttl}
}

func ratingKey(barberID uuid.UUID) string {
	return fmt.Sprintf("barber_rating:%s", barberID.String())
}

// Get returns the cached summary or (nil, nil) on a miss
func (c *RatingCache) Get(ctx context.Context, barberID uuid.UUID) (*RatingSummary, error) {
	data, err := c.client.Get(ctx, ratingKey(barberID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var summary RatingSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *RatingCache) Set(ctx context.Context, barberID uuid.UUID, summary RatingSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, ratingKey(barberID), data, c.ttl).Err()
}

func (c *RatingCache) Invalidate(ctx context.Context, barberID uuid.UUID) error {
	return c.client.Del(ctx, ratingKey(barberID)).Err()
}
