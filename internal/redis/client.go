package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"sales_analyzer/internal/models"
)

// ErrArtifactNotFound is returned when a download token is unknown or
// its artifact has expired.
var ErrArtifactNotFound = errors.New("artifact not found or expired")

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// SaveArtifact caches a generated download under its token. The artifact
// disappears when the TTL elapses; there is no durable persistence.
func (c *Client) SaveArtifact(ctx context.Context, token string, artifact *models.Artifact, ttl time.Duration) error {
	data, err := json.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}
	return c.rdb.Set(ctx, "report:"+token, data, ttl).Err()
}

// GetArtifact fetches a cached download by token.
func (c *Client) GetArtifact(ctx context.Context, token string) (*models.Artifact, error) {
	val, err := c.rdb.Get(ctx, "report:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrArtifactNotFound
		}
		return nil, fmt.Errorf("failed to get artifact: %w", err)
	}

	var artifact models.Artifact
	if err := json.Unmarshal([]byte(val), &artifact); err != nil {
		return nil, fmt.Errorf("failed to unmarshal artifact: %w", err)
	}
	return &artifact, nil
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
