package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

type PublisherType string

const (
	Redis PublisherType = "redis"
	Log   PublisherType = "log"
	None  PublisherType = "none"
)

type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload any) error
	Close() error
}

// Envelope is what subscribers of the redis channel receive
type Envelope struct {
	Key     string          `json:"key"`
	Payload json.RawMessage `json:"payload"`
}

type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher connects to redisURL and verifies the connection with a ping.
func NewRedisPublisher(ctx context.Context, redisURL string) (*RedisPublisher, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opts.MaintNotificationsConfig = &maintnotifications.Config{
		Mode: maintnotifications.ModeDisabled,
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisPublisher{client: client}, nil
}

func (p *RedisPublisher) Publish(ctx context.Context, topic, key string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	msg, err := json.Marshal(Envelope{Key: key, Payload: body})
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	if err := p.client.Publish(ctx, topic, msg).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis: %w", err)
	}
	return nil
}

func (p *RedisPublisher) Healthy(ctx context.Context) bool {
	if err := p.client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis health check failed", "error", err)
		return false
	}
	return true
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

// LogPublisher writes events to the structured log instead of a bus.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, topic, key string, payload any) error {
	slog.Info("Event published", "topic", topic, "key", key, "payload", payload)
	return nil
}

func (LogPublisher) Close() error { return nil }

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, string, any) error { return nil }

func (NopPublisher) Close() error { return nil }
