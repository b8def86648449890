package events

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

type Config struct {
	Type     PublisherType
	RedisURL string
	Topic    string
}

func LoadEnv() Config {
	cfg := Config{
		Type:     PublisherType(os.Getenv("EVENTS_TYPE")),
		RedisURL: os.Getenv("REDIS_URL"),
		Topic:    os.Getenv("EVENTS_CHANNEL"),
	}
	if cfg.Type == "" {
		cfg.Type = Log
	}
	if cfg.Topic == "" {
		cfg.Topic = DefaultTopic
	}
	return cfg
}

// NewPublisher builds the publisher selected by cfg.Type
func NewPublisher(ctx context.Context, cfg Config) (Publisher, error) {
	switch cfg.Type {
	case Redis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL is required for %s events", Redis)
		}
		p, err := NewRedisPublisher(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		slog.Info("Publishing events to redis", "channel", cfg.Topic)
		return p, nil
	case Log:
		return LogPublisher{}, nil
	case None:
		return NopPublisher{}, nil
	default:
		return nil, fmt.Errorf("unsupported events type: %s", cfg.Type)
	}
}
