package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-press/internal/detach"
	"github.com/DjordjeVuckovic/news-press/internal/metrics"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	topic, key string
	payload    any
}

type recorder struct {
	mu   sync.Mutex
	msgs []published
	err  error
}

func (r *recorder) Publish(_ context.Context, topic, key string, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.msgs = append(r.msgs, published{topic: topic, key: key, payload: payload})
	return nil
}

func (r *recorder) Close() error { return nil }

func drain(t *testing.T, d *detach.Detacher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Wait(ctx))
}

func TestEmitter_Emit(t *testing.T) {
	m := metrics.New()
	d := detach.New(detach.WithMetrics(m))
	pub := &recorder{}
	emitter := NewEmitter(pub, d, m, "")

	evt := Event{Type: ArticleCreated, ID: uuid.New(), OccurredAt: time.Now(), Title: "Hello"}
	emitter.Emit(evt)
	drain(t, d)

	require.Len(t, pub.msgs, 1)
	assert.Equal(t, DefaultTopic, pub.msgs[0].topic)
	assert.Equal(t, evt.ID.String(), pub.msgs[0].key)
	assert.Equal(t, evt, pub.msgs[0].payload)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues(string(ArticleCreated), "ok")))
}

func TestEmitter_FailuresAreCounted(t *testing.T) {
	m := metrics.New()
	d := detach.New(detach.WithMetrics(m))
	emitter := NewEmitter(&recorder{err: errors.New("bus down")}, d, m, "custom")

	emitter.Emit(Event{Type: ArticleLiked, ID: uuid.New()})
	drain(t, d)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues(string(ArticleLiked), "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DetachedTasks.WithLabelValues("publish.article.liked", "failed")))
}

func TestEmitter_NilPublisherAndMetrics(t *testing.T) {
	d := detach.New()
	emitter := NewEmitter(nil, d, nil, "")

	emitter.Emit(Event{Type: ArticleUpdated, ID: uuid.New()})
	drain(t, d)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("EVENTS_TYPE", "")
	t.Setenv("EVENTS_CHANNEL", "")
	cfg := LoadEnv()
	assert.Equal(t, Log, cfg.Type)
	assert.Equal(t, DefaultTopic, cfg.Topic)

	t.Setenv("EVENTS_TYPE", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("EVENTS_CHANNEL", "articles")
	cfg = LoadEnv()
	assert.Equal(t, Config{Type: Redis, RedisURL: "redis://localhost:6379/0", Topic: "articles"}, cfg)
}

func TestNewPublisher(t *testing.T) {
	ctx := context.Background()

	p, err := NewPublisher(ctx, Config{Type: Log})
	require.NoError(t, err)
	assert.IsType(t, LogPublisher{}, p)

	p, err = NewPublisher(ctx, Config{Type: None})
	require.NoError(t, err)
	assert.IsType(t, NopPublisher{}, p)

	_, err = NewPublisher(ctx, Config{Type: Redis})
	assert.Error(t, err)

	_, err = NewPublisher(ctx, Config{Type: "kafka"})
	assert.Error(t, err)
}
