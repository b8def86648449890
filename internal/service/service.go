// Package service holds the business operations of the articles service.
// It is transport agnostic: callers hand in an already authenticated
// domain.Identity and receive typed apperr errors.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/DjordjeVuckovic/news-press/internal/apperr"
	"github.com/DjordjeVuckovic/news-press/internal/detach"
	"github.com/DjordjeVuckovic/news-press/internal/domain"
	"github.com/DjordjeVuckovic/news-press/internal/events"
	"github.com/DjordjeVuckovic/news-press/internal/metrics"
	"github.com/DjordjeVuckovic/news-press/internal/storage"
	"github.com/DjordjeVuckovic/news-press/internal/text"
	"github.com/google/uuid"
)

type Service struct {
	store     storage.Store
	publisher events.Publisher
	emitter   *events.Emitter
	detacher  *detach.Detacher
	indexer   storage.Indexer
	metrics   *metrics.Metrics
	pipeline  *text.Pipeline
	tagLimits domain.TagLimits
	topic     string
	now       func() time.Time
}

type Option func(*Service)

func WithDetacher(d *detach.Detacher) Option {
	return func(s *Service) { s.detacher = d }
}

func WithPipeline(p *text.Pipeline) Option {
	return func(s *Service) { s.pipeline = p }
}

func WithTagLimits(l domain.TagLimits) Option {
	return func(s *Service) { s.tagLimits = l }
}

// WithIndexer mirrors published articles into a search index.
func WithIndexer(i storage.Indexer) Option {
	return func(s *Service) { s.indexer = i }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithTopic(topic string) Option {
	return func(s *Service) { s.topic = topic }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(store storage.Store, publisher events.Publisher, opts ...Option) *Service {
	s := &Service{
		store:     store,
		publisher: publisher,
		pipeline:  text.NewPipeline(text.DefaultConfig()),
		tagLimits: domain.DefaultTagLimits,
		topic:     events.DefaultTopic,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.detacher == nil {
		s.detacher = detach.New(detach.WithMetrics(s.metrics))
	}
	s.emitter = events.NewEmitter(publisher, s.detacher, s.metrics, s.topic)
	return s
}

// Wait drains the detached side effects started so far.
func (s *Service) Wait(ctx context.Context) error {
	return s.detacher.Wait(ctx)
}

func (s *Service) getArticle(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	a, err := s.store.GetArticle(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NewNotFound("article not found")
	}
	if err != nil {
		return nil, apperr.NewInternal("failed to load article", err)
	}
	return a, nil
}

func (s *Service) countEngagement(kind string) {
	if s.metrics != nil {
		s.metrics.Engagements.WithLabelValues(kind).Inc()
	}
}

func uuidPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
