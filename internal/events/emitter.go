package events

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/news-press/internal/detach"
	"github.com/DjordjeVuckovic/news-press/internal/metrics"
)

// Emitter publishes events on a detached task so that a slow or failing
// bus never affects the operation that produced the event.
type Emitter struct {
	publisher Publisher
	detacher  *detach.Detacher
	metrics   *metrics.Metrics
	topic     string
}

func NewEmitter(publisher Publisher, detacher *detach.Detacher, m *metrics.Metrics, topic string) *Emitter {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	if topic == "" {
		topic = DefaultTopic
	}
	return &Emitter{publisher: publisher, detacher: detacher, metrics: m, topic: topic}
}

func (e *Emitter) Emit(evt Event) {
	e.detacher.Go("publish."+string(evt.Type), func(ctx context.Context) error {
		err := e.publisher.Publish(ctx, e.topic, evt.Key(), evt)
		e.count(evt.Type, err)
		if err != nil {
			return fmt.Errorf("failed to publish %s for %s: %w", evt.Type, evt.ID, err)
		}
		return nil
	})
}

func (e *Emitter) count(t Type, err error) {
	if e.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "failed"
	}
	e.metrics.EventsPublished.WithLabelValues(string(t), status).Inc()
}
