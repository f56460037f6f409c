package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

var ErrPublishQueueFull = errors.New("publish queue is full")

const (
	defaultPublishQueue   = 1024
	defaultPublishTimeout = 5 * time.Second
)

type queuedEvent struct {
	key     string
	payload []byte
}

// AsyncPublisher queues events for a slow sink (a broker) and delivers them from
// a single goroutine, so Publish never waits on the network and events keep
// their order. Run must be started for anything to be delivered.
type AsyncPublisher struct {
	next    EventPublisher
	queue   chan queuedEvent
	timeout time.Duration
	log     *zap.Logger
}

func NewAsyncPublisher(next EventPublisher, size int, timeout time.Duration, log *zap.Logger) *AsyncPublisher {
	if size <= 0 {
		size = defaultPublishQueue
	}
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	return &AsyncPublisher{
		next:    next,
		queue:   make(chan queuedEvent, size),
		timeout: timeout,
		log:     log,
	}
}

// Publish enqueues the event. It drops it with ErrPublishQueueFull rather than block.
func (p *AsyncPublisher) Publish(_ context.Context, key string, payload []byte) error {
	select {
	case p.queue <- queuedEvent{key: key, payload: payload}:
		return nil
	default:
		return ErrPublishQueueFull
	}
}

// Run delivers queued events until ctx is done. Delivery failures are logged.
func (p *AsyncPublisher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			if n := len(p.queue); n > 0 {
				p.log.Warn("Dropping undelivered change events", zap.Int("count", n))
			}
			return
		case ev := <-p.queue:
			p.deliver(ctx, ev)
		}
	}
}

func (p *AsyncPublisher) deliver(ctx context.Context, ev queuedEvent) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := p.next.Publish(ctx, ev.key, ev.payload); err != nil {
		p.log.Warn("Failed to deliver change event", zap.String("key", ev.key), zap.Error(err))
	}
}
