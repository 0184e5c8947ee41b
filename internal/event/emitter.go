package event

import (
	"context"

	"github.com/osse101/TextMaple_Go/internal/logger"
)

// Emitter publishes events fire-and-forget. Subscriber failures are logged and
// never reach the caller. A nil Emitter or one without a publisher drops events.
type Emitter struct {
	pub Publisher
}

// NewEmitter wraps a publisher; pub may be nil
func NewEmitter(pub Publisher) *Emitter {
	return &Emitter{pub: pub}
}

// Emit publishes evt and logs any subscriber error
func (e *Emitter) Emit(ctx context.Context, evt Event) {
	if e == nil || e.pub == nil {
		return
	}
	if err := e.pub.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
