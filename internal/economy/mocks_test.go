package economy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/TextMaple_Go/internal/event"
)

// MockPublisher implements event.Publisher for testing
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(evt event.Event) bool {
		return evt.Type == event.Type(eventType)
	})
}
