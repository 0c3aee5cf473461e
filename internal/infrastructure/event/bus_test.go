package event

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingHandler struct {
	types    []string
	received []shared.DomainEvent
	err      error
}

func (h *recordingHandler) Handle(_ context.Context, evt shared.DomainEvent) error {
	h.received = append(h.received, evt)
	return h.err
}

func (h *recordingHandler) EventTypes() []string {
	return h.types
}

func testEvent(eventType string) shared.DomainEvent {
	evt := shared.NewBaseDomainEvent(eventType, "Job", uuid.New(), uuid.New())
	return &evt
}

func TestInMemoryEventBus_DeliversToSubscribedTypes(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{types: []string{"budget.refreshed"}}
	bus.Subscribe(handler)

	err := bus.Publish(context.Background(), testEvent("budget.refreshed"), testEvent("job.created"))
	require.NoError(t, err)

	require.Len(t, handler.received, 1)
	assert.Equal(t, "budget.refreshed", handler.received[0].EventType())
}

func TestInMemoryEventBus_WildcardHandlerReceivesAll(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{}
	bus.Subscribe(handler)

	err := bus.Publish(context.Background(), testEvent("budget.refreshed"), testEvent("job.created"))
	require.NoError(t, err)
	assert.Len(t, handler.received, 2)
}

func TestInMemoryEventBus_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	failing := &recordingHandler{types: []string{"job.created"}, err: errors.New("boom")}
	healthy := &recordingHandler{types: []string{"job.created"}}
	bus.Subscribe(failing)
	bus.Subscribe(healthy)

	err := bus.Publish(context.Background(), testEvent("job.created"))
	require.NoError(t, err)
	assert.Len(t, healthy.received, 1)
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{types: []string{"job.created"}}
	bus.Subscribe(handler)
	bus.Unsubscribe(handler)

	err := bus.Publish(context.Background(), testEvent("job.created"))
	require.NoError(t, err)
	assert.Empty(t, handler.received)
}
