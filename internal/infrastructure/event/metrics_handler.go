package event

import (
	"context"
	"time"

	"github.com/roofline/backend/internal/domain/budget"
	"github.com/roofline/backend/internal/domain/shared"
	"github.com/roofline/backend/internal/infrastructure/telemetry"
)

// MetricsHandler feeds domain events into the business metric instruments.
// It piggybacks on the event bus so services stay metrics-agnostic.
type MetricsHandler struct {
	metrics *telemetry.BusinessMetrics
}

// NewMetricsHandler creates a MetricsHandler
func NewMetricsHandler(metrics *telemetry.BusinessMetrics) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Handle records the metric matching the event type
func (h *MetricsHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	tenantID := event.TenantID().String()

	switch e := event.(type) {
	case *budget.BudgetRefreshedEvent:
		h.metrics.RecordBudgetRefresh(ctx, tenantID, time.Since(e.OccurredAt()))
	case *budget.CostEventRecordedEvent:
		h.metrics.RecordCostEvent(ctx, tenantID, string(e.Kind))
	case *budget.InvoiceMirrorSyncedEvent:
		h.metrics.RecordInvoiceSync(ctx, tenantID)
	}
	return nil
}

// EventTypes returns the event types this handler consumes
func (h *MetricsHandler) EventTypes() []string {
	return []string{
		budget.EventBudgetRefreshed,
		budget.EventCostEventRecorded,
		budget.EventInvoiceMirrorSynced,
	}
}

var _ shared.EventHandler = (*MetricsHandler)(nil)
