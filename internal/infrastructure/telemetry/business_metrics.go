package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics holds metrics for the financial rollup domain
type BusinessMetrics struct {
	budgetRefreshes        *Counter
	costEventsRecorded     *Counter
	invoiceSyncs           *Counter
	commissionCalculations *Counter
	commissionNoPlan       *Counter
	refreshDuration        *Histogram
}

// NewBusinessMetrics creates the domain metric instruments on the given meter
func NewBusinessMetrics(meter metric.Meter) (*BusinessMetrics, error) {
	budgetRefreshes, err := NewCounter(meter,
		"budget_refreshes_total",
		"Number of live budget summary recomputations",
		"{refresh}")
	if err != nil {
		return nil, err
	}

	costEventsRecorded, err := NewCounter(meter,
		"cost_events_recorded_total",
		"Number of cost events written to the ledger",
		"{event}")
	if err != nil {
		return nil, err
	}

	invoiceSyncs, err := NewCounter(meter,
		"invoice_syncs_total",
		"Number of invoice mirror pulls from the billing system",
		"{sync}")
	if err != nil {
		return nil, err
	}

	commissionCalculations, err := NewCounter(meter,
		"commission_calculations_total",
		"Number of commission calculations performed",
		"{calculation}")
	if err != nil {
		return nil, err
	}

	commissionNoPlan, err := NewCounter(meter,
		"commission_no_active_plan_total",
		"Commission calculations that found no active plan for the representative",
		"{calculation}")
	if err != nil {
		return nil, err
	}

	refreshDuration, err := NewHistogram(meter, HistogramOpts{
		Name:        "budget_refresh_duration_seconds",
		Description: "Duration of live budget recomputation",
		Unit:        "s",
		Boundaries:  DBDurationBuckets,
	})
	if err != nil {
		return nil, err
	}

	return &BusinessMetrics{
		budgetRefreshes:        budgetRefreshes,
		costEventsRecorded:     costEventsRecorded,
		invoiceSyncs:           invoiceSyncs,
		commissionCalculations: commissionCalculations,
		commissionNoPlan:       commissionNoPlan,
		refreshDuration:        refreshDuration,
	}, nil
}

// RecordBudgetRefresh records a completed live budget recomputation
func (m *BusinessMetrics) RecordBudgetRefresh(ctx context.Context, tenantID string, elapsed time.Duration) {
	attrs := []attribute.KeyValue{AttrTenantID.String(tenantID)}
	m.budgetRefreshes.Inc(ctx, attrs...)
	m.refreshDuration.RecordDuration(ctx, elapsed, attrs...)
}

// RecordCostEvent records a ledger write
func (m *BusinessMetrics) RecordCostEvent(ctx context.Context, tenantID, kind string) {
	m.costEventsRecorded.Inc(ctx,
		AttrTenantID.String(tenantID),
		AttrCostKind.String(kind),
	)
}

// RecordInvoiceSync records an invoice mirror pull
func (m *BusinessMetrics) RecordInvoiceSync(ctx context.Context, tenantID string) {
	m.invoiceSyncs.Inc(ctx, AttrTenantID.String(tenantID))
}

// RecordCommissionCalculation records a commission calculation and whether
// an active plan was found
func (m *BusinessMetrics) RecordCommissionCalculation(ctx context.Context, tenantID, planType string, noActivePlan bool) {
	attrs := []attribute.KeyValue{
		AttrTenantID.String(tenantID),
		AttrPlanType.String(planType),
	}
	m.commissionCalculations.Inc(ctx, attrs...)
	if noActivePlan {
		m.commissionNoPlan.Inc(ctx, AttrTenantID.String(tenantID))
	}
}
