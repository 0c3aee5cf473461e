package budget

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/budget"
	"github.com/roofline/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInvoiceSyncService_Pull_CreatesMirror(t *testing.T) {
	f := newServiceFixture()
	svc := NewInvoiceSyncService(f.mirrorRepo, f.service)
	tenantID := uuid.New()
	jobID := uuid.New()

	f.mirrorRepo.On("FindByJob", mock.Anything, tenantID, jobID).Return(nil, shared.ErrNotFound).Once()
	f.mirrorRepo.On("Save", mock.Anything, mock.AnythingOfType("*budget.InvoiceMirror")).Return(nil)
	// mirror can arrive before approval; refresh finds nothing to do
	f.versionRepo.On("FindByJobAndKind", mock.Anything, tenantID, jobID, budget.VersionCapout).Return(nil, shared.ErrNotFound)

	resp, err := svc.Pull(context.Background(), tenantID, SyncInvoiceRequest{
		JobID:             jobID,
		ExternalInvoiceID: "INV-1001",
		TotalAmount:       dec("2000"),
		Balance:           dec("750"),
		Status:            "sent",
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-1001", resp.ExternalInvoiceID)
	assert.Equal(t, "2000.00", resp.TotalAmount.StringFixed(2))
	assert.Equal(t, "750.00", resp.Balance.StringFixed(2))
	f.mirrorRepo.AssertExpectations(t)
}

func TestInvoiceSyncService_Pull_LastWriterWins(t *testing.T) {
	f := newServiceFixture()
	svc := NewInvoiceSyncService(f.mirrorRepo, f.service)
	tenantID := uuid.New()
	jobID := uuid.New()

	existing, err := budget.NewInvoiceMirror(tenantID, jobID, "INV-1001", dec("1500"), dec("1500"), "draft")
	require.NoError(t, err)

	precap, capout := approvedPair(t, tenantID, jobID)

	f.mirrorRepo.On("FindByJob", mock.Anything, tenantID, jobID).Return(existing, nil)
	f.mirrorRepo.On("Update", mock.Anything, existing).Return(nil)
	f.versionRepo.On("FindByJobAndKind", mock.Anything, tenantID, jobID, budget.VersionCapout).Return(capout, nil)
	f.versionRepo.On("FindByJobAndKind", mock.Anything, tenantID, jobID, budget.VersionPrecap).Return(precap, nil)
	f.costRepo.On("FindByJob", mock.Anything, tenantID, jobID).Return([]*budget.CostEvent{}, nil)
	f.versionRepo.On("Update", mock.Anything, capout).Return(nil)

	resp, err := svc.Pull(context.Background(), tenantID, SyncInvoiceRequest{
		JobID:             jobID,
		ExternalInvoiceID: "INV-1001",
		TotalAmount:       dec("2000"),
		Status:            "sent",
	})
	require.NoError(t, err)

	assert.Equal(t, "2000.00", resp.TotalAmount.StringFixed(2))
	assert.Equal(t, "sent", resp.Status)
	// the refreshed live summary now carries the synced total
	assert.Equal(t, "2000.00", capout.Summary.SellPrice.StringFixed(2))
	assert.Equal(t, "1950.00", capout.Summary.Profit.StringFixed(2))
}
