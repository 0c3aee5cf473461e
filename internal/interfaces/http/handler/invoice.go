package handler

import (
	"github.com/gin-gonic/gin"
	budgetapp "github.com/roofline/backend/internal/application/budget"
)

// InvoiceHandler handles invoice mirror endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceSyncService *budgetapp.InvoiceSyncService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceSyncService *budgetapp.InvoiceSyncService) *InvoiceHandler {
	return &InvoiceHandler{invoiceSyncService: invoiceSyncService}
}

// Sync applies one pulled invoice snapshot to a job's mirror and
// refreshes the job's CAPOUT with the new sell price
func (h *InvoiceHandler) Sync(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Missing tenant context")
		return
	}

	var req budgetapp.SyncInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.invoiceSyncService.Pull(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Get returns the job's invoice mirror
func (h *InvoiceHandler) Get(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Missing tenant context")
		return
	}

	jobID, err := parseUUIDParam(c, "job_id")
	if err != nil {
		h.BadRequest(c, "Invalid job ID")
		return
	}

	resp, err := h.invoiceSyncService.Get(c.Request.Context(), tenantID, jobID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
