package handler

import (
	"github.com/gin-gonic/gin"
	budgetapp "github.com/roofline/backend/internal/application/budget"
)

// CostEventHandler handles cost ledger endpoints
type CostEventHandler struct {
	BaseHandler
	costEventService *budgetapp.CostEventService
}

// NewCostEventHandler creates a new CostEventHandler
func NewCostEventHandler(costEventService *budgetapp.CostEventService) *CostEventHandler {
	return &CostEventHandler{costEventService: costEventService}
}

// Record records one outlay against a job and refreshes its CAPOUT
func (h *CostEventHandler) Record(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Missing tenant context")
		return
	}

	var req budgetapp.RecordCostEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.costEventService.Record(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Update revises a recorded outlay
func (h *CostEventHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Missing tenant context")
		return
	}

	eventID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cost event ID")
		return
	}

	var req budgetapp.UpdateCostEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.costEventService.Update(c.Request.Context(), tenantID, eventID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a recorded outlay
func (h *CostEventHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Missing tenant context")
		return
	}

	eventID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cost event ID")
		return
	}

	if err := h.costEventService.Delete(c.Request.Context(), tenantID, eventID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// List returns a page of the job's ledger
func (h *CostEventHandler) List(c *gin.Context) {
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

	var filter budgetapp.CostEventListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	events, total, err := h.costEventService.List(c.Request.Context(), tenantID, jobID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, events, total, filter.Page, filter.PageSize)
}
