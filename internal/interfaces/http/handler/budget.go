package handler

import (
	"github.com/gin-gonic/gin"
	budgetapp "github.com/roofline/backend/internal/application/budget"
)

// BudgetHandler handles budget version endpoints
type BudgetHandler struct {
	BaseHandler
	budgetService *budgetapp.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *budgetapp.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateBaseline approves a job and captures its PRECAP/CAPOUT pair
func (h *BudgetHandler) CreateBaseline(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Missing tenant context")
		return
	}

	var req budgetapp.CreateBaselineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.budgetService.CreateInitialVersions(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetVersions returns both budget versions of a job
func (h *BudgetHandler) GetVersions(c *gin.Context) {
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

	versions, err := h.budgetService.GetVersions(c.Request.Context(), tenantID, jobID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, versions)
}

// RefreshCapout recomputes the live summary from the ledger and mirror
func (h *BudgetHandler) RefreshCapout(c *gin.Context) {
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

	resp, err := h.budgetService.RefreshCapout(c.Request.Context(), tenantID, jobID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
