package handler

import (
	"github.com/gin-gonic/gin"
	commissionapp "github.com/roofline/backend/internal/application/commission"
	"github.com/roofline/backend/internal/infrastructure/telemetry"
)

// CommissionHandler handles commission plan and calculation endpoints
type CommissionHandler struct {
	BaseHandler
	commissionService *commissionapp.CommissionService
	metrics           *telemetry.BusinessMetrics
}

// NewCommissionHandler creates a new CommissionHandler
func NewCommissionHandler(commissionService *commissionapp.CommissionService) *CommissionHandler {
	return &CommissionHandler{commissionService: commissionService}
}

// SetMetrics enables business metric recording for calculations
func (h *CommissionHandler) SetMetrics(metrics *telemetry.BusinessMetrics) {
	h.metrics = metrics
}

// CreatePlan creates a commission plan
func (h *CommissionHandler) CreatePlan(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Missing tenant context")
		return
	}

	var req commissionapp.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.commissionService.CreatePlan(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// DeactivatePlan retires a plan; existing assignments stop resolving to it
func (h *CommissionHandler) DeactivatePlan(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Missing tenant context")
		return
	}

	planID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid plan ID")
		return
	}

	if err := h.commissionService.DeactivatePlan(c.Request.Context(), tenantID, planID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListPlans returns a page of the tenant's commission plans
func (h *CommissionHandler) ListPlans(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Missing tenant context")
		return
	}

	var filter commissionapp.PlanListFilter
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

	plans, total, err := h.commissionService.ListPlans(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, plans, total, filter.Page, filter.PageSize)
}

// AssignPlan assigns a plan to a representative
func (h *CommissionHandler) AssignPlan(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Missing tenant context")
		return
	}

	var req commissionapp.AssignPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.commissionService.AssignPlan(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Calculate computes the commission for a job from its live CAPOUT
// numbers and the rep's currently resolved plan
func (h *CommissionHandler) Calculate(c *gin.Context) {
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

	result, err := h.commissionService.CalculateCommission(c.Request.Context(), tenantID, jobID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordCommissionCalculation(c.Request.Context(), tenantID.String(), string(result.PlanType), result.NoActivePlan)
	}

	h.Success(c, result)
}
