package handler

import (
	"github.com/gin-gonic/gin"
	jobapp "github.com/roofline/backend/internal/application/job"
)

// JobHandler handles job and estimate endpoints
type JobHandler struct {
	BaseHandler
	jobService *jobapp.JobService
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(jobService *jobapp.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// Create creates a draft job
func (h *JobHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Missing tenant context")
		return
	}

	var req jobapp.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.jobService.CreateJob(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get returns one job
func (h *JobHandler) Get(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Missing tenant context")
		return
	}

	jobID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid job ID")
		return
	}

	resp, err := h.jobService.GetJob(c.Request.Context(), tenantID, jobID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns a page of the tenant's jobs
func (h *JobHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Missing tenant context")
		return
	}

	var filter jobapp.JobListFilter
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

	jobs, total, err := h.jobService.ListJobs(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, jobs, total, filter.Page, filter.PageSize)
}

// CreateEstimate drafts an estimate for a job
func (h *JobHandler) CreateEstimate(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Missing tenant context")
		return
	}

	var req jobapp.CreateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.jobService.CreateEstimate(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetEstimate returns one estimate
func (h *JobHandler) GetEstimate(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Missing tenant context")
		return
	}

	estimateID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid estimate ID")
		return
	}

	resp, err := h.jobService.GetEstimate(c.Request.Context(), tenantID, estimateID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
