package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/roofline/backend/internal/application/identity"
)

// RepresentativeHandler handles sales representative endpoints
type RepresentativeHandler struct {
	BaseHandler
	repService *identityapp.RepresentativeService
}

// NewRepresentativeHandler creates a new RepresentativeHandler
func NewRepresentativeHandler(repService *identityapp.RepresentativeService) *RepresentativeHandler {
	return &RepresentativeHandler{repService: repService}
}

// Create adds a representative
func (h *RepresentativeHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Missing tenant context")
		return
	}

	var req identityapp.CreateRepresentativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.repService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get returns one representative
func (h *RepresentativeHandler) Get(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Missing tenant context")
		return
	}

	repID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid representative ID")
		return
	}

	resp, err := h.repService.Get(c.Request.Context(), tenantID, repID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns a page of the tenant's representatives
func (h *RepresentativeHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Missing tenant context")
		return
	}

	var filter identityapp.RepListFilter
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

	reps, total, err := h.repService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, reps, total, filter.Page, filter.PageSize)
}

// UpdateOverheadRate changes a rep's overhead share
func (h *RepresentativeHandler) UpdateOverheadRate(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Missing tenant context")
		return
	}

	repID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid representative ID")
		return
	}

	var req identityapp.UpdateOverheadRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.repService.UpdateOverheadRate(c.Request.Context(), tenantID, repID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
