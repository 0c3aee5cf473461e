package persistence

import (
	"strings"
)

// ValidateSortOrder normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	if strings.ToUpper(strings.TrimSpace(orderDir)) == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist.
// Returns the defaultField if the input is empty or not whitelisted.
// Sort fields end up concatenated into ORDER BY clauses, so anything
// outside the whitelist is rejected.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// JobSortFields contains allowed sort fields for jobs
var JobSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"name":          true,
	"customer_name": true,
	"status":        true,
}

// CostEventSortFields contains allowed sort fields for cost events
var CostEventSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"kind":        true,
	"amount":      true,
	"incurred_at": true,
}

// PlanSortFields contains allowed sort fields for commission plans
var PlanSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"type":       true,
	"active":     true,
}

// RepresentativeSortFields contains allowed sort fields for representatives
var RepresentativeSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"name":          true,
	"email":         true,
	"overhead_rate": true,
	"active":        true,
}
