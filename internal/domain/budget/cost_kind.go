package budget

import "strings"

// CostKind classifies a priced line or a recorded outlay.
// The same vocabulary is used for estimate line items and cost events.
type CostKind string

const (
	CostKindMaterial CostKind = "material"
	CostKindLabor    CostKind = "labor"
	CostKindOther    CostKind = "other"
)

// ParseCostKind normalizes a kind string case-insensitively.
// Returns false when the value is not a known kind.
func ParseCostKind(s string) (CostKind, bool) {
	switch CostKind(strings.ToLower(strings.TrimSpace(s))) {
	case CostKindMaterial:
		return CostKindMaterial, true
	case CostKindLabor:
		return CostKindLabor, true
	case CostKindOther:
		return CostKindOther, true
	}
	return "", false
}

// IsValid checks if the kind is a valid CostKind (case-insensitive)
func (k CostKind) IsValid() bool {
	_, ok := ParseCostKind(string(k))
	return ok
}

// Normalize returns the canonical lowercase form of the kind
func (k CostKind) Normalize() CostKind {
	n, _ := ParseCostKind(string(k))
	return n
}

// String returns the string representation of CostKind
func (k CostKind) String() string {
	return string(k)
}
