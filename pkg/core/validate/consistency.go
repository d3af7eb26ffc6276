package validate

import (
	"math"

	"xbrl_tagging/pkg/core/tagging"
)

// =============================================================================
// STATEMENT CONSISTENCY CHECKS
// =============================================================================
// Tagged values must keep their calculation relationships: the accounting
// equation for the statement of financial position, and totals matching the
// sum of their components.

// BalanceCheck verifies Assets = Liabilities + Equity.
type BalanceCheck struct {
	TotalAssets      float64 `json:"total_assets"`
	TotalLiabilities float64 `json:"total_liabilities"`
	TotalEquity      float64 `json:"total_equity"`
	ComputedAssets   float64 `json:"computed_assets"` // L + E
	Difference       float64 `json:"difference"`
	IsBalanced       bool    `json:"is_balanced"`
	Tolerance        float64 `json:"tolerance"`
}

// CheckBalanceEquation validates A = L + E within tolerance.
func CheckBalanceEquation(assets, liabilities, equity, tolerance float64) *BalanceCheck {
	computed := liabilities + equity
	diff := assets - computed

	return &BalanceCheck{
		TotalAssets:      assets,
		TotalLiabilities: liabilities,
		TotalEquity:      equity,
		ComputedAssets:   computed,
		Difference:       diff,
		IsBalanced:       math.Abs(diff) <= tolerance,
		Tolerance:        tolerance,
	}
}

// CheckSectionBalance runs the accounting equation over a tagged financial
// position section when all three totals are present as numeric values.
// Returns nil when any of them is missing or non-numeric.
func CheckSectionBalance(section *tagging.TaggedSection, tolerance float64) *BalanceCheck {
	if section == nil {
		return nil
	}
	assets, okA := numericField(section, "TotalAssets")
	liabilities, okL := numericField(section, "TotalLiabilities")
	equity, okE := numericField(section, "TotalEquity")
	if !okA || !okL || !okE {
		return nil
	}
	return CheckBalanceEquation(assets, liabilities, equity, tolerance)
}

func numericField(section *tagging.TaggedSection, field string) (float64, bool) {
	element, ok := section.Fields[field]
	if !ok || element == nil {
		return 0, false
	}
	switch v := element.Value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
