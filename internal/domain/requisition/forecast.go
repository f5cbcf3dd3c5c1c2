// Package requisition implements the reorder workflow: forecasting suggested
// quantities from the inventory state, interactive per-line adjustment, and
// finalization into an immutable printable document.
package requisition

import (
	"math"

	"substock/internal/domain/inventory"
)

// weeksLookback is the fixed divisor for the weekly usage rate. The whole
// ledger history is divided by four weeks regardless of its actual span;
// this is a deliberate simplification, not a rolling window.
const weeksLookback = 4

// Item is one requisition line: an inventory entry plus forecast fields and
// the user's working edits.
type Item struct {
	inventory.Item

	// UsageRatePerWeek is |totalOut| / 4, rounded to 2 decimals for display
	UsageRatePerWeek float64 `json:"usageRatePerWeek"`

	// Suggested12 and Suggested15 are the buffered reorder quantities
	Suggested12 int64 `json:"suggested1_2"`
	Suggested15 int64 `json:"suggested1_5"`

	// ManualOrder is the user-entered quantity, 0 until edited
	ManualOrder int64 `json:"manualOrder"`

	// IsSelected marks the line for inclusion in the final document
	IsSelected bool `json:"isSelected"`
}

// Forecast builds one requisition line per inventory entry, in the same
// order, without mutating the input.
//
// Suggestions are computed from the unrounded weekly rate; only the reported
// rate is rounded. A line needs ordering when balance <= minStock — the same
// predicate and tie-break as the LOW/EMPTY classification. Lines that need
// ordering start selected with a zero manual order, so a suggestion or a
// manual entry must be applied before the selected total is meaningful.
func Forecast(items []inventory.Item) []Item {
	lines := make([]Item, 0, len(items))

	for _, it := range items {
		rate := float64(absInt64(it.TotalOut)) / weeksLookback
		needsOrder := it.Balance <= it.MinStock

		var s12, s15 int64
		if needsOrder {
			s12 = clampNonNegative(ceilInt64(rate*1.2) - it.Balance)
			s15 = clampNonNegative(ceilInt64(rate*1.5) - it.Balance)
		}

		lines = append(lines, Item{
			Item:             it,
			UsageRatePerWeek: math.Round(rate*100) / 100,
			Suggested12:      s12,
			Suggested15:      s15,
			ManualOrder:      0,
			IsSelected:       needsOrder,
		})
	}

	return lines
}

func ceilInt64(f float64) int64 {
	return int64(math.Ceil(f))
}

func clampNonNegative(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}

func absInt64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
