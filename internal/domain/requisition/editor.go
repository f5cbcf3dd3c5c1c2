package requisition

import (
	"time"

	"substock/internal/core/apperror"
	"substock/internal/core/types"
)

// Multiplier selects which suggestion column an editor operation uses.
type Multiplier string

const (
	Multiplier12 Multiplier = "1.2"
	Multiplier15 Multiplier = "1.5"
)

// Editor holds the mutable working set of one requisition session. It is
// owned by a single interactive session; callers serialize access through
// the session service.
type Editor struct {
	lines []Item
}

// NewEditor creates an editor over a private copy of the forecast lines.
func NewEditor(lines []Item) *Editor {
	working := make([]Item, len(lines))
	copy(working, lines)
	return &Editor{lines: working}
}

// Lines returns a copy of the working set.
func (e *Editor) Lines() []Item {
	out := make([]Item, len(e.lines))
	copy(out, e.lines)
	return out
}

// SetManualOrder sets the ordered quantity on the matching line and selects
// it when the quantity is positive. Negative input is clamped to 0. A miss
// on the (code, lot) key is a no-op.
func (e *Editor) SetManualOrder(code, lotNo string, qty int64) {
	if qty < 0 {
		qty = 0
	}
	for i := range e.lines {
		if e.lines[i].Code == code && e.lines[i].LotNo == lotNo {
			e.lines[i].ManualOrder = qty
			e.lines[i].IsSelected = qty > 0
			return
		}
	}
}

// ApplySuggestion overwrites every line's manual order with its precomputed
// suggestion and re-derives selection from it. Prior manual edits are
// discarded; a line whose suggestion is 0 becomes deselected even if it was
// selected by hand.
func (e *Editor) ApplySuggestion(m Multiplier) error {
	if m != Multiplier12 && m != Multiplier15 {
		return apperror.NewValidation("multiplier must be 1.2 or 1.5").
			WithDetail("multiplier", string(m))
	}

	for i := range e.lines {
		suggested := e.lines[i].Suggested12
		if m == Multiplier15 {
			suggested = e.lines[i].Suggested15
		}
		e.lines[i].ManualOrder = suggested
		e.lines[i].IsSelected = suggested > 0
	}
	return nil
}

// ToggleSelected flips selection on the matching line without touching its
// manual order. A miss is a no-op.
func (e *Editor) ToggleSelected(code, lotNo string) {
	for i := range e.lines {
		if e.lines[i].Code == code && e.lines[i].LotNo == lotNo {
			e.lines[i].IsSelected = !e.lines[i].IsSelected
			return
		}
	}
}

// SelectAll sets selection uniformly across all lines.
func (e *Editor) SelectAll(flag bool) {
	for i := range e.lines {
		e.lines[i].IsSelected = flag
	}
}

// SelectedLines returns the currently selected lines.
func (e *Editor) SelectedLines() []Item {
	var out []Item
	for _, line := range e.lines {
		if line.IsSelected {
			out = append(out, line)
		}
	}
	return out
}

// SelectedTotal is the estimated value of the selection: the sum of
// manualOrder times unit price over selected lines. Recomputed on every
// call, never cached.
func (e *Editor) SelectedTotal() types.Money {
	total := types.Zero()
	for _, line := range e.lines {
		if !line.IsSelected {
			continue
		}
		total = total.Add(line.Price.Mul(types.NewMoney(float64(line.ManualOrder))))
	}
	return total
}

// Document is a finalized requisition: an immutable snapshot handed to the
// print/export collaborator.
type Document struct {
	DocID     string      `json:"docId"`
	Requester string      `json:"requester"`
	CreatedAt time.Time   `json:"createdAt"`
	Lines     []Item      `json:"lines"`
	Total     types.Money `json:"total"`
}

// Finalize produces the document for the current selection. It is refused
// when nothing is selected or no requester was chosen; the working set is
// left untouched on refusal so the user can correct and retry.
func (e *Editor) Finalize(requester, docID string, now time.Time) (Document, error) {
	if requester == "" {
		return Document{}, apperror.NewBusinessRule(apperror.CodeNoRequester,
			"a requester must be chosen before finalizing")
	}

	selected := e.SelectedLines()
	if len(selected) == 0 {
		return Document{}, apperror.NewBusinessRule(apperror.CodeNothingSelected,
			"at least one line must be selected before finalizing")
	}

	return Document{
		DocID:     docID,
		Requester: requester,
		CreatedAt: now,
		Lines:     selected,
		Total:     e.SelectedTotal(),
	}, nil
}
