package requisition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"substock/internal/core/apperror"
	"substock/internal/core/types"
	"substock/internal/domain/inventory"
)

func editorLines() []Item {
	return Forecast([]inventory.Item{
		invItem("ABC123", "L1", 10, 50, -200, "5.00"), // suggested: 50 / 65
		invItem("XYZ789", "L1", 70, 50, -280, "10.00"),
		invItem("DEF456", "L2", 50, 50, -40, "2.00"), // needs order, suggestion 0
	})
}

func TestEditor_SetManualOrder(t *testing.T) {
	e := NewEditor(editorLines())

	e.SetManualOrder("XYZ789", "L1", 30)

	lines := e.Lines()
	assert.Equal(t, int64(30), lines[1].ManualOrder)
	assert.True(t, lines[1].IsSelected, "a positive quantity selects the line")

	e.SetManualOrder("XYZ789", "L1", 0)
	assert.False(t, e.Lines()[1].IsSelected, "a zero quantity deselects it again")
}

func TestEditor_SetManualOrderClampsNegative(t *testing.T) {
	e := NewEditor(editorLines())

	e.SetManualOrder("ABC123", "L1", -5)

	lines := e.Lines()
	assert.Equal(t, int64(0), lines[0].ManualOrder)
	assert.False(t, lines[0].IsSelected)
}

func TestEditor_SetManualOrderUnknownKeyIsNoop(t *testing.T) {
	e := NewEditor(editorLines())
	before := e.Lines()

	e.SetManualOrder("ABC123", "NO-SUCH-LOT", 99)

	assert.Equal(t, before, e.Lines())
}

func TestEditor_ApplySuggestionOverwritesManualEdits(t *testing.T) {
	e := NewEditor(editorLines())

	// Hand-edit two lines, including one whose suggestion is 0.
	e.SetManualOrder("XYZ789", "L1", 30)
	e.SetManualOrder("DEF456", "L2", 7)

	err := e.ApplySuggestion(Multiplier15)
	assert.NoError(t, err)

	lines := e.Lines()
	assert.Equal(t, int64(65), lines[0].ManualOrder)
	assert.True(t, lines[0].IsSelected)

	assert.Equal(t, int64(0), lines[1].ManualOrder, "healthy line has no suggestion")
	assert.False(t, lines[1].IsSelected, "manual edit is discarded, not merged")

	assert.Equal(t, int64(0), lines[2].ManualOrder)
	assert.False(t, lines[2].IsSelected, "a zero suggestion deselects even a hand-selected line")
}

func TestEditor_ApplySuggestionRejectsUnknownMultiplier(t *testing.T) {
	e := NewEditor(editorLines())

	err := e.ApplySuggestion(Multiplier("2.0"))

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestEditor_ToggleDoesNotTouchQuantity(t *testing.T) {
	e := NewEditor(editorLines())
	e.SetManualOrder("ABC123", "L1", 50)

	e.ToggleSelected("ABC123", "L1")
	lines := e.Lines()
	assert.False(t, lines[0].IsSelected)
	assert.Equal(t, int64(50), lines[0].ManualOrder, "toggling keeps the quantity")

	e.ToggleSelected("ABC123", "L1")
	assert.True(t, e.Lines()[0].IsSelected)
}

func TestEditor_SelectAll(t *testing.T) {
	e := NewEditor(editorLines())

	e.SelectAll(true)
	for _, l := range e.Lines() {
		assert.True(t, l.IsSelected)
	}

	e.SelectAll(false)
	for _, l := range e.Lines() {
		assert.False(t, l.IsSelected)
	}
}

func TestEditor_SelectedTotal(t *testing.T) {
	e := NewEditor(editorLines())

	// 50 units at 5.00 on the selected low line.
	e.SetManualOrder("ABC123", "L1", 50)
	assert.True(t, e.SelectedTotal().Equal(types.MustMoney("250")))

	// A selected line with quantity 0 contributes nothing.
	e.ToggleSelected("DEF456", "L2")
	assert.True(t, e.SelectedTotal().Equal(types.MustMoney("250")))

	// Deselecting removes the contribution; the quantity stays put.
	e.ToggleSelected("ABC123", "L1")
	assert.True(t, e.SelectedTotal().IsZero())
	e.ToggleSelected("ABC123", "L1")
	assert.True(t, e.SelectedTotal().Equal(types.MustMoney("250")))
}

func TestEditor_FinalizeRefusals(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	t.Run("no requester", func(t *testing.T) {
		e := NewEditor(editorLines())
		e.SetManualOrder("ABC123", "L1", 50)

		_, err := e.Finalize("", "REQ-20240115-001", now)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeNoRequester, appErr.Code)
	})

	t.Run("nothing selected", func(t *testing.T) {
		e := NewEditor(editorLines())
		e.SelectAll(false)

		_, err := e.Finalize("Ward 3 East", "REQ-20240115-001", now)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeNothingSelected, appErr.Code)
	})

	t.Run("working set survives refusal", func(t *testing.T) {
		e := NewEditor(editorLines())
		e.SetManualOrder("ABC123", "L1", 50)
		before := e.Lines()

		_, err := e.Finalize("", "REQ-20240115-001", now)
		assert.Error(t, err)
		assert.Equal(t, before, e.Lines())

		// Correct the problem and retry on the same editor. DEF456 sits at
		// its threshold, so it is pre-selected and rides along at quantity 0.
		doc, err := e.Finalize("Ward 3 East", "REQ-20240115-001", now)
		assert.NoError(t, err)
		assert.Len(t, doc.Lines, 2)
		assert.True(t, doc.Total.Equal(types.MustMoney("250")), "total %s", doc.Total)
	})
}

func TestEditor_FinalizeDocument(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	e := NewEditor(editorLines())
	e.SetManualOrder("ABC123", "L1", 50)
	e.SetManualOrder("XYZ789", "L1", 10)

	doc, err := e.Finalize("Ward 3 East", "REQ-20240115-042", now)
	assert.NoError(t, err)

	assert.Equal(t, "REQ-20240115-042", doc.DocID)
	assert.Equal(t, "Ward 3 East", doc.Requester)
	assert.Equal(t, now, doc.CreatedAt)

	// Both edited lines plus the pre-selected threshold line at quantity 0.
	assert.Len(t, doc.Lines, 3)
	// 50*5.00 + 10*10.00 + 0*2.00
	assert.True(t, doc.Total.Equal(types.MustMoney("350")), "total %s", doc.Total)
}
