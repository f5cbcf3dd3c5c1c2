package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"substock/internal/core/types"
	"substock/internal/domain/inventory"
	"substock/internal/domain/requisition"
)

func sampleDocument() requisition.Document {
	return requisition.Document{
		DocID:     "REQ-20240115-042",
		Requester: "Ward 3 East",
		CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		Lines: []requisition.Item{
			{
				Item: inventory.Item{
					Code:    "ABC123",
					Name:    "Amoxicillin 500mg",
					Pack:    "10T",
					LotNo:   "L1",
					Balance: 10,
					Price:   types.MustMoney("5.00"),
				},
				ManualOrder: 50,
				IsSelected:  true,
			},
			{
				Item: inventory.Item{
					Code:    "XYZ789",
					Name:    "Paracetamol 500mg",
					Pack:    "100T",
					LotNo:   "L2",
					Balance: 70,
					Price:   types.MustMoney("10.00"),
				},
				ManualOrder: 10,
				IsSelected:  true,
			},
		},
		Total: types.MustMoney("350"),
	}
}

func TestWriteRequisition(t *testing.T) {
	var buf bytes.Buffer
	doc := sampleDocument()

	err := WriteRequisition(&buf, doc)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	assert.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue(sheetName, cell)
		assert.NoError(t, err)
		return v
	}

	assert.Equal(t, "REQ-20240115-042", get("B1"))
	assert.Equal(t, "2024-01-15", get("B2"))
	assert.Equal(t, "Ward 3 East", get("B3"))

	// Column headers sit below the header block.
	assert.Equal(t, "Code", get("A5"))
	assert.Equal(t, "Amount", get("H5"))

	// First line.
	assert.Equal(t, "ABC123", get("A6"))
	assert.Equal(t, "50", get("F6"))
	assert.Equal(t, "250", get("H6"))

	// Grand total below the last line.
	assert.Equal(t, "Total", get("G8"))
	assert.Equal(t, "350", get("H8"))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "REQ-20240115-042.xlsx", Filename(sampleDocument()))
}
