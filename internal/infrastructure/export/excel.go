// Package export renders finalized requisitions as XLSX workbooks for
// printing and archival.
package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"substock/internal/core/types"
	"substock/internal/domain/requisition"
)

const sheetName = "Requisition"

// headerRows is the size of the document header block above the line table.
const headerRows = 4

// WriteRequisition renders the document into w as an XLSX workbook: a header
// block with the document identity, one row per line, and a grand total row.
func WriteRequisition(w io.Writer, doc requisition.Document) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	// Header block
	f.SetCellValue(sheetName, "A1", "Requisition No.")
	f.SetCellValue(sheetName, "B1", doc.DocID)
	f.SetCellValue(sheetName, "A2", "Date")
	f.SetCellValue(sheetName, "B2", doc.CreatedAt.Format("2006-01-02"))
	f.SetCellValue(sheetName, "A3", "Requested by")
	f.SetCellValue(sheetName, "B3", doc.Requester)

	// Column headers
	headings := []string{"Code", "Name", "Pack", "Lot No.", "Balance", "Order Qty", "Unit Price", "Amount"}
	for i, h := range headings {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRows+1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		f.SetCellValue(sheetName, cell, h)
	}

	// Lines
	for i, line := range doc.Lines {
		row := headerRows + 2 + i
		amount := line.Price.Mul(decimalFromInt(line.ManualOrder))
		values := []any{
			line.Code,
			line.Name,
			line.Pack,
			line.LotNo,
			line.Balance,
			line.ManualOrder,
			moneyValue(line.Price),
			moneyValue(amount),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("line cell: %w", err)
			}
			f.SetCellValue(sheetName, cell, v)
		}
	}

	// Grand total
	totalRow := headerRows + 2 + len(doc.Lines)
	totalLabel, _ := excelize.CoordinatesToCellName(len(headings)-1, totalRow)
	totalCell, _ := excelize.CoordinatesToCellName(len(headings), totalRow)
	f.SetCellValue(sheetName, totalLabel, "Total")
	f.SetCellValue(sheetName, totalCell, moneyValue(doc.Total))

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}

// Filename is the suggested download name for a document.
func Filename(doc requisition.Document) string {
	return doc.DocID + ".xlsx"
}

func decimalFromInt(n int64) types.Money {
	return decimal.NewFromInt(n)
}

// moneyValue converts a price to the float representation excelize stores.
// Precision loss is acceptable for display cells.
func moneyValue(m types.Money) float64 {
	return m.InexactFloat64()
}
