package ledger

import (
	"encoding/csv"
	"math"
	"strconv"
	"strings"
	"time"

	"substock/internal/core/types"
)

// Expected column order:
// dispno, date, department, code, name, amount, pack, price, lotno, barcode, expdate.
// The first line is treated as a header. Rows with fewer than 5 fields are
// dropped; missing trailing fields fall back to defaults.
const minCSVFields = 5

// ParseCSV converts uploaded CSV text into ledger records. The import mode
// forces the amount sign (IN records positive, OUT records negative)
// regardless of the sign in the file. Parsing is total: malformed fields are
// defaulted, never rejected, so the derivation core always sees fully
// populated records.
func ParseCSV(data []byte, mode Kind, now time.Time) []Record {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil || len(rows) == 0 {
		return nil
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < minCSVFields {
			continue
		}

		rec := Record{
			DispNo:     fieldOr(row, 0, "-"),
			Date:       fieldOr(row, 1, now.Format("2006-01-02")),
			Department: fieldOr(row, 2, "-"),
			Code:       fieldOr(row, 3, ""),
			Name:       fieldOr(row, 4, "Unknown"),
			Amount:     parseAmount(fieldOr(row, 5, "0")),
			Pack:       fieldOr(row, 6, "1"),
			Price:      parsePrice(fieldOr(row, 7, "0")),
			LotNo:      fieldOr(row, 8, "-"),
			Barcode:    fieldOr(row, 9, "-"),
			ExpDate:    fieldOr(row, 10, "-"),
			Timestamp:  now.UnixMilli(),
			Kind:       mode,
		}

		if mode == KindOut {
			rec.Amount = -abs(rec.Amount)
		} else {
			rec.Amount = abs(rec.Amount)
		}

		records = append(records, rec)
	}

	return records
}

func fieldOr(row []string, idx int, def string) string {
	if idx >= len(row) {
		return def
	}
	v := strings.TrimSpace(row[idx])
	if v == "" {
		return def
	}
	return v
}

func parseAmount(s string) int64 {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	// Some exports carry fractional amounts; round to whole packs.
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(math.Round(f))
	}
	return 0
}

func parsePrice(s string) types.Money {
	if m, err := types.NewMoneyFromString(s); err == nil {
		return m
	}
	return types.Zero()
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
