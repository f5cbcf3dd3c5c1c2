package inventory

import (
	"substock/internal/domain/ledger"
	"substock/internal/domain/settings"
)

// Aggregate folds the full ledger plus the configuration snapshot into one
// entry per (code, lot) pair, in ledger discovery order.
//
// Descriptive fields (name, pack, price) are first write wins: the first
// record seen for a key populates them and later records never overwrite.
// Balance fields accumulate across the whole group. LastUpdate is the
// lexicographic maximum of the group's ISO dates, which equals the
// chronological maximum for YYYY-MM-DD strings.
//
// Status fields are left zero; callers run ApplyStatus with the evaluation
// time. Aggregate is total — it never fails, because records arrive fully
// defaulted from the ingestion boundary.
func Aggregate(records []ledger.Record, snap settings.Snapshot) []Item {
	byKey := make(map[Key]*Item, len(records))
	order := make([]Key, 0, len(records))

	for _, rec := range records {
		key := Key{Code: rec.Code, LotNo: rec.LotNo}

		item, seen := byKey[key]
		if !seen {
			item = &Item{
				Code:     rec.Code,
				Name:     rec.Name,
				Pack:     rec.Pack,
				LotNo:    rec.LotNo,
				ExpDate:  rec.ExpDate,
				MinStock: snap.MinStockFor(rec.Code),
				Cabinet:  snap.CabinetFor(rec.Code),
				Price:    rec.Price,
			}
			byKey[key] = item
			order = append(order, key)
		}

		if rec.Amount > 0 {
			item.TotalIn += rec.Amount
		} else {
			item.TotalOut += rec.Amount
		}
		item.Balance += rec.Amount

		if rec.Date > item.LastUpdate {
			item.LastUpdate = rec.Date
		}
	}

	items := make([]Item, 0, len(order))
	for _, key := range order {
		items = append(items, *byKey[key])
	}
	return items
}
