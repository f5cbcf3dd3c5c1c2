package inventory

import (
	"math"
	"time"
)

// NearExpiryDays is the warning window. Exactly 90 days out is still OK;
// the NEAR band is [0, 90).
const NearExpiryDays = 90

const dateLayout = "2006-01-02"

// ClassifyStock derives the stock status from balance and threshold.
// A balance exactly at the threshold is LOW, not NORMAL.
func ClassifyStock(balance, minStock int64) StockStatus {
	switch {
	case balance <= 0:
		return StatusEmpty
	case balance <= minStock:
		return StatusLow
	default:
		return StatusNormal
	}
}

// DaysToExpire returns the whole days until the expiry date, rounding a
// partial remaining day up and a negative fraction toward zero, so a lot
// expiring later today reports 0 rather than -1. Returns ok=false when the
// date does not parse (the ingestion default "-"); such lots never warn.
func DaysToExpire(expDate string, now time.Time) (days int, ok bool) {
	exp, err := time.ParseInLocation(dateLayout, expDate, now.Location())
	if err != nil {
		return 0, false
	}
	diff := exp.Sub(now)
	return int(math.Ceil(diff.Hours() / 24)), true
}

// ClassifyExpiry derives the expiry status and the day count for an expiry
// date string at the given evaluation time.
func ClassifyExpiry(expDate string, now time.Time) (ExpiryStatus, int) {
	days, ok := DaysToExpire(expDate, now)
	if !ok {
		return ExpiryOK, 0
	}
	switch {
	case days < 0:
		return ExpiryExpired, days
	case days < NearExpiryDays:
		return ExpiryNear, days
	default:
		return ExpiryOK, days
	}
}

// ApplyStatus re-derives status fields on every item in place. Statuses are
// pure functions of balance/minStock and expDate/now; they are never carried
// over from a previous evaluation because "now" moves continuously.
func ApplyStatus(items []Item, now time.Time) {
	for idx := range items {
		it := &items[idx]
		it.Status = ClassifyStock(it.Balance, it.MinStock)
		it.ExpStatus, it.DaysToExpire = ClassifyExpiry(it.ExpDate, now)
	}
}
