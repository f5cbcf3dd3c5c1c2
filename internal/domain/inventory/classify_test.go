package inventory

import (
	"testing"
	"time"
)

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		name     string
		balance  int64
		minStock int64
		want     StockStatus
	}{
		{name: "zero balance", balance: 0, minStock: 50, want: StatusEmpty},
		{name: "negative balance", balance: -5, minStock: 0, want: StatusEmpty},
		{name: "below threshold", balance: 10, minStock: 50, want: StatusLow},
		{name: "exactly at threshold is LOW", balance: 70, minStock: 70, want: StatusLow},
		{name: "above threshold", balance: 70, minStock: 50, want: StatusNormal},
		{name: "no threshold configured", balance: 1, minStock: 0, want: StatusNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyStock(tt.balance, tt.minStock); got != tt.want {
				t.Errorf("ClassifyStock(%d, %d) = %s, want %s", tt.balance, tt.minStock, got, tt.want)
			}
		})
	}
}

func TestClassifyExpiry_Boundaries(t *testing.T) {
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		expDate  string
		want     ExpiryStatus
		wantDays int
	}{
		{name: "90 days out is OK", expDate: "2024-04-14", want: ExpiryOK, wantDays: 90},
		{name: "89 days out is NEAR", expDate: "2024-04-13", want: ExpiryNear, wantDays: 89},
		{name: "today is NEAR", expDate: "2024-01-15", want: ExpiryNear, wantDays: 0},
		{name: "yesterday is EXPIRED", expDate: "2024-01-14", want: ExpiryExpired, wantDays: -1},
		{name: "unparseable date is OK", expDate: "-", want: ExpiryOK, wantDays: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, days := ClassifyExpiry(tt.expDate, now)
			if status != tt.want || days != tt.wantDays {
				t.Errorf("ClassifyExpiry(%q) = (%s, %d), want (%s, %d)",
					tt.expDate, status, days, tt.want, tt.wantDays)
			}
		})
	}
}

func TestDaysToExpire_PartialDayRoundsUp(t *testing.T) {
	// Half a day before midnight of the expiry date still counts as one day.
	now := time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)

	days, ok := DaysToExpire("2024-01-15", now)
	if !ok {
		t.Fatal("expected a parseable date")
	}
	if days != 1 {
		t.Errorf("half a remaining day must round up to 1, got %d", days)
	}
}

func TestDaysToExpire_NegativeFractionRoundsTowardZero(t *testing.T) {
	// Noon on the expiry date itself: -0.5 days ceils to 0, not -1, so an
	// item expiring earlier today is still NEAR rather than EXPIRED.
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	days, ok := DaysToExpire("2024-01-15", now)
	if !ok {
		t.Fatal("expected a parseable date")
	}
	if days != 0 {
		t.Errorf("-0.5 days must ceil to 0, got %d", days)
	}

	status, _ := ClassifyExpiry("2024-01-15", now)
	if status != ExpiryNear {
		t.Errorf("expiring today must classify NEAR, got %s", status)
	}
}
