package requisition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"substock/internal/core/types"
	"substock/internal/domain/inventory"
)

func invItem(code, lot string, balance, minStock, totalOut int64, price string) inventory.Item {
	return inventory.Item{
		Code:     code,
		LotNo:    lot,
		Name:     "Drug " + code,
		Balance:  balance,
		MinStock: minStock,
		TotalOut: totalOut,
		Price:    types.MustMoney(price),
	}
}

func TestForecast_HealthyItemGetsNoSuggestion(t *testing.T) {
	// balance 70, minStock 50, totalOut -280: rate 70/week but stock is above
	// the threshold, so no order is proposed.
	lines := Forecast([]inventory.Item{invItem("ABC123", "L1", 70, 50, -280, "10.00")})

	assert.Len(t, lines, 1)
	assert.Equal(t, 70.0, lines[0].UsageRatePerWeek)
	assert.Equal(t, int64(0), lines[0].Suggested12)
	assert.Equal(t, int64(0), lines[0].Suggested15)
	assert.Equal(t, int64(0), lines[0].ManualOrder)
	assert.False(t, lines[0].IsSelected)
}

func TestForecast_LowItemGetsBufferedSuggestions(t *testing.T) {
	// balance 10, minStock 50, totalOut -200: rate 50/week.
	// 1.2x: ceil(60) - 10 = 50. 1.5x: ceil(75) - 10 = 65.
	lines := Forecast([]inventory.Item{invItem("XYZ789", "L1", 10, 50, -200, "5.00")})

	assert.Equal(t, 50.0, lines[0].UsageRatePerWeek)
	assert.Equal(t, int64(50), lines[0].Suggested12)
	assert.Equal(t, int64(65), lines[0].Suggested15)
	assert.True(t, lines[0].IsSelected, "an item needing an order starts selected")
	assert.Equal(t, int64(0), lines[0].ManualOrder, "selection does not imply a quantity")
}

func TestForecast_SuggestionsUseUnroundedRate(t *testing.T) {
	// totalOut -7: rate 1.75. Display rounds to 1.75 anyway, but the ceil must
	// be taken over rate*multiplier before any rounding: ceil(1.75*1.2) =
	// ceil(2.1) = 3.
	lines := Forecast([]inventory.Item{invItem("A", "L1", 0, 0, -7, "1.00")})

	assert.Equal(t, 1.75, lines[0].UsageRatePerWeek)
	assert.Equal(t, int64(3), lines[0].Suggested12)
	assert.Equal(t, int64(3), lines[0].Suggested15) // ceil(2.625) = 3
}

func TestForecast_DisplayRateRoundsToTwoDecimals(t *testing.T) {
	// totalOut -10: 10/4 = 2.5 exactly. totalOut -1: 0.25.
	// totalOut -333: 83.25.
	lines := Forecast([]inventory.Item{
		invItem("A", "L1", 100, 0, -10, "1.00"),
		invItem("B", "L1", 100, 0, -1, "1.00"),
	})

	assert.Equal(t, 2.5, lines[0].UsageRatePerWeek)
	assert.Equal(t, 0.25, lines[1].UsageRatePerWeek)
}

func TestForecast_NegativeBalanceNeverInflatesSuggestion(t *testing.T) {
	// A negative balance increases the deficit: ceil(1.2*1) - (-3) = 5.
	lines := Forecast([]inventory.Item{invItem("A", "L1", -3, 0, -4, "1.00")})

	assert.Equal(t, int64(5), lines[0].Suggested12)
}

func TestForecast_SuggestionClampsAtZero(t *testing.T) {
	// needsOrder can hold while the buffered target is already covered:
	// balance 50 == minStock 50, rate 10, ceil(12) - 50 < 0 clamps to 0.
	lines := Forecast([]inventory.Item{invItem("A", "L1", 50, 50, -40, "1.00")})

	assert.True(t, lines[0].IsSelected)
	assert.Equal(t, int64(0), lines[0].Suggested12)
	assert.Equal(t, int64(0), lines[0].Suggested15)
}

func TestForecast_NoUsageHistory(t *testing.T) {
	lines := Forecast([]inventory.Item{invItem("A", "L1", 0, 10, 0, "1.00")})

	assert.Equal(t, 0.0, lines[0].UsageRatePerWeek)
	assert.Equal(t, int64(0), lines[0].Suggested12)
	assert.True(t, lines[0].IsSelected, "empty stock still needs an order even without history")
}

func TestForecast_PreservesInputOrder(t *testing.T) {
	items := []inventory.Item{
		invItem("C", "L1", 1, 0, 0, "1.00"),
		invItem("A", "L2", 1, 0, 0, "1.00"),
		invItem("B", "L1", 1, 0, 0, "1.00"),
	}

	lines := Forecast(items)

	codes := make([]string, len(lines))
	for i, l := range lines {
		codes[i] = l.Code
	}
	assert.Equal(t, []string{"C", "A", "B"}, codes)
}
