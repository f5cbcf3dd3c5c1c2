package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"substock/internal/core/types"
)

var importTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func TestParseCSV_InMode(t *testing.T) {
	data := []byte("dispno,date,department,code,name,amount,pack,price,lotno,barcode,expdate\n" +
		"D001,2024-01-01,IPD,ABC123,Paracetamol 500mg,100,10x10,1.50,L1,885001,2025-06-30\n")

	records := ParseCSV(data, KindIn, importTime)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	assert.Equal(t, "D001", rec.DispNo)
	assert.Equal(t, "2024-01-01", rec.Date)
	assert.Equal(t, "IPD", rec.Department)
	assert.Equal(t, "ABC123", rec.Code)
	assert.Equal(t, "Paracetamol 500mg", rec.Name)
	assert.Equal(t, int64(100), rec.Amount)
	assert.Equal(t, "10x10", rec.Pack)
	assert.True(t, types.MustMoney("1.50").Equal(rec.Price))
	assert.Equal(t, "L1", rec.LotNo)
	assert.Equal(t, "2025-06-30", rec.ExpDate)
	assert.Equal(t, KindIn, rec.Kind)
	assert.Equal(t, importTime.UnixMilli(), rec.Timestamp)
}

func TestParseCSV_OutModeForcesNegativeSign(t *testing.T) {
	data := []byte("header\n" +
		"D002,2024-01-10,IPD,ABC123,Paracetamol 500mg,30,10x10,1.50,L1,885001,2025-06-30\n")

	records := ParseCSV(data, KindOut, importTime)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Amount != -30 {
		t.Errorf("OUT import must store negative amount, got %d", records[0].Amount)
	}
	if records[0].Kind != KindOut {
		t.Errorf("expected OUT kind, got %s", records[0].Kind)
	}
}

func TestParseCSV_InModeForcesPositiveSign(t *testing.T) {
	data := []byte("header\n" +
		"D003,2024-01-10,IPD,ABC123,Paracetamol 500mg,-50,10x10,1.50,L1,885001,2025-06-30\n")

	records := ParseCSV(data, KindIn, importTime)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Amount != 50 {
		t.Errorf("IN import must store positive amount, got %d", records[0].Amount)
	}
}

func TestParseCSV_DropsShortRows(t *testing.T) {
	data := []byte("header\n" +
		"D004,2024-01-10,IPD,ABC123\n" + // 4 fields, dropped
		"\n" +
		"D005,2024-01-10,IPD,XYZ789,Ibuprofen 400mg,20,30x1,2.25,L9,885002,2025-01-31\n")

	records := ParseCSV(data, KindIn, importTime)

	if len(records) != 1 {
		t.Fatalf("expected short rows to be dropped, got %d records", len(records))
	}
	if records[0].Code != "XYZ789" {
		t.Errorf("unexpected surviving record: %+v", records[0])
	}
}

func TestParseCSV_DefaultsMissingFields(t *testing.T) {
	data := []byte("header\n" +
		"D006,,IPD,ABC123,Paracetamol 500mg\n")

	records := ParseCSV(data, KindIn, importTime)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	assert.Equal(t, "2024-03-01", rec.Date)
	assert.Equal(t, int64(0), rec.Amount)
	assert.Equal(t, "1", rec.Pack)
	assert.True(t, rec.Price.IsZero())
	assert.Equal(t, "-", rec.LotNo)
	assert.Equal(t, "-", rec.Barcode)
	assert.Equal(t, "-", rec.ExpDate)
}

func TestParseCSV_FractionalAmountRounds(t *testing.T) {
	data := []byte("header\n" +
		"D007,2024-01-10,IPD,ABC123,Paracetamol 500mg,29.6,10x10,1.50,L1,885001,2025-06-30\n")

	records := ParseCSV(data, KindIn, importTime)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Amount != 30 {
		t.Errorf("expected 29.6 to round to 30, got %d", records[0].Amount)
	}
}
