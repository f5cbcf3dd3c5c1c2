package dto

import (
	"substock/internal/core/types"
	"substock/internal/domain/ledger"
)

// AppendRecordRequest for manual ledger entry.
type AppendRecordRequest struct {
	DispNo     string `json:"dispNo"`
	Date       string `json:"date" binding:"required"`
	Department string `json:"department"`
	Code       string `json:"code" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Amount     int64  `json:"amount" binding:"required"`
	Pack       string `json:"pack"`
	Price      string `json:"price"`
	LotNo      string `json:"lotNo"`
	Barcode    string `json:"barcode"`
	ExpDate    string `json:"expDate"`
	Kind       string `json:"type" binding:"required,oneof=IN OUT"`
}

// ToRecord converts to a domain record. Optional fields fall back to the
// same defaults the CSV importer uses.
func (r AppendRecordRequest) ToRecord() ledger.Record {
	price, err := types.NewMoneyFromString(r.Price)
	if err != nil {
		price = types.Zero()
	}

	rec := ledger.Record{
		DispNo:     orDash(r.DispNo),
		Date:       r.Date,
		Department: r.Department,
		Code:       r.Code,
		Name:       r.Name,
		Amount:     r.Amount,
		Pack:       r.Pack,
		Price:      price,
		LotNo:      orDash(r.LotNo),
		Barcode:    orDash(r.Barcode),
		ExpDate:    orDash(r.ExpDate),
		Kind:       ledger.Kind(r.Kind),
	}
	if rec.Department == "" {
		rec.Department = "-"
	}
	if rec.Pack == "" {
		rec.Pack = "1"
	}
	return rec
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// ImportQuery selects the sign convention for a CSV import.
type ImportQuery struct {
	Mode string `form:"mode" binding:"required,oneof=IN OUT"`
}
