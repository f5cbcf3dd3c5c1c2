// Package inventory derives per-lot inventory state from the ledger and the
// configuration snapshot. The derivation is pure and total: it is recomputed
// from scratch on every upstream change and never mutated incrementally.
package inventory

import (
	"substock/internal/core/types"
)

// StockStatus classifies the on-hand balance against the threshold.
type StockStatus string

const (
	StatusNormal StockStatus = "NORMAL"
	StatusLow    StockStatus = "LOW"
	StatusEmpty  StockStatus = "EMPTY"
)

// ExpiryStatus classifies the lot expiry date against the evaluation date.
type ExpiryStatus string

const (
	ExpiryOK      ExpiryStatus = "OK"
	ExpiryNear    ExpiryStatus = "NEAR"
	ExpiryExpired ExpiryStatus = "EXPIRED"
)

// Key identifies one inventory entry: a drug code and lot pair.
type Key struct {
	Code  string
	LotNo string
}

// Item is the derived inventory state for one (code, lot) pair.
// Invariant: Balance == TotalIn + TotalOut, with TotalOut <= 0 <= TotalIn.
type Item struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Pack     string `json:"pack"`
	TotalIn  int64  `json:"totalIn"`
	TotalOut int64  `json:"totalOut"`
	Balance  int64  `json:"balance"`
	LotNo    string `json:"lotNo"`
	ExpDate  string `json:"expDate"`
	MinStock int64  `json:"minStock"`
	Cabinet  string `json:"cabinet"`

	// Price is the unit price of the first record seen for this key
	Price types.Money `json:"price"`

	Status       StockStatus  `json:"status"`
	ExpStatus    ExpiryStatus `json:"expStatus"`
	DaysToExpire int          `json:"daysToExpire"`

	// LastUpdate is the latest movement date among contributing records
	LastUpdate string `json:"lastUpdate"`
}

// Key returns the composite identity of the item.
func (i Item) Key() Key {
	return Key{Code: i.Code, LotNo: i.LotNo}
}

// StockValue returns balance times unit price.
func (i Item) StockValue() types.Money {
	return i.Price.Mul(types.NewMoney(float64(i.Balance)))
}
