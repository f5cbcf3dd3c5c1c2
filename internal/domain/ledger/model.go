// Package ledger provides the transaction ledger: immutable facts describing
// inward and outward movements of drug lots. The sign of Amount is
// authoritative for balance math; Kind is informational.
package ledger

import (
	"context"

	"substock/internal/core/types"
)

// Kind tags the movement direction of a record.
type Kind string

const (
	KindIn  Kind = "IN"
	KindOut Kind = "OUT"
)

// Record is one ledger fact. Records are immutable once created and are
// removed only by explicit deletion.
type Record struct {
	// ID is the store key
	ID string `db:"id" json:"id"`

	// DispNo is the source document / dispense number
	DispNo string `db:"disp_no" json:"dispNo"`

	// Date is the movement date in ISO YYYY-MM-DD form
	Date string `db:"date" json:"date"`

	// Department that received or issued the lot
	Department string `db:"department" json:"department"`

	// Code is the drug code
	Code string `db:"code" json:"code"`

	// Name is the drug display name
	Name string `db:"name" json:"name"`

	// Amount is the signed quantity: positive = received, negative = dispensed
	Amount int64 `db:"amount" json:"amount"`

	// Pack describes the pack size
	Pack string `db:"pack" json:"pack"`

	// Price is the unit price
	Price types.Money `db:"price" json:"price"`

	// LotNo identifies the batch
	LotNo string `db:"lot_no" json:"lotNo"`

	// Barcode as scanned, "-" when absent
	Barcode string `db:"barcode" json:"barcode"`

	// ExpDate is the lot expiry date in ISO YYYY-MM-DD form, "-" when unknown
	ExpDate string `db:"exp_date" json:"expDate"`

	// Timestamp is the record creation time in unix milliseconds
	Timestamp int64 `db:"timestamp" json:"timestamp"`

	// Kind is the IN/OUT tag
	Kind Kind `db:"kind" json:"type"`
}

// Repository is the ledger store contract.
type Repository interface {
	// List returns all records, newest first.
	List(ctx context.Context) ([]Record, error)

	// ListChronological returns all records oldest first. This is the
	// order the aggregation consumes; first-seen resolution depends on it.
	ListChronological(ctx context.Context) ([]Record, error)

	// Insert stores a single record.
	Insert(ctx context.Context, rec Record) error

	// InsertBatch stores records in one round trip.
	InsertBatch(ctx context.Context, recs []Record) error

	// Delete removes a record by id.
	Delete(ctx context.Context, id string) error
}
