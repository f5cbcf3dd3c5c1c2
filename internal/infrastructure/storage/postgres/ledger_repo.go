package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"substock/internal/core/apperror"
	"substock/internal/domain/ledger"
)

const ledgerTable = "ledger_records"

var ledgerColumns = []string{
	"id", "disp_no", "date", "department", "code", "name", "amount",
	"pack", "price", "lot_no", "barcode", "exp_date", "timestamp", "kind",
}

// LedgerRepo implements ledger.Repository.
type LedgerRepo struct {
	pool    *Pool
	builder squirrel.StatementBuilderType
}

// NewLedgerRepo creates a new ledger repository.
func NewLedgerRepo(pool *Pool) *LedgerRepo {
	return &LedgerRepo{
		pool:    pool,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns all records, newest first.
func (r *LedgerRepo) List(ctx context.Context) ([]ledger.Record, error) {
	return r.list(ctx, "timestamp DESC")
}

// ListChronological returns all records oldest first, the order the
// inventory aggregation consumes.
func (r *LedgerRepo) ListChronological(ctx context.Context) ([]ledger.Record, error) {
	return r.list(ctx, "timestamp ASC")
}

func (r *LedgerRepo) list(ctx context.Context, order string) ([]ledger.Record, error) {
	q := r.builder.Select(ledgerColumns...).
		From(ledgerTable).
		OrderBy(order)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var recs []ledger.Record
	if err := pgxscan.Select(ctx, r.pool, &recs, sql, args...); err != nil {
		return nil, fmt.Errorf("query ledger records: %w", err)
	}

	return recs, nil
}

// Insert stores a single record.
func (r *LedgerRepo) Insert(ctx context.Context, rec ledger.Record) error {
	q := r.builder.Insert(ledgerTable).
		Columns(ledgerColumns...).
		Values(recordValues(rec)...)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert ledger record: %w", err)
	}

	return nil
}

// InsertBatch stores records in one round trip using COPY.
func (r *LedgerRepo) InsertBatch(ctx context.Context, recs []ledger.Record) error {
	if len(recs) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, recordValues(rec))
	}

	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{ledgerTable},
		ledgerColumns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy ledger records: %w", err)
	}

	return nil
}

// Delete removes a record by id.
func (r *LedgerRepo) Delete(ctx context.Context, id string) error {
	q := r.builder.Delete(ledgerTable).
		Where(squirrel.Eq{"id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete ledger record: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("ledger record", id)
	}

	return nil
}

func recordValues(rec ledger.Record) []any {
	return []any{
		rec.ID, rec.DispNo, rec.Date, rec.Department, rec.Code, rec.Name,
		rec.Amount, rec.Pack, rec.Price, rec.LotNo, rec.Barcode, rec.ExpDate,
		rec.Timestamp, rec.Kind,
	}
}
