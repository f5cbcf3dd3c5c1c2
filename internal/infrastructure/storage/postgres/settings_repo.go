package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"substock/internal/core/apperror"
	"substock/internal/domain/settings"
)

const (
	drugConfigTable = "drug_configs"
	requestersTable = "requesters"
)

// SettingsRepo implements settings.Repository.
type SettingsRepo struct {
	pool    *Pool
	builder squirrel.StatementBuilderType
}

// NewSettingsRepo creates a new settings repository.
func NewSettingsRepo(pool *Pool) *SettingsRepo {
	return &SettingsRepo{
		pool:    pool,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetSnapshot returns the full current configuration.
func (r *SettingsRepo) GetSnapshot(ctx context.Context) (settings.Snapshot, error) {
	snap := settings.EmptySnapshot()

	sql, args, err := r.builder.Select("code", "min_stock", "cabinet").
		From(drugConfigTable).
		ToSql()
	if err != nil {
		return snap, fmt.Errorf("build select: %w", err)
	}

	var configs []settings.DrugConfig
	if err := pgxscan.Select(ctx, r.pool, &configs, sql, args...); err != nil {
		return snap, fmt.Errorf("query drug configs: %w", err)
	}
	for _, cfg := range configs {
		snap.MinStock[cfg.Code] = cfg.MinStock
		snap.Cabinets[cfg.Code] = cfg.Cabinet
	}

	sql, args, err = r.builder.Select("id", "name").
		From(requestersTable).
		OrderBy("name").
		ToSql()
	if err != nil {
		return snap, fmt.Errorf("build select: %w", err)
	}

	if err := pgxscan.Select(ctx, r.pool, &snap.Requesters, sql, args...); err != nil {
		return snap, fmt.Errorf("query requesters: %w", err)
	}

	return snap, nil
}

// UpsertDrugConfig stores threshold and cabinet for a drug code.
func (r *SettingsRepo) UpsertDrugConfig(ctx context.Context, cfg settings.DrugConfig) error {
	q := r.builder.Insert(drugConfigTable).
		Columns("code", "min_stock", "cabinet").
		Values(cfg.Code, cfg.MinStock, cfg.Cabinet).
		Suffix("ON CONFLICT (code) DO UPDATE SET min_stock = EXCLUDED.min_stock, cabinet = EXCLUDED.cabinet")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert drug config: %w", err)
	}

	return nil
}

// AddRequester appends a requester to the roster.
func (r *SettingsRepo) AddRequester(ctx context.Context, req settings.Requester) error {
	sql, args, err := r.builder.Insert(requestersTable).
		Columns("id", "name").
		Values(req.ID, req.Name).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert requester: %w", err)
	}

	return nil
}

// RemoveRequester deletes a requester by id.
func (r *SettingsRepo) RemoveRequester(ctx context.Context, id string) error {
	sql, args, err := r.builder.Delete(requestersTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete requester: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("requester", id)
	}

	return nil
}
