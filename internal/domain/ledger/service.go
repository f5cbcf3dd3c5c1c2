package ledger

import (
	"context"
	"fmt"
	"time"

	"substock/internal/core/apperror"
	"substock/internal/core/id"
	"substock/internal/feed"
	"substock/pkg/logger"
)

// Service provides business operations for the ledger.
// Every successful mutation notifies the ledger feed so derived state is
// recomputed before the call returns (read-your-writes).
type Service struct {
	repo Repository
	hub  *feed.Hub
}

// NewService creates a new ledger service.
func NewService(repo Repository, hub *feed.Hub) *Service {
	return &Service{
		repo: repo,
		hub:  hub,
	}
}

// List returns all ledger records, newest first.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

// ListChronological returns all ledger records oldest first. Derived state
// must consume this order: name, pack and price resolve to the first record
// of each (code, lot) group, so feeding the newest-first listing would
// silently flip that to "most recent wins".
func (s *Service) ListChronological(ctx context.Context) ([]Record, error) {
	return s.repo.ListChronological(ctx)
}

// Append stores a single record.
func (s *Service) Append(ctx context.Context, rec Record) (Record, error) {
	if rec.Code == "" {
		return Record{}, apperror.NewValidation("drug code is required")
	}
	if rec.ID == "" {
		rec.ID = id.New().String()
	}
	if rec.Timestamp == 0 {
		rec.Timestamp = time.Now().UnixMilli()
	}

	if err := s.repo.Insert(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("insert record: %w", err)
	}

	logger.Info(ctx, "ledger record appended",
		"record_id", rec.ID,
		"code", rec.Code,
		"lot_no", rec.LotNo,
		"amount", rec.Amount,
	)

	s.hub.Notify(ctx, feed.TopicLedger)
	return rec, nil
}

// Import parses CSV text and stores the resulting records in one batch.
// Returns the number of records imported.
func (s *Service) Import(ctx context.Context, data []byte, mode Kind) (int, error) {
	if mode != KindIn && mode != KindOut {
		return 0, apperror.NewValidation("import mode must be IN or OUT")
	}

	records := ParseCSV(data, mode, time.Now())
	if len(records) == 0 {
		return 0, apperror.NewValidation("no usable rows in file")
	}

	for i := range records {
		records[i].ID = id.New().String()
	}

	if err := s.repo.InsertBatch(ctx, records); err != nil {
		return 0, fmt.Errorf("insert batch: %w", err)
	}

	logger.Info(ctx, "ledger import completed",
		"count", len(records),
		"mode", mode,
	)

	s.hub.Notify(ctx, feed.TopicLedger)
	return len(records), nil
}

// Remove deletes a record by id.
func (s *Service) Remove(ctx context.Context, recordID string) error {
	if recordID == "" {
		return apperror.NewValidation("record id is required")
	}

	if err := s.repo.Delete(ctx, recordID); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	logger.Info(ctx, "ledger record removed", "record_id", recordID)

	s.hub.Notify(ctx, feed.TopicLedger)
	return nil
}
