package settings

import (
	"context"
	"fmt"
	"strings"

	"substock/internal/core/apperror"
	"substock/internal/core/id"
	"substock/internal/feed"
	"substock/pkg/logger"
)

// Service provides business operations for configuration.
// Mutations notify the settings feed so derived state picks up new
// thresholds and cabinet labels immediately.
type Service struct {
	repo Repository
	hub  *feed.Hub
}

// NewService creates a new settings service.
func NewService(repo Repository, hub *feed.Hub) *Service {
	return &Service{
		repo: repo,
		hub:  hub,
	}
}

// Snapshot returns the full current configuration.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	return s.repo.GetSnapshot(ctx)
}

// SetDrugConfig stores threshold and cabinet for a drug code.
func (s *Service) SetDrugConfig(ctx context.Context, cfg DrugConfig) error {
	cfg.Code = strings.TrimSpace(cfg.Code)
	if cfg.Code == "" {
		return apperror.NewValidation("drug code is required")
	}
	if cfg.MinStock < 0 {
		return apperror.NewValidation("minStock must be non-negative").
			WithDetail("minStock", cfg.MinStock)
	}
	if cfg.Cabinet == "" {
		cfg.Cabinet = DefaultCabinet
	}

	if err := s.repo.UpsertDrugConfig(ctx, cfg); err != nil {
		return fmt.Errorf("upsert drug config: %w", err)
	}

	logger.Info(ctx, "drug config saved",
		"code", cfg.Code,
		"min_stock", cfg.MinStock,
		"cabinet", cfg.Cabinet,
	)

	s.hub.Notify(ctx, feed.TopicSettings)
	return nil
}

// AddRequester appends a named requester to the roster.
func (s *Service) AddRequester(ctx context.Context, name string) (Requester, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Requester{}, apperror.NewValidation("requester name is required")
	}

	r := Requester{
		ID:   id.New().String(),
		Name: name,
	}
	if err := s.repo.AddRequester(ctx, r); err != nil {
		return Requester{}, fmt.Errorf("add requester: %w", err)
	}

	logger.Info(ctx, "requester added", "requester_id", r.ID, "name", r.Name)

	s.hub.Notify(ctx, feed.TopicSettings)
	return r, nil
}

// RemoveRequester deletes a requester by id.
func (s *Service) RemoveRequester(ctx context.Context, requesterID string) error {
	if requesterID == "" {
		return apperror.NewValidation("requester id is required")
	}

	if err := s.repo.RemoveRequester(ctx, requesterID); err != nil {
		return fmt.Errorf("remove requester: %w", err)
	}

	logger.Info(ctx, "requester removed", "requester_id", requesterID)

	s.hub.Notify(ctx, feed.TopicSettings)
	return nil
}
