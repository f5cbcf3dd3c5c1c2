package inventory

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"substock/internal/core/types"
	"substock/internal/domain/ledger"
	"substock/internal/domain/settings"
	"substock/internal/feed"
	"substock/pkg/logger"
)

var tracer = otel.Tracer("substock/inventory")

// LedgerSource supplies the full ledger, oldest record first. The
// aggregation resolves descriptive fields first-seen, so the feed order is
// part of the contract.
type LedgerSource interface {
	ListChronological(ctx context.Context) ([]ledger.Record, error)
}

// SettingsSource supplies the current configuration snapshot.
type SettingsSource interface {
	Snapshot(ctx context.Context) (settings.Snapshot, error)
}

// Service maintains the derived inventory state. It subscribes to both
// change feeds and recomputes the full aggregate synchronously on every
// notification; reads re-derive status fields at the current time.
type Service struct {
	ledger   LedgerSource
	settings SettingsSource
	clock    func() time.Time

	mu    sync.RWMutex
	items []Item
}

// NewService creates the inventory service and subscribes it to the hub.
func NewService(ledgerSrc LedgerSource, settingsSrc SettingsSource, hub *feed.Hub) *Service {
	s := &Service{
		ledger:   ledgerSrc,
		settings: settingsSrc,
		clock:    time.Now,
	}
	hub.Subscribe(feed.TopicLedger, s.onChange)
	hub.Subscribe(feed.TopicSettings, s.onChange)
	return s
}

func (s *Service) onChange(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		// Keep serving the previous aggregate; the store stays authoritative.
		logger.Error(ctx, "inventory recompute failed", "error", err)
	}
}

// Refresh recomputes the aggregate from the stores.
func (s *Service) Refresh(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "inventory.recompute")
	defer span.End()

	records, err := s.ledger.ListChronological(ctx)
	if err != nil {
		return err
	}
	snap, err := s.settings.Snapshot(ctx)
	if err != nil {
		return err
	}

	items := Aggregate(records, snap)

	span.SetAttributes(
		attribute.Int("ledger.records", len(records)),
		attribute.Int("inventory.items", len(items)),
	)

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	logger.Debug(ctx, "inventory recomputed",
		"records", len(records),
		"items", len(items),
	)
	return nil
}

// Items returns the current inventory state with statuses evaluated at the
// current time. The returned slice is a copy and safe to mutate.
func (s *Service) Items() []Item {
	s.mu.RLock()
	items := make([]Item, len(s.items))
	copy(items, s.items)
	s.mu.RUnlock()

	ApplyStatus(items, s.clock())
	return items
}

// DrugRef is a distinct drug code with its display name, for configuration
// pickers.
type DrugRef struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Drugs returns the distinct drug codes in discovery order with their
// first-seen names.
func Drugs(items []Item) []DrugRef {
	seen := make(map[string]struct{}, len(items))
	refs := make([]DrugRef, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.Code]; ok {
			continue
		}
		seen[it.Code] = struct{}{}
		refs = append(refs, DrugRef{Code: it.Code, Name: it.Name})
	}
	return refs
}

// CabinetValue is the stock value held in one cabinet.
type CabinetValue struct {
	Cabinet string      `json:"cabinet"`
	Value   types.Money `json:"value"`
}

// Summary is the dashboard aggregate over the inventory state.
type Summary struct {
	TotalItems   int            `json:"totalItems"`
	TotalValue   types.Money    `json:"totalValue"`
	NormalCount  int            `json:"normalCount"`
	LowCount     int            `json:"lowCount"`
	EmptyCount   int            `json:"emptyCount"`
	NearCount    int            `json:"nearCount"`
	ExpiredCount int            `json:"expiredCount"`
	ByCabinet    []CabinetValue `json:"byCabinet"`
}

// Summarize computes the dashboard summary for a set of items.
func Summarize(items []Item) Summary {
	sum := Summary{
		TotalItems: len(items),
		TotalValue: types.Zero(),
	}

	cabinetValues := make(map[string]types.Money)
	cabinetOrder := make([]string, 0)

	for _, it := range items {
		sum.TotalValue = sum.TotalValue.Add(it.StockValue())

		switch it.Status {
		case StatusLow:
			sum.LowCount++
		case StatusEmpty:
			sum.EmptyCount++
		default:
			sum.NormalCount++
		}
		switch it.ExpStatus {
		case ExpiryExpired:
			sum.ExpiredCount++
		case ExpiryNear:
			sum.NearCount++
		}

		if _, seen := cabinetValues[it.Cabinet]; !seen {
			cabinetOrder = append(cabinetOrder, it.Cabinet)
		}
		cabinetValues[it.Cabinet] = cabinetValues[it.Cabinet].Add(it.StockValue())
	}

	for _, cab := range cabinetOrder {
		sum.ByCabinet = append(sum.ByCabinet, CabinetValue{Cabinet: cab, Value: cabinetValues[cab]})
	}
	return sum
}
