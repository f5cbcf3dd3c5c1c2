// Package settings provides the configuration snapshot: per-drug minimum
// stock thresholds and cabinet assignments, plus the requester roster.
package settings

import "context"

// DefaultCabinet is used when a drug code has no cabinet assignment.
const DefaultCabinet = "Unassigned"

// Requester is an authorized requisition signer.
type Requester struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// DrugConfig is the stored configuration for one drug code.
type DrugConfig struct {
	Code     string `db:"code" json:"code"`
	MinStock int64  `db:"min_stock" json:"minStock"`
	Cabinet  string `db:"cabinet" json:"cabinet"`
}

// Snapshot is the full configuration state consumed by the derivation core.
// Lookups fall back to defaults for unconfigured codes, so the snapshot is
// total over any drug code.
type Snapshot struct {
	MinStock   map[string]int64  `json:"minStock"`
	Cabinets   map[string]string `json:"cabinets"`
	Requesters []Requester       `json:"requesters"`
}

// EmptySnapshot returns a snapshot with no configuration.
func EmptySnapshot() Snapshot {
	return Snapshot{
		MinStock: map[string]int64{},
		Cabinets: map[string]string{},
	}
}

// MinStockFor returns the threshold for a code, 0 when unconfigured.
func (s Snapshot) MinStockFor(code string) int64 {
	return s.MinStock[code]
}

// CabinetFor returns the cabinet label for a code, DefaultCabinet when
// unconfigured.
func (s Snapshot) CabinetFor(code string) string {
	if cab, ok := s.Cabinets[code]; ok && cab != "" {
		return cab
	}
	return DefaultCabinet
}

// RequesterByID finds a requester in the roster.
func (s Snapshot) RequesterByID(id string) (Requester, bool) {
	for _, r := range s.Requesters {
		if r.ID == id {
			return r, true
		}
	}
	return Requester{}, false
}

// Repository is the settings store contract.
type Repository interface {
	// GetSnapshot returns the full current configuration.
	GetSnapshot(ctx context.Context) (Snapshot, error)

	// UpsertDrugConfig stores threshold and cabinet for a drug code.
	UpsertDrugConfig(ctx context.Context, cfg DrugConfig) error

	// AddRequester appends a requester to the roster.
	AddRequester(ctx context.Context, r Requester) error

	// RemoveRequester deletes a requester by id.
	RemoveRequester(ctx context.Context, id string) error
}
