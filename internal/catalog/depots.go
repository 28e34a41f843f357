package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"route-cost-service/internal/domain"
	"strings"
)

// ErrNoDepots reports that a region filter matched nothing. Route planning
// recovers from it locally by retrying over the unfiltered catalog.
var ErrNoDepots = errors.New("no depots for region")

type depotRecord struct {
	ID             int      `json:"id"`
	Lat            float64  `json:"lat"`
	Lng            float64  `json:"lng"`
	Name           string   `json:"name"`
	State          string   `json:"state"`
	DepartureRatio *float64 `json:"departure_ratio,omitempty"`
	ArrivalRatio   *float64 `json:"arrival_ratio,omitempty"`
}

type depotFile struct {
	Depots []depotRecord `json:"depotpark"`
}

// DepotPark is the ordered, immutable depot catalog. Order matters: nearest-
// depot ties break in favor of the earlier catalog entry.
type DepotPark struct {
	depots []*domain.Depot
}

// NewDepotPark wraps an already-built depot list, preserving order.
func NewDepotPark(depots []*domain.Depot) *DepotPark {
	return &DepotPark{depots: depots}
}

// LoadDepots reads the depot catalog snapshot, binding each depot to its
// state from the given StatePark.
func LoadDepots(path string, states *StatePark) (*DepotPark, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load depots: read %q: %w", path, err)
	}

	var file depotFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("load depots: parse %q: %w", path, err)
	}
	if len(file.Depots) == 0 {
		return nil, fmt.Errorf("load depots: %q contains no depots", path)
	}

	depots := make([]*domain.Depot, 0, len(file.Depots))
	for _, rec := range file.Depots {
		state, err := states.ByISO(rec.State)
		if err != nil {
			return nil, fmt.Errorf("load depots: depot %q: %w", rec.Name, err)
		}
		depots = append(depots, domain.NewDepot(
			rec.ID, rec.Lat, rec.Lng, rec.Name, state,
			rec.DepartureRatio, rec.ArrivalRatio,
		))
	}

	return &DepotPark{depots: depots}, nil
}

// All returns the full catalog in order.
func (p *DepotPark) All() []*domain.Depot { return p.depots }

// FilterByState returns catalog-ordered depots whose state matches the ISO
// code, or ErrNoDepots when none do. An empty code means no filtering.
func (p *DepotPark) FilterByState(iso string) ([]*domain.Depot, error) {
	if iso == "" {
		return p.depots, nil
	}

	some := make([]*domain.Depot, 0, len(p.depots))
	for _, d := range p.depots {
		if strings.EqualFold(d.StateCode, iso) {
			some = append(some, d)
		}
	}
	if len(some) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoDepots, iso)
	}
	return some, nil
}
