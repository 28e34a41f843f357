package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"route-cost-service/internal/domain"
)

type stateRecord struct {
	ISOCode        string  `json:"iso_code"`
	Currency       string  `json:"currency"`
	Name           string  `json:"state_name"`
	DepartureRatio float64 `json:"departure_ratio"`
	ArrivalRatio   float64 `json:"arrival_ratio"`
}

type stateFile struct {
	States []stateRecord `json:"statepark"`
}

// StatePark is the immutable per-country defaults catalog.
type StatePark struct {
	states []*domain.State
	byISO  map[string]*domain.State
}

// LoadStates reads the state catalog snapshot from a JSON file.
func LoadStates(path string) (*StatePark, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load states: read %q: %w", path, err)
	}

	var file stateFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("load states: parse %q: %w", path, err)
	}
	if len(file.States) == 0 {
		return nil, fmt.Errorf("load states: %q contains no states", path)
	}

	park := &StatePark{byISO: make(map[string]*domain.State, len(file.States))}
	for _, rec := range file.States {
		currency, err := domain.ParseCurrency(rec.Currency)
		if err != nil {
			return nil, fmt.Errorf("load states: state %q: %w", rec.ISOCode, err)
		}
		state := &domain.State{
			ISOCode:        rec.ISOCode,
			CurrencyCode:   currency,
			Name:           rec.Name,
			DepartureRatio: rec.DepartureRatio,
			ArrivalRatio:   rec.ArrivalRatio,
		}
		park.states = append(park.states, state)
		park.byISO[state.ISOCode] = state
	}

	return park, nil
}

// ByISO finds a state by its ISO code.
func (p *StatePark) ByISO(iso string) (*domain.State, error) {
	if s, ok := p.byISO[iso]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("no such state: %s", iso)
}

// All returns the catalog in load order.
func (p *StatePark) All() []*domain.State { return p.states }
