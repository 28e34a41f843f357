package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"route-cost-service/internal/domain"
)

type vehicleFile struct {
	Vehicles []*domain.Vehicle `json:"vehicles"`
}

// VehiclePark is the immutable vehicle catalog.
type VehiclePark struct {
	vehicles []*domain.Vehicle
	byID     map[int]*domain.Vehicle
}

// NewVehiclePark wraps an already-built vehicle list.
func NewVehiclePark(vehicles []*domain.Vehicle) *VehiclePark {
	park := &VehiclePark{
		vehicles: vehicles,
		byID:     make(map[int]*domain.Vehicle, len(vehicles)),
	}
	for _, v := range vehicles {
		park.byID[v.ID] = v
	}
	return park
}

// LoadVehicles reads the vehicle catalog snapshot from a JSON file.
func LoadVehicles(path string) (*VehiclePark, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load vehicles: read %q: %w", path, err)
	}

	var file vehicleFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("load vehicles: parse %q: %w", path, err)
	}
	if len(file.Vehicles) == 0 {
		return nil, fmt.Errorf("load vehicles: %q contains no vehicles", path)
	}

	return NewVehiclePark(file.Vehicles), nil
}

// ByID finds a vehicle by its stable identifier.
func (p *VehiclePark) ByID(id int) (*domain.Vehicle, error) {
	if v, ok := p.byID[id]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("unknown vehicle id: %d", id)
}

// All returns the catalog in load order.
func (p *VehiclePark) All() []*domain.Vehicle { return p.vehicles }
