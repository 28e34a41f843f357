package matrix

import (
	"context"
	"route-cost-service/internal/domain"
	"route-cost-service/internal/ports"
)

type MockPair struct {
	From, To domain.GeoPoint
	Meters   int
}

// MockProvider serves a fixed set of pairs. Pairs it does not know come back
// with a ZERO_RESULTS element, matching how the real service reports a pair
// it cannot route.
type MockProvider struct {
	m map[domain.PairKey]int
}

func NewMockProvider(pairs []MockPair) *MockProvider {
	m := make(map[domain.PairKey]int, len(pairs))
	for _, p := range pairs {
		m[domain.NewPairKey(p.From, p.To)] = p.Meters
	}
	return &MockProvider{m: m}
}

func (p *MockProvider) Query(ctx context.Context, origins, destinations []domain.GeoPoint) ([][]ports.MatrixElement, error) {
	rows := make([][]ports.MatrixElement, 0, len(origins))
	for _, o := range origins {
		row := make([]ports.MatrixElement, 0, len(destinations))
		for _, d := range destinations {
			meters, ok := p.m[domain.NewPairKey(o, d)]
			if !ok {
				row = append(row, ports.MatrixElement{Status: ports.StatusZeroResults})
				continue
			}
			row = append(row, ports.MatrixElement{Status: ports.StatusOK, Meters: meters})
		}
		rows = append(rows, row)
	}

	return rows, nil
}
