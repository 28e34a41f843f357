package repositories

import (
	"context"
	"fmt"
	"sync"
)

// MemoryQueryLog keeps the audit trail in process memory. It backs local runs
// without a database and the service tests.
type MemoryQueryLog struct {
	mu        sync.RWMutex
	requests  map[string][]byte
	responses map[string][]byte
	samples   map[string]float64
}

func NewMemoryQueryLog() *MemoryQueryLog {
	return &MemoryQueryLog{
		requests:  make(map[string][]byte),
		responses: make(map[string][]byte),
		samples:   make(map[string]float64),
	}
}

func (m *MemoryQueryLog) Record(ctx context.Context, calculationID, phone string, request, response []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.responses[calculationID]; ok {
		return nil
	}
	m.requests[calculationID] = append([]byte(nil), request...)
	m.responses[calculationID] = append([]byte(nil), response...)
	return nil
}

func (m *MemoryQueryLog) Response(ctx context.Context, calculationID string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	resp, ok := m.responses[calculationID]
	if !ok {
		return nil, fmt.Errorf("load response: calculation %q not found", calculationID)
	}
	return append([]byte(nil), resp...), nil
}

func (m *MemoryQueryLog) UpsertSample(ctx context.Context, calculationID string, pricePerKm float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.samples[calculationID] = pricePerKm
	return nil
}

// Sample reports the stored correction for a calculation, if any.
func (m *MemoryQueryLog) Sample(calculationID string) (float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.samples[calculationID]
	return v, ok
}
