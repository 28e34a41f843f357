package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"route-cost-service/internal/domain"
	"route-cost-service/internal/ports"
)

// SampleRecorder turns operator price corrections into training samples for
// the offline model trainer. The correction arrives as a whole-trip (or
// per-ton) price; the model is trained on price per kilometer in the base
// currency, so the correction is converted by ratio against the stored
// calculation before it is persisted.
type SampleRecorder struct {
	log ports.QueryLog
}

func NewSampleRecorder(log ports.QueryLog) *SampleRecorder {
	return &SampleRecorder{log: log}
}

// AddSample records a corrected price for a past calculation.
func (r *SampleRecorder) AddSample(ctx context.Context, calculationID string, desiredPrice float64) error {
	if desiredPrice <= 0 {
		return errors.New("add sample: desired price must be positive")
	}

	payload, err := r.log.Response(ctx, calculationID)
	if err != nil {
		return fmt.Errorf("add sample: load calculation %s: %w", calculationID, err)
	}

	var stored domain.CalculationResult
	if err := json.Unmarshal(payload, &stored); err != nil {
		return fmt.Errorf("add sample: parse calculation %s: %w", calculationID, err)
	}

	current := stored.Cost
	if stored.IsPricePerTon && stored.VehicleCapacity > 0 {
		current = stored.Cost / stored.VehicleCapacity
	}
	if current <= 0 {
		return fmt.Errorf("add sample: calculation %s has no usable price", calculationID)
	}

	// Scale the stored per-km price by the operator's correction and convert
	// back to the base currency the model was trained in.
	ratio := desiredPrice / current
	desiredPerKm := stored.PricePerKm * ratio * stored.CurrencyRate

	if err := r.log.UpsertSample(ctx, calculationID, desiredPerKm); err != nil {
		return fmt.Errorf("add sample: store sample for %s: %w", calculationID, err)
	}
	return nil
}
