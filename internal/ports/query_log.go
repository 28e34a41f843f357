package ports

import "context"

// QueryLog persists processed calculations for auditing and collects
// corrected-price samples for the offline model trainer.
type QueryLog interface {
	// Record stores one processed request and its serialized result under the
	// calculation id. Recording the same id twice is a no-op.
	Record(ctx context.Context, calculationID, phone string, request, response []byte) error

	// Response returns the stored result payload for a past calculation.
	Response(ctx context.Context, calculationID string) ([]byte, error)

	// UpsertSample stores a corrected price-per-km training sample for a past
	// calculation, replacing any previous correction.
	UpsertSample(ctx context.Context, calculationID string, pricePerKm float64) error
}
