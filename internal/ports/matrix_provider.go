package ports

import (
	"context"
	"route-cost-service/internal/domain"
)

// Matrix element statuses reported by the distance provider. A pair the
// provider cannot route (StatusZeroResults) is a data condition, distinct
// from a transport failure which surfaces as an error from Query.
const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
)

// MatrixElement is one origin->destination cell of a provider response.
type MatrixElement struct {
	Status string
	Meters int
}

// MatrixProvider is the external road-distance service. Query returns one row
// per origin and one element per destination, in the exact order the inputs
// were given; callers match results back to pairs positionally.
type MatrixProvider interface {
	Query(ctx context.Context, origins, destinations []domain.GeoPoint) ([][]MatrixElement, error)
}
