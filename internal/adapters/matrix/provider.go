// Package matrix adapts the external distance-matrix web service to the
// MatrixProvider port.
package matrix

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"route-cost-service/internal/domain"
	"route-cost-service/internal/platform/obs"
	"route-cost-service/internal/ports"
	"strings"
	"time"
)

// Provider issues batched distance-matrix queries over HTTP. Responses are
// positional: row i / element j corresponds to origin i / destination j of
// the request, so the coordinate order is never reordered in between.
//
// The provider is safe for concurrent use.
type Provider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewProvider(apiKey, baseURL string) (*Provider, error) {
	if apiKey == "" {
		return nil, errors.New("distance matrix api key is empty")
	}
	if baseURL == "" {
		return nil, errors.New("distance matrix base url is empty")
	}

	return &Provider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: baseURL,
	}, nil
}

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int `json:"value"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// coordsParam renders points as the provider's "lat,lng|lat,lng|..." form.
func coordsParam(points []domain.GeoPoint) string {
	parts := make([]string, 0, len(points))
	for _, p := range points {
		parts = append(parts, fmt.Sprintf("%v,%v", p.Lat, p.Lng))
	}
	return strings.Join(parts, "|")
}

// Query fetches one origins x destinations matrix. Transport failures after
// the retry budget surface as errors; a pair the provider cannot route comes
// back as a non-OK element status, not an error.
func (p *Provider) Query(ctx context.Context, origins, destinations []domain.GeoPoint) (_ [][]ports.MatrixElement, err error) {
	defer obs.Time(ctx, "matrix.Query")(&err)

	if len(origins) == 0 || len(destinations) == 0 {
		return nil, errors.New("matrix query: origins and destinations must be non-empty")
	}

	query := url.Values{}
	query.Set("origins", coordsParam(origins))
	query.Set("destinations", coordsParam(destinations))
	query.Set("mode", "driving")
	query.Set("key", p.apiKey)
	endpoint := p.baseURL + "?" + query.Encode()

	resp, err := p.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var mr matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return nil, fmt.Errorf("decode matrix response: %w", err)
	}

	if len(mr.Rows) != len(origins) {
		return nil, fmt.Errorf("matrix response has %d rows for %d origins", len(mr.Rows), len(origins))
	}

	out := make([][]ports.MatrixElement, 0, len(mr.Rows))
	for i, row := range mr.Rows {
		if len(row.Elements) != len(destinations) {
			return nil, fmt.Errorf(
				"matrix response row %d has %d elements for %d destinations",
				i, len(row.Elements), len(destinations),
			)
		}

		elements := make([]ports.MatrixElement, 0, len(row.Elements))
		for _, e := range row.Elements {
			elements = append(elements, ports.MatrixElement{
				Status: e.Status,
				Meters: e.Distance.Value,
			})
		}
		out = append(out, elements)
	}

	return out, nil
}
