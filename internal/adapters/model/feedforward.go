// Package model loads the trained per-km price model from its exported
// artifact and evaluates it in-process.
package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// Feedforward is a dense network evaluated on a one-hot encoding of
// (start depot, end depot, vehicle). The artifact fixes the id spaces, so a
// request outside them is a caller error, not an extrapolation.
type Feedforward struct {
	depotSpace   int
	vehicleSpace int
	layers       []layer
}

type layer struct {
	// weights[i][j] maps input j to output i.
	weights    [][]float64
	biases     []float64
	activation string
	alpha      float64
}

type artifact struct {
	DepotSpace   int `json:"depot_space"`
	VehicleSpace int `json:"vehicle_space"`
	Layers       []struct {
		Weights    [][]float64 `json:"weights"`
		Biases     []float64   `json:"biases"`
		Activation string      `json:"activation"`
		Alpha      float64     `json:"alpha"`
	} `json:"layers"`
}

// Load reads a model artifact from disk and validates its shape so that
// Predict can run without bounds checks failing mid-evaluation.
func Load(path string) (*Feedforward, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var art artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}

	if art.DepotSpace <= 0 || art.VehicleSpace <= 0 {
		return nil, fmt.Errorf("model artifact: bad id spaces depot=%d vehicle=%d", art.DepotSpace, art.VehicleSpace)
	}
	if len(art.Layers) == 0 {
		return nil, fmt.Errorf("model artifact: no layers")
	}

	ff := &Feedforward{
		depotSpace:   art.DepotSpace,
		vehicleSpace: art.VehicleSpace,
	}

	width := 2*art.DepotSpace + art.VehicleSpace
	for i, l := range art.Layers {
		if len(l.Weights) != len(l.Biases) {
			return nil, fmt.Errorf("model artifact: layer %d has %d weight rows for %d biases", i, len(l.Weights), len(l.Biases))
		}
		for _, row := range l.Weights {
			if len(row) != width {
				return nil, fmt.Errorf("model artifact: layer %d expects input width %d, weight row has %d", i, width, len(row))
			}
		}
		switch l.Activation {
		case "leaky_relu", "linear":
		default:
			return nil, fmt.Errorf("model artifact: layer %d has unknown activation %q", i, l.Activation)
		}

		ff.layers = append(ff.layers, layer{
			weights:    l.Weights,
			biases:     l.Biases,
			activation: l.Activation,
			alpha:      l.Alpha,
		})
		width = len(l.Biases)
	}

	if width != 1 {
		return nil, fmt.Errorf("model artifact: final layer emits %d outputs, want 1", width)
	}

	return ff, nil
}

// Predict returns the modelled base price per kilometre for the triple.
func (ff *Feedforward) Predict(fromDepotID, toDepotID, vehicleID int) (float64, error) {
	if fromDepotID < 0 || fromDepotID >= ff.depotSpace {
		return 0, fmt.Errorf("start depot id %d outside model space [0,%d)", fromDepotID, ff.depotSpace)
	}
	if toDepotID < 0 || toDepotID >= ff.depotSpace {
		return 0, fmt.Errorf("end depot id %d outside model space [0,%d)", toDepotID, ff.depotSpace)
	}
	if vehicleID < 0 || vehicleID >= ff.vehicleSpace {
		return 0, fmt.Errorf("vehicle id %d outside model space [0,%d)", vehicleID, ff.vehicleSpace)
	}

	in := make([]float64, 2*ff.depotSpace+ff.vehicleSpace)
	in[fromDepotID] = 1
	in[ff.depotSpace+toDepotID] = 1
	in[2*ff.depotSpace+vehicleID] = 1

	for _, l := range ff.layers {
		out := make([]float64, len(l.biases))
		for i, row := range l.weights {
			sum := l.biases[i]
			for j, w := range row {
				sum += w * in[j]
			}
			if l.activation == "leaky_relu" && sum < 0 {
				sum *= l.alpha
			}
			out[i] = sum
		}
		in = out
	}

	return in[0], nil
}
