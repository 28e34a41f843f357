package model

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

// writeArtifact builds a 2-depot / 2-vehicle toy model: the hidden layer
// copies the three hot inputs, the output layer sums them with a bias of 10,
// so every in-range triple predicts 13.
func writeArtifact(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	return path
}

const toyArtifact = `{
	"depot_space": 2,
	"vehicle_space": 2,
	"layers": [
		{
			"weights": [
				[1, 0, 0, 0, 0, 0],
				[0, 1, 0, 0, 0, 0],
				[0, 0, 1, 1, 0, 0],
				[0, 0, 0, 0, 1, 1]
			],
			"biases": [0, 0, 0, 0],
			"activation": "leaky_relu",
			"alpha": 0.3
		},
		{
			"weights": [[1, 1, 1, 1]],
			"biases": [10],
			"activation": "linear",
			"alpha": 0
		}
	]
}`

func TestPredict(t *testing.T) {
	ff, err := Load(writeArtifact(t, toyArtifact))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got, err := ff.Predict(0, 1, 1)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if math.Abs(got-13) > 1e-9 {
		t.Errorf("Predict(0,1,1) = %v, want 13", got)
	}
}

func TestPredictRejectsOutOfRangeIDs(t *testing.T) {
	ff, err := Load(writeArtifact(t, toyArtifact))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cases := []struct {
		name             string
		from, to, veh    int
	}{
		{"negative start depot", -1, 0, 0},
		{"end depot past space", 0, 2, 0},
		{"vehicle past space", 0, 0, 5},
	}
	for _, tc := range cases {
		if _, err := ff.Predict(tc.from, tc.to, tc.veh); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestLoadRejectsShapeMismatch(t *testing.T) {
	bad := `{
		"depot_space": 2,
		"vehicle_space": 2,
		"layers": [
			{"weights": [[1, 0]], "biases": [0], "activation": "linear", "alpha": 0}
		]
	}`
	if _, err := Load(writeArtifact(t, bad)); err == nil {
		t.Fatal("expected error for weight row narrower than input")
	}
}

func TestLoadRejectsUnknownActivation(t *testing.T) {
	bad := `{
		"depot_space": 1,
		"vehicle_space": 1,
		"layers": [
			{"weights": [[1, 1, 1]], "biases": [0], "activation": "tanh", "alpha": 0}
		]
	}`
	if _, err := Load(writeArtifact(t, bad)); err == nil {
		t.Fatal("expected error for unsupported activation")
	}
}
