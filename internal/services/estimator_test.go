package services

import (
	"errors"
	"math"
	"testing"

	"route-cost-service/internal/domain"
)

func ratioOf(t *testing.T, meters float64) float64 {
	t.Helper()
	ratio, err := DistanceRatio(meters)
	if err != nil {
		t.Fatalf("DistanceRatio(%v): %v", meters, err)
	}
	return ratio
}

func TestDistanceRatioValues(t *testing.T) {
	cases := []struct {
		meters float64
		want   float64
	}{
		{50000, 2.805},
		{591000, 1.156},
		{1000000, 1.069},
	}
	for _, tc := range cases {
		if got := ratioOf(t, tc.meters); got != tc.want {
			t.Errorf("DistanceRatio(%v) = %v, want %v", tc.meters, got, tc.want)
		}
	}
}

func TestDistanceRatioShortHaulFloor(t *testing.T) {
	if got, want := ratioOf(t, 10000), ratioOf(t, 50000); got != want {
		t.Errorf("10km ratio %v differs from 50km floor ratio %v", got, want)
	}
	if got, want := ratioOf(t, 0), ratioOf(t, 50000); got != want {
		t.Errorf("0km ratio %v differs from 50km floor ratio %v", got, want)
	}
}

func TestDistanceRatioMonotone(t *testing.T) {
	prev := math.Inf(1)
	for _, meters := range []float64{50000, 100000, 250000, 591000, 1000000, 2500000} {
		ratio := ratioOf(t, meters)
		if ratio >= prev {
			t.Errorf("ratio not decreasing at %vm: %v >= %v", meters, ratio, prev)
		}
		prev = ratio
	}
}

func TestDistanceRatioRejectsNegative(t *testing.T) {
	if _, err := DistanceRatio(-1); err == nil {
		t.Fatal("expected error for negative distance")
	}
}

func testState() *domain.State {
	return &domain.State{
		ISOCode:        "UA",
		CurrencyCode:   domain.UAH,
		Name:           "Ukraine",
		DepartureRatio: 1.0,
		ArrivalRatio:   1.0,
	}
}

func TestConventionalEstimator(t *testing.T) {
	state := testState()
	dep := 0.9
	arr := 0.78
	start := domain.NewDepot(1, 49.4444, 32.0598, "Черкаси", state, &dep, nil)
	end := domain.NewDepot(2, 50.6199, 26.2516, "Рівне", state, nil, &arr)
	vehicle := &domain.Vehicle{ID: 1, Name: "Тент 5", PricePerKm: 32.0, WeightCapacity: 5}

	got, err := ConventionalEstimator{}.PricePerKm(start, end, vehicle, 591000)
	if err != nil {
		t.Fatalf("PricePerKm: %v", err)
	}

	want := 32.0 * 0.9 * 0.78 * 1.156
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("PricePerKm = %v, want %v", got, want)
	}
}

type stubModel struct {
	price float64
	err   error

	from, to, vehicle int
}

func (m *stubModel) Predict(fromDepotID, toDepotID, vehicleID int) (float64, error) {
	m.from, m.to, m.vehicle = fromDepotID, toDepotID, vehicleID
	return m.price, m.err
}

func TestLearnedEstimatorDelegatesToModel(t *testing.T) {
	state := testState()
	start := domain.NewDepot(3, 49.0, 32.0, "A", state, nil, nil)
	end := domain.NewDepot(7, 50.0, 26.0, "B", state, nil, nil)
	vehicle := &domain.Vehicle{ID: 4, Name: "Тент 10", PricePerKm: 40.0}

	model := &stubModel{price: 27.5}
	got, err := LearnedEstimator{Model: model}.PricePerKm(start, end, vehicle, 591000)
	if err != nil {
		t.Fatalf("PricePerKm: %v", err)
	}
	if got != 27.5 {
		t.Errorf("PricePerKm = %v, want model output 27.5", got)
	}
	if model.from != 3 || model.to != 7 || model.vehicle != 4 {
		t.Errorf("model keyed on (%d,%d,%d), want (3,7,4)", model.from, model.to, model.vehicle)
	}
}

func TestLearnedEstimatorPropagatesModelError(t *testing.T) {
	state := testState()
	start := domain.NewDepot(1, 49.0, 32.0, "A", state, nil, nil)
	end := domain.NewDepot(2, 50.0, 26.0, "B", state, nil, nil)

	modelErr := errors.New("id outside model space")
	_, err := LearnedEstimator{Model: &stubModel{err: modelErr}}.PricePerKm(start, end, &domain.Vehicle{ID: 1}, 0)
	if !errors.Is(err, modelErr) {
		t.Fatalf("err = %v, want wrapped model error", err)
	}
}
