package services

import (
	"context"
	"testing"

	"route-cost-service/internal/adapters/cache"
	"route-cost-service/internal/adapters/matrix"
	"route-cost-service/internal/catalog"
	"route-cost-service/internal/domain"
)

var (
	vinnytsia = domain.GeoPoint{Lat: 49.2331, Lng: 28.4682}
	rivne     = domain.GeoPoint{Lat: 50.6199, Lng: 26.2516}
)

// testPark is a three-depot catalog: Вінниця first, then Черкаси and Рівне.
func testPark(ratios bool) *catalog.DepotPark {
	state := testState()
	var dep, arr *float64
	if ratios {
		d, a := 0.9, 0.78
		dep, arr = &d, &a
	}
	return catalog.NewDepotPark([]*domain.Depot{
		domain.NewDepot(0, vinnytsia.Lat, vinnytsia.Lng, "Вінниця", state, nil, nil),
		domain.NewDepot(1, cherkasy.Lat, cherkasy.Lng, "Черкаси", state, dep, nil),
		domain.NewDepot(2, rivne.Lat, rivne.Lng, "Рівне", state, nil, arr),
	})
}

func testProvider() *matrix.MockProvider {
	return matrix.NewMockProvider([]matrix.MockPair{
		// Departure side measures depot -> place.
		{From: vinnytsia, To: smila, Meters: 180000},
		{From: cherkasy, To: smila, Meters: 35000},
		{From: rivne, To: smila, Meters: 420000},
		// Arrival side measures place -> depot.
		{From: zdolbuniv, To: vinnytsia, Meters: 250000},
		{From: zdolbuniv, To: cherkasy, Meters: 500000},
		{From: zdolbuniv, To: rivne, Meters: 36000},
	})
}

func TestPlanRoutePicksNearestDepotsPerSide(t *testing.T) {
	resolver := NewResolver(cache.NewMemoryDistanceCache(), testProvider())
	locator := NewLocator(testPark(true), resolver)

	origin := domain.NewPlace(smila.Lat, smila.Lng, "Smila", "Smila, Cherkasy Oblast", "UA")
	destination := domain.NewPlace(zdolbuniv.Lat, zdolbuniv.Lng, "Zdolbuniv", "Zdolbuniv, Rivne Oblast", "UA")

	route, err := locator.PlanRoute(context.Background(), origin, destination)
	if err != nil {
		t.Fatalf("PlanRoute: %v", err)
	}
	if route.StartDepot.Name != "Черкаси" {
		t.Errorf("start depot = %q, want Черкаси", route.StartDepot.Name)
	}
	if route.EndDepot.Name != "Рівне" {
		t.Errorf("end depot = %q, want Рівне", route.EndDepot.Name)
	}
}

func TestPlanRouteRegionFilterIsCaseInsensitive(t *testing.T) {
	resolver := NewResolver(cache.NewMemoryDistanceCache(), testProvider())
	locator := NewLocator(testPark(false), resolver)

	origin := domain.NewPlace(smila.Lat, smila.Lng, "Smila", "", "ua")
	destination := domain.NewPlace(zdolbuniv.Lat, zdolbuniv.Lng, "Zdolbuniv", "", "ua")

	route, err := locator.PlanRoute(context.Background(), origin, destination)
	if err != nil {
		t.Fatalf("PlanRoute: %v", err)
	}
	if route.StartDepot.Name != "Черкаси" {
		t.Errorf("start depot = %q, want Черкаси", route.StartDepot.Name)
	}
}

func TestPlanRouteFallsBackWhenRegionHasNoDepots(t *testing.T) {
	resolver := NewResolver(cache.NewMemoryDistanceCache(), testProvider())
	locator := NewLocator(testPark(false), resolver)

	// No Polish depots exist; selection must retry over the whole catalog.
	origin := domain.NewPlace(smila.Lat, smila.Lng, "Smila", "", "PL")
	destination := domain.NewPlace(zdolbuniv.Lat, zdolbuniv.Lng, "Zdolbuniv", "", "PL")

	route, err := locator.PlanRoute(context.Background(), origin, destination)
	if err != nil {
		t.Fatalf("PlanRoute: %v", err)
	}
	if route.StartDepot.Name != "Черкаси" || route.EndDepot.Name != "Рівне" {
		t.Errorf("depots = %q/%q, want Черкаси/Рівне", route.StartDepot.Name, route.EndDepot.Name)
	}
}

func TestClosestTieKeepsEarlierCatalogEntry(t *testing.T) {
	state := testState()
	park := catalog.NewDepotPark([]*domain.Depot{
		domain.NewDepot(0, vinnytsia.Lat, vinnytsia.Lng, "Вінниця", state, nil, nil),
		domain.NewDepot(1, cherkasy.Lat, cherkasy.Lng, "Черкаси", state, nil, nil),
	})
	provider := matrix.NewMockProvider([]matrix.MockPair{
		{From: vinnytsia, To: smila, Meters: 35000},
		{From: cherkasy, To: smila, Meters: 35000},
		{From: zdolbuniv, To: vinnytsia, Meters: 35000},
		{From: zdolbuniv, To: cherkasy, Meters: 35000},
	})
	locator := NewLocator(park, NewResolver(cache.NewMemoryDistanceCache(), provider))

	origin := domain.NewPlace(smila.Lat, smila.Lng, "Smila", "", "UA")
	destination := domain.NewPlace(zdolbuniv.Lat, zdolbuniv.Lng, "Zdolbuniv", "", "UA")

	route, err := locator.PlanRoute(context.Background(), origin, destination)
	if err != nil {
		t.Fatalf("PlanRoute: %v", err)
	}
	if route.StartDepot.Name != "Вінниця" || route.EndDepot.Name != "Вінниця" {
		t.Errorf("depots = %q/%q, want the earlier catalog entry on both sides",
			route.StartDepot.Name, route.EndDepot.Name)
	}
}

func TestClosestShortCircuitsDepotAtPlace(t *testing.T) {
	state := testState()
	park := catalog.NewDepotPark([]*domain.Depot{
		domain.NewDepot(0, vinnytsia.Lat, vinnytsia.Lng, "Вінниця", state, nil, nil),
		domain.NewDepot(1, smila.Lat, smila.Lng, "Сміла", state, nil, nil),
	})
	// No provider data at all: the coinciding depot must win without a
	// single matrix call on that side.
	provider := matrix.NewMockProvider([]matrix.MockPair{
		{From: zdolbuniv, To: vinnytsia, Meters: 250000},
	})
	locator := NewLocator(park, NewResolver(cache.NewMemoryDistanceCache(), provider))

	origin := domain.NewPlace(smila.Lat, smila.Lng, "Smila", "", "UA")
	destination := domain.NewPlace(zdolbuniv.Lat, zdolbuniv.Lng, "Zdolbuniv", "", "UA")

	route, err := locator.PlanRoute(context.Background(), origin, destination)
	if err != nil {
		t.Fatalf("PlanRoute: %v", err)
	}
	if route.StartDepot.Name != "Сміла" {
		t.Errorf("start depot = %q, want the coinciding depot", route.StartDepot.Name)
	}
}
