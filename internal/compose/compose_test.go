package compose

import (
	"testing"

	"route-cost-service/internal/domain"
)

func TestRoundCostTiers(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{114, 110},
		{115, 120},
		{1296, 1300},
		{1300, 1300},
		{1301, 1300},
		{15347.31, 15300},
		{34950, 35000},
		{35000, 35000},
		{35001, 35000},
		{36400, 36000},
		{36501, 37000},
	}
	for _, tc := range cases {
		if got := RoundCost(tc.in); got != tc.want {
			t.Errorf("RoundCost(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatCost(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{950, "950.00"},
		{15300, "15 300.00"},
		{1234567.5, "1 234 567.50"},
		{-15300, "-15 300.00"},
	}
	for _, tc := range cases {
		if got := FormatCost(tc.in); got != tc.want {
			t.Errorf("FormatCost(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMapURL(t *testing.T) {
	got := MapURL(
		domain.GeoPoint{Lat: 49.227717, Lng: 31.852233},
		domain.GeoPoint{Lat: 50.5089112, Lng: 26.2566443},
	)
	want := "https://www.google.com.ua/maps/dir/49.227717,31.852233/50.5089112,26.2566443/"
	if got != want {
		t.Errorf("MapURL = %q, want %q", got, want)
	}
}

func TestVisibleRouteDropsCoincidingAnchors(t *testing.T) {
	depot := domain.GeoPoint{Lat: 49.227717, Lng: 31.852233}
	origin := domain.GeoPoint{Lat: 49.227717, Lng: 31.852233}
	dest := domain.GeoPoint{Lat: 50.5089112, Lng: 26.2566443}
	endDepot := domain.GeoPoint{Lat: 50.6199, Lng: 26.2516}

	points, names := VisibleRoute(
		[]domain.GeoPoint{depot, origin, dest, endDepot},
		[]string{"Сміла", "Smila", "Zdolbuniv", "Рівне"},
	)

	if len(points) != 3 || len(names) != 3 {
		t.Fatalf("got %d points / %d names, want 3 each", len(points), len(names))
	}
	if PlaceChain(names...) != "Сміла - Zdolbuniv - Рівне" {
		t.Errorf("chain = %q", PlaceChain(names...))
	}
}

func TestVisibleRouteKeepsDistinctAnchors(t *testing.T) {
	points, names := VisibleRoute(
		[]domain.GeoPoint{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}, {Lat: 3, Lng: 3}, {Lat: 4, Lng: 4}},
		[]string{"a", "b", "c", "d"},
	)
	if len(points) != 4 {
		t.Fatalf("got %d points, want 4", len(points))
	}
	if PlaceChain(names...) != "a - b - c - d" {
		t.Errorf("chain = %q", PlaceChain(names...))
	}
}
