package domain

import "testing"

func TestDistanceUnresolvedReadPanics(t *testing.T) {
	d := NewDistance(GeoPoint{Lat: 50.0, Lng: 30.0}, GeoPoint{Lat: 49.0, Lng: 32.0})

	if d.Resolved() {
		t.Fatal("fresh distance must start unresolved")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("reading an unresolved distance must panic")
		}
	}()
	_ = d.Meters()
}

func TestDistanceResolvesOnce(t *testing.T) {
	d := NewDistance(GeoPoint{Lat: 50.0, Lng: 30.0}, GeoPoint{Lat: 49.0, Lng: 32.0})

	d.Resolve(490000)
	if !d.Resolved() {
		t.Fatal("distance must be resolved after Resolve")
	}
	if got := d.Meters(); got != 490000 {
		t.Fatalf("meters = %d, want 490000", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("resolving twice must panic")
		}
	}()
	d.Resolve(1)
}

func TestDistanceKeyIgnoresResolutionState(t *testing.T) {
	from := GeoPoint{Lat: 50.0, Lng: 30.0}
	to := GeoPoint{Lat: 49.0, Lng: 32.0}

	unresolved := NewDistance(from, to)
	resolved := ResolvedDistance(from, to, 123456)

	if unresolved.Key() != resolved.Key() {
		t.Fatal("pair key must not depend on resolution state")
	}
}
