package rpn

import (
	"math"
	"testing"
)

// pushAngle is a small helper; opBearingRange and opTravel pop plain
// dimensionless-radian quantities, so the tests build stacks directly rather
// than going through the literal/unit parsers.
func pushAngle(t *testing.T, s *Stack, v float64) {
	t.Helper()
	if err := s.Push(Quantity{Value: complex(v, 0)}); err != nil {
		t.Fatalf("setup push failed: %v", err)
	}
}

// br's stack effect (lon_a, lat_a, lon_b, lat_b) is written bottom-to-top,
// like opQuadratic's (a, b, c): lon_a is pushed first (bottom, popped last),
// lat_b is pushed last (top, popped first).
func pushFourAngles(t *testing.T, s *Stack, lonA, latA, lonB, latB float64) {
	t.Helper()
	pushAngle(t, s, lonA)
	pushAngle(t, s, latA)
	pushAngle(t, s, lonB)
	pushAngle(t, s, latB)
}

func TestBearingRangeSamePointShortCircuits(t *testing.T) {
	var s Stack
	pushFourAngles(t, &s, 0, 0, 0, 0)
	if err := dispatchToken(&s, nil, "br"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rng, _ := s.At(0)
	bearing, _ := s.At(1)
	if rng.Value != 0 || bearing.Value != 0 {
		t.Errorf("expected zero bearing and range, got bearing=%v range=%v", bearing.Value, rng.Value)
	}
}

// Point A and B sit on the same meridian (lon_a == lon_b == 0), 90 degrees
// of latitude apart: bearing is due north and range is a quarter of the
// great circle.
func TestBearingRangeQuarterMeridian(t *testing.T) {
	var s Stack
	pushFourAngles(t, &s, 0, 0, 0, math.Pi/2)
	if err := dispatchToken(&s, nil, "br"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rng, _ := s.At(0)
	bearing, _ := s.At(1)
	if math.Abs(real(bearing.Value)) > 1e-9 {
		t.Errorf("expected due-north bearing 0, got %v", bearing.Value)
	}
	want := earthRadiusMetres * math.Pi / 2
	if math.Abs(real(rng.Value)-want) > 1e-6 {
		t.Errorf("range = %v, want %v", real(rng.Value), want)
	}
	if rng.Units != (Dim{DimMetre: 1}) {
		t.Errorf("range units = %v, want metres", rng.Units)
	}
}

// Point A and B sit on the equator (lat_a == lat_b == 0), 90 degrees of
// longitude apart: bearing is due east. Unlike the meridian case above,
// this one varies longitude instead of latitude, so a lon/lat mixup in
// popFourAngles produces a different (wrong) bearing here.
func TestBearingRangeQuarterEquator(t *testing.T) {
	var s Stack
	pushFourAngles(t, &s, 0, 0, math.Pi/2, 0)
	if err := dispatchToken(&s, nil, "br"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rng, _ := s.At(0)
	bearing, _ := s.At(1)
	if math.Abs(real(bearing.Value)-math.Pi/2) > 1e-9 {
		t.Errorf("expected due-east bearing pi/2, got %v", bearing.Value)
	}
	want := earthRadiusMetres * math.Pi / 2
	if math.Abs(real(rng.Value)-want) > 1e-6 {
		t.Errorf("range = %v, want %v", real(rng.Value), want)
	}
}

func TestTravelAlongEquator(t *testing.T) {
	var s Stack
	// push order bottom-to-top: lon, lat, bearing, range
	pushAngle(t, &s, 0)         // lon
	pushAngle(t, &s, 0)         // lat
	pushAngle(t, &s, math.Pi/2) // bearing: due east
	if err := s.Push(Quantity{Value: complex(earthRadiusMetres*math.Pi/2, 0), Units: Dim{DimMetre: 1}}); err != nil {
		t.Fatalf("setup push failed: %v", err)
	}
	if err := dispatchToken(&s, nil, "travel"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	destLat, _ := s.At(0)
	destLon, _ := s.At(1)
	if math.Abs(real(destLat.Value)) > 1e-6 {
		t.Errorf("destLat = %v, want 0", real(destLat.Value))
	}
	if math.Abs(real(destLon.Value)-math.Pi/2) > 1e-6 {
		t.Errorf("destLon = %v, want pi/2", real(destLon.Value))
	}
}

// With a zero range, travel is a no-op: destLat must equal the starting
// latitude and destLon the starting longitude exactly, regardless of
// bearing. Using distinct lon and lat values here catches a lon/lat mixup
// in the pop order that TestTravelAlongEquator's lon==lat==0 case can't.
func TestTravelZeroRangeIsIdentity(t *testing.T) {
	var s Stack
	pushAngle(t, &s, math.Pi/6) // lon
	pushAngle(t, &s, math.Pi/4) // lat
	pushAngle(t, &s, math.Pi/3) // bearing: arbitrary, irrelevant at range 0
	pushAngle(t, &s, 0)         // range: zero
	if err := dispatchToken(&s, nil, "travel"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	destLat, _ := s.At(0)
	destLon, _ := s.At(1)
	if math.Abs(real(destLat.Value)-math.Pi/4) > 1e-9 {
		t.Errorf("destLat = %v, want pi/4 (starting latitude)", real(destLat.Value))
	}
	if math.Abs(real(destLon.Value)-math.Pi/6) > 1e-9 {
		t.Errorf("destLon = %v, want pi/6 (starting longitude)", real(destLon.Value))
	}
}

func TestTravelRejectsWrongRangeUnits(t *testing.T) {
	var s Stack
	pushAngle(t, &s, 0)
	pushAngle(t, &s, 0)
	pushAngle(t, &s, 0)
	if err := s.Push(Quantity{Value: 1, Units: Dim{DimSecond: 1}}); err != nil {
		t.Fatalf("setup push failed: %v", err)
	}
	if err := dispatchToken(&s, nil, "travel"); err != ErrInconsistentUnits {
		t.Errorf("expected ErrInconsistentUnits, got %v", err)
	}
}
