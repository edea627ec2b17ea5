package rpn

import "math"

// earthRadiusMetres is the sphere radius used by br and travel; it matches
// the registry's "Earth radius" constant.
const earthRadiusMetres = 6371000.0

// opBearingRange pops the stack effect (lon_a, lat_a, lon_b, lat_b) of
// dimensionless radians, written bottom-to-top (see popFourAngles), and
// pushes bearing_rad then range_m using the spherical
// haversine formula on a sphere of radius earthRadiusMetres. Bearing is
// normalised to [0, 2*pi).
func opBearingRange(s *Stack) error {
	lonA, latA, lonB, latB, err := popFourAngles(s)
	if err != nil {
		return err
	}

	if lonA == lonB && latA == latB {
		if err := s.Push(Quantity{Value: 0}); err != nil {
			return err
		}
		return s.Push(Quantity{Value: complex(0, 0), Units: Dim{DimMetre: 1}})
	}

	dLon := lonB - lonA
	bearing := math.Atan2(
		math.Sin(dLon)*math.Cos(latB),
		math.Cos(latA)*math.Sin(latB)-math.Sin(latA)*math.Cos(latB)*math.Cos(dLon),
	)
	bearing = math.Mod(bearing+2*math.Pi, 2*math.Pi)

	sinHalfDLat := math.Sin((latB - latA) / 2)
	sinHalfDLon := math.Sin(dLon / 2)
	a := sinHalfDLat*sinHalfDLat + math.Cos(latA)*math.Cos(latB)*sinHalfDLon*sinHalfDLon
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	rng := earthRadiusMetres * c

	if err := s.Push(Quantity{Value: complex(bearing, 0)}); err != nil {
		return err
	}
	return s.Push(Quantity{Value: complex(rng, 0), Units: Dim{DimMetre: 1}})
}

// opTravel pops the stack effect (lon, lat, bearing, range), written
// bottom-to-top: lon is at the bottom of the window (popped last), range is
// on top (popped first). It pushes the destination lon, lat using the
// spherical law of cosines and haversines. range may be dimensionless (an
// angular distance in radians) or in metres (divided by earthRadiusMetres
// first).
func opTravel(s *Stack) error {
	rangeQ, err := s.Pop()
	if err != nil {
		return err
	}
	bearingQ, err := s.Pop()
	if err != nil {
		return err
	}
	latQ, err := s.Pop()
	if err != nil {
		return err
	}
	lonQ, err := s.Pop()
	if err != nil {
		return err
	}

	var angularRange float64
	switch {
	case Dimensionless(rangeQ.Units):
		angularRange, err = requireReal(rangeQ)
		if err != nil {
			return err
		}
	case Equivalent(rangeQ.Units, Dim{DimMetre: 1}):
		r, err := requireReal(rangeQ)
		if err != nil {
			return err
		}
		angularRange = r / earthRadiusMetres
	default:
		return ErrInconsistentUnits
	}

	bearing, err := requireDimensionlessReal(bearingQ)
	if err != nil {
		return err
	}
	lon, err := requireDimensionlessReal(lonQ)
	if err != nil {
		return err
	}
	lat, err := requireDimensionlessReal(latQ)
	if err != nil {
		return err
	}

	destLat := math.Asin(math.Sin(lat)*math.Cos(angularRange) + math.Cos(lat)*math.Sin(angularRange)*math.Cos(bearing))
	destLon := lon + math.Atan2(
		math.Sin(bearing)*math.Sin(angularRange)*math.Cos(lat),
		math.Cos(angularRange)-math.Sin(lat)*math.Sin(destLat),
	)

	if err := s.Push(Quantity{Value: complex(destLon, 0)}); err != nil {
		return err
	}
	return s.Push(Quantity{Value: complex(destLat, 0)})
}

// popFourAngles pops the four stack slots backing br's documented
// (lon_a, lat_a, lon_b, lat_b) stack effect. That tuple is written
// bottom-to-top (as opQuadratic's a, b, c is), so lon_a sits at the bottom
// of the window and is popped last, and lat_b is on top and popped first.
func popFourAngles(s *Stack) (lonA, latA, lonB, latB float64, err error) {
	var top, second, third, bottom Quantity
	if top, err = s.Pop(); err != nil {
		return
	}
	if second, err = s.Pop(); err != nil {
		return
	}
	if third, err = s.Pop(); err != nil {
		return
	}
	if bottom, err = s.Pop(); err != nil {
		return
	}
	if latB, err = requireDimensionlessReal(top); err != nil {
		return
	}
	if lonB, err = requireDimensionlessReal(second); err != nil {
		return
	}
	if latA, err = requireDimensionlessReal(third); err != nil {
		return
	}
	lonA, err = requireDimensionlessReal(bottom)
	return
}
