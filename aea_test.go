package geoproj

import (
	"math"
	"testing"

	"github.com/gonum/floats"
	"github.com/spatialmodel/geoproj/ellipsoid"
)

func TestAlbersRoundTrip(t *testing.T) {
	p, err := NewProjection("EPSG:9822", "Conus Albers", Params{
		LatitudeOfFalseOrigin:         Degrees(23),
		LongitudeOfFalseOrigin:        Degrees(-96),
		LatitudeOf1stStandardParallel: Degrees(29.5),
		LatitudeOf2ndStandardParallel: Degrees(45.5),
	}, ellipsoid.GRS80, nil)
	if err != nil {
		t.Fatal(err)
	}
	roundTrip(t, p, 35*deg2rad, -75*deg2rad, 1e-6)
	roundTrip(t, p, 48*deg2rad, -122*deg2rad, 1e-6)
	roundTrip(t, p, 23*deg2rad, -96*deg2rad, 1e-6)
}

func TestAlbersSphereRoundTrip(t *testing.T) {
	p, err := NewProjection("EPSG:9822", "", Params{
		LatitudeOfFalseOrigin:         Degrees(0),
		LongitudeOfFalseOrigin:        Degrees(105),
		LatitudeOf1stStandardParallel: Degrees(-18),
		LatitudeOf2ndStandardParallel: Degrees(-36),
	}, ellipsoid.Sphere, nil)
	if err != nil {
		t.Fatal(err)
	}
	roundTrip(t, p, -25*deg2rad, 135*deg2rad, 1e-6)
}

func TestAlbersOppositeParallels(t *testing.T) {
	_, err := NewProjection("EPSG:9822", "", Params{
		LatitudeOfFalseOrigin:         Degrees(0),
		LatitudeOf1stStandardParallel: Degrees(30),
		LatitudeOf2ndStandardParallel: Degrees(-30),
	}, ellipsoid.WGS84, nil)
	if _, ok := err.(*ParamValueError); !ok {
		t.Fatalf("want *ParamValueError for opposing standard parallels, have %v", err)
	}
}

// phi1z recovers the geodetic latitude from the equal-area function.
func TestPhi1z(t *testing.T) {
	e := ellipsoid.WGS84.E
	for _, lat := range []float64{-1.3, -0.5, 0, 0.5, 1.2} {
		have, err := phi1z("test", e, qsfnz(e, math.Sin(lat)))
		if err != nil {
			t.Fatalf("phi1z at %g: %v", lat, err)
		}
		if !floats.EqualWithinAbs(have, lat, 1e-6) {
			t.Errorf("phi1z(q(%g)): have %g, want %g", lat, have, lat)
		}
	}
}
