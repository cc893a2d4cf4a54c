package geoproj

import (
	"math"
	"testing"

	"github.com/gonum/floats"
	"github.com/spatialmodel/geoproj/ellipsoid"
)

func TestEquidistantCylindricalRoundTrip(t *testing.T) {
	p, err := NewProjection("EPSG:1028", "", Params{
		LatitudeOf1stStandardParallel: Degrees(0),
		LongitudeOfNaturalOrigin:      Degrees(0),
	}, ellipsoid.WGS84, nil)
	if err != nil {
		t.Fatal(err)
	}
	roundTrip(t, p, 55*deg2rad, 10*deg2rad, 1e-9)
	roundTrip(t, p, -23*deg2rad, -161*deg2rad, 1e-9)
}

func TestEquidistantCylindricalSpherical(t *testing.T) {
	p, err := NewProjection("EPSG:1029", "", Params{
		LatitudeOf1stStandardParallel: Degrees(0),
	}, ellipsoid.Sphere, nil)
	if err != nil {
		t.Fatal(err)
	}
	// On the sphere with the equator as standard parallel both axes are
	// plain arc length.
	c, err := p.Forward(GeoCoordinate{Lat: 0.5, Lon: 1})
	if err != nil {
		t.Fatal(err)
	}
	a := ellipsoid.Sphere.A
	if !floats.EqualWithinAbs(c.X, a, 1e-6) {
		t.Errorf("x: have %g, want %g", c.X, a)
	}
	if !floats.EqualWithinAbs(c.Y, 0.5*a, 1e-6) {
		t.Errorf("y: have %g, want %g", c.Y, 0.5*a)
	}
	roundTrip(t, p, 0.5, 1, 1e-12)
}

func TestCylindricalEqualAreaRoundTrip(t *testing.T) {
	p, err := NewProjection("EPSG:9835", "", Params{
		LatitudeOf1stStandardParallel: Degrees(5),
		LongitudeOfNaturalOrigin:      Degrees(-75),
	}, ellipsoid.WGS84, nil)
	if err != nil {
		t.Fatal(err)
	}
	roundTrip(t, p, 10*deg2rad, -78*deg2rad, 1e-8)
	roundTrip(t, p, -52*deg2rad, -75*deg2rad, 1e-8)
}

// The ellipsoidal equal-area formulas must converge to the spherical ones as
// the eccentricity goes to zero.
func TestCylindricalEqualAreaSphereConsistency(t *testing.T) {
	nearSphere := ellipsoid.New("near sphere", 6370997, 1e9)
	par := Params{
		LatitudeOf1stStandardParallel: Degrees(30),
	}
	pe, err := NewProjection("EPSG:9835", "", par, nearSphere, nil)
	if err != nil {
		t.Fatal(err)
	}
	ps, err := NewProjection("EPSG:9835", "", par, ellipsoid.Sphere, nil)
	if err != nil {
		t.Fatal(err)
	}
	c := GeoCoordinate{Lat: 42 * deg2rad, Lon: 13 * deg2rad}
	ce, err := pe.Forward(c)
	if err != nil {
		t.Fatal(err)
	}
	cs, err := ps.Forward(c)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(ce.X, cs.X, 0.1) || !floats.EqualWithinAbs(ce.Y, cs.Y, 0.1) {
		t.Errorf("ellipsoidal (%f, %f) and spherical (%f, %f) disagree",
			ce.X, ce.Y, cs.X, cs.Y)
	}
}

func TestSinusoidalRoundTrip(t *testing.T) {
	for _, ell := range []*ellipsoid.Ellipsoid{ellipsoid.WGS84, ellipsoid.Sphere} {
		p, err := NewProjection("Sinusoidal", "", Params{
			LongitudeOfNaturalOrigin: Degrees(-90),
		}, ell, nil)
		if err != nil {
			t.Fatal(err)
		}
		roundTrip(t, p, 40*deg2rad, -100*deg2rad, 1e-8)
		roundTrip(t, p, -66*deg2rad, -88*deg2rad, 1e-8)
	}
}

func TestSinusoidalPole(t *testing.T) {
	p, err := NewProjection("Sinusoidal", "", Params{
		LongitudeOfNaturalOrigin: Degrees(20),
	}, ellipsoid.WGS84, nil)
	if err != nil {
		t.Fatal(err)
	}
	xy, err := p.Forward(GeoCoordinate{Lat: math.Pi / 2, Lon: 100 * deg2rad})
	if err != nil {
		t.Fatal(err)
	}
	// All longitudes collapse at the pole, so the reverse reports the
	// central meridian.
	c, err := p.Reverse(xy)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(c.Lon, 20*deg2rad, 1e-9) {
		t.Errorf("longitude at the pole: have %g, want %g", c.Lon, 20*deg2rad)
	}
	if !floats.EqualWithinAbs(c.Lat, math.Pi/2, 1e-9) {
		t.Errorf("latitude at the pole: have %g, want %g", c.Lat, math.Pi/2)
	}
}
