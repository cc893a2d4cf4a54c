package geoproj

import (
	"testing"

	"github.com/gonum/floats"
	"github.com/spatialmodel/geoproj/ellipsoid"
)

func TestLCC1SPRoundTrip(t *testing.T) {
	p, err := NewProjection("EPSG:9801", "Jamaica National Grid", Params{
		LatitudeOfNaturalOrigin:    Degrees(18),
		LongitudeOfNaturalOrigin:   Degrees(-77),
		ScaleFactorAtNaturalOrigin: Scalar(1),
		FalseEasting:               Length(250000),
		FalseNorthing:              Length(150000),
	}, ellipsoid.Clarke1866, nil)
	if err != nil {
		t.Fatal(err)
	}
	roundTrip(t, p, 17.932*deg2rad, -76.944*deg2rad, 1e-8)
	roundTrip(t, p, 18.5*deg2rad, -78*deg2rad, 1e-8)
}

// The West Orientated variant differs from the plain 1SP method only in the
// direction of the easting axis, so the two eastings mirror around the false
// easting.
func TestLCC1SPWestOrientated(t *testing.T) {
	par := Params{
		LatitudeOfNaturalOrigin:    Degrees(18),
		LongitudeOfNaturalOrigin:   Degrees(-77),
		ScaleFactorAtNaturalOrigin: Scalar(1),
		FalseEasting:               Length(250000),
		FalseNorthing:              Length(150000),
	}
	east, err := NewProjection("EPSG:9801", "", par, ellipsoid.Clarke1866, nil)
	if err != nil {
		t.Fatal(err)
	}
	west, err := NewProjection("EPSG:9826", "", par, ellipsoid.Clarke1866, nil)
	if err != nil {
		t.Fatal(err)
	}
	c := GeoCoordinate{Lat: 18.2 * deg2rad, Lon: -76.5 * deg2rad}
	ce, err := east.Forward(c)
	if err != nil {
		t.Fatal(err)
	}
	cw, err := west.Forward(c)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(ce.X+cw.X, 2*250000, 1e-6) {
		t.Errorf("eastings %f and %f do not mirror around the false easting", ce.X, cw.X)
	}
	if ce.Y != cw.Y {
		t.Errorf("northings differ: %f vs %f", ce.Y, cw.Y)
	}
	roundTrip(t, west, 18.2*deg2rad, -76.5*deg2rad, 1e-8)
}

func TestLCC2SPRoundTrip(t *testing.T) {
	p, err := NewProjection("EPSG:9802", "Texas South Central", Params{
		LatitudeOfFalseOrigin:         Degrees(27 + 50.0/60),
		LongitudeOfFalseOrigin:        Degrees(-99),
		LatitudeOf1stStandardParallel: Degrees(28 + 23.0/60),
		LatitudeOf2ndStandardParallel: Degrees(30 + 17.0/60),
		EastingAtFalseOrigin:          Length(609601.22),
		NorthingAtFalseOrigin:         Length(0),
	}, ellipsoid.Clarke1866, nil)
	if err != nil {
		t.Fatal(err)
	}
	roundTrip(t, p, 28.5*deg2rad, -96*deg2rad, 1e-8)
	roundTrip(t, p, 31*deg2rad, -103*deg2rad, 1e-8)
}

// The Belgium variant subtracts a fixed 29.2985 arc-second correction from
// the cone angle, shifting every easting west of the plain 2SP result.
func TestLCC2SPBelgium(t *testing.T) {
	par := Params{
		LatitudeOfFalseOrigin:         Degrees(90),
		LongitudeOfFalseOrigin:        Degrees(4.356939),
		LatitudeOf1stStandardParallel: Degrees(49.833334),
		LatitudeOf2ndStandardParallel: Degrees(51.166667),
		EastingAtFalseOrigin:          Length(150000.01),
		NorthingAtFalseOrigin:         Length(5400088.44),
	}
	plain, err := NewProjection("EPSG:9802", "", par, ellipsoid.International1924, nil)
	if err != nil {
		t.Fatal(err)
	}
	belgium, err := NewProjection("EPSG:9803", "", par, ellipsoid.International1924, nil)
	if err != nil {
		t.Fatal(err)
	}
	c := GeoCoordinate{Lat: 50.679573 * deg2rad, Lon: 5.807370 * deg2rad}
	cp, err := plain.Forward(c)
	if err != nil {
		t.Fatal(err)
	}
	cb, err := belgium.Forward(c)
	if err != nil {
		t.Fatal(err)
	}
	if cb.X >= cp.X {
		t.Errorf("Belgium easting %f not west of plain 2SP easting %f", cb.X, cp.X)
	}
	// The correction is 1.42e-4 rad applied at roughly 4400 km from the
	// cone apex, several hundred meters on the ground.
	if d := cp.X - cb.X; d > 1000 || d < 300 {
		t.Errorf("Belgium correction shifted easting by %f m, want several hundred meters", d)
	}
	roundTrip(t, belgium, 50.679573*deg2rad, 5.807370*deg2rad, 1e-8)
}

func TestLCCOppositePole(t *testing.T) {
	p, err := NewProjection("EPSG:9801", "", Params{
		LatitudeOfNaturalOrigin:    Degrees(45),
		LongitudeOfNaturalOrigin:   Degrees(0),
		ScaleFactorAtNaturalOrigin: Scalar(1),
	}, ellipsoid.WGS84, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = p.Forward(GeoCoordinate{Lat: -halfPi, Lon: 0})
	if _, ok := err.(*DomainError); !ok {
		t.Fatalf("want *DomainError at the pole opposite the cone apex, have %v", err)
	}
}
