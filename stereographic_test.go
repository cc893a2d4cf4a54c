package geoproj

import (
	"testing"

	"github.com/gonum/floats"
	"github.com/spatialmodel/geoproj/ellipsoid"
)

// Universal Polar Stereographic worked example: 73°N 44°E maps to
// E 3320416.75, N 632668.43.
func TestPolarStereographicAKnownPoint(t *testing.T) {
	p, err := NewProjection("EPSG:9810", "UPS North", Params{
		LatitudeOfNaturalOrigin:    Degrees(90),
		LongitudeOfNaturalOrigin:   Degrees(0),
		ScaleFactorAtNaturalOrigin: Scalar(0.994),
		FalseEasting:               Length(2000000),
		FalseNorthing:              Length(2000000),
	}, ellipsoid.WGS84, nil)
	if err != nil {
		t.Fatal(err)
	}
	c, err := p.Forward(GeoCoordinate{Lat: 73 * deg2rad, Lon: 44 * deg2rad})
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(c.X, 3320416.75, 0.1) {
		t.Errorf("easting: have %.2f, want 3320416.75", c.X)
	}
	if !floats.EqualWithinAbs(c.Y, 632668.43, 0.1) {
		t.Errorf("northing: have %.2f, want 632668.43", c.Y)
	}
	roundTrip(t, p, 73*deg2rad, 44*deg2rad, 1e-8)
}

func TestPolarStereographicANonPolarOrigin(t *testing.T) {
	_, err := NewProjection("EPSG:9810", "", Params{
		LatitudeOfNaturalOrigin:    Degrees(80),
		ScaleFactorAtNaturalOrigin: Scalar(0.994),
	}, ellipsoid.WGS84, nil)
	if _, ok := err.(*ParamValueError); !ok {
		t.Fatalf("want *ParamValueError for a non-polar origin, have %v", err)
	}
}

// A point with the false easting exactly must come back on the origin
// meridian, bitwise, not merely within tolerance.
func TestPolarStereographicOriginMeridian(t *testing.T) {
	p, err := NewProjection("EPSG:9810", "", Params{
		LatitudeOfNaturalOrigin:    Degrees(-90),
		LongitudeOfNaturalOrigin:   Degrees(70),
		ScaleFactorAtNaturalOrigin: Scalar(1),
		FalseEasting:               Length(6000000),
		FalseNorthing:              Length(6000000),
	}, ellipsoid.WGS84, nil)
	if err != nil {
		t.Fatal(err)
	}
	c, err := p.Reverse(Coordinate{X: 6000000, Y: 7000000})
	if err != nil {
		t.Fatal(err)
	}
	if c.Lon != 70*deg2rad {
		t.Errorf("longitude on the origin meridian: have %v, want %v", c.Lon, 70*deg2rad)
	}
}

func TestPolarStereographicBRoundTrip(t *testing.T) {
	p, err := NewProjection("EPSG:9829", "Australian Antarctic", Params{
		LatitudeOfStandardParallel: Degrees(-71),
		LongitudeOfOrigin:          Degrees(70),
		FalseEasting:               Length(6000000),
		FalseNorthing:              Length(6000000),
	}, ellipsoid.WGS84, nil)
	if err != nil {
		t.Fatal(err)
	}
	roundTrip(t, p, -75*deg2rad, 120*deg2rad, 1e-8)
	roundTrip(t, p, -71*deg2rad, 70*deg2rad, 1e-8)
}

// At the standard parallel the point scale of variant B must be one.
func TestPolarStereographicBScale(t *testing.T) {
	e := ellipsoid.WGS84.E
	k0 := polarScaleFromParallel(e, -71*deg2rad)
	if k0 >= 1 || k0 < 0.9 {
		t.Errorf("derived scale factor %f not in (0.9, 1)", k0)
	}
}

// Variant C differs from variant B only by a false-origin shift along the
// northing axis.
func TestPolarStereographicCConsistency(t *testing.T) {
	pc, err := NewProjection("EPSG:9830", "Petrels", Params{
		LatitudeOfStandardParallel: Degrees(-67),
		LongitudeOfOrigin:          Degrees(140),
		EastingAtFalseOrigin:       Length(300000),
		NorthingAtFalseOrigin:      Length(200000),
	}, ellipsoid.International1924, nil)
	if err != nil {
		t.Fatal(err)
	}
	pb, err := NewProjection("EPSG:9829", "", Params{
		LatitudeOfStandardParallel: Degrees(-67),
		LongitudeOfOrigin:          Degrees(140),
		FalseEasting:               Length(300000),
		FalseNorthing:              Length(200000),
	}, ellipsoid.International1924, nil)
	if err != nil {
		t.Fatal(err)
	}
	g := GeoCoordinate{Lat: -66.6 * deg2rad, Lon: 140.07 * deg2rad}
	cc, err := pc.Forward(g)
	if err != nil {
		t.Fatal(err)
	}
	cb, err := pb.Forward(g)
	if err != nil {
		t.Fatal(err)
	}
	if cc.X != cb.X {
		t.Errorf("eastings differ between variants B and C: %f vs %f", cc.X, cb.X)
	}
	if cc.Y == cb.Y {
		t.Error("variant C northing must be offset from variant B")
	}
	roundTrip(t, pc, -66.6*deg2rad, 140.07*deg2rad, 1e-8)
}

// Oblique stereographic worked example for the Dutch RD grid: 53°N 6°E maps
// to E 196105.28, N 557057.74.
func TestObliqueStereographicRD(t *testing.T) {
	p, err := NewProjection("EPSG:9809", "RD New", Params{
		LatitudeOfNaturalOrigin:    Degrees(52.156160556),
		LongitudeOfNaturalOrigin:   Degrees(5.387638889),
		ScaleFactorAtNaturalOrigin: Scalar(0.9999079),
		FalseEasting:               Length(155000),
		FalseNorthing:              Length(463000),
	}, ellipsoid.Bessel1841, nil)
	if err != nil {
		t.Fatal(err)
	}
	c, err := p.Forward(GeoCoordinate{Lat: 53 * deg2rad, Lon: 6 * deg2rad})
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(c.X, 196105.28, 0.1) {
		t.Errorf("easting: have %.2f, want 196105.28", c.X)
	}
	if !floats.EqualWithinAbs(c.Y, 557057.74, 0.1) {
		t.Errorf("northing: have %.2f, want 557057.74", c.Y)
	}
	roundTrip(t, p, 53*deg2rad, 6*deg2rad, 1e-8)
	roundTrip(t, p, 51*deg2rad, 4*deg2rad, 1e-8)
}
