package geoproj

import (
	"testing"

	"github.com/gonum/floats"
	"github.com/spatialmodel/geoproj/ellipsoid"
)

// British National Grid example: 50°30'N 0°30'E should land on
// E 577274.99, N 69740.50.
func TestTransverseMercatorOSGB(t *testing.T) {
	p, err := NewProjection("EPSG:9807", "British National Grid", Params{
		LatitudeOfNaturalOrigin:    Degrees(49),
		LongitudeOfNaturalOrigin:   Degrees(-2),
		ScaleFactorAtNaturalOrigin: Scalar(0.9996012717),
		FalseEasting:               Length(400000),
		FalseNorthing:              Length(-100000),
	}, ellipsoid.Airy1830, nil)
	if err != nil {
		t.Fatal(err)
	}
	c, err := p.Forward(GeoCoordinate{Lat: 50.5 * deg2rad, Lon: 0.5 * deg2rad})
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(c.X, 577274.99, 0.05) {
		t.Errorf("easting: have %.2f, want 577274.99", c.X)
	}
	if !floats.EqualWithinAbs(c.Y, 69740.50, 0.05) {
		t.Errorf("northing: have %.2f, want 69740.50", c.Y)
	}
	roundTrip(t, p, 50.5*deg2rad, 0.5*deg2rad, 1e-8)
}

func TestTransverseMercatorSphere(t *testing.T) {
	p, err := NewProjection("EPSG:9807", "", Params{
		LongitudeOfNaturalOrigin: Degrees(-75),
	}, ellipsoid.Sphere, nil)
	if err != nil {
		t.Fatal(err)
	}
	roundTrip(t, p, 40*deg2rad, -73*deg2rad, 1e-9)
	roundTrip(t, p, -35*deg2rad, -77*deg2rad, 1e-9)
}

// The false origin applies on the sphere the same as on the ellipsoid.
func TestTransverseMercatorSphereFalseOrigin(t *testing.T) {
	p, err := NewProjection("EPSG:9807", "", Params{
		LatitudeOfNaturalOrigin:  Degrees(40),
		LongitudeOfNaturalOrigin: Degrees(-75),
		FalseEasting:             Length(300000),
		FalseNorthing:            Length(700000),
	}, ellipsoid.Sphere, nil)
	if err != nil {
		t.Fatal(err)
	}
	c, err := p.Forward(GeoCoordinate{Lat: 40 * deg2rad, Lon: -75 * deg2rad})
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(c.X, 300000, 1e-6) {
		t.Errorf("natural origin easting: have %g, want 300000", c.X)
	}
	if !floats.EqualWithinAbs(c.Y, 700000, 1e-6) {
		t.Errorf("natural origin northing: have %g, want 700000", c.Y)
	}
	roundTrip(t, p, 42*deg2rad, -71*deg2rad, 1e-9)
}

func TestUTM(t *testing.T) {
	p, err := NewProjection("UTM", "", Params{
		ZoneNumber: Scalar(31),
	}, ellipsoid.WGS84, nil)
	if err != nil {
		t.Fatal(err)
	}
	// The central meridian of zone 31 is 3°E; a point on it maps to the
	// 500 km false easting.
	c, err := p.Forward(GeoCoordinate{Lat: 48 * deg2rad, Lon: 3 * deg2rad})
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(c.X, 500000, 1e-6) {
		t.Errorf("central meridian easting: have %g, want 500000", c.X)
	}
	roundTrip(t, p, 48*deg2rad, 5*deg2rad, 1e-8)
}

func TestUTMSouth(t *testing.T) {
	p, err := NewProjection("UTM", "", Params{
		ZoneNumber: Scalar(-56), // zone 56, southern hemisphere
	}, ellipsoid.WGS84, nil)
	if err != nil {
		t.Fatal(err)
	}
	c, err := p.Forward(GeoCoordinate{Lat: -33.9 * deg2rad, Lon: 151.2 * deg2rad})
	if err != nil {
		t.Fatal(err)
	}
	if c.Y < 5000000 || c.Y > 10000000 {
		t.Errorf("southern hemisphere northing %g not offset by the false northing", c.Y)
	}
	roundTrip(t, p, -33.9*deg2rad, 151.2*deg2rad, 1e-8)
}

func TestUTMZoneRange(t *testing.T) {
	for _, zone := range []float64{0, 61, -61} {
		_, err := NewProjection("UTM", "", Params{
			ZoneNumber: Scalar(zone),
		}, ellipsoid.WGS84, nil)
		if _, ok := err.(*ParamValueError); !ok {
			t.Errorf("zone %g: want *ParamValueError, have %v", zone, err)
		}
	}
}

func TestUTMZoneSelection(t *testing.T) {
	tests := []struct {
		lat, lon float64 // degrees
		want     float64
	}{
		{48, 3.5, 31},
		{48, 2.9, 31},
		{40, -74, 18},
		{-33.9, 151.2, -56},
		{0, -180, 1},
		{0, 179.9, 60},
	}
	for _, test := range tests {
		have := UTMZone(test.lat*deg2rad, test.lon*deg2rad)
		if have != test.want {
			t.Errorf("UTMZone(%g, %g): have %g, want %g",
				test.lat, test.lon, have, test.want)
		}
	}
}
