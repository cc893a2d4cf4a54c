package geoproj

import (
	"testing"

	"github.com/spatialmodel/geoproj/ellipsoid"
)

// Levant zone parameters, the canonical use of the near-conformal method.
func levantProjection(t *testing.T) *Projection {
	t.Helper()
	p, err := NewProjection("EPSG:9817", "Levant Zone", Params{
		LatitudeOfNaturalOrigin:    Degrees(34.65),
		LongitudeOfNaturalOrigin:   Degrees(37.35),
		ScaleFactorAtNaturalOrigin: Scalar(0.99962560),
		FalseEasting:               Length(300000),
		FalseNorthing:              Length(300000),
	}, ellipsoid.Clarke1880IGN, nil)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLambertNearConformalRoundTrip(t *testing.T) {
	p := levantProjection(t)
	roundTrip(t, p, 37.5*deg2rad, 34.13*deg2rad, 1e-8)
	roundTrip(t, p, 33*deg2rad, 38*deg2rad, 1e-8)
	roundTrip(t, p, 34.65*deg2rad, 37.35*deg2rad, 1e-10)
}

func TestLambertNearConformalOrigin(t *testing.T) {
	p := levantProjection(t)
	c, err := p.Forward(GeoCoordinate{Lat: 34.65 * deg2rad, Lon: 37.35 * deg2rad})
	if err != nil {
		t.Fatal(err)
	}
	if c.X != 300000 || c.Y != 300000 {
		t.Errorf("natural origin: have (%f, %f), want the false origin (300000, 300000)",
			c.X, c.Y)
	}
}
