package geoproj

import (
	"testing"

	"github.com/gonum/floats"
	"github.com/spatialmodel/geoproj/ellipsoid"
)

// Timbalai 1948 / RSO Borneo parameters on the Everest 1830 ellipsoid, the
// canonical Hotine variant B use.
func borneoParams() Params {
	return Params{
		LatitudeOfProjectionCentre:   Degrees(4),
		LongitudeOfProjectionCentre:  Degrees(115),
		AzimuthOfInitialLine:         Degrees(53.315820472),
		AngleFromRectifiedToSkewGrid: Degrees(53.130102361),
		ScaleFactorOnInitialLine:     Scalar(0.99984),
		EastingAtProjectionCentre:    Length(590476.87),
		NorthingAtProjectionCentre:   Length(442857.65),
	}
}

var everest = ellipsoid.New("Everest 1830 (1967 Definition)", 6377298.556, 300.8017)

func TestHotineObliqueMercatorB(t *testing.T) {
	p, err := NewProjection("EPSG:9815", "RSO Borneo", borneoParams(), everest, nil)
	if err != nil {
		t.Fatal(err)
	}
	c, err := p.Forward(GeoCoordinate{
		Lat: 5.387253558 * deg2rad, Lon: 115.805550773 * deg2rad})
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(c.X, 679245.73, 0.5) {
		t.Errorf("easting: have %.2f, want 679245.73", c.X)
	}
	if !floats.EqualWithinAbs(c.Y, 596562.78, 0.5) {
		t.Errorf("northing: have %.2f, want 596562.78", c.Y)
	}
	roundTrip(t, p, 5.387253558*deg2rad, 115.805550773*deg2rad, 1e-8)
	roundTrip(t, p, 4*deg2rad, 115*deg2rad, 1e-8)
}

func TestHotineObliqueMercatorA(t *testing.T) {
	par := borneoParams()
	delete(par, EastingAtProjectionCentre)
	delete(par, NorthingAtProjectionCentre)
	par[FalseEasting] = Length(0)
	par[FalseNorthing] = Length(0)
	p, err := NewProjection("EPSG:9812", "", par, everest, nil)
	if err != nil {
		t.Fatal(err)
	}
	roundTrip(t, p, 5.4*deg2rad, 115.8*deg2rad, 1e-8)
	roundTrip(t, p, 3*deg2rad, 114*deg2rad, 1e-8)
}

// Variants A and B of the same definition differ only by a constant offset
// along the rotated axes.
func TestHotineVariantOffset(t *testing.T) {
	pb, err := NewProjection("EPSG:9815", "", borneoParams(), everest, nil)
	if err != nil {
		t.Fatal(err)
	}
	par := borneoParams()
	delete(par, EastingAtProjectionCentre)
	delete(par, NorthingAtProjectionCentre)
	pa, err := NewProjection("EPSG:9812", "", par, everest, nil)
	if err != nil {
		t.Fatal(err)
	}
	c1 := GeoCoordinate{Lat: 5 * deg2rad, Lon: 115.5 * deg2rad}
	c2 := GeoCoordinate{Lat: 4.5 * deg2rad, Lon: 115 * deg2rad}
	b1, err := pb.Forward(c1)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := pb.Forward(c2)
	if err != nil {
		t.Fatal(err)
	}
	a1, err := pa.Forward(c1)
	if err != nil {
		t.Fatal(err)
	}
	a2, err := pa.Forward(c2)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(b1.X-a1.X, b2.X-a2.X, 1e-6) {
		t.Errorf("easting offsets differ: %f vs %f", b1.X-a1.X, b2.X-a2.X)
	}
	if !floats.EqualWithinAbs(b1.Y-a1.Y, b2.Y-a2.Y, 1e-6) {
		t.Errorf("northing offsets differ: %f vs %f", b1.Y-a1.Y, b2.Y-a2.Y)
	}
}

func TestLabordeRoundTrip(t *testing.T) {
	p, err := NewProjection("EPSG:9813", "Laborde Grid", Params{
		LatitudeOfProjectionCentre:  Degrees(-18.9),
		LongitudeOfProjectionCentre: Degrees(46.437229167),
		AzimuthOfInitialLine:        Degrees(18.9),
		ScaleFactorOnInitialLine:    Scalar(0.9995),
		FalseEasting:                Length(400000),
		FalseNorthing:               Length(800000),
	}, ellipsoid.International1924, nil)
	if err != nil {
		t.Fatal(err)
	}
	roundTrip(t, p, -17.983*deg2rad, 44.459*deg2rad, 1e-8)
	roundTrip(t, p, -18.9*deg2rad, 46.437229167*deg2rad, 1e-8)
	roundTrip(t, p, -22*deg2rad, 47.5*deg2rad, 1e-8)
}
