package geoproj

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
	"github.com/gonum/floats"
	"github.com/spatialmodel/geoproj/ellipsoid"
)

func TestNewProjectionUnknownCode(t *testing.T) {
	_, err := NewProjection("EPSG:0000", "", nil, ellipsoid.WGS84, nil)
	if err == nil {
		t.Fatal("want error for unknown method code, have nil")
	}
}

func TestNewProjectionNilEllipsoid(t *testing.T) {
	_, err := NewProjection("EPSG:9804", "", Params{
		LatitudeOfNaturalOrigin:    Angle(0),
		ScaleFactorAtNaturalOrigin: Scalar(1),
	}, nil, nil)
	if err == nil {
		t.Fatal("want error for nil ellipsoid, have nil")
	}
}

func TestMethodsRegistered(t *testing.T) {
	methods := Methods()
	if len(methods) == 0 {
		t.Fatal("no projection methods registered")
	}
	for _, code := range []string{"epsg:9804", "epsg:9807", "epsg:9820",
		"epsg:9819", "utm", "sinusoidal"} {
		if _, ok := builders[code]; !ok {
			t.Errorf("method %q not registered", code)
		}
	}
}

func TestCaseInsensitiveLookup(t *testing.T) {
	par := Params{ZoneNumber: Scalar(31)}
	for _, code := range []string{"utm", "UTM", "Utm"} {
		if _, err := NewProjection(code, "", par, ellipsoid.WGS84, nil); err != nil {
			t.Errorf("NewProjection(%q): %v", code, err)
		}
	}
}

func TestReverseUnsupported(t *testing.T) {
	p, err := NewProjection("EPSG:9838", "", Params{
		LatitudeOfNaturalOrigin:  Degrees(45),
		LongitudeOfNaturalOrigin: Degrees(0),
		ViewPointHeight:          Length(5900000),
	}, ellipsoid.WGS84, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = p.Reverse(Coordinate{X: 0, Y: 0})
	if _, ok := err.(*UnsupportedError); !ok {
		t.Fatalf("want *UnsupportedError, have %v", err)
	}
	if _, err := p.Unproject(geom.Point{}); err == nil {
		t.Fatal("want error from Unproject on a forward-only method, have nil")
	}
}

func TestProjectGeometry(t *testing.T) {
	p, err := NewProjection("EPSG:1024", "", Params{
		LatitudeOfNaturalOrigin:  Angle(0),
		LongitudeOfNaturalOrigin: Angle(0),
	}, ellipsoid.WGS84, nil)
	if err != nil {
		t.Fatal(err)
	}
	g, err := p.Project(geom.Point{X: 90, Y: 0})
	if err != nil {
		t.Fatal(err)
	}
	pt, ok := g.(geom.Point)
	if !ok {
		t.Fatalf("want geom.Point, have %T", g)
	}
	want := ellipsoid.WGS84.A * math.Pi / 2
	if !floats.EqualWithinAbs(pt.X, want, 1e-6) {
		t.Errorf("projected X: have %g, want %g", pt.X, want)
	}
	if !floats.EqualWithinAbs(pt.Y, 0, 1e-6) {
		t.Errorf("projected Y: have %g, want 0", pt.Y)
	}

	back, err := p.Unproject(pt)
	if err != nil {
		t.Fatal(err)
	}
	bpt := back.(geom.Point)
	if !floats.EqualWithinAbs(bpt.X, 90, 1e-9) || !floats.EqualWithinAbs(bpt.Y, 0, 1e-9) {
		t.Errorf("unprojected point: have (%g, %g), want (90, 0)", bpt.X, bpt.Y)
	}
}

func TestAreaOfUseContains(t *testing.T) {
	area := NewAreaOfUse(-10, 35, 30, 70)
	if !area.Contains(50*deg2rad, 10*deg2rad) {
		t.Error("point inside the area reported outside")
	}
	if area.Contains(20*deg2rad, 10*deg2rad) {
		t.Error("point outside the area reported inside")
	}
	var nilArea *AreaOfUse
	if !nilArea.Contains(0, 0) {
		t.Error("nil area must contain everything")
	}
}

func TestConstructionDeterminism(t *testing.T) {
	par := Params{
		LatitudeOfNaturalOrigin:    Degrees(49),
		LongitudeOfNaturalOrigin:   Degrees(-2),
		ScaleFactorAtNaturalOrigin: Scalar(0.9996012717),
		FalseEasting:               Length(400000),
		FalseNorthing:              Length(-100000),
	}
	p1, err := NewProjection("EPSG:9807", "", par, ellipsoid.Airy1830, nil)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := NewProjection("EPSG:9807", "", par, ellipsoid.Airy1830, nil)
	if err != nil {
		t.Fatal(err)
	}
	c := GeoCoordinate{Lat: 50.5 * deg2rad, Lon: 0.5 * deg2rad}
	xy1, err := p1.Forward(c)
	if err != nil {
		t.Fatal(err)
	}
	xy2, err := p2.Forward(c)
	if err != nil {
		t.Fatal(err)
	}
	if xy1 != xy2 {
		t.Errorf("same parameters, different results: %v vs %v", xy1, xy2)
	}
}
