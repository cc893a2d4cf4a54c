/*
Copyright (C) 2018 Regents of the University of Minnesota.
This file is part of GeoProj.

GeoProj is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GeoProj is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GeoProj.  If not, see <http://www.gnu.org/licenses/>.
*/

/*
Package geoproj implements forward and reverse geodetic coordinate
projections following the EPSG Guidance Note 7-2 and Snyder formulas.

Each projection method registers a builder under its EPSG method code (and
name aliases). NewProjection extracts the named parameters the method
requires, precomputes every derived constant, and returns a Projection whose
Forward and Reverse are pure functions; a Projection is immutable after
construction and safe for concurrent use.
*/
package geoproj

import (
	"fmt"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"
	"github.com/spatialmodel/geoproj/ellipsoid"
)

// A Transformer converts input coordinates to output coordinates. On the
// geographic side coordinates are longitude and latitude in radians; on the
// planar side they are easting and northing in the ellipsoid's linear unit.
type Transformer func(x, y float64) (X, Y float64, err error)

// A builder derives a projection's constants from its parameters and returns
// the forward and inverse transformers. A nil inverse marks the reverse
// operation as unsupported.
type builder func(p *Projection, par Params) (forward, inverse Transformer, err error)

var builders map[string]builder

// register adds a builder to the method registry under each of the given
// names. It is called from init functions, so by the time any caller can
// reach NewProjection the registry is complete and read-only.
func register(b builder, names ...string) {
	if builders == nil {
		builders = make(map[string]builder)
	}
	for _, n := range names {
		builders[strings.ToLower(n)] = b
	}
}

// Methods returns the registered method codes and name aliases.
func Methods() []string {
	names := make([]string, 0, len(builders))
	for n := range builders {
		names = append(names, n)
	}
	return names
}

// GeoCoordinate is a geographic coordinate with latitude and longitude in
// radians. Longitude is measured from the prime meridian, eastward positive.
type GeoCoordinate struct {
	Lat, Lon float64
	Height   float64
}

// Coordinate is a projected planar coordinate in the linear unit of the
// ellipsoid's semi-major axis.
type Coordinate struct {
	X, Y float64
	Z    float64
}

// AreaOfUse is the advisory region a projection is defined for, with bounds
// in degrees. Families that validate input range check against it; others
// carry it as metadata only.
type AreaOfUse struct {
	Bounds *geom.Bounds
}

// NewAreaOfUse creates an area of use from bounding longitudes and latitudes
// in degrees.
func NewAreaOfUse(minLon, minLat, maxLon, maxLat float64) *AreaOfUse {
	return &AreaOfUse{Bounds: &geom.Bounds{
		Min: geom.Point{X: minLon, Y: minLat},
		Max: geom.Point{X: maxLon, Y: maxLat},
	}}
}

// Contains reports whether latitude and longitude (radians) fall inside the
// area. A nil area contains everything.
func (a *AreaOfUse) Contains(lat, lon float64) bool {
	if a == nil || a.Bounds == nil {
		return true
	}
	x, y := lon*rad2deg, lat*rad2deg
	return x >= a.Bounds.Min.X && x <= a.Bounds.Max.X &&
		y >= a.Bounds.Min.Y && y <= a.Bounds.Max.Y
}

// Projection converts between geographic and projected coordinates. All
// derived constants are computed by NewProjection and captured by the
// forward and inverse closures; no state changes after construction.
type Projection struct {
	// Code is the method identifier the projection was constructed from,
	// normally an EPSG coordinate operation method code.
	Code string
	// Name is a display name.
	Name string

	Ellipsoid *ellipsoid.Ellipsoid
	Area      *AreaOfUse

	forward, inverse Transformer
}

// NewProjection creates a projection from a method identifier, display name,
// named parameters, ellipsoid, and advisory area of use. Missing or
// wrongly-dimensioned parameters are reported here, never by a later
// transform call.
func NewProjection(code, name string, par Params, ell *ellipsoid.Ellipsoid, area *AreaOfUse) (*Projection, error) {
	b, ok := builders[strings.ToLower(code)]
	if !ok {
		return nil, fmt.Errorf("geoproj: no projection method registered for %q", code)
	}
	if ell == nil {
		return nil, fmt.Errorf("geoproj: %s: nil ellipsoid", code)
	}
	p := &Projection{Code: code, Name: name, Ellipsoid: ell, Area: area}
	var err error
	p.forward, p.inverse, err = b(p, par)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Forward converts a geographic coordinate to a projected coordinate.
func (p *Projection) Forward(c GeoCoordinate) (Coordinate, error) {
	x, y, err := p.forward(c.Lon, c.Lat)
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{X: x, Y: y, Z: c.Height}, nil
}

// Reverse converts a projected coordinate back to a geographic coordinate.
// It returns an *UnsupportedError for methods with no practical inverse.
func (p *Projection) Reverse(c Coordinate) (GeoCoordinate, error) {
	if p.inverse == nil {
		return GeoCoordinate{}, &UnsupportedError{Method: p.Code, Op: "reverse"}
	}
	lon, lat, err := p.inverse(c.X, c.Y)
	if err != nil {
		return GeoCoordinate{}, err
	}
	return GeoCoordinate{Lat: lat, Lon: lon, Height: c.Z}, nil
}

// Project applies the forward transform to a geometry whose coordinates are
// longitude and latitude in degrees.
func (p *Projection) Project(g geom.Geom) (geom.Geom, error) {
	return g.Transform(proj.Transformer(func(x, y float64) (float64, float64, error) {
		return p.forward(x*deg2rad, y*deg2rad)
	}))
}

// Unproject applies the reverse transform to a projected geometry, returning
// coordinates in degrees.
func (p *Projection) Unproject(g geom.Geom) (geom.Geom, error) {
	if p.inverse == nil {
		return nil, &UnsupportedError{Method: p.Code, Op: "reverse"}
	}
	return g.Transform(proj.Transformer(func(x, y float64) (float64, float64, error) {
		lon, lat, err := p.inverse(x, y)
		return lon * rad2deg, lat * rad2deg, err
	}))
}
