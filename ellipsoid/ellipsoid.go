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

// Package ellipsoid models reference ellipsoids of the Earth. An Ellipsoid
// is immutable after creation and is shared by every projection built on it.
package ellipsoid

import "math"

// Ellipsoid holds the shape parameters of a reference ellipsoid. All derived
// quantities are computed once by New; the linear unit of A and B (meters for
// the named ellipsoids in this package) is the linear unit of every projected
// coordinate produced from the ellipsoid.
type Ellipsoid struct {
	Name string

	// A and B are the semi-major and semi-minor axes.
	A, B float64

	// Rf is the inverse flattening 1/f, or 0 for a sphere.
	Rf float64

	// F is the flattening (A-B)/A.
	F float64

	// E and E2 are the first eccentricity and its square;
	// Ep2 is the second eccentricity squared.
	E, E2, Ep2 float64

	// Sphere reports whether the eccentricity is zero.
	Sphere bool
}

// New creates an ellipsoid from a semi-major axis and inverse flattening.
// Passing rf == 0 creates a sphere of radius a.
func New(name string, a, rf float64) *Ellipsoid {
	e := &Ellipsoid{Name: name, A: a, Rf: rf}
	if rf == 0 {
		e.B = a
		e.Sphere = true
		return e
	}
	e.F = 1 / rf
	e.B = a * (1 - e.F)
	e.E2 = (a*a - e.B*e.B) / (a * a)
	e.E = math.Sqrt(e.E2)
	e.Ep2 = (a*a - e.B*e.B) / (e.B * e.B)
	return e
}

// PrimeVertical returns ν, the radius of curvature in the prime vertical
// at latitude lat (radians).
func (e *Ellipsoid) PrimeVertical(lat float64) float64 {
	s := math.Sin(lat)
	return e.A / math.Sqrt(1-e.E2*s*s)
}

// Meridian returns ρ, the radius of curvature of the meridian
// at latitude lat (radians).
func (e *Ellipsoid) Meridian(lat float64) float64 {
	s := math.Sin(lat)
	w2 := 1 - e.E2*s*s
	return e.A * (1 - e.E2) / (w2 * math.Sqrt(w2))
}

// ConformalSphere returns the radius of the conformal sphere at latitude
// lat (radians), the geometric mean of the two curvature radii.
func (e *Ellipsoid) ConformalSphere(lat float64) float64 {
	return math.Sqrt(e.Meridian(lat) * e.PrimeVertical(lat))
}

// Authalic returns the radius of the sphere with the same surface area as
// the ellipsoid.
func (e *Ellipsoid) Authalic() float64 {
	if e.Sphere {
		return e.A
	}
	qp := (1 - e.E2) * (1/(1-e.E2) - 1/(2*e.E)*math.Log((1-e.E)/(1+e.E)))
	return e.A * math.Sqrt(qp/2)
}
