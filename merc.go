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

package geoproj

import "math"

// mercMaxLat bounds the usable latitude range of the Mercator methods.
// The upstream catalog nominally allows latitudes almost to the poles, but
// northing grows without bound there; 88 degrees is the conventional cutoff.
const mercMaxLat = 88 * deg2rad

// mercator builds the shared Mercator transform. The variants differ only
// in how the scale factor at the natural origin is derived, so that
// derivation is the injected strategy.
func mercator(p *Projection, par Params, sphere bool, k0 float64) (Transformer, Transformer, error) {
	lon0, err := par.AngleDefault(p.Code, LongitudeOfNaturalOrigin, 0)
	if err != nil {
		return nil, nil, err
	}
	fe, err := par.LengthDefault(p.Code, FalseEasting, 0)
	if err != nil {
		return nil, nil, err
	}
	fn, err := par.LengthDefault(p.Code, FalseNorthing, 0)
	if err != nil {
		return nil, nil, err
	}
	a := p.Ellipsoid.A
	e := p.Ellipsoid.E

	forward := func(lon, lat float64) (float64, float64, error) {
		if math.Abs(lat) > mercMaxLat {
			return math.NaN(), math.NaN(), &DomainError{Method: p.Code,
				Reason: "latitude out of range"}
		}
		if !p.Area.Contains(lat, lon) {
			return math.NaN(), math.NaN(), &DomainError{Method: p.Code,
				Reason: "coordinate outside area of use"}
		}
		x := fe + a*k0*adjustLon(lon-lon0)
		var y float64
		if sphere {
			y = fn + a*k0*math.Log(math.Tan(fortPi+0.5*lat))
		} else {
			y = fn - a*k0*math.Log(tsfnz(e, lat, math.Sin(lat)))
		}
		return x, y, nil
	}

	inverse := func(x, y float64) (float64, float64, error) {
		var lat float64
		if sphere {
			lat = halfPi - 2*math.Atan(math.Exp((fn-y)/(a*k0)))
		} else {
			ts := math.Exp((fn - y) / (a * k0))
			var err error
			lat, err = phi2z(e, ts)
			if err != nil {
				return math.NaN(), math.NaN(), err
			}
		}
		lon := adjustLon(lon0 + (x-fe)/(a*k0))
		return lon, lat, nil
	}
	return forward, inverse, nil
}

// mercatorA is Mercator variant A (EPSG 9804): the scale factor is an
// explicit parameter and the natural origin must lie on the equator.
func mercatorA(p *Projection, par Params) (Transformer, Transformer, error) {
	lat0, err := par.AngleDefault(p.Code, LatitudeOfNaturalOrigin, 0)
	if err != nil {
		return nil, nil, err
	}
	if lat0 != 0 {
		return nil, nil, &ParamValueError{Method: p.Code,
			Reason: "latitude of natural origin must be zero"}
	}
	k0, err := par.Scalar(p.Code, ScaleFactorAtNaturalOrigin)
	if err != nil {
		return nil, nil, err
	}
	return mercator(p, par, p.Ellipsoid.Sphere, k0)
}

// mercatorB is Mercator variant B (EPSG 9805): the scale factor is derived
// from the latitude of the first standard parallel.
func mercatorB(p *Projection, par Params) (Transformer, Transformer, error) {
	lat1, err := par.Angle(p.Code, LatitudeOf1stStandardParallel)
	if err != nil {
		return nil, nil, err
	}
	var k0 float64
	if p.Ellipsoid.Sphere {
		k0 = math.Cos(lat1)
	} else {
		k0 = msfnz(p.Ellipsoid.E, math.Sin(lat1), math.Cos(lat1))
	}
	return mercator(p, par, p.Ellipsoid.Sphere, k0)
}

// pseudoMercator is the Popular Visualisation Pseudo Mercator (EPSG 1024):
// spherical formulas applied with the ellipsoid's semi-major axis as the
// sphere radius.
func pseudoMercator(p *Projection, par Params) (Transformer, Transformer, error) {
	lat0, err := par.AngleDefault(p.Code, LatitudeOfNaturalOrigin, 0)
	if err != nil {
		return nil, nil, err
	}
	if lat0 != 0 {
		return nil, nil, &ParamValueError{Method: p.Code,
			Reason: "latitude of natural origin must be zero"}
	}
	return mercator(p, par, true, 1)
}

func init() {
	register(mercatorA, "EPSG:9804", "Mercator (variant A)", "Mercator_1SP")
	register(mercatorB, "EPSG:9805", "Mercator (variant B)", "Mercator_2SP")
	register(pseudoMercator, "EPSG:1024",
		"Popular Visualisation Pseudo Mercator", "Pseudo_Mercator")
}
