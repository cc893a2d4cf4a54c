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

// bonne is the Bonne pseudoconic equal-area projection (EPSG 9827).
func bonne(p *Projection, par Params) (Transformer, Transformer, error) {
	lat1, err := par.Angle(p.Code, LatitudeOfNaturalOrigin)
	if err != nil {
		return nil, nil, err
	}
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
	if math.Abs(lat1) <= epsln {
		return nil, nil, &ParamValueError{Method: p.Code,
			Reason: "latitude of natural origin cannot be zero (use Sinusoidal)"}
	}

	a := p.Ellipsoid.A
	es := p.Ellipsoid.E2
	e0 := e0fn(es)
	e1 := e1fn(es)
	e2 := e2fn(es)
	e3 := e3fn(es)

	sin1 := math.Sin(lat1)
	m1 := math.Cos(lat1) / math.Sqrt(1-es*sin1*sin1)
	ml1 := mlfn(e0, e1, e2, e3, lat1)
	// Cone apex distance from the natural origin.
	am1 := a*m1/sin1 + a*ml1

	forward := func(lon, lat float64) (float64, float64, error) {
		s := math.Sin(lat)
		m := math.Cos(lat) / math.Sqrt(1-es*s*s)
		rho := am1 - a*mlfn(e0, e1, e2, e3, lat)
		t := a * m * adjustLon(lon-lon0) / rho
		x := fe + rho*math.Sin(t)
		y := fn + a*m1/sin1 - rho*math.Cos(t)
		return x, y, nil
	}

	inverse := func(x, y float64) (float64, float64, error) {
		dx := x - fe
		dy := a*m1/sin1 - (y - fn)
		rho := sign(lat1) * math.Sqrt(dx*dx+dy*dy)
		lat, err := imlfn(p.Code, (am1-rho)/a, e0, e1, e2, e3)
		if err != nil {
			return math.NaN(), math.NaN(), err
		}
		if math.Abs(math.Abs(lat)-halfPi) <= epsln {
			return lon0, lat, nil
		}
		s := math.Sin(lat)
		m := math.Cos(lat) / math.Sqrt(1-es*s*s)
		var t float64
		if lat1 > 0 {
			t = math.Atan2(dx, dy)
		} else {
			t = math.Atan2(-dx, -dy)
		}
		lon := adjustLon(lon0 + rho*t/(a*m))
		return lon, lat, nil
	}
	return forward, inverse, nil
}

func init() {
	register(bonne, "EPSG:9827", "Bonne", "bonne")
}
