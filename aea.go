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

// albersEqualArea is the Albers Equal Area conic projection (EPSG 9822).
func albersEqualArea(p *Projection, par Params) (Transformer, Transformer, error) {
	latF, err := par.Angle(p.Code, LatitudeOfFalseOrigin)
	if err != nil {
		return nil, nil, err
	}
	lonF, err := par.AngleDefault(p.Code, LongitudeOfFalseOrigin, 0)
	if err != nil {
		return nil, nil, err
	}
	lat1, err := par.Angle(p.Code, LatitudeOf1stStandardParallel)
	if err != nil {
		return nil, nil, err
	}
	lat2, err := par.AngleDefault(p.Code, LatitudeOf2ndStandardParallel, lat1)
	if err != nil {
		return nil, nil, err
	}
	fe, err := par.LengthDefault(p.Code, EastingAtFalseOrigin, 0)
	if err != nil {
		return nil, nil, err
	}
	fn, err := par.LengthDefault(p.Code, NorthingAtFalseOrigin, 0)
	if err != nil {
		return nil, nil, err
	}
	if math.Abs(lat1+lat2) < epsln {
		return nil, nil, &ParamValueError{Method: p.Code,
			Reason: "standard parallels cannot be equal and on opposite sides of the equator"}
	}

	a := p.Ellipsoid.A
	e := p.Ellipsoid.E
	sphere := p.Ellipsoid.Sphere

	sin1 := math.Sin(lat1)
	ms1 := msfnz(e, sin1, math.Cos(lat1))
	qs1 := qsfnz(e, sin1)
	sin2 := math.Sin(lat2)
	ms2 := msfnz(e, sin2, math.Cos(lat2))
	qs2 := qsfnz(e, sin2)
	qs0 := qsfnz(e, math.Sin(latF))

	var n float64
	if math.Abs(lat1-lat2) > epsln {
		n = (ms1*ms1 - ms2*ms2) / (qs2 - qs1)
	} else {
		n = sin1
	}
	c := ms1*ms1 + n*qs1
	r0 := a * math.Sqrt(c-n*qs0) / n

	forward := func(lon, lat float64) (float64, float64, error) {
		qs := qsfnz(e, math.Sin(lat))
		r := a * math.Sqrt(c-n*qs) / n
		theta := n * adjustLon(lon-lonF)
		x := fe + r*math.Sin(theta)
		y := fn + r0 - r*math.Cos(theta)
		return x, y, nil
	}

	inverse := func(x, y float64) (float64, float64, error) {
		x -= fe
		y = r0 - (y - fn)
		var r, con float64
		if n >= 0 {
			r = math.Sqrt(x*x + y*y)
			con = 1
		} else {
			r = -math.Sqrt(x*x + y*y)
			con = -1
		}
		theta := 0.0
		if r != 0 {
			theta = math.Atan2(con*x, con*y)
		}
		con = r * n / a
		var lat float64
		if sphere {
			lat = asinz((c - con*con) / (2 * n))
		} else {
			qs := (c - con*con) / n
			var err error
			lat, err = phi1z(p.Code, e, qs)
			if err != nil {
				return math.NaN(), math.NaN(), err
			}
		}
		lon := adjustLon(theta/n + lonF)
		return lon, lat, nil
	}
	return forward, inverse, nil
}

// phi1z recovers the latitude whose equal-area function equals qs, by
// iteration (Snyder 3-16). It is shared by the equal-area reverses.
func phi1z(method string, eccent, qs float64) (float64, error) {
	phi := asinz(0.5 * qs)
	if eccent < epsln {
		return phi, nil
	}
	eccnts := eccent * eccent
	for i := 1; i <= 25; i++ {
		sinphi := math.Sin(phi)
		cosphi := math.Cos(phi)
		con := eccent * sinphi
		com := 1 - con*con
		dphi := 0.5 * com * com / cosphi *
			(qs/(1-eccnts) - sinphi/com + 0.5/eccent*math.Log((1-con)/(1+con)))
		phi += dphi
		if math.Abs(dphi) <= 1e-7 {
			return phi, nil
		}
	}
	return math.NaN(), &ConvergenceError{Method: method, Iterations: 25}
}

func init() {
	register(albersEqualArea, "EPSG:9822", "Albers Equal Area",
		"Albers_Conic_Equal_Area", "aea")
}
