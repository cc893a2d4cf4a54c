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

// belgiumCorrection is the fixed angular correction of the Lambert Conic
// Conformal (2SP Belgium) method: 29.2985 arc-seconds in radians.
const belgiumCorrection = 29.2985 / 3600 * deg2rad

// lccVariant carries the two points of variation among the Lambert Conic
// Conformal methods: the sign of the easting axis and a fixed adjustment to
// the cone angle theta. Variants are selected at construction.
type lccVariant struct {
	eastingSign float64
	thetaAdjust float64
}

// lambertConic builds the shared Lambert Conic Conformal transform from the
// latitude/longitude of the grid origin, the standard parallels, and the
// scale factor (1 for the 2SP methods).
func lambertConic(p *Projection, lat0, lon0, lat1, lat2, k0, fe, fn float64, v lccVariant) (Transformer, Transformer, error) {
	if math.Abs(lat1+lat2) < epsln {
		return nil, nil, &ParamValueError{Method: p.Code,
			Reason: "standard parallels cannot be equal and on opposite sides of the equator"}
	}
	a := p.Ellipsoid.A
	e := p.Ellipsoid.E

	sin1 := math.Sin(lat1)
	ms1 := msfnz(e, sin1, math.Cos(lat1))
	ts1 := tsfnz(e, lat1, sin1)
	sin2 := math.Sin(lat2)
	ms2 := msfnz(e, sin2, math.Cos(lat2))
	ts2 := tsfnz(e, lat2, sin2)
	ts0 := tsfnz(e, lat0, math.Sin(lat0))

	var n float64
	if math.Abs(lat1-lat2) > epsln {
		n = math.Log(ms1/ms2) / math.Log(ts1/ts2)
	} else {
		n = sin1
	}
	f0 := ms1 / (n * math.Pow(ts1, n))
	r0 := a * f0 * math.Pow(ts0, n)

	forward := func(lon, lat float64) (float64, float64, error) {
		con := math.Abs(math.Abs(lat) - halfPi)
		var r float64
		if con > epsln {
			ts := tsfnz(e, lat, math.Sin(lat))
			r = a * f0 * math.Pow(ts, n)
		} else {
			con = lat * n
			if con <= 0 {
				return math.NaN(), math.NaN(), &DomainError{Method: p.Code,
					Reason: "point at the pole opposite the cone apex"}
			}
			r = 0
		}
		theta := n*adjustLon(lon-lon0) - v.thetaAdjust
		x := fe + v.eastingSign*k0*r*math.Sin(theta)
		y := fn + k0*(r0-r*math.Cos(theta))
		return x, y, nil
	}

	inverse := func(x, y float64) (float64, float64, error) {
		x = v.eastingSign * (x - fe) / k0
		y = r0 - (y-fn)/k0
		var r, con float64
		if n > 0 {
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
		var lat float64
		if r != 0 || n > 0 {
			ts := math.Pow(r/(a*f0), 1/n)
			var err error
			lat, err = phi2z(e, ts)
			if err != nil {
				return math.NaN(), math.NaN(), err
			}
		} else {
			lat = -halfPi
		}
		lon := adjustLon((theta+v.thetaAdjust)/n + lon0)
		return lon, lat, nil
	}
	return forward, inverse, nil
}

// lcc1SP is Lambert Conic Conformal (1SP), EPSG 9801.
func lcc1SP(p *Projection, par Params) (Transformer, Transformer, error) {
	return lcc1SPVariant(p, par, lccVariant{eastingSign: 1})
}

// lcc1SPWest is the West Orientated variant (EPSG 9826): identical except
// the easting axis increases westward.
func lcc1SPWest(p *Projection, par Params) (Transformer, Transformer, error) {
	return lcc1SPVariant(p, par, lccVariant{eastingSign: -1})
}

func lcc1SPVariant(p *Projection, par Params, v lccVariant) (Transformer, Transformer, error) {
	lat0, err := par.Angle(p.Code, LatitudeOfNaturalOrigin)
	if err != nil {
		return nil, nil, err
	}
	lon0, err := par.AngleDefault(p.Code, LongitudeOfNaturalOrigin, 0)
	if err != nil {
		return nil, nil, err
	}
	k0, err := par.ScalarDefault(p.Code, ScaleFactorAtNaturalOrigin, 1)
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
	return lambertConic(p, lat0, lon0, lat0, lat0, k0, fe, fn, v)
}

// lcc2SP is Lambert Conic Conformal (2SP), EPSG 9802.
func lcc2SP(p *Projection, par Params) (Transformer, Transformer, error) {
	return lcc2SPVariant(p, par, lccVariant{eastingSign: 1})
}

// lcc2SPBelgium is the 2SP Belgium variant (EPSG 9803), which subtracts a
// fixed 29.2985 arc-second correction from the cone angle.
func lcc2SPBelgium(p *Projection, par Params) (Transformer, Transformer, error) {
	return lcc2SPVariant(p, par, lccVariant{eastingSign: 1, thetaAdjust: belgiumCorrection})
}

func lcc2SPVariant(p *Projection, par Params, v lccVariant) (Transformer, Transformer, error) {
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
	return lambertConic(p, latF, lonF, lat1, lat2, 1, fe, fn, v)
}

func init() {
	register(lcc1SP, "EPSG:9801", "Lambert Conic Conformal (1SP)",
		"Lambert_Conformal_Conic_1SP")
	register(lcc1SPWest, "EPSG:9826",
		"Lambert Conic Conformal (West Orientated)")
	register(lcc2SP, "EPSG:9802", "Lambert Conic Conformal (2SP)",
		"Lambert_Conformal_Conic_2SP", "lcc")
	register(lcc2SPBelgium, "EPSG:9803",
		"Lambert Conic Conformal (2SP Belgium)")
}
