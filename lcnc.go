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

// lambertConicNearConformal is the Lambert Conic Near-Conformal projection
// (EPSG 9817), used for the Levant grids. The meridian distance uses the
// full fifth-order series in n rather than the conformal cone constant.
func lambertConicNearConformal(p *Projection, par Params) (Transformer, Transformer, error) {
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

	a := p.Ellipsoid.A
	f := p.Ellipsoid.F
	n := f / (2 - f)
	n2 := n * n
	n3 := n2 * n
	n4 := n2 * n2
	n5 := n4 * n

	bigA := 1 / (6 * p.Ellipsoid.Meridian(lat0) * p.Ellipsoid.PrimeVertical(lat0))
	cA := a * (1 - n + 5*(n2-n3)/4 + 81*(n4-n5)/64)
	cB := 3 * a * (n - n2 + 7*(n3-n4)/8 + 55*n5/64) / 2
	cC := 15 * a * (n2 - n3 + 3*(n4-n5)/4) / 16
	cD := 35 * a * (n3 - n4 + 11*n5/16) / 48
	cE := 315 * a * (n4 - n5) / 512

	// meridianS is the meridian distance series s(φ).
	meridianS := func(phi float64) float64 {
		return cA*phi - cB*math.Sin(2*phi) + cC*math.Sin(4*phi) -
			cD*math.Sin(6*phi) + cE*math.Sin(8*phi)
	}

	s0 := meridianS(lat0)
	sinLat0 := math.Sin(lat0)
	r0 := k0 * p.Ellipsoid.PrimeVertical(lat0) / math.Tan(lat0)

	forward := func(lon, lat float64) (float64, float64, error) {
		m := meridianS(lat) - s0
		bigM := k0 * (m + bigA*m*m*m)
		r := r0 - bigM
		theta := adjustLon(lon-lon0) * sinLat0
		x := fe + r*math.Sin(theta)
		y := fn + bigM + r*math.Sin(theta)*math.Tan(theta/2)
		return x, y, nil
	}

	inverse := func(x, y float64) (float64, float64, error) {
		dx := x - fe
		dy := y - fn
		theta := math.Atan(dx / (r0 - dy))
		r := sign(lat0) * math.Sqrt(dx*dx+(r0-dy)*(r0-dy))
		bigM := r0 - r

		// A single Newton step on M = k0(m + A m³), seeded with m = M,
		// is sufficient at the method's documented accuracy.
		m := bigM
		m = m - (bigM-k0*m-k0*bigA*m*m*m)/(-k0-3*k0*bigA*m*m)

		// Invert the meridian distance series for latitude.
		target := s0 + m
		lat := lat0
		for i := 0; ; i++ {
			dphi := (target - meridianS(lat)) / cA
			lat += dphi
			if math.Abs(dphi) <= epsln {
				break
			}
			if i >= maxIterations {
				return math.NaN(), math.NaN(),
					&ConvergenceError{Method: p.Code, Iterations: maxIterations}
			}
		}
		lon := adjustLon(lon0 + theta/sinLat0)
		return lon, lat, nil
	}
	return forward, inverse, nil
}

func init() {
	register(lambertConicNearConformal, "EPSG:9817",
		"Lambert Conic Near-Conformal")
}
