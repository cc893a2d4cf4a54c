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

// americanPolyconic is the American Polyconic projection (EPSG 9818).
// The reverse has no closed form and iterates to a tolerance with a
// ceiling, failing on non-convergence.
func americanPolyconic(p *Projection, par Params) (Transformer, Transformer, error) {
	lat0, err := par.AngleDefault(p.Code, LatitudeOfNaturalOrigin, 0)
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

	a := p.Ellipsoid.A
	es := p.Ellipsoid.E2
	e0 := e0fn(es)
	e1 := e1fn(es)
	e2 := e2fn(es)
	e3 := e3fn(es)
	ml0 := mlfn(e0, e1, e2, e3, lat0)

	forward := func(lon, lat float64) (float64, float64, error) {
		if !p.Area.Contains(lat, lon) {
			return math.NaN(), math.NaN(), &DomainError{Method: p.Code,
				Reason: "coordinate outside area of use"}
		}
		deltaLon := adjustLon(lon - lon0)
		if math.Abs(lat) <= epsln {
			return fe + a*deltaLon, fn - a*ml0, nil
		}
		sinPhi := math.Sin(lat)
		l := deltaLon * sinPhi
		nuCot := a / math.Sqrt(1-es*sinPhi*sinPhi) / math.Tan(lat)
		ml := mlfn(e0, e1, e2, e3, lat)
		x := fe + nuCot*math.Sin(l)
		y := fn + a*(ml-ml0) + nuCot*(1-math.Cos(l))
		return x, y, nil
	}

	inverse := func(x, y float64) (float64, float64, error) {
		dx := (x - fe) / a
		bigA := ml0 + (y-fn)/a
		if math.Abs(bigA) <= epsln && math.Abs(dx) <= epsln {
			return lon0, 0, nil
		}
		bigB := dx*dx + bigA*bigA

		// Snyder 18-18/18-19 Newton iteration for the latitude.
		phi := bigA
		var c float64
		for i := 0; ; i++ {
			sinPhi := math.Sin(phi)
			cosPhi := math.Cos(phi)
			sin2Phi := math.Sin(2 * phi)
			if math.Abs(sin2Phi) < epsln {
				// Latitude collapses to the equator.
				return adjustLon(lon0 + dx), 0, nil
			}
			c = math.Sqrt(1-es*sinPhi*sinPhi) * sinPhi / cosPhi
			ml := mlfn(e0, e1, e2, e3, phi)
			mlp := e0 - 2*e1*math.Cos(2*phi) + 4*e2*math.Cos(4*phi) -
				6*e3*math.Cos(6*phi)
			dphi := (bigA*(c*ml+1) - ml - 0.5*(ml*ml+bigB)*c) /
				(es*sin2Phi*(ml*ml+bigB-2*bigA*ml)/(4*c) +
					(bigA-ml)*(c*mlp-2/sin2Phi) - mlp)
			phi -= dphi
			if math.Abs(dphi) <= epsln {
				break
			}
			if i >= maxIterations {
				return math.NaN(), math.NaN(),
					&ConvergenceError{Method: p.Code, Iterations: maxIterations}
			}
		}
		lon := adjustLon(lon0 + asinz(dx*c)/math.Sin(phi))
		return lon, phi, nil
	}
	return forward, inverse, nil
}

func init() {
	register(americanPolyconic, "EPSG:9818", "American Polyconic",
		"Polyconic", "poly")
}
