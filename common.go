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

const (
	epsln  = 1.0e-10
	halfPi = math.Pi / 2
	fortPi = math.Pi / 4
	twoPi  = math.Pi * 2
	// sPi is slightly greater than math.Pi, so values that exceed the
	// -180..180 degree range by a tiny amount don't get wrapped. This
	// prevents points that have drifted from their original location along
	// the 180th meridian (due to floating point error) from changing their
	// sign.
	sPi = 3.14159265359

	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi

	// maxIterations is the ceiling for tolerance-driven iterative reverses.
	maxIterations = 100
)

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

func adjustLon(x float64) float64 {
	if math.Abs(x) <= sPi {
		return x
	}
	return x - sign(x)*twoPi
}

// msfnz computes the scale ratio m = cosφ/√(1-e²sin²φ).
func msfnz(eccent, sinphi, cosphi float64) float64 {
	con := eccent * sinphi
	return cosphi / math.Sqrt(1-con*con)
}

// tsfnz computes the isometric latitude function
// t = tan(π/4-φ/2)/((1-e sinφ)/(1+e sinφ))^(e/2).
func tsfnz(eccent, phi, sinphi float64) float64 {
	con := eccent * sinphi
	com := 0.5 * eccent
	con = math.Pow((1-con)/(1+con), com)
	return math.Tan(0.5*(halfPi-phi)) / con
}

// phi2z inverts tsfnz by fixed-point iteration.
func phi2z(eccent, ts float64) (float64, error) {
	eccnth := 0.5 * eccent
	phi := halfPi - 2*math.Atan(ts)
	for i := 0; i <= 15; i++ {
		con := eccent * math.Sin(phi)
		dphi := halfPi - 2*math.Atan(ts*math.Pow((1-con)/(1+con), eccnth)) - phi
		phi += dphi
		if math.Abs(dphi) <= 1.0e-10 {
			return phi, nil
		}
	}
	return math.NaN(), &ConvergenceError{Method: "isometric latitude inverse", Iterations: 15}
}

// qsfnz computes the equal-area function q at sinφ.
func qsfnz(eccent, sinphi float64) float64 {
	if eccent > 1.0e-7 {
		con := eccent * sinphi
		return (1 - eccent*eccent) *
			(sinphi/(1-con*con) - 0.5/eccent*math.Log((1-con)/(1+con)))
	}
	return 2 * sinphi
}

// Meridian arc series coefficients (Snyder 3-21).
func e0fn(x float64) float64 { return 1 - 0.25*x*(1+x/16*(3+1.25*x)) }
func e1fn(x float64) float64 { return 0.375 * x * (1 + 0.25*x*(1+0.46875*x)) }
func e2fn(x float64) float64 { return 0.05859375 * x * x * (1 + 0.75*x) }
func e3fn(x float64) float64 { return x * x * x * (35. / 3072.) }

// mlfn returns the meridian distance from the equator to latitude phi,
// divided by the semi-major axis.
func mlfn(e0, e1, e2, e3, phi float64) float64 {
	return e0*phi - e1*math.Sin(2*phi) + e2*math.Sin(4*phi) - e3*math.Sin(6*phi)
}

// imlfn inverts mlfn by iteration with a tolerance and a ceiling.
func imlfn(method string, ml, e0, e1, e2, e3 float64) (float64, error) {
	phi := ml / e0
	for i := 0; i < maxIterations; i++ {
		dphi := (ml - mlfn(e0, e1, e2, e3, phi)) / e0
		phi += dphi
		if math.Abs(dphi) <= epsln {
			return phi, nil
		}
	}
	return math.NaN(), &ConvergenceError{Method: method, Iterations: maxIterations}
}

// asinz is an arcsine clamped against arguments that drift just outside
// [-1, 1] from floating point error.
func asinz(x float64) float64 {
	if math.Abs(x) > 1 {
		if x > 1 {
			x = 1
		} else {
			x = -1
		}
	}
	return math.Asin(x)
}

// conformalToGeodetic converts the conformal latitude χ to geodetic latitude
// using the series with fixed coefficients up to eighth order in e.
func conformalToGeodetic(chi, es float64) float64 {
	es2 := es * es
	es3 := es2 * es
	es4 := es2 * es2
	return chi +
		(es/2+5*es2/24+es3/12+13*es4/360)*math.Sin(2*chi) +
		(7*es2/48+29*es3/240+811*es4/11520)*math.Sin(4*chi) +
		(7*es3/120+81*es4/1120)*math.Sin(6*chi) +
		(4279*es4/161280)*math.Sin(8*chi)
}

// authalicToGeodetic converts the authalic latitude β to geodetic latitude
// using the series up to sixth order in e.
func authalicToGeodetic(beta, es float64) float64 {
	es2 := es * es
	es3 := es2 * es
	return beta +
		(es/3+31*es2/180+517*es3/5040)*math.Sin(2*beta) +
		(23*es2/360+251*es3/3780)*math.Sin(4*beta) +
		(761*es3/45360)*math.Sin(6*beta)
}
