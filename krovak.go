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

// krovak is the Krovak oblique conformal conic projection (EPSG 9819) of
// the Czech and Slovak S-JTSK grid. The grid axes are southing and westing;
// the projected X is southing and Y is westing, both positive.
func krovak(p *Projection, par Params) (Transformer, Transformer, error) {
	latC, err := par.Angle(p.Code, LatitudeOfProjectionCentre)
	if err != nil {
		return nil, nil, err
	}
	lon0, err := par.Angle(p.Code, LongitudeOfOrigin)
	if err != nil {
		return nil, nil, err
	}
	alphaC, err := par.Angle(p.Code, AzimuthOfInitialLine)
	if err != nil {
		return nil, nil, err
	}
	latP, err := par.Angle(p.Code, LatitudeOfPseudoStandardParallel)
	if err != nil {
		return nil, nil, err
	}
	kP, err := par.ScalarDefault(p.Code, ScaleFactorOnPseudoStandardParallel, 1)
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
	es := p.Ellipsoid.E2

	sinC := math.Sin(latC)
	cosC := math.Cos(latC)
	bigB := math.Sqrt(1 + es*cosC*cosC*cosC*cosC/(1-es))
	bigA := a * math.Sqrt(1-es) / (1 - es*sinC*sinC)
	gamma0 := asinz(sinC / bigB)
	t0 := math.Tan(fortPi+gamma0/2) *
		math.Pow((1+e*sinC)/(1-e*sinC), e*bigB/2) /
		math.Pow(math.Tan(fortPi+latC/2), bigB)
	n := math.Sin(latP)
	r0 := kP * bigA / math.Tan(latP)
	tanHalfP := math.Pow(math.Tan(latP/2+fortPi), n)

	forward := func(lon, lat float64) (float64, float64, error) {
		sinPhi := math.Sin(lat)
		u := 2 * (math.Atan(t0*math.Pow(math.Tan(lat/2+fortPi), bigB)/
			math.Pow((1+e*sinPhi)/(1-e*sinPhi), e*bigB/2)) - fortPi)
		deltaV := bigB * adjustLon(lon0-lon)
		t := asinz(math.Cos(alphaC)*math.Sin(u) +
			math.Sin(alphaC)*math.Cos(u)*math.Cos(deltaV))
		d := asinz(math.Cos(u) * math.Sin(deltaV) / math.Cos(t))
		theta := n * d
		r := r0 * tanHalfP / math.Pow(math.Tan(t/2+fortPi), n)
		// Southing, westing.
		return fn + r*math.Cos(theta), fe + r*math.Sin(theta), nil
	}

	inverse := func(x, y float64) (float64, float64, error) {
		xp := x - fn
		yp := y - fe
		r := math.Sqrt(xp*xp + yp*yp)
		theta := math.Atan2(yp, xp)
		d := theta / n
		t := 2 * (math.Atan(math.Pow(r0/r, 1/n)*math.Tan(latP/2+fortPi)) - fortPi)
		u := asinz(math.Cos(alphaC)*math.Sin(t) -
			math.Sin(alphaC)*math.Cos(t)*math.Cos(d))
		deltaV := asinz(math.Cos(t) * math.Sin(d) / math.Cos(u))

		// Latitude by fixed three-pass refinement.
		lat := u
		for i := 0; i < 3; i++ {
			sinPhi := math.Sin(lat)
			lat = 2 * (math.Atan(math.Pow(t0, -1/bigB)*
				math.Pow(math.Tan(u/2+fortPi), 1/bigB)*
				math.Pow((1+e*sinPhi)/(1-e*sinPhi), e/2)) - fortPi)
		}
		lon := adjustLon(lon0 - deltaV/bigB)
		return lon, lat, nil
	}
	return forward, inverse, nil
}

// krovakNorthOrientated is Krovak (North Orientated) (EPSG 1041): the same
// transform with the axes negated so easting and northing come out positive
// in the conventional sense.
func krovakNorthOrientated(p *Projection, par Params) (Transformer, Transformer, error) {
	forward, inverse, err := krovak(p, par)
	if err != nil {
		return nil, nil, err
	}
	flipForward := func(lon, lat float64) (float64, float64, error) {
		x, y, err := forward(lon, lat)
		return -y, -x, err
	}
	flipInverse := func(x, y float64) (float64, float64, error) {
		return inverse(-y, -x)
	}
	return flipForward, flipInverse, nil
}

// krovakModified is the Krovak (Modified) projection (EPSG 1042): the base
// Krovak transform composed with a ten-coefficient polynomial distortion
// correction evaluated about a fixed point. The correction terms are shared
// between the forward and reverse; only the composition direction differs.
func krovakModified(p *Projection, par Params) (Transformer, Transformer, error) {
	forward, inverse, err := krovak(p, par)
	if err != nil {
		return nil, nil, err
	}
	x0, err := par.Length(p.Code, Ordinate1OfEvaluationPoint)
	if err != nil {
		return nil, nil, err
	}
	y0, err := par.Length(p.Code, Ordinate2OfEvaluationPoint)
	if err != nil {
		return nil, nil, err
	}
	c := make([]float64, 10)
	for i, k := range []ParamKind{C1, C2, C3, C4, C5, C6, C7, C8, C9, C10} {
		c[i], err = par.Scalar(p.Code, k)
		if err != nil {
			return nil, nil, err
		}
	}

	// correction returns the dX and dY polynomial terms at a point.
	correction := func(x, y float64) (float64, float64) {
		xr := x - x0
		yr := y - y0
		xr2 := xr * xr
		yr2 := yr * yr
		dx := c[0] + c[2]*xr - c[3]*yr - 2*c[5]*xr*yr + c[4]*(xr2-yr2) +
			c[6]*xr*(xr2-3*yr2) - c[7]*yr*(3*xr2-yr2) +
			4*c[8]*xr*yr*(xr2-yr2) + c[9]*(xr2*xr2+yr2*yr2-6*xr2*yr2)
		dy := c[1] + c[2]*yr + c[3]*xr + 2*c[4]*xr*yr + c[5]*(xr2-yr2) +
			c[7]*xr*(xr2-3*yr2) + c[6]*yr*(3*xr2-yr2) -
			4*c[9]*xr*yr*(xr2-yr2) + c[8]*(xr2*xr2+yr2*yr2-6*xr2*yr2)
		return dx, dy
	}

	modForward := func(lon, lat float64) (float64, float64, error) {
		x, y, err := forward(lon, lat)
		if err != nil {
			return x, y, err
		}
		dx, dy := correction(x, y)
		return x - dx, y - dy, nil
	}
	modInverse := func(x, y float64) (float64, float64, error) {
		dx, dy := correction(x, y)
		return inverse(x+dx, y+dy)
	}
	return modForward, modInverse, nil
}

func init() {
	register(krovak, "EPSG:9819", "Krovak", "krovak")
	register(krovakNorthOrientated, "EPSG:1041", "Krovak (North Orientated)")
	register(krovakModified, "EPSG:1042", "Krovak (Modified)")
}
