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

// polarStereographic builds the shared Polar Stereographic transform. The
// aspect (north or south) is selected at construction from the sign of the
// origin latitude; the variants differ only in how the scale factor and the
// false origin are derived.
func polarStereographic(p *Projection, lon0, k0, fe, fn float64, south bool) (Transformer, Transformer, error) {
	a := p.Ellipsoid.A
	e := p.Ellipsoid.E
	es := p.Ellipsoid.E2
	cn := math.Sqrt(math.Pow(1+e, 1+e) * math.Pow(1-e, 1-e))

	forward := func(lon, lat float64) (float64, float64, error) {
		phi := lat
		if south {
			phi = -lat
		}
		if phi < -halfPi || phi > halfPi {
			return math.NaN(), math.NaN(), &DomainError{Method: p.Code,
				Reason: "latitude out of range"}
		}
		t := tsfnz(e, phi, math.Sin(phi))
		rho := 2 * a * k0 * t / cn
		theta := adjustLon(lon - lon0)
		x := fe + rho*math.Sin(theta)
		if south {
			return x, fn + rho*math.Cos(theta), nil
		}
		return x, fn - rho*math.Cos(theta), nil
	}

	inverse := func(x, y float64) (float64, float64, error) {
		dx := x - fe
		dy := y - fn
		rho := math.Sqrt(dx*dx + dy*dy)
		t := rho * cn / (2 * a * k0)
		chi := halfPi - 2*math.Atan(t)
		phi := conformalToGeodetic(chi, es)
		var lon float64
		switch {
		case dx == 0:
			// The easting equals the false easting exactly: the point is
			// on the origin meridian and the bearing is degenerate.
			lon = lon0
		case south:
			lon = adjustLon(lon0 + math.Atan2(dx, dy))
		default:
			lon = adjustLon(lon0 + math.Atan2(dx, -dy))
		}
		if south {
			return lon, -phi, nil
		}
		return lon, phi, nil
	}
	return forward, inverse, nil
}

// polarScaleFromParallel derives the natural-origin scale factor of the
// B and C variants from the standard parallel.
func polarScaleFromParallel(e float64, latF float64) float64 {
	cn := math.Sqrt(math.Pow(1+e, 1+e) * math.Pow(1-e, 1-e))
	aphi := math.Abs(latF)
	mf := msfnz(e, math.Sin(aphi), math.Cos(aphi))
	tf := tsfnz(e, aphi, math.Sin(aphi))
	return mf * cn / (2 * tf)
}

// polarStereographicA is Polar Stereographic variant A (EPSG 9810): the
// natural origin is a pole and the scale factor there is a parameter.
func polarStereographicA(p *Projection, par Params) (Transformer, Transformer, error) {
	lat0, err := par.Angle(p.Code, LatitudeOfNaturalOrigin)
	if err != nil {
		return nil, nil, err
	}
	if math.Abs(math.Abs(lat0)-halfPi) > epsln {
		return nil, nil, &ParamValueError{Method: p.Code,
			Reason: "latitude of natural origin must be a pole"}
	}
	lon0, err := par.AngleDefault(p.Code, LongitudeOfNaturalOrigin, 0)
	if err != nil {
		return nil, nil, err
	}
	k0, err := par.Scalar(p.Code, ScaleFactorAtNaturalOrigin)
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
	return polarStereographic(p, lon0, k0, fe, fn, lat0 < 0)
}

// polarStereographicB is variant B (EPSG 9829): the scale factor is derived
// from the latitude of the standard parallel.
func polarStereographicB(p *Projection, par Params) (Transformer, Transformer, error) {
	latF, err := par.Angle(p.Code, LatitudeOfStandardParallel)
	if err != nil {
		return nil, nil, err
	}
	lon0, err := par.AngleDefault(p.Code, LongitudeOfOrigin, 0)
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
	k0 := polarScaleFromParallel(p.Ellipsoid.E, latF)
	return polarStereographic(p, lon0, k0, fe, fn, latF < 0)
}

// polarStereographicC is variant C (EPSG 9830): like B, but the false
// origin sits on the standard parallel instead of at the pole.
func polarStereographicC(p *Projection, par Params) (Transformer, Transformer, error) {
	latF, err := par.Angle(p.Code, LatitudeOfStandardParallel)
	if err != nil {
		return nil, nil, err
	}
	lon0, err := par.AngleDefault(p.Code, LongitudeOfOrigin, 0)
	if err != nil {
		return nil, nil, err
	}
	ef, err := par.LengthDefault(p.Code, EastingAtFalseOrigin, 0)
	if err != nil {
		return nil, nil, err
	}
	nf, err := par.LengthDefault(p.Code, NorthingAtFalseOrigin, 0)
	if err != nil {
		return nil, nil, err
	}
	e := p.Ellipsoid.E
	k0 := polarScaleFromParallel(e, latF)
	aphi := math.Abs(latF)
	rhoF := p.Ellipsoid.A * msfnz(e, math.Sin(aphi), math.Cos(aphi))
	// Shifting the false northing by the standard-parallel radius reduces
	// variant C to variant B.
	if latF < 0 {
		return polarStereographic(p, lon0, k0, ef, nf-rhoF, true)
	}
	return polarStereographic(p, lon0, k0, ef, nf+rhoF, false)
}

// obliqueStereographic is the Oblique Stereographic projection (EPSG 9809),
// computed through the conformal sphere per the EPSG formulation used for
// the Dutch RD grid.
func obliqueStereographic(p *Projection, par Params) (Transformer, Transformer, error) {
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

	e := p.Ellipsoid.E
	es := p.Ellipsoid.E2
	r := p.Ellipsoid.ConformalSphere(lat0)

	sin0 := math.Sin(lat0)
	n := math.Sqrt(1 + es*math.Pow(math.Cos(lat0), 4)/(1-es))
	s1 := (1 + sin0) / (1 - sin0)
	s2 := (1 - e*sin0) / (1 + e*sin0)
	w1 := math.Pow(s1*math.Pow(s2, e), n)
	sinChi0 := (w1 - 1) / (w1 + 1)
	c := (n + sin0) * (1 - sinChi0) / ((n - sin0) * (1 + sinChi0))
	w2 := c * w1
	chi0 := math.Asin((w2 - 1) / (w2 + 1))
	cosChi0 := math.Cos(chi0)

	// conformal converts geodetic latitude and longitude to the conformal
	// sphere.
	conformal := func(lon, lat float64) (chi, lambda float64) {
		sa := math.Sin(lat)
		sb := (1 + sa) / (1 - sa)
		sc := (1 - e*sa) / (1 + e*sa)
		w := c * math.Pow(sb*math.Pow(sc, e), n)
		chi = math.Asin((w - 1) / (w + 1))
		lambda = n * adjustLon(lon-lon0)
		return chi, lambda
	}

	forward := func(lon, lat float64) (float64, float64, error) {
		chi, lambda := conformal(lon, lat)
		b := 1 + math.Sin(chi)*sinChi0 + math.Cos(chi)*cosChi0*math.Cos(lambda)
		x := fe + 2*r*k0*math.Cos(chi)*math.Sin(lambda)/b
		y := fn + 2*r*k0*(math.Sin(chi)*cosChi0-math.Cos(chi)*sinChi0*math.Cos(lambda))/b
		return x, y, nil
	}

	inverse := func(x, y float64) (float64, float64, error) {
		// Inverse on the conformal sphere.
		dx := x - fe
		dy := y - fn
		g := 2 * r * k0 * math.Tan(fortPi-chi0/2)
		h := 4*r*k0*math.Tan(chi0) + g
		i := math.Atan2(dx, h+dy)
		j := math.Atan2(dx, g-dy) - i
		chi := chi0 + 2*math.Atan((dy-dx*math.Tan(j/2))/(2*r*k0))
		lambda := j + 2*i

		lon := adjustLon(lambda/n + lon0)

		// Iterate from the conformal latitude back to the geodetic
		// latitude through the isometric latitude.
		psi := 0.5 * math.Log((1+math.Sin(chi))/(c*(1-math.Sin(chi)))) / n
		phi := 2*math.Atan(math.Exp(psi)) - halfPi
		for it := 0; ; it++ {
			sphi := math.Sin(phi)
			psiI := math.Log(math.Tan(phi/2+fortPi) *
				math.Pow((1-e*sphi)/(1+e*sphi), e/2))
			dphi := (psi - psiI) * math.Cos(phi) * (1 - es*sphi*sphi) / (1 - es)
			phi += dphi
			if math.Abs(dphi) <= epsln {
				break
			}
			if it >= maxIterations {
				return math.NaN(), math.NaN(),
					&ConvergenceError{Method: p.Code, Iterations: maxIterations}
			}
		}
		return lon, phi, nil
	}
	return forward, inverse, nil
}

func init() {
	register(polarStereographicA, "EPSG:9810", "Polar Stereographic (variant A)",
		"Polar_Stereographic")
	register(polarStereographicB, "EPSG:9829", "Polar Stereographic (variant B)")
	register(polarStereographicC, "EPSG:9830", "Polar Stereographic (variant C)")
	register(obliqueStereographic, "EPSG:9809", "Oblique Stereographic",
		"Oblique_Stereographic", "sterea")
}
