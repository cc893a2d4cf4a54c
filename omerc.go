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

// hotineObliqueMercator builds the Hotine Oblique Mercator transform
// (EPSG 9812 variant A, 9815 variant B). The variants differ only in where
// the false grid origin sits: variant A offsets at the natural origin of
// the (u,v) axes, variant B at the projection centre.
func hotineObliqueMercator(p *Projection, par Params, variantB bool) (Transformer, Transformer, error) {
	latC, err := par.Angle(p.Code, LatitudeOfProjectionCentre)
	if err != nil {
		return nil, nil, err
	}
	lonC, err := par.AngleDefault(p.Code, LongitudeOfProjectionCentre, 0)
	if err != nil {
		return nil, nil, err
	}
	alphaC, err := par.Angle(p.Code, AzimuthOfInitialLine)
	if err != nil {
		return nil, nil, err
	}
	gammaC, err := par.AngleDefault(p.Code, AngleFromRectifiedToSkewGrid, alphaC)
	if err != nil {
		return nil, nil, err
	}
	kC, err := par.ScalarDefault(p.Code, ScaleFactorOnInitialLine, 1)
	if err != nil {
		return nil, nil, err
	}
	var fe, fn float64
	if variantB {
		fe, err = par.LengthDefault(p.Code, EastingAtProjectionCentre, 0)
		if err != nil {
			return nil, nil, err
		}
		fn, err = par.LengthDefault(p.Code, NorthingAtProjectionCentre, 0)
		if err != nil {
			return nil, nil, err
		}
	} else {
		fe, err = par.LengthDefault(p.Code, FalseEasting, 0)
		if err != nil {
			return nil, nil, err
		}
		fn, err = par.LengthDefault(p.Code, FalseNorthing, 0)
		if err != nil {
			return nil, nil, err
		}
	}

	a := p.Ellipsoid.A
	e := p.Ellipsoid.E
	es := p.Ellipsoid.E2

	sinC := math.Sin(latC)
	cosC := math.Cos(latC)
	b := math.Sqrt(1 + es*cosC*cosC*cosC*cosC/(1-es))
	bigA := a * b * kC * math.Sqrt(1-es) / (1 - es*sinC*sinC)
	t0 := tsfnz(e, latC, sinC)
	d := b * math.Sqrt(1-es) / (cosC * math.Sqrt(1-es*sinC*sinC))
	d2 := d * d
	if d2 < 1 {
		d2 = 1
	}
	f := d + math.Sqrt(d2-1)*sign(latC)
	h := f * math.Pow(t0, b)
	g := (f - 1/f) / 2
	gamma0 := math.Asin(math.Sin(alphaC) / d)
	lon0 := lonC - math.Asin(g*math.Tan(gamma0))/b

	var uC float64
	if variantB {
		if math.Abs(math.Abs(alphaC)-halfPi) <= epsln {
			uC = bigA * (lonC - lon0)
		} else {
			uC = bigA / b * math.Atan2(math.Sqrt(d2-1), math.Cos(alphaC)) * sign(latC)
		}
	}

	sinGammaC := math.Sin(gammaC)
	cosGammaC := math.Cos(gammaC)
	sinGamma0 := math.Sin(gamma0)
	cosGamma0 := math.Cos(gamma0)

	forward := func(lon, lat float64) (float64, float64, error) {
		t := tsfnz(e, lat, math.Sin(lat))
		q := h / math.Pow(t, b)
		bigS := (q - 1/q) / 2
		bigT := (q + 1/q) / 2
		bigV := math.Sin(b * adjustLon(lon-lon0))
		bigU := (-bigV*cosGamma0 + bigS*sinGamma0) / bigT
		if math.Abs(math.Abs(bigU)-1) <= epsln {
			return math.NaN(), math.NaN(), &DomainError{Method: p.Code,
				Reason: "point projects to infinity on the aposphere"}
		}
		v := bigA * math.Log((1-bigU)/(1+bigU)) / (2 * b)
		u := bigA * math.Atan2(bigS*cosGamma0+bigV*sinGamma0,
			math.Cos(b*adjustLon(lon-lon0))) / b
		if variantB {
			u -= math.Abs(uC) * sign(latC)
		}
		x := fe + v*cosGammaC + u*sinGammaC
		y := fn + u*cosGammaC - v*sinGammaC
		return x, y, nil
	}

	inverse := func(x, y float64) (float64, float64, error) {
		v := (x-fe)*cosGammaC - (y-fn)*sinGammaC
		u := (y-fn)*cosGammaC + (x-fe)*sinGammaC
		if variantB {
			u += math.Abs(uC) * sign(latC)
		}
		q := math.Exp(-b * v / bigA)
		bigS := (q - 1/q) / 2
		bigT := (q + 1/q) / 2
		bigV := math.Sin(b * u / bigA)
		bigU := (bigV*cosGamma0 + bigS*sinGamma0) / bigT
		t := math.Pow(h/math.Sqrt((1+bigU)/(1-bigU)), 1/b)
		chi := halfPi - 2*math.Atan(t)
		lat := conformalToGeodetic(chi, es)
		lon := adjustLon(lon0 - math.Atan2(bigS*cosGamma0-bigV*sinGamma0,
			math.Cos(b*u/bigA))/b)
		return lon, lat, nil
	}
	return forward, inverse, nil
}

func hotineObliqueMercatorA(p *Projection, par Params) (Transformer, Transformer, error) {
	return hotineObliqueMercator(p, par, false)
}

func hotineObliqueMercatorB(p *Projection, par Params) (Transformer, Transformer, error) {
	return hotineObliqueMercator(p, par, true)
}

// labordeObliqueMercator is the Laborde Oblique Mercator projection
// (EPSG 9813), used for the Madagascar grid. The skew correction is a cubic
// term in the complex plane; the reverse inverts it by a complex Newton
// iteration on the real-part residual.
func labordeObliqueMercator(p *Projection, par Params) (Transformer, Transformer, error) {
	latC, err := par.Angle(p.Code, LatitudeOfProjectionCentre)
	if err != nil {
		return nil, nil, err
	}
	lonC, err := par.AngleDefault(p.Code, LongitudeOfProjectionCentre, 0)
	if err != nil {
		return nil, nil, err
	}
	alphaC, err := par.Angle(p.Code, AzimuthOfInitialLine)
	if err != nil {
		return nil, nil, err
	}
	kC, err := par.ScalarDefault(p.Code, ScaleFactorOnInitialLine, 1)
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

	sinC := math.Sin(latC)
	cosC := math.Cos(latC)
	b := math.Sqrt(1 + es*cosC*cosC*cosC*cosC/(1-es))
	latS := math.Asin(sinC / b)
	r := p.Ellipsoid.A * kC * math.Sqrt(1-es) / (1 - es*sinC*sinC)
	c := math.Log(math.Tan(fortPi+latS/2)) + b*math.Log(tsfnz(e, latC, sinC))

	sinS := math.Sin(latS)
	cosS := math.Cos(latS)
	bigG := complex((1-math.Cos(2*alphaC))/12, math.Sin(2*alphaC)/12)

	forward := func(lon, lat float64) (float64, float64, error) {
		l := b * adjustLon(lon-lonC)
		q := c - b*math.Log(tsfnz(e, lat, math.Sin(lat)))
		pp := 2*math.Atan(math.Exp(q)) - halfPi
		cosP := math.Cos(pp)
		u := cosP*math.Cos(l)*cosS + math.Sin(pp)*sinS
		v := cosP*math.Cos(l)*sinS - math.Sin(pp)*cosS
		w := cosP * math.Sin(l)
		d := math.Sqrt(u*u + v*v)
		var lp, pq float64
		if d > epsln {
			lp = 2 * math.Atan(v/(u+d))
			pq = math.Atan(w / d)
		} else {
			lp = 0
			pq = sign(w) * halfPi
		}
		hh := complex(-lp, math.Log(math.Tan(fortPi+pq/2)))
		hg := hh + bigG*hh*hh*hh
		return fe + r*imag(hg), fn + r*real(hg), nil
	}

	inverse := func(x, y float64) (float64, float64, error) {
		h0 := complex((y-fn)/r, (x-fe)/r)
		// Solve H + G·H³ = H0 for H, starting from H0 and iterating
		// until the real-part residual is negligible.
		hh := h0
		for i := 0; ; i++ {
			res := hh + bigG*hh*hh*hh - h0
			if math.Abs(real(res)) <= 1e-11 {
				break
			}
			if i >= maxIterations {
				return math.NaN(), math.NaN(),
					&ConvergenceError{Method: p.Code, Iterations: maxIterations}
			}
			hh = (2*bigG*hh*hh*hh + h0) / (3*bigG*hh*hh + 1)
		}
		lp := -real(hh)
		pq := 2*math.Atan(math.Exp(imag(hh))) - halfPi

		// Rotate back from the skewed sphere.
		cosPq := math.Cos(pq)
		u := cosPq*math.Cos(lp)*cosS + cosPq*math.Sin(lp)*sinS
		v := cosPq*math.Cos(lp)*sinS - cosPq*math.Sin(lp)*cosS
		w := math.Sin(pq)
		pp := asinz(v)
		l := math.Atan2(w, u)

		q := (math.Log(math.Tan(fortPi+pp/2)) - c) / b
		lat, err := phi2z(e, math.Exp(-q))
		if err != nil {
			return math.NaN(), math.NaN(), err
		}
		lon := adjustLon(lonC + l/b)
		return lon, lat, nil
	}
	return forward, inverse, nil
}

func init() {
	register(hotineObliqueMercatorA, "EPSG:9812",
		"Hotine Oblique Mercator (variant A)", "Hotine_Oblique_Mercator")
	register(hotineObliqueMercatorB, "EPSG:9815",
		"Hotine Oblique Mercator (variant B)",
		"Oblique_Mercator", "omerc")
	register(labordeObliqueMercator, "EPSG:9813", "Laborde Oblique Mercator")
}
