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

// lambertAzimuthalEqualArea is the Lambert Azimuthal Equal Area projection
// (EPSG 9820). The polar, equatorial, and oblique aspects are selected at
// construction from the origin latitude.
func lambertAzimuthalEqualArea(p *Projection, par Params) (Transformer, Transformer, error) {
	lat0, err := par.Angle(p.Code, LatitudeOfNaturalOrigin)
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
	e := p.Ellipsoid.E
	es := p.Ellipsoid.E2

	if p.Ellipsoid.Sphere {
		sin0 := math.Sin(lat0)
		cos0 := math.Cos(lat0)
		forward := func(lon, lat float64) (float64, float64, error) {
			deltaLon := adjustLon(lon - lon0)
			den := 1 + sin0*math.Sin(lat) + cos0*math.Cos(lat)*math.Cos(deltaLon)
			if den <= epsln {
				return math.NaN(), math.NaN(), &DomainError{Method: p.Code,
					Reason: "point is antipodal to the projection origin"}
			}
			k := math.Sqrt(2 / den)
			x := fe + a*k*math.Cos(lat)*math.Sin(deltaLon)
			y := fn + a*k*(cos0*math.Sin(lat)-sin0*math.Cos(lat)*math.Cos(deltaLon))
			return x, y, nil
		}
		inverse := func(x, y float64) (float64, float64, error) {
			dx := x - fe
			dy := y - fn
			rho := math.Sqrt(dx*dx + dy*dy)
			if rho <= epsln {
				return lon0, lat0, nil
			}
			c := 2 * asinz(rho/(2*a))
			sinC, cosC := math.Sin(c), math.Cos(c)
			lat := asinz(cosC*sin0 + dy*sinC*cos0/rho)
			lon := adjustLon(lon0 + math.Atan2(dx*sinC, rho*cos0*cosC-dy*sin0*sinC))
			return lon, lat, nil
		}
		return forward, inverse, nil
	}

	qp := qsfnz(e, 1)
	rq := a * math.Sqrt(qp/2)
	polarNorth := math.Abs(lat0-halfPi) <= epsln
	polarSouth := math.Abs(lat0+halfPi) <= epsln

	if polarNorth || polarSouth {
		forward := func(lon, lat float64) (float64, float64, error) {
			q := qsfnz(e, math.Sin(lat))
			deltaLon := adjustLon(lon - lon0)
			var con, y float64
			if polarNorth {
				con = qp - q
			} else {
				con = qp + q
			}
			if con < 0 { // roundoff at the pole itself
				con = 0
			}
			rho := a * math.Sqrt(con)
			if polarNorth {
				y = fn - rho*math.Cos(deltaLon)
			} else {
				y = fn + rho*math.Cos(deltaLon)
			}
			return fe + rho*math.Sin(deltaLon), y, nil
		}
		inverse := func(x, y float64) (float64, float64, error) {
			dx := x - fe
			dy := y - fn
			rho := math.Sqrt(dx*dx + dy*dy)
			q := qp - rho*rho/(a*a)
			var lon float64
			if polarSouth {
				q = -q
				lon = adjustLon(lon0 + math.Atan2(dx, dy))
			} else {
				lon = adjustLon(lon0 + math.Atan2(dx, -dy))
			}
			lat := authalicToGeodetic(asinz(q/qp), es)
			return lon, lat, nil
		}
		return forward, inverse, nil
	}

	// Oblique and equatorial aspects.
	sinBeta0 := qsfnz(e, math.Sin(lat0)) / qp
	beta0 := asinz(sinBeta0)
	cosBeta0 := math.Cos(beta0)
	d := a * msfnz(e, math.Sin(lat0), math.Cos(lat0)) / (rq * cosBeta0)

	forward := func(lon, lat float64) (float64, float64, error) {
		deltaLon := adjustLon(lon - lon0)
		beta := asinz(qsfnz(e, math.Sin(lat)) / qp)
		den := 1 + sinBeta0*math.Sin(beta) + cosBeta0*math.Cos(beta)*math.Cos(deltaLon)
		if den <= epsln {
			return math.NaN(), math.NaN(), &DomainError{Method: p.Code,
				Reason: "point is antipodal to the projection origin"}
		}
		b := rq * math.Sqrt(2/den)
		x := fe + b*d*math.Cos(beta)*math.Sin(deltaLon)
		y := fn + b/d*(cosBeta0*math.Sin(beta)-sinBeta0*math.Cos(beta)*math.Cos(deltaLon))
		return x, y, nil
	}

	inverse := func(x, y float64) (float64, float64, error) {
		dx := (x - fe) / d
		dy := (y - fn) * d
		rho := math.Sqrt(dx*dx + dy*dy)
		if rho <= epsln {
			return lon0, lat0, nil
		}
		c := 2 * asinz(rho/(2*rq))
		sinC, cosC := math.Sin(c), math.Cos(c)
		beta := asinz(cosC*sinBeta0 + dy*sinC*cosBeta0/rho)
		lon := adjustLon(lon0 + math.Atan2(dx*sinC, rho*cosBeta0*cosC-dy*sinBeta0*sinC))
		lat := authalicToGeodetic(beta, es)
		return lon, lat, nil
	}
	return forward, inverse, nil
}

// gnomonic is the spherical Gnomonic projection, in which great circles map
// to straight lines. There is no EPSG method code.
func gnomonic(p *Projection, par Params) (Transformer, Transformer, error) {
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

	r := p.Ellipsoid.A
	sin0 := math.Sin(lat0)
	cos0 := math.Cos(lat0)

	forward := func(lon, lat float64) (float64, float64, error) {
		if !p.Area.Contains(lat, lon) {
			return math.NaN(), math.NaN(), &DomainError{Method: p.Code,
				Reason: "coordinate outside area of use"}
		}
		deltaLon := adjustLon(lon - lon0)
		cosC := sin0*math.Sin(lat) + cos0*math.Cos(lat)*math.Cos(deltaLon)
		if cosC <= epsln {
			return math.NaN(), math.NaN(), &DomainError{Method: p.Code,
				Reason: "point is on or beyond the projection horizon"}
		}
		x := fe + r*math.Cos(lat)*math.Sin(deltaLon)/cosC
		y := fn + r*(cos0*math.Sin(lat)-sin0*math.Cos(lat)*math.Cos(deltaLon))/cosC
		return x, y, nil
	}

	inverse := func(x, y float64) (float64, float64, error) {
		dx := x - fe
		dy := y - fn
		rho := math.Sqrt(dx*dx + dy*dy)
		if rho == 0 {
			// The bearing is undefined at the projection centre itself.
			return lon0, lat0, nil
		}
		c := math.Atan(rho / r)
		sinC, cosC := math.Sin(c), math.Cos(c)
		lat := asinz(cosC*sin0 + dy*sinC*cos0/rho)
		lon := adjustLon(lon0 + math.Atan2(dx*sinC, rho*cos0*cosC-dy*sin0*sinC))
		return lon, lat, nil
	}
	return forward, inverse, nil
}

// modifiedAzimuthalEquidistant is the Modified Azimuthal Equidistant
// projection (EPSG 9832), used for Micronesian island grids.
func modifiedAzimuthalEquidistant(p *Projection, par Params) (Transformer, Transformer, error) {
	lat0, err := par.Angle(p.Code, LatitudeOfNaturalOrigin)
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

	es := p.Ellipsoid.E2
	e := p.Ellipsoid.E
	nu0 := p.Ellipsoid.PrimeVertical(lat0)
	sin0 := math.Sin(lat0)
	cos0 := math.Cos(lat0)

	forward := func(lon, lat float64) (float64, float64, error) {
		deltaLon := adjustLon(lon - lon0)
		nu := p.Ellipsoid.PrimeVertical(lat)
		psi := math.Atan((1-es)*math.Tan(lat) + es*nu0*sin0/(nu*math.Cos(lat)))
		alpha := math.Atan2(math.Sin(deltaLon),
			cos0*math.Tan(psi)-sin0*math.Cos(deltaLon))
		sinAlpha := math.Sin(alpha)
		cosAlpha := math.Cos(alpha)
		var s float64
		if sinAlpha == 0 {
			s = asinz(cos0*math.Sin(psi)-sin0*math.Cos(psi)) * sign(cosAlpha)
		} else {
			s = asinz(math.Sin(deltaLon) * math.Cos(psi) / sinAlpha)
		}
		g := e * sin0 / math.Sqrt(1-es)
		h := e * cos0 * cosAlpha / math.Sqrt(1-es)
		s2 := s * s
		c := nu0 * s * (1 - s2*h*h*(1-h*h)/6 +
			(s2*s/8)*g*h*(1-2*h*h) +
			(s2*s2/120)*(h*h*(4-7*h*h)-3*g*g*(1-7*h*h)) -
			(s2*s2*s/48)*g*h)
		return fe + c*sinAlpha, fn + c*cosAlpha, nil
	}

	inverse := func(x, y float64) (float64, float64, error) {
		dx := x - fe
		dy := y - fn
		c := math.Sqrt(dx*dx + dy*dy)
		if c <= epsln {
			return lon0, lat0, nil
		}
		alpha := math.Atan2(dx, dy)
		cosAlpha := math.Cos(alpha)
		bigA := -es * cos0 * cos0 * cosAlpha * cosAlpha / (1 - es)
		bigB := 3 * es * (1 - bigA) * sin0 * cos0 * cosAlpha / (1 - es)
		d := c / nu0
		j := d - bigA*(1+bigA)*d*d*d/6 - bigB*(1+3*bigA)*d*d*d*d/24
		k := 1 - bigA*j*j/2 - bigB*j*j*j/6
		psi := asinz(sin0*math.Cos(j) + cos0*math.Sin(j)*cosAlpha)
		lat := math.Atan((1 - es*k*sin0/math.Sin(psi)) * math.Tan(psi) / (1 - es))
		lon := adjustLon(lon0 + asinz(math.Sin(alpha)*math.Sin(j)/math.Cos(psi)))
		return lon, lat, nil
	}
	return forward, inverse, nil
}

// guam is the Guam variant of the azimuthal equidistant projection
// (EPSG 9831). The reverse refines the latitude with a fixed three-pass
// loop; no convergence check is needed at the method's accuracy.
func guam(p *Projection, par Params) (Transformer, Transformer, error) {
	lat0, err := par.Angle(p.Code, LatitudeOfNaturalOrigin)
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
	ml0 := a * mlfn(e0, e1, e2, e3, lat0)

	forward := func(lon, lat float64) (float64, float64, error) {
		s := math.Sin(lat)
		w := math.Sqrt(1 - es*s*s)
		x := a * adjustLon(lon-lon0) * math.Cos(lat) / w
		ml := a * mlfn(e0, e1, e2, e3, lat)
		y := ml - ml0 + x*x*math.Tan(lat)*w/(2*a)
		return fe + x, fn + y, nil
	}

	inverse := func(x, y float64) (float64, float64, error) {
		dx := x - fe
		dy := y - fn
		lat := lat0
		// Exactly three refinement passes.
		for i := 0; i < 3; i++ {
			s := math.Sin(lat)
			w := math.Sqrt(1 - es*s*s)
			ml := ml0 + dy - dx*dx*math.Tan(lat)*w/(2*a)
			var err error
			lat, err = imlfn(p.Code, ml/a, e0, e1, e2, e3)
			if err != nil {
				return math.NaN(), math.NaN(), err
			}
		}
		s := math.Sin(lat)
		lon := adjustLon(lon0 + dx*math.Sqrt(1-es*s*s)/(a*math.Cos(lat)))
		return lon, lat, nil
	}
	return forward, inverse, nil
}

// verticalPerspective is the Vertical Perspective projection (EPSG 9838).
// It maps the ellipsoid as seen from a viewpoint at a finite height above
// the topocentric origin; there is no practical inverse.
func verticalPerspective(p *Projection, par Params) (Transformer, Transformer, error) {
	lat0, err := par.Angle(p.Code, LatitudeOfNaturalOrigin)
	if err != nil {
		return nil, nil, err
	}
	lon0, err := par.AngleDefault(p.Code, LongitudeOfNaturalOrigin, 0)
	if err != nil {
		return nil, nil, err
	}
	hv, err := par.Length(p.Code, ViewPointHeight)
	if err != nil {
		return nil, nil, err
	}

	es := p.Ellipsoid.E2
	nu0 := p.Ellipsoid.PrimeVertical(lat0)
	sin0 := math.Sin(lat0)
	cos0 := math.Cos(lat0)

	forward := func(lon, lat float64) (float64, float64, error) {
		deltaLon := adjustLon(lon - lon0)
		nu := p.Ellipsoid.PrimeVertical(lat)
		sinPhi := math.Sin(lat)
		cosPhi := math.Cos(lat)
		// Topocentric coordinates of the point relative to the origin,
		// at zero ellipsoidal height.
		u := nu * cosPhi * math.Sin(deltaLon)
		v := nu*(sinPhi*cos0-cosPhi*sin0*math.Cos(deltaLon)) +
			es*(nu0*sin0-nu*sinPhi)*cos0
		w := nu*(sinPhi*sin0+cosPhi*cos0*math.Cos(deltaLon)) +
			es*(nu0*sin0-nu*sinPhi)*sin0 - nu0
		if w >= hv {
			return math.NaN(), math.NaN(), &DomainError{Method: p.Code,
				Reason: "point is behind the viewpoint"}
		}
		return u * hv / (hv - w), v * hv / (hv - w), nil
	}

	// No closed-form or practical inverse exists.
	return forward, nil, nil
}

func init() {
	register(lambertAzimuthalEqualArea, "EPSG:9820",
		"Lambert Azimuthal Equal Area", "Lambert_Azimuthal_Equal_Area",
		"EPSG:1027", "laea")
	register(gnomonic, "Gnomonic", "gnom")
	register(modifiedAzimuthalEquidistant, "EPSG:9832",
		"Modified Azimuthal Equidistant")
	register(guam, "EPSG:9831", "Guam Projection")
	register(verticalPerspective, "EPSG:9838", "Vertical Perspective")
}
