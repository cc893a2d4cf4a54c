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

// transverseMercator is the Transverse Mercator projection (EPSG 9807),
// using the USGS series formulation.
func transverseMercator(p *Projection, par Params) (Transformer, Transformer, error) {
	lat0, err := par.AngleDefault(p.Code, LatitudeOfNaturalOrigin, 0)
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
	es := p.Ellipsoid.E2
	ep2 := p.Ellipsoid.Ep2
	sphere := p.Ellipsoid.Sphere

	e0 := e0fn(es)
	e1 := e1fn(es)
	e2 := e2fn(es)
	e3 := e3fn(es)
	ml0 := a * mlfn(e0, e1, e2, e3, lat0)

	forward := func(lon, lat float64) (float64, float64, error) {
		deltaLon := adjustLon(lon - lon0)
		sinPhi := math.Sin(lat)
		cosPhi := math.Cos(lat)

		if sphere {
			b := cosPhi * math.Sin(deltaLon)
			if math.Abs(math.Abs(b)-1) < epsln {
				return math.NaN(), math.NaN(), &DomainError{Method: p.Code,
					Reason: "point projects to infinity"}
			}
			x := 0.5 * a * k0 * math.Log((1+b)/(1-b))
			con := math.Acos(cosPhi * math.Cos(deltaLon) / math.Sqrt(1-b*b))
			if lat < 0 {
				con = -con
			}
			return fe + x, fn + a*k0*(con-lat0), nil
		}

		al := cosPhi * deltaLon
		als := al * al
		c := ep2 * cosPhi * cosPhi
		tq := math.Tan(lat)
		t := tq * tq
		con := 1 - es*sinPhi*sinPhi
		n := a / math.Sqrt(con)
		ml := a * mlfn(e0, e1, e2, e3, lat)

		x := k0*n*al*(1+als/6*(1-t+c+als/20*(5-18*t+t*t+72*c-58*ep2))) + fe
		y := k0*(ml-ml0+n*tq*als*(0.5+als/24*(5-t+9*c+4*c*c+als/30*(61-58*t+t*t+600*c-330*ep2)))) + fn
		return x, y, nil
	}

	inverse := func(x, y float64) (float64, float64, error) {
		x -= fe
		y -= fn
		if sphere {
			f := math.Exp(x / (a * k0))
			g := 0.5 * (f - 1/f)
			temp := lat0 + y/(a*k0)
			h := math.Cos(temp)
			con := math.Sqrt((1 - h*h) / (1 + g*g))
			lat := asinz(con)
			if temp < 0 {
				lat = -lat
			}
			if g == 0 && h == 0 {
				return lon0, lat, nil
			}
			return adjustLon(math.Atan2(g, h) + lon0), lat, nil
		}

		// Footpoint latitude by bounded Newton iteration on the meridian
		// arc series.
		const maxIter = 6
		con := (ml0 + y/k0) / a
		phi := con
		for i := 0; ; i++ {
			deltaPhi := (con+e1*math.Sin(2*phi)-e2*math.Sin(4*phi)+e3*math.Sin(6*phi))/e0 - phi
			phi += deltaPhi
			if math.Abs(deltaPhi) <= epsln {
				break
			}
			if i >= maxIter {
				return math.NaN(), math.NaN(),
					&ConvergenceError{Method: p.Code, Iterations: maxIter}
			}
		}
		if math.Abs(phi) >= halfPi {
			return lon0, halfPi * sign(y), nil
		}

		sinPhi := math.Sin(phi)
		cosPhi := math.Cos(phi)
		tanPhi := math.Tan(phi)
		c := ep2 * cosPhi * cosPhi
		cs := c * c
		t := tanPhi * tanPhi
		ts := t * t
		con = 1 - es*sinPhi*sinPhi
		n := a / math.Sqrt(con)
		r := n * (1 - es) / con
		d := x / (n * k0)
		ds := d * d
		lat := phi - (n*tanPhi*ds/r)*(0.5-ds/24*(5+3*t+10*c-4*cs-9*ep2-ds/30*(61+90*t+298*c+45*ts-252*ep2-3*cs)))
		lon := adjustLon(lon0 + d*(1-ds/6*(1+2*t+c-ds/20*(5-2*c+28*t-3*cs+8*ep2+24*ts)))/cosPhi)
		return lon, lat, nil
	}
	return forward, inverse, nil
}

// utm is the zoned UTM variant of Transverse Mercator. The zone number
// parameter selects the central meridian; a negative zone number places the
// zone in the southern hemisphere.
func utm(p *Projection, par Params) (Transformer, Transformer, error) {
	zone, err := par.Scalar(p.Code, ZoneNumber)
	if err != nil {
		return nil, nil, err
	}
	z := math.Abs(zone)
	if z < 1 || z > 60 {
		return nil, nil, &ParamValueError{Method: p.Code,
			Reason: "zone number must be between 1 and 60"}
	}
	fn := 0.0
	if zone < 0 {
		fn = 10000000
	}
	return transverseMercator(p, Params{
		LatitudeOfNaturalOrigin:    Angle(0),
		LongitudeOfNaturalOrigin:   Angle((6*z - 183) * deg2rad),
		ScaleFactorAtNaturalOrigin: Scalar(0.9996),
		FalseEasting:               Length(500000),
		FalseNorthing:              Length(fn),
	})
}

// UTMZone returns the UTM zone number for a longitude (radians), negated
// for the southern hemisphere.
func UTMZone(lat, lon float64) float64 {
	z := math.Floor(adjustLon(lon)*rad2deg/6) + 31
	if z > 60 {
		z = 60
	}
	if z < 1 {
		z = 1
	}
	if lat < 0 {
		return -z
	}
	return z
}

func init() {
	register(transverseMercator, "EPSG:9807", "Transverse Mercator", "Transverse_Mercator", "tmerc")
	register(utm, "UTM", "Universal Transverse Mercator System", "utm")
}
