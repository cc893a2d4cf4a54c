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

// equidistantCylindrical is the ellipsoidal Equidistant Cylindrical
// projection (EPSG 1028): true scale along the standard parallel, true
// distance along meridians.
func equidistantCylindrical(p *Projection, par Params) (Transformer, Transformer, error) {
	lat1, err := par.AngleDefault(p.Code, LatitudeOf1stStandardParallel, 0)
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
	nu1CosLat1 := p.Ellipsoid.PrimeVertical(lat1) * math.Cos(lat1)

	forward := func(lon, lat float64) (float64, float64, error) {
		x := fe + nu1CosLat1*adjustLon(lon-lon0)
		y := fn + a*mlfn(e0, e1, e2, e3, lat)
		return x, y, nil
	}
	inverse := func(x, y float64) (float64, float64, error) {
		lat, err := imlfn(p.Code, (y-fn)/a, e0, e1, e2, e3)
		if err != nil {
			return math.NaN(), math.NaN(), err
		}
		lon := adjustLon(lon0 + (x-fe)/nu1CosLat1)
		return lon, lat, nil
	}
	return forward, inverse, nil
}

// equidistantCylindricalSpherical is the spherical form (EPSG 1029), also
// known as Plate Carrée when the standard parallel is the equator.
func equidistantCylindricalSpherical(p *Projection, par Params) (Transformer, Transformer, error) {
	lat1, err := par.AngleDefault(p.Code, LatitudeOf1stStandardParallel, 0)
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
	cosLat1 := math.Cos(lat1)

	forward := func(lon, lat float64) (float64, float64, error) {
		return fe + r*cosLat1*adjustLon(lon-lon0), fn + r*lat, nil
	}
	inverse := func(x, y float64) (float64, float64, error) {
		return adjustLon(lon0 + (x-fe)/(r*cosLat1)), (y - fn) / r, nil
	}
	return forward, inverse, nil
}

// cylindricalEqualArea is the Lambert Cylindrical Equal Area projection,
// ellipsoidal form (EPSG 9835).
func cylindricalEqualArea(p *Projection, par Params) (Transformer, Transformer, error) {
	lat1, err := par.AngleDefault(p.Code, LatitudeOf1stStandardParallel, 0)
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

	if p.Ellipsoid.Sphere {
		cosLat1 := math.Cos(lat1)
		forward := func(lon, lat float64) (float64, float64, error) {
			return fe + a*cosLat1*adjustLon(lon-lon0),
				fn + a*math.Sin(lat)/cosLat1, nil
		}
		inverse := func(x, y float64) (float64, float64, error) {
			lat := asinz((y - fn) * cosLat1 / a)
			lon := adjustLon(lon0 + (x-fe)/(a*cosLat1))
			return lon, lat, nil
		}
		return forward, inverse, nil
	}

	k0 := msfnz(e, math.Sin(lat1), math.Cos(lat1))

	forward := func(lon, lat float64) (float64, float64, error) {
		q := qsfnz(e, math.Sin(lat))
		x := fe + a*k0*adjustLon(lon-lon0)
		y := fn + a*q/(2*k0)
		return x, y, nil
	}
	inverse := func(x, y float64) (float64, float64, error) {
		q := 2 * (y - fn) * k0 / a
		lat, err := phi1z(p.Code, e, q)
		if err != nil {
			return math.NaN(), math.NaN(), err
		}
		lon := adjustLon(lon0 + (x-fe)/(a*k0))
		return lon, lat, nil
	}
	return forward, inverse, nil
}

// sinusoidal is the Sinusoidal (Sanson-Flamsteed) pseudocylindrical
// equal-area projection. There is no EPSG method code; it is registered by
// name.
func sinusoidal(p *Projection, par Params) (Transformer, Transformer, error) {
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

	if p.Ellipsoid.Sphere {
		forward := func(lon, lat float64) (float64, float64, error) {
			return fe + a*adjustLon(lon-lon0)*math.Cos(lat), fn + a*lat, nil
		}
		inverse := func(x, y float64) (float64, float64, error) {
			lat := (y - fn) / a
			if math.Abs(math.Abs(lat)-halfPi) <= epsln {
				return lon0, lat, nil
			}
			return adjustLon(lon0 + (x-fe)/(a*math.Cos(lat))), lat, nil
		}
		return forward, inverse, nil
	}

	e0 := e0fn(es)
	e1 := e1fn(es)
	e2 := e2fn(es)
	e3 := e3fn(es)

	forward := func(lon, lat float64) (float64, float64, error) {
		s := math.Sin(lat)
		x := fe + a*adjustLon(lon-lon0)*math.Cos(lat)/math.Sqrt(1-es*s*s)
		y := fn + a*mlfn(e0, e1, e2, e3, lat)
		return x, y, nil
	}
	inverse := func(x, y float64) (float64, float64, error) {
		lat, err := imlfn(p.Code, (y-fn)/a, e0, e1, e2, e3)
		if err != nil {
			return math.NaN(), math.NaN(), err
		}
		if math.Abs(math.Abs(lat)-halfPi) <= epsln {
			return lon0, lat, nil
		}
		s := math.Sin(lat)
		lon := adjustLon(lon0 + (x-fe)*math.Sqrt(1-es*s*s)/(a*math.Cos(lat)))
		return lon, lat, nil
	}
	return forward, inverse, nil
}

func init() {
	register(equidistantCylindrical, "EPSG:1028", "Equidistant Cylindrical",
		"Equirectangular", "eqc")
	register(equidistantCylindricalSpherical, "EPSG:1029",
		"Equidistant Cylindrical (Spherical)", "Plate_Carree")
	register(cylindricalEqualArea, "EPSG:9835",
		"Lambert Cylindrical Equal Area", "EPSG:9834", "cea")
	register(sinusoidal, "Sinusoidal", "Sanson_Flamsteed", "sinu")
}
