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

package ellipsoid

// Commonly used reference ellipsoids.
var (
	WGS84             = New("WGS 84", 6378137, 298.257223563)
	GRS80             = New("GRS 1980", 6378137, 298.257222101)
	International1924 = New("International 1924", 6378388, 297)
	Bessel1841        = New("Bessel 1841", 6377397.155, 299.1528128)
	Clarke1866        = New("Clarke 1866", 6378206.4, 294.978698214)
	Clarke1880IGN     = New("Clarke 1880 (IGN)", 6378249.2, 293.4660212936269)
	Airy1830          = New("Airy 1830", 6377563.396, 299.3249646)
	Krassowsky1940    = New("Krassowsky 1940", 6378245, 298.3)

	// Sphere is the authalic sphere used by the GCTP spherical methods.
	Sphere = New("Normal Sphere", 6370997, 0)
)

// ByName looks up a named ellipsoid; it returns nil if the name is unknown.
func ByName(name string) *Ellipsoid {
	for _, e := range []*Ellipsoid{WGS84, GRS80, International1924,
		Bessel1841, Clarke1866, Clarke1880IGN, Airy1830, Krassowsky1940,
		Sphere} {
		if e.Name == name {
			return e
		}
	}
	return nil
}
