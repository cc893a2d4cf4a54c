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

package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spatialmodel/geoproj"
)

// Georef letter alphabets. The 15° zones count from 180°W and 90°S; the 1°
// quadrangles count within a zone. I and O are excluded.
const (
	georefLon15 = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	georefLat15 = "ABCDEFGHJKLM"
	georefDeg1  = "ABCDEFGHJKLMNPQ"
)

// EncodeGeoref encodes a geographic coordinate (radians) as a World
// Geographic Reference System string. Precision selects the cell size:
//
//	0  15° quadrangle   (2 characters)
//	1  1° quadrangle    (4 characters)
//	2  1 minute         (8 characters)
//	3  0.1 minute       (10 characters)
//	4  0.01 minute      (12 characters)
//
// Longitude fields precede latitude fields throughout.
func EncodeGeoref(c geoproj.GeoCoordinate, precision int) (string, error) {
	if precision < 0 || precision > 4 {
		return "", fmt.Errorf("geoproj/grid: Georef precision %d out of range [0,4]", precision)
	}
	lonDeg := c.Lon*180/math.Pi + 180
	latDeg := c.Lat*180/math.Pi + 90
	if latDeg < 0 || latDeg > 180 || lonDeg < 0 || lonDeg > 360 {
		return "", fmt.Errorf("geoproj/grid: coordinate out of range")
	}
	// The north pole and the antimeridian belong to the last cell.
	if lonDeg >= 360 {
		lonDeg = math.Nextafter(360, 0)
	}
	if latDeg >= 180 {
		latDeg = math.Nextafter(180, 0)
	}

	var b strings.Builder
	b.WriteByte(georefLon15[int(lonDeg/15)])
	b.WriteByte(georefLat15[int(latDeg/15)])
	if precision == 0 {
		return b.String(), nil
	}
	b.WriteByte(georefDeg1[int(lonDeg)%15])
	b.WriteByte(georefDeg1[int(latDeg)%15])
	if precision == 1 {
		return b.String(), nil
	}

	digits := precision // 2, 3 or 4 digits per minute field
	scale := math.Pow(10, float64(digits-2))
	lonMin := int((lonDeg - math.Floor(lonDeg)) * 60 * scale)
	latMin := int((latDeg - math.Floor(latDeg)) * 60 * scale)
	limit := int(60*scale) - 1
	if lonMin > limit {
		lonMin = limit
	}
	if latMin > limit {
		latMin = limit
	}
	fmt.Fprintf(&b, "%0*d%0*d", digits, lonMin, digits, latMin)
	return b.String(), nil
}

// DecodeGeoref parses a Georef string and returns the center of the cell it
// names as a geographic coordinate (radians).
func DecodeGeoref(s string) (geoproj.GeoCoordinate, error) {
	ref := strings.ToUpper(strings.Join(strings.Fields(s), ""))
	switch len(ref) {
	case 2, 4, 8, 10, 12:
	default:
		return geoproj.GeoCoordinate{}, &FormatError{Value: s,
			Reason: "length must be 2, 4, 8, 10 or 12"}
	}

	lonIdx := strings.IndexByte(georefLon15, ref[0])
	latIdx := strings.IndexByte(georefLat15, ref[1])
	if lonIdx < 0 || latIdx < 0 {
		return geoproj.GeoCoordinate{}, &FormatError{Value: s,
			Reason: "invalid 15° zone letters"}
	}
	lonDeg := float64(lonIdx) * 15
	latDeg := float64(latIdx) * 15
	cellLon, cellLat := 15.0, 15.0

	if len(ref) >= 4 {
		li := strings.IndexByte(georefDeg1, ref[2])
		pi := strings.IndexByte(georefDeg1, ref[3])
		if li < 0 || pi < 0 {
			return geoproj.GeoCoordinate{}, &FormatError{Value: s,
				Reason: "invalid 1° quadrangle letters"}
		}
		lonDeg += float64(li)
		latDeg += float64(pi)
		cellLon, cellLat = 1, 1
	}

	if len(ref) >= 8 {
		digits := (len(ref) - 4) / 2
		lonMin, err1 := strconv.Atoi(ref[4 : 4+digits])
		latMin, err2 := strconv.Atoi(ref[4+digits:])
		if err1 != nil || err2 != nil {
			return geoproj.GeoCoordinate{}, &FormatError{Value: s,
				Reason: "minute fields must be numeric"}
		}
		scale := math.Pow(10, float64(digits-2))
		if float64(lonMin) >= 60*scale || float64(latMin) >= 60*scale {
			return geoproj.GeoCoordinate{}, &FormatError{Value: s,
				Reason: "minute fields out of range"}
		}
		lonDeg += float64(lonMin) / (60 * scale)
		latDeg += float64(latMin) / (60 * scale)
		cellLon = 1 / (60 * scale)
		cellLat = cellLon
	}

	return geoproj.GeoCoordinate{
		Lat: (latDeg + cellLat/2 - 90) * math.Pi / 180,
		Lon: (lonDeg + cellLon/2 - 180) * math.Pi / 180,
	}, nil
}
