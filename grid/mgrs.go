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
	"regexp"
	"strconv"
	"strings"

	"github.com/spatialmodel/geoproj"
)

const (
	squareSize = 100000.0
	cycleSize  = 2000000.0

	// MGRS switches from UTM to the polar UPS grid beyond these latitudes.
	mgrsNorthLimit = 84.0
	mgrsSouthLimit = -80.0
)

// Letter alphabets. I and O are always excluded; the polar column sets also
// drop D, E, M, N, V and W.
const (
	latBands   = "CDEFGHJKLMNPQRSTUVWX"
	rowLetters = "ABCDEFGHJKLMNPQRSTUV"

	polarColsWest  = "JKLPQRSTUXYZ"
	polarColsEast  = "ABCFGHJKLPQR"
	polarRowsNorth = "ABCDEFGHJKLMNP"
	polarRowsSouth = "ABCDEFGHJKLMNPQRSTUVWXYZ"
)

// colLetters holds the three repeating 100 km column alphabets; zone z uses
// set (z-1) mod 3.
var colLetters = [3]string{"ABCDEFGH", "JKLMNPQR", "STUVWXYZ"}

// bandMinNorthing is the smallest UTM northing occurring in each latitude
// band, used to resolve the 2,000,000 m row-letter cycle when decoding.
var bandMinNorthing = map[byte]float64{
	'C': 1100000, 'D': 2000000, 'E': 2800000, 'F': 3700000, 'G': 4600000,
	'H': 5500000, 'J': 6400000, 'K': 7300000, 'L': 8200000, 'M': 9100000,
	'N': 0, 'P': 800000, 'Q': 1700000, 'R': 2600000, 'S': 3500000,
	'T': 4400000, 'U': 5300000, 'V': 6200000, 'W': 7000000, 'X': 7900000,
}

var (
	mgrsUTMRe = regexp.MustCompile(`^([0-9]{1,2})([C-HJ-NP-X])([A-HJ-NP-Z])([A-HJ-NP-V])([0-9]*)$`)
	mgrsUPSRe = regexp.MustCompile(`^([ABYZ])([A-HJ-NP-Z])([A-HJ-NP-Z])([0-9]*)$`)
)

// mgrsZone returns the UTM zone for an MGRS reference, applying the
// conventional exceptions around southern Norway and Svalbard.
func mgrsZone(latDeg, lonDeg float64) float64 {
	z := math.Abs(geoproj.UTMZone(latDeg*math.Pi/180, lonDeg*math.Pi/180))
	switch {
	case latDeg >= 56 && latDeg < 64 && lonDeg >= 3 && lonDeg < 12:
		z = 32
	case latDeg >= 72 && lonDeg >= 0 && lonDeg < 9:
		z = 31
	case latDeg >= 72 && lonDeg >= 9 && lonDeg < 21:
		z = 33
	case latDeg >= 72 && lonDeg >= 21 && lonDeg < 33:
		z = 35
	case latDeg >= 72 && lonDeg >= 33 && lonDeg < 42:
		z = 37
	}
	if latDeg < 0 {
		return -z
	}
	return z
}

// EncodeMGRS encodes a geographic coordinate (radians, WGS 84) as an MGRS
// reference at the given precision, 1 to 5 digits per ordinate (10 km down
// to 1 m squares). Latitudes of 84°N and above and below 80°S use the polar
// UPS grid.
func EncodeMGRS(c geoproj.GeoCoordinate, precision int) (string, error) {
	if precision < 1 || precision > 5 {
		return "", fmt.Errorf("geoproj/grid: MGRS precision %d out of range [1,5]", precision)
	}
	latDeg := c.Lat * 180 / math.Pi
	lonDeg := c.Lon * 180 / math.Pi
	if latDeg < -90 || latDeg > 90 {
		return "", fmt.Errorf("geoproj/grid: latitude %g out of range", latDeg)
	}
	if latDeg >= mgrsNorthLimit || latDeg < mgrsSouthLimit {
		return encodeUPS(c, precision)
	}

	zone := mgrsZone(latDeg, lonDeg)
	p, err := utmProjection(zone)
	if err != nil {
		return "", err
	}
	xy, err := p.Forward(c)
	if err != nil {
		return "", err
	}
	z := int(math.Abs(zone))

	bandIdx := int((latDeg - mgrsSouthLimit) / 8)
	if bandIdx > len(latBands)-1 {
		bandIdx = len(latBands) - 1 // X spans 72°N to 84°N
	}

	col := int(xy.X / squareSize)
	if col < 1 || col > 8 {
		return "", fmt.Errorf("geoproj/grid: easting %g outside zone %d", xy.X, z)
	}
	colLetter := colLetters[(z-1)%3][col-1]

	row := int(xy.Y/squareSize) % 20
	if z%2 == 0 {
		row = (row + 5) % 20
	}
	rowLetter := rowLetters[row]

	size := math.Pow(10, float64(5-precision))
	e := int(math.Mod(xy.X, squareSize) / size)
	n := int(math.Mod(xy.Y, squareSize) / size)
	return fmt.Sprintf("%d%c%c%c%0*d%0*d", z, latBands[bandIdx],
		colLetter, rowLetter, precision, e, precision, n), nil
}

// encodeUPS encodes a polar coordinate on the UPS grid: band letters A and B
// south, Y and Z north, split at the 0°/180° meridian pair.
func encodeUPS(c geoproj.GeoCoordinate, precision int) (string, error) {
	south := c.Lat < 0
	p, err := upsProjection(south)
	if err != nil {
		return "", err
	}
	xy, err := p.Forward(c)
	if err != nil {
		return "", err
	}

	west := xy.X < cycleSize
	var band byte
	switch {
	case south && west:
		band = 'A'
	case south:
		band = 'B'
	case west:
		band = 'Y'
	default:
		band = 'Z'
	}

	cols, colOrigin := polarColsEast, cycleSize
	if west {
		cols, colOrigin = polarColsWest, 800000
	}
	rows, rowOrigin := polarRowsNorth, 1300000.0
	if south {
		rows, rowOrigin = polarRowsSouth, 800000
	}

	colIdx := int((xy.X - colOrigin) / squareSize)
	rowIdx := int((xy.Y - rowOrigin) / squareSize)
	if colIdx < 0 || colIdx >= len(cols) || rowIdx < 0 || rowIdx >= len(rows) {
		return "", fmt.Errorf("geoproj/grid: coordinate outside the UPS grid")
	}

	size := math.Pow(10, float64(5-precision))
	e := int(math.Mod(xy.X, squareSize) / size)
	n := int(math.Mod(xy.Y, squareSize) / size)
	return fmt.Sprintf("%c%c%c%0*d%0*d", band, cols[colIdx], rows[rowIdx],
		precision, e, precision, n), nil
}

// DecodeMGRS parses an MGRS reference and returns the center of the square
// it names as a geographic coordinate (radians, WGS 84).
func DecodeMGRS(s string) (geoproj.GeoCoordinate, error) {
	ref := strings.ToUpper(strings.Join(strings.Fields(s), ""))
	if m := mgrsUTMRe.FindStringSubmatch(ref); m != nil {
		return decodeUTM(ref, m)
	}
	if m := mgrsUPSRe.FindStringSubmatch(ref); m != nil {
		return decodeUPS(ref, m)
	}
	return geoproj.GeoCoordinate{}, &FormatError{Value: s,
		Reason: "does not match the MGRS pattern"}
}

// digitOffsets parses the numeric tail of a reference into easting and
// northing offsets at the center of the addressed square.
func digitOffsets(ref, digits string) (e, n float64, err error) {
	if len(digits)%2 != 0 || len(digits) > 10 {
		return 0, 0, &FormatError{Value: ref,
			Reason: "digits must come in equal pairs, at most 5 each"}
	}
	precision := len(digits) / 2
	size := math.Pow(10, float64(5-precision))
	ei, _ := strconv.Atoi("0" + digits[:precision])
	ni, _ := strconv.Atoi("0" + digits[precision:])
	return float64(ei)*size + size/2, float64(ni)*size + size/2, nil
}

func decodeUTM(ref string, m []string) (geoproj.GeoCoordinate, error) {
	z, _ := strconv.Atoi(m[1])
	if z < 1 || z > 60 {
		return geoproj.GeoCoordinate{}, &FormatError{Value: ref,
			Reason: "zone number out of range"}
	}
	band := m[2][0]

	colIdx := strings.IndexByte(colLetters[(z-1)%3], m[3][0])
	if colIdx < 0 {
		return geoproj.GeoCoordinate{}, &FormatError{Value: ref,
			Reason: fmt.Sprintf("column letter %c not valid in zone %d", m[3][0], z)}
	}
	easting := float64(colIdx+1) * squareSize

	rowIdx := strings.IndexByte(rowLetters, m[4][0])
	if z%2 == 0 {
		rowIdx = (rowIdx + 15) % 20
	}
	northing := float64(rowIdx) * squareSize
	for northing < bandMinNorthing[band] {
		northing += cycleSize
	}

	de, dn, err := digitOffsets(ref, m[5])
	if err != nil {
		return geoproj.GeoCoordinate{}, err
	}

	zone := float64(z)
	if band < 'N' {
		zone = -zone
	}
	p, err := utmProjection(zone)
	if err != nil {
		return geoproj.GeoCoordinate{}, err
	}
	return p.Reverse(geoproj.Coordinate{X: easting + de, Y: northing + dn})
}

func decodeUPS(ref string, m []string) (geoproj.GeoCoordinate, error) {
	band := m[1][0]
	south := band == 'A' || band == 'B'
	west := band == 'A' || band == 'Y'

	cols, colOrigin := polarColsEast, cycleSize
	if west {
		cols, colOrigin = polarColsWest, 800000
	}
	rows, rowOrigin := polarRowsNorth, 1300000.0
	if south {
		rows, rowOrigin = polarRowsSouth, 800000
	}

	colIdx := strings.IndexByte(cols, m[2][0])
	rowIdx := strings.IndexByte(rows, m[3][0])
	if colIdx < 0 || rowIdx < 0 {
		return geoproj.GeoCoordinate{}, &FormatError{Value: ref,
			Reason: fmt.Sprintf("square letters not valid in polar band %c", band)}
	}

	de, dn, err := digitOffsets(ref, m[4])
	if err != nil {
		return geoproj.GeoCoordinate{}, err
	}

	p, err := upsProjection(south)
	if err != nil {
		return geoproj.GeoCoordinate{}, err
	}
	return p.Reverse(geoproj.Coordinate{
		X: colOrigin + float64(colIdx)*squareSize + de,
		Y: rowOrigin + float64(rowIdx)*squareSize + dn,
	})
}
