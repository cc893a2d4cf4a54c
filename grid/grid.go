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

/*
Package grid encodes geographic coordinates as grid reference strings and
decodes them back: the Military Grid Reference System (MGRS, over UTM and
UPS base projections on WGS 84) and the World Geographic Reference System
(Georef).
*/
package grid

import (
	"fmt"

	"github.com/spatialmodel/geoproj"
	"github.com/spatialmodel/geoproj/ellipsoid"
)

// FormatError reports a grid reference string that does not match the
// expected pattern for its length.
type FormatError struct {
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("geoproj/grid: invalid grid reference %q: %s", e.Value, e.Reason)
}

// utmProjection builds the UTM base projection on WGS 84 for a zone; a
// negative zone number selects the southern hemisphere.
func utmProjection(zone float64) (*geoproj.Projection, error) {
	return geoproj.NewProjection("UTM", "UTM", geoproj.Params{
		geoproj.ZoneNumber: geoproj.Scalar(zone),
	}, ellipsoid.WGS84, nil)
}

// upsProjection builds the Universal Polar Stereographic base projection on
// WGS 84 for the given hemisphere.
func upsProjection(south bool) (*geoproj.Projection, error) {
	lat0 := 90.0
	if south {
		lat0 = -90
	}
	return geoproj.NewProjection("EPSG:9810", "UPS", geoproj.Params{
		geoproj.LatitudeOfNaturalOrigin:    geoproj.Degrees(lat0),
		geoproj.LongitudeOfNaturalOrigin:   geoproj.Degrees(0),
		geoproj.ScaleFactorAtNaturalOrigin: geoproj.Scalar(0.994),
		geoproj.FalseEasting:               geoproj.Length(2000000),
		geoproj.FalseNorthing:              geoproj.Length(2000000),
	}, ellipsoid.WGS84, nil)
}
