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

import (
	"math"
	"strings"

	"github.com/ctessum/unit"
)

// ParamKind identifies a named operation parameter, following the EPSG
// parameter catalog.
type ParamKind int

// Operation parameter kinds.
const (
	LatitudeOfNaturalOrigin ParamKind = iota
	LongitudeOfNaturalOrigin
	ScaleFactorAtNaturalOrigin
	FalseEasting
	FalseNorthing
	LatitudeOf1stStandardParallel
	LatitudeOf2ndStandardParallel
	LatitudeOfFalseOrigin
	LongitudeOfFalseOrigin
	EastingAtFalseOrigin
	NorthingAtFalseOrigin
	LatitudeOfProjectionCentre
	LongitudeOfProjectionCentre
	AzimuthOfInitialLine
	AngleFromRectifiedToSkewGrid
	ScaleFactorOnInitialLine
	EastingAtProjectionCentre
	NorthingAtProjectionCentre
	LatitudeOfPseudoStandardParallel
	ScaleFactorOnPseudoStandardParallel
	LatitudeOfStandardParallel
	LongitudeOfOrigin
	ViewPointHeight
	Ordinate1OfEvaluationPoint
	Ordinate2OfEvaluationPoint
	ZoneNumber
	C1
	C2
	C3
	C4
	C5
	C6
	C7
	C8
	C9
	C10
)

var paramNames = []string{
	LatitudeOfNaturalOrigin:             "latitude of natural origin",
	LongitudeOfNaturalOrigin:            "longitude of natural origin",
	ScaleFactorAtNaturalOrigin:          "scale factor at natural origin",
	FalseEasting:                        "false easting",
	FalseNorthing:                       "false northing",
	LatitudeOf1stStandardParallel:       "latitude of 1st standard parallel",
	LatitudeOf2ndStandardParallel:       "latitude of 2nd standard parallel",
	LatitudeOfFalseOrigin:               "latitude of false origin",
	LongitudeOfFalseOrigin:              "longitude of false origin",
	EastingAtFalseOrigin:                "easting at false origin",
	NorthingAtFalseOrigin:               "northing at false origin",
	LatitudeOfProjectionCentre:          "latitude of projection centre",
	LongitudeOfProjectionCentre:         "longitude of projection centre",
	AzimuthOfInitialLine:                "azimuth of initial line",
	AngleFromRectifiedToSkewGrid:        "angle from rectified to skew grid",
	ScaleFactorOnInitialLine:            "scale factor on initial line",
	EastingAtProjectionCentre:           "easting at projection centre",
	NorthingAtProjectionCentre:          "northing at projection centre",
	LatitudeOfPseudoStandardParallel:    "latitude of pseudo standard parallel",
	ScaleFactorOnPseudoStandardParallel: "scale factor on pseudo standard parallel",
	LatitudeOfStandardParallel:          "latitude of standard parallel",
	LongitudeOfOrigin:                   "longitude of origin",
	ViewPointHeight:                     "viewpoint height",
	Ordinate1OfEvaluationPoint:          "ordinate 1 of evaluation point",
	Ordinate2OfEvaluationPoint:          "ordinate 2 of evaluation point",
	ZoneNumber:                          "zone number",
	C1:                                  "C1",
	C2:                                  "C2",
	C3:                                  "C3",
	C4:                                  "C4",
	C5:                                  "C5",
	C6:                                  "C6",
	C7:                                  "C7",
	C8:                                  "C8",
	C9:                                  "C9",
	C10:                                 "C10",
}

func (k ParamKind) String() string {
	if int(k) < len(paramNames) {
		return paramNames[k]
	}
	return "unknown parameter"
}

// ParamKindByName returns the parameter kind with the given catalog name,
// compared case-insensitively.
func ParamKindByName(name string) (ParamKind, bool) {
	for i, n := range paramNames {
		if strings.EqualFold(n, name) {
			return ParamKind(i), true
		}
	}
	return 0, false
}

// Params maps parameter kinds to measured values. Values carry their own
// dimensions; extraction checks them against what the formula expects and
// fails at construction time on a mismatch.
type Params map[ParamKind]*unit.Unit

var radians = unit.Dimensions{unit.AngleDim: 1}

// Angle creates an angular parameter value from radians.
func Angle(rad float64) *unit.Unit { return unit.New(rad, radians) }

// Degrees creates an angular parameter value from degrees.
func Degrees(deg float64) *unit.Unit { return unit.New(deg*math.Pi/180, radians) }

// Length creates a length parameter value from meters.
func Length(m float64) *unit.Unit { return unit.New(m, unit.Meter) }

// Scalar creates a dimensionless parameter value.
func Scalar(v float64) *unit.Unit { return unit.New(v, unit.Dimless) }

func (par Params) get(method string, k ParamKind, d unit.Dimensions) (float64, error) {
	u, ok := par[k]
	if !ok {
		return math.NaN(), &MissingParamError{Method: method, Param: k}
	}
	if err := u.Check(d); err != nil {
		return math.NaN(), &ParamUnitError{Method: method, Param: k, Err: err}
	}
	return u.Value(), nil
}

func (par Params) getDefault(method string, k ParamKind, d unit.Dimensions, def float64) (float64, error) {
	if _, ok := par[k]; !ok {
		return def, nil
	}
	return par.get(method, k, d)
}

// Angle extracts a required angular parameter in radians.
func (par Params) Angle(method string, k ParamKind) (float64, error) {
	return par.get(method, k, radians)
}

// AngleDefault extracts an angular parameter in radians, substituting def
// when the parameter is absent.
func (par Params) AngleDefault(method string, k ParamKind, def float64) (float64, error) {
	return par.getDefault(method, k, radians, def)
}

// Length extracts a required length parameter in the ellipsoid base unit.
func (par Params) Length(method string, k ParamKind) (float64, error) {
	return par.get(method, k, unit.Meter)
}

// LengthDefault extracts a length parameter, substituting def when the
// parameter is absent.
func (par Params) LengthDefault(method string, k ParamKind, def float64) (float64, error) {
	return par.getDefault(method, k, unit.Meter, def)
}

// Scalar extracts a required dimensionless parameter.
func (par Params) Scalar(method string, k ParamKind) (float64, error) {
	return par.get(method, k, unit.Dimless)
}

// ScalarDefault extracts a dimensionless parameter, substituting def when
// the parameter is absent.
func (par Params) ScalarDefault(method string, k ParamKind, def float64) (float64, error) {
	return par.getDefault(method, k, unit.Dimless, def)
}
