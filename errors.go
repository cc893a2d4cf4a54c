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

import "fmt"

// All failures in this package are synchronous and deterministic: a call
// either returns a coordinate or one of the error types below, and there is
// no retry or partial result. Construction problems are always reported by
// NewProjection, never deferred to Forward or Reverse.

// MissingParamError reports a required projection parameter that was not
// supplied at construction.
type MissingParamError struct {
	Method string
	Param  ParamKind
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("geoproj: %s: missing required parameter %s", e.Method, e.Param)
}

// ParamUnitError reports a parameter whose measurement kind does not match
// what the projection formula expects (angle, length, or scalar).
type ParamUnitError struct {
	Method string
	Param  ParamKind
	Err    error
}

func (e *ParamUnitError) Error() string {
	return fmt.Sprintf("geoproj: %s: parameter %s: %v", e.Method, e.Param, e.Err)
}

// ParamValueError reports a structurally invalid parameter combination,
// such as a non-zero natural-origin latitude for Mercator variant A.
type ParamValueError struct {
	Method, Reason string
}

func (e *ParamValueError) Error() string {
	return fmt.Sprintf("geoproj: %s: %s", e.Method, e.Reason)
}

// DomainError reports an input coordinate outside the region where the
// projection is defined. Inputs are rejected, never clamped.
type DomainError struct {
	Method, Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("geoproj: %s: %s", e.Method, e.Reason)
}

// ConvergenceError reports an iterative reverse computation that hit its
// iteration ceiling without meeting the convergence tolerance.
type ConvergenceError struct {
	Method     string
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("geoproj: %s: no convergence after %d iterations",
		e.Method, e.Iterations)
}

// UnsupportedError reports an operation a projection does not have, such as
// the reverse of Vertical Perspective.
type UnsupportedError struct {
	Method, Op string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("geoproj: %s: %s operation is not supported", e.Method, e.Op)
}
