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

// Command geoproj converts coordinates between geographic and projected
// reference systems defined by TOML parameter-set files, and encodes and
// decodes MGRS and Georef grid references.
package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"math"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/spatialmodel/geoproj"
	"github.com/spatialmodel/geoproj/ellipsoid"
	"github.com/spatialmodel/geoproj/grid"
	"github.com/spf13/cobra"
)

const rad2deg = 180 / math.Pi

// config describes a projection in a TOML parameter-set file. Angles are
// given in degrees, lengths in meters.
type config struct {
	// Method is the registered method code or name, e.g. "EPSG:9807".
	Method string
	// Name is an optional display name.
	Name string
	// Ellipsoid is a named reference ellipsoid, e.g. "WGS 84".
	Ellipsoid string

	Angles  map[string]float64
	Lengths map[string]float64
	Scalars map[string]float64
}

func loadProjection(path string) (*geoproj.Projection, error) {
	var c config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("reading parameter set %s: %v", path, err)
	}
	ell := ellipsoid.ByName(c.Ellipsoid)
	if ell == nil {
		return nil, fmt.Errorf("%s: unknown ellipsoid %q", path, c.Ellipsoid)
	}
	par := make(geoproj.Params)
	for name, v := range c.Angles {
		k, ok := geoproj.ParamKindByName(name)
		if !ok {
			return nil, fmt.Errorf("%s: unknown parameter %q", path, name)
		}
		par[k] = geoproj.Degrees(v)
	}
	for name, v := range c.Lengths {
		k, ok := geoproj.ParamKindByName(name)
		if !ok {
			return nil, fmt.Errorf("%s: unknown parameter %q", path, name)
		}
		par[k] = geoproj.Length(v)
	}
	for name, v := range c.Scalars {
		k, ok := geoproj.ParamKindByName(name)
		if !ok {
			return nil, fmt.Errorf("%s: unknown parameter %q", path, name)
		}
		par[k] = geoproj.Scalar(v)
	}
	return geoproj.NewProjection(c.Method, c.Name, par, ell, nil)
}

func parseFloats(args []string) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %q is not a number", a)
		}
		vals[i] = v
	}
	return vals, nil
}

var (
	configFile      string
	mgrsPrecision   int
	georefPrecision int

	root = &cobra.Command{
		Use:   "geoproj",
		Short: "geoproj converts between geographic and projected coordinates.",
	}

	forwardCmd = &cobra.Command{
		Use:   "forward [lon] [lat]",
		Short: "Project a geographic coordinate (degrees) to easting and northing.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProjection(configFile)
			if err != nil {
				return err
			}
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			c, err := p.Forward(geoproj.GeoCoordinate{
				Lon: v[0] / rad2deg, Lat: v[1] / rad2deg})
			if err != nil {
				return err
			}
			fmt.Printf("%f %f\n", c.X, c.Y)
			return nil
		},
	}

	reverseCmd = &cobra.Command{
		Use:   "reverse [easting] [northing]",
		Short: "Unproject an easting and northing to a geographic coordinate (degrees).",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProjection(configFile)
			if err != nil {
				return err
			}
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			c, err := p.Reverse(geoproj.Coordinate{X: v[0], Y: v[1]})
			if err != nil {
				return err
			}
			fmt.Printf("%f %f\n", c.Lon*rad2deg, c.Lat*rad2deg)
			return nil
		},
	}

	unproject bool

	geojsonCmd = &cobra.Command{
		Use:   "geojson [input file]",
		Short: "Project the geometry in a GeoJSON file, writing GeoJSON to standard output.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProjection(configFile)
			if err != nil {
				return err
			}
			data, err := ioutil.ReadFile(args[0])
			if err != nil {
				return err
			}
			g, err := geojson.Decode(data)
			if err != nil {
				return fmt.Errorf("decoding %s: %v", args[0], err)
			}
			if unproject {
				g, err = p.Unproject(g)
			} else {
				g, err = p.Project(g)
			}
			if err != nil {
				return err
			}
			out, err := geojson.Encode(g)
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	mgrsCmd = &cobra.Command{
		Use:   "mgrs [reference] | [lon] [lat]",
		Short: "Convert between geographic coordinates (degrees) and MGRS references.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				c, err := grid.DecodeMGRS(args[0])
				if err != nil {
					return err
				}
				fmt.Printf("%f %f\n", c.Lon*rad2deg, c.Lat*rad2deg)
				return nil
			}
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			s, err := grid.EncodeMGRS(geoproj.GeoCoordinate{
				Lon: v[0] / rad2deg, Lat: v[1] / rad2deg}, mgrsPrecision)
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		},
	}

	georefCmd = &cobra.Command{
		Use:   "georef [reference] | [lon] [lat]",
		Short: "Convert between geographic coordinates (degrees) and Georef references.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				c, err := grid.DecodeGeoref(args[0])
				if err != nil {
					return err
				}
				fmt.Printf("%f %f\n", c.Lon*rad2deg, c.Lat*rad2deg)
				return nil
			}
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			s, err := grid.EncodeGeoref(geoproj.GeoCoordinate{
				Lon: v[0] / rad2deg, Lat: v[1] / rad2deg}, georefPrecision)
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		},
	}

	methodsCmd = &cobra.Command{
		Use:   "methods",
		Short: "List the registered projection method codes and names.",
		Run: func(cmd *cobra.Command, args []string) {
			for _, m := range geoproj.Methods() {
				fmt.Println(m)
			}
		},
	}
)

func init() {
	root.PersistentFlags().StringVar(&configFile, "config", "",
		"TOML parameter-set file describing the projection")
	geojsonCmd.Flags().BoolVar(&unproject, "reverse", false,
		"unproject from projected to geographic coordinates")
	mgrsCmd.Flags().IntVar(&mgrsPrecision, "precision", 5,
		"digits per ordinate in the encoded reference")
	georefCmd.Flags().IntVar(&georefPrecision, "precision", 4,
		"precision class of the encoded reference (0 to 4)")
	root.AddCommand(forwardCmd, reverseCmd, geojsonCmd, mgrsCmd, georefCmd, methodsCmd)
}

func main() {
	log.SetFlags(0)
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
