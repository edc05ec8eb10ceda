// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package wms provides support for creating OGC Web Map Service (WMS)
// GetMap requests for the NASA Global Imagery Browse Services (GIBS).
// A View describes what to look at, and with which imagery layer, but
// not when, the date is supplied separately so that a single View may
// be used to request imagery for a sequence of dates.
package wms

import (
	"fmt"
	"iter"
	"net/url"
	"strings"

	"cloudeng.io/gibsdates/datetime"
)

// Layer represents a GIBS imagery layer.
type Layer string

const (
	Terra Layer = "MODIS_Terra_correctedReflectance_TrueColor"
	Aqua  Layer = "MODIS_Aqua_correctedReflectance_TrueColor"
)

// Query returns the LAYERS query fragment.
func (l Layer) Query() string {
	return "&LAYERS=" + string(l)
}

// ImageFormat represents the format of the requested image.
type ImageFormat int

const (
	JPEG ImageFormat = iota
	PNG
)

func (f ImageFormat) String() string {
	switch f {
	case JPEG:
		return "JPEG"
	case PNG:
		return "PNG"
	}
	return fmt.Sprintf("ImageFormat(%d)", int(f))
}

// Query returns the FORMAT query fragment.
func (f ImageFormat) Query() string {
	return "&FORMAT=image/" + f.String()
}

// MarshalText implements encoding.TextMarshaler.
func (f ImageFormat) MarshalText() ([]byte, error) {
	switch f {
	case JPEG, PNG:
		return []byte(strings.ToLower(f.String())), nil
	}
	return nil, fmt.Errorf("unsupported image format: %d", int(f))
}

// UnmarshalText implements encoding.TextUnmarshaler, it accepts jpeg,
// jpg and png in any case.
func (f *ImageFormat) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "jpeg", "jpg":
		*f = JPEG
	case "png":
		*f = PNG
	default:
		return fmt.Errorf("unsupported image format: %q", text)
	}
	return nil
}

// View represents the area to be imaged, the layer to use and the size
// and format of the image. The bounding box and size values are used
// verbatim.
type View struct {
	Layer  Layer       `yaml:"layer"`
	LatMin string      `yaml:"lat_min"`
	LatMax string      `yaml:"lat_max"`
	LonMin string      `yaml:"lon_min"`
	LonMax string      `yaml:"lon_max"`
	Width  string      `yaml:"width"`
	Height string      `yaml:"height"`
	Format ImageFormat `yaml:"format"`
}

// Query returns the query fragment for the view, namely its layer,
// format, height, width and bounding box.
func (v View) Query() string {
	return fmt.Sprintf("%s%s&HEIGHT=%s&WIDTH=%s&BBox=%s,%s,%s,%s",
		v.Layer.Query(),
		v.Format.Query(),
		v.Height,
		v.Width,
		v.LatMin,
		v.LonMin,
		v.LatMax,
		v.LonMax)
}

// TimeQuery returns the Time query fragment for the supplied date.
func TimeQuery(d datetime.Date) string {
	return "&Time=" + d.String()
}

// Locator represents the service endpoint that GetMap requests are
// sent to.
type Locator struct {
	Scheme    string `yaml:"scheme"`
	Host      string `yaml:"host"`
	Path      string `yaml:"path"`
	BaseQuery string `yaml:"base_query"`
}

// DefaultLocator returns a Locator for the GIBS EPSG:4326 'best'
// imagery endpoint.
func DefaultLocator() Locator {
	return Locator{
		Scheme:    "https",
		Host:      "gibs.earthdata.nasa.gov",
		Path:      "/wms/epsg4326/best/wms.cgi",
		BaseQuery: "SERVICE=WMS&REQUEST=GetMap&VERSION=1.3.0&CRS=EPSG:4326",
	}
}

// Locate returns the URL of the GetMap request for the view on the
// specified date.
func (l Locator) Locate(v View, d datetime.Date) *url.URL {
	return &url.URL{
		Scheme:   l.Scheme,
		Host:     l.Host,
		Path:     l.Path,
		RawQuery: l.BaseQuery + TimeQuery(d) + v.Query(),
	}
}

// LocateAll returns an iterator over the GetMap request URLs for each
// of the remaining dates in ds.
func (l Locator) LocateAll(v View, ds *datetime.Dates) iter.Seq[*url.URL] {
	return func(yield func(*url.URL) bool) {
		for d := range ds.All() {
			if !yield(l.Locate(v, d)) {
				return
			}
		}
	}
}

// Locate is like Locator.Locate using DefaultLocator.
func Locate(v View, d datetime.Date) *url.URL {
	return DefaultLocator().Locate(v, d)
}

// SampleView returns a Terra true color view of a region of
// western Nepal as a 619x536 JPEG.
func SampleView() View {
	return View{
		Layer:  Terra,
		LatMin: "28.582763671876",
		LatMax: "29.760498046876",
		LonMin: "82.357421875",
		LonMax: "83.717529296875",
		Width:  "619",
		Height: "536",
		Format: JPEG,
	}
}
