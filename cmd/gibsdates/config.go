// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/gibsdates/datetime"
	"cloudeng.io/gibsdates/wms"
	"gopkg.in/yaml.v3"
)

// Config represents the dates and view to generate GetMap requests for.
// Dates are specified as integer year, month and day values, eg:
//
//	start: {year: 2019, month: 4, day: 1}
//	end: {year: 2020, month: 4, day: 1}
//	step: 0y1m5d
//	view:
//	  layer: MODIS_Terra_correctedReflectance_TrueColor
//	  lat_min: "28.582763671876"
//	  ...
//	  format: jpeg
type Config struct {
	Start   datetime.Date   `yaml:"start"`
	End     datetime.Date   `yaml:"end"`
	Step    datetime.Period `yaml:"step"`
	View    wms.View        `yaml:"view"`
	Service wms.Locator     `yaml:"service"`
}

// DefaultConfig returns the configuration used when no configuration
// file is specified.
func DefaultConfig() Config {
	return Config{
		Start:   datetime.SampleStart(),
		End:     datetime.SampleEnd(),
		Step:    datetime.SampleStep(),
		View:    wms.SampleView(),
		Service: wms.DefaultLocator(),
	}
}

// Dates returns the sequence of dates described by the configuration.
func (c Config) Dates() *datetime.Dates {
	return datetime.NewDates(c.Start, c.End, c.Step)
}

// Validate returns an error describing every problem found with
// the configuration.
func (c Config) Validate() error {
	var errs errors.M
	if !c.Start.Valid() {
		errs.Append(fmt.Errorf("start: invalid date: %v", c.Start))
	}
	if !c.End.Valid() {
		errs.Append(fmt.Errorf("end: invalid date: %v", c.End))
	}
	if c.Start.Valid() && c.End.Valid() && c.End.Before(c.Start) {
		errs.Append(fmt.Errorf("end: %v is before start: %v", c.End, c.Start))
	}
	// Whether a step with mixed signs advances depends on the date it is
	// added to, so only steps that advance every date are accepted.
	if !c.Step.Advances() {
		errs.Append(fmt.Errorf("step: %v must be non-zero with no negative components", c.Step))
	}
	for _, f := range []struct {
		name, value string
	}{
		{"view.layer", string(c.View.Layer)},
		{"view.lat_min", c.View.LatMin},
		{"view.lat_max", c.View.LatMax},
		{"view.lon_min", c.View.LonMin},
		{"view.lon_max", c.View.LonMax},
		{"view.width", c.View.Width},
		{"view.height", c.View.Height},
		{"service.scheme", c.Service.Scheme},
		{"service.host", c.Service.Host},
	} {
		if len(f.value) == 0 {
			errs.Append(fmt.Errorf("%v: must be specified", f.name))
		}
	}
	return errs.Err()
}

// loadConfig returns the default configuration overlaid with the
// contents of filename, if specified, and then with the step override,
// if specified.
func loadConfig(ctx context.Context, filename, step string) (Config, error) {
	cfg := DefaultConfig()
	if len(filename) > 0 {
		if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
			return Config{}, err
		}
	}
	if len(step) > 0 {
		if err := cfg.Step.Parse(step); err != nil {
			return Config{}, fmt.Errorf("--step: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) marshal() (string, error) {
	buf, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
