// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
)

// CommonFlags represents the flags shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	ConfigFile string `subcmd:"config,,'yaml configuration file, the built in defaults are used if not specified'"`
	Step       string `subcmd:"step,,'step between dates in the form <years>y<months>m<days>d, eg. 0y1m5d, overrides the configured step'"`
}

type commands struct {
	out io.Writer
}

// setup creates the logger specified by the flags, stores it in the
// returned context and loads the configuration.
func setup(ctx context.Context, cf *CommonFlags) (context.Context, Config, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, Config{}, nil, err
	}
	logger.LogBuildInfo()
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	cfg, err := loadConfig(ctx, cf.ConfigFile, cf.Step)
	if err != nil {
		logger.Close()
		return ctx, Config{}, nil, err
	}
	logger.Info("configuration",
		"file", cf.ConfigFile,
		"start", cfg.Start.String(),
		"end", cfg.End.String(),
		"step", cfg.Step.String())
	return ctx, cfg, func() { logger.Close() }, nil
}

func (c *commands) dates(ctx context.Context, values any, _ []string) error {
	ctx, cfg, done, err := setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer done()
	n := 0
	for d := range cfg.Dates().All() {
		if _, err := fmt.Fprintln(c.out, d); err != nil {
			return err
		}
		n++
	}
	ctxlog.Logger(ctx).Debug("dates", "count", n)
	return nil
}

func (c *commands) uris(ctx context.Context, values any, _ []string) error {
	ctx, cfg, done, err := setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer done()
	n := 0
	for u := range cfg.Service.LocateAll(cfg.View, cfg.Dates()) {
		if _, err := fmt.Fprintln(c.out, u); err != nil {
			return err
		}
		n++
	}
	ctxlog.Logger(ctx).Debug("uris", "count", n, "host", cfg.Service.Host, "layer", cfg.View.Layer)
	return nil
}

func (c *commands) config(ctx context.Context, values any, _ []string) error {
	_, cfg, done, err := setup(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer done()
	out, err := cfg.marshal()
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.out, out)
	return err
}
