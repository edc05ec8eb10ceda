// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command gibsdates generates NASA GIBS WMS GetMap requests for a view
// of the earth over a sequence of dates.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

func init() {
	cmds := &commands{out: os.Stdout}

	datesCmd := subcmd.NewCommand("dates",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		cmds.dates, subcmd.WithoutArguments())
	datesCmd.Document(`print the sequence of dates from the configured start date to the end date, inclusive, in steps of the configured period.`)

	urisCmd := subcmd.NewCommand("uris",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		cmds.uris, subcmd.WithoutArguments())
	urisCmd.Document(`print the GetMap request URI for the configured view for each date in the configured sequence.`)

	configCmd := subcmd.NewCommand("config",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		cmds.config, subcmd.WithoutArguments())
	configCmd.Document(`print the effective configuration, ie. the built in defaults overridden by the configuration file and flags.`)

	cmdSet = subcmd.NewCommandSet(datesCmd, urisCmd, configCmd)
	cmdSet.Document(`generate NASA GIBS WMS GetMap requests for a sequence of dates.

The dates, their spacing and the view to be imaged are read from
a YAML configuration file, or default to a monthly (plus five days)
sequence of Terra true color images of western Nepal from 2019-04-01
to 2020-04-01.`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}
