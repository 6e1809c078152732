// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/version"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "json", HasArg: getoptions.NO_ARGUMENT, Short: 'j'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version.Version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--json] [--config-file=FILE] [--count=N] [--seed=N]", program)
	}

	if 0 != len(arguments) {
		exitwithstatus.Message("%s: extraneous extra arguments", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["count"]) > 0 {
		n, err := strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		masterConfiguration.Count = n
	}
	if len(options["seed"]) > 0 {
		n, err := strconv.ParseInt(options["seed"][0], 10, 64)
		if nil != err {
			exitwithstatus.Message("%s: convert seed error: %s", program, err)
		}
		masterConfiguration.Seed = n
	}
	if err := masterConfiguration.validate(); nil != err {
		exitwithstatus.Message("%s: invalid configuration: %s", program, err)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	// logging is only available with a configuration file
	var log *logger.L
	if "" != configurationFile {
		if err := os.MkdirAll(masterConfiguration.Logging.Directory, 0700); nil != err {
			exitwithstatus.Message("%s: log directory: %q  error: %s", program, masterConfiguration.Logging.Directory, err)
		}
		if err := logger.Initialise(masterConfiguration.Logging); nil != err {
			exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
		}
		defer logger.Finalise()

		if err := fault.Initialise(); nil != err {
			exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
		}
		defer fault.Finalise()

		log = logger.New("main")
		defer log.Info("shutting down…")
		log.Info("starting…")
		log.Infof("version: %s", version.Version)
		log.Debugf("configuration: %+v", masterConfiguration)
	}

	d := &demo{
		out:     os.Stdout,
		asJSON:  len(options["json"]) > 0,
		verbose: verbose,
		quiet:   quiet,
	}
	if nil != log {
		d.log = logger.New("bst")
	}

	if err := d.run(masterConfiguration); nil != err {
		fault.Criticalf("demo failed: %s", err)
		exitwithstatus.Message("%s: demo failed: %s", program, err)
	}
}
