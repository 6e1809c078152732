// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/configuration"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/util"
)

// basic defaults (directories and files are relative to the directory
// holding the configuration file)
const (
	defaultCount   = 15
	defaultMinimum = 1
	defaultMaximum = 100
	defaultSeed    = 0 // time based

	defaultLogDirectory = "log"
	defaultLogFile      = "bst-demo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}

	defaultInserts = []int{1, 101, 102, 103, 104, 105, 106, 107, 108}
)

// Configuration - demo parameters
type Configuration struct {
	Count   int                  `gluamapper:"count" json:"count"`
	Minimum int                  `gluamapper:"minimum" json:"minimum"`
	Maximum int                  `gluamapper:"maximum" json:"maximum"`
	Seed    int64                `gluamapper:"seed" json:"seed"`
	Inserts []int                `gluamapper:"inserts" json:"inserts"`
	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
// an empty file name gives the defaults
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{
		Count:   defaultCount,
		Minimum: defaultMinimum,
		Maximum: defaultMaximum,
		Seed:    defaultSeed,
		Inserts: append([]int{}, defaultInserts...),

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if "" == configurationFileName {
		return options, nil
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(dataDirectory, *f)
	}

	return options, nil
}

// check value ranges
func (c *Configuration) validate() error {
	if c.Count <= 0 {
		return fault.ErrInvalidCount
	}
	if c.Minimum > c.Maximum {
		return fault.ErrInvalidRange
	}
	return nil
}
