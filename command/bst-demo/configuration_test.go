// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bstree/fault"
)

func TestDefaultConfiguration(t *testing.T) {
	config, err := getConfiguration("")
	require.NoError(t, err, "defaults")

	assert.Equal(t, defaultCount, config.Count, "count")
	assert.Equal(t, defaultMinimum, config.Minimum, "minimum")
	assert.Equal(t, defaultMaximum, config.Maximum, "maximum")
	assert.Equal(t, defaultInserts, config.Inserts, "inserts")
	assert.Equal(t, defaultLogDirectory, config.Logging.Directory, "log directory")
}

func TestConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "bst-demo-test")
	require.NoError(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "demo.conf")
	err = ioutil.WriteFile(fileName, []byte(`
return {
    count = 30,
    maximum = 500,
    seed = 42,
    inserts = { 600, 700 },
    logging = {
        directory = "logs",
    },
}
`), 0600)
	require.NoError(t, err, "write configuration")

	config, err := getConfiguration(fileName)
	require.NoError(t, err, "read configuration")

	assert.Equal(t, 30, config.Count, "count")
	assert.Equal(t, defaultMinimum, config.Minimum, "minimum default kept")
	assert.Equal(t, 500, config.Maximum, "maximum")
	assert.Equal(t, int64(42), config.Seed, "seed")
	assert.Equal(t, []int{600, 700}, config.Inserts, "inserts")
	assert.Equal(t, filepath.Join(dir, "logs"), config.Logging.Directory, "log directory made absolute")
	assert.Equal(t, defaultLogFile, config.Logging.File, "log file default kept")
}

func TestConfigurationInvalid(t *testing.T) {
	dir, err := ioutil.TempDir("", "bst-demo-test")
	require.NoError(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	items := []struct {
		content string
		err     error
	}{
		{`return { count = 0 }`, fault.ErrInvalidCount},
		{`return { count = -3 }`, fault.ErrInvalidCount},
		{`return { minimum = 10, maximum = 5 }`, fault.ErrInvalidRange},
	}

	for i, item := range items {
		fileName := filepath.Join(dir, "invalid.conf")
		err := ioutil.WriteFile(fileName, []byte(item.content), 0600)
		require.NoError(t, err, "%d: write configuration", i)

		_, err = getConfiguration(fileName)
		assert.Equal(t, item.err, err, "%d: error", i)
		assert.True(t, fault.IsErrInvalid(err), "%d: error class", i)
	}

	_, err = getConfiguration(filepath.Join(dir, "absent.conf"))
	assert.True(t, fault.IsErrNotFound(err), "missing file: %v", err)
}
