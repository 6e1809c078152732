// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/util"
)

func TestEnsureAbsolute(t *testing.T) {
	items := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/var/lib/demo", "log", "/var/lib/demo/log"},
		{"/var/lib/demo/", "./log/../logs", "/var/lib/demo/logs"},
		{"/var/lib/demo", "/tmp/log", "/tmp/log"},
		{"/var/lib/demo", "/tmp//log/", "/tmp/log"},
	}

	for i, item := range items {
		actual := util.EnsureAbsolute(item.directory, item.path)
		assert.Equal(t, item.expected, actual, "%d: directory: %q  path: %q", i, item.directory, item.path)
	}
}
