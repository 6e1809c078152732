// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "counter is not zero at start")

	for i := 0; i < 5; i += 1 {
		c.Increment()
	}
	assert.Equal(t, uint64(5), c.Uint64(), "after incrementing")

	assert.Equal(t, uint64(4), c.Decrement(), "decrement result")

	for i := 0; i < 4; i += 1 {
		c.Decrement()
	}
	assert.True(t, c.IsZero(), "counter did not return to zero: %d", c.Uint64())

	// underflow wraps to twos complement -1
	c.Decrement()
	assert.Equal(t, ^uint64(0), c.Uint64(), "counter did not underflow")
}

func TestCounterConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	const workers = 8
	const each = 1000
	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < each; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(workers*each), c.Uint64(), "lost increments")
}
