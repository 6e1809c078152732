// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/bst"
)

func TestBalancedEmpty(t *testing.T) {
	tree := bst.New()

	assert.True(t, tree.IsBalanced(), "empty tree")
	assert.True(t, tree.IsHeightBalanced(), "empty tree")
	assert.True(t, tree.CheckOrder(), "empty tree")
}

// a node with both children is judged on the height difference of
// its sub-trees
func TestBalancedBothChildren(t *testing.T) {
	tree := newTree(2, 4, 6)
	tree.Insert(bst.Int(7))

	assert.True(t, tree.IsBalanced(), "one level difference")

	tree.Insert(bst.Int(8))

	assert.False(t, tree.IsBalanced(), "two level difference")
	assert.False(t, tree.IsHeightBalanced(), "two level difference")
}

func TestBalancedDeepInside(t *testing.T) {
	tree := newTree(10, 20, 30, 40, 50, 60, 70)
	for _, v := range []int{21, 22, 23} {
		tree.Insert(bst.Int(v))
	}

	// 20 has 10 on the left and 30 → 21 → 22 → 23 on the right
	assert.False(t, tree.IsBalanced(), "unbalanced inner node")
	assert.True(t, tree.CheckOrder(), "order check")
}

func TestCheckOrder(t *testing.T) {
	tree := newTree(3, 1, 4, 1, 5, 9, 2, 6)
	assert.True(t, tree.CheckOrder(), "built tree")

	for _, v := range []int{8, 7, 0} {
		tree.Insert(bst.Int(v))
	}
	assert.True(t, tree.CheckOrder(), "after inserts")

	tree.Delete(bst.Int(5))
	assert.True(t, tree.CheckOrder(), "after delete")
}
