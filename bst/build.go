// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"sort"
)

// Build - create a tree from a list of values
func Build(values ...Item) *Tree {
	tree := New()
	tree.BuildTree(values)
	return tree
}

// BuildInts - create a tree of Int items
func BuildInts(values ...int) *Tree {
	return Build(Ints(values...)...)
}

// BuildTree - replace the tree with a balanced one holding the
// distinct values from the list, returns the new root
//
// the list is not modified; duplicates and ordering do not matter
func (tree *Tree) BuildTree(values []Item) *Node {
	sorted := sortUnique(values)

	freeTree(tree.root)
	tree.values = sorted
	tree.root = buildRange(sorted, 0, len(sorted)-1)

	tree.debugf("build: %d values from %d inputs", len(sorted), len(values))
	return tree.root
}

// Rebalance - rebuild the tree from its current value set
func (tree *Tree) Rebalance() {
	tree.debugf("rebalance: %d values", len(tree.values))
	tree.BuildTree(tree.values)
}

// internal: build the sub-tree for the inclusive range [start, finish]
// the lower middle index is chosen for an even sized range
func buildRange(values []Item, start int, finish int) *Node {
	if start > finish {
		return nil
	}
	mid := (start + finish) / 2
	p := newNode(values[mid])
	p.left = buildRange(values, start, mid-1)
	p.right = buildRange(values, mid+1, finish)
	return p
}

// internal: sorted copy with duplicates removed
func sortUnique(values []Item) []Item {
	sorted := make([]Item, 0, len(values))
	for _, v := range values {
		if nil != v {
			sorted = append(sorted, v)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})

	n := 0
	for i, v := range sorted {
		if i > 0 && 0 == sorted[n-1].Compare(v) {
			continue
		}
		sorted[n] = v
		n += 1
	}
	return sorted[:n]
}
