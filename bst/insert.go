// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Insert - attach a new leaf holding value, returns false if value
// was already present
//
// the tree is not rebalanced, call Rebalance afterwards if needed
func (tree *Tree) Insert(value Item) bool {
	if nil == value || tree.contains(value) {
		return false
	}
	if nil == tree.root {
		tree.BuildTree([]Item{value})
		return true
	}

	p := tree.root
	for {
		if value.Compare(p.value) < 0 {
			if nil == p.left {
				p.left = newNode(value)
				break
			}
			p = p.left
		} else {
			if nil == p.right {
				p.right = newNode(value)
				break
			}
			p = p.right
		}
	}
	tree.values = append(tree.values, value)

	tree.tracef("insert: %v", value)
	return true
}
