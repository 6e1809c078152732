// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Find - breadth first search for the node holding value, nil if not
// present
//
// the node belongs to the tree and is recycled by the next BuildTree,
// Delete or Rebalance
func (tree *Tree) Find(value Item) *Node {
	if nil == value || !tree.contains(value) {
		return nil
	}

	queue := []*Node{tree.root}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if 0 == p.value.Compare(value) {
			return p
		}
		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
	}
	return nil
}

// Contains - true if value is in the value set
func (tree *Tree) Contains(value Item) bool {
	return nil != value && tree.contains(value)
}

func (tree *Tree) contains(value Item) bool {
	return tree.indexOf(value) >= 0
}

// internal: linear scan of the value set
func (tree *Tree) indexOf(value Item) int {
	for i, v := range tree.values {
		if 0 == v.Compare(value) {
			return i
		}
	}
	return -1
}
