// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Height - edges on the longest path from node down to a leaf
//
// a leaf has height 0 and a nil node -1
func Height(p *Node) int {
	switch {
	case nil == p:
		return -1
	case nil == p.left && nil == p.right:
		return 0
	case nil == p.left:
		return 1 + Height(p.right)
	case nil == p.right:
		return 1 + Height(p.left)
	}
	hl := Height(p.left)
	hr := Height(p.right)
	if hl >= hr {
		return 1 + hl
	}
	return 1 + hr
}

// Height - height of the whole tree, -1 if empty
func (tree *Tree) Height() int {
	return Height(tree.root)
}

// Depth - distance of a node below the root, computed from heights
// as Height(root) - Height(node)
func (tree *Tree) Depth(p *Node) int {
	return Height(tree.root) - Height(p)
}
