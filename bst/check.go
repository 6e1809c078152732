// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// IsBalanced - check every node that has a child
//
// a missing child is measured as if it were its sibling, so only
// nodes with both children can fail: their sub-tree heights must not
// differ by more than one
func (tree *Tree) IsBalanced() bool {
	for _, value := range tree.values {
		p := tree.Find(value)
		if nil == p || p.IsLeaf() {
			continue
		}
		l := p.left
		if nil == l {
			l = p.right
		}
		r := p.right
		if nil == r {
			r = p.left
		}
		if d := Height(l) - Height(r); d < -1 || d > 1 {
			tree.debugf("unbalanced at: %v  difference: %d", value, d)
			return false
		}
	}
	return true
}

// IsHeightBalanced - AVL style check where an empty sub-tree has
// height -1
func (tree *Tree) IsHeightBalanced() bool {
	_, ok := heightBalanced(tree.root)
	return ok
}

func heightBalanced(p *Node) (int, bool) {
	if nil == p {
		return -1, true
	}
	hl, ok := heightBalanced(p.left)
	if !ok {
		return 0, false
	}
	hr, ok := heightBalanced(p.right)
	if !ok {
		return 0, false
	}
	if d := hl - hr; d < -1 || d > 1 {
		return 0, false
	}
	if hl > hr {
		return 1 + hl, true
	}
	return 1 + hr, true
}

// CheckOrder - check the ordering of every node and that the nodes
// hold exactly the value set
func (tree *Tree) CheckOrder() bool {
	n := 0
	if !checkOrder(tree.root, nil, nil, &n) {
		return false
	}
	if n != len(tree.values) {
		return false
	}
	for _, v := range tree.values {
		if nil == tree.Find(v) {
			return false
		}
	}
	return true
}

// internal: consistency checker, low and high are exclusive bounds
func checkOrder(p *Node, low Item, high Item, n *int) bool {
	if nil == p {
		return true
	}
	if nil != low && p.value.Compare(low) <= 0 {
		return false
	}
	if nil != high && p.value.Compare(high) >= 0 {
		return false
	}
	*n += 1
	if !checkOrder(p.left, low, p.value, n) {
		return false
	}
	return checkOrder(p.right, p.value, high, n)
}
