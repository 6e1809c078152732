// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"

	"github.com/bitmark-inc/logger"
)

// Tree - type to hold the root node of a tree and the set of values
// it was built from
type Tree struct {
	root   *Node
	values []Item
	log    *logger.L
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:   nil,
		values: []Item{},
	}
}

// SetLog - attach a logger channel, nil disables logging
func (tree *Tree) SetLog(log *logger.L) {
	tree.log = log
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of values currently held
func (tree *Tree) Count() int {
	return len(tree.values)
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Values - copy of the value set in its stored order
//
// after a build this is sorted, inserted values are appended at the
// end until the next rebuild
func (tree *Tree) Values() []Item {
	values := make([]Item, len(tree.values))
	copy(values, tree.values)
	return values
}

func (tree *Tree) debugf(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Debugf(format, arguments...)
	}
}

func (tree *Tree) tracef(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Tracef(format, arguments...)
	}
}

// Value - read the value from a node
func (p *Node) Value() Item {
	return p.value
}

// Left - left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// IsLeaf - true if node has no children
func (p *Node) IsLeaf() bool {
	return nil == p.left && nil == p.right
}

// String - node value with its immediate children
func (p *Node) String() string {
	if nil == p {
		return "<nil>"
	}
	l := interface{}(nil)
	if nil != p.left {
		l = p.left.value
	}
	r := interface{}(nil)
	if nil != p.right {
		r = p.right.value
	}
	return fmt.Sprintf("%v [%v, %v]", p.value, l, r)
}

// GetChildrenByDepth - returns all nodes at a specific depth below
// this node, left to right
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if 0 == depth {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if nil != left {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if nil != right {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}
