// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"sync"

	"github.com/bitmark-inc/bstree/counter"
)

// Item - a value stored in the tree must implement the Compare function
//
// Compare returns -1, 0 or +1 as the receiver is less than, equal to
// or greater than the argument, which is always of the same type.
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a vertex of the tree
type Node struct {
	left  *Node // left sub-tree
	right *Node // right sub-tree
	value Item  // ordering key and data
}

// global data for allocator
var m sync.Mutex // to keep pool in sync
var pool *Node   // linked list of reclaimed nodes, chained by right

var totalNodes counter.Counter // total nodes created
var freeNodes counter.Counter  // number of nodes in the pool

// allocate a new node, reuses reclaimed nodes if any are available
func newNode(value Item) *Node {
	m.Lock()
	if nil == pool {
		if !freeNodes.IsZero() {
			m.Unlock()
			panic("pool corrupt")
		}
		totalNodes.Increment()
		m.Unlock()
		return &Node{
			value: value,
		}
	}
	p := pool
	pool = p.right
	p.value = value
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	freeNodes.Decrement()
	m.Unlock()
	return p
}

// reclaim a whole sub-tree and keep its nodes in the pool
func freeTree(p *Node) {
	if nil == p {
		return
	}
	freeTree(p.left)
	freeTree(p.right)

	m.Lock()
	p.right = pool // use as free list pointer
	p.left = nil
	p.value = nil
	freeNodes.Increment()
	pool = p
	m.Unlock()
}

// AllocatorStats - number of nodes ever created and number currently
// waiting in the reuse pool
func AllocatorStats() (total uint64, free uint64) {
	return totalNodes.Uint64(), freeNodes.Uint64()
}
