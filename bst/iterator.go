// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Visitor - called once per node by the Walk functions
type Visitor interface {
	Visit(*Node)
}

// VisitorFunc - adapt an ordinary function to a Visitor
type VisitorFunc func(*Node)

// Visit - Visitor interface
func (f VisitorFunc) Visit(p *Node) {
	f(p)
}

// First - return the node with the lowest value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// WalkLevelOrder - visit nodes breadth first, left before right
func (tree *Tree) WalkLevelOrder(v Visitor) {
	if nil == tree.root {
		return
	}
	queue := []*Node{tree.root}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		v.Visit(p)
		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
	}
}

// WalkInorder - visit left, node, right
func (tree *Tree) WalkInorder(v Visitor) {
	inorder(tree.root, v)
}

// WalkPreorder - visit node, left, right
func (tree *Tree) WalkPreorder(v Visitor) {
	preorder(tree.root, v)
}

// WalkPostorder - visit left, right, node
func (tree *Tree) WalkPostorder(v Visitor) {
	postorder(tree.root, v)
}

// LevelOrder - values in breadth first order
func (tree *Tree) LevelOrder() []Item {
	return tree.collect(tree.WalkLevelOrder)
}

// Inorder - values in sorted order for a built tree
func (tree *Tree) Inorder() []Item {
	return tree.collect(tree.WalkInorder)
}

// Preorder - values in node, left, right order
func (tree *Tree) Preorder() []Item {
	return tree.collect(tree.WalkPreorder)
}

// Postorder - values in left, right, node order
func (tree *Tree) Postorder() []Item {
	return tree.collect(tree.WalkPostorder)
}

// internal: run a walk and gather the values
func (tree *Tree) collect(walk func(Visitor)) []Item {
	values := make([]Item, 0, len(tree.values))
	walk(VisitorFunc(func(p *Node) {
		values = append(values, p.value)
	}))
	return values
}

func inorder(p *Node, v Visitor) {
	if nil == p {
		return
	}
	inorder(p.left, v)
	v.Visit(p)
	inorder(p.right, v)
}

func preorder(p *Node, v Visitor) {
	if nil == p {
		return
	}
	v.Visit(p)
	preorder(p.left, v)
	preorder(p.right, v)
}

func postorder(p *Node, v Visitor) {
	if nil == p {
		return
	}
	postorder(p.left, v)
	postorder(p.right, v)
	v.Visit(p)
}
