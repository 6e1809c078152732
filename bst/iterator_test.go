// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/bst/mocks"
)

// gomock matcher for a node holding a particular value
type nodeValue struct {
	value bst.Item
}

func (m nodeValue) Matches(x interface{}) bool {
	p, ok := x.(*bst.Node)
	return ok && nil != p && 0 == p.Value().Compare(m.value)
}

func (m nodeValue) String() string {
	return fmt.Sprintf("node with value %v", m.value)
}

func expectInOrder(v *mocks.MockVisitor, values ...int) {
	calls := make([]*gomock.Call, len(values))
	for i, value := range values {
		calls[i] = v.EXPECT().Visit(nodeValue{bst.Int(value)}).Times(1)
	}
	gomock.InOrder(calls...)
}

func TestTraversalValues(t *testing.T) {
	tree := newTree(1, 2, 3, 4, 5, 6, 7)

	assert.Equal(t, bst.Ints(4, 2, 6, 1, 3, 5, 7), tree.LevelOrder(), "level order")
	assert.Equal(t, bst.Ints(1, 2, 3, 4, 5, 6, 7), tree.Inorder(), "inorder")
	assert.Equal(t, bst.Ints(4, 2, 1, 3, 6, 5, 7), tree.Preorder(), "preorder")
	assert.Equal(t, bst.Ints(1, 3, 2, 5, 7, 6, 4), tree.Postorder(), "postorder")
}

func TestTraversalRestartable(t *testing.T) {
	tree := newTree(8, 4, 12, 2, 6)

	assert.Equal(t, tree.Inorder(), tree.Inorder(), "inorder differs between runs")
	assert.Equal(t, tree.LevelOrder(), tree.LevelOrder(), "level order differs between runs")
}

func TestTraversalEmpty(t *testing.T) {
	tree := bst.New()

	assert.NotNil(t, tree.LevelOrder(), "level order is nil")
	assert.Empty(t, tree.LevelOrder(), "level order")
	assert.Empty(t, tree.Inorder(), "inorder")
	assert.Empty(t, tree.Preorder(), "preorder")
	assert.Empty(t, tree.Postorder(), "postorder")

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	v := mocks.NewMockVisitor(ctl)
	tree.WalkLevelOrder(v)
	tree.WalkInorder(v)
	tree.WalkPreorder(v)
	tree.WalkPostorder(v)
}

func TestWalkLevelOrder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := newTree(1, 2, 3, 4, 5, 6, 7)
	v := mocks.NewMockVisitor(ctl)
	expectInOrder(v, 4, 2, 6, 1, 3, 5, 7)

	tree.WalkLevelOrder(v)
}

func TestWalkInorder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := newTree(1, 2, 3, 4, 5, 6, 7)
	v := mocks.NewMockVisitor(ctl)
	expectInOrder(v, 1, 2, 3, 4, 5, 6, 7)

	tree.WalkInorder(v)
}

func TestWalkPreorder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := newTree(1, 2, 3, 4, 5, 6, 7)
	v := mocks.NewMockVisitor(ctl)
	expectInOrder(v, 4, 2, 1, 3, 6, 5, 7)

	tree.WalkPreorder(v)
}

func TestWalkPostorder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := newTree(1, 2, 3, 4, 5, 6, 7)
	v := mocks.NewMockVisitor(ctl)
	expectInOrder(v, 1, 3, 2, 5, 7, 6, 4)

	tree.WalkPostorder(v)
}

func TestVisitorFunc(t *testing.T) {
	tree := newTree(10, 20, 30, 40)

	sum := 0
	tree.WalkInorder(bst.VisitorFunc(func(p *bst.Node) {
		sum += int(p.Value().(bst.Int))
	}))

	assert.Equal(t, 100, sum, "sum of visited values")
}
