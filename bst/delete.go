// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Delete - remove a value and rebuild the tree, returns false if the
// value was not present
func (tree *Tree) Delete(value Item) bool {
	if nil == value {
		return false
	}
	i := tree.indexOf(value)
	if i < 0 {
		return false
	}

	values := make([]Item, 0, len(tree.values)-1)
	values = append(values, tree.values[:i]...)
	values = append(values, tree.values[i+1:]...)

	tree.tracef("delete: %v", value)
	tree.BuildTree(values)
	return true
}
