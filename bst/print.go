// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"
	"os"
)

// branch glyphs
const (
	leftBranch  = "└── "
	rightBranch = "┌── "
	continued   = "│   "
	blank       = "    "
)

// Print - display the tree on stdout, returns the number of levels
func (tree *Tree) Print() int {
	return tree.PrettyPrint(os.Stdout)
}

// PrettyPrint - draw the tree sideways, right sub-tree above and left
// sub-tree below each node, returns the number of levels drawn
func (tree *Tree) PrettyPrint(w io.Writer) int {
	return printTree(w, tree.root, "", true)
}

// internal print - the root is drawn as a left branch
func printTree(w io.Writer, p *Node, prefix string, isLeft bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := blank
		if isLeft {
			t = continued
		}
		rd = printTree(w, p.right, prefix+t, false)
	}
	if isLeft {
		fmt.Fprintf(w, "%s%s%v\n", prefix, leftBranch, p.value)
	} else {
		fmt.Fprintf(w, "%s%s%v\n", prefix, rightBranch, p.value)
	}
	if nil != p.left {
		t := continued
		if isLeft {
			t = blank
		}
		ld = printTree(w, p.left, prefix+t, true)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
