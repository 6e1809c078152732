// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - a balanced binary search tree rebuilt from a sorted
// set of unique values
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The tree keeps the set of values it was built from.  BuildTree
// sorts and deduplicates the values and then splits them recursively
// at the midpoint, so the two sub-trees of every node differ in size
// by at most one.  Delete and Rebalance rebuild the whole tree from
// the value set.
//
// Insert is the cheap path: it only attaches a new leaf and does not
// rebalance, so a run of inserts can leave the tree unbalanced until
// Rebalance is called.
//
// Values act as both key and data, and duplicates are silently
// ignored.
package bst

//go:generate mockgen -destination=mocks/visitor.go -package=mocks github.com/bitmark-inc/bstree/bst Visitor
