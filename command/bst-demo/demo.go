// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

type demo struct {
	out     io.Writer
	log     *logger.L
	asJSON  bool
	verbose bool // add allocator statistics
	quiet   bool // omit tree drawings
}

// build a random tree, unbalance it with inserts, then rebalance
func (d *demo) run(config *Configuration) error {
	seed := config.Seed
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	if nil != d.log {
		d.log.Infof("seed: %d  count: %d  range: [%d, %d]", seed, config.Count, config.Minimum, config.Maximum)
	}
	r := rand.New(rand.NewSource(seed))

	values := make([]int, config.Count)
	for i := range values {
		values[i] = config.Minimum + r.Intn(config.Maximum-config.Minimum+1)
	}

	tree := bst.New()
	tree.SetLog(d.log)
	tree.BuildTree(bst.Ints(values...))

	fmt.Fprintf(d.out, "%v\n", tree.IsBalanced())
	d.orders(tree)

	for _, v := range config.Inserts {
		tree.Insert(bst.Int(v))
	}
	d.draw(tree)
	fmt.Fprintf(d.out, "%v\n", tree.IsBalanced())

	tree.Rebalance()
	d.draw(tree)
	d.orders(tree)

	balanced := tree.IsBalanced()
	fmt.Fprintf(d.out, "%v\n", balanced)

	if d.verbose {
		total, free := bst.AllocatorStats()
		fmt.Fprintf(d.out, "nodes: %d  allocated: %d  pooled: %d\n", tree.Count(), total, free)
	}

	if !balanced {
		return fault.ErrTreeNotBalanced
	}
	return nil
}

func (d *demo) draw(tree *bst.Tree) {
	if d.quiet {
		return
	}
	depth := tree.PrettyPrint(d.out)
	if nil != d.log {
		d.log.Debugf("drawn levels: %d", depth)
	}
}

// the four traversals
func (d *demo) orders(tree *bst.Tree) {
	items := []struct {
		title  string
		values []bst.Item
	}{
		{"Level order", tree.LevelOrder()},
		{"Inorder", tree.Inorder()},
		{"Preorder", tree.Preorder()},
		{"Postorder", tree.Postorder()},
	}
	for _, item := range items {
		if d.asJSON {
			printJson(d.out, item.title, item.values)
		} else {
			fmt.Fprintf(d.out, "%s: %s\n", item.title, formatList(item.values))
		}
	}
}

// bracketed, comma separated list
func formatList(values []bst.Item) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = fmt.Sprintf("%v", v)
	}
	return "[" + strings.Join(s, ", ") + "]"
}
