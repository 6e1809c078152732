// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"strconv"
	"strings"
)

// Int - integer item
type Int int

// Compare - Item interface
func (i Int) Compare(x interface{}) int {
	j := x.(Int)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

func (i Int) String() string {
	return strconv.Itoa(int(i))
}

// String - string item, ordered bytewise
type String string

// Compare - Item interface
func (s String) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(String)))
}

func (s String) String() string {
	return string(s)
}

// Ints - convert a list of ints to items
func Ints(values ...int) []Item {
	items := make([]Item, len(values))
	for i, v := range values {
		items[i] = Int(v)
	}
	return items
}
