// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/bstree/fault"
)

// output a titled JSON block
func printJson(w io.Writer, title string, message interface{}) {
	b, err := json.Marshal(message)
	fault.PanicIfError("printjson marshal", err)

	if "" == title {
		fmt.Fprintf(w, "%s\n", b)
	} else {
		fmt.Fprintf(w, "%s: %s\n", title, b)
	}
}
