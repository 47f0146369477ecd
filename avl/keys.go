// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strconv"
	"strings"
)

// IntKey - integer key
type IntKey int

// Compare - integer ordering for the AVL interface
func (i IntKey) Compare(x interface{}) int {
	j := x.(IntKey)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// String - decimal representation, used when rendering
func (i IntKey) String() string {
	return strconv.Itoa(int(i))
}

// StringKey - string key, byte-wise ordering
type StringKey string

// Compare - string ordering for the AVL interface
func (s StringKey) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(StringKey)))
}

// String - the key itself
func (s StringKey) String() string {
	return string(s)
}
