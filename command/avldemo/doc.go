// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avldemo - build an AVL tree from a list of keys, search it, delete
// from it and print its shape after each step
//
// without a configuration file the built-in example is run; see
// avldemo.conf.sample for the Lua configuration format
package main
