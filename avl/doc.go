// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree that keeps an explicit height in
// every node
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Insert and delete are recursive; each call takes ownership of a
// sub-tree and returns the (possibly rotated) root of that sub-tree
// which the caller stores back into its own link.  Nodes have no
// parent pointers, so a rotation only rewires two child links.
//
// Keys are unique: inserting a key that is already present and
// deleting a key that is absent are both no-ops.  All keys in a tree
// must have the same dynamic type; mixing types is a programming
// error and panics with fault.ErrIncomparableKey.
//
// Render produces a rotated ASCII picture of the tree: right sub-tree
// above, left sub-tree below, the root on the left margin.
package avl
