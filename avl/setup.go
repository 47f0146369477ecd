// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"reflect"

	"github.com/bitmark-inc/avltree/fault"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	root    *Node
	count   int
	keyType reflect.Type // dynamic type of all keys, nil while empty

	pool       *Node // linked list of reclaimed nodes
	totalNodes int   // total nodes created
	freeNodes  int   // number of nodes in the pool
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Depth - number of levels in the tree, zero if empty
func (tree *Tree) Depth() int {
	return height(tree.root)
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Height - stored height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return p.height
}

// Left - left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// make sure a key can be compared with the keys already in the tree
//
// the first key fixes the type; it is forgotten again once the tree
// becomes empty
func (tree *Tree) checkKey(key Item, adding bool) {
	if nil == key {
		panic(fault.ErrNilKey)
	}
	t := reflect.TypeOf(key)
	if nil == tree.keyType {
		if adding {
			tree.keyType = t
		}
		return
	}
	if t != tree.keyType {
		panic(fault.ErrIncomparableKey)
	}
}
