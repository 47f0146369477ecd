// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
//
// Compare returns a negative value if the receiver sorts before the
// argument, zero if they are equal and a positive value if it sorts
// after.  The argument always has the same dynamic type as the
// receiver.
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	key    Item  // key part for ordering
	height int   // 1 for a leaf
}

// allocate a new leaf node, reuses reclaimed nodes if any are
// available
func (tree *Tree) newNode(key Item) *Node {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			panic("pool corrupt")
		}
		tree.totalNodes += 1
		return &Node{
			key:    key,
			height: 1,
		}
	}
	p := tree.pool
	tree.pool = p.right
	p.key = key
	p.height = 1
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	tree.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the tree's pool
func (tree *Tree) freeNode(node *Node) {
	node.right = tree.pool // use as free list pointer

	node.left = nil
	node.key = nil
	node.height = 0
	tree.freeNodes += 1

	tree.pool = node
}
