// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new key into the tree
//
// returns false if the key was already present, the tree is then
// unchanged
func (tree *Tree) Insert(key Item) bool {
	tree.checkKey(key, true)
	added := false
	tree.root, added = tree.insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert, returns the possibly updated root
func (tree *Tree) insert(key Item, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return tree.newNode(key), true
	}
	added := false
	c := p.key.Compare(key)
	switch {
	case c > 0: // p.key > key
		p.left, added = tree.insert(key, p.left)
	case c < 0: // p.key < key
		p.right, added = tree.insert(key, p.right)
	default:
		// duplicate
		return p, false
	}
	if !added {
		return p, false
	}
	p.fix()
	return rebalance(p), true
}
