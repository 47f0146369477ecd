// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns false if the key was not in the tree
//
// Note: the node holding a key with two children is kept and receives
// its in-order successor's key, so a *Node obtained from Find may
// refer to a different key or be recycled after a Delete.
func (tree *Tree) Delete(key Item) bool {
	if nil == tree.root {
		return false
	}
	tree.checkKey(key, false)
	removed := false
	tree.root, removed = tree.delete(key, tree.root)
	if removed {
		tree.count -= 1
		if 0 == tree.count {
			tree.keyType = nil
		}
	}
	return removed
}

// internal delete routine, returns the possibly updated root
func (tree *Tree) delete(key Item, p *Node) (*Node, bool) {
	if nil == p { // key not in tree
		return nil, false
	}
	removed := false
	c := p.key.Compare(key)
	switch {
	case c > 0: // p.key > key
		p.left, removed = tree.delete(key, p.left)
	case c < 0: // p.key < key
		p.right, removed = tree.delete(key, p.right)
	default: // found: delete p
		if nil == p.left {
			r := p.right
			tree.freeNode(p)
			return r, true
		}
		if nil == p.right {
			l := p.left
			tree.freeNode(p)
			return l, true
		}

		// two children: take over the successor's key and remove
		// the successor from the right sub-tree
		s := p.right.first()
		p.key = s.key
		p.right, removed = tree.delete(s.key, p.right)
	}
	if !removed {
		return p, false
	}
	p.fix()
	return rebalance(p), true
}
