// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - true if the key is in the tree
func (tree *Tree) Search(key Item) bool {
	return nil != tree.Find(key)
}

// Find - find the node holding a specific key, nil if not present
func (tree *Tree) Find(key Item) *Node {
	if nil == tree.root {
		return nil
	}
	tree.checkKey(key, false)

	p := tree.root
	for nil != p {
		c := p.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}
