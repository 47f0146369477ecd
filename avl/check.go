// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckHeights - check the stored heights against the real ones
func (tree *Tree) CheckHeights() bool {
	_, ok := checkHeight(tree.root)
	return ok
}

// internal: returns the real height of the sub-tree
func checkHeight(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	l, ok := checkHeight(p.left)
	if !ok {
		return 0, false
	}
	r, ok := checkHeight(p.right)
	if !ok {
		return 0, false
	}
	h := 1 + l
	if r > l {
		h = 1 + r
	}
	if p.height != h {
		fmt.Printf("fail at node: %v  height: %d  expected: %d\n", p.key, p.height, h)
		return 0, false
	}
	return h, true
}

// CheckBalance - check that no node is out of balance by more than one
func (tree *Tree) CheckBalance() bool {
	return checkBalance(tree.root)
}

func checkBalance(p *Node) bool {
	if nil == p {
		return true
	}
	if b := balanceFactor(p); b < -1 || b > 1 {
		fmt.Printf("fail at node: %v  balance: %+d\n", p.key, b)
		return false
	}
	if !checkBalance(p.left) {
		return false
	}
	return checkBalance(p.right)
}

// CheckOrder - check that the keys are in strictly ascending order
// and that the count is correct
func (tree *Tree) CheckOrder() bool {
	keys := tree.Keys()
	if len(keys) != tree.count {
		fmt.Printf("fail: nodes: %d  count: %d\n", len(keys), tree.count)
		return false
	}
	for i := 1; i < len(keys); i += 1 {
		if keys[i-1].Compare(keys[i]) >= 0 {
			fmt.Printf("fail at key: %v  previous: %v\n", keys[i], keys[i-1])
			return false
		}
	}
	return true
}

// Check - all consistency checks
func (tree *Tree) Check() bool {
	return tree.CheckHeights() && tree.CheckBalance() && tree.CheckOrder()
}
