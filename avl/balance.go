// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a sub-tree, an absent sub-tree has height zero
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute the stored height from the current children
func (p *Node) fix() {
	l := height(p.left)
	r := height(p.right)
	if l > r {
		p.height = 1 + l
	} else {
		p.height = 1 + r
	}
}

// left height minus right height
func balanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// restore the AVL condition at p
//
// p's children are already balanced and p's height is already fixed;
// returns the new root of the sub-tree
func rebalance(p *Node) *Node {
	b := balanceFactor(p)
	switch {
	case b < -1 && balanceFactor(p.right) <= 0:
		// single RR rotation
		return rotateLeft(p)
	case b > 1 && balanceFactor(p.left) >= 0:
		// single LL rotation
		return rotateRight(p)
	case b < -1:
		// double RL rotation
		p.right = rotateRight(p.right)
		return rotateLeft(p)
	case b > 1:
		// double LR rotation
		p.left = rotateLeft(p.left)
		return rotateRight(p)
	}
	return p
}

// y.left becomes the root, its right sub-tree moves under y
func rotateRight(y *Node) *Node {
	x := y.left
	y.left = x.right
	x.right = y

	// y is now below x
	y.fix()
	x.fix()
	return x
}

// x.right becomes the root, its left sub-tree moves under x
func rotateLeft(x *Node) *Node {
	y := x.right
	x.right = y.left
	y.left = x

	x.fix()
	y.fix()
	return y
}
