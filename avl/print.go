// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// the line produced for an absent sub-tree
const placeholder = " "

// Render - an ASCII graphic representation of the tree, one string
// per line
//
// the right sub-tree is drawn above a node and the left sub-tree
// below it; an empty tree is a single blank line
func (tree *Tree) Render() []string {
	return render(tree.root)
}

// Print - write the rendered tree, one line at a time
func (tree *Tree) Print(w io.Writer) error {
	for _, line := range render(tree.root) {
		if _, err := fmt.Fprintln(w, line); nil != err {
			return err
		}
	}
	return nil
}

// internal render
func render(tree *Node) []string {
	if nil == tree {
		return []string{placeholder}
	}

	key := fmt.Sprint(tree.key)
	rightTree := render(tree.right)
	leftTree := render(tree.left)

	line := "+-(" + key + ")"
	if nil != tree.left || nil != tree.right {
		line += "+"
	}
	indent := strings.Repeat(" ", 4+utf8.RuneCountInString(key))

	out := make([]string, 0, len(rightTree)+len(leftTree)+1)

	// right: connect everything below the child's own line
	beforeRoot := true
	for _, s := range rightTree {
		switch {
		case isBlank(s):
		case beforeRoot:
			out = append(out, indent+s)
			beforeRoot = '+' != s[0]
		default:
			out = append(out, indent+"|"+s[1:])
		}
	}

	out = append(out, line)

	// left: connect everything above the child's own line
	beforeRoot = true
	for _, s := range leftTree {
		switch {
		case isBlank(s):
		case !beforeRoot:
			out = append(out, indent+s)
		case '+' == s[0]:
			out = append(out, indent+s)
			beforeRoot = false
		default:
			out = append(out, indent+"|"+s[1:])
		}
	}
	return out
}

func isBlank(s string) bool {
	return "" == strings.TrimRight(s, " ")
}
