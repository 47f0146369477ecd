// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package report - writes the results of tree operations to a text
// sink and records them in the log
package report

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
)

// Tree - the parts of a tree that can be reported on
type Tree interface {
	Search(avl.Item) bool
	Render() []string
	Count() int
}

// Reporter - output channel for one tree
type Reporter struct {
	tree Tree
	w    io.Writer
	log  *logger.L
}

// New - create a reporter writing to w
func New(tree Tree, w io.Writer, log *logger.L) *Reporter {
	return &Reporter{
		tree: tree,
		w:    w,
		log:  log,
	}
}

// Found - search for a key and write whether it is present
func (r *Reporter) Found(key avl.Item) (bool, error) {
	found := r.tree.Search(key)
	message := fmt.Sprintf("%v not found", key)
	if found {
		message = fmt.Sprintf("%v found", key)
	}
	r.log.Infof("search: %s", message)

	if _, err := fmt.Fprintln(r.w, message); nil != err {
		r.log.Errorf("write error: %s", err)
		return found, err
	}
	return found, nil
}

// Tree - write an optional title followed by the rendered tree
func (r *Reporter) Tree(title string) error {
	lines := r.tree.Render()
	r.log.Debugf("render: %d lines for %d nodes", len(lines), r.tree.Count())

	if "" != title {
		if _, err := fmt.Fprintln(r.w, title); nil != err {
			r.log.Errorf("write error: %s", err)
			return err
		}
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.w, line); nil != err {
			r.log.Errorf("write error: %s", err)
			return err
		}
	}
	return nil
}

// Keys - write the keys in ascending order on a single line
func (r *Reporter) Keys(keys []avl.Item) error {
	s := make([]interface{}, len(keys))
	for i, k := range keys {
		s[i] = k
	}
	_, err := fmt.Fprintln(r.w, s...)
	if nil != err {
		r.log.Errorf("write error: %s", err)
	}
	return err
}
