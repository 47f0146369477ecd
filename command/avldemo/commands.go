// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/report"
)

// command handler
//
// builds a tree from the configured keys, then performs the command
// writing its results to w
func processCommand(command string, c *Configuration, w io.Writer, log *logger.L) (err error) {

	// key type mismatches panic inside the tree
	defer func() {
		if e := fault.Recovered(recover()); nil != e {
			err = e
		}
	}()

	keys, err := c.items(c.Keys)
	if nil != err {
		return err
	}

	tree := avl.New()
	for _, key := range keys {
		if !tree.Insert(key) {
			log.Warnf("duplicate key: %v ignored", key)
		}
	}
	log.Infof("inserted: %d keys  depth: %d", tree.Count(), tree.Depth())

	r := report.New(tree, w, logger.New("report"))

	switch command {
	case "run":
		return run(tree, r, c, log)

	case "keys":
		return r.Keys(tree.Keys())

	case "check":
		if !tree.Check() {
			log.Critical("tree is inconsistent")
			return fault.ErrTreeCheckFailed
		}
		_, err := fmt.Fprintf(w, "ok: %d keys  depth: %d\n", tree.Count(), tree.Depth())
		return err

	default:
		log.Errorf("unknown command: %q", command)
		return fault.ErrUnknownCommand
	}
}

// print, search, then delete printing the tree after each deletion
func run(tree *avl.Tree, r *report.Reporter, c *Configuration, log *logger.L) error {

	if err := r.Tree(""); nil != err {
		return err
	}

	search, err := c.items(c.Search)
	if nil != err {
		return err
	}
	for _, key := range search {
		if _, err := r.Found(key); nil != err {
			return err
		}
	}

	deletions, err := c.items(c.Delete)
	if nil != err {
		return err
	}
	for _, key := range deletions {
		if !tree.Delete(key) {
			log.Warnf("delete: %v not in tree", key)
		}
		if err := r.Tree(fmt.Sprintf("\nAfter deleting %v:", key)); nil != err {
			return err
		}
	}
	return nil
}
