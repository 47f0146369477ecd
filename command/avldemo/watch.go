// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"
)

// run the configuration again every time the file is saved
//
// stops when the file is removed or on SIGINT/SIGTERM
func watch(configurationFile string, w io.Writer, log *logger.L) error {

	watcher, err := newFileWatcher(configurationFile, log)
	if nil != err {
		return err
	}
	if err := watcher.Start(); nil != err {
		return err
	}
	defer watcher.Stop()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	return watchLoop(configurationFile, watcher, w, log, ch)
}

func watchLoop(configurationFile string, watcher FileWatcher, w io.Writer, log *logger.L, stop <-chan os.Signal) error {
	rerun := func() {
		c, err := getConfiguration(configurationFile)
		if nil != err {
			log.Errorf("configuration: %q  error: %s", configurationFile, err)
			return
		}
		if err := processCommand("run", c, w, log); nil != err {
			log.Errorf("run error: %s", err)
		}
	}

	rerun()
	for {
		select {
		case <-watcher.ChangeChannel():
			log.Info("configuration changed")
			rerun()
		case <-watcher.RemoveChannel():
			log.Warn("configuration removed")
			return nil
		case sig := <-stop:
			log.Infof("received signal: %v", sig)
			return nil
		}
	}
}
