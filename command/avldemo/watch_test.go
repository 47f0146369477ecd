// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWatcher struct {
	change chan struct{}
	remove chan struct{}
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

func (f *fakeWatcher) Start() error                   { return nil }
func (f *fakeWatcher) Stop() error                    { return nil }
func (f *fakeWatcher) ChangeChannel() <-chan struct{} { return f.change }
func (f *fakeWatcher) RemoveChannel() <-chan struct{} { return f.remove }

// bytes.Buffer shared between the loop and the test
type syncBuffer struct {
	sync.Mutex
	b bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.Lock()
	defer s.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.Lock()
	defer s.Unlock()
	return s.b.String()
}

const watchConfiguration = `return { keys = { 2, 1, 3 } }`

func TestWatchLoopRunsOnChange(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, watchConfiguration)
	defer cleanup()

	f := newFakeWatcher()
	stop := make(chan os.Signal, 1)
	buffer := &syncBuffer{}

	done := make(chan error)
	go func() {
		done <- watchLoop(fileName, f, buffer, logger.New("test"), stop)
	}()

	f.change <- struct{}{}

	runs := func() int {
		return strings.Count(buffer.String(), "+-(2)+")
	}
	deadline := time.Now().Add(5 * time.Second)
	for runs() < 2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 2, runs(), "change did not trigger a run")

	f.remove <- struct{}{}

	select {
	case err := <-done:
		assert.Nil(t, err, "watch error")
	case <-time.After(5 * time.Second):
		t.Fatal("watch loop did not stop")
	}

	once := "     +-(3)\n+-(2)+\n     +-(1)\n"
	assert.Contains(t, buffer.String(), once, "tree not printed")
}

func TestWatchLoopStopsOnSignal(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, watchConfiguration)
	defer cleanup()

	f := newFakeWatcher()
	stop := make(chan os.Signal, 1)
	stop <- syscall.SIGINT

	buffer := &syncBuffer{}
	err := watchLoop(fileName, f, buffer, logger.New("test"), stop)
	assert.Nil(t, err, "watch error")
	assert.Equal(t, 1, strings.Count(buffer.String(), "+-(2)+"), "wrong number of runs")
}

func TestWatchLoopBadConfigurationKeepsRunning(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return {`)
	defer cleanup()

	f := newFakeWatcher()
	f.remove <- struct{}{}
	stop := make(chan os.Signal, 1)

	buffer := &syncBuffer{}
	err := watchLoop(fileName, f, buffer, logger.New("test"), stop)
	assert.Nil(t, err, "watch error")
	assert.Equal(t, "", buffer.String(), "output from bad configuration")
}

func TestFileWatcherMissingFile(t *testing.T) {
	_, err := newFileWatcher("/no/such/avldemo.conf", logger.New("test"))
	assert.NotNil(t, err, "missing file accepted")
}

func TestFileWatcherChange(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, watchConfiguration)
	defer cleanup()

	w, err := newFileWatcher(fileName, logger.New("test"))
	require.Nil(t, err, "new watcher error")
	require.Nil(t, w.Start(), "start error")
	defer w.Stop()

	err = ioutil.WriteFile(fileName, []byte(watchConfiguration+"\n"), 0600)
	require.Nil(t, err, "rewrite error")

	select {
	case <-w.ChangeChannel():
	case <-time.After(5 * time.Second):
		t.Fatal("no change event")
	}

	require.Nil(t, os.Remove(fileName), "remove error")

	select {
	case <-w.RemoveChannel():
	case <-time.After(5 * time.Second):
		t.Fatal("no remove event")
	}
}
