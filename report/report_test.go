// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package report_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/report"
	"github.com/bitmark-inc/avltree/report/mocks"
)

const (
	testingDirName = "testing"
	category       = "testing"
)

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockTree(ctl)
	m.EXPECT().Search(avl.IntKey(125)).Return(true).Times(1)
	m.EXPECT().Search(avl.IntKey(1)).Return(false).Times(1)

	buffer := &bytes.Buffer{}
	r := report.New(m, buffer, logger.New(category))

	found, err := r.Found(avl.IntKey(125))
	assert.Nil(t, err, "wrong found error")
	assert.True(t, found, "125 not found")

	found, err = r.Found(avl.IntKey(1))
	assert.Nil(t, err, "wrong not found error")
	assert.False(t, found, "1 found")

	assert.Equal(t, "125 found\n1 not found\n", buffer.String(), "wrong output")
}

func TestFoundWriteError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockTree(ctl)
	m.EXPECT().Search(gomock.Any()).Return(true).Times(1)

	r := report.New(m, failWriter{}, logger.New(category))

	found, err := r.Found(avl.IntKey(7))
	assert.NotNil(t, err, "write error not returned")
	assert.True(t, found, "search result lost")
}

func TestTree(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockTree(ctl)
	m.EXPECT().Render().Return([]string{"     +-(2)", "+-(1)+"}).Times(1)
	m.EXPECT().Count().Return(2).AnyTimes()

	buffer := &bytes.Buffer{}
	r := report.New(m, buffer, logger.New(category))

	err := r.Tree("After deleting 3:")
	assert.Nil(t, err, "wrong tree error")
	assert.Equal(t, "After deleting 3:\n     +-(2)\n+-(1)+\n", buffer.String(), "wrong output")
}

func TestTreeNoTitle(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockTree(ctl)
	m.EXPECT().Render().Return([]string{"+-(5)"}).Times(1)
	m.EXPECT().Count().Return(1).AnyTimes()

	buffer := &bytes.Buffer{}
	r := report.New(m, buffer, logger.New(category))

	err := r.Tree("")
	assert.Nil(t, err, "wrong tree error")
	assert.Equal(t, "+-(5)\n", buffer.String(), "wrong output")
}

func TestTreeWriteError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockTree(ctl)
	m.EXPECT().Render().Return([]string{"+-(5)"}).Times(1)
	m.EXPECT().Count().Return(1).AnyTimes()

	r := report.New(m, failWriter{}, logger.New(category))

	err := r.Tree("title")
	assert.NotNil(t, err, "write error not returned")
}

func TestKeysWithRealTree(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{3, 1, 2} {
		tree.Insert(avl.IntKey(k))
	}

	buffer := &bytes.Buffer{}
	r := report.New(tree, buffer, logger.New(category))

	err := r.Keys(tree.Keys())
	assert.Nil(t, err, "wrong keys error")
	assert.Equal(t, "1 2 3\n", buffer.String(), "wrong output")
}
