// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// basic defaults (directories and files are relative to the
// "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "."

	defaultLogDirectory = "log"
	defaultLogFile      = "avldemo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	keyTypeInt    = "int"
	keyTypeString = "string"
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}

	// the built-in scenario
	defaultKeys   = []interface{}{50, 25, 75, 15, 35, 60, 120, 10, 68, 90, 125, 83, 100}
	defaultSearch = []interface{}{125, 1}
	defaultDelete = []interface{}{120, 10}
)

// Configuration - everything the demo needs
//
// keys are inserted in order, then each search key is looked up and
// finally the delete keys are removed one at a time
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	KeyType       string               `gluamapper:"key_type" json:"key_type"`
	Keys          []interface{}        `gluamapper:"keys" json:"keys"`
	Search        []interface{}        `gluamapper:"search" json:"search"`
	Delete        []interface{}        `gluamapper:"delete" json:"delete"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// an empty file name selects the built-in scenario with the data
// directory in the system temporary directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		KeyType:       keyTypeInt,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    make(LoglevelMap),
		},
	}
	for tag, level := range defaultLogLevels {
		options.Logging.Levels[tag] = level
	}

	baseDirectory := filepath.Join(os.TempDir(), "avldemo")

	if "" == configurationFileName {
		options.Keys = defaultKeys
		options.Search = defaultSearch
		options.Delete = defaultDelete
	} else {
		configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		if _, err := os.Stat(configurationFileName); nil != err {
			return nil, fault.ErrMissingConfigurationFile
		}

		// absolute path to the main directory
		baseDirectory, _ = filepath.Split(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}
		if 0 == len(options.Keys) {
			return nil, fault.ErrNoKeys
		}
	}

	options.KeyType = strings.ToLower(options.KeyType)
	switch options.KeyType {
	case keyTypeInt, keyTypeString:
	default:
		return nil, fault.ErrInvalidKeyType
	}

	// ensure absolute data directory
	if !filepath.IsAbs(options.DataDirectory) {
		options.DataDirectory = filepath.Join(baseDirectory, options.DataDirectory)
	}

	// fix up the log directory
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(options.DataDirectory, options.Logging.Directory)
	}
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}

// convert configured values to tree keys of the configured type
func (c *Configuration) items(values []interface{}) ([]avl.Item, error) {
	items := make([]avl.Item, 0, len(values))
	for _, v := range values {
		item, err := makeItem(c.KeyType, v)
		if nil != err {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Lua numbers arrive as float64, the built-in values as int
func makeItem(keyType string, v interface{}) (avl.Item, error) {
	switch keyType {
	case keyTypeInt:
		switch n := v.(type) {
		case int:
			return avl.IntKey(n), nil
		case float64:
			if n != math.Trunc(n) || n > math.MaxInt32 || n < math.MinInt32 {
				return nil, fault.ErrInvalidKeyType
			}
			return avl.IntKey(int(n)), nil
		case string:
			i, err := strconv.Atoi(strings.TrimSpace(n))
			if nil != err {
				return nil, fault.ErrInvalidKeyType
			}
			return avl.IntKey(i), nil
		}
	case keyTypeString:
		switch s := v.(type) {
		case string:
			return avl.StringKey(s), nil
		case int:
			return avl.StringKey(strconv.Itoa(s)), nil
		case float64:
			return avl.StringKey(strconv.FormatFloat(s, 'f', -1, 64)), nil
		}
	}
	return nil, fault.ErrInvalidKeyType
}
