// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrIncomparableKey          = InvalidError("key type differs from keys already in the tree")
	ErrInvalidConfiguration     = InvalidError("configuration must return a table")
	ErrInvalidKeyType           = InvalidError("invalid key type")
	ErrInvalidLoggerChannel     = InvalidError("invalid logger channel")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrKeyNotFound              = NotFoundError("key not found")
	ErrMissingConfigurationFile = NotFoundError("missing configuration file")
	ErrNilKey                   = InvalidError("nil key")
	ErrNoKeys                   = InvalidError("no keys to insert")
	ErrTreeCheckFailed          = ProcessError("tree consistency check failed")
	ErrUnknownCommand           = InvalidError("unknown command")
)

// the error interface methods
func (e GenericError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }

// IsFault - true for any of the error classes of this package
func IsFault(e error) bool {
	switch e.(type) {
	case GenericError, ExistsError, InvalidError, NotFoundError, ProcessError:
		return true
	default:
		return false
	}
}
