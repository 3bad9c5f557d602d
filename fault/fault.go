// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
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
	ErrBoundKeyMissing          = InvalidError("bound requires a key")
	ErrConfigurationNotATable   = ProcessError("configuration did not return a table")
	ErrDataFileNotFound         = NotFoundError("data file not found")
	ErrInvalidBound             = InvalidError("bound must be one of: unbounded, included, excluded")
	ErrInvalidCount             = InvalidError("count must be greater than zero")
	ErrInvalidDataLine          = InvalidError("data line must be: key value")
	ErrInvalidKeyType           = InvalidError("key type must be: int or string")
	ErrInvalidLoggerChannel     = InvalidError("invalid logger channel")
	ErrInvalidOrder             = InvalidError("order must be one of: pre, in, post, level")
	ErrInvalidRate              = InvalidError("rate must not be negative")
	ErrInvalidReaders           = InvalidError("readers must not be negative")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrKeyNotFound              = NotFoundError("key not found")
	ErrMissingConfigurationFile = NotFoundError("configuration file not found")
	ErrMissingKey               = InvalidError("key argument is required")
	ErrNotPlainFileName         = InvalidError("file must be a plain name")
	ErrTreeNotBalanced          = ProcessError("tree is not a valid AVL tree")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
