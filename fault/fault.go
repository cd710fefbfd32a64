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
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceMismatch      = InvalidError("stored balance factor differs from subtree heights")
	ErrCountMismatch        = InvalidError("node count differs from tree count")
	ErrInvalidConfiguration = InvalidError("configuration must return a table")
	ErrInvalidCount         = InvalidError("count is invalid")
	ErrInvalidLine          = InvalidError("line is not a key value pair")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidRange         = InvalidError("key range is invalid")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidVariant       = InvalidError("tree variant is invalid")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrNotFoundDatabase     = NotFoundError("database is not found")
	ErrNotFoundSourceFile   = NotFoundError("source file is not found")
	ErrOrderViolation       = InvalidError("keys are not in ascending order")
	ErrRateLimiting         = ProcessError("rate limiting")
	ErrStackUnderflow       = ProcessError("stack is empty")
	ErrUnbalanced           = InvalidError("subtree heights differ by more than one")
	ErrUnknownSource        = InvalidError("unknown data source")
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
