// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error functions that are helpful
// for dealing with errors that are not returned to a caller, such as
// mutations that are rejected instead of failing. It also re-exports
// the standard [errors] functions so that callers only need one import.
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// Log takes the given error and logs it if it is non-nil,
// along with the file and line of the caller.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return err
}

// callerInfo returns the file and line of the function
// two levels above the caller of callerInfo.
func callerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "<unknown>"
	}
	return file + ":" + strconv.Itoa(line)
}

// New is [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is is [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join is [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}
