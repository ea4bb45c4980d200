/*
 * errors.go, part of aLENS-analysis.
 *
 * Copyright 2024 The aLENS-analysis authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package alens

import (
	"errors"
	"fmt"
)

// Decorator is implemented by the errors of all packages in this library.
// The Decorate method allows to add information to the error, without changing
// its type or wrapping it around something else. The decoration slice holds the
// functions in the calling stack, in the format "FunctionName: Extra info".
type Decorator interface {
	Error() string
	Decorate(string) []string
}

// Error is the error type of the root package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// NewError returns a critical Error with the given message, decorated with caller.
func NewError(message, caller string) *Error {
	return &Error{message: message, deco: []string{caller}, critical: true}
}

// Error returns a string with an error message and the call chain.
func (err *Error) Error() string {
	if len(err.deco) == 0 {
		return err.message
	}
	return fmt.Sprintf("%s (%v)", err.message, err.deco)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

// ErrDecorate decorates err with the caller's name if err implements
// Decorator, and returns it. Other errors are wrapped with fmt.Errorf.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		return e
	}
	if d, ok := err.(Decorator); ok {
		d.Decorate(caller)
		return err
	}
	return fmt.Errorf("%s: %w", caller, err)
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrShape       = PanicMsg("aLENS: Dimension mismatch")
	ErrNilData     = PanicMsg("aLENS: Given nil data")
	ErrEmptyFrames = PanicMsg("aLENS: Trajectory has no frames")
	ErrBadStride   = PanicMsg("aLENS: Stride must be positive")
)

// ErrMissingKey is returned (wrapped) when a required RunConfig key is absent.
var ErrMissingKey = errors.New("missing run configuration key")
