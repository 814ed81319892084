/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies failures reported by coded enumerations.
type ErrorKind int

const (
	UnknownErr ErrorKind = iota
	InvalidDeclarationErr
	DuplicateKeyErr
	NotFoundErr
	IncomparableTypeErr
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidDeclarationErr:
		return "invalid declaration"
	case DuplicateKeyErr:
		return "duplicate key"
	case NotFoundErr:
		return "not found"
	case IncomparableTypeErr:
		return "incomparable type"
	default:
		return "unknown error"
	}
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrInvalidDeclaration = &Error{Kind: InvalidDeclarationErr}
	ErrDuplicateKey       = &Error{Kind: DuplicateKeyErr}
	ErrNotFound           = &Error{Kind: NotFoundErr}
	ErrIncomparableType   = &Error{Kind: IncomparableTypeErr}
)

// Error is returned by every operation of this package.
type Error struct {
	Kind ErrorKind
	Enum string
	Key  any
	Msg  string
}

func newError(kind ErrorKind, enum string, key any, format string, args ...any) *Error {
	return &Error{Kind: kind, Enum: enum, Key: key, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Enum != "" {
		b.WriteString(e.Enum)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	return b.String()
}

// Is reports whether target is an *Error of the same kind. A target that
// names an enumeration only matches errors raised by that enumeration.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Enum == "" || t.Enum == e.Enum
}

// IsEnumError reports whether err carries an *Error and returns its kind.
func IsEnumError(err error) (is bool, kind ErrorKind) {
	var e *Error
	if errors.As(err, &e) {
		return true, e.Kind
	}
	return false, UnknownErr
}
