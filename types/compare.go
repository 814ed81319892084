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
	"cmp"
	"reflect"
)

// Equal compares m with an integer (by code), a string (by label), nil
// (never equal, labels cannot be empty) or another member of the same
// enumeration (by code). Any other operand, or a nil receiver, yields an
// IncomparableType error.
func (m *Member) Equal(other any) (bool, error) {
	if m == nil {
		return false, nilMember(other)
	}
	switch o := other.(type) {
	case nil:
		return false, nil
	case *Member:
		if o == nil {
			return false, nil
		}
		if o.enum != m.enum {
			return false, m.enum.incomparable(other)
		}
		return o.code == m.code, nil
	}
	rv := reflect.ValueOf(other)
	if c, ok := compareInteger(m.code, rv); ok {
		return c == 0, nil
	}
	if rv.Kind() == reflect.String {
		return m.label == rv.String(), nil
	}
	return false, m.enum.incomparable(other)
}

// NotEqual is the negation of Equal with the same error policy.
func (m *Member) NotEqual(other any) (bool, error) {
	eq, err := m.Equal(other)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// Compare orders m against an integer or a member of the same enumeration
// by code, returning -1, 0 or +1. Other operands, strings included, yield
// an IncomparableType error.
func (m *Member) Compare(other any) (int, error) {
	if m == nil {
		return 0, nilMember(other)
	}
	if o, ok := other.(*Member); ok && o != nil {
		if o.enum != m.enum {
			return 0, m.enum.incomparable(other)
		}
		return cmp.Compare(m.code, o.code), nil
	}
	if other != nil {
		if c, ok := compareInteger(m.code, reflect.ValueOf(other)); ok {
			return c, nil
		}
	}
	return 0, m.enum.incomparable(other)
}

func (m *Member) Less(other any) (bool, error) {
	c, err := m.Compare(other)
	return err == nil && c < 0, err
}

func (m *Member) LessEqual(other any) (bool, error) {
	c, err := m.Compare(other)
	return err == nil && c <= 0, err
}

func (m *Member) Greater(other any) (bool, error) {
	c, err := m.Compare(other)
	return err == nil && c > 0, err
}

func (m *Member) GreaterEqual(other any) (bool, error) {
	c, err := m.Compare(other)
	return err == nil && c >= 0, err
}

func nilMember(other any) error {
	return newError(IncomparableTypeErr, "", other, "nil member cannot be compared")
}

// compareInteger compares code with rv when rv holds an integer kind.
func compareInteger(code int, rv reflect.Value) (int, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(int64(code), rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if code < 0 {
			return -1, true
		}
		return cmp.Compare(uint64(code), rv.Uint()), true
	}
	return 0, false
}
