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
	"encoding/binary"
	"encoding/json"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Member is one value of an Enumeration. Members are created by Define and
// never change afterwards; compare them with Equal or by pointer.
type Member struct {
	code  int
	label string
	name  string
	index int
	enum  *Enumeration
}

func (m *Member) Code() int { return m.Number() }

// Label returns the human-readable term of the member.
func (m *Member) Label() string { return m.Desc() }

// Index is the position of the member in declaration order, or -1 for a
// nil member.
func (m *Member) Index() int {
	if m == nil {
		return -1
	}
	return m.index
}

func (m *Member) Enumeration() *Enumeration {
	if m == nil {
		return nil
	}
	return m.enum
}

func (m *Member) IsValid() bool {
	return m != nil && m.enum != nil
}

func (m *Member) Number() int {
	if m == nil {
		return IllegalValue
	}
	return m.code
}

func (m *Member) Name() string {
	if m == nil {
		return IllegalName
	}
	return m.name
}

func (m *Member) Desc() string {
	if m == nil {
		return IllegalDesc
	}
	return m.label
}

// Int returns the code. The code is the value of a member; the label is
// auxiliary.
func (m *Member) Int() int { return m.Number() }

// String returns the code in decimal, not the label.
func (m *Member) String() string {
	if m == nil {
		return strconv.Itoa(IllegalValue)
	}
	return strconv.Itoa(m.code)
}

// GoString renders the member as "code: label".
func (m *Member) GoString() string {
	if m == nil {
		return "<nil>"
	}
	return strconv.Itoa(m.code) + ": " + m.label
}

// Hash depends on the code only, so members equal by code hash equally.
// A nil member hashes as IllegalValue.
func (m *Member) Hash() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(m.Number())))
	return xxhash.Sum64(buf[:])
}

// Contains reports whether item equals the code or the label of m.
func (m *Member) Contains(item any) bool {
	ok, err := m.Equal(item)
	return err == nil && ok
}

func (m *Member) AsMapping() Mapping {
	return Mapping{Value: m.Number(), Term: m.Desc()}
}

func (m *Member) AsDisplay() Display {
	return Display{ID: m.Number(), Name: m.Desc()}
}

// MarshalJSON encodes the mapping view.
func (m *Member) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.AsMapping())
}

// MarshalYAML encodes the mapping view.
func (m *Member) MarshalYAML() (interface{}, error) {
	return m.AsMapping(), nil
}
