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
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"math"

	"gopkg.in/yaml.v3"
)

// Scan resolves a value read from a database column: an integer code, an
// integral float, or the bytes/string of a label or decimal code.
func (e *Enumeration) Scan(src any) (*Member, error) {
	switch v := src.(type) {
	case []byte:
		return e.Resolve(string(v))
	case float64:
		if v != math.Trunc(v) || math.Abs(v) >= 1<<63 {
			return nil, e.incomparable(src)
		}
		return e.Resolve(int64(v))
	default:
		return e.Resolve(src)
	}
}

// UnmarshalMember resolves a JSON document: a number, a string, or an
// object carrying "value" (mapping view) or "id" (display view).
func (e *Enumeration) UnmarshalMember(data []byte) (*Member, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return e.resolveDecoded(v)
}

func (e *Enumeration) resolveDecoded(v any) (*Member, error) {
	switch t := v.(type) {
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return nil, e.incomparable(t.String())
		}
		return e.Resolve(n)
	case float64:
		return e.Scan(t)
	case map[string]any:
		if code, ok := t["value"]; ok {
			return e.resolveDecoded(code)
		}
		if code, ok := t["id"]; ok {
			return e.resolveDecoded(code)
		}
		return nil, e.notFound(v)
	default:
		return e.Resolve(v)
	}
}

// Definition binds a Column to its enumeration. Implementations are usually
// empty structs:
//
//	type weekDays struct{}
//
//	func (weekDays) Enumeration() *types.Enumeration { return WeekDays }
type Definition interface {
	Enumeration() *Enumeration
}

// Column holds an optional member of the enumeration named by D. It is
// stored as the member code and encoded as the mapping view.
type Column[D Definition] struct {
	Member *Member
}

// NewColumn wraps m, which must belong to the enumeration of D.
func NewColumn[D Definition](m *Member) (Column[D], error) {
	var d D
	if m == nil {
		return Column[D]{}, nil
	}
	got, err := d.Enumeration().Resolve(m)
	if err != nil {
		return Column[D]{}, err
	}
	return Column[D]{Member: got}, nil
}

func (c Column[D]) Valid() bool { return c.Member != nil }

// Value implements driver.Valuer for Column.
func (c Column[D]) Value() (driver.Value, error) {
	if c.Member == nil {
		return nil, nil
	}
	return int64(c.Member.code), nil
}

// Scan implements sql.Scanner for Column.
func (c *Column[D]) Scan(src any) error {
	if src == nil {
		c.Member = nil
		return nil
	}
	var d D
	m, err := d.Enumeration().Scan(src)
	if err != nil {
		return err
	}
	c.Member = m
	return nil
}

func (c Column[D]) MarshalJSON() ([]byte, error) {
	if c.Member == nil {
		return []byte("null"), nil
	}
	return json.Marshal(c.Member.AsMapping())
}

func (c *Column[D]) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		c.Member = nil
		return nil
	}
	var d D
	m, err := d.Enumeration().UnmarshalMember(data)
	if err != nil {
		return err
	}
	c.Member = m
	return nil
}

func (c Column[D]) MarshalYAML() (interface{}, error) {
	if c.Member == nil {
		return nil, nil
	}
	return c.Member.AsMapping(), nil
}

func (c *Column[D]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		c.Member = nil
		return nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	var d D
	m, err := d.Enumeration().resolveDecoded(v)
	if err != nil {
		return err
	}
	c.Member = m
	return nil
}
