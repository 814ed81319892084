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
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// Declaration is one (name, code, label) triple of an enumeration.
// Code may be any integer kind or a string of decimal digits.
type Declaration struct {
	Name  string `json:"name" yaml:"name"`
	Code  any    `json:"code" yaml:"code"`
	Label string `json:"term" yaml:"term"`
}

// UnmarshalJSON keeps a JSON code as a json.Number so integer codes are
// not turned into float64.
func (d *Declaration) UnmarshalJSON(data []byte) error {
	type plain Declaration
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var p plain
	if err := dec.Decode(&p); err != nil {
		return err
	}
	*d = Declaration(p)
	return nil
}

// Decl is shorthand for a Declaration literal.
func Decl(name string, code any, label string) Declaration {
	return Declaration{Name: name, Code: code, Label: label}
}

// Enumeration is a closed set of coded members. It is immutable once
// Define returns and safe for concurrent use.
type Enumeration struct {
	name    string
	members []*Member
	byCode  map[int]*Member
	byText  map[string]*Member
	byLabel map[string]*Member
	byName  map[string]*Member
}

// Define builds an enumeration from its declarations in declaration order.
// Every invalid or duplicated declaration is reported; any of them fails
// the whole definition.
func Define(name string, decls ...Declaration) (*Enumeration, error) {
	if strings.TrimSpace(name) == "" {
		return nil, newError(InvalidDeclarationErr, "", nil, "enumeration name cannot be empty")
	}
	e := &Enumeration{
		name:    name,
		members: make([]*Member, 0, len(decls)),
		byCode:  make(map[int]*Member, len(decls)),
		byText:  make(map[string]*Member, len(decls)),
		byLabel: make(map[string]*Member, len(decls)),
		byName:  make(map[string]*Member, len(decls)),
	}
	var errs error
	for _, d := range decls {
		errs = multierr.Append(errs, e.declare(d))
	}
	if errs != nil {
		return nil, errs
	}
	return e, nil
}

// MustDefine is like Define but panics on error. It is meant for
// package-level variable initialization.
func MustDefine(name string, decls ...Declaration) *Enumeration {
	e, err := Define(name, decls...)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Enumeration) declare(d Declaration) error {
	if strings.TrimSpace(d.Name) == "" {
		return newError(InvalidDeclarationErr, e.name, d.Code, "member name cannot be empty")
	}
	if d.Label == "" {
		return newError(InvalidDeclarationErr, e.name, d.Name, "member %s has an empty term", d.Name)
	}
	code, err := e.normalizeCode(d)
	if err != nil {
		return err
	}
	if prev, ok := e.byName[d.Name]; ok {
		return newError(DuplicateKeyErr, e.name, d.Name, "name %s declared twice (codes %d and %d)", d.Name, prev.code, code)
	}
	if prev, ok := e.byCode[code]; ok {
		return newError(DuplicateKeyErr, e.name, code, "code %d declared by %s and %s", code, prev.name, d.Name)
	}

	m := &Member{code: code, label: d.Label, name: d.Name, index: len(e.members), enum: e}
	e.members = append(e.members, m)
	e.byName[m.name] = m
	e.byCode[m.code] = m
	e.byText[strconv.Itoa(m.code)] = m
	if _, taken := e.byLabel[m.label]; !taken {
		e.byLabel[m.label] = m
	}
	return nil
}

func (e *Enumeration) normalizeCode(d Declaration) (int, error) {
	invalid := func(format string, args ...any) error {
		return newError(InvalidDeclarationErr, e.name, d.Code, "member %s: "+format, append([]any{d.Name}, args...)...)
	}
	if d.Code == nil {
		return 0, invalid("code is missing")
	}
	rv := reflect.ValueOf(d.Code)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < math.MinInt || n > math.MaxInt {
			return 0, invalid("code %d overflows int", n)
		}
		return int(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt {
			return 0, invalid("code %d overflows int", n)
		}
		return int(n), nil
	case reflect.String:
		s := rv.String()
		if !isDigits(s) {
			return 0, invalid("code %q is not a decimal number", s)
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, invalid("code %q overflows int", s)
		}
		return n, nil
	default:
		return 0, invalid("code of type %T is neither an integer nor a digit string", d.Code)
	}
}

// Resolve returns the member matching key. Integers match codes. Strings
// match a label first, then a code written in decimal. A member of this
// enumeration resolves to itself.
func (e *Enumeration) Resolve(key any) (*Member, error) {
	switch k := key.(type) {
	case nil:
		return nil, e.notFound(key)
	case *Member:
		if k == nil {
			return nil, e.notFound(key)
		}
		if k.enum != e {
			return nil, e.incomparable(key)
		}
		return k, nil
	}
	rv := reflect.ValueOf(key)
	if n, fits, ok := integerValue(rv); ok {
		if m, found := e.byCode[n]; fits && found {
			return m, nil
		}
		return nil, e.notFound(key)
	}
	if rv.Kind() == reflect.String {
		if m, ok := e.resolveString(rv.String()); ok {
			return m, nil
		}
		return nil, e.notFound(key)
	}
	return nil, e.incomparable(key)
}

func (e *Enumeration) resolveString(s string) (*Member, bool) {
	if m, ok := e.byLabel[s]; ok {
		return m, true
	}
	if m, ok := e.byText[s]; ok {
		return m, true
	}
	if isDigits(s) {
		if n, err := strconv.Atoi(s); err == nil {
			m, ok := e.byCode[n]
			return m, ok
		}
	}
	return nil, false
}

// MustResolve is like Resolve but panics when key matches no member.
func (e *Enumeration) MustResolve(key any) *Member {
	m, err := e.Resolve(key)
	if err != nil {
		panic(err)
	}
	return m
}

// Contains reports whether any member matches key.
func (e *Enumeration) Contains(key any) bool {
	_, err := e.Resolve(key)
	return err == nil
}

// ByName returns the member declared under name.
func (e *Enumeration) ByName(name string) (*Member, error) {
	if m, ok := e.byName[name]; ok {
		return m, nil
	}
	return nil, newError(NotFoundErr, e.name, name, "no member named %s", name)
}

// MustByName is like ByName but panics when no member has that name.
func (e *Enumeration) MustByName(name string) *Member {
	m, err := e.ByName(name)
	if err != nil {
		panic(err)
	}
	return m
}

func (e *Enumeration) Name() string {
	if e == nil {
		return IllegalName
	}
	return e.name
}

func (e *Enumeration) String() string { return e.name }

func (e *Enumeration) Len() int { return len(e.members) }

// Members returns the members in declaration order.
func (e *Enumeration) Members() []*Member {
	out := make([]*Member, len(e.members))
	copy(out, e.members)
	return out
}

func (e *Enumeration) Codes() []int {
	out := make([]int, len(e.members))
	for i, m := range e.members {
		out[i] = m.code
	}
	return out
}

// Declarations returns the normalized declarations this enumeration was
// built from.
func (e *Enumeration) Declarations() []Declaration {
	out := make([]Declaration, len(e.members))
	for i, m := range e.members {
		out[i] = Declaration{Name: m.name, Code: m.code, Label: m.label}
	}
	return out
}

func (e *Enumeration) Mappings() []Mapping {
	out := make([]Mapping, len(e.members))
	for i, m := range e.members {
		out[i] = m.AsMapping()
	}
	return out
}

func (e *Enumeration) Display() []Display {
	out := make([]Display, len(e.members))
	for i, m := range e.members {
		out[i] = m.AsDisplay()
	}
	return out
}

func (e *Enumeration) notFound(key any) error {
	return newError(NotFoundErr, e.name, key, "no member matches %#v", key)
}

func (e *Enumeration) incomparable(key any) error {
	if m, ok := key.(*Member); ok {
		return newError(IncomparableTypeErr, e.Name(), key, "member %s belongs to %s", m.Name(), m.enum.Name())
	}
	return newError(IncomparableTypeErr, e.Name(), key, "cannot compare with type %T", key)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// integerValue reports whether rv holds an integer kind. fits is false when
// the value lies outside the range of int, so it cannot equal any code.
func integerValue(rv reflect.Value) (n int, fits bool, ok bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := rv.Int()
		return int(v), v >= math.MinInt && v <= math.MaxInt, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v := rv.Uint()
		return int(v), v <= math.MaxInt, true
	}
	return 0, false, false
}
