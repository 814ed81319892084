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

package catalog

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomoncle/coded/types"
)

func TestParse(t *testing.T) {
	e, err := Parse([]byte(weekDaysYAML), "ignored")
	require.NoError(t, err)
	assert.Equal(t, "WeekDays", e.Name())
	assert.Equal(t, []int{1, 2, 3}, e.Codes())

	wednesday, err := e.Resolve("Среда")
	require.NoError(t, err)
	assert.Equal(t, 3, wednesday.Code())
	assert.Equal(t, "WEDNESDAY", wednesday.Name())
}

func TestParseFallbackName(t *testing.T) {
	e, err := Parse([]byte(statusYAML), "status")
	require.NoError(t, err)
	assert.Equal(t, "status", e.Name())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("members: {"), "broken")
	assert.ErrorContains(t, err, "failed to parse enumeration")

	_, err = Parse([]byte(`
name: Broken
members:
  - {name: A, code: 1, term: a}
  - {name: B, code: 1, term: b}
  - {name: C, code: 1.5, term: c}
`), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrDuplicateKey))
	assert.True(t, errors.Is(err, types.ErrInvalidDeclaration))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "status.yml", statusYAML)
	e, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "status", e.Name())
	assert.Equal(t, 2, e.Len())

	bad := writeFile(t, dir, "bad.yaml", "members:\n  - {name: X, code: 1, term: \"\"}\n")
	_, err = ReadFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
	ok, kind := types.IsEnumError(err)
	assert.True(t, ok)
	assert.Equal(t, types.InvalidDeclarationErr, kind)

	_, err = ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestWriteFileRoundTrip(t *testing.T) {
	src, err := Parse([]byte(weekDaysYAML), "")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "weekdays.yaml")
	require.NoError(t, WriteFile(path, src))

	back, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, src.Name(), back.Name())
	assert.Equal(t, src.Declarations(), back.Declarations())
	assert.Equal(t, src.Mappings(), back.Mappings())
}
