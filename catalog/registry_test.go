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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomoncle/coded/types"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	weekDays, err := Parse([]byte(weekDaysYAML), "")
	require.NoError(t, err)
	status, err := Parse([]byte(statusYAML), "Status")
	require.NoError(t, err)

	require.NoError(t, reg.Register(weekDays))
	require.NoError(t, reg.Register(status))
	require.NoError(t, reg.Register(weekDays), "registering the same enumeration again is a no-op")

	other := types.MustDefine("WeekDays", types.Decl("SUNDAY", 7, "Воскресенье"))
	err = reg.Register(other)
	assert.True(t, errors.Is(err, types.ErrDuplicateKey))

	err = reg.Register(nil)
	assert.True(t, errors.Is(err, types.ErrInvalidDeclaration))

	got, err := reg.Lookup("WeekDays")
	require.NoError(t, err)
	assert.Same(t, weekDays, got)

	_, err = reg.Lookup("Months")
	assert.True(t, errors.Is(err, types.ErrNotFound))
	assert.EqualError(t, err, "Months: not found: enumeration is not registered")

	m, err := reg.Resolve("WeekDays", "3")
	require.NoError(t, err)
	assert.Equal(t, "Среда", m.Label())

	_, err = reg.Resolve("WeekDays", 8)
	assert.True(t, errors.Is(err, types.ErrNotFound))

	enums := reg.Enumerations()
	require.Len(t, enums, 2)
	assert.Equal(t, "Status", enums[0].Name())
	assert.Equal(t, "WeekDays", enums[1].Name())
}

func TestRegistryConcurrentLookups(t *testing.T) {
	reg := NewRegistry()
	weekDays, err := Parse([]byte(weekDaysYAML), "")
	require.NoError(t, err)
	require.NoError(t, reg.Register(weekDays))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(code int) {
			defer wg.Done()
			m, err := reg.Resolve("WeekDays", code%3+1)
			assert.NoError(t, err)
			assert.Equal(t, code%3+1, m.Code())
			_ = reg.Enumerations()
		}(i)
	}
	wg.Wait()
}

func TestDefaultRegistryHelpers(t *testing.T) {
	name := uniqueName(t, "Colors")
	colors := MustRegister(types.MustDefine(name,
		types.Decl("RED", 1, "red"),
		types.Decl("GREEN", 2, "green"),
	))
	assert.Same(t, DefaultRegistry(), DefaultRegistry())
	assert.NoError(t, Register(colors))

	got, err := Lookup(name)
	require.NoError(t, err)
	assert.Same(t, colors, got)

	green, err := Resolve(name, "green")
	require.NoError(t, err)
	assert.Equal(t, 2, green.Code())

	assert.Panics(t, func() {
		MustRegister(types.MustDefine(name, types.Decl("BLUE", 3, "blue")))
	})
}
