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
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const weekDaysYAML = `name: WeekDays
members:
  - {name: MONDAY, code: 1, term: Понедельник}
  - {name: TUESDAY, code: 2, term: Вторник}
  - {name: WEDNESDAY, code: "3", term: Среда}
`

const statusYAML = `members:
  - {name: ACTIVE, code: 10, term: active}
  - {name: BLOCKED, code: 20, term: blocked}
`

type logRecord struct {
	level  string
	msg    string
	fields []interface{}
}

// recordingLogger keeps every call so tests can assert on what was logged.
type recordingLogger struct {
	mu      sync.Mutex
	level   string
	records []logRecord
}

func (l *recordingLogger) SetLevel(level string) { l.level = level }

func (l *recordingLogger) Debug(msg string, fields ...interface{}) { l.add("debug", msg, fields) }
func (l *recordingLogger) Info(msg string, fields ...interface{})  { l.add("info", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields ...interface{})  { l.add("warn", msg, fields) }
func (l *recordingLogger) Error(msg string, fields ...interface{}) { l.add("error", msg, fields) }

func (l *recordingLogger) add(level, msg string, fields []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, logRecord{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, r := range l.records {
		if r.level == level {
			n++
		}
	}
	return n
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func uniqueName(t *testing.T, base string) string {
	return fmt.Sprintf("%s_%s", base, t.Name())
}
