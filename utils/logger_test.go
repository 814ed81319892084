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

package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"trace":   logrus.TraceLevel,
		" DEBUG ": logrus.DebugLevel,
		"":        logrus.InfoLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"bogus":   logrus.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), in)
	}
}

func TestNewLoggerWritesToConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	ConfigureConsoleOutput(&buf)
	defer ConfigureConsoleOutput(nil)

	l := NewLogger("TEST_TEXT")
	l.WithField("enum", "WeekDays").Info("loaded")
	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "TEST_TEXT")
	assert.Contains(t, out, "loaded enum=WeekDays")

	buf.Reset()
	require.True(t, SetLoggerLevel("TEST_TEXT", "error"))
	l.Info("hidden")
	assert.Empty(t, buf.String())

	assert.False(t, SetLoggerLevel("NO_SUCH_LOGGER", "debug"))
}

func TestJSONLogFormatter(t *testing.T) {
	f := &JSONLogFormatter{LoggerName: "CATALOG", PathFmt: PathFormatFilenameOnly}
	entry := logrus.NewEntry(logrus.New()).WithFields(logrus.Fields{
		"file":  "weekdays.yaml",
		"error": errors.New("boom"),
	})
	entry.Message = "failed"
	entry.Level = logrus.WarnLevel

	b, err := f.Format(entry)
	require.NoError(t, err)

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &rec))
	assert.Equal(t, "warning", rec["level"])
	assert.Equal(t, "CATALOG", rec["model"])
	assert.Equal(t, "failed", rec["message"])
	assert.Equal(t, map[string]interface{}{"file": "weekdays.yaml", "error": "boom"}, rec["fields"])
}

func TestCallerLine(t *testing.T) {
	assert.Equal(t, "loader.go:12", callerLine(PathFormatFilenameOnly, "/src/catalog/loader.go", 12, 0))
	assert.Equal(t, "catalog/loader.go:12", callerLine(PathFormatShortRelative, "/src/catalog/loader.go", 12, 0))
	assert.Equal(t, "/loader.go:12", callerLine(PathFormatTruncatedRelative, "/src/catalog/loader.go", 12, 13))
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("CODED_TEST_BOOL", "true")
	t.Setenv("CODED_TEST_BAD_BOOL", "maybe")
	t.Setenv("CODED_TEST_STRING", "json")

	assert.True(t, EnvDefaultBool("CODED_TEST_BOOL", false))
	assert.True(t, EnvDefaultBool("CODED_TEST_BAD_BOOL", true))
	assert.False(t, EnvDefaultBool("CODED_TEST_UNSET", false))
	assert.Equal(t, "json", EnvDefaultString("CODED_TEST_STRING", "text"))
	assert.Equal(t, "text", EnvDefaultString("CODED_TEST_UNSET", "text"))
}

func TestColorLevel(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	assert.Equal(t, "\x1b[32mINFO\x1b[0m", colorLevel("INFO", logrus.InfoLevel))
	assert.Equal(t, "\x1b[31mERROR\x1b[0m", colorLevel("ERROR", logrus.ErrorLevel))
	assert.Equal(t, "\x1b[36mCATALOG\x1b[0m", colorCyan("CATALOG"))
	assert.Equal(t, "plain", colorLevel("plain", logrus.Level(42)))

	color.NoColor = true
	assert.Equal(t, "WARNING", colorLevel("WARNING", logrus.WarnLevel))
}
