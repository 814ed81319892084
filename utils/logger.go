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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

type PathFormat int

type Logger = logrus.Logger

const (
	PathFormatTruncatedRelative PathFormat = iota
	PathFormatFilenameOnly
	PathFormatShortRelative
)

const defaultTimestampFormat = "2006-01-02 15:04:05.000"

var (
	defaultConsoleLevel = ParseLogLevel(EnvDefaultString("LOG_LEVEL", "info"))
	consoleLogFormat    = normalizeFormat(EnvDefaultString("CONSOLE_LOG_FORMAT", "text"))
	consoleOutputMu     sync.RWMutex
	consoleOutput       io.Writer = os.Stdout
	loggerRegistryMu    sync.RWMutex
	loggerRegistry      = map[string]*logrus.Logger{}
)

func normalizeFormat(format string) string {
	if strings.ToLower(strings.TrimSpace(format)) == "json" {
		return "json"
	}
	return "text"
}

// ConfigureConsoleLogFormat selects "json" or "text" for loggers created
// afterwards.
func ConfigureConsoleLogFormat(format string) {
	consoleLogFormat = normalizeFormat(format)
}

// ConfigureConsoleOutput redirects every logger's console output.
func ConfigureConsoleOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	consoleOutputMu.Lock()
	consoleOutput = w
	consoleOutputMu.Unlock()
}

func currentOutput() io.Writer {
	consoleOutputMu.RLock()
	defer consoleOutputMu.RUnlock()
	return consoleOutput
}

func ParseLogLevel(s string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info", "":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}

func RegisterLogger(name string, l *logrus.Logger) {
	loggerRegistryMu.Lock()
	defer loggerRegistryMu.Unlock()
	loggerRegistry[name] = l
}

// SetLoggerLevel changes the level of the logger registered as name and
// reports whether it exists.
func SetLoggerLevel(name string, lvlStr string) bool {
	loggerRegistryMu.RLock()
	lg, ok := loggerRegistry[name]
	loggerRegistryMu.RUnlock()
	if !ok {
		return false
	}
	lg.SetLevel(ParseLogLevel(lvlStr))
	return true
}

// ConfigureLogLevel sets the default level and applies it to every
// registered logger.
func ConfigureLogLevel(levelStr string) {
	lvl := ParseLogLevel(levelStr)
	defaultConsoleLevel = lvl
	loggerRegistryMu.RLock()
	for _, lg := range loggerRegistry {
		lg.SetLevel(lvl)
	}
	loggerRegistryMu.RUnlock()
}

type consoleWriterHook struct {
	formatter logrus.Formatter
}

func (h *consoleWriterHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *consoleWriterHook) Fire(e *logrus.Entry) error {
	b, err := h.formatter.Format(e)
	if err != nil {
		return err
	}
	_, err = currentOutput().Write(b)
	return err
}

// NewLogger returns a logger named name, registered so its level can be
// changed later through SetLoggerLevel.
func NewLogger(name string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(defaultConsoleLevel)
	l.SetReportCaller(true)
	var consoleFmt logrus.Formatter
	if consoleLogFormat == "json" {
		consoleFmt = &JSONLogFormatter{LoggerName: name, PathFmt: PathFormatShortRelative}
	} else {
		consoleFmt = &Log4jColorFormatter{
			LoggerName:  name,
			PathFmt:     PathFormatTruncatedRelative,
			ColorCaller: true,
			NameWidth:   10,
			CallerWidth: 25,
		}
	}
	l.SetFormatter(consoleFmt)
	l.AddHook(&consoleWriterHook{formatter: consoleFmt})
	RegisterLogger(name, l)
	return l
}

type Log4jColorFormatter struct {
	LoggerName      string
	TimestampFormat string
	PathFmt         PathFormat
	ColorCaller     bool
	NameWidth       int
	CallerWidth     int
}

func (f *Log4jColorFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	ts := entry.Time.Format(tsFormat(f.TimestampFormat))
	lvl := colorLevel(padLeft(strings.ToUpper(entry.Level.String()), 7), entry.Level)
	pid := colorMagenta(fmt.Sprintf("%-6d", os.Getpid()))
	name := colorCyan(padLeft(limitRunes(f.LoggerName, f.NameWidth), f.NameWidth))

	callerInfo := ""
	if entry.Caller != nil {
		fileLine := callerLine(f.PathFmt, entry.Caller.File, entry.Caller.Line, f.CallerWidth)
		if f.CallerWidth > 0 {
			fileLine = padLeft(fileLine, f.CallerWidth)
		}
		callerInfo = " " + fileLine
		if f.ColorCaller {
			callerInfo = colorFaint(callerInfo)
		}
	}

	msg := entry.Message
	if len(entry.Data) > 0 {
		msg += " " + formatData(entry.Data)
	}
	line := fmt.Sprintf("%s %s %s - %s%s %s %s\n", ts, lvl, pid, name, callerInfo, colorFaint(":"), msg)
	return []byte(line), nil
}

type JSONLogFormatter struct {
	LoggerName      string
	TimestampFormat string
	PathFmt         PathFormat
}

func (f *JSONLogFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	type jsonLogRecord struct {
		Time    string                 `json:"time"`
		Level   string                 `json:"level"`
		Model   string                 `json:"model"`
		Caller  string                 `json:"caller,omitempty"`
		Message string                 `json:"message"`
		Fields  map[string]interface{} `json:"fields,omitempty"`
	}

	rec := jsonLogRecord{
		Time:    entry.Time.Format(tsFormat(f.TimestampFormat)),
		Level:   strings.ToLower(entry.Level.String()),
		Model:   f.LoggerName,
		Message: entry.Message,
	}
	if entry.Caller != nil {
		rec.Caller = callerLine(f.PathFmt, entry.Caller.File, entry.Caller.Line, 0)
	}
	if len(entry.Data) > 0 {
		rec.Fields = make(map[string]interface{}, len(entry.Data))
		for k, v := range entry.Data {
			if err, ok := v.(error); ok {
				v = err.Error()
			}
			rec.Fields[k] = v
		}
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func tsFormat(format string) string {
	if format != "" {
		return format
	}
	return defaultTimestampFormat
}

func callerLine(pf PathFormat, file string, line int, width int) string {
	lineStr := strconv.Itoa(line)
	switch pf {
	case PathFormatFilenameOnly:
		return filepath.Base(file) + ":" + lineStr
	case PathFormatShortRelative:
		return shortRelative(file) + ":" + lineStr
	default:
		rel := shortRelative(file)
		if width > 0 {
			rel = truncateLeft(rel, width-1-len(lineStr))
		}
		return rel + ":" + lineStr
	}
}

func formatData(data logrus.Fields) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, data[k])
	}
	return strings.Join(parts, " ")
}

func padLeft(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(r)) + s
}

func limitRunes(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	return string(r[:n])
}

func truncateLeft(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}

func shortRelative(p string) string {
	parts := strings.Split(filepath.ToSlash(p), "/")
	if len(parts) >= 2 {
		return parts[len(parts)-2] + "/" + parts[len(parts)-1]
	}
	return parts[0]
}

var (
	colorMagenta = color.New(color.FgMagenta).SprintFunc()
	colorCyan    = color.New(color.FgCyan).SprintFunc()
	colorFaint   = color.New(color.Faint).SprintFunc()

	levelColors = map[logrus.Level]*color.Color{
		logrus.PanicLevel: color.New(color.FgRed),
		logrus.FatalLevel: color.New(color.FgRed),
		logrus.ErrorLevel: color.New(color.FgRed),
		logrus.WarnLevel:  color.New(color.FgYellow),
		logrus.InfoLevel:  color.New(color.FgGreen),
		logrus.DebugLevel: color.New(color.FgBlue),
		logrus.TraceLevel: color.New(color.FgMagenta),
	}
)

func colorLevel(s string, level logrus.Level) string {
	if c, ok := levelColors[level]; ok {
		return c.Sprint(s)
	}
	return s
}

func EnvDefaultString(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return def
		}
		return b
	}
	return def
}
