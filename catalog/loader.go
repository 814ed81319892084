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
	"io/fs"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/multierr"

	"github.com/tomoncle/coded/types"
)

// Loader reads every declaration file under a config's directory.
type Loader struct {
	cfg    *Config
	logger Logger
}

// NewLoader returns a loader for cfg, or DefaultConfig when cfg is nil.
// A nil logger selects the package logger.
func NewLoader(cfg *Config, logger Logger) *Loader {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.normalize()
	if logger == nil {
		logger = GetLogger()
	}
	return &Loader{cfg: cfg, logger: logger}
}

// Files lists declaration files in lexical order.
func (l *Loader) Files() ([]string, error) {
	var files []string
	err := filepath.WalkDir(l.cfg.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != l.cfg.Dir && !l.cfg.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if l.cfg.matches(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list enumeration files: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// Load defines every enumeration found by Files. All files are read; the
// returned error aggregates every failure, including two files declaring
// the same enumeration name.
func (l *Loader) Load() ([]*types.Enumeration, error) {
	start := time.Now()
	files, err := l.Files()
	if err != nil {
		return nil, err
	}
	l.logger.Debug("Loading enumeration catalog", "dir", l.cfg.Dir, "files", len(files))

	var (
		errs   error
		result = make([]*types.Enumeration, 0, len(files))
		seen   = make(map[string]string, len(files))
	)
	for _, path := range files {
		e, err := ReadFile(path)
		if err != nil {
			l.logger.Error("Enumeration file rejected", "file", path, "error", err)
			errs = multierr.Append(errs, err)
			continue
		}
		if prev, ok := seen[e.Name()]; ok {
			err := fmt.Errorf("%s: %w", path, &types.Error{
				Kind: types.DuplicateKeyErr,
				Enum: e.Name(),
				Key:  e.Name(),
				Msg:  "enumeration already declared in " + prev,
			})
			l.logger.Error("Enumeration file rejected", "file", path, "error", err)
			errs = multierr.Append(errs, err)
			continue
		}
		seen[e.Name()] = path
		l.logger.Debug("Enumeration loaded", "file", path, "enum", e.Name(), "members", e.Len())
		result = append(result, e)
	}
	if errs != nil {
		return nil, errs
	}
	l.logger.Info("Enumeration catalog loaded", "dir", l.cfg.Dir, "enums", len(result), "duration", time.Since(start).String())
	return result, nil
}

// LoadInto loads the catalog and registers every enumeration in reg.
func (l *Loader) LoadInto(reg Registry) error {
	enums, err := l.Load()
	if err != nil {
		return err
	}
	var errs error
	for _, e := range enums {
		errs = multierr.Append(errs, reg.Register(e))
	}
	return errs
}
