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
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tomoncle/coded/types"
)

// File is the YAML shape of one enumeration:
//
//	name: WeekDays
//	members:
//	  - {name: MONDAY, code: 1, term: Понедельник}
type File struct {
	Name    string              `yaml:"name"`
	Members []types.Declaration `yaml:"members"`
}

// Parse defines the enumeration declared in data. fallbackName is used
// when the document does not name the enumeration.
func Parse(data []byte, fallbackName string) (*types.Enumeration, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse enumeration: %w", err)
	}
	name := f.Name
	if name == "" {
		name = fallbackName
	}
	return types.Define(name, f.Members...)
}

// ReadFile parses the enumeration stored at path, named after the file
// when the document carries no name.
func ReadFile(path string) (*types.Enumeration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	base := filepath.Base(path)
	e, err := Parse(data, strings.TrimSuffix(base, filepath.Ext(base)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return e, nil
}

// Encode renders e in the File shape.
func Encode(e *types.Enumeration) ([]byte, error) {
	return yaml.Marshal(&File{Name: e.Name(), Members: e.Declarations()})
}

// WriteFile exports e to path, creating parent directories as needed.
func WriteFile(path string, e *types.Enumeration) error {
	data, err := Encode(e)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", e.Name(), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
