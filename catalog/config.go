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
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tomoncle/coded/utils"
)

// Config controls where declaration files are read from and how the
// catalog logs.
type Config struct {
	Dir        string   `json:"dir" yaml:"dir"`
	Extensions []string `json:"extensions" yaml:"extensions"`
	Recursive  bool     `json:"recursive" yaml:"recursive"`
	LogLevel   string   `json:"log_level" yaml:"log_level"`
	LogFormat  string   `json:"log_format" yaml:"log_format"` // text, json
}

// DefaultConfig returns a config reading *.yaml and *.yml from enums/.
// LogLevel and LogFormat stay empty so LOG_LEVEL and CONSOLE_LOG_FORMAT
// keep applying unless a config sets them.
func DefaultConfig() *Config {
	return &Config{
		Dir:        "enums",
		Extensions: []string{".yaml", ".yml"},
	}
}

// LoadConfig reads a YAML config on top of DefaultConfig and then applies
// environment overrides. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	cfg.overrideFromEnv()
	cfg.normalize()
	return cfg, nil
}

func (c *Config) overrideFromEnv() {
	c.Dir = utils.EnvDefaultString("ENUM_CATALOG_DIR", c.Dir)
	c.Recursive = utils.EnvDefaultBool("ENUM_CATALOG_RECURSIVE", c.Recursive)
	c.LogLevel = utils.EnvDefaultString("ENUM_LOG_LEVEL", c.LogLevel)
	c.LogFormat = utils.EnvDefaultString("ENUM_LOG_FORMAT", c.LogFormat)
}

func (c *Config) normalize() {
	if len(c.Extensions) == 0 {
		c.Extensions = DefaultConfig().Extensions
	}
	for i, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Extensions[i] = ext
	}
}

func (c *Config) matches(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range c.Extensions {
		if ext != "" && strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
