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

// Command enumlint loads a directory of enumeration declarations, reports
// every declaration error and prints the resulting enumerations.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/tomoncle/coded/catalog"
	"github.com/tomoncle/coded/types"
	"github.com/tomoncle/coded/utils"
)

const (
	exitOK = iota
	exitInvalid
	exitUsage
)

type options struct {
	config  string
	dir     string
	format  string
	view    string
	resolve string
}

// enumReport is one enumeration as printed in json and yaml output.
type enumReport struct {
	Name    string `json:"name" yaml:"name"`
	Members any    `json:"members" yaml:"members"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	red := color.New(color.FgRed)

	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		red.Fprintln(stderr, err)
		return exitUsage
	}

	cfg, err := catalog.LoadConfig(opts.config)
	if err != nil {
		red.Fprintln(stderr, err)
		return exitUsage
	}
	if opts.dir != "" {
		cfg.Dir = opts.dir
	}
	configureLogging(cfg, stderr)

	reg := catalog.NewRegistry()
	if err := catalog.NewLoader(cfg, nil).LoadInto(reg); err != nil {
		for _, e := range multierr.Errors(err) {
			red.Fprintln(stderr, e)
		}
		return exitInvalid
	}

	if opts.resolve != "" {
		return resolve(reg, opts.resolve, stdout, red, stderr)
	}
	if err := printEnums(stdout, reg.Enumerations(), opts); err != nil {
		red.Fprintln(stderr, err)
		return exitInvalid
	}
	return exitOK
}

// configureLogging sends logs to stderr. Empty config fields keep the
// LOG_LEVEL and CONSOLE_LOG_FORMAT defaults.
func configureLogging(cfg *catalog.Config, stderr io.Writer) {
	utils.ConfigureConsoleOutput(stderr)
	if cfg.LogFormat != "" {
		utils.ConfigureConsoleLogFormat(cfg.LogFormat)
	}
	if cfg.LogLevel != "" {
		utils.ConfigureLogLevel(cfg.LogLevel)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("enumlint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.config, "config", "", "catalog config file (yaml)")
	fs.StringVar(&opts.dir, "dir", "", "declaration directory, overrides the config")
	fs.StringVar(&opts.format, "format", "text", "output format: text, json or yaml")
	fs.StringVar(&opts.view, "view", "mapping", "member view: mapping or display")
	fs.StringVar(&opts.resolve, "resolve", "", "resolve ENUM=KEY and print the member")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	switch opts.format {
	case "text", "json", "yaml":
	default:
		return nil, fmt.Errorf("unknown format %q", opts.format)
	}
	switch opts.view {
	case "mapping", "display":
	default:
		return nil, fmt.Errorf("unknown view %q", opts.view)
	}
	return opts, nil
}

func resolve(reg catalog.Registry, query string, stdout io.Writer, red *color.Color, stderr io.Writer) int {
	name, key, ok := strings.Cut(query, "=")
	if !ok || name == "" {
		red.Fprintf(stderr, "invalid -resolve %q, expected ENUM=KEY\n", query)
		return exitUsage
	}
	m, err := reg.Resolve(name, key)
	if err != nil {
		red.Fprintln(stderr, err)
		return exitInvalid
	}
	fmt.Fprintf(stdout, "%s.%s %#v\n", name, m.Name(), m)
	return exitOK
}

func printEnums(w io.Writer, enums []*types.Enumeration, opts *options) error {
	if opts.format == "text" {
		for _, e := range enums {
			fmt.Fprintf(w, "%s (%d members)\n", e.Name(), e.Len())
			for _, m := range e.Members() {
				fmt.Fprintf(w, "  %-12s %#v\n", m.Name(), m)
			}
		}
		return nil
	}

	reports := make([]enumReport, 0, len(enums))
	for _, e := range enums {
		r := enumReport{Name: e.Name(), Members: e.Mappings()}
		if opts.view == "display" {
			r.Members = e.Display()
		}
		reports = append(reports, r)
	}
	if opts.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return err
	}
	return enc.Close()
}
