// Copyright the Perlint authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the resolved configuration of one analysis run. It is built once
// by Load, frozen afterwards, and shared by read-only access across all
// analysis workers; a new run loads a fresh instance.
type Config struct {
	sourceFile string

	Master    MasterOptions    `yaml:"master"`
	Messages  MessageOptions   `yaml:"messages-control"`
	Reports   ReportOptions    `yaml:"reports"`
	Typecheck TypecheckOptions `yaml:"typecheck"`
	Format    FormatOptions    `yaml:"format"`
	Basic     BasicOptions     `yaml:"basic"`

	// compiled after load
	catalog         *Catalog
	rules           *RuleSet
	ignoredClasses  *IgnoreRegistry
	ignoredModules  *IgnoreRegistry
	renderer        *Renderer
	ignoreLongLines *regexp.Regexp
}

// MasterOptions are the run-wide options of the [MASTER] section.
type MasterOptions struct {
	// Ignore lists file or directory basenames the discovery walker skips
	Ignore []string `yaml:"ignore"`

	// Persistent controls whether results are cached between runs
	Persistent bool `yaml:"persistent"`

	// Jobs is the number of analysis workers; values <= 0 mean 1
	Jobs int `yaml:"jobs"`

	// UnsafeLoadAnyExtension allows loading arbitrary analyzer extensions
	UnsafeLoadAnyExtension bool `yaml:"unsafe-load-any-extension"`

	// LogLevel controls the verbosity of the tool
	LogLevel int `yaml:"log-level"`

	// SilenceWarn suppresses warning-level log output
	SilenceWarn bool `yaml:"silence-warn"`
}

// MessageOptions are the rule toggle lists of the [MESSAGES CONTROL] section.
// Both lists keep their declaration order; entries may name rule identifiers,
// message codes, group aliases or the "all" wildcard.
type MessageOptions struct {
	Disable []string `yaml:"disable"`
	Enable  []string `yaml:"enable"`
}

// ReportOptions are the output options of the [REPORTS] section.
type ReportOptions struct {
	// OutputFormat selects the report backend
	OutputFormat string `yaml:"output-format"`

	// Reports enables the full per-category report tables
	Reports bool `yaml:"reports"`

	// MsgTemplate is the message template used for each emitted diagnostic
	MsgTemplate string `yaml:"msg-template"`

	// Score enables the summary score line at the end of a run
	Score bool `yaml:"score"`
}

// TypecheckOptions are the inference exemptions of the [TYPECHECK] section.
type TypecheckOptions struct {
	// IgnoredClasses lists class names exempted from member inference
	IgnoredClasses []string `yaml:"ignored-classes"`

	// IgnoredModules lists module names exempted from member inference
	IgnoredModules []string `yaml:"ignored-modules"`

	// IgnoreMixinMembers suppresses no-member for names ending in "mixin"
	IgnoreMixinMembers bool `yaml:"ignore-mixin-members"`
}

// FormatOptions are the formatting constraints of the [FORMAT] section.
type FormatOptions struct {
	MaxLineLength int `yaml:"max-line-length"`

	// IgnoreLongLines is a regex; matching lines bypass MaxLineLength
	IgnoreLongLines string `yaml:"ignore-long-lines"`

	IndentString     string `yaml:"indent-string"`
	MaxModuleLines   int    `yaml:"max-module-lines"`
	SingleLineIfStmt bool   `yaml:"single-line-if-stmt"`
}

// BasicOptions are the naming options of the [BASIC] section.
type BasicOptions struct {
	GoodNames         []string `yaml:"good-names"`
	BadNames          []string `yaml:"bad-names"`
	IncludeNamingHint bool     `yaml:"include-naming-hint"`
}

// newBare returns a config populated with every schema default, before the
// compiled parts are built.
func newBare() *Config {
	cfg := &Config{catalog: DefaultCatalog()}
	for _, spec := range defaultSchema.order {
		spec.assign(cfg, spec.Default)
	}
	return cfg
}

// NewDefault returns the configuration an analysis run uses when no config
// file is given: every schema default, all non-opt-in rules active.
func NewDefault() *Config {
	cfg := newBare()
	if err := cfg.finalize(); err != nil {
		// defaults come from the fixed schema table
		panic(err)
	}
	return cfg
}

// Load reads a configuration from the contents of a file. Files named *.yaml
// or *.yml are read as a yaml document with the same sections and keys;
// anything else is read as the sectioned rc format. All load errors are
// fatal: no partial configuration is ever produced.
func Load(filename string, b []byte) (*Config, error) {
	cfg := newBare()
	var err error
	switch strings.ToLower(path.Ext(filename)) {
	case ".yaml", ".yml":
		err = cfg.loadYaml(b)
	default:
		err = cfg.loadSectioned(b)
	}
	if err != nil {
		return nil, fmt.Errorf("could not load config file %s: %w", filename, err)
	}
	cfg.sourceFile = filename
	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("could not load config file %s: %w", filename, err)
	}
	return cfg, nil
}

// loadSectioned validates and applies the entries of a sectioned rc source.
func (c *Config) loadSectioned(b []byte) error {
	entries, err := ParseSource(b)
	if err != nil {
		return err
	}
	for _, e := range entries {
		spec, err := defaultSchema.Lookup(e.Section, e.Key)
		if err != nil {
			var uerr *UnknownOptionError
			if errors.As(err, &uerr) {
				uerr.Line = e.Line
			}
			return err
		}
		v, err := spec.Coerce(e.Raw)
		if err != nil {
			var verr *InvalidValueError
			if errors.As(err, &verr) {
				verr.Section = e.Section
				verr.Key = e.Key
				verr.Line = e.Line
			}
			return err
		}
		spec.assign(c, v)
	}
	return nil
}

// loadYaml applies a yaml document over the defaults. Unknown fields are
// rejected, matching the schema's unknown-option policy.
func (c *Config) loadYaml(b []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}

// finalize compiles the derived parts of the configuration and freezes it.
func (c *Config) finalize() error {
	if c.Master.LogLevel == 0 {
		c.Master.LogLevel = int(InfoLevel)
	}
	if c.Master.Jobs <= 0 {
		c.Master.Jobs = 1
	}

	if c.ignoreLongLines == nil || c.ignoreLongLines.String() != c.Format.IgnoreLongLines {
		re, err := regexp.Compile(c.Format.IgnoreLongLines)
		if err != nil {
			return &InvalidValueError{
				Section: SectionFormat,
				Key:     "ignore-long-lines",
				Value:   c.Format.IgnoreLongLines,
				Reason:  fmt.Sprintf("invalid regex: %v", err),
			}
		}
		c.ignoreLongLines = re
	}

	renderer, err := CompileTemplate(c.Reports.MsgTemplate)
	if err != nil {
		return err
	}
	c.renderer = renderer

	rules, err := ResolveRuleSet(c.catalog, c.Messages.Disable, c.Messages.Enable)
	if err != nil {
		return err
	}
	c.rules = rules

	c.ignoredClasses = NewIgnoreRegistry(c.Typecheck.IgnoredClasses)
	c.ignoredModules = NewIgnoreRegistry(c.Typecheck.IgnoredModules)
	return nil
}

// IsActive reports whether diagnostics for the rule identifier should be
// emitted. The reporter calls this once per diagnostic.
func (c *Config) IsActive(id string) bool {
	return c.rules.IsActive(id)
}

// Rules returns the compiled rule set.
func (c *Config) Rules() *RuleSet {
	return c.rules
}

// Catalog returns the rule catalog the configuration was resolved against.
func (c *Config) Catalog() *Catalog {
	return c.catalog
}

// IgnoredClasses returns the registry of class names exempted from inference.
func (c *Config) IgnoredClasses() *IgnoreRegistry {
	return c.ignoredClasses
}

// IgnoredModules returns the registry of module names exempted from inference.
func (c *Config) IgnoredModules() *IgnoreRegistry {
	return c.ignoredModules
}

// MessageRenderer returns the compiled message template.
func (c *Config) MessageRenderer() *Renderer {
	return c.renderer
}

// ExceedsMaxLineLength reports whether a line of length n violates the
// max-line-length option. Values <= 0 disable the limit.
func (c *Config) ExceedsMaxLineLength(n int) bool {
	if c.Format.MaxLineLength <= 0 {
		return false
	}
	return n > c.Format.MaxLineLength
}

// MatchLongLineException reports whether the line matches the
// ignore-long-lines pattern and so bypasses the length limit.
func (c *Config) MatchLongLineException(line string) bool {
	if c.ignoreLongLines == nil {
		return false
	}
	return c.ignoreLongLines.MatchString(line)
}

// RelPath returns filename resolved relative to the config source file.
func (c *Config) RelPath(filename string) string {
	return path.Join(path.Dir(c.sourceFile), filename)
}

// Verbose returns true if the verbosity setting is larger than Info.
func (c *Config) Verbose() bool {
	return c.Master.LogLevel >= int(DebugLevel)
}

// Dump writes the effective options as a yaml document. The output loads
// back through Load as a *.yaml source to an equal configuration.
func (c *Config) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(c)
}
