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
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

//go:embed testdata
var testfsys embed.FS

func loadFromTestDir(filename string) (string, *Config, error) {
	filename = filepath.Join("testdata", filename)
	b, err := testfsys.ReadFile(filename)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read file %v: %v", filename, err)
	}
	config, err := Load(filename, b)
	if err != nil {
		return filename, nil, err
	}
	return filename, config, nil
}

func TestNewDefault(t *testing.T) {
	c := NewDefault()
	if c.Format.MaxLineLength != DefaultMaxLineLength {
		t.Errorf("default max-line-length should be %d", DefaultMaxLineLength)
	}
	if !c.Master.Persistent {
		t.Errorf("default persistent should be true")
	}
	if c.Master.LogLevel != int(InfoLevel) {
		t.Errorf("default log-level should be info")
	}
	if c.MessageRenderer() == nil || c.MessageRenderer().String() != DefaultMsgTemplate {
		t.Errorf("default config should carry the default message template")
	}
	for _, rule := range c.Catalog().Rules() {
		if c.IsActive(rule.ID) == rule.OptIn {
			t.Errorf("rule %q should default to %v", rule.ID, !rule.OptIn)
		}
	}
}

//gocyclo:ignore
func TestLoadFullConfig(t *testing.T) {
	fileName, config, err := loadFromTestDir("full.perlintrc")
	if config == nil || err != nil {
		t.Fatalf("could not load %s: %v", fileName, err)
	}
	if config.Master.Jobs != 4 {
		t.Error("full config should set jobs to 4")
	}
	if config.Master.LogLevel != int(DebugLevel) {
		t.Error("full config should set log-level to debug")
	}
	if !config.Verbose() {
		t.Error("full config should be verbose")
	}
	if len(config.Master.Ignore) != 3 {
		t.Error("full config should ignore three directories")
	}
	if config.IsActive("missing-docstring") {
		t.Error("full config disables missing-docstring")
	}
	if config.IsActive("fixme") || config.IsActive("broad-except") {
		t.Error("full config disables fixme and broad-except")
	}
	if !config.IsActive("too-many-branches") {
		t.Error("too-many-branches is re-enabled and enable wins")
	}
	if !config.IsActive("duplicate-code") {
		t.Error("the opt-in duplicate-code rule is explicitly enabled")
	}
	if !config.IsActive("unused-variable") {
		t.Error("unused-variable is never mentioned and stays active")
	}
	if !config.IgnoredClasses().Contains("Buffer") || !config.IgnoredClasses().Contains("SocketProxy") {
		t.Error("full config exempts Buffer and SocketProxy from inference")
	}
	if config.IgnoredClasses().Contains("Other") {
		t.Error("Other is not exempted")
	}
	if !config.IgnoredModules().Contains("gi.repository") {
		t.Error("full config exempts gi.repository")
	}
	if config.Reports.Score {
		t.Error("full config sets score to no")
	}
	if config.Format.MaxLineLength != 110 {
		t.Error("full config sets max-line-length to 110")
	}
	if !config.ExceedsMaxLineLength(111) || config.ExceedsMaxLineLength(110) {
		t.Error("line length limit should trigger strictly above 110")
	}
	if !config.MatchLongLineException("# https://example.com/a/very/long/link") {
		t.Error("URL-only lines bypass the length limit")
	}
	if config.MatchLongLineException("x = compute(1, 2)") {
		t.Error("ordinary lines do not bypass the length limit")
	}
	got, err := config.MessageRenderer().Render(map[string]string{
		"path": "core.py", "line": "42", "msg_id": "W0612",
		"symbol": "unused-variable", "obj": "premiere", "msg": "unused x",
	})
	if err != nil {
		t.Fatalf("could not render with the configured template: %v", err)
	}
	if got != "core.py:42: [W0612(unused-variable), premiere] unused x" {
		t.Errorf("unexpected rendering %q", got)
	}
}

func TestLoadYamlMatchesSectionedSource(t *testing.T) {
	_, fromRc, err := loadFromTestDir("full.perlintrc")
	if err != nil {
		t.Fatalf("could not load rc form: %v", err)
	}
	_, fromYaml, err := loadFromTestDir("full.yaml")
	if err != nil {
		t.Fatalf("could not load yaml form: %v", err)
	}
	if !fromRc.Rules().Equal(fromYaml.Rules()) {
		t.Errorf("rc and yaml sources should resolve to equal rule sets")
	}
	b1, err1 := yaml.Marshal(fromRc)
	b2, err2 := yaml.Marshal(fromYaml)
	if err1 != nil || err2 != nil {
		t.Fatalf("could not marshal configs: %v %v", err1, err2)
	}
	if string(b1) != string(b2) {
		t.Errorf("effective options differ:\n%s\nis not\n%s", b1, b2)
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	_, first, err := loadFromTestDir("full.perlintrc")
	if err != nil {
		t.Fatalf("could not load: %v", err)
	}
	_, second, err := loadFromTestDir("full.perlintrc")
	if err != nil {
		t.Fatalf("could not load: %v", err)
	}
	if !first.Rules().Equal(second.Rules()) {
		t.Errorf("loading the same source twice should yield equal rule sets")
	}
}

func TestLoadUnknownOptionFails(t *testing.T) {
	_, config, err := loadFromTestDir("bad-option.perlintrc")
	if config != nil || err == nil {
		t.Fatalf("expected error and nil config for an unknown option")
	}
	var uerr *UnknownOptionError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnknownOptionError, got %v", err)
	}
	if uerr.Key != "fooo-bar" || uerr.Section != SectionFormat || uerr.Line != 2 {
		t.Errorf("expected fooo-bar in [FORMAT] at line 2, got %v", uerr)
	}
}

func TestLoadOrphanKeyFails(t *testing.T) {
	_, config, err := loadFromTestDir("orphan-key.perlintrc")
	if config != nil || err == nil {
		t.Fatalf("expected error and nil config for an orphan key")
	}
	var oerr *OrphanKeyError
	if !errors.As(err, &oerr) {
		t.Fatalf("expected OrphanKeyError, got %v", err)
	}
}

func TestLoadMalformedSectionFails(t *testing.T) {
	_, config, err := loadFromTestDir("malformed-section.perlintrc")
	if config != nil || err == nil {
		t.Fatalf("expected error and nil config for a malformed section")
	}
	var merr *MalformedSectionError
	if !errors.As(err, &merr) {
		t.Fatalf("expected MalformedSectionError, got %v", err)
	}
}

func TestLoadUnknownRuleFails(t *testing.T) {
	_, config, err := loadFromTestDir("unknown-rule.perlintrc")
	if config != nil || err == nil {
		t.Fatalf("expected error and nil config for an unknown rule")
	}
	var uerr *UnknownRuleError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnknownRuleError, got %v", err)
	}
	if uerr.Name != "not-a-rule" {
		t.Errorf("expected not-a-rule, got %q", uerr.Name)
	}
}

func TestLoadBadTemplateFails(t *testing.T) {
	src := []byte("[REPORTS]\nmsg-template={path}:{nope}\n")
	_, err := Load("perlintrc", src)
	var perr *UnknownPlaceholderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected UnknownPlaceholderError, got %v", err)
	}
}

func TestLoadBadRegexFromYamlFails(t *testing.T) {
	src := []byte("format:\n  ignore-long-lines: '('\n")
	_, err := Load("perlintrc.yaml", src)
	var verr *InvalidValueError
	if !errors.As(err, &verr) {
		t.Fatalf("expected InvalidValueError, got %v", err)
	}
	if verr.Key != "ignore-long-lines" {
		t.Errorf("expected the ignore-long-lines key, got %q", verr.Key)
	}
}

func TestLoadYamlUnknownKeyFails(t *testing.T) {
	src := []byte("format:\n  fooo-bar: 1\n")
	if _, err := Load("perlintrc.yaml", src); err == nil {
		t.Fatalf("expected an error for an unknown yaml key")
	}
}

func TestDumpRoundTrips(t *testing.T) {
	_, config, err := loadFromTestDir("full.perlintrc")
	if err != nil {
		t.Fatalf("could not load: %v", err)
	}
	var buf bytes.Buffer
	if err := config.Dump(&buf); err != nil {
		t.Fatalf("could not dump: %v", err)
	}
	reloaded, err := Load("dump.yaml", buf.Bytes())
	if err != nil {
		t.Fatalf("could not reload dumped config: %v", err)
	}
	if !config.Rules().Equal(reloaded.Rules()) {
		t.Errorf("dumped config should reload to an equal rule set")
	}
	if reloaded.Format.MaxLineLength != config.Format.MaxLineLength {
		t.Errorf("dumped config should preserve max-line-length")
	}
}

func TestLoadEmptySource(t *testing.T) {
	config, err := Load("perlintrc", nil)
	if err != nil {
		t.Fatalf("an empty source should load to the defaults: %v", err)
	}
	if config.Format.MaxLineLength != DefaultMaxLineLength {
		t.Errorf("empty source should keep the default max-line-length")
	}
}

func TestRelPath(t *testing.T) {
	_, config, err := loadFromTestDir("full.perlintrc")
	if err != nil {
		t.Fatalf("could not load: %v", err)
	}
	if got := config.RelPath("specs.yaml"); got != filepath.Join("testdata", "specs.yaml") {
		t.Errorf("RelPath returned %q", got)
	}
}
