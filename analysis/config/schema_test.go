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
	"errors"
	"reflect"
	"regexp"
	"testing"
)

func TestLookupKnownOption(t *testing.T) {
	spec, err := DefaultSchema().Lookup(SectionFormat, "max-line-length")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if spec.Kind != IntValue || spec.Default != DefaultMaxLineLength {
		t.Errorf("expected integer option with default %d, got %v with default %v",
			DefaultMaxLineLength, spec.Kind, spec.Default)
	}
}

func TestLookupUnknownOptionFails(t *testing.T) {
	_, err := DefaultSchema().Lookup(SectionFormat, "fooo-bar")
	var uerr *UnknownOptionError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnknownOptionError, got %v", err)
	}
	if uerr.Key != "fooo-bar" || uerr.Section != SectionFormat {
		t.Errorf("expected fooo-bar in [FORMAT], got %q in [%s]", uerr.Key, uerr.Section)
	}
}

func TestLookupUnknownSectionFails(t *testing.T) {
	_, err := DefaultSchema().Lookup("NOSUCH", "disable")
	var uerr *UnknownOptionError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnknownOptionError, got %v", err)
	}
	if uerr.Section != "NOSUCH" || uerr.Key != "" {
		t.Errorf("expected section-level error for NOSUCH, got %v", uerr)
	}
}

func TestCoerceBoolTokens(t *testing.T) {
	spec := OptionSpec{Kind: BoolValue}
	for _, token := range []string{"yes", "true", "on", "1", "YES", "True"} {
		v, err := spec.Coerce(token)
		if err != nil || v != true {
			t.Errorf("Coerce(%q) = %v, %v; want true", token, v, err)
		}
	}
	for _, token := range []string{"no", "false", "off", "0", "No"} {
		v, err := spec.Coerce(token)
		if err != nil || v != false {
			t.Errorf("Coerce(%q) = %v, %v; want false", token, v, err)
		}
	}
	if _, err := spec.Coerce("maybe"); err == nil {
		t.Errorf("expected InvalidValueError for %q", "maybe")
	}
}

func TestCoerceIntInvalidFails(t *testing.T) {
	spec := OptionSpec{Kind: IntValue}
	_, err := spec.Coerce("eighty")
	var verr *InvalidValueError
	if !errors.As(err, &verr) {
		t.Fatalf("expected InvalidValueError, got %v", err)
	}
}

func TestCoerceListTrimsAndDropsEmpty(t *testing.T) {
	spec := OptionSpec{Kind: ListValue}
	v, err := spec.Coerce(" a , b ,\n c ,")
	if err != nil {
		t.Fatalf("Coerce failed: %v", err)
	}
	if !reflect.DeepEqual(v, []string{"a", "b", "c"}) {
		t.Errorf("expected [a b c], got %v", v)
	}
}

func TestCoerceRegexInvalidFails(t *testing.T) {
	spec := OptionSpec{Kind: RegexValue}
	if _, err := spec.Coerce("("); err == nil {
		t.Errorf("expected InvalidValueError for an unbalanced regex")
	}
	v, err := spec.Coerce(`^https?://`)
	if err != nil {
		t.Fatalf("Coerce failed: %v", err)
	}
	if _, ok := v.(*regexp.Regexp); !ok {
		t.Errorf("expected a compiled regex, got %T", v)
	}
}

func TestCoerceMapping(t *testing.T) {
	spec := OptionSpec{Kind: MapValue}
	v, err := spec.Coerce("a:1, b:2")
	if err != nil {
		t.Fatalf("Coerce failed: %v", err)
	}
	if !reflect.DeepEqual(v, map[string]string{"a": "1", "b": "2"}) {
		t.Errorf("unexpected mapping %v", v)
	}
	if _, err := spec.Coerce("a=1"); err == nil {
		t.Errorf("expected InvalidValueError for a mapping entry without ':'")
	}
}

func TestSchemaSections(t *testing.T) {
	sections := DefaultSchema().Sections()
	want := []string{SectionMaster, SectionMessages, SectionReports, SectionTypecheck, SectionFormat, SectionBasic}
	if !reflect.DeepEqual(sections, want) {
		t.Errorf("Sections() = %v, want %v", sections, want)
	}
}
