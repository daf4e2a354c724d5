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
	"testing"
)

func parseOk(t *testing.T, src string) []Entry {
	t.Helper()
	entries, err := ParseSource([]byte(src))
	if err != nil {
		t.Fatalf("ParseSource failed: %v", err)
	}
	return entries
}

func TestParseSourcePreservesOrder(t *testing.T) {
	entries := parseOk(t, "[MASTER]\njobs=2\npersistent=no\n[FORMAT]\nmax-line-length: 80\n")
	want := []Entry{
		{Section: "MASTER", Key: "jobs", Raw: "2", Line: 2},
		{Section: "MASTER", Key: "persistent", Raw: "no", Line: 3},
		{Section: "FORMAT", Key: "max-line-length", Raw: "80", Line: 5},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("ParseSource returned %v, want %v", entries, want)
	}
}

func TestParseContinuationEqualsSingleLine(t *testing.T) {
	multi := parseOk(t, "[MESSAGES CONTROL]\ndisable=\n  itemA,\n  itemB\n")
	single := parseOk(t, "[MESSAGES CONTROL]\ndisable=itemA,itemB\n")
	if len(multi) != 1 || len(single) != 1 {
		t.Fatalf("expected one entry from each source")
	}
	a := splitList(multi[0].Raw)
	b := splitList(single[0].Raw)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("continuation form %v differs from single-line form %v", a, b)
	}
}

func TestParseTrailingSeparatorTolerated(t *testing.T) {
	entries := parseOk(t, "[MESSAGES CONTROL]\ndisable=\n  itemA,\n  itemB,\n")
	if got := splitList(entries[0].Raw); !reflect.DeepEqual(got, []string{"itemA", "itemB"}) {
		t.Errorf("expected [itemA itemB], got %v", got)
	}
}

func TestParseLastWriteWins(t *testing.T) {
	entries := parseOk(t, "[MASTER]\njobs=2\npersistent=no\njobs=8\n")
	want := []Entry{
		{Section: "MASTER", Key: "persistent", Raw: "no", Line: 3},
		{Section: "MASTER", Key: "jobs", Raw: "8", Line: 4},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("ParseSource returned %v, want %v", entries, want)
	}
}

func TestParseReopenedSectionListReplaces(t *testing.T) {
	entries := parseOk(t, "[MESSAGES CONTROL]\ndisable=a,b\n[FORMAT]\nmax-line-length=80\n[MESSAGES CONTROL]\ndisable=c\n")
	for _, e := range entries {
		if e.Key == "disable" && e.Raw != "c" {
			t.Errorf("expected the reopened section to replace the list, got %q", e.Raw)
		}
	}
}

func TestParseCommentsAndBlankLinesIgnored(t *testing.T) {
	entries := parseOk(t, "# header comment\n\n[MASTER]\n; another comment\njobs=2\n\n")
	if len(entries) != 1 || entries[0].Key != "jobs" {
		t.Errorf("expected a single jobs entry, got %v", entries)
	}
}

func TestParseOrphanKeyFails(t *testing.T) {
	_, err := ParseSource([]byte("persistent=yes\n[MASTER]\n"))
	var oerr *OrphanKeyError
	if !errors.As(err, &oerr) {
		t.Fatalf("expected OrphanKeyError, got %v", err)
	}
	if oerr.Key != "persistent" || oerr.Line != 1 {
		t.Errorf("expected key %q at line 1, got %q at line %d", "persistent", oerr.Key, oerr.Line)
	}
}

func TestParseMalformedSectionFails(t *testing.T) {
	_, err := ParseSource([]byte("[MASTER\njobs=2\n"))
	var merr *MalformedSectionError
	if !errors.As(err, &merr) {
		t.Fatalf("expected MalformedSectionError, got %v", err)
	}
	if merr.Line != 1 {
		t.Errorf("expected line 1, got %d", merr.Line)
	}
}

func TestParseContinuationWithoutKeyFails(t *testing.T) {
	_, err := ParseSource([]byte("[MASTER]\n  stray\n"))
	var verr *InvalidValueError
	if !errors.As(err, &verr) {
		t.Fatalf("expected InvalidValueError, got %v", err)
	}
}

func TestParseMissingSeparatorFails(t *testing.T) {
	_, err := ParseSource([]byte("[MASTER]\nnotakeyvalue\n"))
	var verr *InvalidValueError
	if !errors.As(err, &verr) {
		t.Fatalf("expected InvalidValueError, got %v", err)
	}
}

func TestParseIdempotent(t *testing.T) {
	src := "[MESSAGES CONTROL]\ndisable=\n  a,\n  b\nenable=c\n"
	first := parseOk(t, src)
	second := parseOk(t, src)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("parsing the same source twice differs: %v vs %v", first, second)
	}
}
