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
	"regexp"
	"strings"
)

// Entry is one (section, key, raw value) triple read from a sectioned source.
// Line is the 1-based line number of the key, for error messages.
type Entry struct {
	Section string
	Key     string
	Raw     string
	Line    int
}

var sectionHeaderRegex = regexp.MustCompile(`^\[([^\[\]]+)\]$`)

// ParseSource reads a sectioned configuration source into an ordered list of
// entries. Entries start with a bracketed [Section] header; each entry is
// key=value or key:value; a line with leading whitespace continues the value
// of the previous key. Comment lines start with '#' or ';'. When the same key
// appears twice in the same section, the last occurrence wins and takes the
// position of its own declaration; this holds for list-valued keys too, a
// repeated list replaces the earlier one rather than appending to it.
func ParseSource(b []byte) ([]Entry, error) {
	var entries []Entry
	section := ""
	open := -1 // index in entries of the key accepting continuation lines

	for i, raw := range strings.Split(string(b), "\n") {
		lineno := i + 1
		line := strings.TrimRight(raw, " \t\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			m := sectionHeaderRegex.FindStringSubmatch(line)
			if m == nil {
				return nil, &MalformedSectionError{Text: trimmed, Line: lineno}
			}
			section = m[1]
			open = -1
			continue
		}

		if line[0] == ' ' || line[0] == '\t' {
			if open < 0 {
				return nil, &InvalidValueError{
					Section: section,
					Value:   trimmed,
					Reason:  "continuation line without a preceding key",
					Line:    lineno,
				}
			}
			if entries[open].Raw == "" {
				entries[open].Raw = trimmed
			} else {
				entries[open].Raw += "\n" + trimmed
			}
			continue
		}

		key, value, ok := splitKeyValue(line)
		if !ok {
			return nil, &InvalidValueError{
				Section: section,
				Value:   trimmed,
				Reason:  "expected key=value or key:value",
				Line:    lineno,
			}
		}
		if section == "" {
			return nil, &OrphanKeyError{Key: key, Line: lineno}
		}
		entries = append(entries, Entry{Section: section, Key: key, Raw: value, Line: lineno})
		open = len(entries) - 1
	}

	return dedupLastWins(entries), nil
}

// splitKeyValue splits at the first '=' or ':' separator, whichever comes
// first.
func splitKeyValue(line string) (string, string, bool) {
	sep := strings.IndexAny(line, "=:")
	if sep < 0 {
		return "", "", false
	}
	key := strings.TrimSpace(line[:sep])
	value := strings.TrimSpace(line[sep+1:])
	if key == "" {
		return "", "", false
	}
	return key, value, true
}

// dedupLastWins keeps, for every (section, key), only the last occurrence, in
// the order of that last occurrence.
func dedupLastWins(entries []Entry) []Entry {
	last := make(map[[2]string]int, len(entries))
	for i, e := range entries {
		last[[2]string{e.Section, e.Key}] = i
	}
	result := make([]Entry, 0, len(last))
	for i, e := range entries {
		if last[[2]string{e.Section, e.Key}] == i {
			result = append(result, e)
		}
	}
	return result
}
