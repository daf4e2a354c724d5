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
	"fmt"
	"strings"
)

// TemplateFields is the closed set of placeholders a message template may use.
var TemplateFields = []string{"path", "line", "column", "msg_id", "symbol", "obj", "msg"}

var knownFields = func() map[string]bool {
	m := make(map[string]bool, len(TemplateFields))
	for _, f := range TemplateFields {
		m[f] = true
	}
	return m
}()

// templatePart is either a literal (field == "") or a placeholder reference.
type templatePart struct {
	literal string
	field   string
}

// Renderer is a compiled message template. It is immutable and safe for
// concurrent use.
type Renderer struct {
	template string
	parts    []templatePart
	fields   []string
}

// CompileTemplate compiles a template string with {name} placeholders.
// Compilation is strict: a placeholder outside TemplateFields, or an
// unterminated one, fails with an UnknownPlaceholderError.
func CompileTemplate(template string) (*Renderer, error) {
	r := &Renderer{template: template}
	seen := map[string]bool{}
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		if open > 0 {
			r.parts = append(r.parts, templatePart{literal: rest[:open]})
		}
		rest = rest[open+1:]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return nil, &UnknownPlaceholderError{Name: "{" + rest, Template: template}
		}
		name := rest[:end]
		if !knownFields[name] {
			return nil, &UnknownPlaceholderError{Name: name, Template: template}
		}
		r.parts = append(r.parts, templatePart{field: name})
		if !seen[name] {
			seen[name] = true
			r.fields = append(r.fields, name)
		}
		rest = rest[end+1:]
	}
	if rest != "" {
		r.parts = append(r.parts, templatePart{literal: rest})
	}
	return r, nil
}

// MustCompileTemplate is like CompileTemplate but panics on error. Use for
// templates fixed at compile time.
func MustCompileTemplate(template string) *Renderer {
	r, err := CompileTemplate(template)
	if err != nil {
		panic(fmt.Sprintf("config: CompileTemplate(%q): %v", template, err))
	}
	return r
}

// Render substitutes the supplied fields into the template. Every placeholder
// the template declared must be present; a missing one fails with a
// MissingFieldError.
func (r *Renderer) Render(fields map[string]string) (string, error) {
	for _, f := range r.fields {
		if _, ok := fields[f]; !ok {
			return "", &MissingFieldError{Field: f}
		}
	}
	var b strings.Builder
	for _, p := range r.parts {
		if p.field == "" {
			b.WriteString(p.literal)
		} else {
			b.WriteString(fields[p.field])
		}
	}
	return b.String(), nil
}

// Placeholders returns the placeholders the template declared, in first-use
// order.
func (r *Renderer) Placeholders() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// String returns the source text of the template.
func (r *Renderer) String() string {
	return r.template
}
