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

// Package report emits diagnostics according to a resolved configuration:
// each diagnostic is checked against the rule set and rendered through the
// configured message template.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/perlint-tools/perlint/analysis/config"
	"golang.org/x/exp/slices"
)

// Diagnostic is one analysis finding handed to the reporter by an analysis
// pass.
type Diagnostic struct {
	// Path of the analyzed file
	Path string

	// Line and Column of the finding, 1-based
	Line   int
	Column int

	// RuleID is the diagnostic identifier (rule symbol or message code)
	RuleID string

	// Obj names the enclosing object (function, class), possibly empty
	Obj string

	// Message is the finding text
	Message string
}

// Reporter writes diagnostics for one analysis run. It holds only immutable
// configuration plus emission counters, and must not be shared across
// goroutines without synchronization of the counters.
type Reporter struct {
	cfg        *config.Config
	logger     *config.LogGroup
	w          io.Writer
	fallback   *config.Renderer
	emitted    int
	suppressed int
	byCategory map[string]int
}

// NewReporter returns a reporter writing rendered diagnostics to w.
func NewReporter(cfg *config.Config, logger *config.LogGroup, w io.Writer) *Reporter {
	return &Reporter{
		cfg:        cfg,
		logger:     logger,
		w:          w,
		fallback:   config.MustCompileTemplate(config.DefaultMsgTemplate),
		byCategory: map[string]int{},
	}
}

// Report emits the diagnostic unless its rule is suppressed or unknown.
// It returns true if a line was written. If rendering with the configured
// template fails, the default template is substituted and a warning is
// logged; a render failure never aborts the analysis pass.
func (r *Reporter) Report(d Diagnostic) bool {
	rule, ok := r.cfg.Catalog().Rule(d.RuleID)
	if !ok || !r.cfg.IsActive(rule.ID) {
		r.suppressed++
		return false
	}
	fields := map[string]string{
		"path":   d.Path,
		"line":   strconv.Itoa(d.Line),
		"column": strconv.Itoa(d.Column),
		"msg_id": rule.Code,
		"symbol": rule.ID,
		"obj":    d.Obj,
		"msg":    d.Message,
	}
	line, err := r.cfg.MessageRenderer().Render(fields)
	if err != nil {
		r.logger.Warnf("could not render diagnostic with configured template: %v", err)
		line, err = r.fallback.Render(fields)
		if err != nil {
			r.logger.Errorf("could not render diagnostic with default template: %v", err)
			return false
		}
	}
	fmt.Fprintln(r.w, line)
	r.emitted++
	r.byCategory[rule.Category]++
	return true
}

// Emitted returns the number of diagnostics written so far.
func (r *Reporter) Emitted() int {
	return r.emitted
}

// Suppressed returns the number of diagnostics dropped by the rule set.
func (r *Reporter) Suppressed() int {
	return r.suppressed
}

// WriteSummary writes the per-category totals when the score option is set.
func (r *Reporter) WriteSummary() {
	if !r.cfg.Reports.Score {
		return
	}
	categories := make([]string, 0, len(r.byCategory))
	for cat := range r.byCategory {
		categories = append(categories, cat)
	}
	slices.Sort(categories)
	fmt.Fprintf(r.w, "\n%d diagnostics (%d suppressed)\n", r.emitted, r.suppressed)
	for _, cat := range categories {
		fmt.Fprintf(r.w, "  %s: %d\n", cat, r.byCategory[cat])
	}
}
