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

// Section names are case-sensitive tokens matching the bracketed headers of
// the rc format.
const (
	// SectionMaster holds the run-wide options
	SectionMaster = "MASTER"
	// SectionMessages holds the enable/disable rule toggle lists
	SectionMessages = "MESSAGES CONTROL"
	// SectionReports holds the output and message template options
	SectionReports = "REPORTS"
	// SectionTypecheck holds the inference exemption lists
	SectionTypecheck = "TYPECHECK"
	// SectionFormat holds the formatting constraint options
	SectionFormat = "FORMAT"
	// SectionBasic holds the naming convention options
	SectionBasic = "BASIC"
)

const (
	// RuleWildcard is accepted in both toggle lists and expands to every rule
	// in the catalog
	RuleWildcard = "all"

	// DefaultMsgTemplate is the message template used when the config does not
	// set one, and the fallback when rendering a user template fails
	DefaultMsgTemplate = "{path}:{line}:{column}: [{msg_id}({symbol})] {msg}"

	// DefaultMaxLineLength is the default for the max-line-length option
	DefaultMaxLineLength = 100

	// DefaultMaxModuleLines is the default for the max-module-lines option
	DefaultMaxModuleLines = 1000

	// DefaultIndentString is the default for the indent-string option
	DefaultIndentString = "    "

	// DefaultIgnoreLongLines exempts lines that consist of a single long URL
	// from the line length limit
	DefaultIgnoreLongLines = `^\s*(# )?<?https?://\S+>?$`
)

// Version of the perlint tools
const Version = "v0.3.0"
