// Copyright 2024, Northwood Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package diag defines the compiler's outbound diagnostic record and a
// caller-supplied collection sink. A first error never stops traversal;
// every directive that fails is still reported.
package diag

import (
	"fmt"

	multierror "github.com/hashicorp/go-multierror"
)

// Severity is always SeverityError today; the type exists so the record
// shape matches spec without hard-coding a single literal everywhere.
type Severity int

const (
	SeverityError Severity = iota
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Span is a best-effort source location used for human-readable reporting.
// It is not part of the directive's data model — just enough for a CLI or
// editor to point at the offending node. Line and Column are 1-based and
// derived from Start by the compiler driver, which is the only place that
// has both a byte offset and the original source bytes at hand.
type Span struct {
	Start  int
	End    int
	Line   int
	Column int
}

// Diagnostic is the outbound record of spec §6: a location, a severity, and
// a message. Messages are the literal, byte-for-byte strings spec §7
// requires so regression tests can assert on them directly.
type Diagnostic struct {
	Span     Span
	Severity Severity
	Message  string
}

// Sink collects diagnostics for one document in traversal order. The core
// never stops at the first failure — it keeps walking and reports every
// directive that failed independently.
type Sink struct {
	diagnostics []Diagnostic
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Add records a diagnostic.
func (s *Sink) Add(d Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
}

// Diagnostics returns the diagnostics recorded so far, in traversal order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// Err folds the sink into a *multierror.Error for callers that want a
// single Go error to propagate, aggregating every diagnostic rather than
// surfacing only the first. The CLI does not use it; it reads Diagnostics
// directly.
func (s *Sink) Err() error {
	if len(s.diagnostics) == 0 {
		return nil
	}

	var errs *multierror.Error
	for _, d := range s.diagnostics {
		errs = multierror.Append(errs, fmt.Errorf("%s", d.Message))
	}

	return errs.ErrorOrNil()
}
