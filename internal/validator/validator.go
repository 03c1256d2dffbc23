// Package validator checks Python source against a fixed PEP 257-style rule
// taxonomy and aggregates the findings into compliance counts. Generated
// docstrings can be spliced into a merged view of the source first, so a
// generation pass can be scored before anything is written out. Validation
// never fails outward: internal errors surface as one synthetic finding.
package validator

import (
	"fmt"
	"sort"

	"github.com/docsmith-dev/docsmith/internal/extractor"
	"github.com/docsmith-dev/docsmith/internal/generator"
)

// Finding is one rule violation.
type Finding struct {
	Code       string
	Message    string
	Line       int
	Definition string // best-effort qualified name of the defining unit
	Severity   Severity
}

// Summary aggregates a validation pass.
type Summary struct {
	Compliant   int // documentable units with no error-severity finding
	Warnings    int
	Errors      int
	TotalIssues int
}

// Report is the result of one validation pass.
type Report struct {
	Findings []Finding
	Summary  Summary
}

// Validate runs the rule set against source. When results is non-nil, the
// generated docstrings are first spliced into a merged view of the source;
// the merged text is used only for validation and never persisted.
func Validate(source string, results map[string]generator.Result) (report *Report) {
	defer func() {
		if r := recover(); r != nil {
			report = internalFailure(fmt.Errorf("rule engine panic: %v", r))
		}
	}()

	merged := source
	if results != nil {
		ext, err := extractor.Extract([]byte(source))
		if err != nil {
			return internalFailure(fmt.Errorf("merging docstrings: %w", err))
		}
		merged = generator.Apply(source, ext.Units, results)
	}

	ext, err := extractor.Extract([]byte(merged))
	if err != nil {
		return internalFailure(err)
	}

	findings := check(ext)
	return buildReport(findings, len(ext.Units))
}

// buildReport categorizes findings and computes the compliance summary.
func buildReport(findings []Finding, totalUnits int) *Report {
	var errs, warns int
	for _, f := range findings {
		if f.Severity == SeverityError {
			errs++
		} else {
			warns++
		}
	}

	compliant := totalUnits - errs
	if compliant < 0 {
		compliant = 0
	}

	return &Report{
		Findings: findings,
		Summary: Summary{
			Compliant:   compliant,
			Warnings:    warns,
			Errors:      errs,
			TotalIssues: errs + warns,
		},
	}
}

// internalFailure wraps an internal validation error as a single synthetic
// error-severity finding with zero compliance.
func internalFailure(err error) *Report {
	return &Report{
		Findings: []Finding{{
			Code:     CodeInternal,
			Message:  "validation failed: " + err.Error(),
			Line:     0,
			Severity: SeverityError,
		}},
		Summary: Summary{Compliant: 0, Warnings: 0, Errors: 1, TotalIssues: 1},
	}
}

// CodeCount is a per-rule rollup of a report's findings.
type CodeCount struct {
	Code     string
	Message  string
	Count    int
	Severity Severity
}

// GroupByCode rolls a report's findings up per rule code, sorted by code.
func GroupByCode(report *Report) []CodeCount {
	byCode := make(map[string]int)
	for _, f := range report.Findings {
		byCode[f.Code]++
	}

	out := make([]CodeCount, 0, len(byCode))
	for code, count := range byCode {
		out = append(out, CodeCount{
			Code:     code,
			Message:  MessageFor(code),
			Count:    count,
			Severity: SeverityFor(code),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
