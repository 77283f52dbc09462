package entities

import (
	"strings"
)

// CheckResult holds the outcome of a single pipeline check.
type CheckResult struct {
	Label   string
	Passed  bool
	Details []string // one entry per diagnostic, in discovery order
}

// PassResult creates a passing result for the given check label.
func PassResult(label string) CheckResult {
	return CheckResult{Label: label, Passed: true}
}

// FailResult creates a failing result with the given diagnostics.
func FailResult(label string, details ...string) CheckResult {
	return CheckResult{Label: label, Passed: false, Details: details}
}

// Output joins all diagnostics into the text printed after the ERROR marker.
func (r CheckResult) Output() string {
	return strings.Join(r.Details, "\n")
}
