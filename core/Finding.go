package core

import (
	"sort"
	"strings"
)

// Finding levels as reported by review-tools.
const (
	LevelError = "error"
	LevelWarn  = "warn"
	LevelInfo  = "info"
)

// Finding is a single result reported by review-tools.
type Finding struct {
	ID           string   `json:"id"`
	Parts        []string `json:"-"`
	Check        string   `json:"check,omitempty"`
	Level        string   `json:"level,omitempty"`
	ManualReview bool     `json:"manual_review"`
	Text         string   `json:"text"`
}

// NewFinding splits the colon-delimited identifier into its parts.
func NewFinding(check, level, id string, result Result) Finding {
	return Finding{
		ID:           id,
		Parts:        strings.Split(id, ":"),
		Check:        check,
		Level:        level,
		ManualReview: result.ManualReview,
		Text:         result.Text,
	}
}

// Part returns the i-th identifier part, or "" when there is none.
func (f Finding) Part(i int) string {
	if i < 0 || i >= len(f.Parts) {
		return ""
	}
	return f.Parts[i]
}

// Result is the per-identifier payload of the review-tools JSON output.
type Result struct {
	ManualReview bool   `json:"manual_review"`
	Text         string `json:"text"`
}

// Results maps finding identifiers to their payload.
type Results map[string]Result

// CheckResults groups the results of one review-tools check by level.
type CheckResults struct {
	Error Results `json:"error"`
	Warn  Results `json:"warn"`
	Info  Results `json:"info"`
}

// ReviewOutput is the decoded output of "snap-review --json", keyed by check name.
type ReviewOutput map[string]CheckResults

// Findings flattens the output. Checks and identifiers are sorted so the
// order is stable between runs.
func (o ReviewOutput) Findings() []Finding {
	checks := make([]string, 0, len(o))
	for check := range o {
		checks = append(checks, check)
	}
	sort.Strings(checks)

	var findings []Finding
	for _, check := range checks {
		results := o[check]
		findings = appendResults(findings, check, LevelError, results.Error)
		findings = appendResults(findings, check, LevelWarn, results.Warn)
		findings = appendResults(findings, check, LevelInfo, results.Info)
	}
	return findings
}

func appendResults(findings []Finding, check, level string, results Results) []Finding {
	ids := make([]string, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		findings = append(findings, NewFinding(check, level, id, results[id]))
	}
	return findings
}
