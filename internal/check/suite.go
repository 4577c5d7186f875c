package check

import (
	"fmt"
	"time"
)

// Step is one named validator in a Suite. Fn returns the validator's
// findings, or an error when the validator itself could not run.
type Step struct {
	Name string
	Fn   func() ([]Finding, error)
}

// Outcome is the result of a single step.
type Outcome struct {
	Name     string
	Findings []Finding
	Elapsed  time.Duration
}

// Report contains the outcome of a full suite run.
type Report struct {
	Clean    bool      // true when no step produced findings
	Outcomes []Outcome // per-step outcomes, in run order
}

// FirstDirty returns the first outcome with findings, or nil when the run
// was clean.
func (r *Report) FirstDirty() *Outcome {
	for i := range r.Outcomes {
		if len(r.Outcomes[i].Findings) > 0 {
			return &r.Outcomes[i]
		}
	}
	return nil
}

// Total returns the number of findings across all outcomes.
func (r *Report) Total() int {
	n := 0
	for _, o := range r.Outcomes {
		n += len(o.Findings)
	}
	return n
}

// Suite runs validators in sequence and collects their findings.
type Suite struct {
	Steps []Step
}

// Run executes every step in order. Findings never stop the run; a non-nil
// error means a validator failed to run at all, not that it found problems.
func (s *Suite) Run() (*Report, error) {
	report := &Report{Clean: true}

	for _, step := range s.Steps {
		start := time.Now()
		findings, err := step.Fn()
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", step.Name, err)
		}
		if len(findings) > 0 {
			report.Clean = false
		}
		report.Outcomes = append(report.Outcomes, Outcome{
			Name:     step.Name,
			Findings: findings,
			Elapsed:  time.Since(start),
		})
	}

	return report, nil
}
