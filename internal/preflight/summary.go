package preflight

import (
	"github.com/avep-labs/avep/internal/output"
)

// Summary result values.
const (
	ResultReady             = "ready"
	ResultReadyWithWarnings = "ready_with_warnings"
	ResultFailed            = "failed"
)

// Summary accumulates the reports of a run.
type Summary struct {
	Reports  []Report
	Errors   int
	Warnings int
}

// Add folds a report into the totals.
func (s *Summary) Add(r Report) {
	s.Reports = append(s.Reports, r)
	s.Errors += r.Errors
	s.Warnings += r.Warnings
}

// ExitCode is 1 if any error occurred, otherwise 0. Warnings never fail a run.
func (s Summary) ExitCode() int {
	if s.Errors > 0 {
		return 1
	}
	return 0
}

// Status returns a summary status string for the run.
func (s Summary) Status() string {
	switch {
	case s.Errors > 0:
		return ResultFailed
	case s.Warnings > 0:
		return ResultReadyWithWarnings
	default:
		return ResultReady
	}
}

// JSONReport is the machine-readable form of a run.
type JSONReport struct {
	Status   string   `json:"status"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	ExitCode int      `json:"exit_code"`
	Checks   []Report `json:"checks"`
}

// JSON converts the summary for encoding.
func (s Summary) JSON() JSONReport {
	checks := s.Reports
	if checks == nil {
		checks = []Report{}
	}
	return JSONReport{
		Status:   s.Status(),
		Errors:   s.Errors,
		Warnings: s.Warnings,
		ExitCode: s.ExitCode(),
		Checks:   checks,
	}
}

// PrintSummary prints the totals and the follow-up hints for s.
func PrintSummary(w *output.Writer, s Summary) {
	w.Rule()
	w.Text("Verification complete")
	w.Newline()

	if s.Errors == 0 && s.Warnings == 0 {
		w.Success("All checks passed!")
		w.Newline()
		w.Text("Get started with AVEP:")
		w.Code("1. Ask the AI: 'generate an Ethereum key pair'\n" +
			"2. Ask the AI: 'claim the BaseToken airdrop'\n" +
			"3. Read the docs: README.md")
		return
	}

	if s.Errors > 0 {
		w.Errorf("found %d error(s)", s.Errors)
	}
	if s.Warnings > 0 {
		w.Warningf("found %d warning(s)", s.Warnings)
	}
	w.Newline()
	w.Text("resolve the issues above and retry")
	w.Text("see the installation guide: INSTALLATION.md")
}
