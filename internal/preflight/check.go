package preflight

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sort"

	"github.com/avep-labs/avep/internal/config"
	averrors "github.com/avep-labs/avep/internal/errors"
	"github.com/avep-labs/avep/internal/output"
	"github.com/avep-labs/avep/internal/ui"
)

// Status is the outcome of a single probe line.
type Status int

const (
	// StatusPass indicates the probe succeeded.
	StatusPass Status = iota
	// StatusWarn indicates a non-fatal problem; counted as a warning.
	StatusWarn
	// StatusFail indicates a hard failure; counted as an error.
	StatusFail
	// StatusInfo is informational and counted nowhere.
	StatusInfo
)

// String returns the string representation of a Status.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	case StatusInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so reports encode statuses by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Line is one printed probe result.
type Line struct {
	Status Status `json:"status"`
	Text   string `json:"text"`
	// Detail is shown only in verbose mode.
	Detail string `json:"detail,omitempty"`
	// Hint is printed beneath the line.
	Hint string `json:"hint,omitempty"`
}

// Report is the result of one check.
type Report struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Errors   int    `json:"errors"`
	Warnings int    `json:"warnings"`
	Lines    []Line `json:"lines"`
}

func newReport(name, title string) Report {
	return Report{Name: name, Title: title, Lines: []Line{}}
}

func (r *Report) pass(text string) {
	r.Lines = append(r.Lines, Line{Status: StatusPass, Text: text})
}

func (r *Report) info(text string) {
	r.Lines = append(r.Lines, Line{Status: StatusInfo, Text: text})
}

func (r *Report) warn(text, detail string) {
	r.Warnings++
	r.Lines = append(r.Lines, Line{Status: StatusWarn, Text: text, Detail: detail})
}

func (r *Report) fail(text, detail string) {
	r.Errors++
	r.Lines = append(r.Lines, Line{Status: StatusFail, Text: text, Detail: detail})
}

// hint attaches a hint to the most recent line.
func (r *Report) hint(text string) {
	if len(r.Lines) == 0 {
		return
	}
	r.Lines[len(r.Lines)-1].Hint = text
}

// LookupFunc reads an environment variable, like os.LookupEnv.
type LookupFunc func(name string) (string, bool)

// Checker runs the verification checks.
type Checker struct {
	cfg     *config.Config
	output  io.Writer
	styles  ui.Styles
	verbose bool
	logger  *slog.Logger

	lookupEnv    LookupFunc
	homeDir      string
	homeSet      bool
	versionProbe VersionProbe
	packageProbe PackageProbe
	httpClient   *http.Client
}

// Option configures a Checker.
type Option func(*Checker)

// WithConfig sets the configuration holding the expected packages, variables and skills.
func WithConfig(cfg *config.Config) Option {
	return func(c *Checker) {
		c.cfg = cfg
	}
}

// WithOutput sets the output writer.
func WithOutput(w io.Writer) Option {
	return func(c *Checker) {
		c.output = w
	}
}

// WithStyles sets the styles used to render lines.
func WithStyles(styles ui.Styles) Option {
	return func(c *Checker) {
		c.styles = styles
	}
}

// WithVerbose enables verbose output.
func WithVerbose(verbose bool) Option {
	return func(c *Checker) {
		c.verbose = verbose
	}
}

// WithLogger sets the logger for check progress and probe errors.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// WithLookupEnv sets the environment lookup used by the env and skills checks.
func WithLookupEnv(lookup LookupFunc) Option {
	return func(c *Checker) {
		c.lookupEnv = lookup
	}
}

// WithHomeDir overrides the home directory resolved from the environment.
func WithHomeDir(dir string) Option {
	return func(c *Checker) {
		c.homeDir = dir
		c.homeSet = true
	}
}

// WithVersionProbe sets the runtime version probe.
func WithVersionProbe(probe VersionProbe) Option {
	return func(c *Checker) {
		c.versionProbe = probe
	}
}

// WithPackageProbe sets the package presence probe.
func WithPackageProbe(probe PackageProbe) Option {
	return func(c *Checker) {
		c.packageProbe = probe
	}
}

// WithHTTPClient sets the client used by the network check.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Checker) {
		c.httpClient = client
	}
}

// New creates a new Checker with the given options.
func New(opts ...Option) *Checker {
	c := &Checker{
		output:    os.Stdout,
		styles:    ui.NoColorStyles(),
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.cfg == nil {
		c.cfg = config.NewConfig()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.versionProbe == nil {
		c.versionProbe = CommandVersionProbe(c.cfg.Runtime.Command)
	}
	if c.packageProbe == nil {
		c.packageProbe = CommandPackageProbe(c.cfg.Packages.Command)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout: c.cfg.Network.Timeout,
			// Report the endpoint's own status rather than a redirect target's.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
	}
	if !c.homeSet {
		c.homeDir = HomeDir(c.lookupEnv)
	}
	return c
}

// checkFunc is one step of the verification pipeline.
type checkFunc func(ctx context.Context) Report

func (c *Checker) checks() []checkFunc {
	return []checkFunc{
		c.CheckRuntime,
		c.CheckPackages,
		c.CheckNetwork,
		c.CheckEnv,
		c.CheckSkills,
	}
}

// Run executes every check in order, printing each report as soon as it
// completes, then prints the summary.
func (c *Checker) Run(ctx context.Context) Summary {
	w := output.NewStyled(c.output, c.styles)
	w.Header("🔍 AVEP environment verification")
	w.Newline()

	var summary Summary
	for _, check := range c.checks() {
		report := check(ctx)
		c.logger.Debug("check finished",
			slog.String("check", report.Name),
			slog.Int("errors", report.Errors),
			slog.Int("warnings", report.Warnings))

		summary.Add(report)
		c.printReport(w, report)
	}

	PrintSummary(w, summary)
	return summary
}

func (c *Checker) printReport(w *output.Writer, r Report) {
	w.Title(r.Title)
	for _, line := range r.Lines {
		switch line.Status {
		case StatusPass:
			w.Pass(line.Text)
		case StatusWarn:
			w.Warn(line.Text)
		case StatusFail:
			w.Fail(line.Text)
		default:
			w.Info(line.Text)
		}
		if line.Hint != "" {
			w.Hint(line.Hint)
		}
		if c.verbose && line.Detail != "" {
			w.Hint(line.Detail)
		}
	}
	w.Newline()
}

// logProbeError records a probe failure with its structured error fields.
func (c *Checker) logProbeError(check string, err error) {
	fields := averrors.FormatForLog(err)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := []any{slog.String("check", check)}
	for _, k := range keys {
		args = append(args, slog.Any(k, fields[k]))
	}
	c.logger.Debug("probe failed", args...)
}

// detail renders a probe error for verbose output.
func detail(err *averrors.VerifyError) string {
	if err == nil {
		return ""
	}
	if err.Suggestion != "" {
		return fmt.Sprintf("%s (%s)", err.Error(), err.Suggestion)
	}
	return err.Error()
}
