package preflight

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"

	averrors "github.com/avep-labs/avep/internal/errors"
)

// VersionProbe reports the runtime's self-reported version string, e.g. "v20.1.0".
type VersionProbe func(ctx context.Context) (string, error)

// CommandVersionProbe runs command and returns its trimmed standard output.
func CommandVersionProbe(command []string) VersionProbe {
	return func(ctx context.Context) (string, error) {
		if len(command) == 0 {
			return "", errors.New("no runtime command configured")
		}
		out, err := exec.CommandContext(ctx, command[0], command[1:]...).Output()
		if err != nil {
			return "", fmt.Errorf("%s: %w", strings.Join(command, " "), err)
		}
		return strings.TrimSpace(string(out)), nil
	}
}

// ParseMajor extracts the major version from a runtime version string.
// Any non-digit prefix such as "v" is stripped first.
func ParseMajor(raw string) (int, error) {
	s := strings.TrimLeftFunc(strings.TrimSpace(raw), func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	if s == "" {
		return 0, fmt.Errorf("no version number in %q", raw)
	}

	if v, err := semver.NewVersion(s); err == nil {
		if v.Major() > math.MaxInt {
			return 0, fmt.Errorf("major version out of range in %q", raw)
		}
		return int(v.Major()), nil
	}

	// Fall back to the leading integer for strings semver rejects, e.g. "20.x".
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == -1 {
		end = len(s)
	}
	major, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, fmt.Errorf("invalid major version in %q: %w", raw, err)
	}
	return major, nil
}

// CheckRuntime verifies the runtime meets the minimum major version.
func (c *Checker) CheckRuntime(ctx context.Context) Report {
	rc := c.cfg.Runtime
	r := newReport("runtime", fmt.Sprintf("Checking %s version...", rc.Name))
	c.logger.Debug("check started", "check", r.Name)

	raw, err := c.versionProbe(ctx)
	if err != nil {
		verr := averrors.New(averrors.ErrCodeRuntimeNotFound,
			fmt.Sprintf("%s version probe failed: %v", rc.Name, err), err).
			WithSuggestion(fmt.Sprintf("install %s %d or newer", rc.Name, rc.MinMajor))
		c.logProbeError(r.Name, verr)
		r.fail(fmt.Sprintf("unable to check %s version", rc.Name), detail(verr))
		return r
	}

	major, err := ParseMajor(raw)
	if err != nil {
		verr := averrors.New(averrors.ErrCodeVersionUnparseable, err.Error(), err).
			WithDetail("version", raw)
		c.logProbeError(r.Name, verr)
		r.fail(fmt.Sprintf("unable to check %s version", rc.Name), detail(verr))
		return r
	}

	if major >= rc.MinMajor {
		r.pass(fmt.Sprintf("%s %s (OK)", rc.Name, raw))
		return r
	}

	verr := averrors.New(averrors.ErrCodeRuntimeTooOld,
		fmt.Sprintf("%s major version %d is below %d", rc.Name, major, rc.MinMajor), nil).
		WithSuggestion(fmt.Sprintf("upgrade %s to %d.0.0 or newer", rc.Name, rc.MinMajor))
	c.logProbeError(r.Name, verr)
	r.fail(fmt.Sprintf("%s %s (requires >= %d.0.0)", rc.Name, raw, rc.MinMajor), detail(verr))
	return r
}
