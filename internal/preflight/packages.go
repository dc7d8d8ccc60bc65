package preflight

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	averrors "github.com/avep-labs/avep/internal/errors"
)

// PackageProbe reports whether a package is installed. A nil error with
// installed false means the package manager answered "not installed";
// a non-nil error means the query itself could not run.
type PackageProbe func(ctx context.Context, name string) (installed bool, err error)

// CommandPackageProbe runs command with the package name appended, discarding
// its output. Exit status 0 means installed.
func CommandPackageProbe(command []string) PackageProbe {
	return func(ctx context.Context, name string) (bool, error) {
		if len(command) == 0 {
			return false, errors.New("no package manager command configured")
		}
		args := append(append([]string{}, command[1:]...), name)
		cmd := exec.CommandContext(ctx, command[0], args...)

		err := cmd.Run()
		if err == nil {
			return true, nil
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, fmt.Errorf("%s %s: %w", strings.Join(command, " "), name, err)
	}
}

// CheckPackages probes every configured package in order. Missing packages
// are warnings since the toolkit installs them on first use.
func (c *Checker) CheckPackages(ctx context.Context) Report {
	r := newReport("packages", "Checking npm packages...")
	c.logger.Debug("check started", "check", r.Name)

	for _, name := range c.cfg.Packages.Names {
		installed, err := c.packageProbe(ctx, name)
		if installed {
			r.pass(name)
			continue
		}

		var verr *averrors.VerifyError
		if err != nil {
			verr = averrors.New(averrors.ErrCodePackageMissing,
				fmt.Sprintf("package query for %s failed: %v", name, err), err)
			c.logProbeError(r.Name, verr)
		}
		r.warn(fmt.Sprintf("%s (not installed, will be installed automatically at runtime)", name), detail(verr))
	}
	return r
}
