package preflight

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	averrors "github.com/avep-labs/avep/internal/errors"
)

// HomeDir resolves the home directory from HOME, then USERPROFILE.
// It returns "" when neither is set.
func HomeDir(lookup LookupFunc) string {
	for _, name := range []string{"HOME", "USERPROFILE"} {
		if v, ok := lookup(name); ok && v != "" {
			return v
		}
	}
	return ""
}

// SkillsDir returns the skills directory for home. A relative dir is joined
// to home; an absolute dir is used as is.
func SkillsDir(home, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(home, dir)
}

// CheckSkills verifies the skills directory exists and every expected
// skill carries its marker file. Nothing is read beyond existence.
func (c *Checker) CheckSkills(_ context.Context) Report {
	sc := c.cfg.Skills
	r := newReport("skills", "Checking skill installation...")
	c.logger.Debug("check started", "check", r.Name)

	dir := SkillsDir(c.homeDir, sc.Dir)
	// A relative dir under an unknown home would resolve against the working directory.
	if !filepath.IsAbs(dir) || !exists(dir) {
		verr := averrors.New(averrors.ErrCodeSkillsDirNotFound,
			fmt.Sprintf("skills directory %s does not exist", dir), nil).
			WithDetail("home", c.homeDir)
		c.logProbeError(r.Name, verr)
		r.warn(fmt.Sprintf("skills directory not found: %s", dir), detail(verr))
		r.hint("run 'install.ps1' or 'install.sh' to install")
		return r
	}

	r.pass(fmt.Sprintf("skills directory found: %s", dir))
	for _, skill := range sc.Names {
		marker := filepath.Join(dir, skill, sc.Marker)
		if exists(marker) {
			r.pass(skill)
			continue
		}
		verr := averrors.New(averrors.ErrCodeSkillMarkerNotFound,
			fmt.Sprintf("%s not found", marker), nil).
			WithDetail("skill", skill).
			WithSuggestion("reinstall the skill with 'install.sh' or 'install.ps1'")
		c.logProbeError(r.Name, verr)
		r.warn(fmt.Sprintf("%s (not installed or missing %s)", skill, sc.Marker), detail(verr))
	}
	return r
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
