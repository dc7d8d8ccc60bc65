package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avep-labs/avep/internal/preflight"
)

var testSkills = []string{
	"ai-keygen",
	"ai-airdrop",
	"ai-create-curve",
	"ai-buy-curve",
	"ai-sell-curve",
	"ai-transfer-curve",
}

// runCLI executes the root command with args and returns stdout, stderr and the exit code.
func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	return runCLIWith(t, nil, args...)
}

// runCLIWith is runCLI with extra checker options appended.
func runCLIWith(t *testing.T, checkerOpts []preflight.Option, args ...string) (string, string, int) {
	t.Helper()
	cmd := newRootCmd(checkerOpts...)
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	code := execute(cmd)
	return stdout.String(), stderr.String(), code
}

// testEnv isolates the run from the host: probes report runtime version
// runtimeVersion with every package installed, the network endpoint answers
// status, and HOME holds the given installed skills.
type testEnv struct {
	runtimeVersion string
	status         int
	skills         []string
	noSkillsDir    bool
}

// appliedEnv is a testEnv installed for the current test.
type appliedEnv struct {
	home        string
	checkerOpts []preflight.Option
}

// run executes the CLI with the environment's stubbed probes.
func (a appliedEnv) run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	return runCLIWith(t, a.checkerOpts, args...)
}

func (e testEnv) apply(t *testing.T) appliedEnv {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(e.status)
	}))
	t.Cleanup(srv.Close)
	t.Setenv("AVEP_NETWORK_URL", srv.URL)

	home := t.TempDir()
	if !e.noSkillsDir {
		for _, skill := range e.skills {
			dir := filepath.Join(home, ".agent", "skills", skill)
			require.NoError(t, os.MkdirAll(dir, 0o755))
			require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte("# "+skill), 0o644))
		}
		require.NoError(t, os.MkdirAll(filepath.Join(home, ".agent", "skills"), 0o755))
	}
	t.Setenv("HOME", home)
	t.Setenv("USER_PRIVATE_KEY", "")
	t.Setenv("RPC_URL", "")
	t.Setenv("NO_COLOR", "1")
	for _, name := range []string{"AVEP_NETWORK_TIMEOUT", "AVEP_RUNTIME_MIN_MAJOR", "AVEP_SKILLS_DIR", "AVEP_LOG_LEVEL"} {
		t.Setenv(name, "")
	}

	version := e.runtimeVersion
	return appliedEnv{
		home: home,
		checkerOpts: []preflight.Option{
			preflight.WithVersionProbe(func(context.Context) (string, error) { return version, nil }),
			preflight.WithPackageProbe(func(context.Context, string) (bool, error) { return true, nil }),
		},
	}
}
