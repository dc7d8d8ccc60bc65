package preflight

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avep-labs/avep/internal/config"
)

var allSkills = []string{
	"ai-keygen",
	"ai-airdrop",
	"ai-create-curve",
	"ai-buy-curve",
	"ai-sell-curve",
	"ai-transfer-curve",
}

func versionOf(v string) VersionProbe {
	return func(context.Context) (string, error) { return v, nil }
}

func versionErr(err error) VersionProbe {
	return func(context.Context) (string, error) { return "", err }
}

// missingPackages reports every package installed except the named ones.
func missingPackages(names ...string) PackageProbe {
	missing := make(map[string]bool, len(names))
	for _, n := range names {
		missing[n] = true
	}
	return func(_ context.Context, name string) (bool, error) {
		return !missing[name], nil
	}
}

func envOf(values map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := values[name]
		return v, ok
	}
}

// newSkillsHome creates a home directory with the skills directory and a
// SKILL.md marker for each installed skill.
func newSkillsHome(t *testing.T, installed ...string) string {
	t.Helper()
	home := t.TempDir()
	skillsDir := filepath.Join(home, ".agent", "skills")
	require.NoError(t, os.MkdirAll(skillsDir, 0o755))
	for _, skill := range installed {
		dir := filepath.Join(skillsDir, skill)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte("# "+skill), 0o644))
	}
	return home
}

// statusServer answers every request with code.
func statusServer(t *testing.T, code int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
		_, _ = w.Write([]byte("ignored body"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// unreachableURL returns the URL of a server that is no longer listening.
func unreachableURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestChecker builds a Checker whose probes all succeed unless overridden.
func newTestChecker(t *testing.T, url string, opts ...Option) (*Checker, *bytes.Buffer) {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Network.URL = url

	buf := &bytes.Buffer{}
	base := []Option{
		WithConfig(cfg),
		WithOutput(buf),
		WithLogger(discardLogger()),
		WithVersionProbe(versionOf("v20.1.0")),
		WithPackageProbe(missingPackages()),
		WithLookupEnv(envOf(nil)),
		WithHomeDir(""),
	}
	return New(append(base, opts...)...), buf
}

var errProbe = errors.New("exec: \"node\": executable file not found in $PATH")
