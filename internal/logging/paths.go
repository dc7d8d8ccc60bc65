package logging

import (
	"os"
	"path/filepath"
)

// DefaultLogDir returns the default log directory (~/.avep/logs/).
// Falls back to the temp directory if the home directory is unavailable.
func DefaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".avep", "logs")
	}
	return filepath.Join(home, ".avep", "logs")
}

// DefaultLogPath returns the default verifier log path.
func DefaultLogPath() string {
	return filepath.Join(DefaultLogDir(), "verify.log")
}
