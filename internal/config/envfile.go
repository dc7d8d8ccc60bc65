package config

import (
	"fmt"

	"github.com/joho/godotenv"

	averrors "github.com/avep-labs/avep/internal/errors"
)

// LoadEnvFile reads a dotenv file into a map without touching the process
// environment.
func LoadEnvFile(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, averrors.New(averrors.ErrCodeEnvFileInvalid,
			fmt.Sprintf("failed to read env file %s: %v", path, err), err).
			WithSuggestion("Check the --env-file path and KEY=value syntax")
	}
	return values, nil
}
