package errors

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatForUser_BasicError(t *testing.T) {
	// Given: a VerifyError
	err := New(ErrCodeConfigNotFound, "config 'avep.yaml' not found", nil)

	// When: formatting for user (no debug)
	result := FormatForUser(err, false)

	// Then: contains message and code
	assert.Contains(t, result, "config 'avep.yaml' not found")
	assert.Contains(t, result, "[ERR_101_CONFIG_NOT_FOUND]")
}

func TestFormatForUser_WithSuggestion(t *testing.T) {
	err := New(ErrCodeRuntimeNotFound, "node is not installed", nil).
		WithSuggestion("Install Node.js from https://nodejs.org")

	result := FormatForUser(err, false)

	assert.Contains(t, result, "Suggestion:")
	assert.Contains(t, result, "nodejs.org")
}

func TestFormatForUser_DebugIncludesCause(t *testing.T) {
	// Given: an error whose cause differs from its message
	err := New(ErrCodeNetworkUnavailable, "cannot reach testnet", errors.New("no such host"))

	// Then: cause only appears in debug mode
	assert.NotContains(t, FormatForUser(err, false), "no such host")
	assert.Contains(t, FormatForUser(err, true), "Cause: no such host")
}

func TestFormatForUser_StandardError(t *testing.T) {
	err := errors.New("something went wrong")

	result := FormatForUser(err, false)

	assert.Equal(t, "something went wrong", result)
}

func TestFormatForUser_NilError(t *testing.T) {
	assert.Empty(t, FormatForUser(nil, false))
}

func TestFormatJSON_BasicError(t *testing.T) {
	// Given: a VerifyError with details
	err := New(ErrCodeSkillsDirNotFound, "skills directory not found", nil).
		WithDetail("path", "/home/dev/.agent/skills").
		WithSuggestion("Run install.sh")

	// When: formatting as JSON
	data, jsonErr := FormatJSON(err)

	// Then: valid JSON with expected fields
	require.NoError(t, jsonErr)

	var result map[string]any
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, ErrCodeSkillsDirNotFound, result["code"])
	assert.Equal(t, "skills directory not found", result["message"])
	assert.Equal(t, string(CategoryIO), result["category"])
	assert.Equal(t, string(SeverityWarning), result["severity"])
	assert.Equal(t, "Run install.sh", result["suggestion"])

	details, ok := result["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/home/dev/.agent/skills", details["path"])
}

func TestFormatJSON_StandardError(t *testing.T) {
	data, jsonErr := FormatJSON(errors.New("generic error"))

	require.NoError(t, jsonErr)

	var result map[string]any
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, ErrCodeInternal, result["code"])
	assert.Equal(t, "generic error", result["message"])
}

func TestFormatJSON_NilError(t *testing.T) {
	data, err := FormatJSON(nil)

	assert.NoError(t, err)
	assert.Equal(t, "null", strings.TrimSpace(string(data)))
}

func TestFormatJSON_WithCause(t *testing.T) {
	cause := errors.New("exit status 1")
	err := New(ErrCodePackageMissing, "ethers not installed", cause)

	data, jsonErr := FormatJSON(err)

	require.NoError(t, jsonErr)

	var result map[string]any
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, "exit status 1", result["cause"])
}

func TestFormatForCLI_IncludesHintAndCode(t *testing.T) {
	// Given: a config error with a suggestion
	err := New(ErrCodeConfigInvalid, "network.url must not be empty", nil).
		WithSuggestion("Set network.url in the config file")

	// When: formatting for CLI
	result := FormatForCLI(err)

	// Then: message, hint and code are present
	assert.Contains(t, result, "Error: network.url must not be empty")
	assert.Contains(t, result, "Hint: Set network.url")
	assert.Contains(t, result, "Code: ERR_102_CONFIG_INVALID")
}

func TestFormatForCLI_StandardError(t *testing.T) {
	result := FormatForCLI(errors.New("boom"))

	assert.Contains(t, result, "Error: boom")
	assert.Contains(t, result, ErrCodeInternal)
}

func TestFormatForLog_VerifyError(t *testing.T) {
	// Given: a detailed error
	err := New(ErrCodeNetworkUnavailable, "cannot reach testnet", errors.New("refused")).
		WithDetail("url", "https://api.testnet.abs.xyz").
		WithSuggestion("check your connection")

	// When: formatting for log
	attrs := FormatForLog(err)

	// Then: structured fields are present
	assert.Equal(t, ErrCodeNetworkUnavailable, attrs["error_code"])
	assert.Equal(t, "NETWORK", attrs["category"])
	assert.Equal(t, "refused", attrs["cause"])
	assert.Equal(t, "check your connection", attrs["suggestion"])
	assert.Equal(t, "https://api.testnet.abs.xyz", attrs["detail_url"])
}

func TestFormatForLog_StandardAndNil(t *testing.T) {
	assert.Nil(t, FormatForLog(nil))
	assert.Equal(t, map[string]any{"error": "plain"}, FormatForLog(errors.New("plain")))
}
