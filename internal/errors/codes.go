// Package errors provides structured error handling for avep-verify.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: IO errors (skills directory, marker files)
//   - 3XX: Network errors
//   - 4XX: Validation errors
//   - 5XX: Internal errors
//   - 6XX: Toolchain environment errors (runtime, packages, variables)
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates file and directory errors.
	CategoryIO Category = "IO"
	// CategoryNetwork indicates network-related errors.
	CategoryNetwork Category = "NETWORK"
	// CategoryValidation indicates input validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
	// CategoryEnvironment indicates a problem with the local toolchain.
	CategoryEnvironment Category = "ENVIRONMENT"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityError counts toward the run's error total.
	SeverityError Severity = "ERROR"
	// SeverityWarning counts toward the run's warning total only.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "ERR_102_CONFIG_INVALID"
	ErrCodeEnvFileInvalid = "ERR_103_ENV_FILE_INVALID"

	// IO errors (200-299)
	ErrCodeSkillsDirNotFound   = "ERR_201_SKILLS_DIR_NOT_FOUND"
	ErrCodeSkillMarkerNotFound = "ERR_202_SKILL_MARKER_NOT_FOUND"
	ErrCodeFilePermission      = "ERR_203_FILE_PERMISSION"

	// Network errors (300-399)
	ErrCodeNetworkTimeout     = "ERR_301_NETWORK_TIMEOUT"
	ErrCodeNetworkUnavailable = "ERR_302_NETWORK_UNAVAILABLE"
	ErrCodeUnexpectedStatus   = "ERR_303_UNEXPECTED_STATUS"

	// Validation errors (400-499)
	ErrCodeInvalidInput       = "ERR_401_INVALID_INPUT"
	ErrCodeVersionUnparseable = "ERR_402_VERSION_UNPARSEABLE"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"

	// Environment errors (600-699)
	ErrCodeRuntimeNotFound = "ERR_601_RUNTIME_NOT_FOUND"
	ErrCodeRuntimeTooOld   = "ERR_602_RUNTIME_TOO_OLD"
	ErrCodePackageMissing  = "ERR_603_PACKAGE_MISSING"
	ErrCodeEnvVarMissing   = "ERR_604_ENV_VAR_MISSING"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// Extract numeric portion (e.g., "101" from "ERR_101_CONFIG_NOT_FOUND")
	numStr := code[4:7]

	switch numStr[0] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	case '3':
		return CategoryNetwork
	case '4':
		return CategoryValidation
	case '6':
		return CategoryEnvironment
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
// Codes for soft failures map to warning severity so callers can
// count them without consulting the check that produced them.
func severityFromCode(code string) Severity {
	switch code {
	case ErrCodeSkillsDirNotFound, ErrCodeSkillMarkerNotFound,
		ErrCodeUnexpectedStatus, ErrCodePackageMissing:
		return SeverityWarning
	default:
		return SeverityError
	}
}
