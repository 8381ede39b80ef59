// Package errors holds the sentinel errors shared by the plugport packages.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")
	ErrConfigEncode      = fmt.Errorf("failed to encode config")
	ErrConfigDirectory   = fmt.Errorf("failed to create config directory")
	ErrConfigFileCreate  = fmt.Errorf("failed to create config file")
	ErrConfigFileExists  = fmt.Errorf("configuration file already exists (use --force to overwrite)")
	ErrConfigFileRename  = fmt.Errorf("failed to rename temporary config file")
	ErrUnknownConfigKey  = fmt.Errorf("unknown configuration key")
	ErrInvalidLogLevel   = fmt.Errorf("invalid log level")
	ErrInvalidOutput     = fmt.Errorf("invalid output format")
	ErrHTTPTimeout       = fmt.Errorf("http_timeout cannot be negative")
	ErrCatalogURLInvalid = fmt.Errorf("invalid catalog URL")

	// Plugin errors.
	ErrInvalidPluginKey = fmt.Errorf("invalid plugin key")
	ErrArchiveNotFound  = fmt.Errorf("plugin archive not found")
	ErrAlreadyInstalled = fmt.Errorf("plugin already installed")
	ErrExtraction       = fmt.Errorf("plugin archive extraction failed")
	ErrManifestMissing  = fmt.Errorf("plugin manifest not found")
	ErrManifestInvalid  = fmt.Errorf("invalid plugin manifest")
	ErrInvalidPath      = fmt.Errorf("invalid path")
	ErrInstallFailed    = fmt.Errorf("plugin installation failed")

	// Remote errors.
	ErrRemoteFetch      = fmt.Errorf("remote catalog request failed")
	ErrDownloadFailed   = fmt.Errorf("download failed")
	ErrFileHashMismatch = fmt.Errorf("file hash mismatch")

	// Hook errors.
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")

	// Database errors.
	ErrDatabaseConfig = fmt.Errorf("invalid database configuration")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// ErrUnknownConfigKeyWithName reports the offending key.
func ErrUnknownConfigKeyWithName(key string) error {
	return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
}

// ErrInvalidLogLevelWithDetails is a helper to create a wrapped error with the invalid level and valid options.
func ErrInvalidLogLevelWithDetails(level string) error {
	return fmt.Errorf("%w: '%s', must be one of: debug, info, warn, error", ErrInvalidLogLevel, level)
}

// ErrInvalidOutputWithDetails is a helper to create a wrapped error with the invalid format and valid options.
func ErrInvalidOutputWithDetails(format string) error {
	return fmt.Errorf("%w: '%s', must be one of: table, json", ErrInvalidOutput, format)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
