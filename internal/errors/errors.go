package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// FetchFailed indicates a table transfer failed (network error or
	// non-success status); fatal to session load
	FetchFailed ErrorCode = "FETCH_FAILED"
	// TableMalformed indicates a required table had no recoverable rows
	TableMalformed ErrorCode = "TABLE_MALFORMED"
	// SnapshotMissing indicates the local snapshot has no copy of a table
	SnapshotMissing ErrorCode = "SNAPSHOT_MISSING"
	// PeriodInvalid indicates an unknown activity period label
	PeriodInvalid ErrorCode = "PERIOD_INVALID"
	// SessionNotReady indicates a query ran before a full load completed
	SessionNotReady ErrorCode = "SESSION_NOT_READY"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// FixActionType represents the type of fix action
type FixActionType string

const (
	// RunCommand suggests running a command
	RunCommand FixActionType = "run-command"
	// CheckConfig suggests inspecting the configuration
	CheckConfig FixActionType = "check-config"
)

// FixAction represents a suggested fix for an error
type FixAction struct {
	Type        FixActionType `json:"type"`
	Command     string        `json:"command,omitempty"`
	Safe        bool          `json:"safe,omitempty"`
	Description string        `json:"description,omitempty"`
}

// GovError represents a govlens error with code, message, and suggestions
type GovError struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	Details        interface{} `json:"details,omitempty"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty"`
	cause          error       // Underlying error (not exported to JSON)
}

// NewGovError creates a new GovError
func NewGovError(code ErrorCode, message string, cause error, suggestedFixes []FixAction) *GovError {
	return &GovError{
		Code:           code,
		Message:        message,
		cause:          cause,
		SuggestedFixes: suggestedFixes,
	}
}

// Error implements the error interface
func (e *GovError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *GovError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *GovError) WithDetails(details interface{}) *GovError {
	e.Details = details
	return e
}

// ErrorActions maps error codes to suggested fix actions
var ErrorActions = map[ErrorCode][]FixAction{
	FetchFailed: {
		{
			Type:        RunCommand,
			Command:     "govlens status",
			Safe:        true,
			Description: "Check the configured data source and retry the load",
		},
		{
			Type:        CheckConfig,
			Description: "Verify data.baseUrl in .govlens/config.json",
		},
	},
	SnapshotMissing: {
		{
			Type:        RunCommand,
			Command:     "govlens load",
			Safe:        true,
			Description: "Fetch the tables and refresh the local snapshot",
		},
	},
	SessionNotReady: {
		{
			Type:        RunCommand,
			Command:     "govlens load",
			Safe:        true,
			Description: "Run a full load before querying",
		},
	},
	PeriodInvalid: {
		{
			Type:        RunCommand,
			Command:     "govlens overview --help",
			Safe:        true,
			Description: "List the accepted activity period labels",
		},
	},
}

// GetSuggestedFixes returns suggested fixes for an error code
func GetSuggestedFixes(code ErrorCode) []FixAction {
	if fixes, ok := ErrorActions[code]; ok {
		return fixes
	}
	return nil
}
