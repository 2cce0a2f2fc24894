// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNoTeams signals an operation on an empty roster.
	ErrNoTeams = errors.New("no teams available")
	// ErrUnsupportedFile signals a file extension outside the allow-list.
	ErrUnsupportedFile = errors.New("unsupported file type")
	// ErrFileTooLarge signals content above the configured size ceiling.
	ErrFileTooLarge = errors.New("file too large")
	// ErrUnsafeContent signals content failing the safety scan.
	ErrUnsafeContent = errors.New("unsafe file content")
	// ErrNoRecords signals a file from which no records could be extracted.
	ErrNoRecords = errors.New("no records extracted")
	// ErrMissingColumns signals a CSV header with no usable column signal.
	ErrMissingColumns = errors.New("missing required columns")
	// ErrTooManyGroups signals a group count beyond the naming range.
	ErrTooManyGroups = errors.New("too many groups")
	// ErrUnauthorized signals failed admin credentials or token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrAnalyzerUnavailable signals a failed or unconfigured AI collaborator.
	ErrAnalyzerUnavailable = errors.New("analyzer unavailable")
)
