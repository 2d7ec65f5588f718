package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts and agents.
const (
	// Workspace errors
	ErrWorkspaceNotFound     = "WORKSPACE_NOT_FOUND"
	ErrWorkspaceNotSpecified = "WORKSPACE_NOT_SPECIFIED"
	ErrConfigInvalid         = "CONFIG_INVALID"

	// Reference errors
	ErrRefNotFound  = "REF_NOT_FOUND"
	ErrRefInvalid   = "REF_INVALID"
	ErrRefAmbiguous = "REF_AMBIGUOUS"

	// File errors
	ErrFileNotFound  = "FILE_NOT_FOUND"
	ErrFileExists    = "FILE_EXISTS"
	ErrFileReadError = "FILE_READ_ERROR"

	// Index errors
	ErrIndexError = "INDEX_ERROR"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnRefAmbiguous      = "REF_AMBIGUOUS"
	WarnFileSkipped       = "FILE_SKIPPED"
	WarnIndexUpdateFailed = "INDEX_UPDATE_FAILED"
)
