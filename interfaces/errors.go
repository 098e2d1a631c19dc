package interfaces

import "errors"

// Pipeline error taxonomy. Each stage component fails with one of these
// sentinels (wrapped with detail); the wizard surfaces them unchanged at the
// stage where they occurred.
var (
	// ErrConfigurationMissing indicates a required configuration value is
	// absent. Fatal for the stage that needs it.
	ErrConfigurationMissing = errors.New("required configuration missing")

	// ErrSessionUnavailable indicates no remote signer could be reached.
	// Recoverable by retrying the wallet stage.
	ErrSessionUnavailable = errors.New("remote signer session unavailable")

	// ErrUserRejected indicates the signer declined an authorization or
	// signing prompt.
	ErrUserRejected = errors.New("request rejected by signer")

	// ErrNetworkMismatch indicates the signer or RPC endpoint is attached to
	// a different chain than configured. Recoverable only by an explicit
	// network switch.
	ErrNetworkMismatch = errors.New("connected to wrong network")

	// ErrUploadFailed indicates a storage transport or authentication
	// failure. The caller may retry; a retry produces a fresh content id.
	ErrUploadFailed = errors.New("storage upload failed")

	// ErrGenerationFailed indicates the document could not be produced from
	// the report fields.
	ErrGenerationFailed = errors.New("document generation failed")

	// ErrSubmissionRejected indicates the signer declined the ledger call.
	ErrSubmissionRejected = errors.New("ledger submission rejected by signer")

	// ErrSubmissionReverted indicates the ledger call was included but
	// reverted. Requires explicit user action before resubmitting.
	ErrSubmissionReverted = errors.New("ledger submission reverted")

	// ErrSubmissionUnconfirmed indicates inclusion could not be observed
	// within the bounded wait. The transaction may still land; manual
	// follow-up is required.
	ErrSubmissionUnconfirmed = errors.New("ledger submission not confirmed in time")
)
