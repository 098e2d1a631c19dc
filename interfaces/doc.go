// Package interfaces defines the shared types and component contracts of the
// incident submission pipeline, separating interface definitions from
// implementations.
//
// # Pipeline Components
//
// SessionManager: Acquires, caches, validates and tears down remote signer
// sessions. The cached session is process-wide singleton state; only the
// manager mutates it.
//
// IdentityVerifier: Checks a subject's verified status on the attestation
// registry and drives the bounded polling loop that reconciles an off-chain
// proof with on-chain state.
//
// DocumentGenerator: Pure transform from report fields to a byte-serialized
// document.
//
// StorageUploader: Pushes generated bytes to a content-addressed storage
// network and returns a stable content identifier.
//
// LedgerSubmitter: Signs and submits the content identifier to the incident
// contract and parses the resulting receipt into a LedgerRecord.
//
// # Error Taxonomy
//
// Each stage fails with one of the sentinel errors declared in this package
// (ErrSessionUnavailable, ErrUserRejected, ErrNetworkMismatch,
// ErrUploadFailed, ErrGenerationFailed, ErrSubmissionRejected,
// ErrSubmissionReverted, ErrSubmissionUnconfirmed, ErrConfigurationMissing),
// wrapped with call-site detail. The wizard never masks these; it halts at
// the failing stage and leaves the aggregate unchanged.
package interfaces
