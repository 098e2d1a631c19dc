package interfaces

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// SessionManager acquires, validates and tears down remote signer sessions.
// At most one session is live per process; Acquire returns the cached one
// when its liveness probe succeeds.
type SessionManager interface {
	// Acquire returns a live session, negotiating a new one when forceNew is
	// set, no session is cached, or the cached session fails its probe.
	// Fails with ErrSessionUnavailable when no signer can be reached.
	Acquire(ctx context.Context, forceNew bool) (*WalletSession, error)

	// RequestAccounts triggers the signer-side authorization prompt and
	// returns the authorized addresses. Fails with ErrUserRejected if the
	// user declines.
	RequestAccounts(ctx context.Context, session *WalletSession) ([]common.Address, error)

	// Release tears the session down, clears the cache and unregisters the
	// disconnect watcher.
	Release(session *WalletSession)
}

// IdentityVerifier reconciles a subject's off-chain identity proof with
// on-chain attestation state.
type IdentityVerifier interface {
	// CheckStatus performs a single attestation registry read. Fails with
	// ErrNetworkMismatch when the RPC endpoint serves a different chain than
	// configured.
	CheckStatus(ctx context.Context, subject common.Address) (bool, error)

	// Poll re-reads the registry on a fixed interval up to a bounded attempt
	// count after a proof handshake completed. Exhausting the budget without
	// confirmation resolves as soft success.
	Poll(ctx context.Context, subject common.Address) (bool, error)
}

// DocumentGenerator turns report fields into a byte-serialized document.
// Pure and deterministic for identical input.
type DocumentGenerator interface {
	Generate(report *Report) ([]byte, error)
}

// ProgressFunc receives advisory upload progress in percent. Estimates are
// monotonically non-decreasing and carry no completion guarantee.
type ProgressFunc func(percent int)

// StorageUploader pushes a document to a content-addressed storage network.
type StorageUploader interface {
	// Upload authenticates with the credential, stores data as a single
	// named object and returns its content identifier. No internal retry;
	// fails with ErrUploadFailed on any transport or authentication error.
	Upload(ctx context.Context, data []byte, filename string, cred StorageCredential) (string, error)
}

// LedgerSubmitter signs and submits a content identifier to the incident
// contract and parses the confirmed result.
type LedgerSubmitter interface {
	// Submit sends reportIncident carrying the content id's access URL,
	// waits for inclusion and returns the recorded incident. Resubmission is
	// never idempotent: each call produces a distinct record.
	Submit(ctx context.Context, contentID string, session *WalletSession, from common.Address) (*LedgerRecord, error)
}
