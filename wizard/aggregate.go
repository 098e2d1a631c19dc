package wizard

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/saferoads/incidentd/interfaces"
)

// Aggregate is the accumulated state of one submission flow. Fields are
// written only by the stage that produces them. Rewinding leaves the
// aggregate untouched; the next advance from the rewound stage clears every
// field produced strictly downstream, so no stale result can leak into a
// later stage.
type Aggregate struct {
	Stage Stage

	// Setup results.
	Account     common.Address
	SessionLive bool

	// Identity results. Verified is the handshake outcome, Confirmed
	// whether the attestation was observed on-chain.
	Verified  bool
	Confirmed bool

	// Form results.
	Report *interfaces.Report

	// Generate results.
	Document []byte

	// Upload results.
	ContentID string

	// Submit results.
	Record *interfaces.LedgerRecord
}

// clearAfter zeroes all results produced strictly after stage.
func (a *Aggregate) clearAfter(stage Stage) {
	if stage < StageSetup {
		a.Account = common.Address{}
		a.SessionLive = false
	}
	if stage < StageIdentity {
		a.Verified = false
		a.Confirmed = false
	}
	if stage < StageForm {
		a.Report = nil
	}
	if stage < StageGenerate {
		a.Document = nil
	}
	if stage < StageUpload {
		a.ContentID = ""
	}
	if stage < StageSubmit {
		a.Record = nil
	}
}
