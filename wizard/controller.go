package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.uber.org/atomic"

	"github.com/saferoads/incidentd/interfaces"
)

// documentFilename is the object name reports are uploaded under.
const documentFilename = "incident-report.pdf"

var (
	// ErrBusy is returned when an operation is started while another is
	// still running. Operations never queue.
	ErrBusy = errors.New("wizard: operation already in progress")

	// ErrStageMismatch is returned when an operation does not belong to the
	// current stage.
	ErrStageMismatch = errors.New("wizard: operation not valid at current stage")
)

// Controller drives the submission flow through its stages. All mutation
// goes through it: operations run one at a time, advance the flow only on
// success and leave the aggregate untouched on failure so the failing stage
// can be retried.
//
// Operations may run on their own goroutines. Rewind and Restart bump an
// epoch counter; an operation that finishes after such a cut observes the
// stale epoch and discards its result instead of landing it in a flow that
// has moved on.
type Controller struct {
	log *slog.Logger

	sessions  interfaces.SessionManager
	identity  interfaces.IdentityVerifier
	generator interfaces.DocumentGenerator
	uploader  interfaces.StorageUploader
	submitter interfaces.LedgerSubmitter

	cred interfaces.StorageCredential

	busy atomic.Bool

	mu      sync.Mutex
	epoch   uint64
	agg     Aggregate
	session *interfaces.WalletSession
}

// NewController wires a controller at the setup stage.
func NewController(
	sessions interfaces.SessionManager,
	identity interfaces.IdentityVerifier,
	generator interfaces.DocumentGenerator,
	uploader interfaces.StorageUploader,
	submitter interfaces.LedgerSubmitter,
	cred interfaces.StorageCredential,
	log *slog.Logger,
) *Controller {
	return &Controller{
		log:       log,
		sessions:  sessions,
		identity:  identity,
		generator: generator,
		uploader:  uploader,
		submitter: submitter,
		cred:      cred,
		agg:       Aggregate{Stage: StageSetup},
	}
}

// Snapshot returns a copy of the current aggregate.
func (c *Controller) Snapshot() Aggregate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.agg
}

// ConnectWallet runs the setup stage: acquire a signer session, validate the
// storage credential and advance to identity verification.
func (c *Controller) ConnectWallet(ctx context.Context, forceNew bool) error {
	epoch, err := c.begin(StageSetup)
	if err != nil {
		return err
	}
	defer c.busy.Store(false)

	if err := c.cred.Validate(); err != nil {
		return err
	}

	session, err := c.sessions.Acquire(ctx, forceNew)
	if err != nil {
		return err
	}

	applied := c.finish(epoch, StageSetup, func(a *Aggregate) {
		c.session = session
		a.Account = session.Accounts[0]
		a.SessionLive = true
	})
	if !applied {
		// The flow was reset while negotiating; the session belongs to
		// nobody now.
		c.sessions.Release(session)
	}
	return nil
}

// VerifyIdentity runs the identity stage: a registry read first, then the
// bounded polling loop when the attestation is not yet visible. A polling
// budget exhausted without confirmation still advances; the proof handshake
// already succeeded.
func (c *Controller) VerifyIdentity(ctx context.Context) error {
	epoch, err := c.begin(StageIdentity)
	if err != nil {
		return err
	}
	defer c.busy.Store(false)

	c.mu.Lock()
	subject := c.agg.Account
	c.mu.Unlock()

	confirmed, err := c.identity.CheckStatus(ctx, subject)
	if err != nil {
		return err
	}
	if !confirmed {
		confirmed, err = c.identity.Poll(ctx, subject)
		if err != nil {
			return err
		}
	}

	c.finish(epoch, StageIdentity, func(a *Aggregate) {
		a.Verified = true
		a.Confirmed = confirmed
	})
	return nil
}

// SetReport runs the form stage: validate and record the report fields.
func (c *Controller) SetReport(report *interfaces.Report) error {
	epoch, err := c.begin(StageForm)
	if err != nil {
		return err
	}
	defer c.busy.Store(false)

	if err := report.Validate(); err != nil {
		return err
	}

	c.finish(epoch, StageForm, func(a *Aggregate) {
		a.Report = report
	})
	return nil
}

// GenerateDocument runs the generate stage.
func (c *Controller) GenerateDocument() error {
	epoch, err := c.begin(StageGenerate)
	if err != nil {
		return err
	}
	defer c.busy.Store(false)

	c.mu.Lock()
	report := c.agg.Report
	c.mu.Unlock()

	document, err := c.generator.Generate(report)
	if err != nil {
		return err
	}

	c.finish(epoch, StageGenerate, func(a *Aggregate) {
		a.Document = document
	})
	return nil
}

// UploadDocument runs the upload stage. No internal retry: on failure the
// flow stays here and the caller re-runs the stage.
func (c *Controller) UploadDocument(ctx context.Context) error {
	epoch, err := c.begin(StageUpload)
	if err != nil {
		return err
	}
	defer c.busy.Store(false)

	c.mu.Lock()
	document := c.agg.Document
	c.mu.Unlock()

	cid, err := c.uploader.Upload(ctx, document, documentFilename, c.cred)
	if err != nil {
		return err
	}

	c.finish(epoch, StageUpload, func(a *Aggregate) {
		a.ContentID = cid
	})
	return nil
}

// SubmitReport runs the submit stage and advances to the terminal summary.
func (c *Controller) SubmitReport(ctx context.Context) error {
	epoch, err := c.begin(StageSubmit)
	if err != nil {
		return err
	}
	defer c.busy.Store(false)

	c.mu.Lock()
	cid := c.agg.ContentID
	session := c.session
	from := c.agg.Account
	c.mu.Unlock()

	record, err := c.submitter.Submit(ctx, cid, session, from)
	if err != nil {
		return err
	}

	c.finish(epoch, StageSubmit, func(a *Aggregate) {
		a.Record = record
	})
	return nil
}

// Rewind moves the flow back to an earlier stage without touching the
// accumulated results; the next advance from that stage clears everything
// downstream of it. Any operation still in flight becomes stale and its
// result is discarded on arrival. Rewinding forward is rejected.
func (c *Controller) Rewind(to Stage) error {
	if !to.Valid() {
		return fmt.Errorf("%w: invalid stage %d", ErrStageMismatch, to)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if to > c.agg.Stage {
		return fmt.Errorf("%w: cannot rewind forward from %s to %s", ErrStageMismatch, c.agg.Stage, to)
	}

	c.epoch++
	c.agg.Stage = to
	c.log.Info("Rewound submission flow", slog.String("stage", to.String()))
	return nil
}

// Restart abandons the flow and returns to an empty aggregate at the setup
// stage. Valid from any stage. The signer session stays cached in the
// session manager, so the next ConnectWallet reuses it without a fresh
// negotiation.
func (c *Controller) Restart() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	c.agg = Aggregate{Stage: StageSetup}
	c.session = nil
	c.log.Info("Restarted submission flow")
}

// begin claims the single operation slot and checks the stage gate.
func (c *Controller) begin(expect Stage) (uint64, error) {
	if !c.busy.CompareAndSwap(false, true) {
		return 0, ErrBusy
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.agg.Stage != expect {
		c.busy.Store(false)
		return 0, fmt.Errorf("%w: at %s, operation belongs to %s", ErrStageMismatch, c.agg.Stage, expect)
	}
	return c.epoch, nil
}

// finish applies a stage result and moves the flow to the following stage,
// clearing everything downstream of the completed stage first. The result is
// discarded when the flow was rewound or restarted since the operation
// began. Reports whether the result was applied.
func (c *Controller) finish(epoch uint64, completed Stage, apply func(*Aggregate)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		c.log.Info("Discarding stale stage result",
			slog.Uint64("startedEpoch", epoch),
			slog.Uint64("currentEpoch", c.epoch))
		return false
	}
	c.agg.clearAfter(completed)
	apply(&c.agg)
	if next, ok := completed.next(); ok {
		c.agg.Stage = next
	}
	return true
}
