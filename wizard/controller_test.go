package wizard

import (
	"context"
	"log/slog"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saferoads/incidentd/interfaces"
)

var (
	testAccount = common.HexToAddress("0x7777777777777777777777777777777777777777")
	testCred    = interfaces.StorageCredential{
		Identity: "reporter@example.org",
		SpaceID:  "did:key:z6MkhaXgBZDvotDkL5257faiztiGiC2QtKLGpbnnEGta2doK",
	}
)

type fakeSessions struct {
	mu       sync.Mutex
	err      error
	acquired int
	released int
}

func (f *fakeSessions) Acquire(ctx context.Context, forceNew bool) (*interfaces.WalletSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.acquired++
	return &interfaces.WalletSession{
		ChainID:  big.NewInt(11142220),
		Accounts: []common.Address{testAccount},
		CachedAt: time.Now(),
	}, nil
}

func (f *fakeSessions) RequestAccounts(ctx context.Context, session *interfaces.WalletSession) ([]common.Address, error) {
	return session.Accounts, nil
}

func (f *fakeSessions) Release(session *interfaces.WalletSession) {
	f.mu.Lock()
	f.released++
	f.mu.Unlock()
}

type fakeIdentity struct {
	status    bool
	statusErr error
	polled    bool
	pollOK    bool
}

func (f *fakeIdentity) CheckStatus(ctx context.Context, subject common.Address) (bool, error) {
	return f.status, f.statusErr
}

func (f *fakeIdentity) Poll(ctx context.Context, subject common.Address) (bool, error) {
	f.polled = true
	return f.pollOK, nil
}

type fakeGenerator struct {
	err error
}

func (f *fakeGenerator) Generate(report *interfaces.Report) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 " + report.Location), nil
}

type fakeUploader struct {
	cid string
	err error

	// release, when set, blocks Upload until closed.
	release chan struct{}
	started chan struct{}
}

func (f *fakeUploader) Upload(ctx context.Context, data []byte, filename string, cred interfaces.StorageCredential) (string, error) {
	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	return f.cid, f.err
}

type fakeSubmitter struct {
	record *interfaces.LedgerRecord
	err    error
	gotCID string
}

func (f *fakeSubmitter) Submit(ctx context.Context, contentID string, session *interfaces.WalletSession, from common.Address) (*interfaces.LedgerRecord, error) {
	f.gotCID = contentID
	return f.record, f.err
}

type fixture struct {
	sessions  *fakeSessions
	identity  *fakeIdentity
	generator *fakeGenerator
	uploader  *fakeUploader
	submitter *fakeSubmitter
	c         *Controller
}

func newFixture() *fixture {
	f := &fixture{
		sessions:  &fakeSessions{},
		identity:  &fakeIdentity{status: true},
		generator: &fakeGenerator{},
		uploader:  &fakeUploader{cid: "bafy123"},
		submitter: &fakeSubmitter{record: &interfaces.LedgerRecord{
			ID:          big.NewInt(7),
			TxHash:      common.HexToHash("0xabc"),
			BlockNumber: 99,
		}},
	}
	f.c = NewController(f.sessions, f.identity, f.generator, f.uploader, f.submitter, testCred, slog.New(slog.DiscardHandler))
	return f
}

func validReport() *interfaces.Report {
	return &interfaces.Report{
		Location:        "Main St",
		Description:     "Collision at crossing",
		ElderlyInvolved: interfaces.ElderlyYes,
	}
}

// advanceTo drives the flow up to (but not through) the given stage.
func (f *fixture) advanceTo(t *testing.T, stage Stage) {
	t.Helper()
	ctx := context.Background()
	steps := []func() error{
		func() error { return f.c.ConnectWallet(ctx, false) },
		func() error { return f.c.VerifyIdentity(ctx) },
		func() error { return f.c.SetReport(validReport()) },
		func() error { return f.c.GenerateDocument() },
		func() error { return f.c.UploadDocument(ctx) },
		func() error { return f.c.SubmitReport(ctx) },
	}
	for i := StageSetup; i < stage; i++ {
		require.NoError(t, steps[i-1]())
	}
	require.Equal(t, stage, f.c.Snapshot().Stage)
}

func TestHappyPath(t *testing.T) {
	f := newFixture()
	f.advanceTo(t, StageSummary)

	agg := f.c.Snapshot()
	assert.Equal(t, testAccount, agg.Account)
	assert.True(t, agg.Verified)
	assert.Equal(t, "bafy123", agg.ContentID)
	assert.Equal(t, "bafy123", f.submitter.gotCID)
	require.NotNil(t, agg.Record)
	assert.Equal(t, int64(7), agg.Record.ID.Int64())
}

func TestStageGating(t *testing.T) {
	f := newFixture()

	// Every operation except setup is rejected at the setup stage.
	require.ErrorIs(t, f.c.VerifyIdentity(context.Background()), ErrStageMismatch)
	require.ErrorIs(t, f.c.SetReport(validReport()), ErrStageMismatch)
	require.ErrorIs(t, f.c.GenerateDocument(), ErrStageMismatch)
	require.ErrorIs(t, f.c.UploadDocument(context.Background()), ErrStageMismatch)
	require.ErrorIs(t, f.c.SubmitReport(context.Background()), ErrStageMismatch)

	// A failed gate leaves the flow operable.
	require.NoError(t, f.c.ConnectWallet(context.Background(), false))
	assert.Equal(t, StageIdentity, f.c.Snapshot().Stage)
}

func TestFailureHaltsAtStage(t *testing.T) {
	f := newFixture()
	f.uploader.err = interfaces.ErrUploadFailed
	f.advanceTo(t, StageUpload)

	err := f.c.UploadDocument(context.Background())
	require.ErrorIs(t, err, interfaces.ErrUploadFailed)

	// Aggregate unchanged, stage retriable.
	agg := f.c.Snapshot()
	assert.Equal(t, StageUpload, agg.Stage)
	assert.Empty(t, agg.ContentID)

	f.uploader.err = nil
	require.NoError(t, f.c.UploadDocument(context.Background()))
	assert.Equal(t, StageSubmit, f.c.Snapshot().Stage)
}

func TestConnectWalletNetworkMismatchBlocksIdentity(t *testing.T) {
	f := newFixture()
	f.sessions.err = interfaces.ErrNetworkMismatch

	// The signer refused to attach to the target chain; the flow stays at
	// setup and identity verification is unreachable.
	err := f.c.ConnectWallet(context.Background(), false)
	require.ErrorIs(t, err, interfaces.ErrNetworkMismatch)

	agg := f.c.Snapshot()
	assert.Equal(t, StageSetup, agg.Stage)
	assert.False(t, agg.SessionLive)
	require.ErrorIs(t, f.c.VerifyIdentity(context.Background()), ErrStageMismatch)
}

func TestConnectWalletValidatesCredentialFirst(t *testing.T) {
	f := newFixture()
	f.c.cred = interfaces.StorageCredential{Identity: "bad", SpaceID: "bad"}

	err := f.c.ConnectWallet(context.Background(), false)
	require.ErrorIs(t, err, interfaces.ErrConfigurationMissing)
	assert.Zero(t, f.sessions.acquired)
}

func TestVerifyIdentityPollsWhenUnconfirmed(t *testing.T) {
	f := newFixture()
	f.identity.status = false
	f.identity.pollOK = false // budget exhausted, soft success
	f.advanceTo(t, StageIdentity)

	require.NoError(t, f.c.VerifyIdentity(context.Background()))
	agg := f.c.Snapshot()
	assert.True(t, f.identity.polled)
	assert.True(t, agg.Verified)
	assert.False(t, agg.Confirmed)
	assert.Equal(t, StageForm, agg.Stage)
}

func TestOperationsDoNotQueue(t *testing.T) {
	f := newFixture()
	f.uploader.release = make(chan struct{})
	f.uploader.started = make(chan struct{})
	f.advanceTo(t, StageUpload)

	done := make(chan error, 1)
	go func() { done <- f.c.UploadDocument(context.Background()) }()
	<-f.uploader.started

	require.ErrorIs(t, f.c.UploadDocument(context.Background()), ErrBusy)
	require.ErrorIs(t, f.c.GenerateDocument(), ErrBusy)

	close(f.uploader.release)
	require.NoError(t, <-done)
	assert.Equal(t, StageSubmit, f.c.Snapshot().Stage)
}

func TestRewindKeepsResultsUntilReAdvance(t *testing.T) {
	f := newFixture()
	f.advanceTo(t, StageSummary)

	require.NoError(t, f.c.Rewind(StageForm))

	// Rewinding only moves the stage pointer; nothing is cleared yet.
	agg := f.c.Snapshot()
	assert.Equal(t, StageForm, agg.Stage)
	assert.NotNil(t, agg.Report)
	assert.Equal(t, "bafy123", agg.ContentID)
	assert.NotNil(t, agg.Record)

	// Re-advancing from the rewound stage clears everything downstream.
	require.NoError(t, f.c.SetReport(validReport()))
	agg = f.c.Snapshot()
	assert.Equal(t, StageGenerate, agg.Stage)
	assert.NotNil(t, agg.Report)
	assert.Nil(t, agg.Document)
	assert.Empty(t, agg.ContentID)
	assert.Nil(t, agg.Record)
	// Upstream results survive.
	assert.Equal(t, testAccount, agg.Account)
	assert.True(t, agg.Verified)
}

func TestRewindForwardRejected(t *testing.T) {
	f := newFixture()
	f.advanceTo(t, StageIdentity)
	require.ErrorIs(t, f.c.Rewind(StageSubmit), ErrStageMismatch)
}

func TestRewindToSetupThenReconnect(t *testing.T) {
	f := newFixture()
	f.advanceTo(t, StageForm)

	require.NoError(t, f.c.Rewind(StageSetup))
	agg := f.c.Snapshot()
	assert.True(t, agg.SessionLive)
	assert.True(t, agg.Verified)

	// Reconnecting from setup invalidates the old verification.
	require.NoError(t, f.c.ConnectWallet(context.Background(), false))
	agg = f.c.Snapshot()
	assert.Equal(t, StageIdentity, agg.Stage)
	assert.True(t, agg.SessionLive)
	assert.False(t, agg.Verified)
	assert.Equal(t, 2, f.sessions.acquired)
}

func TestStaleUploadResultDiscardedAfterRewind(t *testing.T) {
	f := newFixture()
	f.uploader.release = make(chan struct{})
	f.uploader.started = make(chan struct{})
	f.advanceTo(t, StageUpload)

	done := make(chan error, 1)
	go func() { done <- f.c.UploadDocument(context.Background()) }()
	<-f.uploader.started

	// The user backs out while the upload is in flight.
	require.NoError(t, f.c.Rewind(StageForm))

	// The upload completes with bafy123, but the flow was cut; the result
	// must not land in the rewound aggregate.
	close(f.uploader.release)
	require.NoError(t, <-done)

	agg := f.c.Snapshot()
	assert.Equal(t, StageForm, agg.Stage)
	assert.Empty(t, agg.ContentID)
	assert.Nil(t, agg.Record)
}

func TestStaleConnectReleasesSession(t *testing.T) {
	f := newFixture()

	blocked := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once
	inner := f.sessions
	f.c.sessions = newSessionFunc(func(ctx context.Context, forceNew bool) (*interfaces.WalletSession, error) {
		once.Do(func() { close(started) })
		<-blocked
		return inner.Acquire(ctx, forceNew)
	}, inner)

	done := make(chan error, 1)
	go func() { done <- f.c.ConnectWallet(context.Background(), false) }()
	<-started

	f.c.Restart()
	close(blocked)
	require.NoError(t, <-done)

	// The session negotiated for a cancelled flow is released, not cached.
	assert.Equal(t, 1, inner.released)
	assert.False(t, f.c.Snapshot().SessionLive)
}

// sessionFunc wraps a SessionManager with a custom Acquire.
type sessionFunc struct {
	acquire func(ctx context.Context, forceNew bool) (*interfaces.WalletSession, error)
	inner   interfaces.SessionManager
}

func newSessionFunc(acquire func(ctx context.Context, forceNew bool) (*interfaces.WalletSession, error), inner interfaces.SessionManager) *sessionFunc {
	return &sessionFunc{acquire: acquire, inner: inner}
}

func (s sessionFunc) Acquire(ctx context.Context, forceNew bool) (*interfaces.WalletSession, error) {
	return s.acquire(ctx, forceNew)
}

func (s sessionFunc) RequestAccounts(ctx context.Context, session *interfaces.WalletSession) ([]common.Address, error) {
	return s.inner.RequestAccounts(ctx, session)
}

func (s sessionFunc) Release(session *interfaces.WalletSession) {
	s.inner.Release(session)
}

func TestRestartResetsAggregate(t *testing.T) {
	f := newFixture()
	f.advanceTo(t, StageSummary)

	f.c.Restart()

	agg := f.c.Snapshot()
	assert.Equal(t, StageSetup, agg.Stage)
	assert.Equal(t, common.Address{}, agg.Account)
	assert.False(t, agg.SessionLive)
	assert.False(t, agg.Verified)
	assert.Nil(t, agg.Report)
	assert.Nil(t, agg.Document)
	assert.Empty(t, agg.ContentID)
	assert.Nil(t, agg.Record)

	// The manager keeps the session cached for reuse; restart does not
	// tear it down.
	assert.Zero(t, f.sessions.released)
}

func TestRestartFromSetup(t *testing.T) {
	f := newFixture()
	f.c.Restart()
	assert.Equal(t, StageSetup, f.c.Snapshot().Stage)
}

func TestStageStrings(t *testing.T) {
	assert.Equal(t, "setup", StageSetup.String())
	assert.Equal(t, "summary", StageSummary.String())
	assert.False(t, Stage(0).Valid())
	assert.False(t, Stage(8).Valid())

	next, ok := StageUpload.next()
	require.True(t, ok)
	assert.Equal(t, StageSubmit, next)

	_, ok = StageSummary.next()
	assert.False(t, ok)
}
