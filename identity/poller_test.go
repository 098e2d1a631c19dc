package identity

import (
	"context"
	"errors"
	"log/slog"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saferoads/incidentd/interfaces"
)

var testSubject = common.HexToAddress("0x2222222222222222222222222222222222222222")

// scriptedReader returns one scripted result per read, repeating the last
// entry once exhausted.
type scriptedReader struct {
	results []readResult
	calls   int
}

type readResult struct {
	verified bool
	err      error
}

func (r *scriptedReader) IsUserVerified(opts *bind.CallOpts, user common.Address) (bool, error) {
	i := r.calls
	if i >= len(r.results) {
		i = len(r.results) - 1
	}
	r.calls++
	res := r.results[i]
	return res.verified, res.err
}

func newTestPoller(t *testing.T, reader attestationReader) *Poller {
	t.Helper()
	cfg, err := (&Config{
		RPCURL:       "http://unused",
		ContractAddr: common.HexToAddress("0x3333333333333333333333333333333333333333"),
		PollInterval: time.Millisecond,
	}).withDefaults()
	require.NoError(t, err)
	return &Poller{cfg: cfg, log: slog.New(slog.DiscardHandler), reader: reader}
}

func TestConfigRequiresRegistry(t *testing.T) {
	_, err := (&Config{}).withDefaults()
	require.ErrorIs(t, err, interfaces.ErrConfigurationMissing)

	_, err = (&Config{RPCURL: "http://node"}).withDefaults()
	require.ErrorIs(t, err, interfaces.ErrConfigurationMissing)

	// Skipping checks waives the registry requirement.
	cfg, err := (&Config{SkipCheck: true}).withDefaults()
	require.NoError(t, err)
	assert.Equal(t, DefaultPollAttempts, cfg.PollAttempts)
	assert.Equal(t, int64(11142220), cfg.ChainID.Int64())
}

func TestCheckStatus(t *testing.T) {
	p := newTestPoller(t, &scriptedReader{results: []readResult{{verified: true}}})
	verified, err := p.CheckStatus(context.Background(), testSubject)
	require.NoError(t, err)
	assert.True(t, verified)

	p = newTestPoller(t, &scriptedReader{results: []readResult{{err: errors.New("boom")}}})
	_, err = p.CheckStatus(context.Background(), testSubject)
	require.Error(t, err)
}

func TestPollConfirms(t *testing.T) {
	reader := &scriptedReader{results: []readResult{
		{verified: false},
		{verified: false},
		{verified: true},
	}}
	p := newTestPoller(t, reader)

	confirmed, err := p.Poll(context.Background(), testSubject)
	require.NoError(t, err)
	assert.True(t, confirmed)
	assert.Equal(t, 3, reader.calls)
}

func TestPollTransientErrorsConsumeBudget(t *testing.T) {
	reader := &scriptedReader{results: []readResult{
		{err: errors.New("connection reset")},
		{err: errors.New("connection reset")},
		{verified: true},
	}}
	p := newTestPoller(t, reader)

	confirmed, err := p.Poll(context.Background(), testSubject)
	require.NoError(t, err)
	assert.True(t, confirmed)
}

func TestPollExhaustionIsSoftSuccess(t *testing.T) {
	reader := &scriptedReader{results: []readResult{{verified: false}}}
	p := newTestPoller(t, reader)

	confirmed, err := p.Poll(context.Background(), testSubject)
	require.NoError(t, err)
	assert.False(t, confirmed)
	assert.Equal(t, DefaultPollAttempts, reader.calls)
}

func TestPollHonorsContext(t *testing.T) {
	reader := &scriptedReader{results: []readResult{{verified: false}}}
	p := newTestPoller(t, reader)
	p.cfg.PollInterval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Poll(ctx, testSubject)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSkipCheckShortCircuits(t *testing.T) {
	p := &Poller{cfg: Config{SkipCheck: true}, log: slog.New(slog.DiscardHandler)}

	verified, err := p.CheckStatus(context.Background(), testSubject)
	require.NoError(t, err)
	assert.True(t, verified)

	confirmed, err := p.Poll(context.Background(), testSubject)
	require.NoError(t, err)
	assert.True(t, confirmed)
}

func TestVerificationRequest(t *testing.T) {
	cfg, err := (&Config{
		RPCURL:            "http://node",
		ContractAddr:      common.HexToAddress("0x3333333333333333333333333333333333333333"),
		Endpoint:          "https://verify.example.org/api",
		ChainID:           big.NewInt(11142220),
		ExcludedCountries: []string{"IRN", "PRK"},
	}).withDefaults()
	require.NoError(t, err)
	p := &Poller{cfg: cfg, log: slog.New(slog.DiscardHandler)}

	req := p.Request(testSubject)
	assert.NotEmpty(t, req.SessionID)
	assert.Equal(t, DefaultScope, req.Scope)
	assert.Equal(t, DefaultMinimumAge, req.MinimumAge)

	link := req.UniversalLink()
	assert.True(t, strings.HasPrefix(link, "https://redirect.self.xyz/?"))
	assert.Contains(t, link, "scope="+DefaultScope)
	assert.Contains(t, link, "userId="+strings.ToLower(testSubject.Hex()))
	assert.Contains(t, link, "excludedCountries=IRN%2CPRK")

	// Session ids are unique per request.
	assert.NotEqual(t, req.SessionID, p.Request(testSubject).SessionID)
}
