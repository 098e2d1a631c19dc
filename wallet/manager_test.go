package wallet

import (
	"context"
	"errors"
	"log/slog"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saferoads/incidentd/interfaces"
)

var testAccount = common.HexToAddress("0x1111111111111111111111111111111111111111")

// fakeSigner serves the signer-side RPC surface in-process. chainID is the
// chain the signer is attached to; zero means the default chain.
type fakeSigner struct {
	mu           sync.Mutex
	account      common.Address
	chainID      *big.Int
	dead         bool
	reject       bool
	rejectSwitch bool
	unknownChain bool

	requestCalls int
	switchCalls  int
	addCalls     int
}

type rejectionError struct{}

func (rejectionError) Error() string  { return "User rejected the request" }
func (rejectionError) ErrorCode() int { return 4001 }

type unknownChainError struct{}

func (unknownChainError) Error() string  { return "Unrecognized chain ID" }
func (unknownChainError) ErrorCode() int { return 4902 }

func (f *fakeSigner) Accounts() ([]common.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.dead {
		return nil, errors.New("session disconnected")
	}
	return []common.Address{f.account}, nil
}

func (f *fakeSigner) RequestAccounts() ([]common.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requestCalls++
	if f.reject {
		return nil, rejectionError{}
	}
	if f.dead {
		return nil, errors.New("session disconnected")
	}
	if f.account == (common.Address{}) {
		return []common.Address{}, nil
	}
	return []common.Address{f.account}, nil
}

func (f *fakeSigner) ChainId() (hexutil.Big, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.dead {
		return hexutil.Big{}, errors.New("session disconnected")
	}
	if f.chainID == nil {
		return hexutil.Big(*big.NewInt(DefaultChainID)), nil
	}
	return hexutil.Big(*f.chainID), nil
}

func (f *fakeSigner) kill() {
	f.mu.Lock()
	f.dead = true
	f.mu.Unlock()
}

// fakeWallet serves the wallet_ namespace against the same signer state.
type fakeWallet struct {
	signer *fakeSigner
}

func (w *fakeWallet) SwitchEthereumChain(param map[string]string) error {
	s := w.signer
	s.mu.Lock()
	defer s.mu.Unlock()
	s.switchCalls++
	if s.rejectSwitch {
		return rejectionError{}
	}
	if s.unknownChain {
		return unknownChainError{}
	}
	target, err := hexutil.DecodeBig(param["chainId"])
	if err != nil {
		return err
	}
	s.chainID = target
	return nil
}

func (w *fakeWallet) AddEthereumChain(params map[string]interface{}) error {
	s := w.signer
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addCalls++
	target, err := hexutil.DecodeBig(params["chainId"].(string))
	if err != nil {
		return err
	}
	s.unknownChain = false
	s.chainID = target
	return nil
}

// newTestManager wires a manager whose dial connects to a fresh in-process
// signer on every call and counts negotiations.
func newTestManager(t *testing.T, signer *fakeSigner) (*Manager, *int) {
	t.Helper()

	dials := 0
	m, err := NewManager(Config{
		SignerURL:     "inproc://signer",
		ProjectID:     "test-project",
		ProbeInterval: time.Hour,
	}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	m.dial = func(ctx context.Context, url string) (*rpc.Client, error) {
		dials++
		srv := rpc.NewServer()
		require.NoError(t, srv.RegisterName("eth", signer))
		require.NoError(t, srv.RegisterName("wallet", &fakeWallet{signer: signer}))
		return rpc.DialInProc(srv), nil
	}
	return m, &dials
}

func TestNewManagerRequiresEndpoint(t *testing.T) {
	_, err := NewManager(Config{ProjectID: "p"}, slog.New(slog.DiscardHandler))
	require.ErrorIs(t, err, interfaces.ErrConfigurationMissing)

	_, err = NewManager(Config{SignerURL: "inproc://signer"}, slog.New(slog.DiscardHandler))
	require.ErrorIs(t, err, interfaces.ErrConfigurationMissing)
}

func TestAcquireCachesSession(t *testing.T) {
	signer := &fakeSigner{account: testAccount}
	m, dials := newTestManager(t, signer)

	s1, err := m.Acquire(context.Background(), false)
	require.NoError(t, err)
	require.Equal(t, []common.Address{testAccount}, s1.Accounts)
	require.Equal(t, int64(DefaultChainID), s1.ChainID.Int64())

	s2, err := m.Acquire(context.Background(), false)
	require.NoError(t, err)
	assert.Same(t, s1, s2)
	assert.Equal(t, 1, *dials)
}

func TestAcquireForceNewRenegotiates(t *testing.T) {
	signer := &fakeSigner{account: testAccount}
	m, dials := newTestManager(t, signer)

	s1, err := m.Acquire(context.Background(), false)
	require.NoError(t, err)

	s2, err := m.Acquire(context.Background(), true)
	require.NoError(t, err)
	assert.NotSame(t, s1, s2)
	assert.Equal(t, 2, *dials)
}

func TestAcquireRenegotiatesAfterProbeFailure(t *testing.T) {
	signer := &fakeSigner{account: testAccount}
	m, dials := newTestManager(t, signer)

	_, err := m.Acquire(context.Background(), false)
	require.NoError(t, err)

	// Kill the first session, then swap the dial target to a healthy signer
	// so renegotiation succeeds.
	signer.kill()
	healthy := &fakeSigner{account: testAccount}
	m.dial = func(ctx context.Context, url string) (*rpc.Client, error) {
		*dials++
		srv := rpc.NewServer()
		require.NoError(t, srv.RegisterName("eth", healthy))
		require.NoError(t, srv.RegisterName("wallet", &fakeWallet{signer: healthy}))
		return rpc.DialInProc(srv), nil
	}

	s2, err := m.Acquire(context.Background(), false)
	require.NoError(t, err)
	require.NotNil(t, s2)
	assert.Equal(t, 2, *dials)
}

func TestAcquireNoAccounts(t *testing.T) {
	signer := &fakeSigner{} // zero account, signer exposes nothing
	m, _ := newTestManager(t, signer)

	_, err := m.Acquire(context.Background(), false)
	require.ErrorIs(t, err, interfaces.ErrSessionUnavailable)
}

func TestAcquireUserRejection(t *testing.T) {
	signer := &fakeSigner{account: testAccount, reject: true}
	m, _ := newTestManager(t, signer)

	_, err := m.Acquire(context.Background(), false)
	require.ErrorIs(t, err, interfaces.ErrUserRejected)
}

func TestAcquireSwitchesChain(t *testing.T) {
	// Signer starts out attached to Ethereum Sepolia.
	signer := &fakeSigner{account: testAccount, chainID: big.NewInt(11155111)}
	m, _ := newTestManager(t, signer)

	session, err := m.Acquire(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultChainID), session.ChainID.Int64())
	assert.Equal(t, 1, signer.switchCalls)
	assert.Zero(t, signer.addCalls)
}

func TestAcquireSwitchRejected(t *testing.T) {
	signer := &fakeSigner{account: testAccount, chainID: big.NewInt(11155111), rejectSwitch: true}
	m, _ := newTestManager(t, signer)

	// The session stays on the wrong chain, so no session is handed out.
	_, err := m.Acquire(context.Background(), false)
	require.ErrorIs(t, err, interfaces.ErrNetworkMismatch)

	// Nothing was cached; a later attempt renegotiates from scratch.
	signer.mu.Lock()
	signer.rejectSwitch = false
	signer.mu.Unlock()
	session, err := m.Acquire(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultChainID), session.ChainID.Int64())
}

func TestAcquireRegistersUnknownChain(t *testing.T) {
	signer := &fakeSigner{account: testAccount, chainID: big.NewInt(11155111), unknownChain: true}
	m, _ := newTestManager(t, signer)

	session, err := m.Acquire(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultChainID), session.ChainID.Int64())
	assert.Equal(t, 1, signer.switchCalls)
	assert.Equal(t, 1, signer.addCalls)
}

func TestRequestAccountsPromptsSigner(t *testing.T) {
	signer := &fakeSigner{account: testAccount}
	m, _ := newTestManager(t, signer)

	session, err := m.Acquire(context.Background(), false)
	require.NoError(t, err)

	accounts, err := m.RequestAccounts(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, []common.Address{testAccount}, accounts)
	assert.Equal(t, 2, signer.requestCalls) // negotiation + explicit prompt
}

func TestReleaseClearsCache(t *testing.T) {
	signer := &fakeSigner{account: testAccount}
	m, dials := newTestManager(t, signer)

	s1, err := m.Acquire(context.Background(), false)
	require.NoError(t, err)

	m.Release(s1)

	_, err = m.Acquire(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 2, *dials)
}

func TestIsRejection(t *testing.T) {
	assert.True(t, IsUserRejection(rejectionError{}))
	assert.True(t, IsUserRejection(errors.New("request denied by user")))
	assert.True(t, IsUserRejection(errors.New("Transaction Rejected")))
	assert.False(t, IsUserRejection(errors.New("connection refused")))
}
