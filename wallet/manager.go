package wallet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/saferoads/incidentd/interfaces"
)

// Celo Sepolia, the single network sessions are authorized for by default.
const (
	DefaultChainID  = 11142220
	DefaultRPCURL   = "https://forno.celo-sepolia.celo-testnet.org"
	DefaultExplorer = "https://celo-sepolia.blockscout.com/"
)

// defaultProbeInterval is how often the disconnect watcher probes a cached
// session in the background.
const defaultProbeInterval = 15 * time.Second

// Config holds the signer negotiation parameters. SignerURL and ProjectID
// are required; the remaining fields default to the Celo Sepolia testnet.
type Config struct {
	// SignerURL is the JSON-RPC endpoint of the remote signer bridge.
	SignerURL string

	// ProjectID identifies this application to the signer bridge during
	// negotiation.
	ProjectID string

	// ChainID is the single network to request authorization for.
	ChainID *big.Int

	// ChainName, RPCURL and Explorer describe the network for the
	// add-network fallback when the signer does not know the chain.
	ChainName string
	RPCURL    string
	Explorer  string

	// ProbeInterval overrides the background liveness probe cadence.
	ProbeInterval time.Duration
}

func (c *Config) withDefaults() (Config, error) {
	out := *c
	if out.SignerURL == "" {
		return out, fmt.Errorf("%w: signer endpoint is required", interfaces.ErrConfigurationMissing)
	}
	if out.ProjectID == "" {
		return out, fmt.Errorf("%w: signer negotiation project id is required", interfaces.ErrConfigurationMissing)
	}
	if out.ChainID == nil {
		out.ChainID = big.NewInt(DefaultChainID)
	}
	if out.ChainName == "" {
		out.ChainName = "Celo Sepolia Testnet"
	}
	if out.RPCURL == "" {
		out.RPCURL = DefaultRPCURL
	}
	if out.Explorer == "" {
		out.Explorer = DefaultExplorer
	}
	if out.ProbeInterval == 0 {
		out.ProbeInterval = defaultProbeInterval
	}
	return out, nil
}

// Manager implements interfaces.SessionManager against a remote signer
// reachable over JSON-RPC. Negotiation is expensive (the user approves
// out-of-band) and connections drop silently, so the manager keeps at most
// one session cached and revalidates it with a cheap account query on reuse.
type Manager struct {
	cfg Config
	log *slog.Logger

	// dial is swapped in tests.
	dial func(ctx context.Context, url string) (*rpc.Client, error)

	mu          sync.Mutex
	session     *interfaces.WalletSession
	watchCancel context.CancelFunc
}

// NewManager creates a session manager. Fails with ErrConfigurationMissing
// when the signer endpoint or project id is absent.
func NewManager(cfg Config, log *slog.Logger) (*Manager, error) {
	full, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	return &Manager{
		cfg:  full,
		log:  log,
		dial: rpc.DialContext,
	}, nil
}

// Acquire returns a live session. With forceNew unset it first probes the
// cached session with eth_accounts and returns it when the probe succeeds;
// otherwise it tears down whatever was cached and negotiates a fresh session
// authorized for the configured chain.
func (m *Manager) Acquire(ctx context.Context, forceNew bool) (*interfaces.WalletSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !forceNew && m.session != nil {
		if m.probe(ctx, m.session) {
			m.log.Debug("Reusing cached signer session",
				slog.Int("accounts", len(m.session.Accounts)),
				slog.Time("cachedAt", m.session.CachedAt))
			return m.session, nil
		}
		m.log.Info("Cached signer session expired, negotiating a new one")
		m.dropLocked()
	} else if m.session != nil {
		// Forced renegotiation always disconnects the live session first so
		// the signer prompts for authorization again.
		m.log.Info("Forcing new signer session, disconnecting cached one")
		m.dropLocked()
	}

	session, err := m.negotiate(ctx)
	if err != nil {
		return nil, err
	}

	watchCtx, cancel := context.WithCancel(context.Background())
	m.session = session
	m.watchCancel = cancel
	go m.watchDisconnect(watchCtx, session)

	return session, nil
}

// RequestAccounts triggers the signer-side authorization prompt.
func (m *Manager) RequestAccounts(ctx context.Context, session *interfaces.WalletSession) ([]common.Address, error) {
	var accounts []common.Address
	if err := session.Client.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
		if IsUserRejection(err) {
			return nil, fmt.Errorf("%w: %v", interfaces.ErrUserRejected, err)
		}
		return nil, fmt.Errorf("%w: %v", interfaces.ErrSessionUnavailable, err)
	}
	return accounts, nil
}

// Release tears the session down and clears the cache. Releasing a session
// that is no longer the cached one only closes that session's connection.
func (m *Manager) Release(session *interfaces.WalletSession) {
	if session == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == session {
		m.dropLocked()
		return
	}
	session.Client.Close()
}

// TransactOpts builds transaction options whose signer round-trips every
// transaction through the remote signer via eth_signTransaction.
func (m *Manager) TransactOpts(session *interfaces.WalletSession, from common.Address) *bind.TransactOpts {
	return &bind.TransactOpts{
		From: from,
		Signer: func(addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if addr != from {
				return nil, bind.ErrNotAuthorized
			}
			return signRemote(session, addr, tx)
		},
	}
}

// SwitchNetwork asks the signer to attach to the configured chain, falling
// back to registering the network when the signer does not know it. A user
// rejection surfaces as ErrNetworkMismatch since the session stays on the
// wrong chain.
func (m *Manager) SwitchNetwork(ctx context.Context, session *interfaces.WalletSession) error {
	param := map[string]string{"chainId": hexutil.EncodeBig(m.cfg.ChainID)}
	err := session.Client.CallContext(ctx, nil, "wallet_switchEthereumChain", param)
	if err == nil {
		return nil
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == 4902 {
		return m.addNetwork(ctx, session)
	}
	return fmt.Errorf("%w: switch to chain %s failed: %v", interfaces.ErrNetworkMismatch, m.cfg.ChainID, err)
}

func (m *Manager) addNetwork(ctx context.Context, session *interfaces.WalletSession) error {
	params := map[string]interface{}{
		"chainId":   hexutil.EncodeBig(m.cfg.ChainID),
		"chainName": m.cfg.ChainName,
		"nativeCurrency": map[string]interface{}{
			"name":     "CELO",
			"symbol":   "CELO",
			"decimals": 18,
		},
		"rpcUrls":           []string{m.cfg.RPCURL},
		"blockExplorerUrls": []string{m.cfg.Explorer},
	}
	if err := session.Client.CallContext(ctx, nil, "wallet_addEthereumChain", params); err != nil {
		return fmt.Errorf("%w: registering chain %s failed: %v", interfaces.ErrNetworkMismatch, m.cfg.ChainID, err)
	}
	return nil
}

// negotiate dials the signer, requests accounts and makes sure the session
// is attached to the target chain before handing it out.
func (m *Manager) negotiate(ctx context.Context) (*interfaces.WalletSession, error) {
	client, err := m.dial(ctx, m.cfg.SignerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: dialing %s: %v", interfaces.ErrSessionUnavailable, m.cfg.SignerURL, err)
	}

	session := &interfaces.WalletSession{
		Client:   client,
		ChainID:  new(big.Int).Set(m.cfg.ChainID),
		CachedAt: time.Now(),
	}

	accounts, err := m.RequestAccounts(ctx, session)
	if err != nil {
		client.Close()
		return nil, err
	}
	if len(accounts) == 0 {
		client.Close()
		return nil, fmt.Errorf("%w: signer exposed no accounts", interfaces.ErrSessionUnavailable)
	}
	session.Accounts = accounts

	if err := m.ensureChain(ctx, session); err != nil {
		client.Close()
		return nil, err
	}

	m.log.Info("Negotiated signer session",
		slog.String("account", accounts[0].Hex()),
		slog.String("chainID", m.cfg.ChainID.String()))

	return session, nil
}

// ensureChain reads which chain the signer is attached to and requests a
// switch when it differs from the configured one.
func (m *Manager) ensureChain(ctx context.Context, session *interfaces.WalletSession) error {
	var current hexutil.Big
	if err := session.Client.CallContext(ctx, &current, "eth_chainId"); err != nil {
		return fmt.Errorf("%w: reading signer chain: %v", interfaces.ErrSessionUnavailable, err)
	}
	if (*big.Int)(&current).Cmp(m.cfg.ChainID) == 0 {
		return nil
	}

	m.log.Info("Signer attached to another chain, requesting switch",
		slog.String("signerChain", (*big.Int)(&current).String()),
		slog.String("chainID", m.cfg.ChainID.String()))
	return m.SwitchNetwork(ctx, session)
}

// probe checks session liveness with a zero-side-effect account query.
func (m *Manager) probe(ctx context.Context, session *interfaces.WalletSession) bool {
	var accounts []common.Address
	if err := session.Client.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return false
	}
	return len(accounts) > 0
}

// watchDisconnect invalidates the cache when the remote side drops, so the
// next Acquire transparently renegotiates. Stops when the session is
// released or replaced.
func (m *Manager) watchDisconnect(ctx context.Context, session *interfaces.WalletSession) {
	ticker := time.NewTicker(m.cfg.ProbeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if m.probe(ctx, session) {
				continue
			}
			m.log.Warn("Remote signer dropped the session, clearing cache")
			m.mu.Lock()
			if m.session == session {
				m.dropLocked()
			}
			m.mu.Unlock()
			return
		}
	}
}

// dropLocked tears down the cached session. Caller holds m.mu.
func (m *Manager) dropLocked() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	if m.session != nil {
		m.session.Client.Close()
		m.session = nil
	}
}

// signTransactionResult mirrors the signer's eth_signTransaction response.
type signTransactionResult struct {
	Raw hexutil.Bytes      `json:"raw"`
	Tx  *types.Transaction `json:"tx"`
}

// signRemote sends the transaction to the remote signer for signing.
func signRemote(session *interfaces.WalletSession, addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
	data := hexutil.Bytes(tx.Data())
	var to *common.MixedcaseAddress
	if tx.To() != nil {
		t := common.NewMixedcaseAddress(*tx.To())
		to = &t
	}
	args := &apitypes.SendTxArgs{
		Data:  &data,
		Nonce: hexutil.Uint64(tx.Nonce()),
		Value: hexutil.Big(*tx.Value()),
		Gas:   hexutil.Uint64(tx.Gas()),
		To:    to,
		From:  common.NewMixedcaseAddress(addr),
	}
	switch tx.Type() {
	case types.LegacyTxType, types.AccessListTxType:
		args.GasPrice = (*hexutil.Big)(tx.GasPrice())
	case types.DynamicFeeTxType:
		args.MaxFeePerGas = (*hexutil.Big)(tx.GasFeeCap())
		args.MaxPriorityFeePerGas = (*hexutil.Big)(tx.GasTipCap())
	}
	if tx.Type() != types.LegacyTxType {
		args.ChainID = (*hexutil.Big)(tx.ChainId())
	}

	var res signTransactionResult
	if err := session.Client.CallContext(context.Background(), &res, "eth_signTransaction", args); err != nil {
		if IsUserRejection(err) {
			return nil, fmt.Errorf("%w: %v", interfaces.ErrUserRejected, err)
		}
		return nil, err
	}
	return res.Tx, nil
}

// IsUserRejection detects the EIP-1193 user-rejected error code or the common
// textual variants signers return.
func IsUserRejection(err error) bool {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == 4001 {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, needle := range []string{"rejected", "denied", "declined"} {
		if strings.Contains(msg, needle) {
			return true
		}
	}
	return false
}
