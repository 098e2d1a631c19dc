package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/saferoads/incidentd/bindings/incidentmanager"
	"github.com/saferoads/incidentd/interfaces"
	"github.com/saferoads/incidentd/metrics"
	"github.com/saferoads/incidentd/wallet"
)

const (
	defaultConfirmTimeout  = 90 * time.Second
	defaultReceiptInterval = time.Second
)

// Config holds the incident contract parameters.
type Config struct {
	// ContractAddr is the deployed incident contract.
	ContractAddr common.Address

	// Gateway is the public gateway host used when logging access URLs for
	// submitted documents.
	Gateway string

	// GasLimit caps reportIncident transactions. Zero lets the signer
	// estimate.
	GasLimit uint64

	// ConfirmTimeout bounds the receipt wait, ReceiptInterval its poll
	// cadence.
	ConfirmTimeout  time.Duration
	ReceiptInterval time.Duration
}

func (c *Config) withDefaults() (Config, error) {
	out := *c
	if out.ContractAddr == (common.Address{}) {
		return out, fmt.Errorf("%w: incident contract address is required", interfaces.ErrConfigurationMissing)
	}
	if out.ConfirmTimeout == 0 {
		out.ConfirmTimeout = defaultConfirmTimeout
	}
	if out.ReceiptInterval == 0 {
		out.ReceiptInterval = defaultReceiptInterval
	}
	return out, nil
}

// incidentWriter is the transacting contract surface, satisfied by the
// generated transactor.
type incidentWriter interface {
	ReportIncident(opts *bind.TransactOpts, description string) (*types.Transaction, error)
	VerifyIncident(opts *bind.TransactOpts, id *big.Int) (*types.Transaction, error)
}

// incidentReader is the reading contract surface used for id recovery.
type incidentReader interface {
	GetLastIncidentId(opts *bind.CallOpts) (*big.Int, error)
	GetIncident(opts *bind.CallOpts, id *big.Int) (*big.Int, string, common.Address, *big.Int, bool, error)
}

// receiptSource resolves transaction receipts, satisfied by ethclient.
type receiptSource interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// optsBuilder produces transaction options whose signer routes through the
// session's remote signer. Satisfied by wallet.Manager.
type optsBuilder interface {
	TransactOpts(session *interfaces.WalletSession, from common.Address) *bind.TransactOpts
}

// Submitter implements interfaces.LedgerSubmitter. Each Submit produces a
// distinct on-chain record; there is no idempotency and no internal retry.
type Submitter struct {
	cfg      Config
	log      *slog.Logger
	writer   incidentWriter
	reader   incidentReader
	receipts receiptSource
	opts     optsBuilder
	parser   *incidentmanager.IncidentmanagerFilterer
}

// NewSubmitter dials the chain endpoint and binds the incident contract.
func NewSubmitter(ctx context.Context, cfg Config, rpcURL string, opts optsBuilder, log *slog.Logger) (*Submitter, error) {
	full, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	if rpcURL == "" {
		return nil, fmt.Errorf("%w: chain rpc endpoint is required", interfaces.ErrConfigurationMissing)
	}

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dialing chain endpoint: %w", err)
	}
	contract, err := incidentmanager.NewIncidentmanager(full.ContractAddr, client)
	if err != nil {
		return nil, fmt.Errorf("binding incident contract: %w", err)
	}
	parser, err := incidentmanager.NewIncidentmanagerFilterer(full.ContractAddr, client)
	if err != nil {
		return nil, fmt.Errorf("binding incident contract filterer: %w", err)
	}

	return &Submitter{
		cfg:      full,
		log:      log,
		writer:   &contract.IncidentmanagerTransactor,
		reader:   &contract.IncidentmanagerCaller,
		receipts: client,
		opts:     opts,
		parser:   parser,
	}, nil
}

// Submit sends reportIncident carrying the raw content id, waits for
// inclusion and returns the recorded incident. Access URLs are derived from
// the id at display time, never stored on chain. The incident id is read
// from the IncidentReported receipt log, falling back to a contract read;
// when neither recovers it the record is returned with a nil ID rather than
// failing a transaction that did confirm.
func (s *Submitter) Submit(ctx context.Context, contentID string, session *interfaces.WalletSession, from common.Address) (*interfaces.LedgerRecord, error) {
	txOpts := s.opts.TransactOpts(session, from)
	txOpts.Context = ctx
	txOpts.GasLimit = s.cfg.GasLimit

	tx, err := s.writer.ReportIncident(txOpts, contentID)
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues("rejected").Inc()
		if wallet.IsUserRejection(err) {
			return nil, fmt.Errorf("%w: %v", interfaces.ErrSubmissionRejected, err)
		}
		return nil, fmt.Errorf("%w: sending reportIncident: %v", interfaces.ErrSubmissionRejected, err)
	}

	s.log.Info("Submitted incident report",
		slog.String("tx", tx.Hash().Hex()),
		slog.String("cid", contentID),
		slog.String("url", interfaces.GatewayURL(s.cfg.Gateway, contentID)))

	receipt, err := s.waitReceipt(ctx, tx.Hash())
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues("unconfirmed").Inc()
		return nil, fmt.Errorf("%w: tx %s: %v", interfaces.ErrSubmissionUnconfirmed, tx.Hash(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		metrics.SubmissionsTotal.WithLabelValues("reverted").Inc()
		return nil, fmt.Errorf("%w: tx %s", interfaces.ErrSubmissionReverted, tx.Hash())
	}

	record := &interfaces.LedgerRecord{
		TxHash:      tx.Hash(),
		BlockNumber: receipt.BlockNumber.Uint64(),
	}
	s.recoverRecord(ctx, receipt, record)

	metrics.SubmissionsTotal.WithLabelValues("ok").Inc()
	s.log.Info("Incident report confirmed",
		slog.String("tx", tx.Hash().Hex()),
		slog.Uint64("block", record.BlockNumber),
		slog.Any("incidentId", record.ID))
	return record, nil
}

// Verify marks an incident verified, releasing its reward. Owner-only on
// the contract side; a call from any other account reverts.
func (s *Submitter) Verify(ctx context.Context, id *big.Int, session *interfaces.WalletSession, from common.Address) (common.Hash, error) {
	txOpts := s.opts.TransactOpts(session, from)
	txOpts.Context = ctx

	tx, err := s.writer.VerifyIncident(txOpts, id)
	if err != nil {
		if wallet.IsUserRejection(err) {
			return common.Hash{}, fmt.Errorf("%w: %v", interfaces.ErrSubmissionRejected, err)
		}
		return common.Hash{}, fmt.Errorf("%w: sending verifyIncident: %v", interfaces.ErrSubmissionRejected, err)
	}

	receipt, err := s.waitReceipt(ctx, tx.Hash())
	if err != nil {
		return tx.Hash(), fmt.Errorf("%w: tx %s: %v", interfaces.ErrSubmissionUnconfirmed, tx.Hash(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return tx.Hash(), fmt.Errorf("%w: tx %s", interfaces.ErrSubmissionReverted, tx.Hash())
	}

	s.log.Info("Incident verified", slog.String("id", id.String()), slog.String("tx", tx.Hash().Hex()))
	return tx.Hash(), nil
}

// waitReceipt polls for the receipt until the confirmation budget runs out.
func (s *Submitter) waitReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ConfirmTimeout)
	defer cancel()

	ticker := time.NewTicker(s.cfg.ReceiptInterval)
	defer ticker.Stop()

	for {
		receipt, err := s.receipts.TransactionReceipt(ctx, txHash)
		if err == nil && receipt != nil {
			return receipt, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("no receipt within %s", s.cfg.ConfirmTimeout)
		case <-ticker.C:
		}
	}
}

// recoverRecord fills incident details from the IncidentReported log, or
// from a contract read when the log is missing.
func (s *Submitter) recoverRecord(ctx context.Context, receipt *types.Receipt, record *interfaces.LedgerRecord) {
	for _, l := range receipt.Logs {
		if l.Address != s.cfg.ContractAddr {
			continue
		}
		ev, err := s.parser.ParseIncidentReported(*l)
		if err != nil {
			continue
		}
		record.ID = ev.Id
		record.Description = ev.Description
		record.Reporter = ev.ReportedBy
		record.Timestamp = time.Unix(ev.Timestamp.Int64(), 0).UTC()
		return
	}

	s.log.Warn("IncidentReported log missing from receipt, falling back to contract read",
		slog.String("tx", record.TxHash.Hex()))

	callOpts := &bind.CallOpts{Context: ctx}
	id, err := s.reader.GetLastIncidentId(callOpts)
	if err != nil {
		s.log.Warn("Incident id unrecoverable", slog.String("err", err.Error()))
		return
	}
	gotID, description, reporter, timestamp, _, err := s.reader.GetIncident(callOpts, id)
	if err != nil {
		record.ID = id
		return
	}
	record.ID = gotID
	record.Description = description
	record.Reporter = reporter
	record.Timestamp = time.Unix(timestamp.Int64(), 0).UTC()
}
