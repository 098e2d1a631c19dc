package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/saferoads/incidentd/bindings/incidentmanager"
	"github.com/saferoads/incidentd/interfaces"
)

// registryCaller is the read-only contract surface, satisfied by the
// generated caller.
type registryCaller interface {
	GetLastIncidentId(opts *bind.CallOpts) (*big.Int, error)
	GetIncident(opts *bind.CallOpts, id *big.Int) (*big.Int, string, common.Address, *big.Int, bool, error)
	RewardAmount(opts *bind.CallOpts) (*big.Int, error)
	RewardClaimed(opts *bind.CallOpts, id *big.Int) (bool, error)
}

// Reader serves the incident read model: single incidents, per-reporter
// listings and reward tallies.
type Reader struct {
	caller registryCaller
	log    *slog.Logger
}

// NewReader dials the chain endpoint and binds the incident contract
// read-only.
func NewReader(ctx context.Context, contractAddr common.Address, rpcURL string, log *slog.Logger) (*Reader, error) {
	if contractAddr == (common.Address{}) {
		return nil, fmt.Errorf("%w: incident contract address is required", interfaces.ErrConfigurationMissing)
	}
	if rpcURL == "" {
		return nil, fmt.Errorf("%w: chain rpc endpoint is required", interfaces.ErrConfigurationMissing)
	}
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dialing chain endpoint: %w", err)
	}
	caller, err := incidentmanager.NewIncidentmanagerCaller(contractAddr, client)
	if err != nil {
		return nil, fmt.Errorf("binding incident contract: %w", err)
	}
	return &Reader{caller: caller, log: log}, nil
}

// Incident returns a single incident by id.
func (r *Reader) Incident(ctx context.Context, id *big.Int) (*interfaces.Incident, error) {
	opts := &bind.CallOpts{Context: ctx}
	gotID, description, reporter, timestamp, verified, err := r.caller.GetIncident(opts, id)
	if err != nil {
		return nil, fmt.Errorf("reading incident %s: %w", id, err)
	}
	return &interfaces.Incident{
		ID:          gotID,
		Description: description,
		Reporter:    reporter,
		Timestamp:   time.Unix(timestamp.Int64(), 0).UTC(),
		Verified:    verified,
	}, nil
}

// LastIncidentID returns the id of the most recently reported incident, or
// zero when none exist.
func (r *Reader) LastIncidentID(ctx context.Context) (*big.Int, error) {
	id, err := r.caller.GetLastIncidentId(&bind.CallOpts{Context: ctx})
	if err != nil {
		return nil, fmt.Errorf("reading last incident id: %w", err)
	}
	return id, nil
}

// RewardAmount returns the per-incident reward in wei.
func (r *Reader) RewardAmount(ctx context.Context) (*big.Int, error) {
	amount, err := r.caller.RewardAmount(&bind.CallOpts{Context: ctx})
	if err != nil {
		return nil, fmt.Errorf("reading reward amount: %w", err)
	}
	return amount, nil
}

// ListByReporter walks all incidents and returns those filed by reporter,
// newest first. Incident ids are dense starting at 1, so a full walk is a
// bounded number of reads.
func (r *Reader) ListByReporter(ctx context.Context, reporter common.Address) ([]*interfaces.Incident, error) {
	last, err := r.LastIncidentID(ctx)
	if err != nil {
		return nil, err
	}

	var incidents []*interfaces.Incident
	one := big.NewInt(1)
	for id := new(big.Int).Set(last); id.Sign() > 0; id.Sub(id, one) {
		incident, err := r.Incident(ctx, new(big.Int).Set(id))
		if err != nil {
			return nil, err
		}
		if incident.Reporter == reporter {
			incidents = append(incidents, incident)
		}
	}
	return incidents, nil
}

// RewardSummary tallies a reporter's incidents and outstanding rewards.
type RewardSummary struct {
	Reported int
	Verified int
	Claimed  int

	// Pending is the unclaimed reward balance in wei.
	Pending *big.Int
}

// Rewards computes the reward summary for a reporter.
func (r *Reader) Rewards(ctx context.Context, reporter common.Address) (*RewardSummary, error) {
	incidents, err := r.ListByReporter(ctx, reporter)
	if err != nil {
		return nil, err
	}
	amount, err := r.RewardAmount(ctx)
	if err != nil {
		return nil, err
	}

	summary := &RewardSummary{Reported: len(incidents), Pending: new(big.Int)}
	opts := &bind.CallOpts{Context: ctx}
	for _, incident := range incidents {
		if !incident.Verified {
			continue
		}
		summary.Verified++
		claimed, err := r.caller.RewardClaimed(opts, incident.ID)
		if err != nil {
			return nil, fmt.Errorf("reading reward state for incident %s: %w", incident.ID, err)
		}
		if claimed {
			summary.Claimed++
		} else {
			summary.Pending.Add(summary.Pending, amount)
		}
	}
	return summary, nil
}
