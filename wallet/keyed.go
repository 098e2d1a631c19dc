package wallet

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/saferoads/incidentd/interfaces"
)

// Keyed signs transactions with a local private key instead of a remote
// signer. Used by the relay, which holds its own funded key and never has a
// signer session.
type Keyed struct {
	opts    *bind.TransactOpts
	address common.Address
}

// NewKeyed parses a hex private key and binds it to the chain.
func NewKeyed(privateKeyHex string, chainID *big.Int) (*Keyed, error) {
	if privateKeyHex == "" {
		return nil, fmt.Errorf("%w: relay private key is required", interfaces.ErrConfigurationMissing)
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid relay private key: %v", interfaces.ErrConfigurationMissing, err)
	}
	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("binding key to chain %s: %w", chainID, err)
	}
	return &Keyed{opts: opts, address: crypto.PubkeyToAddress(key.PublicKey)}, nil
}

// Address returns the signing account.
func (k *Keyed) Address() common.Address {
	return k.address
}

// TransactOpts returns fresh options signing with the local key. The session
// argument is ignored; a keyed signer has none.
func (k *Keyed) TransactOpts(session *interfaces.WalletSession, from common.Address) *bind.TransactOpts {
	return &bind.TransactOpts{
		From: k.address,
		Signer: func(addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
			return k.opts.Signer(addr, tx)
		},
	}
}
