package interfaces

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
)

// DefaultGateway is the public IPFS gateway used to derive access URLs for
// uploaded reports.
const DefaultGateway = "w3s.link"

// ElderlyInvolved captures whether an elderly person was involved in the
// reported incident. The form allows an explicit unknown.
type ElderlyInvolved string

const (
	ElderlyYes     ElderlyInvolved = "yes"
	ElderlyNo      ElderlyInvolved = "no"
	ElderlyUnknown ElderlyInvolved = "unknown"
)

// Valid reports whether v is one of the recognized values.
func (v ElderlyInvolved) Valid() bool {
	switch v {
	case ElderlyYes, ElderlyNo, ElderlyUnknown:
		return true
	}
	return false
}

// Report holds the incident details entered at the form stage. Image is
// optional; all other fields are required before document generation.
type Report struct {
	Location        string
	Description     string
	ElderlyInvolved ElderlyInvolved
	Image           []byte
}

// Validate checks the report is complete enough to generate a document.
func (r *Report) Validate() error {
	if strings.TrimSpace(r.Location) == "" {
		return fmt.Errorf("%w: report location is required", ErrGenerationFailed)
	}
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("%w: report description is required", ErrGenerationFailed)
	}
	if !r.ElderlyInvolved.Valid() {
		return fmt.Errorf("%w: elderly-involved must be yes, no or unknown", ErrGenerationFailed)
	}
	return nil
}

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	spaceDIDRe = regexp.MustCompile(`^did:key:[a-km-zA-HJ-NP-Z1-9]+$`)
)

// StorageCredential authenticates against a remote storage space. Identity is
// the account email, SpaceID the did:key of the target space.
type StorageCredential struct {
	Identity string
	SpaceID  string
}

// Validate checks both fields are present and well formed.
func (c StorageCredential) Validate() error {
	if c.Identity == "" {
		return fmt.Errorf("%w: storage identity (email) is required", ErrConfigurationMissing)
	}
	if !emailRe.MatchString(c.Identity) {
		return fmt.Errorf("%w: storage identity %q is not a valid email", ErrConfigurationMissing, c.Identity)
	}
	if c.SpaceID == "" {
		return fmt.Errorf("%w: storage space DID is required", ErrConfigurationMissing)
	}
	if !spaceDIDRe.MatchString(c.SpaceID) {
		return fmt.Errorf("%w: storage space %q is not a valid did:key", ErrConfigurationMissing, c.SpaceID)
	}
	return nil
}

// WalletSession is a live connection to a remote signer. It is created and
// torn down exclusively by the session manager; every other component treats
// it as read-only and reaches the signer through Client.
type WalletSession struct {
	// Client is the JSON-RPC connection to the remote signer.
	Client *rpc.Client

	// ChainID is the network the session was authorized for.
	ChainID *big.Int

	// Accounts lists the addresses the signer exposed during negotiation.
	Accounts []common.Address

	// CachedAt records when the session was negotiated.
	CachedAt time.Time
}

// LedgerRecord is the structured result of a confirmed reportIncident call.
type LedgerRecord struct {
	ID          *big.Int
	Description string
	Reporter    common.Address
	Timestamp   time.Time
	TxHash      common.Hash
	BlockNumber uint64
}

// Incident is the read model returned by getIncident.
type Incident struct {
	ID          *big.Int
	Description string
	Reporter    common.Address
	Timestamp   time.Time
	Verified    bool
}

// GatewayURL derives the public access URL for an uploaded content id.
func GatewayURL(gateway, cid string) string {
	if gateway == "" {
		gateway = DefaultGateway
	}
	return fmt.Sprintf("https://%s/ipfs/%s", gateway, cid)
}
