package storage

import (
	"bytes"
	"context"
	"fmt"

	ipfsapi "github.com/ipfs/go-ipfs-api"
)

// ipfsBackend stores documents on an IPFS node and pins them so the content
// stays resolvable through public gateways.
type ipfsBackend struct {
	client *ipfsapi.Shell
}

func newIPFSBackend(addr string) *ipfsBackend {
	return &ipfsBackend{client: ipfsapi.NewShell(addr)}
}

func (b *ipfsBackend) Put(ctx context.Context, data []byte, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	// The shell API has no per-request context; the node-side timeout bounds
	// the call.
	cid, err := b.client.Add(bytes.NewReader(data), ipfsapi.Pin(true))
	if err != nil {
		return "", fmt.Errorf("ipfs add: %w", err)
	}
	return cid, nil
}
