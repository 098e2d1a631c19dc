package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// fileBackend is a content-addressed directory for development and tests.
// Objects are stored under the hex sha256 of their content, which doubles
// as the content identifier.
type fileBackend struct {
	dir string
}

func newFileBackend(dir string) *fileBackend {
	return &fileBackend{dir: dir}
}

func (b *fileBackend) Put(ctx context.Context, data []byte, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating storage directory: %w", err)
	}

	sum := sha256.Sum256(data)
	cid := hex.EncodeToString(sum[:])
	if err := os.WriteFile(filepath.Join(b.dir, cid), data, 0o644); err != nil {
		return "", fmt.Errorf("writing object: %w", err)
	}
	return cid, nil
}
