package storage

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saferoads/incidentd/interfaces"
)

var testCred = interfaces.StorageCredential{
	Identity: "reporter@example.org",
	SpaceID:  "did:key:z6MkhaXgBZDvotDkL5257faiztiGiC2QtKLGpbnnEGta2doK",
}

type fakeBackend struct {
	cid  string
	err  error
	data []byte
	name string
}

func (f *fakeBackend) Put(ctx context.Context, data []byte, filename string) (string, error) {
	f.data = data
	f.name = filename
	return f.cid, f.err
}

func TestUploadReturnsCID(t *testing.T) {
	backend := &fakeBackend{cid: "bafy123"}
	var percents []int
	u := NewUploader(backend, func(p int) { percents = append(percents, p) }, slog.New(slog.DiscardHandler))

	cid, err := u.Upload(context.Background(), []byte("doc"), "incident-report.pdf", testCred)
	require.NoError(t, err)
	assert.Equal(t, "bafy123", cid)
	assert.Equal(t, []byte("doc"), backend.data)
	assert.Equal(t, "incident-report.pdf", backend.name)

	// Progress is advisory but monotonically non-decreasing.
	require.NotEmpty(t, percents)
	for i := 1; i < len(percents); i++ {
		assert.GreaterOrEqual(t, percents[i], percents[i-1])
	}
	assert.Equal(t, 100, percents[len(percents)-1])
}

func TestUploadValidatesCredential(t *testing.T) {
	u := NewUploader(&fakeBackend{cid: "bafy123"}, nil, slog.New(slog.DiscardHandler))

	_, err := u.Upload(context.Background(), []byte("doc"), "f.pdf", interfaces.StorageCredential{})
	require.ErrorIs(t, err, interfaces.ErrConfigurationMissing)

	_, err = u.Upload(context.Background(), []byte("doc"), "f.pdf", interfaces.StorageCredential{
		Identity: "not-an-email", SpaceID: testCred.SpaceID,
	})
	require.ErrorIs(t, err, interfaces.ErrConfigurationMissing)

	_, err = u.Upload(context.Background(), []byte("doc"), "f.pdf", interfaces.StorageCredential{
		Identity: testCred.Identity, SpaceID: "did:web:example.org",
	})
	require.ErrorIs(t, err, interfaces.ErrConfigurationMissing)
}

func TestUploadMapsBackendFailure(t *testing.T) {
	u := NewUploader(&fakeBackend{err: errors.New("tcp reset")}, nil, slog.New(slog.DiscardHandler))

	_, err := u.Upload(context.Background(), []byte("doc"), "f.pdf", testCred)
	require.ErrorIs(t, err, interfaces.ErrUploadFailed)
	assert.Contains(t, err.Error(), "tcp reset")
}

func TestFileBackend(t *testing.T) {
	dir := t.TempDir()
	b := newFileBackend(filepath.Join(dir, "objects"))

	cid, err := b.Put(context.Background(), []byte("report bytes"), "f.pdf")
	require.NoError(t, err)
	require.Len(t, cid, 64)

	stored, err := os.ReadFile(filepath.Join(dir, "objects", cid))
	require.NoError(t, err)
	assert.Equal(t, []byte("report bytes"), stored)

	// Content addressing: same bytes, same id.
	cid2, err := b.Put(context.Background(), []byte("report bytes"), "g.pdf")
	require.NoError(t, err)
	assert.Equal(t, cid, cid2)
}

func TestBackendFromURI(t *testing.T) {
	b, err := BackendFromURI("ipfs://127.0.0.1:5001")
	require.NoError(t, err)
	assert.IsType(t, &ipfsBackend{}, b)

	b, err = BackendFromURI("file:///tmp/incident-objects")
	require.NoError(t, err)
	assert.IsType(t, &fileBackend{}, b)

	_, err = BackendFromURI("ftp://example.org")
	require.ErrorIs(t, err, interfaces.ErrConfigurationMissing)

	_, err = BackendFromURI("s3://")
	require.ErrorIs(t, err, interfaces.ErrConfigurationMissing)
}
