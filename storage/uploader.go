package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/saferoads/incidentd/interfaces"
	"github.com/saferoads/incidentd/metrics"
)

// Backend stores a document and returns its content identifier.
type Backend interface {
	Put(ctx context.Context, data []byte, filename string) (string, error)
}

// Uploader implements interfaces.StorageUploader on top of a backend. It
// validates the credential before touching the network, emits advisory
// progress and maps every backend failure to ErrUploadFailed. There is no
// internal retry: the caller decides whether to re-run the stage.
type Uploader struct {
	backend  Backend
	progress interfaces.ProgressFunc
	log      *slog.Logger
}

// NewUploader wires an uploader. progress may be nil.
func NewUploader(backend Backend, progress interfaces.ProgressFunc, log *slog.Logger) *Uploader {
	if progress == nil {
		progress = func(int) {}
	}
	return &Uploader{backend: backend, progress: progress, log: log}
}

// Upload stores data as a single named object and returns its content
// identifier.
func (u *Uploader) Upload(ctx context.Context, data []byte, filename string, cred interfaces.StorageCredential) (string, error) {
	if err := cred.Validate(); err != nil {
		metrics.UploadsTotal.WithLabelValues("invalid_credential").Inc()
		return "", err
	}
	u.progress(10)

	u.log.Info("Uploading document",
		slog.String("filename", filename),
		slog.Int("bytes", len(data)),
		slog.String("space", cred.SpaceID))
	u.progress(30)

	cid, err := u.backend.Put(ctx, data, filename)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: %v", interfaces.ErrUploadFailed, err)
	}
	u.progress(100)

	metrics.UploadsTotal.WithLabelValues("ok").Inc()
	u.log.Info("Upload complete",
		slog.String("cid", cid),
		slog.String("url", interfaces.GatewayURL("", cid)))
	return cid, nil
}
