// Package storage uploads generated documents to content-addressed storage.
// The backend is selected by URI scheme (ipfs, file, s3); the uploader on
// top validates credentials, emits advisory progress and maps all transport
// failures to a single sentinel so callers can offer a retry.
package storage
