package storage

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/saferoads/incidentd/interfaces"
)

// BackendFromURI maps a storage URI to a concrete backend.
// Supported schemes:
//
//	ipfs://<api-host:port>          IPFS node API (default 127.0.0.1:5001)
//	file:///<directory>             local content-addressed directory
//	s3://<bucket>/<prefix>?region=  S3 bucket
func BackendFromURI(uri string) (Backend, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid storage uri %q: %v", interfaces.ErrConfigurationMissing, uri, err)
	}

	switch parsed.Scheme {
	case "ipfs":
		addr := parsed.Host
		if addr == "" {
			addr = "127.0.0.1:5001"
		}
		return newIPFSBackend(addr), nil
	case "file":
		dir := parsed.Path
		if parsed.Host != "" {
			dir = parsed.Host + dir
		}
		if dir == "" {
			return nil, fmt.Errorf("%w: file storage uri %q has no path", interfaces.ErrConfigurationMissing, uri)
		}
		return newFileBackend(dir), nil
	case "s3":
		bucket := parsed.Host
		if bucket == "" {
			return nil, fmt.Errorf("%w: s3 storage uri %q has no bucket", interfaces.ErrConfigurationMissing, uri)
		}
		prefix := strings.TrimPrefix(parsed.Path, "/")
		region := parsed.Query().Get("region")
		return newS3Backend(bucket, prefix, region)
	default:
		return nil, fmt.Errorf("%w: unsupported storage scheme %q", interfaces.ErrConfigurationMissing, parsed.Scheme)
	}
}
