// Package wallet manages remote signer sessions over JSON-RPC.
//
// A session is negotiated once, cached process-wide and revalidated with a
// zero-side-effect account query on every reuse. A background watcher probes
// the signer and invalidates the cache when the remote side drops, so the
// next acquisition transparently renegotiates. Transaction signing round-trips
// through the signer via eth_signTransaction; the private key never enters
// this process.
package wallet
