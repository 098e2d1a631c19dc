// Package identity reconciles off-chain identity proofs with the on-chain
// attestation registry.
//
// A proof handshake completes against the identity app before the resulting
// attestation lands on-chain, so a bounded polling loop bridges the gap:
// after a successful handshake the registry is re-read every two seconds up
// to ten times. Exhausting the budget is a soft success since the handshake
// itself already succeeded.
package identity
