// Package document renders incident reports as single-page PDF documents.
// Generation is a pure transform: identical report fields produce identical
// bytes, which keeps the uploaded content identifier stable across retries.
package document
