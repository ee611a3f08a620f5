// Package digest computes the SHA-256 of a file on disk by streaming it in
// fixed-size chunks.
package digest

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"leash/internal/policy"
)

const chunkSize = 32 * 1024

// SHA256 computes the SHA-256 digest of the file at path, streaming it in
// chunkSize-byte reads. Fails with ErrIO when the file cannot be opened or
// read.
func SHA256(path string) ([32]byte, error) {
	var out [32]byte

	f, err := os.Open(path)
	if err != nil {
		return out, fmt.Errorf("%w: opening %s: %w", policy.ErrIO, path, err)
	}
	defer f.Close()

	h := sha256.New()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return out, fmt.Errorf("%w: reading %s: %w", policy.ErrIO, path, err)
	}

	copy(out[:], h.Sum(nil))
	return out, nil
}
