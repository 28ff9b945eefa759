package values

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"strings"
)

// Algorithm identifies a supported content-hash algorithm.
type Algorithm string

const (
	SHA256 Algorithm = "sha256"
	SHA512 Algorithm = "sha512"
)

// ParseAlgorithm validates an algorithm identifier from caller configuration.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case SHA256, SHA512:
		return Algorithm(s), nil
	default:
		return "", fmt.Errorf("unsupported digest algorithm: %s", s)
	}
}

// New returns a fresh hash context for the algorithm.
func (a Algorithm) New() hash.Hash {
	switch a {
	case SHA512:
		return sha512.New()
	default:
		return sha256.New()
	}
}

// Size returns the algorithm's digest length in bytes.
func (a Algorithm) Size() int {
	switch a {
	case SHA512:
		return sha512.Size
	default:
		return sha256.Size
	}
}

// Digest represents a content hash with its algorithm.
type Digest struct {
	algorithm Algorithm
	value     string // hex-encoded, lowercase
}

// NewDigest creates a digest from an algorithm and a hex value.
// The value must decode to exactly the algorithm's output size, so a
// truncated digest never passes as valid.
func NewDigest(algorithm Algorithm, hexValue string) (Digest, error) {
	if _, err := ParseAlgorithm(string(algorithm)); err != nil {
		return Digest{}, err
	}
	raw, err := hex.DecodeString(hexValue)
	if err != nil {
		return Digest{}, fmt.Errorf("invalid hex digest value: %w", err)
	}
	if len(raw) != algorithm.Size() {
		return Digest{}, fmt.Errorf("digest value is %d bytes, %s produces %d", len(raw), algorithm, algorithm.Size())
	}
	return Digest{
		algorithm: algorithm,
		value:     strings.ToLower(hexValue),
	}, nil
}

// ParseDigest parses a digest string (e.g., "sha256:abc123...").
func ParseDigest(s string) (Digest, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return Digest{}, fmt.Errorf("invalid digest format: %s", s)
	}
	return NewDigest(Algorithm(parts[0]), parts[1])
}

// String returns the canonical digest string.
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.value)
}

// Algorithm returns the hash algorithm.
func (d Digest) Algorithm() Algorithm {
	return d.algorithm
}

// Hex returns the lowercase hex-encoded hash value.
func (d Digest) Hex() string {
	return d.value
}

// IsZero reports whether the digest is unset.
func (d Digest) IsZero() bool {
	return d.value == ""
}

// Equals checks equality with another digest.
func (d Digest) Equals(other Digest) bool {
	return d.algorithm == other.algorithm && d.value == other.value
}

// ComputeDigest streams reader contents through the algorithm.
// Memory stays bounded by the copy buffer regardless of input size.
func ComputeDigest(r io.Reader, algorithm Algorithm) (Digest, error) {
	h := algorithm.New()
	if _, err := io.Copy(h, r); err != nil {
		return Digest{}, err
	}
	return Digest{
		algorithm: algorithm,
		value:     hex.EncodeToString(h.Sum(nil)),
	}, nil
}
