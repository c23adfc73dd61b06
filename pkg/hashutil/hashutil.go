package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"

	"lukechampine.com/blake3"
)

type HashAlgo string

const (
	HashAlgoSHA256 HashAlgo = "sha256"
	HashAlgoBLAKE3 HashAlgo = "blake3"
)

// ParseHashAlgo validates a user-supplied algorithm name.
func ParseHashAlgo(name string) (HashAlgo, error) {
	switch HashAlgo(name) {
	case HashAlgoSHA256, HashAlgoBLAKE3:
		return HashAlgo(name), nil
	default:
		return "", fmt.Errorf("unsupported hash algorithm: %s", name)
	}
}

// HashBytes returns the hash of bytes as a hex string using the specified algorithm.
// Supported algorithms: "sha256" and "blake3".
func HashBytes(data []byte, algo HashAlgo) (string, error) {
	h, err := newHash(algo)
	if err != nil {
		return "", err
	}
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashParts hashes parts as one message. Parts are NUL-separated so that
// ("ab", "c") and ("a", "bc") never collide.
func HashParts(algo HashAlgo, parts ...string) (string, error) {
	h, err := newHash(algo)
	if err != nil {
		return "", err
	}
	for i, part := range parts {
		if i > 0 {
			h.Write([]byte{0})
		}
		h.Write([]byte(part))
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ShortHash is HashParts truncated to the first length hex characters.
// A length outside (0, full digest length] returns the full digest.
func ShortHash(algo HashAlgo, length int, parts ...string) (string, error) {
	full, err := HashParts(algo, parts...)
	if err != nil {
		return "", err
	}
	if length <= 0 || length >= len(full) {
		return full, nil
	}
	return full[:length], nil
}

func newHash(algo HashAlgo) (hash.Hash, error) {
	switch algo {
	case HashAlgoSHA256:
		return sha256.New(), nil
	case HashAlgoBLAKE3:
		return blake3.New(32, nil), nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm: %s", algo)
	}
}
