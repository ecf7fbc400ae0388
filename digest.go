// Package sha2sum computes hex-encoded SHA-2 digests of files.
//
// Each entry point validates that its path names an existing regular
// file, reads the whole file into memory, and returns the digest as a
// lowercase hex string. Blocking and context-aware forms are provided
// with identical result semantics.
package sha2sum

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io/fs"
	"os"
	"strings"
)

// Algorithm selects a member of the SHA-2 family.
type Algorithm int

const (
	SHA224 Algorithm = iota
	SHA256
	SHA384
	SHA512
)

// String returns the lowercase name of the algorithm ("sha256" etc.).
func (a Algorithm) String() string {
	switch a {
	case SHA224:
		return "sha224"
	case SHA256:
		return "sha256"
	case SHA384:
		return "sha384"
	case SHA512:
		return "sha512"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Size returns the digest length in bytes. Hex output is twice this.
func (a Algorithm) Size() int {
	switch a {
	case SHA224:
		return sha256.Size224
	case SHA256:
		return sha256.Size
	case SHA384:
		return sha512.Size384
	case SHA512:
		return sha512.Size
	}
	panic("sha2sum: unknown algorithm")
}

// New returns a fresh hash accumulator for the algorithm. Like
// crypto.Hash.New, it panics on a value outside the defined constants.
func (a Algorithm) New() hash.Hash {
	switch a {
	case SHA224:
		return sha256.New224()
	case SHA256:
		return sha256.New()
	case SHA384:
		return sha512.New384()
	case SHA512:
		return sha512.New()
	}
	panic("sha2sum: unknown algorithm")
}

// ParseAlgorithm maps a name like "sha256" or "SHA-256" to its Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ReplaceAll(strings.ToLower(s), "-", "") {
	case "sha224":
		return SHA224, nil
	case "sha256":
		return SHA256, nil
	case "sha384":
		return SHA384, nil
	case "sha512":
		return SHA512, nil
	}
	return 0, fmt.Errorf("unknown algorithm %q (use sha224, sha256, sha384 or sha512)", s)
}

// File computes the digest of the file at path and returns it hex-encoded.
//
// A missing path fails with an error satisfying errors.Is(err,
// fs.ErrNotExist); a path that exists but is not a regular file (a
// directory, say) fails with fs.ErrInvalid before any read happens. Errors
// from the read itself are returned unchanged, so a file removed between
// the check and the read surfaces as the read's own error rather than a
// wrong digest.
func File(path string, alg Algorithm) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", &fs.PathError{Op: "digest", Path: path, Err: fs.ErrInvalid}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	h := alg.New()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SHA224File computes the SHA-224 digest of the file at path.
func SHA224File(path string) (string, error) { return File(path, SHA224) }

// SHA256File computes the SHA-256 digest of the file at path.
func SHA256File(path string) (string, error) { return File(path, SHA256) }

// SHA384File computes the SHA-384 digest of the file at path.
func SHA384File(path string) (string, error) { return File(path, SHA384) }

// SHA512File computes the SHA-512 digest of the file at path.
func SHA512File(path string) (string, error) { return File(path, SHA512) }
