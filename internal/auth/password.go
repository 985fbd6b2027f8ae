package auth

import (
	"crypto"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	_ "golang.org/x/crypto/sha3" // registers crypto.SHA3_512
)

const digestHash = crypto.SHA3_512

// ErrDigestUnavailable means the digest algorithm is not linked into the
// binary. This is an environment fault, not a bad password.
var ErrDigestUnavailable = errors.New("credential digest algorithm unavailable")

// HashPassword returns the one-way digest stored as a member credential:
// the lowercase hex encoding of the SHA3-512 sum, a fixed 128 characters.
// The digest is deterministic so stored credentials can be compared by
// recomputation.
func HashPassword(password string) (string, error) {
	if !digestHash.Available() {
		return "", ErrDigestUnavailable
	}
	h := digestHash.New()
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// VerifyPassword recomputes the digest of password and compares it to the
// stored hash in constant time.
func VerifyPassword(hash, password string) (bool, error) {
	sum, err := HashPassword(password)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(hash), []byte(sum)) == 1, nil
}
