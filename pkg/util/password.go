package util

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Digest formats accepted for the admin credential. The sha256 form is the
// canonical one produced by the `hash` command; bcrypt digests generated
// elsewhere are accepted too.
const sha256DigestPrefix = "sha256:"

// GeneratePasswordDigest returns the canonical digest of a password:
// "sha256:" followed by the hex encoded SHA-256 of the input. Deterministic,
// the same input always yields the same digest.
func GeneratePasswordDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return sha256DigestPrefix + hex.EncodeToString(sum[:])
}

// GenerateBcryptDigest generates a bcrypt hash of a password.
func GenerateBcryptDigest(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

// VerifyPasswordDigest verifies a password against a stored digest.
// The digest format is detected from its prefix: "$2..." means bcrypt,
// "sha256:..." (or a bare 64 char hex string) means SHA-256. The SHA-256
// comparison is constant time since this gates all mutations.
func VerifyPasswordDigest(password, digest string) bool {
	if digest == "" {
		return false
	}
	if strings.HasPrefix(digest, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
	}

	stored := strings.TrimPrefix(digest, sha256DigestPrefix)
	want, err := hex.DecodeString(strings.ToLower(stored))
	if err != nil || len(want) != sha256.Size {
		return false
	}
	got := sha256.Sum256([]byte(password))
	return subtle.ConstantTimeCompare(got[:], want) == 1
}
