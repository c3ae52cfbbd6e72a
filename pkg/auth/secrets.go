package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

// GenerateSecret returns a random hex secret of n bytes entropy.
func GenerateSecret(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashSecret returns a salted hash in "salt$hexdigest" form. Only the hash is
// stored; the plaintext secret is shown once at issuance.
func HashSecret(secret string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)
	return saltHex + "$" + digest(saltHex, secret), nil
}

// VerifySecret checks a plaintext secret against a stored "salt$hexdigest"
// value in constant time.
func VerifySecret(secret, stored string) bool {
	saltHex, want, ok := strings.Cut(stored, "$")
	if !ok {
		return false
	}
	got := digest(saltHex, secret)
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

func digest(saltHex, secret string) string {
	h := sha256.Sum256([]byte(saltHex + secret))
	return hex.EncodeToString(h[:])
}
