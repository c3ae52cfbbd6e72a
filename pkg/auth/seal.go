package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
)

var ErrSealKeyMissing = errors.New("seal key not configured")

// Sealer encrypts per-user third-party credentials at rest with AES-256-GCM.
// The key is derived from the configured seal key string, so operators can
// supply any sufficiently random passphrase.
type Sealer struct {
	key []byte
}

// NewSealer derives a 256-bit key from the configured seal key.
func NewSealer(sealKey string) (*Sealer, error) {
	if sealKey == "" {
		return nil, ErrSealKeyMissing
	}
	k := sha256.Sum256([]byte(sealKey))
	return &Sealer{key: k[:]}, nil
}

// Seal encrypts plaintext; the random nonce is prepended to the ciphertext.
func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	gcm, err := s.gcm()
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts data produced by Seal.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	gcm, err := s.gcm()
	if err != nil {
		return nil, err
	}
	if len(sealed) < gcm.NonceSize() {
		return nil, errors.New("sealed data too short")
	}
	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal credentials: %w", err)
	}
	return plaintext, nil
}

func (s *Sealer) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to init cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
