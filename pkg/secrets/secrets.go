// Package secrets encrypts provider API keys at rest. Keys are derived from
// the master secret with scrypt and sealed with AES-256-GCM; the stored blob
// is base64(salt ‖ nonce ‖ ciphertext).
package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

const (
	saltSize  = 16
	nonceSize = 12
	scryptN   = 32768 // 2^15
	scryptR   = 8
	scryptP   = 1
	keySize   = 32 // AES-256
)

// ErrNoMasterKey is returned when the cipher is constructed without a master
// secret but an encrypt/decrypt call is attempted.
var ErrNoMasterKey = errors.New("master key not configured")

// Cipher seals and opens secret values under one master secret.
type Cipher struct {
	master []byte
}

// NewCipher creates a cipher from the master secret (WARDEN_MASTER_KEY).
// An empty secret yields a cipher that rejects every operation, so a
// misconfigured deployment fails at the first secret touch, not at startup.
func NewCipher(masterKey string) *Cipher {
	if masterKey == "" {
		return &Cipher{}
	}
	return &Cipher{master: []byte(masterKey)}
}

// Encrypt seals plaintext and returns the base64 blob for persistence.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if len(c.master) == 0 {
		return "", ErrNoMasterKey
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	gcm, err := c.aead(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)

	blob := make([]byte, 0, saltSize+nonceSize+len(sealed))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, sealed...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt opens a blob produced by Encrypt.
func (c *Cipher) Decrypt(encoded string) (string, error) {
	if len(c.master) == 0 {
		return "", ErrNoMasterKey
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decoding secret blob: %w", err)
	}
	if len(blob) < saltSize+nonceSize {
		return "", errors.New("secret blob too short")
	}

	salt := blob[:saltSize]
	nonce := blob[saltSize : saltSize+nonceSize]
	sealed := blob[saltSize+nonceSize:]

	gcm, err := c.aead(salt)
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("opening secret blob: %w", err)
	}
	return string(plaintext), nil
}

func (c *Cipher) aead(salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key(c.master, salt, scryptN, scryptR, scryptP, keySize)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return gcm, nil
}
