package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"os"
)

// Card PANs are stored AES-256-GCM encrypted so declined attempts can be
// reconciled against retries during a dispute without keeping plaintext card
// numbers at rest. ENCRYPTION_KEY holds the key, base64 or raw.

// panCipher builds the AEAD from the configured key.
func panCipher() (cipher.AEAD, error) {
	key := os.Getenv("ENCRYPTION_KEY")
	if key == "" {
		return nil, fmt.Errorf("ENCRYPTION_KEY environment variable is not set")
	}

	keyBytes, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		// Not base64; treat the raw value as the key material.
		keyBytes = []byte(key)
	} else if len(keyBytes) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes for AES-256, got %d bytes", len(keyBytes))
	}

	block, err := aes.NewCipher(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher block: %w", err)
	}
	return cipher.NewGCM(block)
}

// EncryptCardPAN seals a card number for the payment audit row. An empty pan
// encrypts to an empty string.
func EncryptCardPAN(pan string) (string, error) {
	if pan == "" {
		return "", nil
	}

	gcm, err := panCipher()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(pan), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptCardPAN opens a sealed card number for dispute reconciliation.
// Tampered or truncated ciphertext fails authentication and is rejected.
func DecryptCardPAN(sealed string) (string, error) {
	if sealed == "" {
		return "", nil
	}

	gcm, err := panCipher()
	if err != nil {
		return "", err
	}

	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(raw) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]
	pan, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt card number: %w", err)
	}
	return string(pan), nil
}

// MaskPAN formats a card number for support screens: first six and last four
// digits visible, the rest starred.
func MaskPAN(pan string) string {
	if len(pan) < 10 {
		return pan
	}
	masked := make([]byte, len(pan))
	for i := range pan {
		if i < 6 || i >= len(pan)-4 {
			masked[i] = pan[i]
		} else {
			masked[i] = '*'
		}
	}
	return string(masked)
}
