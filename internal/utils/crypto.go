package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// GenerateHMAC signs data with secret and returns the hex digest
func GenerateHMAC(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyHMAC checks a digest produced by GenerateHMAC in constant time
func VerifyHMAC(data []byte, digest, secret string) bool {
	expected, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hmac.Equal(h.Sum(nil), expected)
}

// Encrypt encrypts data using AES-CBC with PKCS#7 padding and returns hex(IV || ciphertext)
func Encrypt(data []byte, key []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("input data is empty")
	}
	if len(key) != 16 && len(key) != 24 && len(key) != 32 {
		return "", fmt.Errorf("encryption key must be 16, 24, or 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("failed to generate IV: %w", err)
	}

	padding := aes.BlockSize - len(data)%aes.BlockSize
	padded := make([]byte, len(data), len(data)+padding)
	copy(padded, data)
	for i := 0; i < padding; i++ {
		padded = append(padded, byte(padding))
	}

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(append(iv, ciphertext...)), nil
}

// Decrypt reverses Encrypt
func Decrypt(encrypted string, key []byte) ([]byte, error) {
	if len(encrypted) == 0 {
		return nil, fmt.Errorf("encrypted data is empty")
	}
	if len(key) != 16 && len(key) != 24 && len(key) != 32 {
		return nil, fmt.Errorf("decryption key must be 16, 24, or 32 bytes, got %d", len(key))
	}

	data, err := hex.DecodeString(encrypted)
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex: %w", err)
	}
	if len(data) < aes.BlockSize {
		return nil, fmt.Errorf("encrypted data too short: %d bytes", len(data))
	}

	iv := data[:aes.BlockSize]
	ciphertext := data[aes.BlockSize:]
	if len(ciphertext) == 0 {
		return nil, fmt.Errorf("ciphertext is empty")
	}
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("invalid ciphertext length: %d bytes", len(ciphertext))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	padding := int(plaintext[len(plaintext)-1])
	if padding > aes.BlockSize || padding == 0 {
		return nil, fmt.Errorf("invalid padding value: %d", padding)
	}
	for i := len(plaintext) - padding; i < len(plaintext); i++ {
		if int(plaintext[i]) != padding {
			return nil, fmt.Errorf("invalid padding bytes at position %d", i)
		}
	}

	return plaintext[:len(plaintext)-padding], nil
}
