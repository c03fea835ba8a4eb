package event

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Share codes are short public tokens, so they come from crypto/rand with
// uniform sampling over the uppercase alphanumeric alphabet. A 6-character
// code admits collisions at scale; uniqueness is guaranteed by the database
// constraint plus retry, not by randomness alone.
const (
	shareCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	ShareCodeLength   = 6

	// maxShareCodeAttempts bounds the retry loop on unique-constraint
	// violations before giving up with a conflict error.
	maxShareCodeAttempts = 5
)

func GenerateShareCode() (string, error) {
	alphabetLen := big.NewInt(int64(len(shareCodeAlphabet)))

	code := make([]byte, ShareCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("generate share code: %w", err)
		}
		code[i] = shareCodeAlphabet[n.Int64()]
	}

	return string(code), nil
}
