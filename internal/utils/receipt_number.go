package utils

import (
	"crypto/rand"
	"fmt"
	"time"
)

const receiptSuffixAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateReceiptNumber produces a human-readable receipt identifier of the
// form RCP-<unix millis>-<5 char suffix>. The timestamp plus random suffix
// makes collisions negligible but does not guarantee uniqueness by
// construction; the income table's unique constraint on receipt_number is the
// actual enforcement point.
func GenerateReceiptNumber(now time.Time) (string, error) {
	b := make([]byte, 5)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i := range b {
		b[i] = receiptSuffixAlphabet[int(b[i])%len(receiptSuffixAlphabet)]
	}
	return fmt.Sprintf("RCP-%d-%s", now.UnixMilli(), string(b)), nil
}
