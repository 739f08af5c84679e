package utils

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewTransactionID returns a globally unique payment transaction id,
// e.g. TCHAD-9F2C4A81D03E57B6.
func NewTransactionID() string {
	return "TCHAD-" + randomHex(16)
}

// NewCertificateNumber returns a unique certificate number,
// e.g. TCHADSKILLS-A1B2C3D4E5F6.
func NewCertificateNumber() string {
	return "TCHADSKILLS-" + randomHex(12)
}

func randomHex(n int) string {
	id := uuid.New()
	return strings.ToUpper(hex.EncodeToString(id[:]))[:n]
}
