// Package id generates identifiers used to correlate log records.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// SessionPrefix prefixes teller session identifiers.
const SessionPrefix = "sess"

// Generate creates an identifier of the form <prefix>_<8 hex chars>,
// for example "sess_3fa91c07".
func Generate(prefix string) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// Fall back to the clock; uniqueness only matters within one log directory.
		return prefix + "_" + hex.EncodeToString([]byte(time.Now().Format("150405.0")))[:8]
	}
	return prefix + "_" + hex.EncodeToString(b)
}

// Session creates a new session identifier.
func Session() string {
	return Generate(SessionPrefix)
}
