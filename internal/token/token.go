package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// tokenLength is the number of hex characters kept from the digest: short
// enough for shareable links, long enough to be unguessable.
const tokenLength = 24

// Generate returns the invite token for one player of one event.
func Generate(secret, eventID, playerID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(eventID + ":" + playerID))
	return hex.EncodeToString(mac.Sum(nil))[:tokenLength]
}

// Validate checks a presented token in constant time.
func Validate(secret, eventID, playerID, presented string) bool {
	if len(presented) != tokenLength {
		return false
	}
	expected := Generate(secret, eventID, playerID)
	return hmac.Equal([]byte(expected), []byte(presented))
}
