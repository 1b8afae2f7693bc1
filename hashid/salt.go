package hashid

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// secureSaltBytes is the entropy of a generated salt: 32 bytes = 256 bits.
const secureSaltBytes = 32

// GenerateSecureSalt returns a fresh cryptographically random salt,
// base64-encoded, carrying 256 bits of entropy.
//
// [Factory.Create] calls this whenever the secure strategy is requested
// with an empty effective salt.  The value is generated per call and never
// persisted by this package: two secure hashers created without a salt
// cannot decode each other's output.  Callers that need a stable secure
// configuration across processes should generate a salt once, store it in
// their own secret storage, and pass it back in via [Config].Salt.
func GenerateSecureSalt() (string, error) {
	b := make([]byte, secureSaltBytes)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", fmt.Errorf("hashid: failed to generate secure salt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
