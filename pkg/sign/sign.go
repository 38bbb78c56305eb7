package sign

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"
)

// Sign wraps value with an HMAC-SHA256 signature using the given key.
// The result is "base64url(value)|base64url(mac)" and is safe to use as a
// cookie value.
func Sign(value, key string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(value))
	signature := base64.URLEncoding.EncodeToString(mac.Sum(nil))

	return base64.URLEncoding.EncodeToString([]byte(value)) + "|" + signature
}

// Unsign verifies a signed value against the candidate keys in listed order
// and returns the original payload on the first match. Keys are tried in
// order so that key rotation keeps old cookies valid while new cookies are
// signed with the first key. Malformed input is indistinguishable from a
// signature mismatch: both return ok=false, never an error or panic.
func Unsign(signed string, keys []string) (string, bool) {
	encodedValue, signature, found := strings.Cut(signed, "|")
	if !found {
		return "", false
	}

	value, err := base64.URLEncoding.DecodeString(encodedValue)
	if err != nil {
		return "", false
	}

	for _, key := range keys {
		mac := hmac.New(sha256.New, []byte(key))
		mac.Write(value)
		expected := base64.URLEncoding.EncodeToString(mac.Sum(nil))

		// Constant-time comparison to prevent timing attacks
		if subtle.ConstantTimeCompare([]byte(signature), []byte(expected)) == 1 {
			return string(value), true
		}
	}

	return "", false
}
