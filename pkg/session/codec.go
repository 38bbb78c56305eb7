package session

import (
	"encoding/json"
	"fmt"
	"maps"
)

// encodeData serializes session data for storage, injecting the absolute
// expiry under the reserved maxAge key. A non-positive maxAge leaves the
// payload without an expiry. The input map is never mutated.
func encodeData(data map[string]any, maxAge int64) (string, error) {
	payload := make(map[string]any, len(data)+1)
	maps.Copy(payload, data)
	if maxAge > 0 {
		payload[MaxAgeKey] = maxAge
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("session: encode data: %w", err)
	}
	return string(encoded), nil
}

// decodeData parses an encoded payload back into a structured mapping.
// An empty payload decodes to nil so callers can detect legacy records
// that were persisted without one.
func decodeData(encoded string) (map[string]any, error) {
	if encoded == "" {
		return nil, nil
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(encoded), &data); err != nil {
		return nil, fmt.Errorf("session: decode data: %w", err)
	}
	return data, nil
}
