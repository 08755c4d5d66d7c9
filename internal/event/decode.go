package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload converts an event payload into T. Payloads published
// in-process are already the right struct and assert directly; payloads
// that crossed a serialization boundary (dead-letter replay, JSON
// sources) arrive as generic maps and take the JSON round-trip instead.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}

	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("encode payload for %T: %w", result, err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("decode payload into %T: %w", result, err)
	}
	return result, nil
}
