package sentiment

import (
	"encoding/json"
	"strings"
)

// labelFromStream extracts a classification label from a newline-delimited
// event stream. Result events are lines prefixed "data:"; the stream is
// scanned from the end so the most recent event wins.
//
// A payload that parses as a non-empty JSON array contributes its first
// element: string elements are used verbatim, a JSON null maps to
// UnknownLabel, anything else keeps its JSON serialization. Payloads that are
// empty, the literal "null", or absent are skipped; a payload that is not an
// array (or not JSON at all) is used as-is. ok is false when no event in the
// stream produced a label.
func labelFromStream(stream string) (label string, ok bool) {
	lines := strings.Split(stream, "\n")

	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, "data:") {
			continue
		}

		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" || payload == "null" {
			continue
		}

		var elements []json.RawMessage
		if err := json.Unmarshal([]byte(payload), &elements); err != nil || len(elements) == 0 {
			return payload, true
		}

		var first *string
		if err := json.Unmarshal(elements[0], &first); err != nil {
			return string(elements[0]), true
		}
		if first == nil {
			return UnknownLabel, true
		}
		return *first, true
	}

	return "", false
}
