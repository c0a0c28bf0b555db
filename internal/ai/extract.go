package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON unmarshals the JSON object or array embedded in a model
// reply, tolerating markdown fences and surrounding prose. The first
// opening bracket decides which form is expected.
func ExtractJSON(text string, v any) error {
	text = strings.TrimSpace(text)

	objStart := strings.IndexByte(text, '{')
	arrStart := strings.IndexByte(text, '[')

	start, closer := objStart, byte('}')
	if objStart < 0 || (arrStart >= 0 && arrStart < objStart) {
		start, closer = arrStart, ']'
	}

	if start >= 0 {
		if end := strings.LastIndexByte(text, closer); end > start {
			if err := json.Unmarshal([]byte(text[start:end+1]), v); err == nil {
				return nil
			}
		}
	}

	if err := json.Unmarshal([]byte(text), v); err != nil {
		return fmt.Errorf("no parseable JSON in model reply: %w", err)
	}
	return nil
}
