// ABOUTME: Tolerant JSON extraction from raw LLM output
// ABOUTME: Brace-scans for the object, repairs almost-valid JSON, then decodes
package core

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harper/diary-standalone/internal/models"
	"github.com/kaptinlin/jsonrepair"
)

// decodeParsedEntry recovers a ParsedEntry from raw model output. Models
// wrap the object in chatter and markdown fences, so scan from the first '{'
// to the last '}' before repair. A failure here is a strategy failure, not
// a crash.
func decodeParsedEntry(raw string) (models.ParsedEntry, error) {
	var parsed models.ParsedEntry

	first := strings.Index(raw, "{")
	last := strings.LastIndex(raw, "}")
	if first == -1 || last == -1 || last < first {
		return parsed, fmt.Errorf("no JSON object in response")
	}

	fragment := strings.TrimSpace(raw[first : last+1])
	repaired, err := jsonrepair.JSONRepair(fragment)
	if err != nil {
		return parsed, fmt.Errorf("repairing JSON: %w", err)
	}

	if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
		return parsed, fmt.Errorf("decoding JSON: %w", err)
	}

	return parsed, nil
}
