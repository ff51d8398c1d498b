// README: Two-stage JSON extraction from model output.
package planner

import (
	"encoding/json"
	"strings"
)

// ParsePlan attempts to recover a structured plan from raw model content.
// Stage one is a strict parse of the whole content (after code-fence cleanup);
// stage two salvages the last balanced top-level {...} object. No semantic
// repair beyond that: if both stages fail, nil is returned and the caller
// falls back to the raw text.
func ParsePlan(content string) *ItineraryPlan {
	cleaned := cleanJSONString(content)

	var plan ItineraryPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err == nil {
		return &plan
	}

	obj := lastJSONObject(cleaned)
	if obj == "" {
		return nil
	}
	plan = ItineraryPlan{}
	if err := json.Unmarshal([]byte(obj), &plan); err != nil {
		return nil
	}
	return &plan
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}

// lastJSONObject returns the last balanced top-level {...} substring of s,
// honouring string literals and escapes, or "" when none exists.
func lastJSONObject(s string) string {
	var (
		depth    int
		start    = -1
		last     string
		inString bool
		escaped  bool
	)
	for i, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start >= 0 {
					last = s[start : i+1]
					start = -1
				}
			}
		}
	}
	return last
}
