// README: Prompt composition for itinerary generation.
package planner

import (
	"fmt"
	"strings"
)

// systemPrompt is the fixed instruction describing the required output schema.
// The schema keys here are the contract the parser relies on; change both together.
const systemPrompt = `You are GlobTrek, a meticulous trip designer. OUTPUT STRICT JSON ONLY:
{
  "summary": "...",
  "best_time": "...",
  "daily": [
    {
      "day": 1,
      "theme": "...",
      "morning": "...",
      "afternoon": "...",
      "evening": "...",
      "neighborhoods": ["..."],
      "food": ["...","..."],
      "notes": "..."
    }
  ],
  "estimated_costs": { "currency": "USD", "per_day": { "low": 0, "mid": 0, "high": 0 }, "notes": "..." },
  "tips": ["...","..."],
  "next_questions": ["..."]
}
Keep routes geographically sensible and prices realistic.`

// userPrompt embeds the merged request and the per-request constraints.
func userPrompt(v ValidatedRequest) string {
	interests := strings.Join(v.Interests, ", ")
	if interests == "" {
		interests = "general"
	}

	traveler := "Traveler: not provided"
	if p := v.Profile; p != nil {
		traveler = fmt.Sprintf(`Traveler:
- name: %s
- homeAirport: %s
- dietary: %s
- mobility: %s
- lodging: %s
- style: %s`,
			orDefault(p.Name, "guest"),
			orDefault(p.HomeAirport, "unspecified"),
			orDefault(p.Dietary, "none"),
			orDefault(p.Mobility, "none"),
			orDefault(p.Lodging, "standard"),
			orDefault(p.Style, "balanced"))
	}

	return fmt.Sprintf(`Destination: %s
Days: %d
Budget: %s
Pace: %s
Interests: %s

%s

Constraints:
- daily must have exactly %d items (1..%d)
- include neighborhoods each day
- include at least 2 specific food ideas per day when possible
- Respond with JSON only`,
		v.Destination, v.Days, v.Budget, v.Pace, interests, traveler, v.Days, v.Days)
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
