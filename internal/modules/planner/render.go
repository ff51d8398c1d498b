// README: Deterministic text rendering of a structured plan.
package planner

import (
	"fmt"
	"strings"
)

// noPlanText is the rendered plan when the model returned nothing usable.
const noPlanText = "No plan returned."

// Render produces the human-readable plan text. It is a pure function of its
// inputs: the same (request, plan, raw) triple always yields byte-identical
// output, and empty optional fields contribute no line.
func Render(v ValidatedRequest, plan *ItineraryPlan, raw string) string {
	if plan == nil || len(plan.Daily) == 0 {
		if raw != "" {
			return raw
		}
		return noPlanText
	}

	lines := []string{fmt.Sprintf("GlobTrek — %s • %d days", v.Destination, v.Days)}
	if plan.Summary != "" {
		lines = append(lines, "\nSummary: "+plan.Summary)
	}
	if plan.BestTime != "" {
		lines = append(lines, "When to go: "+plan.BestTime)
	}

	for _, d := range plan.Daily {
		theme := d.Theme
		if theme == "" {
			theme = "Explore"
		}
		lines = append(lines, fmt.Sprintf("Day %d: %s", d.Day, theme))
		if d.Morning != "" {
			lines = append(lines, "  Morning: "+d.Morning)
		}
		if d.Afternoon != "" {
			lines = append(lines, "  Afternoon: "+d.Afternoon)
		}
		if d.Evening != "" {
			lines = append(lines, "  Evening: "+d.Evening)
		}
		if len(d.Neighborhoods) > 0 {
			lines = append(lines, "  Areas: "+strings.Join(d.Neighborhoods, ", "))
		}
		if len(d.Food) > 0 {
			lines = append(lines, "  Food: "+strings.Join(d.Food, " • "))
		}
		if d.Notes != "" {
			lines = append(lines, "  Notes: "+d.Notes)
		}
	}

	if c := plan.EstimatedCosts; c != nil {
		lines = append(lines, fmt.Sprintf("Est. per day (%s): low %.0f / mid %.0f / high %.0f",
			c.Currency, c.PerDay.Low, c.PerDay.Mid, c.PerDay.High))
	}
	if len(plan.Tips) > 0 {
		lines = append(lines, "Tips: "+strings.Join(plan.Tips, " · "))
	}

	return strings.Join(lines, "\n")
}
