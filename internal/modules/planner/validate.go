// README: Request normalization, follow-up merge, and missing-field elicitation.
package planner

import (
	"math"
	"strings"
)

// requiredFields fixes the detection order for both Needs and Questions.
var requiredFields = []struct {
	name     string
	question string
}{
	{"destination", "Where do you want to go?"},
	{"days", "How many days?"},
	{"budget", "Budget? (low / mid / high)"},
	{"pace", "Preferred pace? (relaxed / balanced / packed)"},
	{"interests", "Top interests? (food, history, nature, nightlife, art, shopping)"},
}

// clampDays maps an arbitrary day count into [MinDays, MaxDays].
// Non-finite input defaults to MinDays.
func clampDays(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return MinDays
	}
	n := int(math.Floor(f))
	if n < MinDays {
		return MinDays
	}
	if n > MaxDays {
		return MaxDays
	}
	return n
}

// Validate normalizes req, merges follow-up answers, and either returns the
// merged request ready for generation or an Elicitation listing what is missing.
// Exactly one of the return values is non-nil semantically: a non-nil Elicitation
// means the ValidatedRequest must not be used.
func Validate(req PlanRequest) (ValidatedRequest, *Elicitation) {
	v := ValidatedRequest{
		Destination: strings.TrimSpace(req.Destination),
		Days:        clampDays(float64(req.Days)),
		Budget:      strings.TrimSpace(req.Budget),
		Pace:        strings.TrimSpace(req.Pace),
		Interests:   req.Interests,
		Profile:     req.Profile,
	}
	if len(v.Interests) > MaxInterests {
		v.Interests = v.Interests[:MaxInterests]
	}

	// Follow-up answers win over the top-level fields of the same name,
	// but only when they carry a value.
	if fu := req.FollowUpAnswers; fu != nil {
		if strings.TrimSpace(fu.Budget) != "" {
			v.Budget = strings.TrimSpace(fu.Budget)
		}
		if strings.TrimSpace(fu.Pace) != "" {
			v.Pace = strings.TrimSpace(fu.Pace)
		}
		if len(fu.Interests) > 0 {
			v.Interests = fu.Interests
		}
	}

	missing := map[string]bool{
		"destination": v.Destination == "",
		"days":        v.Days == 0, // unreachable after clamping; kept for parity with the field set
		"budget":      v.Budget == "",
		"pace":        v.Pace == "",
		"interests":   len(v.Interests) == 0,
	}

	var e Elicitation
	for _, f := range requiredFields {
		if missing[f.name] {
			e.Needs = append(e.Needs, f.name)
			e.Questions = append(e.Questions, f.question)
		}
	}
	if len(e.Needs) > 0 {
		return ValidatedRequest{}, &e
	}
	return v, nil
}
