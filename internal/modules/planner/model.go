// README: Plan request/response models and elicitation questions.
package planner

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrMissingAPIKey is returned when no completion provider credential is configured.
// The message doubles as the client-facing error body.
var ErrMissingAPIKey = errors.New("Missing OPENAI_API_KEY")

const (
	// MinDays/MaxDays bound the requested trip length; out-of-range input is clamped, never rejected.
	MinDays = 1
	MaxDays = 30

	// MaxInterests caps the interest tags taken from the top-level request.
	MaxInterests = 8
)

// Profile is the optional traveler profile echoed into the prompt.
type Profile struct {
	Name        string `json:"name"`
	HomeAirport string `json:"homeAirport"`
	Dietary     string `json:"dietary"`
	Mobility    string `json:"mobility"`
	Lodging     string `json:"lodging"`
	Style       string `json:"style"`
}

// FollowUpAnswers override the top-level budget/pace/interests when non-empty.
type FollowUpAnswers struct {
	Budget    string   `json:"budget"`
	Pace      string   `json:"pace"`
	Interests []string `json:"interests"`
}

// PlanRequest is the raw client request body. Unknown fields are ignored.
type PlanRequest struct {
	Destination     string           `json:"destination"`
	Days            FlexDays         `json:"days"`
	Budget          string           `json:"budget"`
	Pace            string           `json:"pace"`
	Interests       []string         `json:"interests"`
	FollowUpAnswers *FollowUpAnswers `json:"followUpAnswers"`
	Profile         *Profile         `json:"profile"`
}

// FlexDays tolerates the day count arriving as a JSON number or a numeric string.
// Anything unparseable decodes to NaN and clamps to MinDays.
type FlexDays float64

func (d *FlexDays) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*d = FlexDays(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if f, perr := strconv.ParseFloat(strings.TrimSpace(s), 64); perr == nil {
			*d = FlexDays(f)
			return nil
		}
	}
	*d = FlexDays(math.NaN())
	return nil
}

// ValidatedRequest is the merged, normalized request handed to generation.
// All fields are non-empty and Days is within [MinDays, MaxDays].
type ValidatedRequest struct {
	Destination string
	Days        int
	Budget      string
	Pace        string
	Interests   []string
	Profile     *Profile
}

// Elicitation lists the missing required fields and one fixed question per field,
// both in the canonical order: destination, days, budget, pace, interests.
type Elicitation struct {
	Needs     []string `json:"needs"`
	Questions []string `json:"questions"`
}

// ItineraryPlan is the structured output requested from the model.
type ItineraryPlan struct {
	Summary        string          `json:"summary"`
	BestTime       string          `json:"best_time"`
	Daily          []DayPlan       `json:"daily"`
	EstimatedCosts *EstimatedCosts `json:"estimated_costs,omitempty"`
	Tips           []string        `json:"tips"`
	NextQuestions  []string        `json:"next_questions"`
}

// DayPlan is one entry of the daily itinerary.
type DayPlan struct {
	Day           int      `json:"day"`
	Theme         string   `json:"theme"`
	Morning       string   `json:"morning"`
	Afternoon     string   `json:"afternoon"`
	Evening       string   `json:"evening"`
	Neighborhoods []string `json:"neighborhoods"`
	Food          []string `json:"food"`
	Notes         string   `json:"notes"`
}

// EstimatedCosts carries the model's per-day price range.
type EstimatedCosts struct {
	Currency string      `json:"currency"`
	PerDay   PerDayCosts `json:"per_day"`
	Notes    string      `json:"notes"`
}

type PerDayCosts struct {
	Low  float64 `json:"low"`
	Mid  float64 `json:"mid"`
	High float64 `json:"high"`
}

// Result is the outcome of one successful generation.
type Result struct {
	Plan          string
	PlanJSON      *ItineraryPlan
	NextQuestions []string
	ModelUsed     string
}
