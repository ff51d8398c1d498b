// README: Itinerary generation service; prompts the LLM and parses/repairs its reply.
package planner

import (
	"context"
	"strings"

	"globtrek/internal/llm"
)

// Service orchestrates prompt composition, the completion call, and parsing.
type Service struct {
	provider    llm.Provider
	model       string
	temperature *float64
}

// NewService wires a completion provider. provider may be nil when no credential
// is configured; Generate then fails with ErrMissingAPIKey.
// temperature nil means the provider default is used.
func NewService(provider llm.Provider, model string, temperature *float64) *Service {
	return &Service{provider: provider, model: model, temperature: temperature}
}

// Configured reports whether a completion provider is available.
func (s *Service) Configured() bool {
	return s.provider != nil
}

// Model returns the configured model identifier.
func (s *Service) Model() string {
	return s.model
}

// Generate runs one completion for the validated request. Exactly one outbound
// call is made; there is no retry. Provider failures propagate unchanged so the
// handler can surface the upstream status and body.
func (s *Service) Generate(ctx context.Context, v ValidatedRequest) (Result, error) {
	if s.provider == nil {
		return Result{}, ErrMissingAPIKey
	}

	content, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Model:       s.model,
		System:      systemPrompt,
		User:        userPrompt(v),
		Temperature: s.temperature,
	})
	if err != nil {
		return Result{}, err
	}
	content = strings.TrimSpace(content)

	plan := ParsePlan(content)
	if plan != nil && len(plan.Daily) > v.Days {
		// The prompt asks for exactly v.Days entries but the model is not trusted:
		// surplus days are dropped. A short plan is kept as returned.
		plan.Daily = plan.Daily[:v.Days]
	}

	next := []string{}
	if plan != nil && len(plan.NextQuestions) > 0 {
		next = plan.NextQuestions
	}

	return Result{
		Plan:          Render(v, plan, content),
		PlanJSON:      plan,
		NextQuestions: next,
		ModelUsed:     s.model,
	}, nil
}
