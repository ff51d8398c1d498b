package llm

import (
	"context"
	"fmt"
)

// CompletionRequest is a single two-message completion call.
// Message order is fixed: system first, then user.
type CompletionRequest struct {
	Model  string
	System string
	User   string

	// Temperature is sent only when non-nil; nil leaves the provider default in place.
	Temperature *float64
}

// Provider defines the contract for chat-completion backends.
// This interface allows for swapping different AI providers (OpenAI, Gemini, etc.).
type Provider interface {
	// Complete sends the system+user messages and returns the raw message content.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// ProviderError is a non-2xx response from the completion endpoint, carried
// verbatim so handlers can surface the upstream status and body.
type ProviderError struct {
	Name   string
	Status int
	Body   string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Name, e.Status, e.Body)
}
