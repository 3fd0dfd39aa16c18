package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/adina/skillpilot/internal/store"
)

// loggingProvider records every LLM request as an event row. A failed append
// warns on stderr but never fails the request itself.
type loggingProvider struct {
	next   Provider
	events store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &loggingProvider{next: p, events: repo}
}

func (l *loggingProvider) ModelID() string {
	return l.next.ModelID()
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.next.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.next.ModelID(),
		Model:     l.next.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}
