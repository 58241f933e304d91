package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

// CallRecord captures one provider call for the durable usage log.
type CallRecord struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// UsageRecorder persists CallRecords. The store package implements it;
// tests use in-memory fakes.
type UsageRecorder interface {
	RecordLLMCall(ctx context.Context, rec CallRecord) error
}

// UsageLogProvider is a decorator that records every call.
type UsageLogProvider struct {
	inner    Provider
	name     string
	recorder UsageRecorder
}

// WithUsageLog wraps a Provider with durable call logging. The name is
// the provider family ("anthropic", "openai", "gemini") stored alongside
// the model id.
func WithUsageLog(p Provider, name string, recorder UsageRecorder) Provider {
	return &UsageLogProvider{inner: p, name: name, recorder: recorder}
}

func (l *UsageLogProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	rec := CallRecord{
		Provider:  l.name,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.Model = resp.Model
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	// Log the call but never fail the request over a logging failure.
	if logErr := l.recorder.RecordLLMCall(ctx, rec); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record LLM call: %v\n", logErr)
	}

	return resp, err
}

func (l *UsageLogProvider) ModelID() string {
	return l.inner.ModelID()
}
