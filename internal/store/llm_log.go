package store

import (
	"context"
	"fmt"

	"github.com/anvaya/paperforge/ent"
	entllmcall "github.com/anvaya/paperforge/ent/llmcall"
	"github.com/anvaya/paperforge/internal/llm"
)

// UsageLogRepo records LLM provider calls. It implements
// llm.UsageRecorder.
type UsageLogRepo struct {
	client *ent.Client
}

// RecordLLMCall appends one call record to the log.
func (r *UsageLogRepo) RecordLLMCall(ctx context.Context, rec llm.CallRecord) error {
	err := r.client.LLMCall.Create().
		SetProvider(rec.Provider).
		SetModel(rec.Model).
		SetPurpose(rec.Purpose).
		SetInputTokens(rec.InputTokens).
		SetOutputTokens(rec.OutputTokens).
		SetLatencyMs(rec.LatencyMs).
		SetSuccess(rec.Success).
		SetErrorMessage(rec.ErrorMessage).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("record llm call: %w", err)
	}
	return nil
}

// UsageStats summarizes the call log for display.
type UsageStats struct {
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// Stats aggregates the whole log.
func (r *UsageLogRepo) Stats(ctx context.Context) (UsageStats, error) {
	rows, err := r.client.LLMCall.Query().
		Order(ent.Asc(entllmcall.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return UsageStats{}, fmt.Errorf("query llm calls: %w", err)
	}
	var stats UsageStats
	for _, row := range rows {
		stats.Calls++
		if !row.Success {
			stats.Failures++
		}
		stats.InputTokens += row.InputTokens
		stats.OutputTokens += row.OutputTokens
	}
	return stats, nil
}

// Recent returns the newest n call records.
func (r *UsageLogRepo) Recent(ctx context.Context, n int) ([]*ent.LLMCall, error) {
	rows, err := r.client.LLMCall.Query().
		Order(ent.Desc(entllmcall.FieldTimestamp)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm calls: %w", err)
	}
	return rows, nil
}
