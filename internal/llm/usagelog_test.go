package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

type fakeRecorder struct {
	records []CallRecord
	err     error
}

func (f *fakeRecorder) RecordLLMCall(_ context.Context, rec CallRecord) error {
	f.records = append(f.records, rec)
	return f.err
}

func TestUsageLog_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 100, OutputTokens: 50},
	})
	rec := &fakeRecorder{}
	p := WithUsageLog(mock, "mock", rec)

	ctx := WithPurpose(context.Background(), "question-synthesis")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(rec.records))
	}
	r := rec.records[0]
	if r.Provider != "mock" {
		t.Errorf("unexpected provider %q", r.Provider)
	}
	if r.Purpose != "question-synthesis" {
		t.Errorf("unexpected purpose %q", r.Purpose)
	}
	if r.InputTokens != 100 || r.OutputTokens != 50 {
		t.Errorf("token counts not recorded: %d/%d", r.InputTokens, r.OutputTokens)
	}
	if !r.Success {
		t.Error("success not recorded")
	}
}

func TestUsageLog_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Err: &ErrProviderUnavailable{Err: errors.New("down")},
	})
	rec := &fakeRecorder{}
	p := WithUsageLog(mock, "mock", rec)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected provider error")
	}

	if len(rec.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(rec.records))
	}
	r := rec.records[0]
	if r.Success {
		t.Error("failure recorded as success")
	}
	if r.ErrorMessage == "" {
		t.Error("error message not recorded")
	}
}

func TestUsageLog_RecorderFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	rec := &fakeRecorder{err: errors.New("disk full")}
	p := WithUsageLog(mock, "mock", rec)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("logging failure must not fail the request: %v", err)
	}
}

func TestPurposeContext(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Fatalf("expected unknown purpose, got %q", got)
	}
	ctx := WithPurpose(context.Background(), "connectivity-test")
	if got := PurposeFrom(ctx); got != "connectivity-test" {
		t.Fatalf("expected connectivity-test, got %q", got)
	}
}
