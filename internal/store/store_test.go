package store

import (
	"context"
	"testing"

	"github.com/anvaya/paperforge/internal/llm"
	"github.com/anvaya/paperforge/internal/paper"
	"github.com/anvaya/paperforge/internal/question"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func bankRecord(id string) question.Record {
	return question.Record{
		ID:         id,
		Text:       "Match the following Circuits terms with their definitions.",
		Type:       question.TypeMatchTheFollowing,
		Board:      question.BoardCBSE,
		Class:      "10",
		Subject:    "Physics",
		Chapter:    "Electricity",
		Topic:      "Circuits",
		Difficulty: question.DifficultyMedium,
		BloomLevel: question.BloomApply,
		Marks:      3,
		Answer:     "A-3, B-1, C-4, D-2",
		MatchPairs: []question.MatchPair{
			{Left: "Resistor", Right: "Limits current"},
			{Left: "Capacitor", Right: "Stores charge"},
		},
	}
}

func TestQuestionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Questions()
	ctx := context.Background()

	want := bankRecord("q-roundtrip")
	id, err := repo.Create(ctx, want)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != "q-roundtrip" {
		t.Fatalf("expected caller id preserved, got %s", id)
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("record not found after create")
	}
	if got.Text != want.Text || got.Type != want.Type || got.Marks != want.Marks {
		t.Errorf("scalar fields lost: %+v", got)
	}
	if len(got.MatchPairs) != 2 || got.MatchPairs[0].Left != "Resistor" {
		t.Errorf("payload fields lost: %+v", got.MatchPairs)
	}
}

func TestQuestionCreate_AssignsID(t *testing.T) {
	s := openTestStore(t)
	rec := bankRecord("")
	id, err := s.Questions().Create(context.Background(), rec)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == "" {
		t.Fatal("expected generated id")
	}
}

func TestQuestionCreate_RejectsInvalid(t *testing.T) {
	s := openTestStore(t)
	rec := bankRecord("bad")
	rec.Marks = 0
	if _, err := s.Questions().Create(context.Background(), rec); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestQuestionUpdateDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.Questions()
	ctx := context.Background()

	rec := bankRecord("q-upd")
	if _, err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	rec.Text = "Rewritten question text."
	rec.Difficulty = question.DifficultyHard
	if err := repo.Update(ctx, rec); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _ := repo.Get(ctx, "q-upd")
	if got.Text != "Rewritten question text." || got.Difficulty != question.DifficultyHard {
		t.Errorf("update not applied: %+v", got)
	}

	if err := repo.Delete(ctx, "q-upd"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := repo.Get(ctx, "q-upd")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Fatal("record still present after delete")
	}
}

func TestQuestionQuery_ScopeAndRefinements(t *testing.T) {
	s := openTestStore(t)
	repo := s.Questions()
	ctx := context.Background()

	in := bankRecord("q-in")
	if _, err := repo.Create(ctx, in); err != nil {
		t.Fatalf("create: %v", err)
	}
	out := bankRecord("q-out")
	out.Subject = "Chemistry"
	if _, err := repo.Create(ctx, out); err != nil {
		t.Fatalf("create: %v", err)
	}

	scope := question.Scope{Board: question.BoardCBSE, Class: "10", Subject: "Physics"}
	got, err := repo.Query(ctx, scope, question.Refinements{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 || got[0].ID != "q-in" {
		t.Fatalf("expected [q-in], got %+v", got)
	}

	got, err = repo.Query(ctx, scope, question.Refinements{Chapters: []string{"Optics"}})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("refinement should exclude everything, got %d", len(got))
	}
}

func TestPaperSaveGetListDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.Papers()
	ctx := context.Background()

	p := paper.New(paper.Meta{
		Title:        "10 Physics CBSE Examination",
		Board:        question.BoardCBSE,
		Class:        "10",
		Subject:      "Physics",
		CreatedBy:    "tester",
		Duration:     180,
		Instructions: []string{"Answer all questions."},
	})
	if err := p.AddQuestionToSection(p.Sections[0].ID, bankRecord("pq-1")); err != nil {
		t.Fatalf("add question: %v", err)
	}

	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	if p.TotalMarks != 3 {
		t.Fatalf("save must refresh the snapshot, got %d", p.TotalMarks)
	}

	got, err := repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("paper not found after save")
	}
	if got.Title != p.Title || got.TotalMarks != 3 {
		t.Errorf("scalar fields lost: %+v", got)
	}
	if len(got.Sections) != 1 || len(got.Sections[0].Questions) != 1 {
		t.Fatalf("section structure lost: %+v", got.Sections)
	}
	if got.Sections[0].Questions[0].ID != "pq-1" {
		t.Errorf("question lost in round trip")
	}

	// Upsert: mutate and save again under the same id.
	p.Title = "Revised Title"
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, _ = repo.Get(ctx, p.ID)
	if got.Title != "Revised Title" {
		t.Errorf("upsert did not overwrite, got %q", got.Title)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 paper, got %d", len(list))
	}

	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err = repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Fatal("paper still present after delete")
	}
}

func TestPaperGet_Missing(t *testing.T) {
	s := openTestStore(t)
	got, err := s.Papers().Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for missing paper")
	}
}

func TestUsageLog(t *testing.T) {
	s := openTestStore(t)
	repo := s.UsageLog()
	ctx := context.Background()

	recs := []llm.CallRecord{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "question-synthesis", InputTokens: 200, OutputTokens: 80, LatencyMs: 900, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "question-synthesis", Success: false, ErrorMessage: "rate limited"},
	}
	for _, r := range recs {
		if err := repo.RecordLLMCall(ctx, r); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Calls != 2 || stats.Failures != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.InputTokens != 200 || stats.OutputTokens != 80 {
		t.Errorf("token totals wrong: %+v", stats)
	}

	recent, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(recent))
	}
}
