package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/anvaya/paperforge/ent"
	entquestion "github.com/anvaya/paperforge/ent/question"
	"github.com/anvaya/paperforge/internal/question"
)

// QuestionRepo is the persisted question bank. It implements the
// engine's QuestionSource.
type QuestionRepo struct {
	client *ent.Client
}

// Query returns the bank's records matching scope and refinements, in
// insertion order. The scope narrows the database query; refinements
// are applied through the same pure filter the engine uses.
func (r *QuestionRepo) Query(ctx context.Context, scope question.Scope, ref question.Refinements) ([]question.Record, error) {
	rows, err := r.client.Question.Query().
		Where(
			entquestion.BoardEQ(string(scope.Board)),
			entquestion.ClassEQ(scope.Class),
			entquestion.SubjectEQ(scope.Subject),
		).
		Order(ent.Asc(entquestion.FieldCreatedAt), ent.Asc(entquestion.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	records := make([]question.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := entToRecord(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return question.Filter(records, scope, ref), nil
}

// List returns the whole bank in insertion order. A positive limit
// caps the row count.
func (r *QuestionRepo) List(ctx context.Context, limit int) ([]question.Record, error) {
	q := r.client.Question.Query().
		Order(ent.Asc(entquestion.FieldCreatedAt), ent.Asc(entquestion.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	records := make([]question.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := entToRecord(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Get returns one record by id.
func (r *QuestionRepo) Get(ctx context.Context, id string) (*question.Record, error) {
	row, err := r.client.Question.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get question %s: %w", id, err)
	}
	rec, err := entToRecord(row)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create stores a new record and returns its id. A record without an id
// is assigned one.
func (r *QuestionRepo) Create(ctx context.Context, rec question.Record) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if err := rec.Validate(); err != nil {
		return "", err
	}

	payloadMap, err := recordPayload(rec)
	if err != nil {
		return "", err
	}

	_, err = r.client.Question.Create().
		SetID(rec.ID).
		SetText(rec.Text).
		SetType(string(rec.Type)).
		SetBoard(string(rec.Board)).
		SetClass(rec.Class).
		SetSubject(rec.Subject).
		SetChapter(rec.Chapter).
		SetTopic(rec.Topic).
		SetDifficulty(string(rec.Difficulty)).
		SetBloomLevel(string(rec.BloomLevel)).
		SetMarks(rec.Marks).
		SetAnswer(rec.Answer).
		SetHasImage(rec.HasImage).
		SetImageURL(rec.ImageURL).
		SetIsGenerated(rec.IsGenerated).
		SetPayload(payloadMap).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("create question: %w", err)
	}
	return rec.ID, nil
}

// Update replaces the stored record with rec. Records are
// replace-on-edit values, so every mutable column is overwritten.
func (r *QuestionRepo) Update(ctx context.Context, rec question.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	payloadMap, err := recordPayload(rec)
	if err != nil {
		return err
	}

	err = r.client.Question.UpdateOneID(rec.ID).
		SetText(rec.Text).
		SetType(string(rec.Type)).
		SetBoard(string(rec.Board)).
		SetClass(rec.Class).
		SetSubject(rec.Subject).
		SetChapter(rec.Chapter).
		SetTopic(rec.Topic).
		SetDifficulty(string(rec.Difficulty)).
		SetBloomLevel(string(rec.BloomLevel)).
		SetMarks(rec.Marks).
		SetAnswer(rec.Answer).
		SetHasImage(rec.HasImage).
		SetImageURL(rec.ImageURL).
		SetIsGenerated(rec.IsGenerated).
		SetPayload(payloadMap).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update question %s: %w", rec.ID, err)
	}
	return nil
}

// Delete removes a record by id.
func (r *QuestionRepo) Delete(ctx context.Context, id string) error {
	if err := r.client.Question.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("delete question %s: %w", id, err)
	}
	return nil
}

// recordPayload is the JSON shape of the type-specific variant columns.
type recordPayloadData struct {
	Options      []string               `json:"options,omitempty"`
	MatchPairs   []question.MatchPair   `json:"matchPairs,omitempty"`
	SubQuestions []question.SubQuestion `json:"subQuestions,omitempty"`
	Assertion    string                 `json:"assertion,omitempty"`
	Reason       string                 `json:"reason,omitempty"`
}

// recordPayload converts the record's variant fields to a map for ent
// JSON storage.
func recordPayload(rec question.Record) (map[string]any, error) {
	data := recordPayloadData{
		Options:      rec.Options,
		MatchPairs:   rec.MatchPairs,
		SubQuestions: rec.SubQuestions,
		Assertion:    rec.Assertion,
		Reason:       rec.Reason,
	}
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal question payload: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("unmarshal question payload: %w", err)
	}
	return m, nil
}

// entToRecord converts an ent row to a domain record.
func entToRecord(row *ent.Question) (question.Record, error) {
	rec := question.Record{
		ID:          row.ID,
		Text:        row.Text,
		Type:        question.Type(row.Type),
		Board:       question.Board(row.Board),
		Class:       row.Class,
		Subject:     row.Subject,
		Chapter:     row.Chapter,
		Topic:       row.Topic,
		Difficulty:  question.Difficulty(row.Difficulty),
		BloomLevel:  question.BloomLevel(row.BloomLevel),
		Marks:       row.Marks,
		Answer:      row.Answer,
		HasImage:    row.HasImage,
		ImageURL:    row.ImageURL,
		IsGenerated: row.IsGenerated,
	}

	if len(row.Payload) > 0 {
		b, err := json.Marshal(row.Payload)
		if err != nil {
			return question.Record{}, fmt.Errorf("marshal stored payload: %w", err)
		}
		var data recordPayloadData
		if err := json.Unmarshal(b, &data); err != nil {
			return question.Record{}, fmt.Errorf("unmarshal stored payload: %w", err)
		}
		rec.Options = data.Options
		rec.MatchPairs = data.MatchPairs
		rec.SubQuestions = data.SubQuestions
		rec.Assertion = data.Assertion
		rec.Reason = data.Reason
	}

	return rec, nil
}
