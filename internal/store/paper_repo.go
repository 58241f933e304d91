package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anvaya/paperforge/ent"
	entpaper "github.com/anvaya/paperforge/ent/paper"
	"github.com/anvaya/paperforge/internal/paper"
	"github.com/anvaya/paperforge/internal/question"
)

// PaperRepo persists paper aggregates.
type PaperRepo struct {
	client *ent.Client
}

// Save upserts p. The stored total_marks column is refreshed from the
// live computed value, so the snapshot is always current as of the last
// save.
func (r *PaperRepo) Save(ctx context.Context, p *paper.Paper) error {
	p.TotalMarks = paper.TotalMarks(p)

	sections, err := toJSONList(p.Sections)
	if err != nil {
		return fmt.Errorf("encode sections: %w", err)
	}
	questions, err := toJSONList(p.DirectQuestions)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}

	err = r.client.Paper.Create().
		SetID(p.ID).
		SetTitle(p.Title).
		SetBoard(string(p.Board)).
		SetClass(p.Class).
		SetSubject(p.Subject).
		SetCreatedBy(p.CreatedBy).
		SetCreatedAt(p.CreatedAt).
		SetDuration(p.Duration).
		SetTotalMarks(p.TotalMarks).
		SetIsSectionless(p.IsSectionless).
		SetInstructions(p.Instructions).
		SetSections(sections).
		SetQuestions(questions).
		OnConflictColumns(entpaper.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save paper %s: %w", p.ID, err)
	}
	return nil
}

// Get loads one paper by id. Returns (nil, nil) when it doesn't exist.
func (r *PaperRepo) Get(ctx context.Context, id string) (*paper.Paper, error) {
	row, err := r.client.Paper.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get paper %s: %w", id, err)
	}
	return entToPaper(row)
}

// List returns every saved paper, newest first.
func (r *PaperRepo) List(ctx context.Context) ([]*paper.Paper, error) {
	rows, err := r.client.Paper.Query().
		Order(ent.Desc(entpaper.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list papers: %w", err)
	}
	papers := make([]*paper.Paper, 0, len(rows))
	for _, row := range rows {
		p, err := entToPaper(row)
		if err != nil {
			return nil, err
		}
		papers = append(papers, p)
	}
	return papers, nil
}

// Delete removes a paper by id.
func (r *PaperRepo) Delete(ctx context.Context, id string) error {
	if err := r.client.Paper.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("delete paper %s: %w", id, err)
	}
	return nil
}

func entToPaper(row *ent.Paper) (*paper.Paper, error) {
	p := &paper.Paper{
		ID:            row.ID,
		Title:         row.Title,
		Board:         question.Board(row.Board),
		Class:         row.Class,
		Subject:       row.Subject,
		CreatedBy:     row.CreatedBy,
		CreatedAt:     row.CreatedAt,
		Duration:      row.Duration,
		TotalMarks:    row.TotalMarks,
		IsSectionless: row.IsSectionless,
		Instructions:  row.Instructions,
	}

	if err := fromJSONList(row.Sections, &p.Sections); err != nil {
		return nil, fmt.Errorf("decode sections for paper %s: %w", row.ID, err)
	}
	if err := fromJSONList(row.Questions, &p.DirectQuestions); err != nil {
		return nil, fmt.Errorf("decode questions for paper %s: %w", row.ID, err)
	}
	return p, nil
}

// toJSONList converts a typed slice to the []map[string]any shape ent
// stores in a JSON column.
func toJSONList[T any](items []T) ([]map[string]any, error) {
	if len(items) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// fromJSONList is the inverse of toJSONList.
func fromJSONList[T any](raw []map[string]any, out *[]T) error {
	if len(raw) == 0 {
		return nil
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
