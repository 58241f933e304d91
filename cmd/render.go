package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/anvaya/paperforge/internal/paper"
	"github.com/anvaya/paperforge/internal/question"
)

// renderPaper prints a paper in a plain printable layout.
func renderPaper(w io.Writer, p *paper.Paper) {
	rule := strings.Repeat("=", 72)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, p.Title)
	fmt.Fprintf(w, "Time: %d minutes    Maximum Marks: %d\n", p.Duration, paper.TotalMarks(p))
	fmt.Fprintln(w, rule)

	if len(p.Instructions) > 0 {
		fmt.Fprintln(w, "General Instructions:")
		for i, line := range p.Instructions {
			fmt.Fprintf(w, "  %d. %s\n", i+1, line)
		}
		fmt.Fprintln(w)
	}

	if p.IsSectionless {
		renderQuestions(w, p.DirectQuestions, 1)
		return
	}

	num := 1
	for _, s := range p.Sections {
		fmt.Fprintln(w, s.Title)
		if s.Description != "" {
			fmt.Fprintln(w, s.Description)
		}
		fmt.Fprintln(w, strings.Repeat("-", 72))
		renderQuestions(w, s.Questions, num)
		num += len(s.Questions)
		fmt.Fprintln(w)
	}
}

func renderQuestions(w io.Writer, qs []question.Record, start int) {
	for i, q := range qs {
		fmt.Fprintf(w, "%d. %s  [%d marks]\n", start+i, q.Text, q.Marks)
		for j, opt := range q.Options {
			fmt.Fprintf(w, "   (%c) %s\n", 'a'+j, opt)
		}
		if q.Assertion != "" {
			fmt.Fprintf(w, "   Assertion: %s\n", q.Assertion)
			fmt.Fprintf(w, "   Reason: %s\n", q.Reason)
		}
		for _, pair := range q.MatchPairs {
			fmt.Fprintf(w, "   %s  -  %s\n", pair.Left, pair.Right)
		}
		for j, sq := range q.SubQuestions {
			fmt.Fprintf(w, "   (%c) %s  [%d marks]\n", 'a'+j, sq.Text, sq.Marks)
		}
	}
}
