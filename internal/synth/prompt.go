package synth

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an experienced school examiner writing questions for an exam question paper.

Rules:
- Write questions appropriate for the given board, class, and subject.
- Stay within the requested chapters and topics. If none are given, pick standard curriculum topics.
- Match the requested difficulty band for every question.
- Use plain text. No LaTeX, no markdown.
- For MCQ questions provide exactly 4 options with the correct one first.
- Marks per question: Easy 1-2, Medium 2-3, Hard 3-5.
- Assign a Bloom's taxonomy level (Remember, Understand, Apply, Analyze, Evaluate, Create) to every question.
- Provide a model answer for every question.`

// buildUserMessage renders the batch request sent to the provider.
func buildUserMessage(params Params, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d exam questions.\n", count)
	fmt.Fprintf(&b, "Board: %s\n", params.Board)
	fmt.Fprintf(&b, "Class: %s\n", params.Class)
	fmt.Fprintf(&b, "Subject: %s\n", params.Subject)
	fmt.Fprintf(&b, "Chapters: %s\n", listOr(params.Chapters, "any standard chapter"))
	fmt.Fprintf(&b, "Topics: %s\n", listOr(params.Topics, "all relevant topics"))
	fmt.Fprintf(&b, "Difficulty mix: %d%% Easy, %d%% Medium, %d%% Hard\n",
		params.Distribution.Easy, params.Distribution.Medium, params.Distribution.Hard)

	return b.String()
}

func listOr(list []string, fallback string) string {
	if len(list) == 0 {
		return fallback
	}
	return strings.Join(list, ", ")
}
