// Package seed populates a question bank with plausible sample records
// so the composition pipeline can be exercised without authored content.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/anvaya/paperforge/internal/question"
)

// Inserter is the slice of the question repository seeding needs.
type Inserter interface {
	Create(ctx context.Context, rec question.Record) (string, error)
}

// DefaultCount is the bank size produced when no count is given.
const DefaultCount = 50

var subjects = []string{"Mathematics", "Physics", "Chemistry", "Biology", "English", "History", "Geography"}

var classes = []string{"8", "9", "10", "11", "12"}

var boards = []question.Board{question.BoardCBSE, question.BoardICSE, question.BoardState}

var seedTypes = []question.Type{
	question.TypeMCQ,
	question.TypeShortAnswer,
	question.TypeLongAnswer,
	question.TypeFillInBlank,
	question.TypeMatchTheFollowing,
	question.TypeAssertionReason,
}

var difficulties = []question.Difficulty{
	question.DifficultyEasy,
	question.DifficultyMedium,
	question.DifficultyHard,
}

var bloomLevels = []question.BloomLevel{
	question.BloomRemember,
	question.BloomUnderstand,
	question.BloomApply,
	question.BloomAnalyze,
	question.BloomEvaluate,
	question.BloomCreate,
}

var chaptersBySubject = map[string][]string{
	"Mathematics": {"Algebra", "Geometry", "Trigonometry", "Calculus", "Statistics"},
	"Physics":     {"Mechanics", "Electricity", "Magnetism", "Optics", "Thermodynamics"},
	"Chemistry":   {"Organic Chemistry", "Inorganic Chemistry", "Physical Chemistry", "Biochemistry"},
	"Biology":     {"Cell Biology", "Genetics", "Ecology", "Physiology", "Evolution"},
	"English":     {"Grammar", "Literature", "Writing", "Reading Comprehension"},
	"History":     {"Ancient History", "Medieval History", "Modern History", "World Wars"},
	"Geography":   {"Physical Geography", "Human Geography", "Climatology", "Oceanography"},
}

var topicsByChapter = map[string][]string{
	"Algebra":               {"Equations", "Polynomials", "Matrices", "Determinants"},
	"Geometry":              {"Triangles", "Circles", "Coordinate Geometry", "Vectors"},
	"Trigonometry":          {"Angles", "Sine & Cosine", "Identities", "Applications"},
	"Calculus":              {"Limits", "Derivatives", "Integrals", "Differential Equations"},
	"Statistics":            {"Mean", "Median", "Mode", "Standard Deviation", "Probability"},
	"Mechanics":             {"Newton's Laws", "Kinematics", "Dynamics", "Work & Energy"},
	"Electricity":           {"Current", "Voltage", "Resistance", "Circuits"},
	"Magnetism":             {"Fields", "Forces", "Induction", "Flux"},
	"Optics":                {"Reflection", "Refraction", "Lenses", "Wave Optics"},
	"Thermodynamics":        {"Heat", "Energy", "Entropy", "Laws of Thermodynamics"},
	"Organic Chemistry":     {"Hydrocarbons", "Functional Groups", "Reactions", "Stereochemistry"},
	"Inorganic Chemistry":   {"Periodic Table", "Elements", "Compounds", "Coordination Chemistry"},
	"Physical Chemistry":    {"Equilibrium", "Thermochemistry", "Electrochemistry", "Chemical Kinetics"},
	"Biochemistry":          {"Proteins", "Carbohydrates", "Lipids", "Nucleic Acids"},
	"Cell Biology":          {"Cell Structure", "Cell Division", "Cell Organelles", "Cell Membranes"},
	"Genetics":              {"Inheritance", "DNA", "RNA", "Mutations"},
	"Ecology":               {"Ecosystems", "Food Chains", "Biomes", "Ecological Balance"},
	"Physiology":            {"Digestion", "Respiration", "Circulation", "Excretion"},
	"Evolution":             {"Natural Selection", "Adaptation", "Speciation", "Evolutionary Theories"},
	"Grammar":               {"Parts of Speech", "Tenses", "Clauses", "Syntax"},
	"Literature":            {"Poetry", "Drama", "Fiction", "Non-fiction"},
	"Writing":               {"Essays", "Letters", "Reports", "Creative Writing"},
	"Reading Comprehension": {"Main Ideas", "Inference", "Vocabulary", "Author's Purpose"},
	"Ancient History":       {"Early Civilizations", "Classical Period", "Ancient Empires"},
	"Medieval History":      {"Middle Ages", "Renaissance", "Feudalism"},
	"Modern History":        {"Industrial Revolution", "Colonialism", "Nationalism"},
	"World Wars":            {"World War I", "World War II", "Cold War"},
	"Physical Geography":    {"Landforms", "Rivers", "Mountains", "Climate"},
	"Human Geography":       {"Population", "Settlements", "Economic Activities"},
	"Climatology":           {"Weather Patterns", "Climate Zones", "Climate Change"},
	"Oceanography":          {"Ocean Currents", "Marine Life", "Coastal Features"},
}

// Run inserts count generated records through ins. The rng makes output
// reproducible when seeded; pass a fixed-seed source in tests.
func Run(ctx context.Context, ins Inserter, rng *rand.Rand, count int) (int, error) {
	if count <= 0 {
		count = DefaultCount
	}
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		rec := Record(rng)
		if _, err := ins.Create(ctx, rec); err != nil {
			return i, fmt.Errorf("seed record %d: %w", i+1, err)
		}
	}
	return count, nil
}

// Bank returns n sample questions from a fixed seed. Content is
// reproducible for a given seed; ids are fresh every call.
func Bank(n int, seedVal uint64) []question.Record {
	rng := rand.New(rand.NewPCG(seedVal, 0))
	records := make([]question.Record, n)
	for i := range records {
		records[i] = Record(rng)
	}
	return records
}

// Record builds one sample question drawn from the subject tables.
func Record(rng *rand.Rand) question.Record {
	subject := pick(rng, subjects)
	chapter := pick(rng, chaptersBySubject[subject])
	topics, ok := topicsByChapter[chapter]
	if !ok {
		topics = []string{"General"}
	}
	topic := pick(rng, topics)
	qType := pick(rng, seedTypes)
	difficulty := pick(rng, difficulties)

	rec := question.Record{
		ID:         uuid.NewString(),
		Type:       qType,
		Board:      pick(rng, boards),
		Class:      pick(rng, classes),
		Subject:    subject,
		Chapter:    chapter,
		Topic:      topic,
		Difficulty: difficulty,
		BloomLevel: pick(rng, bloomLevels),
		Marks:      marksFor(rng, difficulty),
	}
	rec.Text = questionText(rng, subject, chapter, topic, difficulty, qType)

	// One in five records carries a figure.
	if rng.IntN(5) == 0 {
		rec.HasImage = true
		rec.ImageURL = "https://placehold.co/600x400"
	}

	switch qType {
	case question.TypeMCQ:
		rec.Options = []string{
			"Correct answer about " + topic,
			"Incorrect concept related to " + topic,
			"Partially true statement about " + topic,
			"Common misconception about " + topic,
		}
		rec.Answer = "A"
	case question.TypeShortAnswer:
		rec.Answer = "This is a brief explanation of " + topic + "."
	case question.TypeLongAnswer:
		rec.Answer = "This is a detailed explanation of " + topic + ", covering its key aspects, applications, and significance."
	case question.TypeFillInBlank:
		rec.Answer = strings.Replace(rec.Text, "_______", topic, 1)
	case question.TypeMatchTheFollowing:
		rec.MatchPairs = []question.MatchPair{
			{Left: topic + " term 1", Right: "Definition 3"},
			{Left: topic + " term 2", Right: "Definition 1"},
			{Left: topic + " term 3", Right: "Definition 4"},
			{Left: topic + " term 4", Right: "Definition 2"},
		}
		rec.Answer = "A-3, B-1, C-4, D-2"
	case question.TypeAssertionReason:
		rec.Assertion = topic + " is a fundamental concept in " + chapter + "."
		rec.Reason = "It forms the basis of understanding " + subject + "."
		rec.Answer = "Both assertion and reason are correct, and reason is the correct explanation for assertion."
	}

	return rec
}

func questionText(rng *rand.Rand, subject, chapter, topic string, difficulty question.Difficulty, qType question.Type) string {
	verb := "Describe"
	switch difficulty {
	case question.DifficultyMedium:
		verb = "Explain"
	case question.DifficultyHard:
		verb = "Critically analyze"
	}

	var starters []string
	switch qType {
	case question.TypeMCQ:
		starters = []string{
			"Which of the following best describes",
			"Choose the correct option about",
			"Select the most appropriate answer regarding",
			"What is the correct statement about",
		}
	case question.TypeShortAnswer:
		starters = []string{
			"Briefly " + strings.ToLower(verb[:1]) + verb[1:],
			"Write a short note on",
			"Give a concise explanation of",
		}
	case question.TypeLongAnswer:
		starters = []string{
			verb + " in detail",
			"Elaborate on",
			"Discuss thoroughly",
			"Provide a comprehensive overview of",
		}
	case question.TypeFillInBlank:
		starters = []string{
			"_______ is the process involved in",
			"The _______ is responsible for",
			chapter + " involves the concept of _______ in",
		}
	case question.TypeMatchTheFollowing:
		return "Match the following " + topic + " terms with their definitions in " + chapter + "."
	case question.TypeAssertionReason:
		return "Assertion: " + topic + " is a fundamental concept in " + chapter + ".\nReason: It forms the basis of understanding " + subject + "."
	default:
		starters = []string{verb}
	}

	return pick(rng, starters) + " " + topic + " in " + chapter + "."
}

func marksFor(rng *rand.Rand, d question.Difficulty) int {
	switch d {
	case question.DifficultyHard:
		return 3 + rng.IntN(3)
	case question.DifficultyMedium:
		return 2 + rng.IntN(2)
	default:
		return 1 + rng.IntN(2)
	}
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}
