// Package allocate converts a percentage difficulty distribution into
// integer per-difficulty question quotas and picks questions against them.
package allocate

import (
	"fmt"

	"github.com/anvaya/paperforge/internal/question"
)

// DefaultMaxQuestions is the cap on how many questions a generated
// paper draws from the pool. Observed behavior constant; override via
// engine configuration, not by editing call sites.
const DefaultMaxQuestions = 20

// Distribution is a percentage split across the three difficulty bands.
// A valid distribution sums to exactly 100.
type Distribution struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// Validate checks that the percentages are non-negative and sum to 100.
func (d Distribution) Validate() error {
	if d.Easy < 0 || d.Medium < 0 || d.Hard < 0 {
		return fmt.Errorf("distribution percentages must be non-negative, got %d/%d/%d", d.Easy, d.Medium, d.Hard)
	}
	if sum := d.Easy + d.Medium + d.Hard; sum != 100 {
		return fmt.Errorf("distribution must sum to 100, got %d", sum)
	}
	return nil
}

// Counts is an integer quota per difficulty band.
type Counts struct {
	Easy   int
	Medium int
	Hard   int
}

// Total returns the sum of the three quotas.
func (c Counts) Total() int { return c.Easy + c.Medium + c.Hard }

// Split converts target and dist into integer quotas that sum to exactly
// target. Each quota is the floor of its percentage share; the rounding
// remainder is handed out in fixed priority order: one to easy, one to
// medium, and anything left to hard. The priority order is a stable
// output-compatibility contract, not a tuning knob.
func Split(target int, dist Distribution) (Counts, error) {
	if target < 0 {
		return Counts{}, fmt.Errorf("target count must be non-negative, got %d", target)
	}
	if err := dist.Validate(); err != nil {
		return Counts{}, err
	}

	c := Counts{
		Easy:   target * dist.Easy / 100,
		Medium: target * dist.Medium / 100,
		Hard:   target * dist.Hard / 100,
	}

	remainder := target - c.Total()
	if remainder >= 1 {
		c.Easy++
	}
	if remainder >= 2 {
		c.Medium++
	}
	if remainder >= 3 {
		c.Hard += remainder - 2
	}

	return c, nil
}

// CapTarget limits target to what a finite pool can supply.
func CapTarget(target, poolSize int) int {
	if poolSize < target {
		return poolSize
	}
	return target
}

// Selection is the outcome of picking questions against quotas, grouped
// by band with pool order preserved inside each group. Shortfall reports
// how many questions each band was short of its quota.
type Selection struct {
	Easy      []question.Record
	Medium    []question.Record
	Hard      []question.Record
	Shortfall Counts
}

// All returns the selection flattened in the fixed easy, medium, hard
// group order.
func (s Selection) All() []question.Record {
	var out []question.Record
	out = append(out, s.Easy...)
	out = append(out, s.Medium...)
	out = append(out, s.Hard...)
	return out
}

// Pick walks pool in order and takes up to the quota for each band.
func Pick(pool []question.Record, counts Counts) Selection {
	sel := Selection{
		Easy:   take(pool, question.DifficultyEasy, counts.Easy),
		Medium: take(pool, question.DifficultyMedium, counts.Medium),
		Hard:   take(pool, question.DifficultyHard, counts.Hard),
	}
	sel.Shortfall = Counts{
		Easy:   counts.Easy - len(sel.Easy),
		Medium: counts.Medium - len(sel.Medium),
		Hard:   counts.Hard - len(sel.Hard),
	}
	return sel
}

func take(pool []question.Record, d question.Difficulty, n int) []question.Record {
	var out []question.Record
	for _, r := range pool {
		if len(out) == n {
			break
		}
		if r.Difficulty == d {
			out = append(out, r)
		}
	}
	return out
}
