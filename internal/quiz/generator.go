// Package quiz generates arithmetic questions for the game modes.
//
// Generation is a pure function of (difficulty, wave, source): the only
// randomness comes from the injected rng.Source, so a seeded source replays
// the identical question sequence for a shared challenge code.
package quiz

import (
	"fmt"

	"github.com/abhisek/mathquest/internal/rng"
)

// Question is a single generated arithmetic question.
type Question struct {
	// Display is the human-readable expression, e.g. "7 + 5".
	Display string

	// Answer is the exact integer answer.
	Answer int

	// VisualAid is the number of counting dots to render for small easy-mode
	// sums. 0 means no visual aid.
	VisualAid int
}

// Operator is an arithmetic operation a question can use.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
)

// Waves beyond this exclude addition and subtraction in survival.
const hardOpsWave = 15

// visualAidMax is the largest easy-mode sum that still gets counting dots.
const visualAidMax = 10

// Generate produces a question for the mode. wave only matters for survival,
// where the effective difficulty and number bounds scale with it; pass 1 for
// the standard modes.
func Generate(diff Difficulty, src rng.Source, wave int) Question {
	mode, maxNum := effectiveMode(diff, wave)

	ops := operators(mode)
	if diff == Survival && wave > hardOpsWave {
		ops = pruneEasyOps(ops)
	}

	switch rng.Pick(src, ops) {
	case OpAdd:
		// First operand from the upper half of the range keeps easy sums
		// from collapsing to trivially small numbers.
		a := src.IntBetween(maxNum/2, maxNum)
		b := src.IntBetween(1, maxNum)
		q := Question{Display: fmt.Sprintf("%d + %d", a, b), Answer: a + b}
		if mode == Easy && q.Answer <= visualAidMax {
			q.VisualAid = q.Answer
		}
		return q

	case OpSubtract:
		a := src.IntBetween(1, maxNum)
		b := src.IntBetween(1, a) // never below zero
		return Question{Display: fmt.Sprintf("%d - %d", a, b), Answer: a - b}

	case OpMultiply:
		var a, b int
		if mode == Medium {
			a = src.IntBetween(2, 9)
			b = src.IntBetween(2, 9)
		} else {
			limit := factorLimit(diff, wave)
			a = src.IntBetween(3, limit)
			b = src.IntBetween(3, limit)
		}
		return Question{Display: fmt.Sprintf("%d × %d", a, b), Answer: a * b}

	default: // OpDivide
		// Build the product from its factors so the quotient is always exact.
		limit := factorLimit(diff, wave)
		if mode == Medium {
			limit = 9
		}
		divisor := src.IntBetween(2, limit)
		answer := src.IntBetween(2, limit)
		dividend := divisor * answer
		return Question{Display: fmt.Sprintf("%d ÷ %d", dividend, divisor), Answer: answer}
	}
}

// effectiveMode maps (difficulty, wave) to the operand ruleset and the upper
// number bound. Survival derives both from the wave so difficulty keeps
// climbing without limit.
func effectiveMode(diff Difficulty, wave int) (Difficulty, int) {
	if diff != Survival {
		switch diff {
		case Easy:
			return Easy, 12
		case Medium:
			return Medium, 20
		default:
			return Hard, 50
		}
	}

	switch {
	case wave <= 2:
		return Easy, 10 + wave
	case wave <= 5:
		return Medium, 15 + wave
	default:
		return Hard, 20 + wave*2
	}
}

// operators returns the operator set for an effective mode.
func operators(mode Difficulty) []Operator {
	switch mode {
	case Easy:
		return []Operator{OpAdd, OpSubtract}
	case Medium:
		return []Operator{OpMultiply, OpDivide}
	default:
		return []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide}
	}
}

// pruneEasyOps removes addition and subtraction from the choice set.
func pruneEasyOps(ops []Operator) []Operator {
	kept := make([]Operator, 0, len(ops))
	for _, op := range ops {
		if op == OpAdd || op == OpSubtract {
			continue
		}
		kept = append(kept, op)
	}
	return kept
}

// factorLimit bounds multiplication/division factors. Survival grows the
// limit with the wave, capped at 30.
func factorLimit(diff Difficulty, wave int) int {
	if diff != Survival {
		return 12
	}
	limit := 12 + wave/2
	if limit > 30 {
		limit = 30
	}
	return limit
}
