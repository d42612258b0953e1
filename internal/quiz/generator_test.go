package quiz

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/abhisek/mathquest/internal/rng"
)

// parseQuestion splits "a op b" back into operands for verification.
func parseQuestion(t *testing.T, q Question) (int, string, int) {
	t.Helper()
	parts := strings.Fields(q.Display)
	if len(parts) != 3 {
		t.Fatalf("unexpected display %q", q.Display)
	}
	a, err := strconv.Atoi(parts[0])
	if err != nil {
		t.Fatalf("bad left operand in %q: %v", q.Display, err)
	}
	b, err := strconv.Atoi(parts[2])
	if err != nil {
		t.Fatalf("bad right operand in %q: %v", q.Display, err)
	}
	return a, parts[1], b
}

func checkQuestion(t *testing.T, q Question) {
	t.Helper()
	a, op, b := parseQuestion(t, q)

	switch op {
	case "+":
		if q.Answer != a+b {
			t.Errorf("%q: answer %d, want %d", q.Display, q.Answer, a+b)
		}
	case "-":
		if q.Answer != a-b {
			t.Errorf("%q: answer %d, want %d", q.Display, q.Answer, a-b)
		}
		if q.Answer < 0 {
			t.Errorf("%q: negative answer %d", q.Display, q.Answer)
		}
	case "×":
		if q.Answer != a*b {
			t.Errorf("%q: answer %d, want %d", q.Display, q.Answer, a*b)
		}
	case "÷":
		if b == 0 || a%b != 0 {
			t.Errorf("%q: quotient is not a whole number", q.Display)
		} else if q.Answer != a/b {
			t.Errorf("%q: answer %d, want %d", q.Display, q.Answer, a/b)
		}
	default:
		t.Errorf("%q: unknown operator %q", q.Display, op)
	}
}

func TestGenerateAllModesAndWaves(t *testing.T) {
	for _, diff := range AllDifficulties() {
		waves := []int{1}
		if diff == Survival {
			waves = []int{1, 2, 3, 5, 6, 10, 15, 16, 25, 40}
		}
		for _, wave := range waves {
			t.Run(fmt.Sprintf("%s/wave%d", diff, wave), func(t *testing.T) {
				src := rng.NewSeeded(fmt.Sprintf("gen-%s-%d", diff, wave))
				for i := 0; i < 500; i++ {
					checkQuestion(t, Generate(diff, src, wave))
				}
			})
		}
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a := rng.NewSeeded("SHARED-CODE")
	b := rng.NewSeeded("SHARED-CODE")

	for i := 0; i < 200; i++ {
		qa := Generate(Medium, a, 1)
		qb := Generate(Medium, b, 1)
		if qa != qb {
			t.Fatalf("question %d diverged: %+v vs %+v", i, qa, qb)
		}
	}
}

func TestEasyOperatorsOnly(t *testing.T) {
	src := rng.NewSeeded("easy-ops")
	for i := 0; i < 300; i++ {
		_, op, _ := parseQuestion(t, Generate(Easy, src, 1))
		if op != "+" && op != "-" {
			t.Fatalf("easy mode produced operator %q", op)
		}
	}
}

func TestMediumOperatorsAndFactorBounds(t *testing.T) {
	src := rng.NewSeeded("medium-ops")
	for i := 0; i < 300; i++ {
		q := Generate(Medium, src, 1)
		a, op, b := parseQuestion(t, q)
		switch op {
		case "×":
			if a < 2 || a > 9 || b < 2 || b > 9 {
				t.Fatalf("%q: medium factors outside [2,9]", q.Display)
			}
		case "÷":
			if b < 2 || b > 9 || q.Answer < 2 || q.Answer > 9 {
				t.Fatalf("%q: medium divisor/quotient outside [2,9]", q.Display)
			}
		default:
			t.Fatalf("medium mode produced operator %q", op)
		}
	}
}

func TestSurvivalLateWavesDropEasyOps(t *testing.T) {
	src := rng.NewSeeded("late-waves")
	for i := 0; i < 300; i++ {
		_, op, _ := parseQuestion(t, Generate(Survival, src, 16))
		if op == "+" || op == "-" {
			t.Fatalf("wave 16 produced operator %q", op)
		}
	}
}

func TestSurvivalFactorLimitCaps(t *testing.T) {
	// 12 + 40/2 would be 32; the cap holds it at 30.
	src := rng.NewSeeded("factor-cap")
	for i := 0; i < 500; i++ {
		q := Generate(Survival, src, 40)
		a, op, b := parseQuestion(t, q)
		if op == "×" && (a > 30 || b > 30) {
			t.Fatalf("%q: factor above cap", q.Display)
		}
		_ = a
		_ = b
	}
}

func TestVisualAidOnlyForSmallEasySums(t *testing.T) {
	src := rng.NewSeeded("visual-aid")
	sawAid := false
	for i := 0; i < 500; i++ {
		q := Generate(Easy, src, 1)
		_, op, _ := parseQuestion(t, q)
		if q.VisualAid != 0 {
			sawAid = true
			if op != "+" {
				t.Fatalf("%q: visual aid on non-addition", q.Display)
			}
			if q.VisualAid != q.Answer || q.Answer > 10 {
				t.Fatalf("%q: visual aid %d for answer %d", q.Display, q.VisualAid, q.Answer)
			}
		}
	}
	if !sawAid {
		t.Error("no easy question produced a visual aid in 500 draws")
	}

	// Harder modes never set it.
	src = rng.NewSeeded("visual-aid-hard")
	for i := 0; i < 300; i++ {
		if q := Generate(Hard, src, 1); q.VisualAid != 0 {
			t.Fatalf("hard mode set visual aid: %+v", q)
		}
	}
}

func TestSettingsCatalog(t *testing.T) {
	tests := []struct {
		diff      Difficulty
		name      string
		time      int
		questions int
		xp        int
		lives     int
	}{
		{Easy, "Rookie", 0, 10, 1, 0},
		{Medium, "Pilot", 15, 15, 2, 3},
		{Hard, "Commander", 10, 20, 3, 3},
		{Survival, "Survival", 10, 0, 5, 1},
	}

	for _, tt := range tests {
		s := tt.diff.Settings()
		if s.Name != tt.name || s.Time != tt.time || s.Questions != tt.questions ||
			s.XPMultiplier != tt.xp || s.Lives != tt.lives {
			t.Errorf("%s settings = %+v", tt.diff, s)
		}
	}

	if Easy.Timed() || !Hard.Timed() {
		t.Error("Timed() wrong for easy/hard")
	}
	if !Survival.Endless() || Medium.Endless() {
		t.Error("Endless() wrong for survival/medium")
	}
}
