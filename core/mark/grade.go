package mark

// Grade labels
const (
	GradeA    = "A"
	GradeB    = "B"
	GradeC    = "C"
	GradeD    = "D"
	GradeFail = "Fail"
	GradeNone = "no-grade" // zero-weight assessment, nothing to grade
)

// Classify derives the letter grade from an obtained score and the
// assessment's total. Thresholds are checked first-match-wins:
//	>= 75%: A
//	>= 60%: B
//	>= 50%: C
//	 < 40%: Fail
// leaving the 40-49% band to fall through to D.
func Classify(obtained, total float64) string {
	if total == 0 {
		return GradeNone
	}
	pct := obtained / total * 100

	if pct >= 75 {
		return GradeA
	}
	if pct >= 60 {
		return GradeB
	}
	if pct >= 50 {
		return GradeC
	}
	if pct < 40 {
		return GradeFail
	}
	return GradeD
}
