package mark

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		obtained float64
		total    float64
		want     string
	}{
		{name: "exactly 75% is an A", obtained: 75, total: 100, want: GradeA},
		{name: "above 75%", obtained: 92.5, total: 100, want: GradeA},
		{name: "full marks", obtained: 50, total: 50, want: GradeA},
		{name: "just below 75% is a B", obtained: 74.999, total: 100, want: GradeB},
		{name: "exactly 60% is a B", obtained: 60, total: 100, want: GradeB},
		{name: "just below 60% is a C", obtained: 59.99, total: 100, want: GradeC},
		{name: "exactly 50% is a C", obtained: 25, total: 50, want: GradeC},
		{name: "mid D band", obtained: 45, total: 100, want: GradeD},
		{name: "exactly 40% is a D", obtained: 40, total: 100, want: GradeD},
		{name: "just below 40% fails", obtained: 39.99, total: 100, want: GradeFail},
		{name: "zero score fails", obtained: 0, total: 100, want: GradeFail},
		{name: "non-100 total scales", obtained: 30, total: 40, want: GradeA},
		{name: "zero total has no grade", obtained: 10, total: 0, want: GradeNone},
		{name: "zero score on zero total", obtained: 0, total: 0, want: GradeNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.obtained, tt.total); got != tt.want {
				t.Errorf("Classify(%v, %v) = %q; want %q", tt.obtained, tt.total, got, tt.want)
			}
		})
	}
}
