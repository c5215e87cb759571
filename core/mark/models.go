package mark

import (
	"time"

	"github.com/trezcool/shule/core"
)

// Mark is a recorded assessment score. Grade and Trend are derived fields:
// they are only ever set by the evaluation pipeline, never from client input.
type Mark struct {
	ID           int       `json:"id"`
	StudentID    int       `json:"student_id"`
	SubjectID    int       `json:"subject_id"`
	AssessmentID int       `json:"assessment_id"`
	Obtained     float64   `json:"obtained"`
	Grade        string    `json:"grade"`
	Trend        string    `json:"trend"`
	CreatedAt    time.Time `json:"created_at"` // UTC
	UpdatedAt    time.Time `json:"updated_at"` // UTC
}

// NewMark is the raw inbound payload for recording a mark.
// ID is set when re-saving an existing mark (correction flow).
// Any grade/trend a client may try to smuggle in has no field to land on.
type NewMark struct {
	ID           int     `json:"id"`
	StudentID    int     `json:"student_id" validate:"required"`
	SubjectID    int     `json:"subject_id" validate:"required"`
	AssessmentID int     `json:"assessment_id" validate:"required"`
	Obtained     float64 `json:"obtained" validate:"gte=0"`
}

func (nm *NewMark) Validate() error {
	return core.Validate.Struct(nm)
}
