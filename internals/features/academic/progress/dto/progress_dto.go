// file: internals/features/academic/progress/dto/progress_dto.go
package dto

import (
	"github.com/google/uuid"

	"kampusku_backend/internals/features/academic/progress/service"
)

//
// =========================================================
// RESPONSE DTO
// =========================================================
//

/*
ProgressSummaryResponse: ringkasan satu mahasiswa untuk satu course.
AverageGrade null + label "N/A" saat belum ada yang dinilai;
0 artinya benar-benar dapat nilai nol.
*/
type ProgressSummaryResponse struct {
	CourseID  uuid.UUID `json:"course_id"`
	StudentID uuid.UUID `json:"student_id"`

	AttendancePercent float64 `json:"attendance_percent"`
	CompletionPercent float64 `json:"completion_percent"`

	TotalAssignments int `json:"total_assignments"`
	SubmittedCount   int `json:"submitted_count"`
	GradedCount      int `json:"graded_count"`

	AverageGrade      *float64 `json:"average_grade"`
	AverageGradeLabel string   `json:"average_grade_label"`
}

// WithAverage mengisi pasangan (nilai, label) dari hasil AverageGrade.
func (r *ProgressSummaryResponse) WithAverage(avg float64, ok bool) {
	if !ok {
		r.AverageGrade = nil
		r.AverageGradeLabel = "N/A"
		return
	}
	r.AverageGrade = &avg
	r.AverageGradeLabel = service.FormatGrade(avg)
}

type AttendanceBySemesterResponse struct {
	StudentID uuid.UUID                    `json:"student_id"`
	Semesters map[int]service.SemesterStat `json:"semesters"`
	Overall   service.SemesterStat         `json:"overall"`
}
