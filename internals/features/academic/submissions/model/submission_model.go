// file: internals/features/academic/submissions/model/submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status tersimpan di DB. "not_submitted" dan "overdue_locked" tidak pernah
// tersimpan — keduanya state turunan saat baris belum/ tidak ada.
type SubmissionStatus string

const (
	SubmissionStatusSubmitted   SubmissionStatus = "submitted"
	SubmissionStatusResubmitted SubmissionStatus = "resubmitted"
	SubmissionStatusGraded      SubmissionStatus = "graded"
	SubmissionStatusRejected    SubmissionStatus = "rejected"
)

/*
SubmissionModel sengaja TANPA soft delete: unsubmit menghapus baris permanen
(hanya boleh sebelum dinilai), sehingga unique index (assignment, student)
tetap menjamin maksimal satu submission per pasangan di level storage —
double-submit yang balapan kalah di constraint, bukan di check-then-insert.
*/
type SubmissionModel struct {
	// Primary key
	SubmissionID uuid.UUID `json:"submission_id" gorm:"column:submission_id;type:uuid;default:gen_random_uuid();primaryKey"`

	SubmissionAssignmentID uuid.UUID `json:"submission_assignment_id" gorm:"column:submission_assignment_id;type:uuid;not null;uniqueIndex:uq_submission_assignment_student"`
	SubmissionStudentID    uuid.UUID `json:"submission_student_id" gorm:"column:submission_student_id;type:uuid;not null;uniqueIndex:uq_submission_assignment_student"`

	// Isi pengumpulan
	SubmissionFileURL     string    `json:"submission_file_url" gorm:"column:submission_file_url;type:text;not null"`
	SubmissionText        *string   `json:"submission_text,omitempty" gorm:"column:submission_text;type:text"`
	SubmissionSubmittedAt time.Time `json:"submission_submitted_at" gorm:"column:submission_submitted_at;type:timestamptz;not null"`

	SubmissionStatus SubmissionStatus `json:"submission_status" gorm:"column:submission_status;type:varchar(24);not null;default:'submitted'"`

	// Penilaian
	SubmissionScore              *float64          `json:"submission_score,omitempty" gorm:"column:submission_score;type:numeric(5,2)"`
	SubmissionFeedback           *string           `json:"submission_feedback,omitempty" gorm:"column:submission_feedback;type:text"`
	SubmissionScores             datatypes.JSONMap `json:"submission_scores,omitempty" gorm:"column:submission_scores;type:jsonb"`
	SubmissionGradedByLecturerID *uuid.UUID        `json:"submission_graded_by_lecturer_id,omitempty" gorm:"column:submission_graded_by_lecturer_id;type:uuid"`
	SubmissionGradedAt           *time.Time        `json:"submission_graded_at,omitempty" gorm:"column:submission_graded_at;type:timestamptz"`

	// Optimistic lock: grade/reject/resubmit saling serial per-submission
	SubmissionVersion int `json:"submission_version" gorm:"column:submission_version;not null;default:1"`

	SubmissionCreatedAt time.Time `json:"submission_created_at" gorm:"column:submission_created_at;type:timestamptz;autoCreateTime"`
	SubmissionUpdatedAt time.Time `json:"submission_updated_at" gorm:"column:submission_updated_at;type:timestamptz;autoUpdateTime"`
}

func (SubmissionModel) TableName() string { return "submissions" }
