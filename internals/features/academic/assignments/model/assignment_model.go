// file: internals/features/academic/assignments/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type AssignmentModel struct {
	// Primary key
	AssignmentID uuid.UUID `json:"assignment_id" gorm:"column:assignment_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Keterkaitan mata kuliah
	AssignmentCourseID uuid.UUID `json:"assignment_course_id" gorm:"column:assignment_course_id;type:uuid;not null;index"`

	// Isi tugas
	AssignmentTitle       string  `json:"assignment_title" gorm:"column:assignment_title;type:varchar(200);not null"`
	AssignmentDescription *string `json:"assignment_description,omitempty" gorm:"column:assignment_description;type:text"`

	// Tenggat — NOT NULL; nilai zero dianggap fatal oleh engine (bukan "tidak pernah overdue")
	AssignmentDueAt time.Time `json:"assignment_due_at" gorm:"column:assignment_due_at;type:timestamptz;not null"`

	// Lampiran dosen (opsional): URL materi + file soal
	AssignmentResourceURLs pq.StringArray `json:"assignment_resource_urls,omitempty" gorm:"column:assignment_resource_urls;type:text[]"`
	AssignmentFileURL      *string        `json:"assignment_file_url,omitempty" gorm:"column:assignment_file_url;type:text"`

	AssignmentCreatedByLecturerID uuid.UUID `json:"assignment_created_by_lecturer_id" gorm:"column:assignment_created_by_lecturer_id;type:uuid;not null"`

	// Timestamps & soft delete
	AssignmentCreatedAt time.Time      `json:"assignment_created_at" gorm:"column:assignment_created_at;type:timestamptz;autoCreateTime"`
	AssignmentUpdatedAt time.Time      `json:"assignment_updated_at" gorm:"column:assignment_updated_at;type:timestamptz;autoUpdateTime"`
	AssignmentDeletedAt gorm.DeletedAt `json:"assignment_deleted_at,omitempty" gorm:"column:assignment_deleted_at;index"`
}

func (AssignmentModel) TableName() string { return "assignments" }
