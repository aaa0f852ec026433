// file: internals/features/academic/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentStatus string

const (
	EnrollmentStatusActive  EnrollmentStatus = "active"
	EnrollmentStatusDropped EnrollmentStatus = "dropped"
)

type EnrollmentModel struct {
	// Primary key
	EnrollmentID uuid.UUID `json:"enrollment_id" gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Fakta keanggotaan (student, course) — satu baris per pasangan
	EnrollmentStudentID uuid.UUID `json:"enrollment_student_id" gorm:"column:enrollment_student_id;type:uuid;not null;uniqueIndex:uq_enrollment_student_course"`
	EnrollmentCourseID  uuid.UUID `json:"enrollment_course_id" gorm:"column:enrollment_course_id;type:uuid;not null;uniqueIndex:uq_enrollment_student_course"`

	EnrollmentStatus EnrollmentStatus `json:"enrollment_status" gorm:"column:enrollment_status;type:varchar(16);not null;default:'active'"`

	// Timestamps & soft delete
	EnrollmentCreatedAt time.Time      `json:"enrollment_created_at" gorm:"column:enrollment_created_at;type:timestamptz;autoCreateTime"`
	EnrollmentUpdatedAt time.Time      `json:"enrollment_updated_at" gorm:"column:enrollment_updated_at;type:timestamptz;autoUpdateTime"`
	EnrollmentDeletedAt gorm.DeletedAt `json:"enrollment_deleted_at,omitempty" gorm:"column:enrollment_deleted_at;index"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }
