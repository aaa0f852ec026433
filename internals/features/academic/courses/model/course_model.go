// file: internals/features/academic/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	// Primary key
	CourseID uuid.UUID `json:"course_id" gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Identitas mata kuliah
	CourseCode string `json:"course_code" gorm:"column:course_code;type:varchar(32);not null;uniqueIndex"`
	CourseName string `json:"course_name" gorm:"column:course_name;type:varchar(160);not null"`

	CourseSemester   int        `json:"course_semester" gorm:"column:course_semester;not null"`
	CourseLecturerID *uuid.UUID `json:"course_lecturer_id,omitempty" gorm:"column:course_lecturer_id;type:uuid"`

	// Timestamps & soft delete
	CourseCreatedAt time.Time      `json:"course_created_at" gorm:"column:course_created_at;type:timestamptz;autoCreateTime"`
	CourseUpdatedAt time.Time      `json:"course_updated_at" gorm:"column:course_updated_at;type:timestamptz;autoUpdateTime"`
	CourseDeletedAt gorm.DeletedAt `json:"course_deleted_at,omitempty" gorm:"column:course_deleted_at;index"`
}

func (CourseModel) TableName() string { return "courses" }
