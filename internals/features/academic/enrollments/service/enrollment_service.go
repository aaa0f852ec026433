// file: internals/features/academic/enrollments/service/enrollment_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academic/enrollments/model"
)

// IsEnrolled: prasyarat semua operasi submission — ada Enrollment aktif
// untuk (student, course). db boleh *gorm.DB biasa atau transaction (tx).
func IsEnrolled(db *gorm.DB, studentID, courseID uuid.UUID) (bool, error) {
	var n int64
	err := db.Model(&model.EnrollmentModel{}).
		Where("enrollment_student_id = ? AND enrollment_course_id = ? AND enrollment_status = ?",
			studentID, courseID, model.EnrollmentStatusActive).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListActiveCourseIDs mengembalikan course aktif milik seorang mahasiswa.
func ListActiveCourseIDs(db *gorm.DB, studentID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.Model(&model.EnrollmentModel{}).
		Where("enrollment_student_id = ? AND enrollment_status = ?",
			studentID, model.EnrollmentStatusActive).
		Pluck("enrollment_course_id", &ids).Error
	return ids, err
}
