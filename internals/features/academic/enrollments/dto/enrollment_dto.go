// file: internals/features/academic/enrollments/dto/enrollment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	enrModel "kampusku_backend/internals/features/academic/enrollments/model"
)

type CreateEnrollmentRequest struct {
	EnrollmentStudentID uuid.UUID `json:"enrollment_student_id" validate:"required,uuid4"`
	EnrollmentCourseID  uuid.UUID `json:"enrollment_course_id" validate:"required,uuid4"`
}

func (r CreateEnrollmentRequest) ToModel() *enrModel.EnrollmentModel {
	return &enrModel.EnrollmentModel{
		EnrollmentStudentID: r.EnrollmentStudentID,
		EnrollmentCourseID:  r.EnrollmentCourseID,
		EnrollmentStatus:    enrModel.EnrollmentStatusActive,
	}
}

type EnrollmentResponse struct {
	EnrollmentID uuid.UUID `json:"enrollment_id"`

	EnrollmentStudentID uuid.UUID `json:"enrollment_student_id"`
	EnrollmentCourseID  uuid.UUID `json:"enrollment_course_id"`

	EnrollmentStatus enrModel.EnrollmentStatus `json:"enrollment_status"`

	EnrollmentCreatedAt time.Time `json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time `json:"enrollment_updated_at"`
}

func FromModel(m *enrModel.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID: m.EnrollmentID,

		EnrollmentStudentID: m.EnrollmentStudentID,
		EnrollmentCourseID:  m.EnrollmentCourseID,

		EnrollmentStatus: m.EnrollmentStatus,

		EnrollmentCreatedAt: m.EnrollmentCreatedAt,
		EnrollmentUpdatedAt: m.EnrollmentUpdatedAt,
	}
}

func FromModels(list []enrModel.EnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
