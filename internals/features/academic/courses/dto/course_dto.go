// file: internals/features/academic/courses/dto/course_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	crsModel "kampusku_backend/internals/features/academic/courses/model"
)

type CreateCourseRequest struct {
	CourseCode string `json:"course_code" validate:"required,max=32"`
	CourseName string `json:"course_name" validate:"required,max=160"`

	CourseSemester   int        `json:"course_semester" validate:"required,min=1,max=14"`
	CourseLecturerID *uuid.UUID `json:"course_lecturer_id,omitempty" validate:"omitempty,uuid4"`
}

func (r CreateCourseRequest) ToModel() *crsModel.CourseModel {
	return &crsModel.CourseModel{
		CourseCode:       r.CourseCode,
		CourseName:       r.CourseName,
		CourseSemester:   r.CourseSemester,
		CourseLecturerID: r.CourseLecturerID,
	}
}

type CourseResponse struct {
	CourseID uuid.UUID `json:"course_id"`

	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`

	CourseSemester   int        `json:"course_semester"`
	CourseLecturerID *uuid.UUID `json:"course_lecturer_id,omitempty"`

	CourseCreatedAt time.Time `json:"course_created_at"`
	CourseUpdatedAt time.Time `json:"course_updated_at"`
}

func FromModel(m *crsModel.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID: m.CourseID,

		CourseCode: m.CourseCode,
		CourseName: m.CourseName,

		CourseSemester:   m.CourseSemester,
		CourseLecturerID: m.CourseLecturerID,

		CourseCreatedAt: m.CourseCreatedAt,
		CourseUpdatedAt: m.CourseUpdatedAt,
	}
}

func FromModels(list []crsModel.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
