// file: internals/features/academic/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	attModel "kampusku_backend/internals/features/academic/attendance/model"
)

//
// =========================================================
// REQUEST DTO
// =========================================================
//

// Satu sel kehadiran: (student, course, tanggal, sesi) -> hadir/tidak.
// Date diterima "YYYY-MM-DD" agar bebas dari zona waktu klien.
type RecordSessionRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required,uuid4"`
	CourseID  uuid.UUID `json:"course_id" validate:"required,uuid4"`

	Date     string                `json:"date" validate:"required,datetime=2006-01-02"`
	Session  attModel.SessionOfDay `json:"session" validate:"required,oneof=fn an"`
	Present  bool                  `json:"present"`
	Semester int                   `json:"semester" validate:"required,min=1,max=14"`
}

func (r RecordSessionRequest) ParsedDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.Date)
}

func (r RecordSessionRequest) ToModel(markedBy *uuid.UUID, date time.Time) *attModel.AttendanceSessionModel {
	return &attModel.AttendanceSessionModel{
		AttendanceSessionStudentID:          r.StudentID,
		AttendanceSessionCourseID:           r.CourseID,
		AttendanceSessionDate:               date,
		AttendanceSessionOfDay:              r.Session,
		AttendanceSessionPresent:            r.Present,
		AttendanceSessionSemester:           r.Semester,
		AttendanceSessionMarkedByLecturerID: markedBy,
	}
}

// Pengisian massal satu sesi kelas: dosen absen seisi kelas sekali jalan.
type BulkRecordRequest struct {
	CourseID uuid.UUID             `json:"course_id" validate:"required,uuid4"`
	Date     string                `json:"date" validate:"required,datetime=2006-01-02"`
	Session  attModel.SessionOfDay `json:"session" validate:"required,oneof=fn an"`
	Semester int                   `json:"semester" validate:"required,min=1,max=14"`

	Entries []BulkEntry `json:"entries" validate:"required,min=1,max=500,dive"`
}

type BulkEntry struct {
	StudentID uuid.UUID `json:"student_id" validate:"required,uuid4"`
	Present   bool      `json:"present"`
}

type ListAttendanceQuery struct {
	StudentID *uuid.UUID `query:"student_id" validate:"omitempty,uuid4"`
	CourseID  *uuid.UUID `query:"course_id" validate:"omitempty,uuid4"`
	Semester  *int       `query:"semester" validate:"omitempty,min=1,max=14"`
	DateFrom  *string    `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo    *string    `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
}

//
// =========================================================
// RESPONSE DTO
// =========================================================
//

type AttendanceSessionResponse struct {
	AttendanceSessionID uuid.UUID `json:"attendance_session_id"`

	StudentID uuid.UUID `json:"student_id"`
	CourseID  uuid.UUID `json:"course_id"`

	Date     string                `json:"date"`
	Session  attModel.SessionOfDay `json:"session"`
	Present  bool                  `json:"present"`
	Semester int                   `json:"semester"`

	MarkedByLecturerID *uuid.UUID `json:"marked_by_lecturer_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(m *attModel.AttendanceSessionModel) AttendanceSessionResponse {
	return AttendanceSessionResponse{
		AttendanceSessionID: m.AttendanceSessionID,

		StudentID: m.AttendanceSessionStudentID,
		CourseID:  m.AttendanceSessionCourseID,

		Date:     m.AttendanceSessionDate.Format("2006-01-02"),
		Session:  m.AttendanceSessionOfDay,
		Present:  m.AttendanceSessionPresent,
		Semester: m.AttendanceSessionSemester,

		MarkedByLecturerID: m.AttendanceSessionMarkedByLecturerID,

		CreatedAt: m.AttendanceSessionCreatedAt,
		UpdatedAt: m.AttendanceSessionUpdatedAt,
	}
}

func FromModels(list []attModel.AttendanceSessionModel) []AttendanceSessionResponse {
	out := make([]AttendanceSessionResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
