// file: internals/features/academic/attendance/model/attendance_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Sesi setengah hari: forenoon / afternoon
type SessionOfDay string

const (
	SessionForenoon  SessionOfDay = "fn"
	SessionAfternoon SessionOfDay = "an"
)

/*
AttendanceSessionModel append-only: satu baris per
(student, course, tanggal, sesi). Pengisian ulang tanggal yang sama
menimpa lewat upsert pada tuple unik, bukan baris baru.
*/
type AttendanceSessionModel struct {
	// Primary key
	AttendanceSessionID uuid.UUID `json:"attendance_session_id" gorm:"column:attendance_session_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AttendanceSessionStudentID uuid.UUID `json:"attendance_session_student_id" gorm:"column:attendance_session_student_id;type:uuid;not null;uniqueIndex:uq_attendance_tuple"`
	AttendanceSessionCourseID  uuid.UUID `json:"attendance_session_course_id" gorm:"column:attendance_session_course_id;type:uuid;not null;uniqueIndex:uq_attendance_tuple"`

	AttendanceSessionDate  time.Time    `json:"attendance_session_date" gorm:"column:attendance_session_date;type:date;not null;uniqueIndex:uq_attendance_tuple"`
	AttendanceSessionOfDay SessionOfDay `json:"attendance_session_of_day" gorm:"column:attendance_session_of_day;type:varchar(2);not null;uniqueIndex:uq_attendance_tuple"`

	AttendanceSessionPresent  bool `json:"attendance_session_present" gorm:"column:attendance_session_present;not null"`
	AttendanceSessionSemester int  `json:"attendance_session_semester" gorm:"column:attendance_session_semester;not null"`

	AttendanceSessionMarkedByLecturerID *uuid.UUID `json:"attendance_session_marked_by_lecturer_id,omitempty" gorm:"column:attendance_session_marked_by_lecturer_id;type:uuid"`

	AttendanceSessionCreatedAt time.Time `json:"attendance_session_created_at" gorm:"column:attendance_session_created_at;type:timestamptz;autoCreateTime"`
	AttendanceSessionUpdatedAt time.Time `json:"attendance_session_updated_at" gorm:"column:attendance_session_updated_at;type:timestamptz;autoUpdateTime"`
}

func (AttendanceSessionModel) TableName() string { return "attendance_sessions" }
