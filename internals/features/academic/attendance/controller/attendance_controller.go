// file: internals/features/academic/attendance/controller/attendance_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "kampusku_backend/internals/features/academic/attendance/dto"
	model "kampusku_backend/internals/features/academic/attendance/model"
	enrService "kampusku_backend/internals/features/academic/enrollments/service"
	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/helpers/apperr"
	helperAuth "kampusku_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:        db,
		Validator: validator.New(),
	}
}

// kolom yang di-overwrite saat tuple sudah ada (idempotent re-mark)
var upsertColumns = []string{
	"attendance_session_present",
	"attendance_session_semester",
	"attendance_session_marked_by_lecturer_id",
	"attendance_session_updated_at",
}

// onConflictTuple: upsert pada tuple unik — pengisian ulang menimpa,
// tidak pernah menambah baris kedua untuk sesi yang sama.
func onConflictTuple() clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_session_student_id"},
			{Name: "attendance_session_course_id"},
			{Name: "attendance_session_date"},
			{Name: "attendance_session_of_day"},
		},
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}
}

/* =========================
   Handlers — LECTURER/ADMIN
========================= */

// POST /attendance/sessions (LECTURER/ADMIN)
func (ctrl *AttendanceController) RecordSession(c *fiber.Ctx) error {
	actor, err := helperAuth.RequireLecturer(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.RecordSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	date, err := body.ParsedDate()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
	}

	ok, err := enrService.IsEnrolled(ctrl.DB.WithContext(c.UserContext()), body.StudentID, body.CourseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ok {
		return apperr.JsonAppError(c, apperr.ErrNotEnrolled)
	}

	var markedBy *uuid.UUID
	if actor.LecturerID != uuid.Nil {
		markedBy = &actor.LecturerID
	}
	m := body.ToModel(markedBy, date)

	if err := ctrl.DB.WithContext(c.UserContext()).
		Clauses(onConflictTuple()).
		Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// reload agar ID & timestamp hasil upsert ikut terbawa
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(m, "attendance_session_student_id = ? AND attendance_session_course_id = ? AND attendance_session_date = ? AND attendance_session_of_day = ?",
			body.StudentID, body.CourseID, date, body.Session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Kehadiran tercatat", dto.FromModel(m))
}

// POST /attendance/sessions/bulk (LECTURER/ADMIN)
// Satu sesi kelas sekali jalan; seluruh batch atomik dalam satu transaksi.
func (ctrl *AttendanceController) BulkRecord(c *fiber.Ctx) error {
	actor, err := helperAuth.RequireLecturer(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.BulkRecordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
	}

	var markedBy *uuid.UUID
	if actor.LecturerID != uuid.Nil {
		markedBy = &actor.LecturerID
	}
	rows := make([]model.AttendanceSessionModel, 0, len(body.Entries))
	for _, e := range body.Entries {
		rows = append(rows, model.AttendanceSessionModel{
			AttendanceSessionStudentID:          e.StudentID,
			AttendanceSessionCourseID:           body.CourseID,
			AttendanceSessionDate:               date,
			AttendanceSessionOfDay:              body.Session,
			AttendanceSessionPresent:            e.Present,
			AttendanceSessionSemester:           body.Semester,
			AttendanceSessionMarkedByLecturerID: markedBy,
		})
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(onConflictTuple()).CreateInBatches(rows, 100).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Kehadiran kelas tercatat", fiber.Map{
		"course_id": body.CourseID,
		"date":      body.Date,
		"session":   body.Session,
		"recorded":  len(rows),
	})
}

// GET /attendance/sessions/list (LECTURER/ADMIN)
func (ctrl *AttendanceController) List(c *fiber.Ctx) error {
	if _, err := helperAuth.RequireLecturer(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	var q dto.ListAttendanceQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctrl.Validator.Struct(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	base := ctrl.DB.WithContext(c.UserContext()).Model(&model.AttendanceSessionModel{})
	if q.StudentID != nil {
		base = base.Where("attendance_session_student_id = ?", *q.StudentID)
	}
	if q.CourseID != nil {
		base = base.Where("attendance_session_course_id = ?", *q.CourseID)
	}
	if q.Semester != nil {
		base = base.Where("attendance_session_semester = ?", *q.Semester)
	}
	if q.DateFrom != nil {
		base = base.Where("attendance_session_date >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		base = base.Where("attendance_session_date <= ?", *q.DateTo)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.AttendanceSessionModel
	if err := base.
		Order("attendance_session_date DESC, attendance_session_of_day ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", dto.FromModels(rows), &p)
}

/* =========================
   Handlers — STUDENT
========================= */

// GET /attendance/sessions (STUDENT — riwayat milik sendiri)
func (ctrl *AttendanceController) ListMine(c *fiber.Ctx) error {
	actor, err := helperAuth.RequireStudent(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 200)

	base := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.AttendanceSessionModel{}).
		Where("attendance_session_student_id = ?", actor.StudentID)

	if raw := strings.TrimSpace(c.Query("course_id")); raw != "" {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "course_id tidak valid")
		}
		base = base.Where("attendance_session_course_id = ?", courseID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.AttendanceSessionModel
	if err := base.
		Order("attendance_session_date DESC, attendance_session_of_day ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", dto.FromModels(rows), &p)
}
