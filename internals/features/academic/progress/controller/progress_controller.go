// file: internals/features/academic/progress/controller/progress_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	asgModel "kampusku_backend/internals/features/academic/assignments/model"
	attModel "kampusku_backend/internals/features/academic/attendance/model"
	enrService "kampusku_backend/internals/features/academic/enrollments/service"
	dto "kampusku_backend/internals/features/academic/progress/dto"
	"kampusku_backend/internals/features/academic/progress/service"
	subModel "kampusku_backend/internals/features/academic/submissions/model"
	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/helpers/apperr"
	helperAuth "kampusku_backend/internals/helpers/auth"
)

type ProgressController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{
		DB:        db,
		Validator: validator.New(),
	}
}

// loadCourseData memuat bahan mentah agregasi untuk (student, course).
// Matematika ada di service; fungsi ini hanya query.
func (ctrl *ProgressController) loadCourseData(c *fiber.Ctx, studentID, courseID uuid.UUID) (
	totalAssignments int64,
	subs []subModel.SubmissionModel,
	sessions []attModel.AttendanceSessionModel,
	err error,
) {
	db := ctrl.DB.WithContext(c.UserContext())

	if err = db.Model(&asgModel.AssignmentModel{}).
		Where("assignment_course_id = ?", courseID).
		Count(&totalAssignments).Error; err != nil {
		return
	}

	if err = db.
		Joins("JOIN assignments ON assignments.assignment_id = submissions.submission_assignment_id").
		Where("assignments.assignment_course_id = ? AND submissions.submission_student_id = ?", courseID, studentID).
		Where("assignments.assignment_deleted_at IS NULL").
		Find(&subs).Error; err != nil {
		return
	}

	err = db.
		Where("attendance_session_student_id = ? AND attendance_session_course_id = ?", studentID, courseID).
		Find(&sessions).Error
	return
}

/* =========================
   Handlers — STUDENT
========================= */

// GET /progress/summary?course_id= (STUDENT)
func (ctrl *ProgressController) Summary(c *fiber.Ctx) error {
	actor, err := helperAuth.RequireStudent(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	courseID, err := uuid.Parse(strings.TrimSpace(c.Query("course_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "course_id tidak valid")
	}

	ok, err := enrService.IsEnrolled(ctrl.DB.WithContext(c.UserContext()), actor.StudentID, courseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ok {
		return apperr.JsonAppError(c, apperr.ErrNotEnrolled)
	}

	total, subs, sessions, err := ctrl.loadCourseData(c, actor.StudentID, courseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	gradedCount := 0
	submittedCount := 0
	for i := range subs {
		switch subs[i].SubmissionStatus {
		case subModel.SubmissionStatusGraded:
			gradedCount++
			submittedCount++
		case subModel.SubmissionStatusSubmitted, subModel.SubmissionStatusResubmitted:
			submittedCount++
		}
	}

	resp := dto.ProgressSummaryResponse{
		CourseID:  courseID,
		StudentID: actor.StudentID,

		AttendancePercent: service.OverallAttendance(sessions).Percent,
		CompletionPercent: service.CompletionPercent(int(total), subs),

		TotalAssignments: int(total),
		SubmittedCount:   submittedCount,
		GradedCount:      gradedCount,
	}
	resp.WithAverage(service.AverageGrade(subs))

	return helper.JsonOK(c, "OK", resp)
}

// GET /progress/attendance-by-semester (STUDENT)
func (ctrl *ProgressController) AttendanceBySemester(c *fiber.Ctx) error {
	actor, err := helperAuth.RequireStudent(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var sessions []attModel.AttendanceSessionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("attendance_session_student_id = ?", actor.StudentID).
		Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.AttendanceBySemesterResponse{
		StudentID: actor.StudentID,
		Semesters: service.SemesterAttendance(sessions),
		Overall:   service.OverallAttendance(sessions),
	}
	return helper.JsonOK(c, "OK", resp)
}

/* =========================
   Handlers — LECTURER/ADMIN
========================= */

// GET /progress/students/:student_id/summary?course_id= (LECTURER/ADMIN)
// Bentuk sama dengan versi mahasiswa, identitas dari path bukan token.
func (ctrl *ProgressController) StudentSummary(c *fiber.Ctx) error {
	if _, err := helperAuth.RequireLecturer(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("student_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
	}
	courseID, err := uuid.Parse(strings.TrimSpace(c.Query("course_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "course_id tidak valid")
	}

	total, subs, sessions, err := ctrl.loadCourseData(c, studentID, courseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.ProgressSummaryResponse{
		CourseID:  courseID,
		StudentID: studentID,

		AttendancePercent: service.OverallAttendance(sessions).Percent,
		CompletionPercent: service.CompletionPercent(int(total), subs),

		TotalAssignments: int(total),
	}
	for i := range subs {
		switch subs[i].SubmissionStatus {
		case subModel.SubmissionStatusGraded:
			resp.GradedCount++
			resp.SubmittedCount++
		case subModel.SubmissionStatusSubmitted, subModel.SubmissionStatusResubmitted:
			resp.SubmittedCount++
		}
	}
	resp.WithAverage(service.AverageGrade(subs))

	return helper.JsonOK(c, "OK", resp)
}
