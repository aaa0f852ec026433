// file: internals/features/academic/submissions/controller/submission_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	asgModel "kampusku_backend/internals/features/academic/assignments/model"
	enrService "kampusku_backend/internals/features/academic/enrollments/service"
	dto "kampusku_backend/internals/features/academic/submissions/dto"
	model "kampusku_backend/internals/features/academic/submissions/model"
	"kampusku_backend/internals/features/academic/submissions/service"
	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/helpers/apperr"
	helperAuth "kampusku_backend/internals/helpers/auth"
	helperOSS "kampusku_backend/internals/helpers/oss"
)

type SubmissionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubmissionController(db *gorm.DB) *SubmissionController {
	return &SubmissionController{
		DB:        db,
		Validator: validator.New(),
	}
}

func applyFilters(q *gorm.DB, f *dto.ListSubmissionsQuery) *gorm.DB {
	if f == nil {
		return q
	}
	if f.AssignmentID != nil {
		q = q.Where("submission_assignment_id = ?", *f.AssignmentID)
	}
	if f.StudentID != nil {
		q = q.Where("submission_student_id = ?", *f.StudentID)
	}
	if f.Status != nil {
		q = q.Where("submission_status = ?", *f.Status)
	}
	if f.SubmittedFrom != nil {
		q = q.Where("submission_submitted_at >= ?", *f.SubmittedFrom)
	}
	if f.SubmittedTo != nil {
		q = q.Where("submission_submitted_at < ?", *f.SubmittedTo)
	}
	return q
}

func applySort(q *gorm.DB, sort string) *gorm.DB {
	switch strings.TrimSpace(sort) {
	case "created_at":
		return q.Order("submission_created_at ASC")
	case "desc_created_at", "":
		return q.Order("submission_created_at DESC")
	case "submitted_at":
		return q.Order("submission_submitted_at ASC")
	case "desc_submitted_at":
		return q.Order("submission_submitted_at DESC")
	case "score":
		return q.Order("submission_score ASC NULLS LAST")
	case "desc_score":
		return q.Order("submission_score DESC NULLS LAST")
	default:
		return q.Order("submission_created_at DESC")
	}
}

// loadAssignment: tugas harus ada & punya tenggat yang bisa dievaluasi.
func (ctrl *SubmissionController) loadAssignment(c *fiber.Ctx, id uuid.UUID) (*asgModel.AssignmentModel, error) {
	var asg asgModel.AssignmentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&asg, "assignment_id = ?", id).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return &asg, nil
}

// loadOwnedSubmission memuat submission dan memastikan milik student ybs.
func (ctrl *SubmissionController) loadOwnedSubmission(c *fiber.Ctx, id, studentID uuid.UUID) (*model.SubmissionModel, error) {
	var sub model.SubmissionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&sub, "submission_id = ?", id).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	// jangan bocorkan keberadaan submission orang lain
	if sub.SubmissionStudentID != studentID {
		return nil, apperr.ErrNotFound
	}
	return &sub, nil
}

/* =========================
   Handlers — STUDENT
========================= */

// POST /submissions (STUDENT ONLY)
func (ctrl *SubmissionController) Submit(c *fiber.Ctx) error {
	actor, err := helperAuth.RequireStudent(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.SubmitRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	asg, err := ctrl.loadAssignment(c, body.SubmissionAssignmentID)
	if err != nil {
		return apperr.JsonAppError(c, err)
	}

	// Eligibility: enrollment dicek SEBELUM guard tenggat
	ok, err := enrService.IsEnrolled(ctrl.DB.WithContext(c.UserContext()), actor.StudentID, asg.AssignmentCourseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ok {
		return apperr.JsonAppError(c, apperr.ErrNotEnrolled)
	}

	now := time.Now()
	if err := service.CheckSubmit(asg.AssignmentDueAt, now); err != nil {
		return apperr.JsonAppError(c, err)
	}

	sub := &model.SubmissionModel{
		SubmissionAssignmentID: asg.AssignmentID,
		SubmissionStudentID:    actor.StudentID,
		SubmissionFileURL:      body.SubmissionFileURL,
		SubmissionText:         body.SubmissionText,
		SubmissionStatus:       model.SubmissionStatusSubmitted,
		SubmissionSubmittedAt:  now,
		SubmissionVersion:      1,
	}

	// Insert atomik dalam transaksi; double-submit yang balapan kalah di
	// unique constraint (bukan check-then-insert).
	if err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		return tx.Create(sub).Error
	}); err != nil {
		if apperr.IsUniqueViolation(err) {
			return apperr.JsonAppError(c, apperr.ErrAlreadySubmitted)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	view, err := dto.NewStateView(asg.AssignmentID, sub, asg.AssignmentDueAt, now)
	if err != nil {
		return apperr.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Tugas berhasil dikumpulkan", view)
}

// PUT /submissions/:id/resubmit (STUDENT ONLY)
func (ctrl *SubmissionController) Resubmit(c *fiber.Ctx) error {
	actor, err := helperAuth.RequireStudent(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.ResubmitRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	sub, err := ctrl.loadOwnedSubmission(c, id, actor.StudentID)
	if err != nil {
		return apperr.JsonAppError(c, err)
	}
	if err := service.CheckResubmit(sub); err != nil {
		return apperr.JsonAppError(c, err)
	}

	now := time.Now()
	// Identitas dipertahankan; file & timestamp diganti; nilai lama dibersihkan.
	updates := map[string]any{
		"submission_file_url":             body.SubmissionFileURL,
		"submission_text":                 body.SubmissionText,
		"submission_submitted_at":         now,
		"submission_status":               model.SubmissionStatusResubmitted,
		"submission_score":                nil,
		"submission_feedback":             nil,
		"submission_scores":               nil,
		"submission_graded_by_lecturer_id": nil,
		"submission_graded_at":            nil,
		"submission_version":              sub.SubmissionVersion + 1,
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.SubmissionModel{}).
		Where("submission_id = ? AND submission_version = ?", sub.SubmissionID, sub.SubmissionVersion).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		// versi berubah di proses lain (mis. dosen sedang menilai)
		return apperr.JsonAppError(c, apperr.ErrConflict)
	}

	// file lama jadi yatim setelah diganti; hapus best-effort
	if old := sub.SubmissionFileURL; old != "" && old != body.SubmissionFileURL {
		if blob, berr := helperOSS.GetBlobService(); berr == nil {
			_ = blob.DeleteByPublicURL(c.UserContext(), old)
		}
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		First(sub, "submission_id = ?", sub.SubmissionID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Tugas dikumpulkan ulang", dto.FromModel(sub))
}

// DELETE /submissions/:id (STUDENT ONLY — unsubmit)
func (ctrl *SubmissionController) Unsubmit(c *fiber.Ctx) error {
	actor, err := helperAuth.RequireStudent(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	sub, err := ctrl.loadOwnedSubmission(c, id, actor.StudentID)
	if err != nil {
		return apperr.JsonAppError(c, err)
	}
	if err := service.CheckUnsubmit(sub); err != nil {
		return apperr.JsonAppError(c, err)
	}

	// Hard delete dengan guard versi + guard nilai di SQL (belt & suspenders
	// terhadap grade yang menyelinap di antara load dan delete).
	res := ctrl.DB.WithContext(c.UserContext()).
		Where("submission_id = ? AND submission_version = ? AND submission_score IS NULL",
			sub.SubmissionID, sub.SubmissionVersion).
		Delete(&model.SubmissionModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return apperr.JsonAppError(c, apperr.ErrConflict)
	}

	// hapus file di storage best-effort; gagal hapus tidak membatalkan unsubmit
	if blob, berr := helperOSS.GetBlobService(); berr == nil {
		_ = blob.DeleteByPublicURL(c.UserContext(), sub.SubmissionFileURL)
	}

	return helper.JsonDeleted(c, "Pengumpulan dibatalkan", fiber.Map{
		"submission_id": id,
		"state":         service.StateNotSubmitted,
	})
}

// GET /assignments/:assignment_id/submission (STUDENT ONLY)
// View-model layar tugas: state + allowed_actions, termasuk saat belum ada baris.
func (ctrl *SubmissionController) GetMySubmissionState(c *fiber.Ctx) error {
	actor, err := helperAuth.RequireStudent(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	asgID, err := uuid.Parse(strings.TrimSpace(c.Params("assignment_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	asg, err := ctrl.loadAssignment(c, asgID)
	if err != nil {
		return apperr.JsonAppError(c, err)
	}

	ok, err := enrService.IsEnrolled(ctrl.DB.WithContext(c.UserContext()), actor.StudentID, asg.AssignmentCourseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ok {
		return apperr.JsonAppError(c, apperr.ErrNotEnrolled)
	}

	var sub *model.SubmissionModel
	var row model.SubmissionModel
	err = ctrl.DB.WithContext(c.UserContext()).
		First(&row, "submission_assignment_id = ? AND submission_student_id = ?", asgID, actor.StudentID).Error
	switch {
	case err == nil:
		sub = &row
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub = nil // belum mengumpulkan
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	view, err := dto.NewStateView(asgID, sub, asg.AssignmentDueAt, time.Now())
	if err != nil {
		return apperr.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "OK", view)
}

/* =========================
   Handlers — LECTURER
========================= */

// POST /submissions/:id/grade (LECTURER/ADMIN)
func (ctrl *SubmissionController) Grade(c *fiber.Ctx) error {
	actor, err := helperAuth.RequireLecturer(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.GradeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var sub model.SubmissionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&sub, "submission_id = ?", id).Error; err != nil {
		return apperr.JsonAppError(c, apperr.FromDB(err))
	}

	if err := service.CheckGrade(&sub, *body.SubmissionScore); err != nil {
		return apperr.JsonAppError(c, err)
	}

	now := time.Now()
	updates := map[string]any{
		"submission_status":   model.SubmissionStatusGraded,
		"submission_score":    *body.SubmissionScore,
		"submission_feedback": body.SubmissionFeedback,
		"submission_graded_at": now,
		"submission_version":  sub.SubmissionVersion + 1,
	}
	// admin tanpa lecturer_id menilai atas nama sistem, kolom dibiarkan NULL
	if actor.LecturerID != uuid.Nil {
		updates["submission_graded_by_lecturer_id"] = actor.LecturerID
	}
	if body.SubmissionScores != nil {
		updates["submission_scores"] = datatypes.JSONMap(body.SubmissionScores)
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.SubmissionModel{}).
		Where("submission_id = ? AND submission_version = ?", sub.SubmissionID, sub.SubmissionVersion).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		// mahasiswa keburu resubmit/unsubmit — jangan nilai file yang sudah diganti
		return apperr.JsonAppError(c, apperr.ErrConflict)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&sub, "submission_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Submission dinilai", dto.FromModel(&sub))
}

// POST /submissions/:id/reject (LECTURER/ADMIN)
func (ctrl *SubmissionController) Reject(c *fiber.Ctx) error {
	_, err := helperAuth.RequireLecturer(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.RejectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var sub model.SubmissionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&sub, "submission_id = ?", id).Error; err != nil {
		return apperr.JsonAppError(c, apperr.FromDB(err))
	}

	if err := service.CheckReject(&sub, body.SubmissionFeedback); err != nil {
		return apperr.JsonAppError(c, err)
	}

	updates := map[string]any{
		"submission_status":   model.SubmissionStatusRejected,
		"submission_feedback": strings.TrimSpace(body.SubmissionFeedback),
		"submission_version":  sub.SubmissionVersion + 1,
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.SubmissionModel{}).
		Where("submission_id = ? AND submission_version = ?", sub.SubmissionID, sub.SubmissionVersion).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return apperr.JsonAppError(c, apperr.ErrConflict)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&sub, "submission_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Submission dikembalikan untuk diperbaiki", dto.FromModel(&sub))
}

// GET /submissions/list (LECTURER/ADMIN)
func (ctrl *SubmissionController) List(c *fiber.Ctx) error {
	if _, err := helperAuth.RequireLecturer(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	var q dto.ListSubmissionsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctrl.Validator.Struct(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	base := applyFilters(ctrl.DB.WithContext(c.UserContext()).Model(&model.SubmissionModel{}), &q)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.SubmissionModel
	if err := applySort(base, q.Sort).
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", dto.FromModels(rows), &p)
}

// GET /submissions/:id (LECTURER/ADMIN)
func (ctrl *SubmissionController) GetByID(c *fiber.Ctx) error {
	if _, err := helperAuth.RequireLecturer(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var sub model.SubmissionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&sub, "submission_id = ?", id).Error; err != nil {
		return apperr.JsonAppError(c, apperr.FromDB(err))
	}
	return helper.JsonOK(c, "OK", dto.FromModel(&sub))
}
