// file: internals/features/academic/assignments/controller/assignment_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kampusku_backend/internals/features/academic/assignments/dto"
	model "kampusku_backend/internals/features/academic/assignments/model"
	enrService "kampusku_backend/internals/features/academic/enrollments/service"
	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/helpers/apperr"
	helperAuth "kampusku_backend/internals/helpers/auth"
)

type AssignmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =========================
   Handlers — LECTURER/ADMIN
========================= */

// POST /assignments (LECTURER/ADMIN)
func (ctrl *AssignmentController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.RequireLecturer(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateAssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if body.AssignmentDueAt.IsZero() {
		return apperr.JsonAppError(c, apperr.ErrInvalidDueDate)
	}

	m := body.ToModel(actor.LecturerID)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Tugas berhasil dibuat", dto.FromModel(m, time.Now()))
}

// PATCH /assignments/:id (LECTURER/ADMIN — partial update)
func (ctrl *AssignmentController) Patch(c *fiber.Ctx) error {
	if _, err := helperAuth.RequireLecturer(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.PatchAssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	// kolom NOT NULL: null eksplisit ditolak di sini, bukan di DB
	if body.AssignmentDueAt.IsNull() {
		return helper.JsonError(c, fiber.StatusBadRequest, "assignment_due_at tidak boleh null")
	}

	var m model.AssignmentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&m, "assignment_id = ?", id).Error; err != nil {
		return apperr.JsonAppError(c, apperr.FromDB(err))
	}

	updates := body.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "Tidak ada perubahan", dto.FromModel(&m, time.Now()))
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.AssignmentModel{}).
		Where("assignment_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&m, "assignment_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Tugas berhasil diperbarui", dto.FromModel(&m, time.Now()))
}

// DELETE /assignments/:id (LECTURER/ADMIN — soft delete)
func (ctrl *AssignmentController) Delete(c *fiber.Ctx) error {
	if _, err := helperAuth.RequireLecturer(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("assignment_id = ?", id).
		Delete(&model.AssignmentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return apperr.JsonAppError(c, apperr.ErrNotFound)
	}

	return helper.JsonDeleted(c, "Tugas berhasil dihapus", fiber.Map{"assignment_id": id})
}

// GET /assignments/list (LECTURER/ADMIN)
func (ctrl *AssignmentController) List(c *fiber.Ctx) error {
	if _, err := helperAuth.RequireLecturer(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 200)

	base := ctrl.DB.WithContext(c.UserContext()).Model(&model.AssignmentModel{})
	if raw := strings.TrimSpace(c.Query("course_id")); raw != "" {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "course_id tidak valid")
		}
		base = base.Where("assignment_course_id = ?", courseID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.AssignmentModel
	if err := base.Order("assignment_due_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", dto.FromModels(rows, time.Now()), &p)
}

/* =========================
   Handlers — STUDENT
========================= */

// GET /assignments (STUDENT — tugas dari course yang di-enroll saja)
func (ctrl *AssignmentController) ListMine(c *fiber.Ctx) error {
	actor, err := helperAuth.RequireStudent(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	courseIDs, err := enrService.ListActiveCourseIDs(ctrl.DB.WithContext(c.UserContext()), actor.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(courseIDs) == 0 {
		p := helper.BuildPaginationFromPage(0, 1, 20)
		return helper.JsonList(c, "OK", []dto.AssignmentResponse{}, &p)
	}

	paging := helper.ResolvePaging(c, 20, 200)

	base := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.AssignmentModel{}).
		Where("assignment_course_id IN ?", courseIDs)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.AssignmentModel
	if err := base.Order("assignment_due_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", dto.FromModels(rows, time.Now()), &p)
}

// GET /assignments/:id (STUDENT — detail + is_overdue)
func (ctrl *AssignmentController) GetByID(c *fiber.Ctx) error {
	actor, err := helperAuth.RequireStudent(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.AssignmentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&m, "assignment_id = ?", id).Error; err != nil {
		return apperr.JsonAppError(c, apperr.FromDB(err))
	}

	ok, err := enrService.IsEnrolled(ctrl.DB.WithContext(c.UserContext()), actor.StudentID, m.AssignmentCourseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ok {
		return apperr.JsonAppError(c, apperr.ErrNotEnrolled)
	}

	return helper.JsonOK(c, "OK", dto.FromModel(&m, time.Now()))
}
