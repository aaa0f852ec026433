// file: internals/features/academic/enrollments/controller/enrollment_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	crsModel "kampusku_backend/internals/features/academic/courses/model"
	dto "kampusku_backend/internals/features/academic/enrollments/dto"
	model "kampusku_backend/internals/features/academic/enrollments/model"
	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/helpers/apperr"
	helperAuth "kampusku_backend/internals/helpers/auth"
)

type EnrollmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /enrollments (ADMIN)
func (ctrl *EnrollmentController) Create(c *fiber.Ctx) error {
	if _, err := helperAuth.RequireAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateEnrollmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// course harus ada (dan belum dihapus)
	var course crsModel.CourseModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&course, "course_id = ?", body.EnrollmentCourseID).Error; err != nil {
		return apperr.JsonAppError(c, apperr.FromDB(err))
	}

	m := body.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if apperr.IsUniqueViolation(err) {
			return helper.JsonErrorCode(c, fiber.StatusConflict, "ALREADY_ENROLLED",
				"Mahasiswa sudah terdaftar di mata kuliah ini", false)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Mahasiswa berhasil didaftarkan", dto.FromModel(m))
}

// POST /enrollments/:id/drop (ADMIN)
// Drop mengubah status, bukan menghapus baris; riwayat submission tetap utuh.
func (ctrl *EnrollmentController) Drop(c *fiber.Ctx) error {
	if _, err := helperAuth.RequireAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.EnrollmentModel{}).
		Where("enrollment_id = ? AND enrollment_status = ?", id, model.EnrollmentStatusActive).
		Update("enrollment_status", model.EnrollmentStatusDropped)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return apperr.JsonAppError(c, apperr.ErrNotFound)
	}

	return helper.JsonUpdated(c, "Enrollment di-drop", fiber.Map{"enrollment_id": id})
}

// GET /enrollments/list (ADMIN)
func (ctrl *EnrollmentController) List(c *fiber.Ctx) error {
	if _, err := helperAuth.RequireAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 200)

	base := ctrl.DB.WithContext(c.UserContext()).Model(&model.EnrollmentModel{})
	if raw := strings.TrimSpace(c.Query("course_id")); raw != "" {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "course_id tidak valid")
		}
		base = base.Where("enrollment_course_id = ?", courseID)
	}
	if raw := strings.TrimSpace(c.Query("student_id")); raw != "" {
		studentID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		base = base.Where("enrollment_student_id = ?", studentID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.EnrollmentModel
	if err := base.Order("enrollment_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", dto.FromModels(rows), &p)
}
