// file: internals/features/academic/courses/controller/course_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kampusku_backend/internals/features/academic/courses/dto"
	model "kampusku_backend/internals/features/academic/courses/model"
	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/helpers/apperr"
	helperAuth "kampusku_backend/internals/helpers/auth"
)

type CourseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /courses (ADMIN)
func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	if _, err := helperAuth.RequireAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := body.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if apperr.IsUniqueViolation(err) {
			return helper.JsonErrorCode(c, fiber.StatusConflict, "DUPLICATE_CODE",
				"Kode mata kuliah sudah dipakai", false)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Mata kuliah berhasil dibuat", dto.FromModel(m))
}

// GET /courses/list (ADMIN)
func (ctrl *CourseController) List(c *fiber.Ctx) error {
	if _, err := helperAuth.RequireAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 200)

	base := ctrl.DB.WithContext(c.UserContext()).Model(&model.CourseModel{})
	if kw := strings.TrimSpace(c.Query("search")); kw != "" {
		base = base.Where("course_name ILIKE ? OR course_code ILIKE ?", "%"+kw+"%", "%"+kw+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.CourseModel
	if err := base.Order("course_code ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", dto.FromModels(rows), &p)
}

// GET /courses/:id (ADMIN)
func (ctrl *CourseController) GetByID(c *fiber.Ctx) error {
	if _, err := helperAuth.RequireAdmin(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.CourseModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&m, "course_id = ?", id).Error; err != nil {
		return apperr.JsonAppError(c, apperr.FromDB(err))
	}
	return helper.JsonOK(c, "OK", dto.FromModel(&m))
}
