package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrcontroller "kampusku_backend/internals/features/academic/enrollments/controller"
)

// EnrollmentAdminRoutes
// Base: /api/a
func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := enrcontroller.NewEnrollmentController(db)

	enr := r.Group("/enrollments")
	enr.Post("/", ctrl.Create)          // POST /enrollments
	enr.Post("/:id/drop", ctrl.Drop)    // POST /enrollments/:id/drop
	enr.Get("/list", ctrl.List)         // GET  /enrollments/list
}
