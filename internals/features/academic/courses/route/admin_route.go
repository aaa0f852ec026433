package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	crscontroller "kampusku_backend/internals/features/academic/courses/controller"
)

// CourseAdminRoutes
// Base: /api/a
func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := crscontroller.NewCourseController(db)

	crs := r.Group("/courses")
	crs.Post("/", ctrl.Create)      // POST /courses
	crs.Get("/list", ctrl.List)     // GET  /courses/list
	crs.Get("/:id", ctrl.GetByID)   // GET  /courses/:id
}
