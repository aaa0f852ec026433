package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asgcontroller "kampusku_backend/internals/features/academic/assignments/controller"
)

// AssignmentLecturerRoutes
// Base: /api/a
func AssignmentLecturerRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := asgcontroller.NewAssignmentController(db)

	asg := r.Group("/assignments")
	asg.Post("/", ctrl.Create)       // POST   /assignments
	asg.Get("/list", ctrl.List)      // GET    /assignments/list
	asg.Patch("/:id", ctrl.Patch)    // PATCH  /assignments/:id
	asg.Delete("/:id", ctrl.Delete)  // DELETE /assignments/:id
}
