package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asgcontroller "kampusku_backend/internals/features/academic/assignments/controller"
)

// AssignmentUserRoutes
// Base: /api/u
func AssignmentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := asgcontroller.NewAssignmentController(db)

	asg := r.Group("/assignments")
	asg.Get("/", ctrl.ListMine)    // GET /assignments
	asg.Get("/:id", ctrl.GetByID)  // GET /assignments/:id
}
