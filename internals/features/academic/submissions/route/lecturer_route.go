package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subcontroller "kampusku_backend/internals/features/academic/submissions/controller"
)

// SubmissionLecturerRoutes
// Base: /api/a
func SubmissionLecturerRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := subcontroller.NewSubmissionController(db)

	sub := r.Group("/submissions")
	sub.Get("/list", ctrl.List)            // GET  /submissions/list
	sub.Get("/:id", ctrl.GetByID)          // GET  /submissions/:id
	sub.Post("/:id/grade", ctrl.Grade)     // POST /submissions/:id/grade
	sub.Post("/:id/reject", ctrl.Reject)   // POST /submissions/:id/reject
}
