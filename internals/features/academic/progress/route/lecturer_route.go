package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	prgcontroller "kampusku_backend/internals/features/academic/progress/controller"
)

// ProgressLecturerRoutes
// Base: /api/a
func ProgressLecturerRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := prgcontroller.NewProgressController(db)

	prg := r.Group("/progress")
	prg.Get("/students/:student_id/summary", ctrl.StudentSummary) // GET /progress/students/:student_id/summary?course_id=
}
