package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	prgcontroller "kampusku_backend/internals/features/academic/progress/controller"
)

// ProgressUserRoutes
// Base: /api/u
func ProgressUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := prgcontroller.NewProgressController(db)

	prg := r.Group("/progress")
	prg.Get("/summary", ctrl.Summary)                            // GET /progress/summary?course_id=
	prg.Get("/attendance-by-semester", ctrl.AttendanceBySemester) // GET /progress/attendance-by-semester
}
