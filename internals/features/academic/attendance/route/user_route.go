package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attcontroller "kampusku_backend/internals/features/academic/attendance/controller"
)

// AttendanceUserRoutes
// Base: /api/u
func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attcontroller.NewAttendanceController(db)

	att := r.Group("/attendance")
	att.Get("/sessions", ctrl.ListMine) // GET /attendance/sessions
}
