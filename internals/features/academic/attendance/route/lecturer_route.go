package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attcontroller "kampusku_backend/internals/features/academic/attendance/controller"
)

// AttendanceLecturerRoutes
// Base: /api/a
func AttendanceLecturerRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attcontroller.NewAttendanceController(db)

	att := r.Group("/attendance")
	att.Post("/sessions", ctrl.RecordSession)   // POST /attendance/sessions
	att.Post("/sessions/bulk", ctrl.BulkRecord) // POST /attendance/sessions/bulk
	att.Get("/sessions/list", ctrl.List)        // GET  /attendance/sessions/list
}
