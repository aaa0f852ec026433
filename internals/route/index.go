// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asgRoute "kampusku_backend/internals/features/academic/assignments/route"
	attRoute "kampusku_backend/internals/features/academic/attendance/route"
	crsRoute "kampusku_backend/internals/features/academic/courses/route"
	enrRoute "kampusku_backend/internals/features/academic/enrollments/route"
	prgRoute "kampusku_backend/internals/features/academic/progress/route"
	subRoute "kampusku_backend/internals/features/academic/submissions/route"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	jwt := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
	})

	// ===================== GROUPS =====================

	// PRIVATE (STUDENT)
	log.Println("[INFO] Setting up PRIVATE (student) group...")
	private := app.Group("/api/u", jwt)

	// ADMIN/LECTURER
	log.Println("[INFO] Setting up ADMIN/LECTURER group...")
	admin := app.Group("/api/a", jwt)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Course routes...")
	crsRoute.CourseAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Enrollment routes...")
	enrRoute.EnrollmentAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Assignment routes...")
	asgRoute.AssignmentUserRoutes(private, db)
	asgRoute.AssignmentLecturerRoutes(admin, db)

	log.Println("[INFO] Mounting Submission routes...")
	subRoute.SubmissionUserRoutes(private, db)
	subRoute.SubmissionLecturerRoutes(admin, db)

	log.Println("[INFO] Mounting Attendance routes...")
	attRoute.AttendanceUserRoutes(private, db)
	attRoute.AttendanceLecturerRoutes(admin, db)

	log.Println("[INFO] Mounting Progress routes...")
	prgRoute.ProgressUserRoutes(private, db)
	prgRoute.ProgressLecturerRoutes(admin, db)
}
