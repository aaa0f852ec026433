package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subcontroller "kampusku_backend/internals/features/academic/submissions/controller"
	"kampusku_backend/internals/middlewares"
)

// SubmissionUserRoutes
// Base: /api/u
func SubmissionUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := subcontroller.NewSubmissionController(db)

	sub := r.Group("/submissions")
	sub.Post("/", ctrl.Submit)                // POST   /submissions
	sub.Put("/:id/resubmit", ctrl.Resubmit)   // PUT    /submissions/:id/resubmit
	sub.Delete("/:id", ctrl.Unsubmit)         // DELETE /submissions/:id

	// view-model layar tugas (state + allowed_actions)
	r.Get("/assignments/:assignment_id/submission", ctrl.GetMySubmissionState)

	// upload fileRef (dibatasi limiter khusus upload) + proxy unduhan
	r.Post("/uploads", middlewares.UploadRateLimiter(), ctrl.UploadFile)
	r.Get("/uploads/*", ctrl.DownloadFile)
}
