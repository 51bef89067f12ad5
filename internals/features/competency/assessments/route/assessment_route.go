// file: internals/features/competency/assessments/route/assessment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kompetensiku_backend/internals/features/competency/assessments/controller"
	service "kompetensiku_backend/internals/features/competency/assessments/service"
	eservice "kompetensiku_backend/internals/features/users/employees/service"
	middlewares "kompetensiku_backend/internals/middlewares"
	authMw "kompetensiku_backend/internals/middlewares/auth"
)

// AssessmentRoutes memasang endpoint assessment + transisi workflow.
// Gate role kasar di route; aturan halus (assessor vs manager) ada di service.
func AssessmentRoutes(r fiber.Router, db *gorm.DB) {
	workflow := service.NewWorkflowService(
		db,
		eservice.NewDBRoleResolver(db),
		service.NewDBNotificationDispatcher(db),
	)

	assessCtl := controller.NewAssessmentController(db, workflow)
	wfCtl := controller.NewWorkflowController(workflow)

	g := r.Group("/assessments")

	g.Post("/", assessCtl.Create)
	g.Get("/", assessCtl.List)
	g.Get("/:id", assessCtl.GetByID)
	g.Patch("/:id", assessCtl.Patch)
	g.Get("/:id/audits", assessCtl.ListAudits)

	g.Post("/:id/submit", wfCtl.Submit)
	g.Post("/:id/approve", wfCtl.Approve)
	g.Post("/:id/reject", wfCtl.Reject)
	g.Post("/:id/return-to-draft", wfCtl.ReturnToDraft)
	g.Post("/:id/extend-deadline", wfCtl.ExtendDeadline)
	g.Post("/:id/reassign",
		authMw.OnlyRoles("Hanya admin/HR yang boleh reassign", "admin", "hr"),
		wfCtl.Reassign)

	g.Post("/bulk",
		middlewares.BulkRateLimiter(),
		wfCtl.BulkProcess)
}
