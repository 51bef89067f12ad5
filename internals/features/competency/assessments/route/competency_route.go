// file: internals/features/competency/assessments/route/competency_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kompetensiku_backend/internals/features/competency/assessments/controller"
	authMw "kompetensiku_backend/internals/middlewares/auth"
)

func CompetencyRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCompetencyController(db)

	g := r.Group("/competencies")
	g.Get("/", ctl.List)
	g.Post("/",
		authMw.OnlyRoles("Hanya admin/HR yang boleh menambah kompetensi", "admin", "hr"),
		ctl.Create)
}
