// file: internals/features/competency/cycles/route/cycle_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kompetensiku_backend/internals/features/competency/cycles/controller"
	service "kompetensiku_backend/internals/features/competency/cycles/service"
	authMw "kompetensiku_backend/internals/middlewares/auth"
)

func CycleRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCycleController(db, service.NewCycleService(db))

	g := r.Group("/cycles")
	g.Get("/", ctl.List)
	g.Get("/overdue", ctl.Overdue)

	adminOnly := authMw.OnlyRoles("Hanya admin/HR yang boleh mengelola cycle", "admin", "hr")
	g.Post("/", adminOnly, ctl.Create)
	g.Post("/:id/activate", adminOnly, ctl.Activate)
	g.Post("/:id/complete", adminOnly, ctl.Complete)
}
