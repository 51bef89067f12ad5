// file: internals/features/competency/development/route/development_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	anservice "kompetensiku_backend/internals/features/competency/analytics/service"
	controller "kompetensiku_backend/internals/features/competency/development/controller"
	service "kompetensiku_backend/internals/features/competency/development/service"
)

func DevelopmentRoutes(r fiber.Router, db *gorm.DB, analytics *anservice.AnalyticsService) {
	ctl := controller.NewDevelopmentPlanController(service.NewDevelopmentPlanService(db, analytics))

	g := r.Group("/development-plans")
	g.Post("/", ctl.Generate)
	g.Get("/employees/:employee_id", ctl.ListForEmployee)
}
