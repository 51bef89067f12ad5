// file: internals/features/competency/analytics/route/analytics_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kompetensiku_backend/internals/features/competency/analytics/controller"
	service "kompetensiku_backend/internals/features/competency/analytics/service"
	authMw "kompetensiku_backend/internals/middlewares/auth"
)

func AnalyticsRoutes(r fiber.Router, db *gorm.DB, analytics *service.AnalyticsService) {
	ctl := controller.NewAnalyticsController(analytics)

	g := r.Group("/analytics")
	g.Get("/employees/:employee_id/score", ctl.EmployeeScore)
	g.Get("/employees/:employee_id/trends", ctl.EmployeeTrends)

	// Agregat lintas karyawan dibatasi role penilai
	g.Post("/skill-gaps",
		authMw.OnlyRoles("Hanya admin/HR/manager yang boleh melihat skill gap", "admin", "hr", "manager"),
		ctl.SkillGaps)
	g.Get("/distribution",
		authMw.OnlyRoles("Hanya admin/HR/manager yang boleh melihat distribusi", "admin", "hr", "manager"),
		ctl.Distribution)
}
