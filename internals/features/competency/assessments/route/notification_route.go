// file: internals/features/competency/assessments/route/notification_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kompetensiku_backend/internals/features/competency/assessments/controller"
)

func NotificationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewNotificationController(db)

	g := r.Group("/notifications")
	g.Get("/", ctl.ListMine)
	g.Post("/:id/read", ctl.MarkRead)
}
