// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsRoute "kompetensiku_backend/internals/features/competency/analytics/route"
	anservice "kompetensiku_backend/internals/features/competency/analytics/service"
	assessmentRoute "kompetensiku_backend/internals/features/competency/assessments/route"
	cycleRoute "kompetensiku_backend/internals/features/competency/cycles/route"
	developmentRoute "kompetensiku_backend/internals/features/competency/development/route"
	authRoute "kompetensiku_backend/internals/features/users/auth/route"
	authMw "kompetensiku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app.Group("/api/auth"), db)

	// ===================== PRIVATE (JWT) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	api := app.Group("/api", authMw.AuthMiddleware())

	// Analytics service dishare: development plan butuh rating terakhir
	analytics := anservice.NewAnalyticsService(db, anservice.NewMemoryCache())

	log.Println("[INFO] Mounting Assessment routes...")
	assessmentRoute.AssessmentRoutes(api, db)
	assessmentRoute.CompetencyRoutes(api, db)
	assessmentRoute.NotificationRoutes(api, db)

	log.Println("[INFO] Mounting Cycle routes...")
	cycleRoute.CycleRoutes(api, db)

	log.Println("[INFO] Mounting Analytics routes...")
	analyticsRoute.AnalyticsRoutes(api, db, analytics)

	log.Println("[INFO] Mounting Development plan routes...")
	developmentRoute.DevelopmentRoutes(api, db, analytics)
}
