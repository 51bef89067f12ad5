// file: internals/features/competency/analytics/controller/analytics_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "kompetensiku_backend/internals/features/competency/analytics/dto"
	service "kompetensiku_backend/internals/features/competency/analytics/service"
	helper "kompetensiku_backend/internals/helpers"
)

type AnalyticsController struct {
	Analytics *service.AnalyticsService
}

func NewAnalyticsController(analytics *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Analytics: analytics}
}

func parseOptionalUUID(c *fiber.Ctx, key string) (*uuid.UUID, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, key+" tidak valid")
	}
	return &id, nil
}

// GET /analytics/employees/:employee_id/score?cycle_id=
func (ctl *AnalyticsController) EmployeeScore(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("employee_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "employee_id tidak valid")
	}
	cycleID, err := parseOptionalUUID(c, "cycle_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	resp, err := ctl.Analytics.EmployeeScore(c.UserContext(), employeeID, cycleID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", resp)
}

// GET /analytics/employees/:employee_id/trends?window_months=12
func (ctl *AnalyticsController) EmployeeTrends(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("employee_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "employee_id tidak valid")
	}
	window, _ := strconv.Atoi(c.Query("window_months", "12"))

	resp, err := ctl.Analytics.EmployeeTrends(c.UserContext(), employeeID, window)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", resp)
}

// POST /analytics/skill-gaps  (filter di body biar bisa kirim banyak id)
func (ctl *AnalyticsController) SkillGaps(c *fiber.Ctx) error {
	var filter dto.SkillGapFilter
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&filter); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
	}

	resp, err := ctl.Analytics.SkillGaps(c.UserContext(), filter)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", resp)
}

// GET /analytics/distribution?cycle_id=
func (ctl *AnalyticsController) Distribution(c *fiber.Ctx) error {
	cycleID, err := parseOptionalUUID(c, "cycle_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	resp, err := ctl.Analytics.Distribution(c.UserContext(), cycleID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", resp)
}
