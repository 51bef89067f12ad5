// file: internals/features/competency/development/controller/development_plan_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	aservice "kompetensiku_backend/internals/features/competency/assessments/service"
	dto "kompetensiku_backend/internals/features/competency/development/dto"
	service "kompetensiku_backend/internals/features/competency/development/service"
	helper "kompetensiku_backend/internals/helpers"
)

type DevelopmentPlanController struct {
	Validator *validator.Validate
	Plans     *service.DevelopmentPlanService
}

func NewDevelopmentPlanController(plans *service.DevelopmentPlanService) *DevelopmentPlanController {
	return &DevelopmentPlanController{Validator: validator.New(), Plans: plans}
}

// POST /development-plans
func (ctl *DevelopmentPlanController) Generate(c *fiber.Ctx) error {
	actorID, err := helper.GetActorID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.GeneratePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ctl.Plans.GenerateForEmployee(c.UserContext(), req, actorID)
	if err != nil {
		return helper.ErrorWithDetails(c, aservice.HTTPStatusOf(err), err.Error(), fiber.Map{
			"kind": aservice.KindOf(err),
		})
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Development plan dibuat", resp)
}

// GET /development-plans/employees/:employee_id
func (ctl *DevelopmentPlanController) ListForEmployee(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("employee_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "employee_id tidak valid")
	}

	plans, err := ctl.Plans.ListForEmployee(c.UserContext(), employeeID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", plans)
}
