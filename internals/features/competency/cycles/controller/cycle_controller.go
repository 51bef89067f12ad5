// file: internals/features/competency/cycles/controller/cycle_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	aservice "kompetensiku_backend/internals/features/competency/assessments/service"
	dto "kompetensiku_backend/internals/features/competency/cycles/dto"
	model "kompetensiku_backend/internals/features/competency/cycles/model"
	service "kompetensiku_backend/internals/features/competency/cycles/service"
	helper "kompetensiku_backend/internals/helpers"
)

type CycleController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Cycles    *service.CycleService
}

func NewCycleController(db *gorm.DB, cycles *service.CycleService) *CycleController {
	return &CycleController{DB: db, Validator: validator.New(), Cycles: cycles}
}

func cycleServiceError(c *fiber.Ctx, err error) error {
	return helper.ErrorWithDetails(c, aservice.HTTPStatusOf(err), err.Error(), fiber.Map{
		"kind": aservice.KindOf(err),
	})
}

// POST /cycles
func (ctl *CycleController) Create(c *fiber.Ctx) error {
	var req dto.CreateCycleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.Cycles.CreateCycle(c.UserContext(), &m); err != nil {
		return cycleServiceError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Cycle dibuat", m)
}

// POST /cycles/:id/activate — sekalian bulk-create draft assessment
func (ctl *CycleController) Activate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID cycle tidak valid")
	}
	created, err := ctl.Cycles.ActivateCycle(c.UserContext(), id)
	if err != nil {
		return cycleServiceError(c, err)
	}
	return helper.Success(c, "Cycle diaktifkan", fiber.Map{
		"cycle_id":            id,
		"assessments_created": created,
	})
}

// POST /cycles/:id/complete
func (ctl *CycleController) Complete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID cycle tidak valid")
	}
	if err := ctl.Cycles.CompleteCycle(c.UserContext(), id); err != nil {
		return cycleServiceError(c, err)
	}
	return helper.Success(c, "Cycle diselesaikan", fiber.Map{"cycle_id": id})
}

// GET /cycles?status=
func (ctl *CycleController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.AssessmentCycleModel{})
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("cycle_status = ?", v)
	}
	var rows []model.AssessmentCycleModel
	if err := q.Order("cycle_start_date DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rows)
}

// GET /cycles/overdue?cycle_id= — draft yang lewat deadline
func (ctl *CycleController) Overdue(c *fiber.Ctx) error {
	var cycleID *uuid.UUID
	if v := strings.TrimSpace(c.Query("cycle_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "cycle_id tidak valid")
		}
		cycleID = &id
	}

	rows, err := ctl.Cycles.OverdueAssessments(c.UserContext(), cycleID)
	if err != nil {
		return cycleServiceError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"count":       len(rows),
		"assessments": rows,
	})
}
