// file: internals/features/competency/assessments/controller/assessment_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kompetensiku_backend/internals/features/competency/assessments/dto"
	model "kompetensiku_backend/internals/features/competency/assessments/model"
	service "kompetensiku_backend/internals/features/competency/assessments/service"
	helper "kompetensiku_backend/internals/helpers"
)

/* ========================================================
   Controller
======================================================== */

type AssessmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Workflow  *service.WorkflowService
}

func NewAssessmentController(db *gorm.DB, workflow *service.WorkflowService) *AssessmentController {
	return &AssessmentController{
		DB:        db,
		Validator: validator.New(),
		Workflow:  workflow,
	}
}

func serviceError(c *fiber.Ctx, err error) error {
	return helper.ErrorWithDetails(c, service.HTTPStatusOf(err), err.Error(), fiber.Map{
		"kind": service.KindOf(err),
	})
}

// POST /assessments
func (ctl *AssessmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	created, err := ctl.Workflow.CreateAssessment(c.UserContext(), &m)
	if err != nil {
		return serviceError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Assessment dibuat", created)
}

// PATCH /assessments/:id  (draft only)
func (ctl *AssessmentController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID assessment tidak valid")
	}
	actorID, err := helper.GetActorID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updated, err := ctl.Workflow.UpdateDraft(c.UserContext(), id, actorID, req.AssessmentRating, req.AssessmentComments)
	if err != nil {
		return serviceError(c, err)
	}
	return helper.Success(c, "Draft diperbarui", updated)
}

// GET /assessments/:id
func (ctl *AssessmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID assessment tidak valid")
	}
	var a model.AssessmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&a, "assessment_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Assessment tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", a)
}

// GET /assessments?employee_id=&cycle_id=&status=&page=&per_page=
func (ctl *AssessmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.AssessmentModel{})
	if v := c.Query("employee_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "employee_id tidak valid")
		}
		q = q.Where("assessment_employee_id = ?", id)
	}
	if v := c.Query("assessor_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "assessor_id tidak valid")
		}
		q = q.Where("assessment_assessor_id = ?", id)
	}
	if v := c.Query("cycle_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "cycle_id tidak valid")
		}
		q = q.Where("assessment_cycle_id = ?", id)
	}
	if v := c.Query("status"); v != "" {
		if !model.AssessmentStatus(v).Valid() {
			return helper.Error(c, fiber.StatusBadRequest, "status tidak dikenal")
		}
		q = q.Where("assessment_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	var rows []model.AssessmentModel
	if err := q.Order("assessment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"assessments": rows,
		"pagination":  helper.BuildPagination(paging, total, len(rows)),
	})
}

// GET /assessments/:id/audits — jejak transisi, urut waktu
func (ctl *AssessmentController) ListAudits(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID assessment tidak valid")
	}
	var audits []model.AssessmentAuditModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("assessment_audit_assessment_id = ?", id).
		Order("assessment_audit_created_at ASC").
		Find(&audits).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", audits)
}
