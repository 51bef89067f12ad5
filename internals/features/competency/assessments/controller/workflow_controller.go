// file: internals/features/competency/assessments/controller/workflow_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "kompetensiku_backend/internals/features/competency/assessments/dto"
	model "kompetensiku_backend/internals/features/competency/assessments/model"
	service "kompetensiku_backend/internals/features/competency/assessments/service"
	helper "kompetensiku_backend/internals/helpers"
)

// WorkflowController: endpoint transisi status + operasi pendamping.
type WorkflowController struct {
	Validator *validator.Validate
	Workflow  *service.WorkflowService
}

func NewWorkflowController(workflow *service.WorkflowService) *WorkflowController {
	return &WorkflowController{
		Validator: validator.New(),
		Workflow:  workflow,
	}
}

func (ctl *WorkflowController) transition(c *fiber.Ctx, target model.AssessmentStatus, successMsg string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID assessment tidak valid")
	}
	actorID, err := helper.GetActorID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.TransitionRequest
	// body boleh kosong; reason opsional
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
		if err := ctl.Validator.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	updated, err := ctl.Workflow.Transition(c.UserContext(), id, target, actorID, req.Reason)
	if err != nil {
		return serviceError(c, err)
	}
	return helper.Success(c, successMsg, updated)
}

// POST /assessments/:id/submit
func (ctl *WorkflowController) Submit(c *fiber.Ctx) error {
	return ctl.transition(c, model.AssessmentStatusSubmitted, "Assessment disubmit")
}

// POST /assessments/:id/approve
func (ctl *WorkflowController) Approve(c *fiber.Ctx) error {
	return ctl.transition(c, model.AssessmentStatusApproved, "Assessment di-approve")
}

// POST /assessments/:id/reject
func (ctl *WorkflowController) Reject(c *fiber.Ctx) error {
	return ctl.transition(c, model.AssessmentStatusRejected, "Assessment ditolak")
}

// POST /assessments/:id/return-to-draft
func (ctl *WorkflowController) ReturnToDraft(c *fiber.Ctx) error {
	return ctl.transition(c, model.AssessmentStatusDraft, "Assessment dikembalikan ke draft")
}

// POST /assessments/:id/extend-deadline
func (ctl *WorkflowController) ExtendDeadline(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID assessment tidak valid")
	}
	actorID, err := helper.GetActorID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ExtendDeadlineRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updated, err := ctl.Workflow.ExtendDeadline(c.UserContext(), id, req.NewDeadline, actorID, req.Reason)
	if err != nil {
		return serviceError(c, err)
	}
	return helper.Success(c, "Deadline diperpanjang", updated)
}

// POST /assessments/:id/reassign
func (ctl *WorkflowController) Reassign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID assessment tidak valid")
	}
	actorID, err := helper.GetActorID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ReassignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updated, err := ctl.Workflow.Reassign(c.UserContext(), id, req.NewAssessorID, actorID, req.Reason)
	if err != nil {
		return serviceError(c, err)
	}
	return helper.Success(c, "Assessor diganti", updated)
}

// POST /assessments/bulk
func (ctl *WorkflowController) BulkProcess(c *fiber.Ctx) error {
	actorID, err := helper.GetActorID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.BulkProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := ctl.Workflow.ProcessMany(
		c.UserContext(),
		req.AssessmentIDs,
		service.BulkAction(req.Action),
		actorID,
		service.BulkOptions{
			Reason:        req.Reason,
			NewDeadline:   req.NewDeadline,
			NewAssessorID: req.NewAssessorID,
		},
	)
	if err != nil {
		return serviceError(c, err)
	}
	return helper.Success(c, "Bulk selesai", result)
}
