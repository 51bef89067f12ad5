// file: internals/features/competency/assessments/controller/competency_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "kompetensiku_backend/internals/features/competency/assessments/dto"
	model "kompetensiku_backend/internals/features/competency/assessments/model"
	helper "kompetensiku_backend/internals/helpers"
)

type CompetencyController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCompetencyController(db *gorm.DB) *CompetencyController {
	return &CompetencyController{DB: db, Validator: validator.New()}
}

// POST /competencies
func (ctl *CompetencyController) Create(c *fiber.Ctx) error {
	var req dto.CreateCompetencyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kompetensi dibuat", m)
}

// GET /competencies?category=
func (ctl *CompetencyController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.CompetencyModel{})
	if v := c.Query("category"); v != "" {
		q = q.Where("competency_category = ?", v)
	}
	var rows []model.CompetencyModel
	if err := q.Order("competency_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rows)
}
