// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aservice "kompetensiku_backend/internals/features/competency/assessments/service"
	dto "kompetensiku_backend/internals/features/users/auth/dto"
	service "kompetensiku_backend/internals/features/users/auth/service"
	helper "kompetensiku_backend/internals/helpers"
)

type AuthController struct {
	Validator *validator.Validate
	Auth      *service.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		Validator: validator.New(),
		Auth:      service.NewAuthService(db),
	}
}

// POST /auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ctl.Auth.Login(c.UserContext(), req)
	if err != nil {
		return helper.ErrorWithDetails(c, aservice.HTTPStatusOf(err), err.Error(), fiber.Map{
			"kind": aservice.KindOf(err),
		})
	}
	return helper.Success(c, "Login berhasil", resp)
}
