// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"strings"

	model "kompetensiku_backend/internals/features/users/employees/model"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type LoginResponse struct {
	AccessToken string              `json:"access_token"`
	TokenType   string              `json:"token_type"`
	ExpiresIn   int64               `json:"expires_in"`
	Employee    model.EmployeeModel `json:"employee"`
	Roles       []string            `json:"roles"`
}
