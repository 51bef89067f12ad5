// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	aservice "kompetensiku_backend/internals/features/competency/assessments/service"
	dto "kompetensiku_backend/internals/features/users/auth/dto"
	emodel "kompetensiku_backend/internals/features/users/employees/model"
	eservice "kompetensiku_backend/internals/features/users/employees/service"
	configs "kompetensiku_backend/internals/configs"
)

const accessTokenTTL = 2 * time.Hour

// TokenTTLSeconds dipakai controller untuk field expires_in.
func TokenTTLSeconds() int64 { return int64(accessTokenTTL / time.Second) }

type AuthService struct {
	DB    *gorm.DB
	Roles *eservice.DBRoleResolver
	Now   func() time.Time
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		DB:    db,
		Roles: eservice.NewDBRoleResolver(db),
		Now:   time.Now,
	}
}

// Login memverifikasi email+password lalu menerbitkan JWT HS256.
// Pesan error sengaja generik supaya tidak membocorkan akun mana yang ada.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	var emp emodel.EmployeeModel
	err := s.DB.WithContext(ctx).
		Where("employee_email = ? AND employee_is_active = TRUE", req.Email).
		First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, aservice.NewWorkflowError(aservice.ErrPermissionDenied, "Email atau password salah")
		}
		return nil, aservice.NewWorkflowError(aservice.ErrPersistence, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.EmployeePasswordHash), []byte(req.Password)); err != nil {
		return nil, aservice.NewWorkflowError(aservice.ErrPermissionDenied, "Email atau password salah")
	}

	roles := s.Roles.RolesOf(emp.EmployeeID)
	if len(roles) == 0 {
		roles = []string{emodel.RoleEmployee}
	}

	now := s.Now()
	claims := jwt.MapClaims{
		"id":    emp.EmployeeID.String(),
		"roles": roles,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Printf("[AuthService] ERROR sign token for %s: %v", emp.EmployeeID, err)
		return nil, aservice.NewWorkflowError(aservice.ErrPersistence, "Gagal menerbitkan token")
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   TokenTTLSeconds(),
		Employee:    emp,
		Roles:       roles,
	}, nil
}
