// file: internals/features/users/employees/model/employee_role_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// =========================
// Role names
// =========================

const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

type EmployeeRoleModel struct {
	EmployeeRoleID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:employee_role_id" json:"employee_role_id"`
	EmployeeRoleEmployeeID uuid.UUID `gorm:"type:uuid;not null;index;column:employee_role_employee_id" json:"employee_role_employee_id"`
	EmployeeRoleName       string    `gorm:"type:varchar(32);not null;column:employee_role_name" json:"employee_role_name"`
	EmployeeRoleCreatedAt  time.Time `gorm:"type:timestamptz;not null;default:now();column:employee_role_created_at" json:"employee_role_created_at"`
}

func (EmployeeRoleModel) TableName() string { return "employee_roles" }
