// file: internals/features/users/employees/model/employee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeModel struct {
	EmployeeID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:employee_id" json:"employee_id"`
	EmployeeName       string    `gorm:"type:varchar(120);not null;column:employee_name" json:"employee_name"`
	EmployeeEmail      string    `gorm:"type:varchar(160);not null;uniqueIndex;column:employee_email" json:"employee_email"`
	EmployeeDepartment string    `gorm:"type:varchar(80);column:employee_department" json:"employee_department"`

	// Hash bcrypt; tidak pernah keluar lewat JSON
	EmployeePasswordHash string `gorm:"type:varchar(100);not null;column:employee_password_hash" json:"-"`

	// Atasan langsung; dipakai aturan approve/reject oleh manager
	EmployeeManagerID *uuid.UUID `gorm:"type:uuid;column:employee_manager_id" json:"employee_manager_id,omitempty"`

	EmployeeIsActive bool `gorm:"not null;default:true;column:employee_is_active" json:"employee_is_active"`

	EmployeeCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:employee_created_at" json:"employee_created_at"`
	EmployeeUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:employee_updated_at" json:"employee_updated_at"`
	EmployeeDeletedAt gorm.DeletedAt `gorm:"column:employee_deleted_at;index" json:"employee_deleted_at,omitempty"`
}

func (EmployeeModel) TableName() string { return "employees" }
