// file: internals/features/users/employees/service/role_resolver_service.go
package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "kompetensiku_backend/internals/features/users/employees/model"
)

// DBRoleResolver menjawab cek role dari tabel employee_roles.
// Dipakai workflow supaya tidak terikat ke layer identity.
type DBRoleResolver struct {
	DB *gorm.DB
}

func NewDBRoleResolver(db *gorm.DB) *DBRoleResolver {
	return &DBRoleResolver{DB: db}
}

func (r *DBRoleResolver) HasRole(actorID uuid.UUID, role string) bool {
	var count int64
	err := r.DB.Model(&model.EmployeeRoleModel{}).
		Where("employee_role_employee_id = ? AND employee_role_name = ?", actorID, role).
		Count(&count).Error
	if err != nil {
		// fail-closed: kalau DB error, anggap tidak punya role
		log.Printf("[RoleResolver] ERROR check role %s for %s: %v", role, actorID, err)
		return false
	}
	return count > 0
}

func (r *DBRoleResolver) HasAnyRole(actorID uuid.UUID, roles ...string) bool {
	if len(roles) == 0 {
		return false
	}
	var count int64
	err := r.DB.Model(&model.EmployeeRoleModel{}).
		Where("employee_role_employee_id = ? AND employee_role_name IN ?", actorID, roles).
		Count(&count).Error
	if err != nil {
		log.Printf("[RoleResolver] ERROR check roles %v for %s: %v", roles, actorID, err)
		return false
	}
	return count > 0
}

// RolesOf dipakai auth untuk menaruh daftar role ke claims JWT.
func (r *DBRoleResolver) RolesOf(actorID uuid.UUID) []string {
	var names []string
	if err := r.DB.Model(&model.EmployeeRoleModel{}).
		Where("employee_role_employee_id = ?", actorID).
		Pluck("employee_role_name", &names).Error; err != nil {
		log.Printf("[RoleResolver] ERROR list roles for %s: %v", actorID, err)
		return nil
	}
	return names
}
