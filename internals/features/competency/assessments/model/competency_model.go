// file: internals/features/competency/assessments/model/competency_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompetencyModel: skill/perilaku yang dinilai, punya bobot relatif untuk weighted score.
type CompetencyModel struct {
	CompetencyID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:competency_id" json:"competency_id"`
	CompetencyName     string    `gorm:"type:varchar(120);not null;column:competency_name" json:"competency_name"`
	CompetencyCategory string    `gorm:"type:varchar(80);not null;column:competency_category" json:"competency_category"`
	CompetencyWeight   float64   `gorm:"type:numeric(5,2);not null;default:1.0;column:competency_weight" json:"competency_weight"`

	CompetencyCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:competency_created_at" json:"competency_created_at"`
	CompetencyUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:competency_updated_at" json:"competency_updated_at"`
	CompetencyDeletedAt gorm.DeletedAt `gorm:"column:competency_deleted_at;index" json:"competency_deleted_at,omitempty"`
}

func (CompetencyModel) TableName() string { return "competencies" }
