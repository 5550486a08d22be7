package workforce

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SkillGap records a department-level proficiency shortfall. GapLevel is
// assigned independently of the numeric gap between the two proficiencies.
type SkillGap struct {
	ID                      uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Seq                     int64                       `gorm:"not null;index;column:seq" json:"-"`
	Department              string                      `gorm:"not null;index;column:department" json:"department"`
	Skill                   string                      `gorm:"not null;column:skill" json:"skill"`
	GapLevel                string                      `gorm:"not null;column:gap_level" json:"gap_level"`
	CurrentProficiency      float64                     `gorm:"not null;column:current_proficiency" json:"current_proficiency"`
	RequiredProficiency     float64                     `gorm:"not null;column:required_proficiency" json:"required_proficiency"`
	AffectedEmployees       int                         `gorm:"not null;column:affected_employees" json:"affected_employees"`
	TrainingRecommendations datatypes.JSONSlice[string] `gorm:"not null;column:training_recommendations" json:"training_recommendations"`
	Timestamp               time.Time                   `gorm:"not null;column:timestamp" json:"timestamp"`
}

func (SkillGap) TableName() string { return "skill_gaps" }

func (g *SkillGap) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.Timestamp.IsZero() {
		g.Timestamp = time.Now().UTC()
	}
	return nil
}
