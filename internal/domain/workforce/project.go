package workforce

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Project struct {
	ID                  uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Seq                 int64                       `gorm:"not null;index;column:seq" json:"-"`
	Name                string                      `gorm:"not null;column:name" json:"name"`
	Description         string                      `gorm:"column:description" json:"description"`
	Status              string                      `gorm:"not null;index;column:status" json:"status"`
	SuccessProbability  float64                     `gorm:"not null;column:success_probability" json:"success_probability"`
	TeamMembers         datatypes.JSONSlice[string] `gorm:"not null;column:team_members" json:"team_members"`
	RequiredSkills      datatypes.JSONSlice[string] `gorm:"not null;column:required_skills" json:"required_skills"`
	StartDate           time.Time                   `gorm:"not null;column:start_date" json:"start_date"`
	EstimatedCompletion time.Time                   `gorm:"not null;column:estimated_completion" json:"estimated_completion"`
	ActualCompletion    *time.Time                  `gorm:"column:actual_completion" json:"actual_completion"`
	Timestamp           time.Time                   `gorm:"not null;column:timestamp" json:"timestamp"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now().UTC()
	}
	return nil
}
