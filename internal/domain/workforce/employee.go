package workforce

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Employee struct {
	ID                 uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Seq                int64                       `gorm:"not null;index;column:seq" json:"-"`
	Name               string                      `gorm:"not null;index;column:name" json:"name"`
	Department         string                      `gorm:"not null;index;column:department" json:"department"`
	Role               string                      `gorm:"not null;column:role" json:"role"`
	Skills             datatypes.JSONSlice[string] `gorm:"not null;column:skills" json:"skills"`
	ExperienceYears    int                         `gorm:"not null;column:experience_years" json:"experience_years"`
	PerformanceScore   float64                     `gorm:"not null;column:performance_score" json:"performance_score"`
	CollaborationIndex float64                     `gorm:"not null;column:collaboration_index" json:"collaboration_index"`
	ProductivityScore  float64                     `gorm:"not null;column:productivity_score" json:"productivity_score"`
	Timestamp          time.Time                   `gorm:"not null;column:timestamp" json:"timestamp"`
}

func (Employee) TableName() string { return "employees" }

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	return nil
}
