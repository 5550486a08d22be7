package workforce

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollaborationEdge links two employees by name. Pairs may repeat and the
// endpoints are not checked against the employee collection.
type CollaborationEdge struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Seq                   int64     `gorm:"not null;index;column:seq" json:"-"`
	EmployeeA             string    `gorm:"not null;column:employee_a" json:"employee_a"`
	EmployeeB             string    `gorm:"not null;column:employee_b" json:"employee_b"`
	InteractionFrequency  float64   `gorm:"not null;column:interaction_frequency" json:"interaction_frequency"`
	CollaborationStrength float64   `gorm:"not null;column:collaboration_strength" json:"collaboration_strength"`
	ProjectsShared        int       `gorm:"not null;column:projects_shared" json:"projects_shared"`
	Timestamp             time.Time `gorm:"not null;column:timestamp" json:"timestamp"`
}

func (CollaborationEdge) TableName() string { return "collaboration_networks" }

func (c *CollaborationEdge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Timestamp.IsZero() {
		c.Timestamp = time.Now().UTC()
	}
	return nil
}
