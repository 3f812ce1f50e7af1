package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusOnHold     ProjectStatus = "on-hold"
)

// DefaultWeight is the importance multiplier applied whenever a project
// has no explicit weight, including resolution of dangling references.
const DefaultWeight = 5

type Project struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Deadline    *time.Time     `json:"deadline,omitempty"`
	Status      ProjectStatus  `gorm:"type:varchar(20);default:'planning'" json:"status"`
	Year        *int           `json:"year,omitempty"`
	Weight      *int           `json:"weight,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Members    []Member    `gorm:"foreignKey:ProjectID" json:"members,omitempty"`
	Milestones []Milestone `gorm:"foreignKey:ProjectID" json:"milestones,omitempty"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = ProjectStatusPlanning
	}
	return nil
}

// WeightValue resolves the project's weight, falling back to DefaultWeight
// when the weight is unset or the project itself is missing. Every
// aggregation path resolves weights through this single method.
func (p *Project) WeightValue() int {
	if p == nil || p.Weight == nil {
		return DefaultWeight
	}
	return *p.Weight
}
