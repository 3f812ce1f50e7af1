package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Band string

const (
	BandA Band = "A"
	BandB Band = "B"
)

// DefaultAttributeScore is the fallback for the collaboration, leadership
// and skill attributes when a record never had them scored.
const DefaultAttributeScore = 5

// Member is one project-membership record, not a unique person. The same
// name appearing on several projects is consolidated into a single person
// by the stats package.
type Member struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ProjectID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"project_id"`
	Name          string         `gorm:"not null;index" json:"name"`
	Band          Band           `gorm:"type:varchar(1);default:'A'" json:"band"`
	Role          string         `json:"role,omitempty"`
	Progress      int            `gorm:"default:0" json:"progress"`
	Contribution  int            `gorm:"default:0" json:"contribution"`
	Collaboration *int           `json:"collaboration,omitempty"`
	Leadership    *int           `json:"leadership,omitempty"`
	Skill         *int           `json:"skill,omitempty"`
	Notes         string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Band == "" {
		m.Band = BandA
	}
	return nil
}

// BandValue returns the member's band, defaulting to band A so the value
// is always one of exactly two bands.
func (m *Member) BandValue() Band {
	if m.Band == "" {
		return BandA
	}
	return m.Band
}

func (m *Member) CollaborationValue() int {
	return attributeOrDefault(m.Collaboration)
}

func (m *Member) LeadershipValue() int {
	return attributeOrDefault(m.Leadership)
}

func (m *Member) SkillValue() int {
	return attributeOrDefault(m.Skill)
}

func attributeOrDefault(v *int) int {
	if v == nil {
		return DefaultAttributeScore
	}
	return *v
}
