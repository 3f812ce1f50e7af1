package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MonthlyProgress maps a month number (1-12) to a progress value in [0,100].
// Months without an entry count as 0.
type MonthlyProgress map[int]int

// Milestone is a named sub-deliverable of a project tracked with a
// month-by-month progress curve.
type Milestone struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ProjectID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"project_id"`
	Name            string          `gorm:"not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	Year            *int            `json:"year,omitempty"`
	MonthlyProgress MonthlyProgress `gorm:"serializer:json" json:"monthly_progress"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (m *Milestone) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.MonthlyProgress == nil {
		m.MonthlyProgress = MonthlyProgress{}
	}
	return nil
}

// ProgressForMonth returns the recorded progress for a month, or 0 when
// the month has no entry.
func (m *Milestone) ProgressForMonth(month int) int {
	if m.MonthlyProgress == nil {
		return 0
	}
	return m.MonthlyProgress[month]
}

// ClampProgress bounds a progress value to [0,100].
func ClampProgress(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// DisplayYear returns the milestone's year, defaulting to the current
// calendar year when unset.
func (m *Milestone) DisplayYear(now time.Time) int {
	if m.Year != nil {
		return *m.Year
	}
	return now.Year()
}
