// Package store owns the three record collections. It is an explicit,
// injected collaborator: handlers and services receive a *Store, never a
// package-level database handle.
package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/teamboard/teamboard/internal/models"
	"github.com/teamboard/teamboard/internal/stats"
)

// ErrNotFound is returned when a record id does not resolve.
var ErrNotFound = errors.New("record not found")

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Snapshot reads all three collections in creation order. The aggregation
// engine operates only on such point-in-time copies.
func (s *Store) Snapshot() (stats.Snapshot, error) {
	var snap stats.Snapshot

	if err := s.db.Order("created_at ASC").Find(&snap.Projects).Error; err != nil {
		return stats.Snapshot{}, err
	}
	if err := s.db.Order("created_at ASC").Find(&snap.Members).Error; err != nil {
		return stats.Snapshot{}, err
	}
	if err := s.db.Order("created_at ASC").Find(&snap.Milestones).Error; err != nil {
		return stats.Snapshot{}, err
	}
	return snap, nil
}

// Projects

func (s *Store) ListProjects() ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Order("created_at ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Store) GetProject(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, "id = ?", id).Error; err != nil {
		return nil, asStoreError(err)
	}
	return &project, nil
}

func (s *Store) CreateProject(project *models.Project) error {
	return s.db.Create(project).Error
}

func (s *Store) SaveProject(project *models.Project) error {
	return s.db.Save(project).Error
}

// DeleteProject removes a project together with every member and
// milestone that references it, in one transaction. The "no orphaned
// member or milestone" invariant is enforced here and nowhere else.
func (s *Store) DeleteProject(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Member{}, "project_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Milestone{}, "project_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}

// Members

func (s *Store) ListMembers() ([]models.Member, error) {
	var members []models.Member
	if err := s.db.Order("created_at ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (s *Store) GetMember(id uuid.UUID) (*models.Member, error) {
	var member models.Member
	if err := s.db.First(&member, "id = ?", id).Error; err != nil {
		return nil, asStoreError(err)
	}
	return &member, nil
}

func (s *Store) MembersByProject(projectID uuid.UUID) ([]models.Member, error) {
	var members []models.Member
	if err := s.db.Where("project_id = ?", projectID).Order("created_at ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (s *Store) CreateMember(member *models.Member) error {
	return s.db.Create(member).Error
}

func (s *Store) SaveMember(member *models.Member) error {
	return s.db.Save(member).Error
}

func (s *Store) DeleteMember(id uuid.UUID) error {
	return s.db.Delete(&models.Member{}, "id = ?", id).Error
}

// Milestones

func (s *Store) ListMilestones() ([]models.Milestone, error) {
	var milestones []models.Milestone
	if err := s.db.Order("created_at ASC").Find(&milestones).Error; err != nil {
		return nil, err
	}
	return milestones, nil
}

func (s *Store) GetMilestone(id uuid.UUID) (*models.Milestone, error) {
	var milestone models.Milestone
	if err := s.db.First(&milestone, "id = ?", id).Error; err != nil {
		return nil, asStoreError(err)
	}
	return &milestone, nil
}

func (s *Store) MilestonesByProject(projectID uuid.UUID) ([]models.Milestone, error) {
	var milestones []models.Milestone
	if err := s.db.Where("project_id = ?", projectID).Order("created_at ASC").Find(&milestones).Error; err != nil {
		return nil, err
	}
	return milestones, nil
}

func (s *Store) CreateMilestone(milestone *models.Milestone) error {
	return s.db.Create(milestone).Error
}

func (s *Store) SaveMilestone(milestone *models.Milestone) error {
	return s.db.Save(milestone).Error
}

func (s *Store) DeleteMilestone(id uuid.UUID) error {
	return s.db.Delete(&models.Milestone{}, "id = ?", id).Error
}

func asStoreError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
