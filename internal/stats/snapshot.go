// Package stats is the aggregation and evaluation engine. Every function
// operates on an immutable in-memory Snapshot of the record collections,
// performs no I/O and holds no state, so results are deterministic for a
// given snapshot, including tie order.
package stats

import (
	"github.com/google/uuid"

	"github.com/teamboard/teamboard/internal/models"
)

// UnknownProjectName labels a membership whose project no longer exists.
const UnknownProjectName = "unknown"

// ProjectLookup resolves a project id, returning nil when the reference
// is dangling. Aggregations never fail on a nil result; they substitute
// UnknownProjectName and models.DefaultWeight.
type ProjectLookup func(id uuid.UUID) *models.Project

// Snapshot is a point-in-time copy of the three record collections.
// Callers snapshot before aggregating; the engine never mutates it.
type Snapshot struct {
	Projects   []models.Project
	Members    []models.Member
	Milestones []models.Milestone
}

// Lookup returns a ProjectLookup over the snapshot's projects.
func (s Snapshot) Lookup() ProjectLookup {
	byID := make(map[uuid.UUID]*models.Project, len(s.Projects))
	for i := range s.Projects {
		byID[s.Projects[i].ID] = &s.Projects[i]
	}
	return func(id uuid.UUID) *models.Project {
		return byID[id]
	}
}

// MembersByProject returns the member records enrolled in one project.
func (s Snapshot) MembersByProject(projectID uuid.UUID) []models.Member {
	var members []models.Member
	for _, m := range s.Members {
		if m.ProjectID == projectID {
			members = append(members, m)
		}
	}
	return members
}

// MilestonesByProject returns the milestones belonging to one project.
func (s Snapshot) MilestonesByProject(projectID uuid.UUID) []models.Milestone {
	var milestones []models.Milestone
	for _, m := range s.Milestones {
		if m.ProjectID == projectID {
			milestones = append(milestones, m)
		}
	}
	return milestones
}
