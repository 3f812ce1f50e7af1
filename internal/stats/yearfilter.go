package stats

import (
	"github.com/google/uuid"

	"github.com/teamboard/teamboard/internal/models"
)

// ProjectsForYear returns the projects relevant to a calendar year.
// Each project is matched against exactly one source, in fixed priority:
// its year field, else its deadline's year, else its creation year.
// A project carrying none of the three matches every year.
func ProjectsForYear(projects []models.Project, year int) []models.Project {
	var matched []models.Project
	for _, p := range projects {
		if projectMatchesYear(p, year) {
			matched = append(matched, p)
		}
	}
	return matched
}

func projectMatchesYear(p models.Project, year int) bool {
	if p.Year != nil {
		return *p.Year == year
	}
	if p.Deadline != nil {
		return p.Deadline.Year() == year
	}
	if !p.CreatedAt.IsZero() {
		return p.CreatedAt.Year() == year
	}
	return true
}

// MembersForYear returns the members enrolled in that year's projects.
// A member whose project was deleted matches no year.
func MembersForYear(projects []models.Project, members []models.Member, year int) []models.Member {
	ids := make(map[uuid.UUID]bool)
	for _, p := range ProjectsForYear(projects, year) {
		ids[p.ID] = true
	}

	var matched []models.Member
	for _, m := range members {
		if ids[m.ProjectID] {
			matched = append(matched, m)
		}
	}
	return matched
}

// ProjectsForYear filters the snapshot's projects for a year; a nil year
// means no filtering.
func (s Snapshot) ProjectsForYear(year *int) []models.Project {
	if year == nil {
		return s.Projects
	}
	return ProjectsForYear(s.Projects, *year)
}

// MembersForYear filters the snapshot's members for a year; a nil year
// means no filtering.
func (s Snapshot) MembersForYear(year *int) []models.Member {
	if year == nil {
		return s.Members
	}
	return MembersForYear(s.Projects, s.Members, *year)
}
