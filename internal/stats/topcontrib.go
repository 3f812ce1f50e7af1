package stats

import (
	"sort"

	"github.com/teamboard/teamboard/internal/models"
)

// DefaultTopContributorLimit caps the dashboard's top-contributor list.
const DefaultTopContributorLimit = 5

// Contributor is one member record scored for the top-contributor list.
type Contributor struct {
	models.Member
	ProjectName string  `json:"project_name"`
	Score       float64 `json:"score"`
}

// ConsolidatedContributor is one person's weighted mean contributor score
// across all of their records.
type ConsolidatedContributor struct {
	Name     string      `json:"name"`
	Band     models.Band `json:"band"`
	Projects []string    `json:"projects"`
	Score    float64     `json:"score"`
}

// ContributorScore is the lightweight per-record score used by the
// top-contributor lists: contribution scaled by fractional progress.
func ContributorScore(m models.Member) float64 {
	return float64(m.Contribution) * float64(m.Progress) / 100
}

// TopContributors scores each member record individually, resolves its
// project name and returns the best `limit` records (0 or negative means
// DefaultTopContributorLimit), stably sorted by descending score.
func (s Snapshot) TopContributors(limit int, band string, year *int) []Contributor {
	if limit <= 0 {
		limit = DefaultTopContributorLimit
	}
	lookup := s.Lookup()

	var scored []Contributor
	for _, m := range filterMembersByBand(s.MembersForYear(year), band) {
		projectName := UnknownProjectName
		if project := lookup(m.ProjectID); project != nil {
			projectName = project.Name
		}
		scored = append(scored, Contributor{
			Member:      m,
			ProjectName: projectName,
			Score:       ContributorScore(m),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// ConsolidatedContributors groups records by person like Consolidate but
// aggregates the lightweight contributor score instead of the five-factor
// composite: the weighted mean of per-record scores, sorted descending.
func (s Snapshot) ConsolidatedContributors(band string, year *int) []ConsolidatedContributor {
	lookup := s.Lookup()

	type acc struct {
		name        string
		band        models.Band
		projects    []string
		scoreSum    float64
		totalWeight float64
	}
	accs := make(map[string]*acc)
	var order []string

	for _, m := range filterMembersByBand(s.MembersForYear(year), band) {
		a, ok := accs[m.Name]
		if !ok {
			a = &acc{name: m.Name, band: m.BandValue()}
			accs[m.Name] = a
			order = append(order, m.Name)
		}

		project := lookup(m.ProjectID)
		projectName := UnknownProjectName
		if project != nil {
			projectName = project.Name
		}
		weight := float64(project.WeightValue())

		if !containsString(a.projects, projectName) {
			a.projects = append(a.projects, projectName)
		}
		a.scoreSum += ContributorScore(m) * weight
		a.totalWeight += weight
	}

	contributors := make([]ConsolidatedContributor, 0, len(order))
	for _, k := range order {
		a := accs[k]
		score := 0.0
		if a.totalWeight > 0 {
			score = a.scoreSum / a.totalWeight
		}
		contributors = append(contributors, ConsolidatedContributor{
			Name:     a.name,
			Band:     a.band,
			Projects: a.projects,
			Score:    score,
		})
	}

	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].Score > contributors[j].Score
	})

	return contributors
}

func filterMembersByBand(members []models.Member, band string) []models.Member {
	if band == "" || band == BandFilterAll {
		return members
	}
	var filtered []models.Member
	for _, m := range members {
		if string(m.BandValue()) == band {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// MemberRecordsByName returns every membership record for one person, in
// snapshot order, used by the person detail view.
func (s Snapshot) MemberRecordsByName(name string) []models.Member {
	var records []models.Member
	for _, m := range s.Members {
		if m.Name == name {
			records = append(records, m)
		}
	}
	return records
}

// BandCounts tallies the member records of a project per band.
func BandCounts(members []models.Member) map[models.Band]int {
	counts := make(map[models.Band]int)
	for _, m := range members {
		counts[m.BandValue()]++
	}
	return counts
}
