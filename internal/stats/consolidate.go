package stats

import (
	"sort"

	"github.com/google/uuid"

	"github.com/teamboard/teamboard/internal/models"
)

// BandFilterAll disables band filtering.
const BandFilterAll = "all"

// Composite score policy: the fixed weighting that turns the five
// consolidated averages into one ranking score. Not configurable per call.
const (
	progressScoreWeight      = 0.25
	contributionScoreWeight  = 2.0
	collaborationScoreWeight = 1.5
	leadershipScoreWeight    = 1.5
	skillScoreWeight         = 2.0
)

// GroupKeyFunc decides which member records belong to the same person.
// The default groups by exact name match; a canonical person id can be
// swapped in without touching the aggregation itself.
type GroupKeyFunc func(m models.Member) string

// GroupByName is the default grouping key: case-sensitive exact name.
func GroupByName(m models.Member) string {
	return m.Name
}

// ConsolidatedPerson is one person's weighted rollup across all of their
// project memberships.
type ConsolidatedPerson struct {
	Name             string      `json:"name"`
	Band             models.Band `json:"band"`
	MemberIDs        []uuid.UUID `json:"member_ids"`
	Projects         []string    `json:"projects"`
	Roles            []string    `json:"roles"`
	AvgProgress      int         `json:"avg_progress"`
	AvgContribution  float64     `json:"avg_contribution"`
	AvgCollaboration float64     `json:"avg_collaboration"`
	AvgLeadership    float64     `json:"avg_leadership"`
	AvgSkill         float64     `json:"avg_skill"`
	TotalScore       float64     `json:"total_score"`
	Rank             int         `json:"rank,omitempty"`
}

type personAccumulator struct {
	name       string
	memberIDs  []uuid.UUID
	projects   []string
	roles      []string
	bandCounts map[models.Band]int
	bandOrder  []models.Band

	progressSum      float64
	contributionSum  float64
	collaborationSum float64
	leadershipSum    float64
	skillSum         float64
	totalWeight      float64
}

// Consolidate groups member records by person and computes weighted
// averages plus the composite score for each person. Records are weighted
// by their project's weight (DefaultWeight for unset or dangling). The
// result is stably sorted by descending composite score, so equal scores
// keep first-encounter order. Ranks are not assigned; see AssignRanks.
//
// A nil key groups by exact name.
func Consolidate(members []models.Member, lookup ProjectLookup, key GroupKeyFunc) []ConsolidatedPerson {
	if key == nil {
		key = GroupByName
	}

	accs := make(map[string]*personAccumulator)
	var order []string

	for _, m := range members {
		k := key(m)
		acc, ok := accs[k]
		if !ok {
			acc = &personAccumulator{
				name:       m.Name,
				bandCounts: make(map[models.Band]int),
			}
			accs[k] = acc
			order = append(order, k)
		}

		project := lookup(m.ProjectID)
		projectName := UnknownProjectName
		if project != nil {
			projectName = project.Name
		}
		weight := float64(project.WeightValue())

		acc.memberIDs = append(acc.memberIDs, m.ID)
		if !containsString(acc.projects, projectName) {
			acc.projects = append(acc.projects, projectName)
		}
		if m.Role != "" && !containsString(acc.roles, m.Role) {
			acc.roles = append(acc.roles, m.Role)
		}

		band := m.BandValue()
		if acc.bandCounts[band] == 0 {
			acc.bandOrder = append(acc.bandOrder, band)
		}
		acc.bandCounts[band]++

		acc.progressSum += float64(m.Progress) * weight
		acc.contributionSum += float64(m.Contribution) * weight
		acc.collaborationSum += float64(m.CollaborationValue()) * weight
		acc.leadershipSum += float64(m.LeadershipValue()) * weight
		acc.skillSum += float64(m.SkillValue()) * weight
		acc.totalWeight += weight
	}

	people := make([]ConsolidatedPerson, 0, len(order))
	for _, k := range order {
		people = append(people, accs[k].finish())
	}

	sort.SliceStable(people, func(i, j int) bool {
		return people[i].TotalScore > people[j].TotalScore
	})

	return people
}

func (acc *personAccumulator) finish() ConsolidatedPerson {
	p := ConsolidatedPerson{
		Name:      acc.name,
		Band:      acc.dominantBand(),
		MemberIDs: acc.memberIDs,
		Projects:  acc.projects,
		Roles:     acc.roles,
	}

	if acc.totalWeight > 0 {
		p.AvgProgress = roundInt(acc.progressSum / acc.totalWeight)
		p.AvgContribution = round1(acc.contributionSum / acc.totalWeight)
		p.AvgCollaboration = round1(acc.collaborationSum / acc.totalWeight)
		p.AvgLeadership = round1(acc.leadershipSum / acc.totalWeight)
		p.AvgSkill = round1(acc.skillSum / acc.totalWeight)
	}

	p.TotalScore = CompositeScore(p.AvgProgress, p.AvgContribution, p.AvgCollaboration, p.AvgLeadership, p.AvgSkill)
	return p
}

// dominantBand resolves conflicting bands across a person's records:
// the most frequent band wins, and a frequency tie goes to the band seen
// first. Deterministic regardless of how the records were fetched.
func (acc *personAccumulator) dominantBand() models.Band {
	best := models.BandA
	bestCount := -1
	for _, band := range acc.bandOrder {
		if acc.bandCounts[band] > bestCount {
			best = band
			bestCount = acc.bandCounts[band]
		}
	}
	return best
}

// CompositeScore applies the fixed five-factor weighting to a person's
// consolidated averages, rounded to one decimal place.
func CompositeScore(avgProgress int, avgContribution, avgCollaboration, avgLeadership, avgSkill float64) float64 {
	return round1(float64(avgProgress)*progressScoreWeight +
		avgContribution*contributionScoreWeight +
		avgCollaboration*collaborationScoreWeight +
		avgLeadership*leadershipScoreWeight +
		avgSkill*skillScoreWeight)
}

// FilterByBand keeps the people in one band; BandFilterAll keeps everyone.
func FilterByBand(people []ConsolidatedPerson, band string) []ConsolidatedPerson {
	if band == "" || band == BandFilterAll {
		return people
	}
	var filtered []ConsolidatedPerson
	for _, p := range people {
		if string(p.Band) == band {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// AssignRanks numbers an already-sorted evaluation list 1..n. Ranks are
// dense: tied scores still get consecutive distinct ranks.
func AssignRanks(people []ConsolidatedPerson) {
	for i := range people {
		people[i].Rank = i + 1
	}
}

// ConsolidatedRoster is the roster view: per-person weighted rollups,
// optionally restricted to a band and a year, sorted by composite score.
func (s Snapshot) ConsolidatedRoster(band string, year *int) []ConsolidatedPerson {
	people := Consolidate(s.MembersForYear(year), s.Lookup(), nil)
	return FilterByBand(people, band)
}

// ComprehensiveEvaluation is the ranked evaluation view: the roster with
// dense 1-based ranks assigned.
func (s Snapshot) ComprehensiveEvaluation(band string, year *int) []ConsolidatedPerson {
	people := s.ConsolidatedRoster(band, year)
	AssignRanks(people)
	return people
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
