package stats

import (
	"github.com/teamboard/teamboard/internal/models"
)

// BandStats summarizes one band's member records with plain arithmetic
// means: progress rounded to the nearest integer, contribution to one
// decimal place.
type BandStats struct {
	Count           int     `json:"count"`
	AvgProgress     int     `json:"avg_progress"`
	AvgContribution float64 `json:"avg_contribution"`
}

// OverallStats is the dashboard's headline card counts over the
// year-filtered record sets.
type OverallStats struct {
	TotalProjects      int `json:"total_projects"`
	CompletedProjects  int `json:"completed_projects"`
	InProgressProjects int `json:"in_progress_projects"`
	TotalMembers       int `json:"total_members"`
}

// EvaluationStats summarizes the comprehensive-evaluation view: distinct
// people, project count and the mean composite score, one decimal place.
type EvaluationStats struct {
	TotalMembers  int     `json:"total_members"`
	TotalProjects int     `json:"total_projects"`
	AvgScore      float64 `json:"avg_score"`
}

// BandStats computes the summary for one band (BandFilterAll for both),
// optionally restricted to a year. All fields are zero when no records
// match.
func (s Snapshot) BandStats(band string, year *int) BandStats {
	members := filterMembersByBand(s.MembersForYear(year), band)
	if len(members) == 0 {
		return BandStats{}
	}

	progressTotal, contributionTotal := 0, 0
	for _, m := range members {
		progressTotal += m.Progress
		contributionTotal += m.Contribution
	}

	n := float64(len(members))
	return BandStats{
		Count:           len(members),
		AvgProgress:     roundInt(float64(progressTotal) / n),
		AvgContribution: round1(float64(contributionTotal) / n),
	}
}

// OverallStats counts projects by status and members within the
// year-filtered sets.
func (s Snapshot) OverallStats(year *int) OverallStats {
	projects := s.ProjectsForYear(year)

	stats := OverallStats{
		TotalProjects: len(projects),
		TotalMembers:  len(s.MembersForYear(year)),
	}
	for _, p := range projects {
		switch p.Status {
		case models.ProjectStatusCompleted:
			stats.CompletedProjects++
		case models.ProjectStatusInProgress:
			stats.InProgressProjects++
		}
	}
	return stats
}

// EvaluationStats summarizes the full, band-unfiltered evaluation for a
// year. AvgScore is 0 when nobody is evaluated.
func (s Snapshot) EvaluationStats(year *int) EvaluationStats {
	members := s.MembersForYear(year)
	names := make(map[string]bool, len(members))
	for _, m := range members {
		names[m.Name] = true
	}

	stats := EvaluationStats{
		TotalMembers:  len(names),
		TotalProjects: len(s.ProjectsForYear(year)),
	}

	evaluation := s.ComprehensiveEvaluation(BandFilterAll, year)
	if len(evaluation) > 0 {
		total := 0.0
		for _, p := range evaluation {
			total += p.TotalScore
		}
		stats.AvgScore = round1(total / float64(len(evaluation)))
	}
	return stats
}
