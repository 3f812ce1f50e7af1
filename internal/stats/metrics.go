package stats

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/teamboard/teamboard/internal/models"
)

// ProjectProgress is the arithmetic mean of member progress across one
// project, rounded to the nearest integer. A project with no members is
// at 0.
func (s Snapshot) ProjectProgress(projectID uuid.UUID) int {
	members := s.MembersByProject(projectID)
	if len(members) == 0 {
		return 0
	}
	total := 0
	for _, m := range members {
		total += m.Progress
	}
	return roundInt(float64(total) / float64(len(members)))
}

// ProjectMilestoneProgress averages the project's milestone progress for
// a given month, treating months without an entry as 0. It returns nil
// when the project has no milestones, which is distinct from 0.
func (s Snapshot) ProjectMilestoneProgress(projectID uuid.UUID, month int) *int {
	milestones := s.MilestonesByProject(projectID)
	if len(milestones) == 0 {
		return nil
	}
	total := 0
	for _, m := range milestones {
		total += m.ProgressForMonth(month)
	}
	avg := roundInt(float64(total) / float64(len(milestones)))
	return &avg
}

// MilestoneAverageProgress averages a milestone's recorded monthly values,
// skipping months at 0, rounded to the nearest integer.
func MilestoneAverageProgress(m models.Milestone) int {
	total, count := 0, 0
	for _, v := range m.MonthlyProgress {
		if v > 0 {
			total += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return roundInt(float64(total) / float64(count))
}

// DaysRemaining counts whole calendar days from now until the deadline:
// 0 means due today, negative means overdue by that many days. The
// time-of-day of both sides is discarded so only dates matter. It returns
// nil when there is no deadline.
func DaysRemaining(deadline *time.Time, now time.Time) *int {
	if deadline == nil {
		return nil
	}

	due := atMidnight(*deadline)
	today := atMidnight(now)

	days := int(math.Ceil(due.Sub(today).Hours() / 24))
	return &days
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// roundInt rounds half away from zero, matching the rounding used for
// every integer average in the engine.
func roundInt(v float64) int {
	return int(math.Round(v))
}

// round1 rounds to one decimal place, the precision of every non-integer
// average and composite score.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
