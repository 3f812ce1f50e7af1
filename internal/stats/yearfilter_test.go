package stats_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/teamboard/teamboard/internal/models"
	"github.com/teamboard/teamboard/internal/stats"
)

func TestProjectsForYear(t *testing.T) {
	t.Run("YearFieldTakesPriority", func(t *testing.T) {
		deadline := dateUTC(2026, time.June, 1)
		p := models.Project{ID: uuid.New(), Name: "Alpha", Year: intPtr(2025), Deadline: &deadline}

		if got := stats.ProjectsForYear([]models.Project{p}, 2025); len(got) != 1 {
			t.Errorf("project with year 2025 should match 2025")
		}
		// The deadline's year is never consulted once a year field exists.
		if got := stats.ProjectsForYear([]models.Project{p}, 2026); len(got) != 0 {
			t.Errorf("project with year 2025 must not match 2026 via its deadline")
		}
	})

	t.Run("DeadlineFallback", func(t *testing.T) {
		deadline := dateUTC(2025, time.December, 31)
		p := models.Project{ID: uuid.New(), Name: "Alpha", Deadline: &deadline, CreatedAt: dateUTC(2024, time.January, 1)}

		if got := stats.ProjectsForYear([]models.Project{p}, 2025); len(got) != 1 {
			t.Errorf("deadline 2025-12-31 should match 2025")
		}
		if got := stats.ProjectsForYear([]models.Project{p}, 2026); len(got) != 0 {
			t.Errorf("deadline 2025-12-31 must not match 2026")
		}
		if got := stats.ProjectsForYear([]models.Project{p}, 2024); len(got) != 0 {
			t.Errorf("creation year is not consulted while a deadline exists")
		}
	})

	t.Run("CreatedAtFallback", func(t *testing.T) {
		p := models.Project{ID: uuid.New(), Name: "Alpha", CreatedAt: dateUTC(2024, time.March, 5)}

		if got := stats.ProjectsForYear([]models.Project{p}, 2024); len(got) != 1 {
			t.Errorf("creation year 2024 should match 2024")
		}
		if got := stats.ProjectsForYear([]models.Project{p}, 2025); len(got) != 0 {
			t.Errorf("creation year 2024 must not match 2025")
		}
	})

	t.Run("NothingPresentMatchesEveryYear", func(t *testing.T) {
		p := models.Project{ID: uuid.New(), Name: "Alpha"}

		for _, year := range []int{1999, 2024, 2100} {
			if got := stats.ProjectsForYear([]models.Project{p}, year); len(got) != 1 {
				t.Errorf("project without year/deadline/createdAt should match %d", year)
			}
		}
	})
}

func TestMembersForYear(t *testing.T) {
	p2025 := models.Project{ID: uuid.New(), Name: "Alpha", Year: intPtr(2025)}
	p2026 := models.Project{ID: uuid.New(), Name: "Beta", Year: intPtr(2026)}
	projects := []models.Project{p2025, p2026}

	members := []models.Member{
		member(p2025.ID, "Kim", models.BandA, 50, 5),
		member(p2026.ID, "Lee", models.BandA, 50, 5),
		member(uuid.New(), "Ghost", models.BandA, 50, 5), // dangling
	}

	got := stats.MembersForYear(projects, members, 2025)
	if len(got) != 1 || got[0].Name != "Kim" {
		t.Errorf("MembersForYear(2025) = %v, want just Kim", got)
	}

	for _, year := range []int{2025, 2026} {
		for _, m := range stats.MembersForYear(projects, members, year) {
			if m.Name == "Ghost" {
				t.Errorf("dangling member must be excluded for year %d", year)
			}
		}
	}
}
