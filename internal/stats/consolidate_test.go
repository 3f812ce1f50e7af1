package stats_test

import (
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/teamboard/teamboard/internal/models"
	"github.com/teamboard/teamboard/internal/stats"
)

func intPtr(v int) *int { return &v }

func project(name string, weight *int) models.Project {
	return models.Project{ID: uuid.New(), Name: name, Weight: weight}
}

func member(projectID uuid.UUID, name string, band models.Band, progress, contribution int) models.Member {
	return models.Member{
		ID:           uuid.New(),
		ProjectID:    projectID,
		Name:         name,
		Band:         band,
		Progress:     progress,
		Contribution: contribution,
	}
}

func lookupFor(projects ...models.Project) stats.ProjectLookup {
	byID := make(map[uuid.UUID]*models.Project)
	for i := range projects {
		byID[projects[i].ID] = &projects[i]
	}
	return func(id uuid.UUID) *models.Project { return byID[id] }
}

func TestConsolidate(t *testing.T) {
	t.Run("EmptyInput", func(t *testing.T) {
		people := stats.Consolidate(nil, lookupFor(), nil)
		if len(people) != 0 {
			t.Fatalf("expected empty output, got %d people", len(people))
		}
	})

	t.Run("OnePersonPerDistinctName", func(t *testing.T) {
		p := project("Alpha", nil)
		members := []models.Member{
			member(p.ID, "Kim", models.BandA, 50, 5),
			member(p.ID, "Lee", models.BandA, 60, 6),
			member(p.ID, "Kim", models.BandA, 70, 7),
		}

		people := stats.Consolidate(members, lookupFor(p), nil)
		if len(people) != 2 {
			t.Fatalf("expected 2 consolidated people, got %d", len(people))
		}
	})

	t.Run("NameMatchIsCaseSensitive", func(t *testing.T) {
		p := project("Alpha", nil)
		members := []models.Member{
			member(p.ID, "kim", models.BandA, 50, 5),
			member(p.ID, "Kim", models.BandA, 50, 5),
		}

		people := stats.Consolidate(members, lookupFor(p), nil)
		if len(people) != 2 {
			t.Fatalf("expected case-sensitive grouping to keep 2 people, got %d", len(people))
		}
	})

	t.Run("WeightedAverages", func(t *testing.T) {
		heavy := project("Heavy", intPtr(10))
		light := project("Light", intPtr(2))
		members := []models.Member{
			member(heavy.ID, "Kim", models.BandA, 100, 8),
			member(light.ID, "Kim", models.BandA, 40, 5),
		}

		people := stats.Consolidate(members, lookupFor(heavy, light), nil)
		if len(people) != 1 {
			t.Fatalf("expected 1 person, got %d", len(people))
		}

		got := people[0]
		// (100*10 + 40*2) / 12 = 90
		if got.AvgProgress != 90 {
			t.Errorf("AvgProgress = %d, want 90", got.AvgProgress)
		}
		// (8*10 + 5*2) / 12 = 7.5
		if got.AvgContribution != 7.5 {
			t.Errorf("AvgContribution = %v, want 7.5", got.AvgContribution)
		}
		if !reflect.DeepEqual(got.Projects, []string{"Heavy", "Light"}) {
			t.Errorf("Projects = %v, want [Heavy Light]", got.Projects)
		}
	})

	t.Run("IdenticalValuesUnaffectedByWeights", func(t *testing.T) {
		heavy := project("Heavy", intPtr(9))
		light := project("Light", intPtr(1))
		m1 := member(heavy.ID, "Kim", models.BandA, 64, 7)
		m2 := member(light.ID, "Kim", models.BandA, 64, 7)

		people := stats.Consolidate([]models.Member{m1, m2}, lookupFor(heavy, light), nil)
		if people[0].AvgProgress != 64 {
			t.Errorf("AvgProgress = %d, want 64", people[0].AvgProgress)
		}
		if people[0].AvgContribution != 7.0 {
			t.Errorf("AvgContribution = %v, want 7.0", people[0].AvgContribution)
		}
	})

	t.Run("CompositeScore", func(t *testing.T) {
		p := project("Alpha", nil)
		m := member(p.ID, "Kim", models.BandA, 80, 8)
		m.Collaboration = intPtr(7)
		m.Leadership = intPtr(6)
		m.Skill = intPtr(9)

		people := stats.Consolidate([]models.Member{m}, lookupFor(p), nil)
		// 80*0.25 + 8*2 + 7*1.5 + 6*1.5 + 9*2 = 73.5
		if people[0].TotalScore != 73.5 {
			t.Errorf("TotalScore = %v, want 73.5", people[0].TotalScore)
		}
	})

	t.Run("MissingAttributesDefault", func(t *testing.T) {
		p := project("Alpha", nil)
		m := models.Member{ID: uuid.New(), ProjectID: p.ID, Name: "Kim"}

		people := stats.Consolidate([]models.Member{m}, lookupFor(p), nil)
		got := people[0]
		if got.AvgProgress != 0 || got.AvgContribution != 0 {
			t.Errorf("progress/contribution should default to 0, got %d / %v", got.AvgProgress, got.AvgContribution)
		}
		if got.AvgCollaboration != 5.0 || got.AvgLeadership != 5.0 || got.AvgSkill != 5.0 {
			t.Errorf("collaboration/leadership/skill should default to 5, got %v / %v / %v",
				got.AvgCollaboration, got.AvgLeadership, got.AvgSkill)
		}
		if got.Band != models.BandA {
			t.Errorf("band should default to A, got %s", got.Band)
		}
	})

	t.Run("DanglingProjectReference", func(t *testing.T) {
		m := member(uuid.New(), "Kim", models.BandA, 60, 6)

		people := stats.Consolidate([]models.Member{m}, lookupFor(), nil)
		if len(people) != 1 {
			t.Fatalf("dangling reference must not drop the member")
		}
		if !reflect.DeepEqual(people[0].Projects, []string{stats.UnknownProjectName}) {
			t.Errorf("Projects = %v, want [%s]", people[0].Projects, stats.UnknownProjectName)
		}
		// Default weight means a lone record's averages equal its raw values.
		if people[0].AvgProgress != 60 {
			t.Errorf("AvgProgress = %d, want 60", people[0].AvgProgress)
		}
	})

	t.Run("SortedDescendingWithStableTies", func(t *testing.T) {
		p := project("Alpha", nil)
		members := []models.Member{
			member(p.ID, "Low", models.BandA, 10, 1),
			member(p.ID, "TieFirst", models.BandA, 50, 5),
			member(p.ID, "TieSecond", models.BandA, 50, 5),
			member(p.ID, "High", models.BandA, 100, 10),
		}

		people := stats.Consolidate(members, lookupFor(p), nil)
		for i := 1; i < len(people); i++ {
			if people[i].TotalScore > people[i-1].TotalScore {
				t.Fatalf("output not sorted descending at index %d", i)
			}
		}

		names := []string{people[0].Name, people[1].Name, people[2].Name, people[3].Name}
		want := []string{"High", "TieFirst", "TieSecond", "Low"}
		if !reflect.DeepEqual(names, want) {
			t.Errorf("order = %v, want %v", names, want)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		p := project("Alpha", intPtr(3))
		members := []models.Member{
			member(p.ID, "Kim", models.BandA, 50, 5),
			member(p.ID, "Lee", models.BandB, 50, 5),
			member(p.ID, "Park", models.BandA, 80, 8),
		}

		first := stats.Consolidate(members, lookupFor(p), nil)
		second := stats.Consolidate(members, lookupFor(p), nil)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("consolidation of the same snapshot differed between runs")
		}
	})

	t.Run("PluggableGroupKey", func(t *testing.T) {
		p := project("Alpha", nil)
		m1 := member(p.ID, "Kim", models.BandA, 40, 4)
		m1.Role = "dev"
		m2 := member(p.ID, "Lee", models.BandA, 60, 6)
		m2.Role = "dev"

		byRole := func(m models.Member) string { return m.Role }
		people := stats.Consolidate([]models.Member{m1, m2}, lookupFor(p), byRole)
		if len(people) != 1 {
			t.Fatalf("grouping by role should merge both records, got %d people", len(people))
		}
		if people[0].AvgProgress != 50 {
			t.Errorf("AvgProgress = %d, want 50", people[0].AvgProgress)
		}
	})
}

func TestBandConflictResolution(t *testing.T) {
	p := project("Alpha", nil)

	t.Run("MostFrequentWins", func(t *testing.T) {
		members := []models.Member{
			member(p.ID, "Kim", models.BandA, 50, 5),
			member(p.ID, "Kim", models.BandB, 50, 5),
			member(p.ID, "Kim", models.BandB, 50, 5),
		}
		people := stats.Consolidate(members, lookupFor(p), nil)
		if people[0].Band != models.BandB {
			t.Errorf("band = %s, want B (majority)", people[0].Band)
		}
	})

	t.Run("FrequencyTieGoesToFirstSeen", func(t *testing.T) {
		members := []models.Member{
			member(p.ID, "Kim", models.BandB, 50, 5),
			member(p.ID, "Kim", models.BandA, 50, 5),
		}
		people := stats.Consolidate(members, lookupFor(p), nil)
		if people[0].Band != models.BandB {
			t.Errorf("band = %s, want B (first seen)", people[0].Band)
		}
	})
}

func TestFilterByBand(t *testing.T) {
	p := project("Alpha", nil)
	members := []models.Member{
		member(p.ID, "Kim", models.BandA, 50, 5),
		member(p.ID, "Lee", models.BandB, 60, 6),
	}
	people := stats.Consolidate(members, lookupFor(p), nil)

	if got := stats.FilterByBand(people, stats.BandFilterAll); len(got) != 2 {
		t.Errorf("band filter 'all' kept %d people, want 2", len(got))
	}
	got := stats.FilterByBand(people, "B")
	if len(got) != 1 || got[0].Name != "Lee" {
		t.Errorf("band filter 'B' = %v, want just Lee", got)
	}
}

func TestAssignRanks(t *testing.T) {
	p := project("Alpha", nil)
	members := []models.Member{
		member(p.ID, "TieFirst", models.BandA, 50, 5),
		member(p.ID, "TieSecond", models.BandA, 50, 5),
		member(p.ID, "High", models.BandA, 100, 10),
	}

	people := stats.Consolidate(members, lookupFor(p), nil)
	stats.AssignRanks(people)

	for i, person := range people {
		if person.Rank != i+1 {
			t.Errorf("rank at index %d = %d, want %d (dense, no shared ranks)", i, person.Rank, i+1)
		}
	}
	if people[1].TotalScore != people[2].TotalScore {
		t.Fatalf("fixture should produce a score tie")
	}
	if people[1].Rank == people[2].Rank {
		t.Errorf("tied scores must still get distinct ranks")
	}
}
