package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teamboard/teamboard/internal/stats"
	"github.com/teamboard/teamboard/internal/store"
)

type DashboardHandler struct {
	store *store.Store
}

func NewDashboardHandler(st *store.Store) *DashboardHandler {
	return &DashboardHandler{store: st}
}

// GetDashboard assembles the dashboard view: headline counts, per-band
// statistics, the year's project progress list and the top contributors.
// ?mode=consolidated merges each person's records into one weighted score;
// the default scores each record individually.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	snap, err := h.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard"})
		return
	}

	year := yearParam(c)
	band := bandParam(c)
	now := time.Now()

	type projectProgress struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Progress int    `json:"progress"`
	}
	var progressList []projectProgress
	for _, p := range snap.ProjectsForYear(year) {
		progressList = append(progressList, projectProgress{
			ID:       p.ID.String(),
			Name:     p.Name,
			Progress: snap.ProjectProgress(p.ID),
		})
	}

	response := gin.H{
		"stats":            snap.OverallStats(year),
		"band_a":           snap.BandStats("A", year),
		"band_b":           snap.BandStats("B", year),
		"project_progress": progressList,
		"generated_at":     now,
	}

	if c.Query("mode") == "consolidated" {
		contributors := snap.ConsolidatedContributors(band, year)
		if len(contributors) > stats.DefaultTopContributorLimit {
			contributors = contributors[:stats.DefaultTopContributorLimit]
		}
		response["top_contributors"] = contributors
	} else {
		response["top_contributors"] = snap.TopContributors(stats.DefaultTopContributorLimit, band, year)
	}

	c.JSON(http.StatusOK, response)
}
