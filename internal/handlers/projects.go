package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/teamboard/teamboard/internal/models"
	"github.com/teamboard/teamboard/internal/stats"
	"github.com/teamboard/teamboard/internal/store"
)

type ProjectHandler struct {
	store *store.Store
}

func NewProjectHandler(st *store.Store) *ProjectHandler {
	return &ProjectHandler{store: st}
}

// ListProjects returns projects, optionally filtered to a year, each with
// its derived metrics attached.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	snap, err := h.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	projects := snap.ProjectsForYear(yearParam(c))
	now := time.Now()
	month := int(now.Month())

	type projectSummary struct {
		models.Project
		Progress          int    `json:"progress"`
		MilestoneProgress *int   `json:"milestone_progress"`
		DaysRemaining     *int   `json:"days_remaining"`
		MemberCount       int    `json:"member_count"`
		BandACount        int    `json:"band_a_count"`
		BandBCount        int    `json:"band_b_count"`
	}

	summaries := make([]projectSummary, 0, len(projects))
	for _, p := range projects {
		members := snap.MembersByProject(p.ID)
		counts := stats.BandCounts(members)
		summaries = append(summaries, projectSummary{
			Project:           p,
			Progress:          snap.ProjectProgress(p.ID),
			MilestoneProgress: snap.ProjectMilestoneProgress(p.ID, month),
			DaysRemaining:     stats.DaysRemaining(p.Deadline, now),
			MemberCount:       len(members),
			BandACount:        counts[models.BandA],
			BandBCount:        counts[models.BandB],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": summaries,
		"total":    len(summaries),
	})
}

// GetProject returns one project with members, milestones and metrics.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	project, err := h.store.GetProject(projectID)
	if err != nil {
		notFoundOrServerError(c, err, "project")
		return
	}

	snap, err := h.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		return
	}

	now := time.Now()
	members := filterBandMembers(snap.MembersByProject(projectID), bandParam(c))
	counts := stats.BandCounts(snap.MembersByProject(projectID))

	milestones := snap.MilestonesByProject(projectID)
	month := int(now.Month())

	type milestoneView struct {
		models.Milestone
		CurrentProgress int `json:"current_progress"`
		AverageProgress int `json:"average_progress"`
	}
	milestoneViews := make([]milestoneView, 0, len(milestones))
	for _, m := range milestones {
		milestoneViews = append(milestoneViews, milestoneView{
			Milestone:       m,
			CurrentProgress: m.ProgressForMonth(month),
			AverageProgress: stats.MilestoneAverageProgress(m),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"project":            project,
		"members":            members,
		"milestones":         milestoneViews,
		"progress":           snap.ProjectProgress(projectID),
		"milestone_progress": snap.ProjectMilestoneProgress(projectID, month),
		"days_remaining":     stats.DaysRemaining(project.Deadline, now),
		"band_a_count":       counts[models.BandA],
		"band_b_count":       counts[models.BandB],
	})
}

// CreateProjectRequest represents project creation input
type CreateProjectRequest struct {
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	Deadline    string               `json:"deadline"`
	Status      models.ProjectStatus `json:"status"`
	Year        *int                 `json:"year"`
	Weight      *int                 `json:"weight"`
}

// CreateProject creates a new project
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Year:        req.Year,
		Weight:      req.Weight,
	}

	if req.Deadline != "" {
		deadline, err := parseDate(req.Deadline)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		project.Deadline = deadline
	}

	if err := h.store.CreateProject(project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"project": project,
	})
}

// UpdateProjectRequest carries a partial update: only present fields are
// applied, so an omitted weight stays distinct from an explicit one.
type UpdateProjectRequest struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Deadline    *string               `json:"deadline"`
	Status      *models.ProjectStatus `json:"status"`
	Year        *int                  `json:"year"`
	Weight      *int                  `json:"weight"`
}

// UpdateProject applies a partial update to a project.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	project, err := h.store.GetProject(projectID)
	if err != nil {
		notFoundOrServerError(c, err, "project")
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Year != nil {
		project.Year = req.Year
	}
	if req.Weight != nil {
		project.Weight = req.Weight
	}
	if req.Deadline != nil {
		if *req.Deadline == "" {
			project.Deadline = nil
		} else {
			deadline, err := parseDate(*req.Deadline)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			project.Deadline = deadline
		}
	}

	if err := h.store.SaveProject(project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project updated successfully",
		"project": project,
	})
}

// DeleteProject removes a project and cascades to its members and
// milestones in one transaction.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	if _, err := h.store.GetProject(projectID); err != nil {
		notFoundOrServerError(c, err, "project")
		return
	}

	if err := h.store.DeleteProject(projectID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// GetProjectMembers lists one project's membership records, optionally
// filtered by band.
func (h *ProjectHandler) GetProjectMembers(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	members, err := h.store.MembersByProject(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
		return
	}

	members = filterBandMembers(members, bandParam(c))
	c.JSON(http.StatusOK, gin.H{
		"members": members,
		"total":   len(members),
	})
}

// GetProjectMilestones lists one project's milestones with their current
// and average progress.
func (h *ProjectHandler) GetProjectMilestones(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	milestones, err := h.store.MilestonesByProject(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch milestones"})
		return
	}

	month := int(time.Now().Month())
	type milestoneView struct {
		models.Milestone
		CurrentProgress int `json:"current_progress"`
		AverageProgress int `json:"average_progress"`
	}
	views := make([]milestoneView, 0, len(milestones))
	for _, m := range milestones {
		views = append(views, milestoneView{
			Milestone:       m,
			CurrentProgress: m.ProgressForMonth(month),
			AverageProgress: stats.MilestoneAverageProgress(m),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"milestones": views,
		"total":      len(views),
	})
}

func filterBandMembers(members []models.Member, band string) []models.Member {
	if band == "" || band == stats.BandFilterAll {
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
