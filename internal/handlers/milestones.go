package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/teamboard/teamboard/internal/models"
	"github.com/teamboard/teamboard/internal/store"
)

type MilestoneHandler struct {
	store *store.Store
}

func NewMilestoneHandler(st *store.Store) *MilestoneHandler {
	return &MilestoneHandler{store: st}
}

// MilestoneRequest represents milestone input
type MilestoneRequest struct {
	ProjectID       uuid.UUID   `json:"project_id" binding:"required"`
	Name            string      `json:"name" binding:"required"`
	Description     string      `json:"description"`
	Year            *int        `json:"year"`
	MonthlyProgress map[int]int `json:"monthly_progress"`
}

// CreateMilestone adds a milestone to a project.
func (h *MilestoneHandler) CreateMilestone(c *gin.Context) {
	var req MilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.store.GetProject(req.ProjectID); err != nil {
		notFoundOrServerError(c, err, "project")
		return
	}

	milestone := &models.Milestone{
		ProjectID:       req.ProjectID,
		Name:            req.Name,
		Description:     req.Description,
		Year:            req.Year,
		MonthlyProgress: clampMonthlyProgress(req.MonthlyProgress),
	}

	if err := h.store.CreateMilestone(milestone); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create milestone"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Milestone created successfully",
		"milestone": milestone,
	})
}

// UpdateMilestoneRequest carries a partial milestone update. A present
// monthly_progress replaces the whole curve.
type UpdateMilestoneRequest struct {
	Name            *string     `json:"name"`
	Description     *string     `json:"description"`
	Year            *int        `json:"year"`
	MonthlyProgress map[int]int `json:"monthly_progress"`
}

// UpdateMilestone applies a partial update to a milestone.
func (h *MilestoneHandler) UpdateMilestone(c *gin.Context) {
	milestoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid milestone ID"})
		return
	}

	milestone, err := h.store.GetMilestone(milestoneID)
	if err != nil {
		notFoundOrServerError(c, err, "milestone")
		return
	}

	var req UpdateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		milestone.Name = *req.Name
	}
	if req.Description != nil {
		milestone.Description = *req.Description
	}
	if req.Year != nil {
		milestone.Year = req.Year
	}
	if req.MonthlyProgress != nil {
		milestone.MonthlyProgress = clampMonthlyProgress(req.MonthlyProgress)
	}

	if err := h.store.SaveMilestone(milestone); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update milestone"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Milestone updated successfully",
		"milestone": milestone,
	})
}

// DeleteMilestone removes one milestone.
func (h *MilestoneHandler) DeleteMilestone(c *gin.Context) {
	milestoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid milestone ID"})
		return
	}

	if _, err := h.store.GetMilestone(milestoneID); err != nil {
		notFoundOrServerError(c, err, "milestone")
		return
	}

	if err := h.store.DeleteMilestone(milestoneID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete milestone"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Milestone deleted successfully"})
}

// clampMonthlyProgress keeps months within 1-12 and values within [0,100].
func clampMonthlyProgress(in map[int]int) models.MonthlyProgress {
	out := models.MonthlyProgress{}
	for month, value := range in {
		if month < 1 || month > 12 {
			continue
		}
		out[month] = models.ClampProgress(value)
	}
	return out
}
