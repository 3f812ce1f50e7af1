package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/teamboard/teamboard/internal/models"
	"github.com/teamboard/teamboard/internal/store"
)

type MemberHandler struct {
	store *store.Store
}

func NewMemberHandler(st *store.Store) *MemberHandler {
	return &MemberHandler{store: st}
}

// ListMembers returns the consolidated roster: one entry per person with
// weighted averages across all their memberships, optionally filtered by
// band and year, sorted by composite score.
func (h *MemberHandler) ListMembers(c *gin.Context) {
	snap, err := h.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
		return
	}

	roster := snap.ConsolidatedRoster(bandParam(c), yearParam(c))

	c.JSON(http.StatusOK, gin.H{
		"members": roster,
		"total":   len(roster),
	})
}

// GetPerson returns one person's rollup plus their raw per-project
// records, looked up by consolidated name.
func (h *MemberHandler) GetPerson(c *gin.Context) {
	name := c.Param("name")

	snap, err := h.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch member"})
		return
	}

	for _, person := range snap.ConsolidatedRoster("all", nil) {
		if person.Name == name {
			c.JSON(http.StatusOK, gin.H{
				"person":  person,
				"records": snap.MemberRecordsByName(name),
			})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
}

// MemberRequest represents member record input
type MemberRequest struct {
	ProjectID     uuid.UUID   `json:"project_id" binding:"required"`
	Name          string      `json:"name" binding:"required"`
	Band          models.Band `json:"band"`
	Role          string      `json:"role"`
	Progress      int         `json:"progress" binding:"min=0,max=100"`
	Contribution  int         `json:"contribution" binding:"min=0,max=10"`
	Collaboration *int        `json:"collaboration"`
	Leadership    *int        `json:"leadership"`
	Skill         *int        `json:"skill"`
	Notes         string      `json:"notes"`
}

// CreateMember enrolls a person in a project.
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.store.GetProject(req.ProjectID); err != nil {
		notFoundOrServerError(c, err, "project")
		return
	}

	member := &models.Member{
		ProjectID:     req.ProjectID,
		Name:          req.Name,
		Band:          req.Band,
		Role:          req.Role,
		Progress:      req.Progress,
		Contribution:  req.Contribution,
		Collaboration: req.Collaboration,
		Leadership:    req.Leadership,
		Skill:         req.Skill,
		Notes:         req.Notes,
	}

	if err := h.store.CreateMember(member); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create member"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Member created successfully",
		"member":  member,
	})
}

// UpdateMemberRequest carries a partial update of one membership record.
type UpdateMemberRequest struct {
	Name          *string      `json:"name"`
	Band          *models.Band `json:"band"`
	Role          *string      `json:"role"`
	Progress      *int         `json:"progress"`
	Contribution  *int         `json:"contribution"`
	Collaboration *int         `json:"collaboration"`
	Leadership    *int         `json:"leadership"`
	Skill         *int         `json:"skill"`
	Notes         *string      `json:"notes"`
}

// UpdateMember applies a partial update to a membership record.
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	member, err := h.store.GetMember(memberID)
	if err != nil {
		notFoundOrServerError(c, err, "member")
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Band != nil {
		member.Band = *req.Band
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.Progress != nil {
		member.Progress = models.ClampProgress(*req.Progress)
	}
	if req.Contribution != nil {
		member.Contribution = *req.Contribution
	}
	if req.Collaboration != nil {
		member.Collaboration = req.Collaboration
	}
	if req.Leadership != nil {
		member.Leadership = req.Leadership
	}
	if req.Skill != nil {
		member.Skill = req.Skill
	}
	if req.Notes != nil {
		member.Notes = *req.Notes
	}

	if err := h.store.SaveMember(member); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Member updated successfully",
		"member":  member,
	})
}

// DeleteMember removes one membership record.
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	if _, err := h.store.GetMember(memberID); err != nil {
		notFoundOrServerError(c, err, "member")
		return
	}

	if err := h.store.DeleteMember(memberID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
