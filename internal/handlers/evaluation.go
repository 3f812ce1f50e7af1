package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/teamboard/teamboard/internal/config"
	"github.com/teamboard/teamboard/internal/services"
	"github.com/teamboard/teamboard/internal/store"
)

type EvaluationHandler struct {
	store         *store.Store
	reportService *services.ReportService
	config        *config.Config
}

func NewEvaluationHandler(st *store.Store, reportService *services.ReportService, cfg *config.Config) *EvaluationHandler {
	return &EvaluationHandler{store: st, reportService: reportService, config: cfg}
}

// GetEvaluation returns the ranked comprehensive evaluation for a year
// and band, with the evaluation summary alongside.
func (h *EvaluationHandler) GetEvaluation(c *gin.Context) {
	snap, err := h.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch evaluation"})
		return
	}

	year := yearParam(c)

	c.JSON(http.StatusOK, gin.H{
		"evaluation": snap.ComprehensiveEvaluation(bandParam(c), year),
		"stats":      snap.EvaluationStats(year),
	})
}

// ExportEvaluation writes the ranked evaluation to a PDF report and
// serves the file. Without ?year= the configured default year is used.
func (h *EvaluationHandler) ExportEvaluation(c *gin.Context) {
	snap, err := h.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch evaluation"})
		return
	}

	year := h.config.DefaultYear
	if y := yearParam(c); y != nil {
		year = *y
	}

	evaluation := snap.ComprehensiveEvaluation(bandParam(c), &year)
	summary := snap.EvaluationStats(&year)

	path, err := h.reportService.GenerateEvaluationPDF(year, evaluation, summary)
	if err != nil {
		logrus.WithError(err).Error("evaluation report generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.FileAttachment(path, "evaluation.pdf")
}
