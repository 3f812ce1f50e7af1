package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/teamboard/teamboard/internal/config"
	"github.com/teamboard/teamboard/internal/stats"
)

type ReportService struct {
	config *config.Config
}

func NewReportService(cfg *config.Config) *ReportService {
	return &ReportService{config: cfg}
}

// GenerateEvaluationPDF renders the ranked comprehensive evaluation as a
// printable report and returns the file path.
func (s *ReportService) GenerateEvaluationPDF(year int, evaluation []stats.ConsolidatedPerson, summary stats.EvaluationStats) (string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(277, 10, fmt.Sprintf("%s - Comprehensive Evaluation %d", s.config.AppName, year), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(277, 6, fmt.Sprintf("Members: %d    Projects: %d    Average score: %.1f    Generated: %s",
		summary.TotalMembers, summary.TotalProjects, summary.AvgScore,
		time.Now().Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Table header
	widths := []float64{12, 40, 12, 55, 38, 20, 20, 20, 18, 18, 24}
	headers := []string{"Rank", "Name", "Band", "Projects", "Roles", "Progress", "Contrib", "Collab", "Lead", "Skill", "Score"}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, p := range evaluation {
		row := []string{
			fmt.Sprintf("%d", p.Rank),
			p.Name,
			string(p.Band),
			joinLimited(p.Projects, 3),
			joinLimited(p.Roles, 2),
			fmt.Sprintf("%d%%", p.AvgProgress),
			fmt.Sprintf("%.1f", p.AvgContribution),
			fmt.Sprintf("%.1f", p.AvgCollaboration),
			fmt.Sprintf("%.1f", p.AvgLeadership),
			fmt.Sprintf("%.1f", p.AvgSkill),
			fmt.Sprintf("%.1f", p.TotalScore),
		}
		for i, v := range row {
			pdf.CellFormat(widths[i], 7, v, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := os.MkdirAll(s.config.ReportDir, 0755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("evaluation_%d_%s.pdf", year, time.Now().Format("20060102_150405"))
	filePath := filepath.Join(s.config.ReportDir, filename)

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}

	return filePath, nil
}

func joinLimited(items []string, max int) string {
	if len(items) == 0 {
		return "-"
	}
	if len(items) <= max {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s +%d", strings.Join(items[:max], ", "), len(items)-max)
}
