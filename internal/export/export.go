// Package export renders curriculum plans into portable formats for download
// and sharing. All renderers consume the immutable plan and never modify it.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/syllabus-api/internal/domain"
)

// ErrUnsupportedFormat is returned for export formats the exporter does not
// implement.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format identifies a supported export format.
type Format string

// Supported export formats. PDF is deliberately absent: rendering one needs a
// layout engine, and HTML prints to PDF cleanly.
const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatCSV      Format = "csv"
)

// Formats lists every supported export format.
var Formats = []Format{FormatJSON, FormatMarkdown, FormatHTML, FormatCSV}

// ParseFormat validates a format string from user input.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// ContentType returns the MIME type to serve the format with.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// Exporter renders curriculum plans into the supported formats.
type Exporter struct {
	logger *slog.Logger
}

// NewExporter creates an Exporter.
func NewExporter(logger *slog.Logger) *Exporter {
	return &Exporter{logger: logger.With("component", "exporter")}
}

// Export renders the plan in the given format.
func (e *Exporter) Export(plan *domain.CurriculumPlan, format Format) (string, error) {
	e.logger.Debug("exporting curriculum", "plan_id", plan.ID, "format", format)

	switch format {
	case FormatJSON:
		return e.exportJSON(plan)
	case FormatMarkdown:
		return e.exportMarkdown(plan), nil
	case FormatHTML:
		return e.exportHTML(plan)
	case FormatCSV:
		return e.exportCSV(plan)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func (e *Exporter) exportJSON(plan *domain.CurriculumPlan) (string, error) {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling curriculum: %w", err)
	}
	return string(data), nil
}

// Summary is a compact accounting of a plan's contents.
type Summary struct {
	Title               string    `json:"curriculum_title"`
	TotalWeeks          int       `json:"total_weeks"`
	SkillLevel          string    `json:"skill_level"`
	TotalVideos         int       `json:"total_videos"`
	TotalDocumentation  int       `json:"total_documentation"`
	TotalProjects       int       `json:"total_projects"`
	TotalQuizQuestions  int       `json:"total_quiz_questions"`
	EstimatedTotalHours int       `json:"estimated_total_hours"`
	CreatedAt           time.Time `json:"created_at"`
	ExportFormats       []Format  `json:"export_formats_available"`
}

// Summarize tallies the plan's content for listings and dashboards.
func Summarize(plan *domain.CurriculumPlan) Summary {
	s := Summary{
		Title:               plan.Topic + " Learning Curriculum",
		TotalWeeks:          plan.TotalWeeks,
		SkillLevel:          string(plan.SkillLevel),
		EstimatedTotalHours: plan.EstimatedTotalHours(),
		CreatedAt:           plan.CreatedAt,
		ExportFormats:       Formats,
	}

	for _, week := range plan.WeeklyContent {
		s.TotalVideos += len(week.Videos)
		s.TotalDocumentation += len(week.Documentation)
		if week.Project != nil {
			s.TotalProjects++
		}
		s.TotalQuizQuestions += len(week.Quiz)
	}

	return s
}

// titled uppercases the first letter, matching how skill levels are shown in
// human-readable exports.
func titled(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
