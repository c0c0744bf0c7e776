package export

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/phrazzld/syllabus-api/internal/domain"
)

// exportCSV renders one row per week plus a header row. Multi-valued cells
// are joined with "; ".
func (e *Exporter) exportCSV(plan *domain.CurriculumPlan) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	header := []string{
		"Week", "Topic", "Objective", "Expected Outcomes",
		"Videos", "Documentation", "Project", "Quiz Questions",
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("writing CSV header: %w", err)
	}

	for _, week := range plan.WeeklyContent {
		videos := make([]string, 0, len(week.Videos))
		for _, v := range week.Videos {
			videos = append(videos, fmt.Sprintf("%s (%s)", v.Title, v.URL))
		}

		docs := make([]string, 0, len(week.Documentation))
		for _, d := range week.Documentation {
			docs = append(docs, fmt.Sprintf("%s (%s)", d.Title, d.URL))
		}

		var project string
		if week.Project != nil {
			project = fmt.Sprintf("%s - %s", week.Project.Title, week.Project.Description)
		}

		quiz := make([]string, 0, len(week.Quiz))
		for _, q := range week.Quiz {
			quiz = append(quiz, q.Prompt)
		}

		row := []string{
			fmt.Sprintf("%d", week.WeekNumber),
			week.Topic,
			week.Objective,
			strings.Join(week.ExpectedOutcomes, "; "),
			strings.Join(videos, "; "),
			strings.Join(docs, "; "),
			project,
			strings.Join(quiz, "; "),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing week %d row: %w", week.WeekNumber, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing CSV: %w", err)
	}

	return b.String(), nil
}
