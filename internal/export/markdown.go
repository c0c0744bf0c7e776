package export

import (
	"fmt"
	"strings"

	"github.com/phrazzld/syllabus-api/internal/domain"
)

// exportMarkdown renders the plan as a Markdown document: an overview, the
// technology stack, then one section per week with its resources.
func (e *Exporter) exportMarkdown(plan *domain.CurriculumPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Learning Curriculum\n", plan.Topic)
	fmt.Fprintf(&b, "*Created: %s*\n\n", plan.CreatedAt.Format("2006-01-02 15:04 UTC"))

	b.WriteString("## 📋 Overview\n")
	fmt.Fprintf(&b, "- **Goal:** %s\n", plan.Topic)
	fmt.Fprintf(&b, "- **Skill Level:** %s\n", titled(string(plan.SkillLevel)))
	fmt.Fprintf(&b, "- **Duration:** %d weeks\n", plan.TotalWeeks)
	fmt.Fprintf(&b, "- **Time Commitment:** %d hours/week\n\n", plan.HoursPerWeek)

	if len(plan.TechnologyStack) > 0 {
		b.WriteString("## 🛠️ Technology Stack\n")
		for _, tech := range plan.TechnologyStack {
			fmt.Fprintf(&b, "- %s\n", tech)
		}
		b.WriteString("\n")
	}

	b.WriteString("## 📅 Weekly Curriculum\n")
	for _, week := range plan.WeeklyContent {
		writeWeekMarkdown(&b, week)
	}

	return b.String()
}

func writeWeekMarkdown(b *strings.Builder, week domain.WeeklyContent) {
	fmt.Fprintf(b, "### Week %d: %s\n", week.WeekNumber, week.Topic)
	fmt.Fprintf(b, "**Objective:** %s\n\n", week.Objective)

	b.WriteString("**Expected Outcomes:**\n")
	for _, outcome := range week.ExpectedOutcomes {
		fmt.Fprintf(b, "- %s\n", outcome)
	}
	b.WriteString("\n")

	if len(week.Videos) > 0 {
		b.WriteString("**📺 Videos:**\n")
		for _, video := range week.Videos {
			fmt.Fprintf(b, "- [%s](%s) - %s\n", video.Title, video.URL, video.Channel)
		}
		b.WriteString("\n")
	}

	if len(week.Documentation) > 0 {
		b.WriteString("**📚 Documentation:**\n")
		for _, doc := range week.Documentation {
			fmt.Fprintf(b, "- [%s](%s) - %s\n", doc.Title, doc.URL, doc.Source)
		}
		b.WriteString("\n")
	}

	if week.Project != nil {
		b.WriteString("**🔨 Hands-On Project:**\n")
		fmt.Fprintf(b, "- **Title:** %s\n", week.Project.Title)
		fmt.Fprintf(b, "- **Description:** %s\n", week.Project.Description)
		if week.Project.EstimatedTime != "" {
			fmt.Fprintf(b, "- **Estimated Time:** %s\n", week.Project.EstimatedTime)
		}
		b.WriteString("\n")
	}

	if len(week.Quiz) > 0 {
		b.WriteString("**❓ Quiz Questions:**\n")
		for i, question := range week.Quiz {
			fmt.Fprintf(b, "%d. %s\n", i+1, question.Prompt)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
}
