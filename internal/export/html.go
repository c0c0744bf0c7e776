package export

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/phrazzld/syllabus-api/internal/domain"
)

// exportHTML renders the plan as a standalone styled HTML document suitable
// for printing or PDF conversion.
func (e *Exporter) exportHTML(plan *domain.CurriculumPlan) (string, error) {
	var b strings.Builder
	if err := htmlTemplate.Execute(&b, plan); err != nil {
		return "", fmt.Errorf("rendering HTML export: %w", err)
	}
	return b.String(), nil
}

var htmlTemplate = template.Must(template.New("curriculum").Funcs(template.FuncMap{
	"titled": titled,
}).Parse(htmlDocument))

const htmlDocument = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Topic}} Learning Curriculum</title>
    <style>
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            line-height: 1.6;
            margin: 0;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .container {
            max-width: 1200px;
            margin: 0 auto;
            background: white;
            padding: 30px;
            border-radius: 10px;
            box-shadow: 0 0 20px rgba(0,0,0,0.1);
        }
        h1 {
            color: #2c3e50;
            border-bottom: 3px solid #3498db;
            padding-bottom: 10px;
        }
        h2 {
            color: #34495e;
            margin-top: 30px;
        }
        .overview {
            background: #e8f6ff;
            padding: 20px;
            border-radius: 5px;
            margin: 20px 0;
        }
        .week-content {
            border: 1px solid #ddd;
            margin: 20px 0;
            border-radius: 5px;
            overflow: hidden;
        }
        .week-header {
            background: #3498db;
            color: white;
            padding: 15px;
            font-weight: bold;
        }
        .week-body {
            padding: 20px;
        }
        .resource-list {
            list-style-type: none;
            padding: 0;
        }
        .resource-list li {
            background: #f8f9fa;
            margin: 5px 0;
            padding: 10px;
            border-left: 3px solid #28a745;
            border-radius: 3px;
        }
        .project-box {
            background: #fff3cd;
            border: 1px solid #ffeaa7;
            padding: 15px;
            border-radius: 5px;
            margin: 10px 0;
        }
        .quiz-box {
            background: #f8d7da;
            border: 1px solid #f5c6cb;
            padding: 15px;
            border-radius: 5px;
            margin: 10px 0;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>🎓 {{.Topic}} Learning Curriculum</h1>
        <p><em>Created: {{.CreatedAt.Format "2006-01-02 15:04 UTC"}}</em></p>

        <div class="overview">
            <h2>📋 Overview</h2>
            <ul>
                <li><strong>Goal:</strong> {{.Topic}}</li>
                <li><strong>Skill Level:</strong> {{titled (printf "%s" .SkillLevel)}}</li>
                <li><strong>Duration:</strong> {{.TotalWeeks}} weeks</li>
                <li><strong>Time Commitment:</strong> {{.HoursPerWeek}} hours/week</li>
            </ul>
        </div>

        {{if .TechnologyStack}}<h2>🛠️ Technology Stack</h2>
        <ul>{{range .TechnologyStack}}<li>{{.}}</li>{{end}}</ul>{{end}}

        <h2>📅 Weekly Curriculum</h2>
        {{range .WeeklyContent}}
        <div class="week-content">
            <div class="week-header">Week {{.WeekNumber}}: {{.Topic}}</div>
            <div class="week-body">
                <p><strong>Objective:</strong> {{.Objective}}</p>

                <h4>Expected Outcomes:</h4>
                <ul>{{range .ExpectedOutcomes}}<li>{{.}}</li>{{end}}</ul>

                {{if .Videos}}<h4>📺 Videos:</h4>
                <ul class="resource-list">
                    {{range .Videos}}<li><a href="{{.URL}}" target="_blank">{{.Title}}</a> - {{.Channel}}</li>{{end}}
                </ul>{{end}}

                {{if .Documentation}}<h4>📚 Documentation:</h4>
                <ul class="resource-list">
                    {{range .Documentation}}<li><a href="{{.URL}}" target="_blank">{{.Title}}</a> - {{.Source}}</li>{{end}}
                </ul>{{end}}

                {{if .Project}}<div class="project-box">
                    <h4>🔨 Hands-On Project: {{.Project.Title}}</h4>
                    <p>{{.Project.Description}}</p>
                    {{if .Project.EstimatedTime}}<p><strong>Estimated Time:</strong> {{.Project.EstimatedTime}}</p>{{end}}
                </div>{{end}}

                {{if .Quiz}}<div class="quiz-box">
                    <h4>❓ Quiz Questions:</h4>
                    <ol>{{range .Quiz}}<li>{{.Prompt}}</li>{{end}}</ol>
                </div>{{end}}
            </div>
        </div>
        {{end}}
    </div>
</body>
</html>
`
