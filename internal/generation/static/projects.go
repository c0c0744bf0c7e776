package static

import (
	"context"
	"fmt"
	"strings"

	"github.com/phrazzld/syllabus-api/internal/domain"
	"github.com/phrazzld/syllabus-api/internal/generation"
)

// ProjectBuilder creates hands-on projects from templates, with generated
// exercise/mini/real-world projects for topics the templates do not cover.
// Project scope progresses with the week number; selection is deterministic
// so rebuilding a curriculum yields the same projects.
type ProjectBuilder struct {
	templates map[string]map[domain.SkillLevel][]domain.Project
}

var _ generation.ProjectBuilder = (*ProjectBuilder)(nil)

// NewProjectBuilder creates a ProjectBuilder with the built-in templates.
func NewProjectBuilder() *ProjectBuilder {
	return &ProjectBuilder{
		templates: map[string]map[domain.SkillLevel][]domain.Project{
			"python": {
				domain.SkillBeginner: {
					{
						Type:        domain.ProjectExercise,
						Title:       "Basic Calculator",
						Description: "Create a calculator that can perform basic arithmetic operations",
						LearningObjectives: []string{
							"Practice using variables and functions",
							"Implement conditional logic",
							"Handle user input and output",
							"Basic error handling",
						},
						Requirements: []string{
							"Accept two numbers and an operation from user",
							"Perform addition, subtraction, multiplication, division",
							"Handle division by zero",
							"Display results clearly",
						},
						EstimatedTime: "2-3 hours",
						Difficulty:    "Easy",
						FilesToCreate: []string{"calculator.py"},
						StarterCode: `def add(a, b):
    return a + b

def subtract(a, b):
    return a - b

# TODO: Implement multiply and divide functions
# TODO: Add main function to handle user input
# TODO: Add error handling
`,
					},
					{
						Type:        domain.ProjectMini,
						Title:       "Personal Budget Tracker",
						Description: "Build a simple budget tracking application",
						LearningObjectives: []string{
							"Work with lists and dictionaries",
							"File I/O operations",
							"Data validation",
							"Basic data analysis",
						},
						Requirements: []string{
							"Add income and expense entries",
							"Categorize expenses",
							"Save data to file",
							"Generate basic reports",
						},
						EstimatedTime: "4-6 hours",
						Difficulty:    "Medium",
						FilesToCreate: []string{"budget_tracker.py", "data.json"},
						StarterCode: `import json
from datetime import datetime

class BudgetTracker:
    def __init__(self):
        self.transactions = []

    def add_transaction(self, amount, category, description, transaction_type):
        # TODO: Implement transaction addition
        pass

    def save_to_file(self, filename):
        # TODO: Implement file saving
        pass

    def generate_report(self):
        # TODO: Implement report generation
        pass

if __name__ == "__main__":
    tracker = BudgetTracker()
    # TODO: Add main program loop
`,
					},
				},
			},
			"javascript": {
				domain.SkillBeginner: {
					{
						Type:        domain.ProjectExercise,
						Title:       "Interactive To-Do List",
						Description: "Create a dynamic to-do list with add, remove, and complete functionality",
						LearningObjectives: []string{
							"DOM manipulation",
							"Event handling",
							"Local storage",
							"Array methods",
						},
						Requirements: []string{
							"Add new tasks",
							"Mark tasks as complete",
							"Delete tasks",
							"Persist data in localStorage",
						},
						EstimatedTime: "3-4 hours",
						Difficulty:    "Medium",
						FilesToCreate: []string{"index.html", "style.css", "script.js"},
						StarterCode: `// script.js
class TodoList {
    constructor() {
        this.tasks = [];
        this.loadTasks();
        this.bindEvents();
    }

    addTask(taskText) {
        // TODO: Implement task addition
    }

    removeTask(taskId) {
        // TODO: Implement task removal
    }

    // TODO: Implement remaining methods
}

const todoList = new TodoList();
`,
					},
				},
			},
		},
	}
}

// progressionByLevel orders project kinds from least to most open-ended per
// skill level; weeks cycle through them.
var progressionByLevel = map[domain.SkillLevel][]domain.ProjectType{
	domain.SkillBeginner:     {domain.ProjectExercise, domain.ProjectMini},
	domain.SkillIntermediate: {domain.ProjectMini, domain.ProjectRealWorld},
	domain.SkillAdvanced:     {domain.ProjectRealWorld, domain.ProjectExercise},
}

// BuildProject returns a template project when the topic matches one, a
// generated project otherwise, in both cases enhanced with week-progression
// focus, success criteria, tips, and submission guidelines.
func (b *ProjectBuilder) BuildProject(ctx context.Context, req generation.Request) (*domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	weekNumber := req.Week.WeekNumber
	project := b.templateProject(req.Week.Topic, req.SkillLevel, weekNumber)
	if project == nil {
		project = genericProject(req.Week.Topic, req.SkillLevel, weekNumber)
	}

	enhanceForWeek(project, weekNumber)
	return project, nil
}

// templateProject returns a copy of a matching template, cycling through the
// topic's templates by week number.
func (b *ProjectBuilder) templateProject(topic string, level domain.SkillLevel, weekNumber int) *domain.Project {
	topicLower := strings.ToLower(topic)

	for tech, levels := range b.templates {
		if !strings.Contains(topicLower, tech) {
			continue
		}
		if templates, ok := levels[level]; ok && len(templates) > 0 {
			project := templates[(weekNumber-1)%len(templates)]
			return &project
		}
	}

	return nil
}

func genericProject(topic string, level domain.SkillLevel, weekNumber int) *domain.Project {
	progression, ok := progressionByLevel[level]
	if !ok {
		progression = []domain.ProjectType{domain.ProjectExercise}
	}

	switch progression[(weekNumber-1)%len(progression)] {
	case domain.ProjectMini:
		return miniProject(topic, level, weekNumber)
	case domain.ProjectRealWorld:
		return realWorldProject(topic, weekNumber)
	default:
		return exerciseProject(topic, level)
	}
}

// stripQualifiers removes "Fundamentals"/"Basics" suffixes from a week topic.
func stripQualifiers(topic string) string {
	clean := strings.ReplaceAll(topic, " Fundamentals", "")
	clean = strings.ReplaceAll(clean, " Basics", "")
	return strings.TrimSpace(clean)
}

func exerciseProject(topic string, level domain.SkillLevel) *domain.Project {
	clean := stripQualifiers(topic)

	difficulty := "Medium"
	if level == domain.SkillBeginner {
		difficulty = "Easy"
	}

	exercises := []string{
		fmt.Sprintf("Implement basic %s functionality", clean),
		fmt.Sprintf("Create utility functions for %s", clean),
		fmt.Sprintf("Process and manipulate %s data", clean),
		fmt.Sprintf("Build simple %s algorithms", clean),
		fmt.Sprintf("Handle edge cases in %s operations", clean),
	}
	if level != domain.SkillBeginner {
		exercises = append(exercises, fmt.Sprintf("Optimize %s performance", clean))
	}

	return &domain.Project{
		Type:        domain.ProjectExercise,
		Title:       fmt.Sprintf("%s Practice Exercises", clean),
		Description: fmt.Sprintf("Collection of hands-on exercises to practice %s concepts", clean),
		LearningObjectives: []string{
			fmt.Sprintf("Practice core %s concepts", clean),
			"Apply problem-solving skills",
			"Build coding fluency",
			"Reinforce syntax and patterns",
		},
		Requirements: []string{
			"Complete 5-8 progressive exercises",
			"Test your solutions thoroughly",
			"Optimize for readability and efficiency",
			"Document your approach",
		},
		EstimatedTime: "2-4 hours",
		Difficulty:    difficulty,
		FilesToCreate: []string{strings.ToLower(strings.ReplaceAll(clean, " ", "_")) + "_exercises.py"},
		Exercises:     exercises,
		StarterCode: fmt.Sprintf("# %s Practice Exercises\n# Complete each function below\n\n"+
			"# Exercise 1\ndef exercise_1():\n    # TODO: Implement solution\n    pass\n", clean),
	}
}

func miniProject(topic string, level domain.SkillLevel, weekNumber int) *domain.Project {
	clean := stripQualifiers(topic)
	ideas := projectIdeas(strings.ToLower(clean), level)
	idea := ideas[(weekNumber-1)%len(ideas)]

	features := []string{"Core functionality", "User interface", "Data handling", "Error management"}
	if level != domain.SkillBeginner {
		features = append(features, "Data persistence", "Advanced settings", "Export functionality")
	}

	return &domain.Project{
		Type:        domain.ProjectMini,
		Title:       fmt.Sprintf("%s %s", clean, idea),
		Description: fmt.Sprintf("Build a %s to practice %s skills", strings.ToLower(idea), clean),
		LearningObjectives: []string{
			fmt.Sprintf("Apply %s concepts in a real project", clean),
			"Practice project planning and execution",
			"Implement user-friendly features",
			"Debug and test thoroughly",
		},
		Requirements: []string{
			"Plan the application structure",
			"Implement core functionality",
			"Add error handling",
			"Create user documentation",
		},
		EstimatedTime: "4-8 hours",
		Difficulty:    "Medium",
		FilesToCreate: projectFiles(clean, idea),
		Features:      features,
		BonusChallenges: []string{
			"Add data validation and error handling",
			"Implement responsive design",
			"Add animation and visual effects",
			"Create unit tests for your functions",
			"Add accessibility features",
		},
	}
}

var realWorldScenarios = []string{
	"E-commerce Product Catalog",
	"Employee Management System",
	"Event Booking Platform",
	"Content Management System",
	"Analytics Dashboard",
}

func realWorldProject(topic string, weekNumber int) *domain.Project {
	clean := stripQualifiers(topic)
	scenario := realWorldScenarios[(weekNumber-1)%len(realWorldScenarios)]

	return &domain.Project{
		Type:        domain.ProjectRealWorld,
		Title:       fmt.Sprintf("%s %s", clean, scenario),
		Description: fmt.Sprintf("Build a %s that solves real business needs", strings.ToLower(scenario)),
		LearningObjectives: []string{
			fmt.Sprintf("Apply advanced %s concepts", clean),
			"Implement business logic",
			"Handle complex data structures",
			"Follow industry best practices",
		},
		Requirements: []string{
			"Design scalable architecture",
			"Implement full CRUD operations",
			"Add authentication/authorization",
			"Include comprehensive testing",
		},
		EstimatedTime: "8-15 hours",
		Difficulty:    "Hard",
		FilesToCreate: enterpriseFiles(clean),
		UserStories: []string{
			fmt.Sprintf("As a user, I want to access %s features easily", strings.ToLower(scenario)),
			fmt.Sprintf("As an admin, I want to manage %s data efficiently", strings.ToLower(scenario)),
			"As a user, I want my data to be secure and private",
			"As a user, I want the system to be fast and reliable",
		},
		TechnicalRequirements: []string{
			"Clean, readable code with proper documentation",
			"Modular architecture with separation of concerns",
			"Error handling and input validation",
			"Performance optimization and scalability considerations",
			"Security best practices implementation",
		},
	}
}

func projectIdeas(topicLower string, level domain.SkillLevel) []string {
	switch {
	case strings.Contains(topicLower, "python"):
		switch {
		case containsAny(topicLower, "web", "django", "flask"):
			return []string{"Blog Platform", "Task Manager API", "Recipe Sharing Site", "Weather Dashboard"}
		case containsAny(topicLower, "data", "analysis"):
			return []string{"Sales Data Analyzer", "Stock Price Tracker", "Survey Results Dashboard", "Social Media Analytics"}
		default:
			return []string{"Personal Finance Tracker", "File Organizer", "Contact Manager", "Quiz Application"}
		}
	case strings.Contains(topicLower, "javascript"):
		switch {
		case strings.Contains(topicLower, "react"):
			return []string{"Todo App with React", "Movie Search App", "Recipe Finder", "Weather Widget"}
		case strings.Contains(topicLower, "node"):
			return []string{"REST API Server", "Chat Application", "File Upload Service", "User Authentication System"}
		default:
			return []string{"Interactive Dashboard", "Memory Game", "Calculator App", "Image Gallery"}
		}
	case strings.Contains(topicLower, "web development"):
		return []string{"Responsive Portfolio", "Business Landing Page", "E-commerce Product Page", "Online Resume"}
	case strings.Contains(topicLower, "java"):
		return []string{"Library Management System", "Banking Application", "Student Grade Calculator", "Inventory Tracker"}
	case containsAny(topicLower, "data science", "machine learning"):
		return []string{"Predictive Model", "Data Visualization Dashboard", "Customer Segmentation", "Recommendation System"}
	case level == domain.SkillBeginner:
		return []string{"Simple Calculator", "To-Do List", "Basic Game", "Data Processor"}
	case level == domain.SkillIntermediate:
		return []string{"Web Application", "API Service", "Data Dashboard", "Mobile App"}
	default:
		return []string{"Microservice Architecture", "ML Pipeline", "Full-Stack Platform", "Distributed System"}
	}
}

func projectFiles(topic, idea string) []string {
	topicLower := strings.ToLower(topic)
	switch {
	case containsAny(topicLower, "web", "html", "css"):
		return []string{"index.html", "style.css", "script.js", "README.md"}
	case strings.Contains(topicLower, "python"):
		return []string{strings.ToLower(strings.ReplaceAll(idea, " ", "_")) + ".py", "requirements.txt", "README.md"}
	case strings.Contains(topicLower, "java"):
		return []string{strings.ReplaceAll(idea, " ", "") + ".java", "README.md"}
	default:
		return []string{"main.py", "README.md"}
	}
}

func enterpriseFiles(topic string) []string {
	base := []string{"README.md", "requirements.txt", ".gitignore"}
	if strings.Contains(strings.ToLower(topic), "web") {
		return append(base, "index.html", "src/css/style.css", "src/js/app.js", "src/js/utils.js")
	}
	return append(base, "src/main.py", "src/models.py", "src/utils.py", "tests/test_main.py")
}

// enhanceForWeek layers week-progression guidance onto a project.
func enhanceForWeek(project *domain.Project, weekNumber int) {
	switch {
	case weekNumber <= 2:
		project.Focus = "Learning fundamentals through practice"
		project.SuccessCriteria = "Complete basic functionality"
	case weekNumber <= 4:
		project.Focus = "Building confidence with guided projects"
		project.SuccessCriteria = "Implement all core features"
	default:
		project.Focus = "Independent problem-solving"
		project.SuccessCriteria = "Add creative enhancements"
	}

	project.WeekTips = weekTips(weekNumber)
	project.SubmissionGuidelines = submissionGuidelines(project.Type)
}

func weekTips(weekNumber int) []string {
	switch weekNumber {
	case 1:
		return []string{"Focus on understanding the basics", "Don't worry about perfection", "Ask questions when stuck"}
	case 2:
		return []string{"Practice makes perfect", "Try variations of the exercises", "Review concepts regularly"}
	case 4:
		return []string{"Focus on code organization", "Add comments and documentation", "Consider edge cases"}
	case 5:
		return []string{"Think about user experience", "Optimize for performance", "Add error handling"}
	case 6:
		return []string{"Polish your project", "Add extra features", "Prepare for presentation"}
	default:
		return []string{"Start planning before coding", "Break problems into smaller parts", "Test your code frequently"}
	}
}

func submissionGuidelines(projectType domain.ProjectType) []string {
	switch projectType {
	case domain.ProjectMini:
		return []string{
			"Include all project files and dependencies",
			"Write a README with setup instructions",
			"Document any challenges and solutions",
		}
	case domain.ProjectRealWorld:
		return []string{
			"Provide complete project documentation",
			"Include setup and deployment instructions",
			"Present your solution and architecture decisions",
		}
	default:
		return []string{
			"Submit all completed exercise files",
			"Include comments explaining your approach",
			"Test your solutions before submission",
		}
	}
}
