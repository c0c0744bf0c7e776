package goal

import (
	"fmt"
	"strings"

	"github.com/phrazzld/syllabus-api/internal/domain"
)

// generateMilestones produces exactly one "Week N: ..." label per week.
// Topic-specific templates are tried first; generic templates cover
// everything else. Short template lists are padded with an advanced
// application week, long ones are truncated.
func (a *Analyzer) generateMilestones(
	topic string,
	stack []string,
	level domain.SkillLevel,
	totalWeeks int,
) []string {
	topicLower := strings.ToLower(topic)

	var milestones []string
	switch {
	case containsAny(topicLower, "python", "django", "flask"):
		milestones = pythonMilestones(level, stack)
	case containsAny(topicLower, "javascript", "react", "vue", "angular", "node"):
		milestones = javascriptMilestones(level, stack)
	case containsAny(topicLower, "java", "spring"):
		milestones = javaMilestones(level)
	case containsAny(topicLower, "data science", "machine learning", "ai", "ml"):
		milestones = dataScienceMilestones(level)
	case containsAny(topicLower, "web development", "frontend", "backend", "fullstack"):
		milestones = webDevMilestones(level)
	default:
		milestones = genericMilestones(topic, level)
	}

	for len(milestones) < totalWeeks {
		milestones = append(milestones,
			fmt.Sprintf("Week %d: Advanced %s Application", len(milestones)+1, topic))
	}

	return milestones[:totalWeeks]
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func hasTech(stack []string, tech string) bool {
	for _, t := range stack {
		if t == tech {
			return true
		}
	}
	return false
}

func pythonMilestones(level domain.SkillLevel, stack []string) []string {
	var base []string
	switch level {
	case domain.SkillBeginner:
		base = []string{
			"Week 1: Python Environment Setup and Basic Syntax",
			"Week 2: Variables, Data Types, and String Manipulation",
			"Week 3: Control Structures and Loops",
			"Week 4: Functions and Error Handling",
			"Week 5: Data Structures (Lists, Dictionaries, Sets)",
			"Week 6: File I/O and Working with Modules",
			"Week 7: Object-Oriented Programming Basics",
			"Week 8: Libraries and Package Management",
		}
	case domain.SkillIntermediate:
		base = []string{
			"Week 1: Advanced Python Features and Decorators",
			"Week 2: Object-Oriented Design Patterns",
			"Week 3: Testing with pytest and unittest",
			"Week 4: Working with APIs and HTTP Requests",
			"Week 5: Database Integration and ORM",
			"Week 6: Asynchronous Programming",
		}
	default:
		base = []string{
			"Week 1: Python Performance Optimization",
			"Week 2: Concurrency and Parallel Processing",
			"Week 3: Advanced Design Patterns and Architecture",
			"Week 4: Production Deployment and Monitoring",
		}
	}

	switch {
	case hasTech(stack, "django"):
		base = append(base,
			fmt.Sprintf("Week %d: Django Framework Fundamentals", len(base)+1),
			fmt.Sprintf("Week %d: Django Models and Database Design", len(base)+2),
			fmt.Sprintf("Week %d: Django Views and Templates", len(base)+3),
			fmt.Sprintf("Week %d: Django REST API Development", len(base)+4),
		)
	case hasTech(stack, "flask"):
		base = append(base,
			fmt.Sprintf("Week %d: Flask Application Structure", len(base)+1),
			fmt.Sprintf("Week %d: Flask Blueprints and Database Integration", len(base)+2),
			fmt.Sprintf("Week %d: Flask API Development and Testing", len(base)+3),
		)
	}

	return base
}

func javascriptMilestones(level domain.SkillLevel, stack []string) []string {
	var base []string
	switch level {
	case domain.SkillBeginner:
		base = []string{
			"Week 1: JavaScript Fundamentals and DOM Manipulation",
			"Week 2: Functions, Scope, and Closures",
			"Week 3: Arrays, Objects, and Data Manipulation",
			"Week 4: Asynchronous JavaScript and Promises",
			"Week 5: ES6+ Features and Modern JavaScript",
			"Week 6: Working with APIs and Fetch",
		}
	case domain.SkillIntermediate:
		base = []string{
			"Week 1: Advanced JavaScript Patterns",
			"Week 2: Module Systems and Bundling",
			"Week 3: Testing JavaScript Applications",
			"Week 4: Performance Optimization",
		}
	default:
		base = []string{
			"Week 1: JavaScript Engine Internals",
			"Week 2: Advanced Async Patterns and Web Workers",
			"Week 3: Microservices and Serverless Architecture",
		}
	}

	switch {
	case hasTech(stack, "react"):
		base = append(base,
			fmt.Sprintf("Week %d: React Components and JSX", len(base)+1),
			fmt.Sprintf("Week %d: React State Management and Hooks", len(base)+2),
			fmt.Sprintf("Week %d: React Router and Navigation", len(base)+3),
			fmt.Sprintf("Week %d: React Testing and Deployment", len(base)+4),
		)
	case hasTech(stack, "vue"):
		base = append(base,
			fmt.Sprintf("Week %d: Vue.js Components and Directives", len(base)+1),
			fmt.Sprintf("Week %d: Vue Router and Vuex State Management", len(base)+2),
			fmt.Sprintf("Week %d: Vue CLI and Build Tools", len(base)+3),
		)
	case hasTech(stack, "node"):
		base = append(base,
			fmt.Sprintf("Week %d: Node.js Server Development", len(base)+1),
			fmt.Sprintf("Week %d: Express.js and Middleware", len(base)+2),
			fmt.Sprintf("Week %d: Database Integration with Node.js", len(base)+3),
		)
	}

	return base
}

func javaMilestones(level domain.SkillLevel) []string {
	switch level {
	case domain.SkillBeginner:
		return []string{
			"Week 1: Java Environment Setup and Basic Syntax",
			"Week 2: Object-Oriented Programming in Java",
			"Week 3: Collections Framework and Generics",
			"Week 4: Exception Handling and File I/O",
			"Week 5: Multithreading and Concurrency",
			"Week 6: Java Streams and Lambda Expressions",
		}
	case domain.SkillIntermediate:
		return []string{
			"Week 1: Advanced Java Features and Design Patterns",
			"Week 2: Spring Framework Fundamentals",
			"Week 3: Spring Boot and Microservices",
			"Week 4: Database Integration with JPA/Hibernate",
		}
	default:
		return []string{
			"Week 1: Java Performance Tuning and JVM Optimization",
			"Week 2: Enterprise Java Patterns",
			"Week 3: Distributed Systems with Java",
		}
	}
}

func dataScienceMilestones(level domain.SkillLevel) []string {
	switch level {
	case domain.SkillBeginner:
		return []string{
			"Week 1: Python for Data Science and Jupyter Notebooks",
			"Week 2: NumPy and Array Operations",
			"Week 3: Pandas for Data Manipulation",
			"Week 4: Data Visualization with Matplotlib and Seaborn",
			"Week 5: Statistical Analysis and Descriptive Statistics",
			"Week 6: Introduction to Machine Learning with Scikit-learn",
			"Week 7: Data Cleaning and Preprocessing",
			"Week 8: End-to-End Data Science Project",
		}
	case domain.SkillIntermediate:
		return []string{
			"Week 1: Advanced Pandas and Data Engineering",
			"Week 2: Feature Engineering and Selection",
			"Week 3: Machine Learning Algorithms Deep Dive",
			"Week 4: Model Evaluation and Hyperparameter Tuning",
			"Week 5: Time Series Analysis",
			"Week 6: Natural Language Processing Basics",
		}
	default:
		return []string{
			"Week 1: Deep Learning with TensorFlow/PyTorch",
			"Week 2: Advanced NLP and Computer Vision",
			"Week 3: MLOps and Model Deployment",
			"Week 4: Big Data Processing with Spark",
		}
	}
}

func webDevMilestones(level domain.SkillLevel) []string {
	switch level {
	case domain.SkillBeginner:
		return []string{
			"Week 1: HTML5 Fundamentals and Semantic Markup",
			"Week 2: CSS3 Styling and Layout Techniques",
			"Week 3: Responsive Design and CSS Grid/Flexbox",
			"Week 4: JavaScript DOM Manipulation",
			"Week 5: Frontend Frameworks Introduction",
			"Week 6: Backend Development Basics",
			"Week 7: Database Integration",
			"Week 8: Full-Stack Project Development",
		}
	case domain.SkillIntermediate:
		return []string{
			"Week 1: Advanced CSS and Preprocessors",
			"Week 2: Modern JavaScript and ES6+",
			"Week 3: Frontend Build Tools and Bundlers",
			"Week 4: API Development and RESTful Services",
			"Week 5: Authentication and Security",
			"Week 6: Testing and Deployment",
		}
	default:
		return []string{
			"Week 1: Microservices Architecture",
			"Week 2: Performance Optimization and Caching",
			"Week 3: DevOps and CI/CD Pipelines",
			"Week 4: Scalability and Cloud Deployment",
		}
	}
}

func genericMilestones(topic string, level domain.SkillLevel) []string {
	name := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(topic, " for", ""), " with", ""))

	switch level {
	case domain.SkillBeginner:
		return []string{
			fmt.Sprintf("Week 1: %s Fundamentals and Environment Setup", name),
			"Week 2: Core Concepts and Basic Operations",
			"Week 3: Working with Data and Basic Algorithms",
			"Week 4: Functions and Code Organization",
			"Week 5: Working with Libraries and Frameworks",
			"Week 6: Building Your First Project",
			"Week 7: Testing and Debugging Techniques",
			"Week 8: Best Practices and Next Steps",
		}
	case domain.SkillIntermediate:
		return []string{
			fmt.Sprintf("Week 1: Advanced %s Concepts", name),
			"Week 2: Design Patterns and Architecture",
			"Week 3: Performance Optimization",
			"Week 4: Testing and Quality Assurance",
			"Week 5: Integration and Deployment",
			"Week 6: Capstone Project Development",
		}
	default:
		return []string{
			fmt.Sprintf("Week 1: Expert-Level %s Techniques", name),
			"Week 2: System Design and Scalability",
			"Week 3: Production Best Practices",
			fmt.Sprintf("Week 4: Leadership and Mentoring in %s", name),
		}
	}
}
