package plan

import (
	"fmt"
	"strings"

	"github.com/phrazzld/syllabus-api/internal/domain"
)

// Week templates per topic area and skill level. Week numbers are assigned
// by the planner, so templates leave them zero.

func pythonWeeks(topicLower string, level domain.SkillLevel) []domain.WeekSpec {
	isWebDev := containsAny(topicLower, "web", "django", "flask", "api")
	isDataScience := containsAny(topicLower, "data", "science", "analysis", "machine learning")

	var base []domain.WeekSpec
	switch level {
	case domain.SkillBeginner:
		base = []domain.WeekSpec{
			{
				Topic:     "Python Environment and Syntax",
				Objective: "Set up Python development environment and learn basic syntax",
				ExpectedOutcomes: []string{
					"Install Python and set up development environment",
					"Understand Python syntax and indentation",
					"Write simple Python programs",
					"Use Python REPL effectively",
				},
			},
			{
				Topic:     "Variables and Data Types",
				Objective: "Master Python data types and variable manipulation",
				ExpectedOutcomes: []string{
					"Work with strings, numbers, and booleans",
					"Understand type conversion and casting",
					"Use string formatting and manipulation",
					"Handle user input and output",
				},
			},
			{
				Topic:     "Control Flow and Logic",
				Objective: "Implement conditional statements and loops",
				ExpectedOutcomes: []string{
					"Use if/elif/else statements effectively",
					"Implement for and while loops",
					"Understand loop control with break/continue",
					"Apply logical operators and comparisons",
				},
			},
			{
				Topic:     "Functions and Modules",
				Objective: "Create reusable code with functions and modules",
				ExpectedOutcomes: []string{
					"Define and call functions with parameters",
					"Understand scope and return values",
					"Import and use Python modules",
					"Create your own modules",
				},
			},
			{
				Topic:     "Data Structures",
				Objective: "Work with Python collections and data structures",
				ExpectedOutcomes: []string{
					"Manipulate lists, tuples, and sets",
					"Use dictionaries for key-value storage",
					"Apply list comprehensions",
					"Choose appropriate data structures",
				},
			},
			{
				Topic:     "File Handling and Error Management",
				Objective: "Handle files and manage errors gracefully",
				ExpectedOutcomes: []string{
					"Read and write files safely",
					"Work with CSV and JSON data",
					"Implement try/except error handling",
					"Debug common Python errors",
				},
			},
		}

		switch {
		case isWebDev:
			base = append(base,
				domain.WeekSpec{
					Topic:     "Web Development Foundations",
					Objective: "Introduction to web development concepts with Python",
					ExpectedOutcomes: []string{
						"Understand HTTP and web protocols",
						"Learn about web frameworks",
						"Set up a basic web server",
						"Handle web requests and responses",
					},
				},
				domain.WeekSpec{
					Topic:     "Building Web Applications",
					Objective: "Create your first web application with Python",
					ExpectedOutcomes: []string{
						"Build a complete web application",
						"Implement user authentication",
						"Connect to a database",
						"Deploy your application",
					},
				},
			)
		case isDataScience:
			base = append(base,
				domain.WeekSpec{
					Topic:     "Data Science Libraries",
					Objective: "Introduction to NumPy and Pandas for data manipulation",
					ExpectedOutcomes: []string{
						"Work with NumPy arrays",
						"Manipulate data with Pandas",
						"Load and clean datasets",
						"Perform basic data analysis",
					},
				},
				domain.WeekSpec{
					Topic:     "Data Visualization and Analysis",
					Objective: "Create visualizations and perform statistical analysis",
					ExpectedOutcomes: []string{
						"Create charts with Matplotlib",
						"Build interactive visualizations",
						"Perform statistical analysis",
						"Present data insights",
					},
				},
			)
		default:
			base = append(base,
				domain.WeekSpec{
					Topic:     "Object-Oriented Programming",
					Objective: "Learn OOP concepts and implement classes",
					ExpectedOutcomes: []string{
						"Define classes and create objects",
						"Implement inheritance and polymorphism",
						"Use encapsulation and abstraction",
						"Apply OOP design principles",
					},
				},
				domain.WeekSpec{
					Topic:     "Advanced Python and Best Practices",
					Objective: "Master advanced Python features and coding standards",
					ExpectedOutcomes: []string{
						"Use decorators and generators",
						"Implement context managers",
						"Follow PEP 8 coding standards",
						"Write maintainable Python code",
					},
				},
			)
		}

	case domain.SkillIntermediate:
		base = []domain.WeekSpec{
			{
				Topic:     "Advanced Python Features",
				Objective: "Master advanced Python language features",
				ExpectedOutcomes: []string{
					"Use decorators and generators effectively",
					"Implement context managers",
					"Apply metaclasses and descriptors",
					"Master advanced Python patterns",
				},
			},
			{
				Topic:     "Object-Oriented Design Patterns",
				Objective: "Apply OOP design patterns in Python",
				ExpectedOutcomes: []string{
					"Implement common design patterns",
					"Use inheritance and composition effectively",
					"Apply SOLID principles",
					"Design maintainable class hierarchies",
				},
			},
			{
				Topic:     "Testing and Quality Assurance",
				Objective: "Implement comprehensive testing strategies",
				ExpectedOutcomes: []string{
					"Write unit tests with pytest",
					"Implement integration testing",
					"Use mocking and fixtures",
					"Apply test-driven development",
				},
			},
			{
				Topic:     "API Development and Integration",
				Objective: "Build and consume APIs with Python",
				ExpectedOutcomes: []string{
					"Create RESTful APIs with Flask/FastAPI",
					"Handle HTTP requests and responses",
					"Implement authentication and security",
					"Integrate with third-party APIs",
				},
			},
		}

		switch {
		case isWebDev:
			base = append(base, domain.WeekSpec{
				Topic:     "Advanced Web Framework Development",
				Objective: "Master advanced web development with Python",
				ExpectedOutcomes: []string{
					"Build scalable web applications",
					"Implement advanced authentication",
					"Use database migrations and ORM",
					"Deploy to production environments",
				},
			})
		case isDataScience:
			base = append(base, domain.WeekSpec{
				Topic:     "Advanced Data Science Techniques",
				Objective: "Apply advanced data science methods",
				ExpectedOutcomes: []string{
					"Implement advanced ML algorithms",
					"Handle big data with Python",
					"Create production ML pipelines",
					"Deploy models to production",
				},
			})
		}

	default:
		base = []domain.WeekSpec{
			{
				Topic:     "Python Performance Optimization",
				Objective: "Optimize Python applications for performance",
				ExpectedOutcomes: []string{
					"Profile and benchmark Python code",
					"Implement caching strategies",
					"Use asyncio for concurrent programming",
					"Optimize memory usage and algorithms",
				},
			},
			{
				Topic:     "Advanced Architecture Patterns",
				Objective: "Design scalable Python applications",
				ExpectedOutcomes: []string{
					"Implement microservices architecture",
					"Use message queues and event-driven design",
					"Apply hexagonal architecture",
					"Design for scalability and maintainability",
				},
			},
		}
	}

	return base
}

func javascriptWeeks(topicLower string, level domain.SkillLevel, stack []string) []domain.WeekSpec {
	isReact := hasTech(stack, "react") || strings.Contains(topicLower, "react")
	isNode := hasTech(stack, "node") || strings.Contains(topicLower, "backend")

	var base []domain.WeekSpec
	switch level {
	case domain.SkillBeginner:
		base = []domain.WeekSpec{
			{
				Topic:     "JavaScript Fundamentals",
				Objective: "Master core JavaScript syntax and concepts",
				ExpectedOutcomes: []string{
					"Understand variables, data types, and operators",
					"Write functions and understand scope",
					"Use arrays and objects effectively",
					"Handle basic DOM manipulation",
				},
			},
			{
				Topic:     "Advanced Functions and Closures",
				Objective: "Deep dive into JavaScript functions and scope",
				ExpectedOutcomes: []string{
					"Create higher-order functions",
					"Understand closures and lexical scope",
					"Use arrow functions appropriately",
					"Apply functional programming concepts",
				},
			},
			{
				Topic:     "Asynchronous JavaScript",
				Objective: "Master promises, async/await, and API calls",
				ExpectedOutcomes: []string{
					"Handle asynchronous operations with promises",
					"Use async/await syntax",
					"Make HTTP requests with fetch",
					"Handle errors in async code",
				},
			},
			{
				Topic:     "Modern JavaScript (ES6+)",
				Objective: "Learn modern JavaScript features and syntax",
				ExpectedOutcomes: []string{
					"Use destructuring and spread operator",
					"Understand modules and imports",
					"Apply template literals and symbols",
					"Use classes and inheritance",
				},
			},
		}
	case domain.SkillIntermediate:
		base = []domain.WeekSpec{
			{
				Topic:     "Advanced JavaScript Patterns",
				Objective: "Master design patterns and advanced concepts",
				ExpectedOutcomes: []string{
					"Implement design patterns",
					"Use advanced array methods",
					"Understand prototype inheritance",
					"Apply modular programming",
				},
			},
			{
				Topic:     "Modern Development Workflow",
				Objective: "Use modern tools and build processes",
				ExpectedOutcomes: []string{
					"Configure webpack and bundlers",
					"Use package managers effectively",
					"Implement testing strategies",
					"Set up development environments",
				},
			},
			{
				Topic:     "Performance and Optimization",
				Objective: "Optimize JavaScript applications",
				ExpectedOutcomes: []string{
					"Profile and optimize code",
					"Implement lazy loading",
					"Use web workers",
					"Optimize bundle sizes",
				},
			},
		}
	default:
		base = []domain.WeekSpec{
			{
				Topic:     "JavaScript Engine Internals",
				Objective: "Understand how JavaScript engines work",
				ExpectedOutcomes: []string{
					"Understand V8 engine mechanics",
					"Optimize for JIT compilation",
					"Handle memory management",
					"Debug performance issues",
				},
			},
		}
	}

	switch {
	case isReact && level == domain.SkillBeginner:
		base = append(base,
			domain.WeekSpec{
				Topic:     "React Fundamentals",
				Objective: "Build your first React applications",
				ExpectedOutcomes: []string{
					"Create React components",
					"Manage component state",
					"Handle events in React",
					"Understand props and data flow",
				},
			},
			domain.WeekSpec{
				Topic:     "React Hooks and State Management",
				Objective: "Master React hooks and complex state",
				ExpectedOutcomes: []string{
					"Use useState and useEffect hooks",
					"Implement custom hooks",
					"Manage complex application state",
					"Handle side effects properly",
				},
			},
		)
	case isReact:
		base = append(base, domain.WeekSpec{
			Topic:     "Advanced React Patterns",
			Objective: "Master advanced React development patterns",
			ExpectedOutcomes: []string{
				"Implement compound components",
				"Use render props and HOCs",
				"Apply advanced hooks patterns",
				"Optimize component performance",
			},
		})
	case isNode:
		base = append(base,
			domain.WeekSpec{
				Topic:     "Node.js Fundamentals",
				Objective: "Build server-side applications with Node.js",
				ExpectedOutcomes: []string{
					"Set up Node.js development environment",
					"Work with modules and npm",
					"Handle file system operations",
					"Create basic HTTP servers",
				},
			},
			domain.WeekSpec{
				Topic:     "Express.js and APIs",
				Objective: "Build RESTful APIs with Express.js",
				ExpectedOutcomes: []string{
					"Create Express.js applications",
					"Build RESTful API endpoints",
					"Handle middleware and routing",
					"Connect to databases",
				},
			},
		)
	case level == domain.SkillBeginner:
		base = append(base,
			domain.WeekSpec{
				Topic:     "DOM Manipulation and Events",
				Objective: "Create interactive web pages",
				ExpectedOutcomes: []string{
					"Select and modify DOM elements",
					"Handle user events effectively",
					"Create dynamic content",
					"Implement form validation",
				},
			},
			domain.WeekSpec{
				Topic:     "JavaScript Project Development",
				Objective: "Build a complete JavaScript application",
				ExpectedOutcomes: []string{
					"Plan and architect a JS project",
					"Implement core functionality",
					"Handle browser compatibility",
					"Deploy your application",
				},
			},
		)
	}

	return base
}

func javaWeeks(level domain.SkillLevel) []domain.WeekSpec {
	if level != domain.SkillBeginner {
		return nil
	}
	return []domain.WeekSpec{
		{
			Topic:     "Java Environment and Basics",
			Objective: "Set up Java development and learn syntax",
			ExpectedOutcomes: []string{
				"Install JDK and IDE setup",
				"Understand Java syntax and structure",
				"Compile and run Java programs",
				"Use basic data types and variables",
			},
		},
		{
			Topic:     "Object-Oriented Programming in Java",
			Objective: "Master Java OOP concepts",
			ExpectedOutcomes: []string{
				"Create classes and objects",
				"Implement inheritance and polymorphism",
				"Use interfaces and abstract classes",
				"Apply encapsulation principles",
			},
		},
	}
}

func dataScienceWeeks(level domain.SkillLevel) []domain.WeekSpec {
	if level != domain.SkillBeginner {
		return nil
	}
	return []domain.WeekSpec{
		{
			Topic:     "Data Science Environment Setup",
			Objective: "Set up Python environment for data science",
			ExpectedOutcomes: []string{
				"Install Anaconda and Jupyter",
				"Understand data science workflow",
				"Use Jupyter notebooks effectively",
				"Basic Python for data science",
			},
		},
		{
			Topic:     "NumPy and Array Operations",
			Objective: "Master numerical computing with NumPy",
			ExpectedOutcomes: []string{
				"Create and manipulate NumPy arrays",
				"Perform mathematical operations",
				"Handle array indexing and slicing",
				"Use broadcasting and vectorization",
			},
		},
		{
			Topic:     "Pandas for Data Manipulation",
			Objective: "Learn data manipulation with Pandas",
			ExpectedOutcomes: []string{
				"Work with DataFrames and Series",
				"Load data from various sources",
				"Clean and preprocess data",
				"Perform data aggregation and grouping",
			},
		},
		{
			Topic:     "Data Visualization",
			Objective: "Create compelling data visualizations",
			ExpectedOutcomes: []string{
				"Create plots with Matplotlib",
				"Build statistical visualizations with Seaborn",
				"Design effective data stories",
				"Create interactive visualizations",
			},
		},
		{
			Topic:     "Statistical Analysis",
			Objective: "Perform statistical analysis on data",
			ExpectedOutcomes: []string{
				"Calculate descriptive statistics",
				"Perform hypothesis testing",
				"Understand correlation and regression",
				"Interpret statistical results",
			},
		},
		{
			Topic:     "Introduction to Machine Learning",
			Objective: "Build your first machine learning models",
			ExpectedOutcomes: []string{
				"Understand ML concepts and terminology",
				"Build classification and regression models",
				"Evaluate model performance",
				"Use scikit-learn effectively",
			},
		},
	}
}

func webDevWeeks(level domain.SkillLevel) []domain.WeekSpec {
	if level != domain.SkillBeginner {
		return nil
	}
	return []domain.WeekSpec{
		{
			Topic:     "HTML5 and Semantic Markup",
			Objective: "Master modern HTML structure and semantics",
			ExpectedOutcomes: []string{
				"Create well-structured HTML documents",
				"Use semantic HTML5 elements",
				"Implement forms and input validation",
				"Understand accessibility principles",
			},
		},
		{
			Topic:     "CSS3 and Responsive Design",
			Objective: "Style websites with modern CSS techniques",
			ExpectedOutcomes: []string{
				"Apply CSS selectors and properties",
				"Use Flexbox and CSS Grid",
				"Create responsive layouts",
				"Implement animations and transitions",
			},
		},
		{
			Topic:     "JavaScript for Web Development",
			Objective: "Add interactivity to web pages",
			ExpectedOutcomes: []string{
				"Manipulate DOM elements",
				"Handle user events",
				"Validate forms with JavaScript",
				"Make AJAX requests",
			},
		},
		{
			Topic:     "Frontend Build Tools",
			Objective: "Use modern development tools and workflows",
			ExpectedOutcomes: []string{
				"Set up development environment",
				"Use package managers (npm/yarn)",
				"Configure build tools",
				"Optimize code for production",
			},
		},
	}
}

func genericWeeks(topic string) []domain.WeekSpec {
	name := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(topic, " for", ""), " with", ""))

	return []domain.WeekSpec{
		{
			Topic:     fmt.Sprintf("%s Fundamentals", name),
			Objective: fmt.Sprintf("Learn the basics of %s", name),
			ExpectedOutcomes: []string{
				fmt.Sprintf("Understand %s concepts", name),
				"Set up development environment",
				"Write your first programs",
				"Follow best practices",
			},
		},
		{
			Topic:     fmt.Sprintf("Intermediate %s", name),
			Objective: fmt.Sprintf("Build practical skills in %s", name),
			ExpectedOutcomes: []string{
				fmt.Sprintf("Apply %s to real problems", name),
				"Use advanced features",
				"Build small projects",
				"Debug and troubleshoot",
			},
		},
	}
}
