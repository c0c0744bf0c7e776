package static

import (
	"context"
	"fmt"
	"strings"

	"github.com/phrazzld/syllabus-api/internal/domain"
	"github.com/phrazzld/syllabus-api/internal/generation"
)

// defaultQuestionCount is how many questions each weekly quiz receives.
const defaultQuestionCount = 5

// QuizGenerator produces quizzes from question banks, topping up with
// generated questions. Generation cycles through question types and template
// variants by position so the same week always yields the same quiz.
type QuizGenerator struct {
	banks map[string]map[domain.SkillLevel][]domain.Question
}

var _ generation.QuizGenerator = (*QuizGenerator)(nil)

// NewQuizGenerator creates a QuizGenerator with the built-in question banks.
func NewQuizGenerator() *QuizGenerator {
	return &QuizGenerator{
		banks: map[string]map[domain.SkillLevel][]domain.Question{
			"python": {
				domain.SkillBeginner: {
					{
						Type:   domain.QuestionMultipleChoice,
						Prompt: "What is the correct way to define a function in Python?",
						Options: []string{
							"def my_function():",
							"function my_function():",
							"define my_function():",
							"func my_function():",
						},
						CorrectOption: 0,
						Explanation:   `In Python, functions are defined using the "def" keyword followed by the function name and parentheses.`,
						Difficulty:    domain.DifficultyEasy,
						Topic:         "Functions",
					},
					{
						Type:           domain.QuestionCoding,
						Prompt:         "Write a function that takes a list of numbers and returns the sum of all even numbers.",
						StarterCode:    "def sum_even_numbers(numbers):\n    # Your code here\n    pass",
						ExpectedOutput: "For input [1, 2, 3, 4, 5, 6], should return 12",
						Difficulty:     domain.DifficultyMedium,
						Topic:          "Lists and Functions",
					},
				},
			},
			"javascript": {
				domain.SkillBeginner: {
					{
						Type:   domain.QuestionMultipleChoice,
						Prompt: "Which method is used to add an element to the end of an array in JavaScript?",
						Options: []string{
							"append()",
							"push()",
							"add()",
							"insert()",
						},
						CorrectOption: 1,
						Explanation:   "The push() method adds one or more elements to the end of an array and returns the new length of the array.",
						Difficulty:    domain.DifficultyEasy,
						Topic:         "Arrays",
					},
					{
						Type:           domain.QuestionCoding,
						Prompt:         "Create a function that validates if an email address is in a basic valid format.",
						StarterCode:    "function isValidEmail(email) {\n    // Your code here\n}",
						ExpectedOutput: "Should return true for valid emails, false for invalid ones",
						Difficulty:     domain.DifficultyMedium,
						Topic:          "String Validation",
					},
				},
			},
		},
	}
}

// GenerateQuiz returns defaultQuestionCount numbered, point-scored questions:
// bank questions first, generated ones topping up the count.
func (g *QuizGenerator) GenerateQuiz(ctx context.Context, req generation.Request) ([]domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	questions := g.bankQuestions(req.Week.Topic, req.SkillLevel)

	for i := len(questions); len(questions) < defaultQuestionCount; i++ {
		questions = append(questions, genericQuestion(req.Week.Topic, req.SkillLevel, i))
	}
	questions = questions[:defaultQuestionCount]

	for i := range questions {
		questions[i].Number = i + 1
		questions[i].Points = questionPoints(questions[i].Type, questions[i].Difficulty)
	}

	return questions, nil
}

func (g *QuizGenerator) bankQuestions(topic string, level domain.SkillLevel) []domain.Question {
	topicLower := strings.ToLower(topic)

	for tech, levels := range g.banks {
		if !strings.Contains(topicLower, tech) {
			continue
		}
		if bank, ok := levels[level]; ok {
			questions := make([]domain.Question, len(bank))
			copy(questions, bank)
			return questions
		}
	}

	return nil
}

// genericQuestion builds the position'th generated question, cycling through
// the five question types.
func genericQuestion(topic string, level domain.SkillLevel, position int) domain.Question {
	clean := cleanQuizTopic(topic)

	switch domain.QuestionTypes[position%len(domain.QuestionTypes)] {
	case domain.QuestionTrueFalse:
		return trueFalseQuestion(clean, position)
	case domain.QuestionShortAnswer:
		return shortAnswerQuestion(clean, level, position)
	case domain.QuestionCoding:
		return codingQuestion(clean, level, position)
	case domain.QuestionPractical:
		return practicalQuestion(clean, level, position)
	default:
		return multipleChoiceQuestion(clean, level, position)
	}
}

func cleanQuizTopic(topic string) string {
	clean := strings.ReplaceAll(topic, " Fundamentals", "")
	clean = strings.ReplaceAll(clean, " Basics", "")
	clean = strings.ReplaceAll(clean, " Introduction", "")
	return strings.TrimSpace(clean)
}

func multipleChoiceQuestion(topic string, level domain.SkillLevel, position int) domain.Question {
	var prompts []string
	switch level {
	case domain.SkillBeginner:
		prompts = []string{
			fmt.Sprintf("What is the basic syntax for %s?", topic),
			fmt.Sprintf("Which statement is true about %s?", topic),
			fmt.Sprintf("What is the purpose of %s?", topic),
		}
	case domain.SkillIntermediate:
		prompts = []string{
			fmt.Sprintf("What is the best practice when working with %s?", topic),
			fmt.Sprintf("Which approach is most efficient for %s?", topic),
			fmt.Sprintf("What are the limitations of %s?", topic),
		}
	default:
		prompts = []string{
			fmt.Sprintf("How would you optimize %s for large-scale applications?", topic),
			fmt.Sprintf("What are the advanced features of %s?", topic),
			fmt.Sprintf("How does %s compare to alternative approaches?", topic),
		}
	}

	return domain.Question{
		Type:   domain.QuestionMultipleChoice,
		Prompt: prompts[position%len(prompts)],
		Options: []string{
			fmt.Sprintf("Correct approach for %s", topic),
			fmt.Sprintf("Common misconception about %s", topic),
			fmt.Sprintf("Outdated method for %s", topic),
			fmt.Sprintf("Unrelated concept to %s", topic),
		},
		CorrectOption: 0,
		Explanation:   fmt.Sprintf("This tests understanding of %s concepts at %s level.", topic, level),
		Difficulty:    level.Difficulty(),
		Topic:         topic,
	}
}

func trueFalseQuestion(topic string, position int) domain.Question {
	statements := []string{
		fmt.Sprintf("%s is essential for modern development", topic),
		fmt.Sprintf("You must always use %s in professional projects", topic),
		fmt.Sprintf("%s has no performance implications", topic),
		fmt.Sprintf("Learning %s requires advanced programming knowledge", topic),
	}

	statement := statements[position%len(statements)]
	isTrue := position%2 == 0

	truth := "false"
	if isTrue {
		truth = "true"
	}

	return domain.Question{
		Type:        domain.QuestionTrueFalse,
		Prompt:      "True or False: " + statement,
		CorrectBool: isTrue,
		Explanation: fmt.Sprintf("This statement about %s is %s based on standard practices.", topic, truth),
		Difficulty:  domain.DifficultyEasy,
		Topic:       topic,
	}
}

func shortAnswerQuestion(topic string, level domain.SkillLevel, position int) domain.Question {
	prompts := []string{
		fmt.Sprintf("Explain the key benefits of using %s.", topic),
		fmt.Sprintf("Describe a practical use case for %s.", topic),
		fmt.Sprintf("What are the main challenges when learning %s?", topic),
		fmt.Sprintf("How does %s improve code quality?", topic),
	}

	return domain.Question{
		Type:         domain.QuestionShortAnswer,
		Prompt:       prompts[position%len(prompts)],
		SampleAnswer: fmt.Sprintf("A comprehensive answer should discuss the practical applications and benefits of %s.", topic),
		KeyPoints: []string{
			fmt.Sprintf("Understanding of %s fundamentals", topic),
			"Practical application knowledge",
			"Awareness of best practices",
			"Recognition of common challenges",
		},
		Difficulty: level.Difficulty(),
		Topic:      topic,
	}
}

func codingQuestion(topic string, level domain.SkillLevel, position int) domain.Question {
	var tasks []string
	switch level {
	case domain.SkillBeginner:
		tasks = []string{
			"create a simple function",
			"implement basic logic",
			"process user input",
			"display formatted output",
		}
	case domain.SkillIntermediate:
		tasks = []string{
			"implement an algorithm",
			"create a reusable class",
			"handle error conditions",
			"optimize performance",
		}
	default:
		tasks = []string{
			"design a scalable solution",
			"implement design patterns",
			"create efficient algorithms",
			"build robust error handling",
		}
	}

	task := tasks[position%len(tasks)]

	return domain.Question{
		Type:   domain.QuestionCoding,
		Prompt: fmt.Sprintf("Write code that will %s related to %s.", task, topic),
		StarterCode: fmt.Sprintf("# %s coding challenge\n# %s\n\ndef solution():\n    # Your code here\n    pass",
			topic, strings.ToUpper(task[:1])+task[1:]),
		ExpectedOutput: fmt.Sprintf("Code should demonstrate understanding of %s concepts.", topic),
		EvaluationCriteria: []string{
			"Correct implementation",
			"Code readability",
			"Proper use of concepts",
			"Error handling (if applicable)",
		},
		Difficulty: level.Difficulty(),
		Topic:      topic,
	}
}

func practicalQuestion(topic string, level domain.SkillLevel, position int) domain.Question {
	scenarios := []string{
		"building a web application",
		"solving a business problem",
		"optimizing system performance",
		"implementing user requirements",
	}

	scenario := scenarios[position%len(scenarios)]

	return domain.Question{
		Type:            domain.QuestionPractical,
		Prompt:          fmt.Sprintf("You are %s. How would you apply %s concepts to achieve the best results?", scenario, topic),
		ScenarioDetails: fmt.Sprintf("Consider a real-world situation where %s knowledge is essential.", topic),
		EvaluationPoints: []string{
			"Understanding of practical applications",
			"Knowledge of best practices",
			"Problem-solving approach",
			"Consideration of constraints and requirements",
		},
		Difficulty: level.Difficulty(),
		Topic:      topic,
	}
}

// questionPoints scores a question from its type's base value and a
// difficulty multiplier.
func questionPoints(questionType domain.QuestionType, difficulty domain.Difficulty) int {
	base := map[domain.QuestionType]int{
		domain.QuestionMultipleChoice: 2,
		domain.QuestionTrueFalse:      1,
		domain.QuestionShortAnswer:    3,
		domain.QuestionCoding:         5,
		domain.QuestionPractical:      4,
	}
	multiplier := map[domain.Difficulty]float64{
		domain.DifficultyEasy:   1,
		domain.DifficultyMedium: 1.5,
		domain.DifficultyHard:   2,
	}

	b, ok := base[questionType]
	if !ok {
		b = 2
	}
	m, ok := multiplier[difficulty]
	if !ok {
		m = 1
	}

	return int(float64(b) * m)
}
