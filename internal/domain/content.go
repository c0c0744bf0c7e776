package domain

// Difficulty grades an individual question or project.
type Difficulty string

// Supported difficulty grades.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Video is a curated educational video reference.
type Video struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Channel     string `json:"channel"`
	Description string `json:"description"`
	Duration    string `json:"duration,omitempty"`
	Views       string `json:"views,omitempty"`
	Note        string `json:"note,omitempty"`
}

// Document is a written-documentation or article reference.
type Document struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Type        string `json:"type"`
	Description string `json:"description"`
	SearchQuery string `json:"search_query,omitempty"`
}

// ProjectType distinguishes the hands-on work formats, ordered roughly by
// scope: standalone exercises, guided mini projects, and open-ended
// real-world scenarios.
type ProjectType string

// Supported project types.
const (
	ProjectExercise  ProjectType = "exercise"
	ProjectMini      ProjectType = "mini_project"
	ProjectRealWorld ProjectType = "real_world_project"
)

// Project is the hands-on component for one week. Title and Type are always
// set; the remaining fields vary by project type and are omitted from JSON
// when unused.
type Project struct {
	Type               ProjectType `json:"type"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	LearningObjectives []string    `json:"learning_objectives,omitempty"`
	Requirements       []string    `json:"requirements,omitempty"`
	EstimatedTime      string      `json:"estimated_time,omitempty"`
	Difficulty         string      `json:"difficulty,omitempty"`
	FilesToCreate      []string    `json:"files_to_create,omitempty"`
	StarterCode        string      `json:"starter_code,omitempty"`

	// Exercise projects carry a progressive exercise list.
	Exercises []string `json:"exercises,omitempty"`

	// Mini projects carry feature and bonus-challenge lists.
	Features        []string `json:"features,omitempty"`
	BonusChallenges []string `json:"bonus_challenges,omitempty"`

	// Real-world projects carry user stories and technical requirements.
	UserStories           []string `json:"user_stories,omitempty"`
	TechnicalRequirements []string `json:"technical_requirements,omitempty"`

	// Week-progression enhancements, set by the project builder.
	Focus                string   `json:"focus,omitempty"`
	SuccessCriteria      string   `json:"success_criteria,omitempty"`
	WeekTips             []string `json:"week_specific_tips,omitempty"`
	SubmissionGuidelines []string `json:"submission_guidelines,omitempty"`
}

// QuestionType tags the closed set of quiz question variants.
type QuestionType string

// Supported question types.
const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionTrueFalse      QuestionType = "true_false"
	QuestionShortAnswer    QuestionType = "short_answer"
	QuestionCoding         QuestionType = "coding"
	QuestionPractical      QuestionType = "practical"
)

// QuestionTypes lists every supported question type.
var QuestionTypes = []QuestionType{
	QuestionMultipleChoice,
	QuestionTrueFalse,
	QuestionShortAnswer,
	QuestionCoding,
	QuestionPractical,
}

// Question is one quiz item. Fields beyond Type, Prompt, Difficulty, and
// Topic are populated per variant: multiple choice uses Options and
// CorrectOption, true/false uses CorrectBool, short answer uses SampleAnswer
// and KeyPoints, coding uses StarterCode/ExpectedOutput/EvaluationCriteria,
// practical uses ScenarioDetails and EvaluationPoints.
type Question struct {
	Number     int          `json:"question_number"`
	Type       QuestionType `json:"type"`
	Prompt     string       `json:"question"`
	Difficulty Difficulty   `json:"difficulty"`
	Topic      string       `json:"topic"`
	Points     int          `json:"points"`

	Options       []string `json:"options,omitempty"`
	CorrectOption int      `json:"correct_answer,omitempty"`
	CorrectBool   bool     `json:"correct_bool,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`

	SampleAnswer string   `json:"sample_answer,omitempty"`
	KeyPoints    []string `json:"key_points,omitempty"`

	StarterCode        string   `json:"starter_code,omitempty"`
	ExpectedOutput     string   `json:"expected_output,omitempty"`
	EvaluationCriteria []string `json:"evaluation_criteria,omitempty"`

	ScenarioDetails  string   `json:"scenario_details,omitempty"`
	EvaluationPoints []string `json:"evaluation_points,omitempty"`
}
