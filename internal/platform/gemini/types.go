package gemini

// promptData is the input to the quiz prompt template.
type promptData struct {
	Topic         string
	Objective     string
	SkillLevel    string
	QuestionCount int
	Outcomes      []string
}

// quizPrompt instructs the model to return structured JSON matching
// responseSchema.
const quizPrompt = `You are writing a weekly quiz for a programming curriculum.

Week topic: {{.Topic}}
Objective: {{.Objective}}
Learner skill level: {{.SkillLevel}}
Expected outcomes:
{{range .Outcomes}}- {{.}}
{{end}}
Write exactly {{.QuestionCount}} quiz questions that test the expected outcomes.
Mix the question types: multiple_choice, true_false, short_answer, coding, practical.

Respond with ONLY a JSON object in this exact shape, no other text:
{
  "questions": [
    {
      "type": "multiple_choice",
      "question": "...",
      "options": ["...", "...", "...", "..."],
      "correct_answer": 0,
      "explanation": "...",
      "difficulty": "easy"
    },
    {
      "type": "true_false",
      "question": "...",
      "correct_bool": true,
      "explanation": "...",
      "difficulty": "easy"
    },
    {
      "type": "short_answer",
      "question": "...",
      "sample_answer": "...",
      "key_points": ["...", "..."],
      "difficulty": "medium"
    },
    {
      "type": "coding",
      "question": "...",
      "starter_code": "...",
      "difficulty": "medium"
    },
    {
      "type": "practical",
      "question": "...",
      "difficulty": "medium"
    }
  ]
}

Difficulty must be one of easy, medium, hard.`

// responseSchema mirrors the JSON shape requested from the model.
type responseSchema struct {
	Questions []questionSchema `json:"questions"`
}

// questionSchema is one question as returned by the model. Fields beyond
// type and question are populated per question type.
type questionSchema struct {
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer int      `json:"correct_answer,omitempty"`
	CorrectBool   bool     `json:"correct_bool,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
	SampleAnswer  string   `json:"sample_answer,omitempty"`
	KeyPoints     []string `json:"key_points,omitempty"`
	StarterCode   string   `json:"starter_code,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
}
