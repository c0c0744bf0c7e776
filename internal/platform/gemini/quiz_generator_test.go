package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/syllabus-api/internal/domain"
	"github.com/phrazzld/syllabus-api/internal/generation"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeCaller scripts API responses per attempt.
type fakeCaller struct {
	responses []string
	errs      []error
	calls     int
}

func (f *fakeCaller) generate(ctx context.Context, prompt string) (string, error) {
	i := f.calls
	f.calls++

	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", errors.New("no scripted response")
}

func newTestGenerator(t *testing.T, caller contentCaller) *QuizGenerator {
	t.Helper()

	tmpl, err := template.New("quiz").Parse(quizPrompt)
	require.NoError(t, err)

	return &QuizGenerator{
		logger:         discardLogger(),
		config:         Config{APIKey: "test", ModelName: "test-model", MaxRetries: 2, RetryDelaySeconds: 1},
		promptTemplate: tmpl,
		caller:         caller,
	}
}

func testRequest() generation.Request {
	return generation.Request{
		Week: domain.WeekSpec{
			WeekNumber:       1,
			Topic:            "Go Fundamentals",
			Objective:        "Learn the basics of Go",
			ExpectedOutcomes: []string{"Write a Go program", "Use goroutines"},
		},
		Topic:      "Go",
		SkillLevel: domain.SkillBeginner,
		TotalWeeks: 4,
	}
}

const validResponse = `{
  "questions": [
    {"type": "multiple_choice", "question": "Which keyword declares a function?", "options": ["fn", "func", "def", "function"], "correct_answer": 1, "explanation": "Go uses func.", "difficulty": "easy"},
    {"type": "true_false", "question": "Goroutines are OS threads.", "correct_bool": false, "difficulty": "easy"},
    {"type": "coding", "question": "Write a function that sums a slice.", "starter_code": "func sum(xs []int) int {\n}", "difficulty": "medium"}
  ]
}`

func TestGenerateQuizParsesResponse(t *testing.T) {
	t.Parallel()

	gen := newTestGenerator(t, &fakeCaller{responses: []string{validResponse}})

	questions, err := gen.GenerateQuiz(context.Background(), testRequest())
	require.NoError(t, err)
	require.Len(t, questions, 3)

	assert.Equal(t, 1, questions[0].Number)
	assert.Equal(t, domain.QuestionMultipleChoice, questions[0].Type)
	assert.Equal(t, 1, questions[0].CorrectOption)
	assert.Equal(t, 2, questions[0].Points, "easy multiple choice scores 2")
	assert.Equal(t, "Go Fundamentals", questions[0].Topic)

	assert.Equal(t, domain.QuestionTrueFalse, questions[1].Type)
	assert.Equal(t, 1, questions[1].Points)

	assert.Equal(t, domain.QuestionCoding, questions[2].Type)
	assert.Equal(t, 7, questions[2].Points, "medium coding scores int(5*1.5)")
}

func TestGenerateQuizStripsCodeFences(t *testing.T) {
	t.Parallel()

	fenced := "```json\n" + validResponse + "\n```"
	gen := newTestGenerator(t, &fakeCaller{responses: []string{fenced}})

	questions, err := gen.GenerateQuiz(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Len(t, questions, 3)
}

func TestGenerateQuizRetriesTransientErrors(t *testing.T) {
	t.Parallel()

	caller := &fakeCaller{
		errs:      []error{errors.New("temporary outage"), nil},
		responses: []string{"", validResponse},
	}
	gen := newTestGenerator(t, caller)
	gen.config.RetryDelaySeconds = 1

	questions, err := gen.GenerateQuiz(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Len(t, questions, 3)
	assert.Equal(t, 2, caller.calls)
}

func TestGenerateQuizPermanentErrorNotRetried(t *testing.T) {
	t.Parallel()

	blocked := fmt.Errorf("%w: content blocked", generation.ErrContentBlocked)
	caller := &fakeCaller{errs: []error{blocked, nil}, responses: []string{"", validResponse}}
	gen := newTestGenerator(t, caller)

	_, err := gen.GenerateQuiz(context.Background(), testRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrContentBlocked)
	assert.Equal(t, 1, caller.calls, "permanent errors must not be retried")
}

func TestGenerateQuizExhaustsRetries(t *testing.T) {
	t.Parallel()

	outage := errors.New("still down")
	caller := &fakeCaller{errs: []error{outage, outage, outage}}
	gen := newTestGenerator(t, caller)
	gen.config.MaxRetries = 2

	_, err := gen.GenerateQuiz(context.Background(), testRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrTransientFailure)
	assert.Equal(t, 3, caller.calls)
}

func TestGenerateQuizRejectsMalformedResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		response string
	}{
		{name: "not JSON", response: "sure, here are some questions!"},
		{name: "empty question list", response: `{"questions": []}`},
		{name: "missing prompt", response: `{"questions": [{"type": "true_false"}]}`},
		{name: "unknown type", response: `{"questions": [{"type": "essay", "question": "Discuss."}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gen := newTestGenerator(t, &fakeCaller{responses: []string{tc.response}})
			_, err := gen.GenerateQuiz(context.Background(), testRequest())
			assert.ErrorIs(t, err, generation.ErrInvalidResponse)
		})
	}
}

func TestGenerateQuizDefaultsDifficulty(t *testing.T) {
	t.Parallel()

	response := `{"questions": [{"type": "short_answer", "question": "Explain slices.", "sample_answer": "Views over arrays."}]}`
	gen := newTestGenerator(t, &fakeCaller{responses: []string{response}})

	req := testRequest()
	req.SkillLevel = domain.SkillAdvanced

	questions, err := gen.GenerateQuiz(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, domain.DifficultyHard, questions[0].Difficulty)
	assert.Equal(t, 6, questions[0].Points, "hard short answer scores int(3*2)")
}

func TestCreatePromptIncludesWeekDetails(t *testing.T) {
	t.Parallel()

	gen := newTestGenerator(t, &fakeCaller{})

	prompt, err := gen.createPrompt(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Contains(t, prompt, "Go Fundamentals")
	assert.Contains(t, prompt, "Learn the basics of Go")
	assert.Contains(t, prompt, "- Write a Go program")
	assert.Contains(t, prompt, "exactly 5 quiz questions")
}

func TestCreatePromptEmptyTopic(t *testing.T) {
	t.Parallel()

	gen := newTestGenerator(t, &fakeCaller{})

	req := testRequest()
	req.Week.Topic = ""

	_, err := gen.createPrompt(context.Background(), req)
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
}
