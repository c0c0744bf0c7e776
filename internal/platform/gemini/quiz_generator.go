// Package gemini implements quiz generation using Google's Gemini API.
// Responses are requested as structured JSON and parsed into domain
// questions; transient API failures are retried with exponential backoff.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"text/template"
	"time"

	"google.golang.org/genai"

	"github.com/phrazzld/syllabus-api/internal/domain"
	"github.com/phrazzld/syllabus-api/internal/generation"
)

// questionCount is how many questions each week's quiz carries.
const questionCount = 5

// Config holds Gemini-specific settings.
type Config struct {
	// APIKey authenticates against the Gemini API.
	APIKey string

	// ModelName selects the model, e.g. "gemini-2.0-flash".
	ModelName string

	// MaxRetries bounds retry attempts for transient failures.
	MaxRetries int

	// RetryDelaySeconds is the base delay for exponential backoff.
	RetryDelaySeconds int
}

// contentCaller abstracts the single model call so tests can substitute the
// API.
type contentCaller interface {
	generate(ctx context.Context, prompt string) (string, error)
}

// QuizGenerator implements generation.QuizGenerator against the Gemini API.
type QuizGenerator struct {
	logger         *slog.Logger
	config         Config
	promptTemplate *template.Template
	caller         contentCaller
}

// NewQuizGenerator creates a QuizGenerator and initializes the API client.
func NewQuizGenerator(ctx context.Context, logger *slog.Logger, config Config) (*QuizGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if config.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	promptTemplate, err := template.New("quiz").Parse(quizPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			generation.ErrInvalidConfig, err)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &QuizGenerator{
		logger:         logger.With("component", "gemini_quiz_generator"),
		config:         config,
		promptTemplate: promptTemplate,
		caller:         &genaiCaller{client: client, model: config.ModelName},
	}, nil
}

// GenerateQuiz asks the model for the week's quiz and parses the response.
func (g *QuizGenerator) GenerateQuiz(ctx context.Context, req generation.Request) ([]domain.Question, error) {
	prompt, err := g.createPrompt(ctx, req)
	if err != nil {
		return nil, err
	}

	response, err := g.callWithRetry(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return g.parseResponse(ctx, response, req)
}

// createPrompt renders the quiz prompt for the given week.
func (g *QuizGenerator) createPrompt(ctx context.Context, req generation.Request) (string, error) {
	if req.Week.Topic == "" {
		return "", fmt.Errorf("%w: week topic cannot be empty", generation.ErrGenerationFailed)
	}

	data := promptData{
		Topic:         req.Week.Topic,
		Objective:     req.Week.Objective,
		SkillLevel:    string(req.SkillLevel),
		QuestionCount: questionCount,
		Outcomes:      req.Week.ExpectedOutcomes,
	}

	var buf bytes.Buffer
	if err := g.promptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	g.logger.DebugContext(ctx, "quiz prompt generated",
		"topic", req.Week.Topic, "prompt_length", buf.Len())

	return buf.String(), nil
}

// callWithRetry calls the API with exponential backoff plus jitter for
// transient errors. Permanent errors (blocked content, malformed responses)
// return immediately.
func (g *QuizGenerator) callWithRetry(ctx context.Context, prompt string) (*responseSchema, error) {
	maxRetries := g.config.MaxRetries
	baseDelaySeconds := g.config.RetryDelaySeconds
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if maxRetries < 0 {
		g.logger.WarnContext(ctx, "invalid max retries value, using default", "max_retries", 3)
		maxRetries = 3
	}

	if baseDelaySeconds < 1 {
		g.logger.WarnContext(ctx, "invalid retry delay value, using default", "base_delay_seconds", 2)
		baseDelaySeconds = 2
	}

	for attempt := 0; ; attempt++ {
		g.logger.DebugContext(ctx, "calling Gemini API",
			"attempt", attempt+1, "max_attempts", maxRetries+1)

		text, err := g.caller.generate(ctx, prompt)
		if err == nil {
			var parsed responseSchema
			if jsonErr := json.Unmarshal([]byte(extractJSON(text)), &parsed); jsonErr != nil {
				return nil, fmt.Errorf("%w: failed to parse JSON response: %v",
					generation.ErrInvalidResponse, jsonErr)
			}
			return &parsed, nil
		}

		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"attempt", attempt+1, "error", err)

		if errors.Is(err, generation.ErrContentBlocked) || errors.Is(err, generation.ErrInvalidResponse) {
			return nil, err
		}

		if attempt >= maxRetries {
			return nil, fmt.Errorf("%w: exceeded maximum retry attempts (%d)",
				generation.ErrTransientFailure, maxRetries)
		}

		// delay = baseDelay * (2^attempt) * (0.5 + rand(0, 0.5))
		backoffSeconds := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		jitterFactor := 0.5 + rng.Float64()*0.5
		delay := time.Duration(backoffSeconds * jitterFactor * float64(time.Second))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
	}
}

// parseResponse converts the API response into validated domain questions.
func (g *QuizGenerator) parseResponse(
	ctx context.Context,
	response *responseSchema,
	req generation.Request,
) ([]domain.Question, error) {
	if response == nil || len(response.Questions) == 0 {
		return nil, fmt.Errorf("%w: no questions in response", generation.ErrInvalidResponse)
	}

	questions := make([]domain.Question, 0, len(response.Questions))
	for i, qs := range response.Questions {
		if qs.Question == "" {
			return nil, fmt.Errorf("%w: question %d missing prompt", generation.ErrInvalidResponse, i)
		}

		qType := domain.QuestionType(qs.Type)
		if !validQuestionType(qType) {
			return nil, fmt.Errorf("%w: question %d has unknown type %q",
				generation.ErrInvalidResponse, i, qs.Type)
		}

		difficulty := domain.Difficulty(qs.Difficulty)
		if difficulty == "" {
			difficulty = difficultyFor(req.SkillLevel)
		}

		question := domain.Question{
			Number:        i + 1,
			Type:          qType,
			Prompt:        qs.Question,
			Difficulty:    difficulty,
			Topic:         req.Week.Topic,
			Options:       qs.Options,
			CorrectOption: qs.CorrectAnswer,
			CorrectBool:   qs.CorrectBool,
			Explanation:   qs.Explanation,
			SampleAnswer:  qs.SampleAnswer,
			KeyPoints:     qs.KeyPoints,
			StarterCode:   qs.StarterCode,
		}
		question.Points = questionPoints(qType, difficulty)

		questions = append(questions, question)
	}

	g.logger.DebugContext(ctx, "parsed Gemini quiz response",
		"topic", req.Week.Topic, "questions", len(questions))

	return questions, nil
}

func validQuestionType(t domain.QuestionType) bool {
	for _, known := range domain.QuestionTypes {
		if t == known {
			return true
		}
	}
	return false
}

func difficultyFor(level domain.SkillLevel) domain.Difficulty {
	switch level {
	case domain.SkillBeginner:
		return domain.DifficultyEasy
	case domain.SkillIntermediate:
		return domain.DifficultyMedium
	default:
		return domain.DifficultyHard
	}
}

// questionPoints scores a question from its type's base value scaled by
// difficulty, truncated to an int.
func questionPoints(t domain.QuestionType, d domain.Difficulty) int {
	base := map[domain.QuestionType]int{
		domain.QuestionMultipleChoice: 2,
		domain.QuestionTrueFalse:      1,
		domain.QuestionShortAnswer:    3,
		domain.QuestionCoding:         5,
		domain.QuestionPractical:      4,
	}[t]

	mult := map[domain.Difficulty]float64{
		domain.DifficultyEasy:   1.0,
		domain.DifficultyMedium: 1.5,
		domain.DifficultyHard:   2.0,
	}[d]

	return int(float64(base) * mult)
}

// extractJSON strips markdown code fences the model sometimes wraps JSON in.
func extractJSON(text string) string {
	start := -1
	for i, r := range text {
		if r == '{' {
			start = i
			break
		}
	}
	if start < 0 {
		return text
	}

	end := -1
	for i := len(text) - 1; i >= start; i-- {
		if text[i] == '}' {
			end = i
			break
		}
	}
	if end < 0 {
		return text
	}

	return text[start : end+1]
}
