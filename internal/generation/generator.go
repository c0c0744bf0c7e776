package generation

import (
	"context"

	"github.com/phrazzld/syllabus-api/internal/domain"
)

// Request carries the inputs every content generator needs for one week:
// what the week covers, how skilled the learner is, and where the week sits
// in the overall schedule.
type Request struct {
	Week       domain.WeekSpec
	Topic      string
	SkillLevel domain.SkillLevel
	TotalWeeks int
}

// VideoCurator finds educational videos for a week. Implementations may call
// external services; the context bounds the call.
type VideoCurator interface {
	// CurateVideos returns a non-empty, ranked list of videos for the week,
	// or an error if curation fails (see errors.go for specific types).
	CurateVideos(ctx context.Context, req Request) ([]domain.Video, error)
}

// DocFinder locates written documentation and articles for a week.
type DocFinder interface {
	// FindDocs returns a non-empty list of documentation references for the
	// week, or an error if discovery fails.
	FindDocs(ctx context.Context, req Request) ([]domain.Document, error)
}

// ProjectBuilder creates the hands-on project for a week. The project scope
// grows with the week's position in the schedule.
type ProjectBuilder interface {
	// BuildProject returns the week's project with Title and Type always
	// set, or an error if construction fails.
	BuildProject(ctx context.Context, req Request) (*domain.Project, error)
}

// QuizGenerator produces the assessment questions for a week.
type QuizGenerator interface {
	// GenerateQuiz returns typed, numbered quiz questions for the week, or
	// an error if generation fails.
	GenerateQuiz(ctx context.Context, req Request) ([]domain.Question, error)
}
