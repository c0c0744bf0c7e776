package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/syllabus-api/internal/domain"
	"github.com/phrazzld/syllabus-api/internal/generation"
)

// WeeklyAggregator fans one week's content generation out to the four
// generators concurrently and joins the results into a WeeklyContent. The
// first generator failure cancels the remaining calls.
type WeeklyAggregator struct {
	videos   generation.VideoCurator
	docs     generation.DocFinder
	projects generation.ProjectBuilder
	quizzes  generation.QuizGenerator

	// callTimeout bounds each individual generator call.
	callTimeout time.Duration

	logger *slog.Logger
}

// NewWeeklyAggregator creates a WeeklyAggregator over the four generators.
func NewWeeklyAggregator(
	videos generation.VideoCurator,
	docs generation.DocFinder,
	projects generation.ProjectBuilder,
	quizzes generation.QuizGenerator,
	callTimeout time.Duration,
	logger *slog.Logger,
) *WeeklyAggregator {
	return &WeeklyAggregator{
		videos:      videos,
		docs:        docs,
		projects:    projects,
		quizzes:     quizzes,
		callTimeout: callTimeout,
		logger:      logger,
	}
}

// Aggregate generates all four content kinds for the week concurrently and
// merges them. Any failure aborts the whole week.
func (a *WeeklyAggregator) Aggregate(ctx context.Context, req generation.Request) (*domain.WeeklyContent, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		videos  []domain.Video
		docs    []domain.Document
		project *domain.Project
		quiz    []domain.Question
	)

	var wg sync.WaitGroup
	errCh := make(chan error, 4)

	run := func(name string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()

			callCtx, callCancel := context.WithTimeout(ctx, a.callTimeout)
			defer callCancel()

			if err := fn(callCtx); err != nil {
				errCh <- fmt.Errorf("%s: %w", name, err)
				cancel()
			}
		}()
	}

	run("video curation", func(ctx context.Context) error {
		var err error
		videos, err = a.videos.CurateVideos(ctx, req)
		return err
	})
	run("documentation discovery", func(ctx context.Context) error {
		var err error
		docs, err = a.docs.FindDocs(ctx, req)
		return err
	})
	run("project construction", func(ctx context.Context) error {
		var err error
		project, err = a.projects.BuildProject(ctx, req)
		return err
	})
	run("quiz generation", func(ctx context.Context) error {
		var err error
		quiz, err = a.quizzes.GenerateQuiz(ctx, req)
		return err
	})

	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		a.logger.WarnContext(ctx, "weekly content generation failed",
			"week", req.Week.WeekNumber, "error", err)
		return nil, err
	}

	content, err := domain.NewWeeklyContent(req.Week, videos, docs, project, quiz)
	if err != nil {
		return nil, fmt.Errorf("merging week %d content: %w", req.Week.WeekNumber, err)
	}

	a.logger.DebugContext(ctx, "weekly content aggregated",
		"week", req.Week.WeekNumber,
		"videos", len(videos),
		"docs", len(docs),
		"quiz_questions", len(quiz))

	return content, nil
}
