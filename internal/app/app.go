// Package app wires the store and the study services together and exposes
// the flows behind each CLI command.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/examprep/internal/activity"
	"github.com/abhisek/examprep/internal/config"
	"github.com/abhisek/examprep/internal/logger"
	"github.com/abhisek/examprep/internal/quiz"
	"github.com/abhisek/examprep/internal/readiness"
	"github.com/abhisek/examprep/internal/session"
	"github.com/abhisek/examprep/internal/spacedrep"
	"github.com/abhisek/examprep/internal/store"
	"github.com/abhisek/examprep/internal/ui/views"
	"github.com/abhisek/examprep/internal/weakarea"
)

// App holds one of every service, sharing a single store.
type App struct {
	Config config.Config
	Log    *logger.Logger
	Store  *store.Store

	Session  *session.Service
	Selector *spacedrep.Selector
	Reviewer *spacedrep.Reviewer
	Quiz     *quiz.Service
	Runner   *activity.Runner
	Scorer   *readiness.Scorer
	Analyzer *weakarea.Analyzer

	now func() time.Time
}

// Open opens the database named by cfg, or the default one, and wires the
// services over it.
func Open(cfg config.Config, log *logger.Logger) (*App, error) {
	path := cfg.DBPath
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		path = p
	} else if err := store.EnsureDir(path); err != nil {
		return nil, err
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	logger.OrNop(log).Debug("database opened", "path", path)
	return New(st, cfg, log), nil
}

// New wires the services over an already open store.
func New(st *store.Store, cfg config.Config, log *logger.Logger) *App {
	log = logger.OrNop(log)
	a := &App{
		Config:   cfg,
		Log:      log,
		Store:    st,
		Session:  session.NewService(st, log),
		Selector: spacedrep.NewSelector(st.Content()),
		Reviewer: spacedrep.NewReviewer(st, log),
		Quiz:     quiz.NewService(st, log),
		Scorer:   readiness.NewScorer(st),
		Analyzer: weakarea.NewAnalyzer(st),
		now:      time.Now,
	}
	a.Runner = activity.NewRunner(st, a.Reviewer, a.Quiz, a.Session, log)
	return a
}

// SetClock replaces the time source of every service.
func (a *App) SetClock(now func() time.Time) {
	a.now = now
	a.Session.Now = now
	a.Reviewer.Now = now
}

// Close releases the store.
func (a *App) Close() error {
	a.Log.Sync()
	return a.Store.Close()
}

// Seeded reports whether any study content has been loaded.
func (a *App) Seeded(ctx context.Context) (bool, error) {
	return a.Store.Content().HasDomains(ctx)
}

// Study runs the current plan day.
func (a *App) Study(ctx context.Context, p activity.DayPresenter) (*activity.DayResult, error) {
	sizes := activity.DaySizes{
		Flashcards: a.Config.Study.FlashcardsPerDay,
		Questions:  a.Config.Study.QuestionsPerDay,
	}
	return a.Runner.RunDay(ctx, a.Selector, sizes, a.now(), p)
}

// DrillFlashcards reviews up to count due cards outside the plan. A nil
// domainID drills every domain.
func (a *App) DrillFlashcards(ctx context.Context, domainID *int, count int, p activity.FlashcardPresenter) (*activity.Result, error) {
	cards, err := a.Selector.SelectDue(ctx, a.now(), spacedrep.DueFilter{DomainID: domainID}, count)
	if err != nil {
		return nil, err
	}
	return a.Runner.RunFlashcards(ctx, activity.NewBatch(0), cards, p)
}

// DrillQuiz runs up to count random questions outside the plan.
func (a *App) DrillQuiz(ctx context.Context, domainID *int, count int, p activity.QuizPresenter) (*activity.Result, error) {
	qs, err := a.Quiz.Questions(ctx, quiz.Filter{DomainID: domainID}, count)
	if err != nil {
		return nil, err
	}
	return a.Runner.RunQuiz(ctx, activity.NewBatch(0), qs, p)
}

// Dashboard gathers everything the status screen shows.
func (a *App) Dashboard(ctx context.Context) (views.Dashboard, error) {
	var d views.Dashboard
	var err error

	if d.State, err = a.Session.State(ctx); err != nil {
		return d, err
	}
	if d.CalendarDays, err = a.Session.CalendarDaysElapsed(ctx); err != nil {
		return d, err
	}
	if d.Breakdown, err = a.Scorer.Breakdown(ctx); err != nil {
		return d, err
	}
	d.Score = d.Breakdown.Score()
	if d.Domains, err = a.Scorer.DomainScores(ctx); err != nil {
		return d, err
	}
	if d.Stats, err = a.Scorer.Stats(ctx); err != nil {
		return d, err
	}
	if d.Recommendation, err = a.Scorer.Recommendation(ctx); err != nil {
		return d, err
	}
	return d, nil
}

// WeakAreas holds the weak-area report.
type WeakAreas struct {
	Domains   []weakarea.WeakDomain
	Subtopics []weakarea.WeakSubtopic
}

// Weakest returns the lowest-scoring weak domain, or nil.
func (w *WeakAreas) Weakest() *weakarea.WeakDomain {
	if len(w.Domains) == 0 {
		return nil
	}
	return &w.Domains[0]
}

// WeakAreas analyses quiz history at the configured threshold.
func (a *App) WeakAreas(ctx context.Context) (*WeakAreas, error) {
	t := a.Config.Review.Threshold
	domains, err := a.Analyzer.WeakDomains(ctx, t)
	if err != nil {
		return nil, err
	}
	subs, err := a.Analyzer.WeakSubtopics(ctx, t)
	if err != nil {
		return nil, err
	}
	return &WeakAreas{Domains: domains, Subtopics: subs}, nil
}

// ReviewResult summarises a remediation drill.
type ReviewResult struct {
	Domain     weakarea.WeakDomain
	Flashcards *activity.Result
	Quiz       *activity.Result
}

// ReviewPresenter drives both halves of a remediation drill.
type ReviewPresenter interface {
	activity.FlashcardPresenter
	activity.QuizPresenter
}

// ReviewWeakest drills due flashcards and then questions from the domain
// with the lowest quiz accuracy. It returns nil when there is no weak
// domain. Leaving the flashcards skips the quiz as well.
func (a *App) ReviewWeakest(ctx context.Context, w *WeakAreas, p ReviewPresenter) (*ReviewResult, error) {
	weakest := w.Weakest()
	if weakest == nil {
		return nil, nil
	}
	res := &ReviewResult{Domain: *weakest}
	domainID := weakest.DomainID

	a.Log.Info("weak area review", "domain", weakest.Name, "score", weakest.Score)

	var err error
	if res.Flashcards, err = a.DrillFlashcards(ctx, &domainID, a.Config.Review.Flashcards, p); err != nil {
		return nil, err
	}
	if res.Flashcards.Abandoned {
		return res, nil
	}
	if res.Quiz, err = a.DrillQuiz(ctx, &domainID, a.Config.Review.Questions, p); err != nil {
		return nil, err
	}
	return res, nil
}
