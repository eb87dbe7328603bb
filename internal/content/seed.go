package content

import (
	"context"
	"fmt"

	"github.com/abhisek/examprep/internal/logger"
	"github.com/abhisek/examprep/internal/quiz"
	"github.com/abhisek/examprep/internal/store"
)

// Summary counts what a seed run created.
type Summary struct {
	Skipped    bool // the store already had content
	Domains    int
	Subtopics  int
	Flashcards int
	Questions  int
	Days       int
}

// Seed writes f into st in one transaction. A store that already holds
// domains is left untouched and the summary reports Skipped.
func Seed(ctx context.Context, st *store.Store, f *File, log *logger.Logger) (*Summary, error) {
	log = logger.OrNop(log)
	sum := &Summary{}

	err := st.InTx(ctx, func(ctx context.Context) error {
		c := st.Content()
		seeded, err := c.HasDomains(ctx)
		if err != nil {
			return err
		}
		if seeded {
			sum.Skipped = true
			return nil
		}

		domainIDs := make(map[string]int, len(f.Domains))
		for _, d := range f.Domains {
			dom, err := c.CreateDomain(ctx, store.DomainInput{
				Name:          d.Name,
				SectionNumber: d.Section,
				ExamWeight:    d.Weight,
				Description:   d.Description,
			})
			if err != nil {
				return err
			}
			domainIDs[d.Name] = dom.ID
			sum.Domains++

			subIDs := make(map[string]int, len(d.Subtopics))
			for _, s := range d.Subtopics {
				sub, err := c.CreateSubtopic(ctx, store.SubtopicInput{
					DomainID:    dom.ID,
					Name:        s.Name,
					Description: s.Description,
				})
				if err != nil {
					return err
				}
				subIDs[s.Name] = sub.ID
				sum.Subtopics++
			}
			subtopic := func(name string) *int {
				if id, ok := subIDs[name]; ok {
					return &id
				}
				return nil
			}

			for _, fc := range d.Flashcards {
				if _, err := c.CreateFlashcard(ctx, store.FlashcardInput{
					DomainID:   dom.ID,
					SubtopicID: subtopic(fc.Subtopic),
					Front:      fc.Front,
					Back:       fc.Back,
				}); err != nil {
					return err
				}
				sum.Flashcards++
			}

			for _, q := range d.Questions {
				answer, err := quiz.NormalizeAnswer(q.Answer)
				if err != nil {
					return err
				}
				if _, err := c.CreateQuestion(ctx, store.QuestionInput{
					DomainID:      dom.ID,
					SubtopicID:    subtopic(q.Subtopic),
					Stem:          q.Stem,
					Choices:       [4]string{q.Choices[0], q.Choices[1], q.Choices[2], q.Choices[3]},
					CorrectAnswer: answer,
					Explanation:   q.Explanation,
				}); err != nil {
					return err
				}
				sum.Questions++
			}
		}

		day := 1
		for _, block := range f.Plan {
			var domainID *int
			if block.Domain != "" {
				id := domainIDs[block.Domain]
				domainID = &id
			}
			for i := 0; i < block.Days; i++ {
				if _, err := c.CreateStudyDay(ctx, store.StudyDayInput{
					DayNumber:      day,
					DomainID:       domainID,
					ReadingContent: block.Reading,
				}); err != nil {
					return err
				}
				day++
				sum.Days++
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("seed content: %w", err)
	}

	if sum.Skipped {
		log.Info("content already seeded, skipping")
	} else {
		log.Info("content seeded",
			"domains", sum.Domains,
			"flashcards", sum.Flashcards,
			"questions", sum.Questions,
			"days", sum.Days,
		)
	}
	return sum, nil
}
