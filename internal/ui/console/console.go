// Package console is a line-based presenter for study days, flashcard
// drills and quizzes.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/examprep/ent"
	"github.com/abhisek/examprep/internal/activity"
	"github.com/abhisek/examprep/internal/quiz"
	"github.com/abhisek/examprep/internal/session"
	"github.com/abhisek/examprep/internal/spacedrep"
	"github.com/abhisek/examprep/internal/ui/theme"
)

var _ activity.DayPresenter = (*Presenter)(nil)

// Presenter reads answers from in and writes prompts to out.
type Presenter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a presenter over the given streams.
func New(in io.Reader, out io.Writer) *Presenter {
	return &Presenter{in: bufio.NewReader(in), out: out}
}

// errQuit is returned by readLine when the learner asked to leave.
var errQuit = errors.New("quit")

func isQuit(s string) bool {
	switch strings.ToLower(s) {
	case "q", "quit", "menu":
		return true
	}
	return false
}

// readLine prompts and returns the trimmed input. End of input counts as
// quitting so that progress made so far is kept.
func (p *Presenter) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, theme.Key.Render(prompt))
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return "", errQuit
		}
		return "", err
	}
	line = strings.TrimSpace(line)
	if isQuit(line) {
		return "", errQuit
	}
	return line, nil
}

func outcomeOf(err error) (activity.Outcome, error) {
	if errors.Is(err, errQuit) {
		return activity.SkipToEnd, nil
	}
	return activity.Continue, err
}

// Begin announces a component.
func (p *Presenter) Begin(_ context.Context, c session.Component, items int) error {
	title := strings.ToUpper(string(c[:1])) + string(c[1:])
	if items > 0 {
		title += fmt.Sprintf(" (%d)", items)
	}
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, theme.Heading.Render(title))
	return nil
}

// Read shows the reading material and waits for Enter.
func (p *Presenter) Read(ctx context.Context, sd *ent.StudyDay) (activity.Outcome, error) {
	fmt.Fprintln(p.out, theme.Panel.Render(sd.ReadingContent))
	_, err := p.readLine(ctx, "Press Enter when done (q to leave) ")
	return outcomeOf(err)
}

// Rate shows the front of a card, reveals the back on Enter and asks for a
// 0-5 rating until a valid one is given.
func (p *Presenter) Rate(ctx context.Context, pos activity.Position, card *ent.Flashcard) (int, activity.Outcome, error) {
	fmt.Fprintln(p.out, theme.Hint.Render(fmt.Sprintf("Card %d of %d", pos.Index, pos.Total)))
	fmt.Fprintln(p.out, theme.Card.Render(card.Front))
	if _, err := p.readLine(ctx, "Enter to reveal "); err != nil {
		o, err := outcomeOf(err)
		return 0, o, err
	}
	fmt.Fprintln(p.out, theme.Answer.Render(card.Back))

	for {
		line, err := p.readLine(ctx, fmt.Sprintf("Rate recall %d-%d: ", spacedrep.MinQuality, spacedrep.MaxQuality))
		if err != nil {
			o, err := outcomeOf(err)
			return 0, o, err
		}
		r, convErr := strconv.Atoi(line)
		if convErr == nil && r >= spacedrep.MinQuality && r <= spacedrep.MaxQuality {
			return r, activity.Continue, nil
		}
		fmt.Fprintln(p.out, theme.Incorrect.Render("Enter a number from 0 to 5."))
	}
}

// Answer shows a question and its choices and asks for a letter until a
// valid one is given.
func (p *Presenter) Answer(ctx context.Context, pos activity.Position, q *ent.QuizQuestion) (string, activity.Outcome, error) {
	fmt.Fprintln(p.out, theme.Hint.Render(fmt.Sprintf("Question %d of %d", pos.Index, pos.Total)))
	fmt.Fprintln(p.out, theme.Body.Render(q.Stem))
	for _, c := range quiz.Choices(q) {
		fmt.Fprintf(p.out, "  %s) %s\n", c.Letter, c.Text)
	}

	for {
		line, err := p.readLine(ctx, "Answer (a-d): ")
		if err != nil {
			o, err := outcomeOf(err)
			return "", o, err
		}
		a, verr := quiz.NormalizeAnswer(line)
		if verr == nil {
			return a, activity.Continue, nil
		}
		fmt.Fprintln(p.out, theme.Incorrect.Render("Choose a, b, c or d."))
	}
}

// Feedback shows whether the answer was right, plus the explanation.
func (p *Presenter) Feedback(_ context.Context, q *ent.QuizQuestion, correct bool) error {
	if correct {
		fmt.Fprintln(p.out, theme.Correct.Render("Correct!"))
	} else {
		fmt.Fprintln(p.out, theme.Incorrect.Render("Incorrect. The answer is "+strings.ToUpper(q.CorrectAnswer)+"."))
	}
	if q.Explanation != "" {
		fmt.Fprintln(p.out, theme.Hint.Render(q.Explanation))
	}
	return nil
}

// Confirm asks a yes/no question. Anything but y or yes is a no.
func (p *Presenter) Confirm(ctx context.Context, question string) (bool, error) {
	line, err := p.readLine(ctx, question+" [y/N] ")
	if errors.Is(err, errQuit) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
