// Package report aggregates a study document into dashboard rows and
// revision suggestions, and renders them for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mededu/internal/model"
	"github.com/abhisek/mededu/internal/study"
	"github.com/abhisek/mededu/internal/ui/theme"
)

// TopicSummary holds the dashboard figures for one topic.
type TopicSummary struct {
	ID            int
	Name          string
	Category      string
	Difficulty    string
	TotalMinutes  int
	LastStudied   string // date, or model.NeverStudied
	NoteCount     int
	QuestionCount int
	Attempts      int
	BestScore     int
}

// Dashboard summarises every topic in document order.
func Dashboard(doc *model.Document) ([]TopicSummary, error) {
	if len(doc.Topics) == 0 {
		return nil, study.ErrNoTopics
	}

	out := make([]TopicSummary, 0, len(doc.Topics))
	for i := range doc.Topics {
		t := &doc.Topics[i]
		out = append(out, TopicSummary{
			ID:            t.ID,
			Name:          t.Name,
			Category:      t.Category,
			Difficulty:    t.Difficulty,
			TotalMinutes:  t.TotalMinutes(),
			LastStudied:   t.LastStudied(),
			NoteCount:     len(t.Notes),
			QuestionCount: len(t.Quiz.Questions),
			Attempts:      t.Quiz.TotalAttempts,
			BestScore:     t.Quiz.BestScore,
		})
	}
	return out, nil
}

// SuggestRevision returns the topic with the least total study time.
// Ties go to the topic that appears first.
func SuggestRevision(doc *model.Document) (*model.Topic, error) {
	if len(doc.Topics) == 0 {
		return nil, study.ErrNoTopics
	}

	best := &doc.Topics[0]
	bestMinutes := best.TotalMinutes()
	for i := 1; i < len(doc.Topics); i++ {
		if m := doc.Topics[i].TotalMinutes(); m < bestMinutes {
			best, bestMinutes = &doc.Topics[i], m
		}
	}
	return best, nil
}

// Render writes one card per summary under a dashboard heading. Styles are
// written as is; wrap w with theme.Writer when it may not be a terminal.
func Render(w io.Writer, summaries []TopicSummary) error {
	var b strings.Builder
	b.WriteString(theme.Title.Render("📊 DASHBOARD"))
	b.WriteString("\n")
	for _, s := range summaries {
		b.WriteString(theme.Card.Render(renderSummary(s)))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func renderSummary(s TopicSummary) string {
	lines := []string{
		theme.Value.Render(fmt.Sprintf("ID: %d | %s", s.ID, s.Name)),
		pair("Category", s.Category) + sep() + pair("Difficulty", s.Difficulty),
		pair("Study Time", fmt.Sprintf("%d min", s.TotalMinutes)) + sep() + pair("Last Studied", s.LastStudied),
		pair("Notes", fmt.Sprint(s.NoteCount)) + sep() + pair("Quiz Best Score", fmt.Sprintf("%d%%", s.BestScore)),
		theme.Hint.Render(fmt.Sprintf("%d questions, %d attempts", s.QuestionCount, s.Attempts)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func pair(label, value string) string {
	return theme.Label.Render(label+": ") + value
}

func sep() string {
	return theme.Label.Render(" | ")
}
