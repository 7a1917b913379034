// Package study holds the operations that mutate a study document: topics,
// study sessions, notes, quizzes and the learner profile. Every function works
// on an in-memory *model.Document; loading and saving is the caller's job.
package study

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abhisek/mededu/internal/model"
)

// Recognised difficulty labels. They are shown as hints only and never
// enforced.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// TopicInput carries the user-supplied fields of a new topic.
type TopicInput struct {
	Name       string
	Category   string
	Difficulty string
	Questions  []model.QuizQuestion
}

// FindTopic returns the topic with the given id using a linear scan.
func FindTopic(doc *model.Document, id int) (*model.Topic, error) {
	if len(doc.Topics) == 0 {
		return nil, ErrNoTopics
	}
	for i := range doc.Topics {
		if doc.Topics[i].ID == id {
			return &doc.Topics[i], nil
		}
	}
	return nil, &ErrTopicNotFound{ID: id}
}

// AddTopic appends a new topic whose id is one more than the current topic
// count. The returned pointer is only valid until the next append.
func AddTopic(doc *model.Document, in TopicInput, now time.Time) *model.Topic {
	questions := make([]model.QuizQuestion, len(in.Questions))
	copy(questions, in.Questions)

	doc.Topics = append(doc.Topics, model.Topic{
		ID:            len(doc.Topics) + 1,
		Name:          titleCase(in.Name),
		Category:      titleCase(in.Category),
		Difficulty:    titleCase(in.Difficulty),
		CreatedAt:     model.FormatDate(now),
		StudySessions: []model.StudySession{},
		Notes:         []model.Note{},
		Quiz:          model.Quiz{Questions: questions},
	})
	return &doc.Topics[len(doc.Topics)-1]
}

// titleCase trims s and title-cases every run of letters on its own, so
// "o'brien" becomes "O'Brien" and "x-ray" becomes "X-Ray".
func titleCase(s string) string {
	s = strings.TrimSpace(s)
	caser := cases.Title(language.Und)

	var b strings.Builder
	start := -1
	for i, r := range s {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(caser.String(s[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(caser.String(s[start:]))
	}
	return b.String()
}
