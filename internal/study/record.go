package study

import (
	"fmt"
	"time"

	"github.com/abhisek/mededu/internal/model"
)

// LogStudy appends a session of the given length, dated now, to the topic.
func LogStudy(doc *model.Document, topicID, minutes int, now time.Time) (*model.StudySession, error) {
	if minutes < 0 {
		return nil, fmt.Errorf("log study: %w", ErrNegativeMinutes)
	}
	topic, err := FindTopic(doc, topicID)
	if err != nil {
		return nil, fmt.Errorf("log study: %w", err)
	}

	topic.StudySessions = append(topic.StudySessions, model.StudySession{
		Date:    model.FormatDate(now),
		Minutes: minutes,
	})
	return &topic.StudySessions[len(topic.StudySessions)-1], nil
}

// AddNote appends a note verbatim. Empty titles and contents are allowed.
func AddNote(doc *model.Document, topicID int, title, content string) (*model.Note, error) {
	topic, err := FindTopic(doc, topicID)
	if err != nil {
		return nil, fmt.Errorf("add note: %w", err)
	}

	topic.Notes = append(topic.Notes, model.Note{Title: title, Content: content})
	return &topic.Notes[len(topic.Notes)-1], nil
}

// SetProfile creates or overwrites the profile. Name and surname are
// title-cased; blank fields are kept as given.
func SetProfile(doc *model.Document, name, surname, goal string) model.UserProfile {
	doc.User = model.NewUserProfile(titleCase(name), titleCase(surname), goal)
	return doc.User
}
