package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// DateLayout is the on-disk format of every date in the document.
const DateLayout = "2006-01-02"

// NeverStudied is reported as the last-studied date of a topic with no sessions.
const NeverStudied = "Never"

// Document is the complete persisted state, loaded and saved as one unit.
type Document struct {
	User   UserProfile `json:"user"`
	Topics []Topic     `json:"topics"`
}

// UserProfile is the singleton learner profile. The zero value means no
// account has been created yet; an account may still have every field blank.
type UserProfile struct {
	Name    string
	Surname string
	Goal    string

	created bool
}

// NewUserProfile returns an existing profile with the given fields.
func NewUserProfile(name, surname, goal string) UserProfile {
	return UserProfile{Name: name, Surname: surname, Goal: goal, created: true}
}

// Exists reports whether an account has been created.
func (p UserProfile) Exists() bool {
	return p.created || p.Name != "" || p.Surname != "" || p.Goal != ""
}

type profileJSON struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Goal    string `json:"goal"`
}

// MarshalJSON writes {} for a missing account and every key otherwise.
func (p UserProfile) MarshalJSON() ([]byte, error) {
	if !p.Exists() {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(profileJSON{Name: p.Name, Surname: p.Surname, Goal: p.Goal}); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON treats any object with at least one key as an existing
// account, even when every value is blank.
func (p *UserProfile) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var v profileJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = UserProfile{Name: v.Name, Surname: v.Surname, Goal: v.Goal, created: len(fields) > 0}
	return nil
}

// Topic is a subject of study with its own sessions, notes and quiz.
type Topic struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Category      string         `json:"category"`
	Difficulty    string         `json:"difficulty"` // Easy, Medium or Hard by convention
	CreatedAt     string         `json:"created_at"`
	StudySessions []StudySession `json:"study_sessions"`
	Notes         []Note         `json:"notes"`
	Quiz          Quiz           `json:"quiz"`
}

// TotalMinutes sums the duration of every recorded session.
func (t *Topic) TotalMinutes() int {
	total := 0
	for _, s := range t.StudySessions {
		total += s.Minutes
	}
	return total
}

// LastStudied returns the date of the most recent session, or NeverStudied.
func (t *Topic) LastStudied() string {
	if len(t.StudySessions) == 0 {
		return NeverStudied
	}
	return t.StudySessions[len(t.StudySessions)-1].Date
}

// StudySession is one completed, timed study block.
type StudySession struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

// Note is a titled free-text note attached to a topic.
type Note struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Quiz holds a topic's questions and its scoring history.
type Quiz struct {
	Questions     []QuizQuestion `json:"questions"`
	TotalAttempts int            `json:"total_attempts"`
	BestScore     int            `json:"best_score"` // 0-100, never decreases
}

// QuizQuestion pairs a prompt with its expected answer.
type QuizQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NewDocument returns the default document used when nothing is persisted.
func NewDocument() *Document {
	return &Document{Topics: []Topic{}}
}

// Normalize replaces nil collections with empty ones so they serialise
// as [] rather than null.
func (d *Document) Normalize() {
	if d.Topics == nil {
		d.Topics = []Topic{}
	}
	for i := range d.Topics {
		t := &d.Topics[i]
		if t.StudySessions == nil {
			t.StudySessions = []StudySession{}
		}
		if t.Notes == nil {
			t.Notes = []Note{}
		}
		if t.Quiz.Questions == nil {
			t.Quiz.Questions = []QuizQuestion{}
		}
	}
}

// FormatDate renders t in the document date layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
