package study

import (
	"errors"
	"fmt"
)

// ErrNoTopics is returned by operations that need at least one topic.
var ErrNoTopics = errors.New("no topics yet, add a topic first")

// ErrEmptyQuiz is returned when a quiz with no questions is taken.
var ErrEmptyQuiz = errors.New("quiz not available for this topic")

// ErrNegativeMinutes is returned when a study session would have a
// negative duration.
var ErrNegativeMinutes = errors.New("minutes must not be negative")

// ErrTopicNotFound indicates that no topic carries the requested id.
type ErrTopicNotFound struct {
	ID int
}

func (e *ErrTopicNotFound) Error() string {
	return fmt.Sprintf("topic %d not found", e.ID)
}

// IsNotFound reports whether err is, or wraps, an *ErrTopicNotFound.
func IsNotFound(err error) bool {
	var nf *ErrTopicNotFound
	return errors.As(err, &nf)
}
