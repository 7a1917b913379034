package study

import (
	"fmt"
	"strings"

	"github.com/abhisek/mededu/internal/model"
)

// QuestionOutcome records how a single question was answered.
type QuestionOutcome struct {
	Question string
	Expected string
	Given    string
	Correct  bool
}

// Result summarises one graded quiz run.
type Result struct {
	Correct  int
	Total    int
	Score    int // floor(Correct*100/Total)
	Outcomes []QuestionOutcome
	NewBest  bool
}

// Grade scores answers against the quiz without touching its history.
// answers[i] is matched to question i; missing answers count as wrong.
func Grade(quiz model.Quiz, answers []string) (Result, error) {
	total := len(quiz.Questions)
	if total == 0 {
		return Result{}, ErrEmptyQuiz
	}

	res := Result{Total: total, Outcomes: make([]QuestionOutcome, 0, total)}
	for i, q := range quiz.Questions {
		var given string
		if i < len(answers) {
			given = strings.TrimSpace(answers[i])
		}
		ok := strings.EqualFold(given, q.Answer)
		if ok {
			res.Correct++
		}
		res.Outcomes = append(res.Outcomes, QuestionOutcome{
			Question: q.Question,
			Expected: q.Answer,
			Given:    given,
			Correct:  ok,
		})
	}
	res.Score = res.Correct * 100 / total
	return res, nil
}

// TakeQuiz grades a completed run on the topic's quiz and records it:
// the attempt count goes up by one and the best score keeps the maximum.
// On error the document is left unchanged.
func TakeQuiz(doc *model.Document, topicID int, answers []string) (Result, error) {
	topic, err := FindTopic(doc, topicID)
	if err != nil {
		return Result{}, fmt.Errorf("take quiz: %w", err)
	}

	res, err := Grade(topic.Quiz, answers)
	if err != nil {
		return Result{}, fmt.Errorf("take quiz %q: %w", topic.Name, err)
	}

	topic.Quiz.TotalAttempts++
	if res.Score > topic.Quiz.BestScore {
		topic.Quiz.BestScore = res.Score
		res.NewBest = true
	}
	return res, nil
}
