package study

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mededu/internal/model"
)

var testNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func docWithQuiz(t *testing.T, questions ...model.QuizQuestion) *model.Document {
	t.Helper()
	doc := model.NewDocument()
	AddTopic(doc, TopicInput{Name: "cardiology", Questions: questions}, testNow)
	return doc
}

func TestAddTopicAssignsSequentialIDs(t *testing.T) {
	doc := model.NewDocument()
	SetProfile(doc, "ada", "lovelace", "pass boards")

	for i := 1; i <= 5; i++ {
		topic := AddTopic(doc, TopicInput{Name: "topic"}, testNow)
		assert.Equal(t, i, topic.ID)
	}

	for i, topic := range doc.Topics {
		assert.Equal(t, i+1, topic.ID)
	}
}

func TestAddTopicNormalizesFields(t *testing.T) {
	doc := model.NewDocument()
	topic := AddTopic(doc, TopicInput{
		Name:       "  renal physiology ",
		Category:   "PHYSIOLOGY",
		Difficulty: "hard",
	}, testNow)

	assert.Equal(t, "Renal Physiology", topic.Name)
	assert.Equal(t, "Physiology", topic.Category)
	assert.Equal(t, DifficultyHard, topic.Difficulty)
	assert.Equal(t, "2026-10-14", topic.CreatedAt)
	assert.NotNil(t, topic.StudySessions)
	assert.NotNil(t, topic.Notes)
	assert.NotNil(t, topic.Quiz.Questions)
	assert.Zero(t, topic.Quiz.TotalAttempts)
	assert.Zero(t, topic.Quiz.BestScore)
}

func TestAddTopicCopiesQuestions(t *testing.T) {
	questions := []model.QuizQuestion{{Question: "q", Answer: "a"}}
	doc := model.NewDocument()
	AddTopic(doc, TopicInput{Name: "x", Questions: questions}, testNow)

	questions[0].Answer = "changed"
	assert.Equal(t, "a", doc.Topics[0].Quiz.Questions[0].Answer)
}

func TestFindTopic(t *testing.T) {
	doc := model.NewDocument()

	_, err := FindTopic(doc, 1)
	require.ErrorIs(t, err, ErrNoTopics)

	AddTopic(doc, TopicInput{Name: "a"}, testNow)
	AddTopic(doc, TopicInput{Name: "b"}, testNow)

	topic, err := FindTopic(doc, 2)
	require.NoError(t, err)
	assert.Equal(t, "B", topic.Name)

	_, err = FindTopic(doc, 7)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.EqualError(t, err, "topic 7 not found")
}

func TestLogStudy(t *testing.T) {
	doc := docWithQuiz(t)

	sess, err := LogStudy(doc, 1, 25, testNow)
	require.NoError(t, err)
	assert.Equal(t, model.StudySession{Date: "2026-10-14", Minutes: 25}, *sess)

	_, err = LogStudy(doc, 1, 0, testNow)
	require.NoError(t, err)
	assert.Len(t, doc.Topics[0].StudySessions, 2)
}

func TestLogStudyRejects(t *testing.T) {
	tests := []struct {
		name    string
		doc     *model.Document
		id      int
		minutes int
		check   func(error) bool
	}{
		{"no topics", model.NewDocument(), 1, 5, func(err error) bool { return errors.Is(err, ErrNoTopics) }},
		{"unknown id", docWithQuiz(t), 9, 5, IsNotFound},
		{"negative minutes", docWithQuiz(t), 1, -1, func(err error) bool { return errors.Is(err, ErrNegativeMinutes) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LogStudy(tt.doc, tt.id, tt.minutes, testNow)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
			for _, topic := range tt.doc.Topics {
				assert.Empty(t, topic.StudySessions)
			}
		})
	}
}

func TestAddNote(t *testing.T) {
	doc := docWithQuiz(t)

	note, err := AddNote(doc, 1, "", "")
	require.NoError(t, err)
	assert.Equal(t, model.Note{}, *note)

	_, err = AddNote(doc, 1, "Murmurs", "Systolic vs diastolic")
	require.NoError(t, err)
	assert.Equal(t, "Murmurs", doc.Topics[0].Notes[1].Title)

	_, err = AddNote(doc, 3, "x", "y")
	assert.True(t, IsNotFound(err))
	assert.Len(t, doc.Topics[0].Notes, 2)
}

func TestSetProfileOverwritesAllFields(t *testing.T) {
	doc := model.NewDocument()
	SetProfile(doc, "ada", "lovelace", "first goal")
	p := SetProfile(doc, "grace", "", "second goal")

	assert.Equal(t, model.NewUserProfile("Grace", "", "second goal"), p)
	assert.Equal(t, p, doc.User)
}

func TestSetProfileBlankStillCreatesAccount(t *testing.T) {
	doc := model.NewDocument()
	require.False(t, doc.User.Exists())

	SetProfile(doc, "", "", "")
	assert.True(t, doc.User.Exists())
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  cardiology ", "Cardiology"},
		{"INTERNAL medicine", "Internal Medicine"},
		{"o'brien", "O'Brien"},
		{"x-ray findings", "X-Ray Findings"},
		{"3rd year", "3Rd Year"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, titleCase(tt.in))
		})
	}
}

func TestGradeScores(t *testing.T) {
	quiz := model.Quiz{Questions: []model.QuizQuestion{
		{Question: "Largest artery?", Answer: "Aorta"},
		{Question: "Pacemaker?", Answer: "SA node"},
		{Question: "Valves?", Answer: "4"},
	}}

	tests := []struct {
		name    string
		answers []string
		correct int
		score   int
	}{
		{"all correct any case", []string{"aorta", "sa NODE", " 4 "}, 3, 100},
		{"two of three floors", []string{"AORTA", "av node", "4"}, 2, 66},
		{"one of three floors", []string{"aorta", "", ""}, 1, 33},
		{"none", []string{"x", "y", "z"}, 0, 0},
		{"missing answers are wrong", []string{"aorta"}, 1, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Grade(quiz, tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.correct, res.Correct)
			assert.Equal(t, 3, res.Total)
			assert.Equal(t, tt.score, res.Score)
			assert.Len(t, res.Outcomes, 3)
		})
	}
}

func TestTakeQuizUpdatesHistory(t *testing.T) {
	doc := docWithQuiz(t,
		model.QuizQuestion{Question: "a?", Answer: "a"},
		model.QuizQuestion{Question: "b?", Answer: "b"},
	)

	res, err := TakeQuiz(doc, 1, []string{"a", "x"})
	require.NoError(t, err)
	assert.Equal(t, 50, res.Score)
	assert.True(t, res.NewBest)
	assert.Equal(t, 1, doc.Topics[0].Quiz.TotalAttempts)
	assert.Equal(t, 50, doc.Topics[0].Quiz.BestScore)

	res, err = TakeQuiz(doc, 1, []string{"x", "x"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Score)
	assert.False(t, res.NewBest)
	assert.Equal(t, 2, doc.Topics[0].Quiz.TotalAttempts)
	assert.Equal(t, 50, doc.Topics[0].Quiz.BestScore)

	_, err = TakeQuiz(doc, 1, []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Topics[0].Quiz.TotalAttempts)
	assert.Equal(t, 100, doc.Topics[0].Quiz.BestScore)
}

func TestTakeQuizEmptyQuizDoesNotMutate(t *testing.T) {
	doc := docWithQuiz(t)

	_, err := TakeQuiz(doc, 1, nil)
	require.ErrorIs(t, err, ErrEmptyQuiz)
	assert.Zero(t, doc.Topics[0].Quiz.TotalAttempts)
	assert.Zero(t, doc.Topics[0].Quiz.BestScore)
}

func TestTakeQuizUnknownTopic(t *testing.T) {
	doc := docWithQuiz(t, model.QuizQuestion{Question: "q", Answer: "a"})

	_, err := TakeQuiz(doc, 2, []string{"a"})
	assert.True(t, IsNotFound(err))
	assert.Zero(t, doc.Topics[0].Quiz.TotalAttempts)
}
