package shell

import (
	"context"
	"fmt"

	"github.com/abhisek/mededu/internal/model"
	"github.com/abhisek/mededu/internal/report"
	"github.com/abhisek/mededu/internal/study"
)

func (s *Shell) createAccount(ctx context.Context) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Let's create your account:")
	name, err := s.p.text("First Name: ")
	if err != nil {
		return err
	}
	surname, err := s.p.text("Surname: ")
	if err != nil {
		return err
	}
	goal, err := s.p.text("Why do you want to study medicine? ")
	if err != nil {
		return err
	}

	profile := study.SetProfile(doc, name, surname, goal)
	if err := s.store.Save(ctx, doc); err != nil {
		return err
	}
	s.userName = profile.Name
	fmt.Fprintln(s.out)
	s.say(fmt.Sprintf("✅ Account created! Welcome, %s!", profile.Name))
	return nil
}

func (s *Shell) updateProfile(ctx context.Context) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\n👤 Update Profile")
	name, err := s.p.text("Enter your name: ")
	if err != nil {
		return err
	}
	surname, err := s.p.text("Enter your surname: ")
	if err != nil {
		return err
	}
	goal, err := s.p.text("Enter your study goal: ")
	if err != nil {
		return err
	}

	profile := study.SetProfile(doc, name, surname, goal)
	if err := s.store.Save(ctx, doc); err != nil {
		return err
	}
	s.userName = profile.Name
	s.say("✅ Profile updated successfully!")
	return nil
}

func (s *Shell) addTopic(ctx context.Context) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	var in study.TopicInput
	if in.Name, err = s.p.text("Topic name: "); err != nil {
		return err
	}
	if in.Category, err = s.p.text("Category: "); err != nil {
		return err
	}
	label := fmt.Sprintf("Difficulty (%s/%s/%s): ", study.DifficultyEasy, study.DifficultyMedium, study.DifficultyHard)
	if in.Difficulty, err = s.p.text(label); err != nil {
		return err
	}

	withQuiz, err := s.p.yes("Do you want to add a quiz for this topic? (y/n): ")
	if err != nil {
		return err
	}
	for withQuiz {
		question, err := s.p.line("Enter question: ")
		if err != nil {
			return err
		}
		answer, err := s.p.line("Enter answer: ")
		if err != nil {
			return err
		}
		in.Questions = append(in.Questions, model.QuizQuestion{Question: question, Answer: answer})

		if withQuiz, err = s.p.yes("Add another question? (y/n): "); err != nil {
			return err
		}
	}

	topic := study.AddTopic(doc, in, s.now())
	if err := s.store.Save(ctx, doc); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "topic created", "id", topic.ID, "questions", len(in.Questions))
	s.say("✅ Topic created!")
	return nil
}

// selectTopic shows the dashboard and asks for a topic id. It fails before
// prompting when there are no topics.
func (s *Shell) selectTopic(doc *model.Document, label string) (*model.Topic, error) {
	if len(doc.Topics) == 0 {
		return nil, study.ErrNoTopics
	}
	if err := s.renderDashboard(doc); err != nil {
		return nil, err
	}
	id, err := s.p.integer(label)
	if err != nil {
		return nil, err
	}
	return study.FindTopic(doc, id)
}

func (s *Shell) logStudy(ctx context.Context) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	topic, err := s.selectTopic(doc, "Enter Topic ID to log study: ")
	if err != nil {
		return err
	}

	minutes, err := s.p.integer("Minutes to study (timer will start): ")
	if err != nil {
		return err
	}
	if minutes < 0 {
		return study.ErrNegativeMinutes
	}

	fmt.Fprintf(s.out, "⏱️ Study timer started for %d minutes...\n", minutes)
	if err := s.timer.Run(ctx, minutes, s.tick); err != nil {
		return fmt.Errorf("study timer: %w", err)
	}
	s.say("✅ Timer finished! Good job!")

	if _, err := study.LogStudy(doc, topic.ID, minutes, s.now()); err != nil {
		return err
	}
	return s.store.Save(ctx, doc)
}

func (s *Shell) addNote(ctx context.Context) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	topic, err := s.selectTopic(doc, "Enter Topic ID to add note: ")
	if err != nil {
		return err
	}

	title, err := s.p.text("Note title: ")
	if err != nil {
		return err
	}
	content, err := s.p.text("Note content: ")
	if err != nil {
		return err
	}

	if _, err := study.AddNote(doc, topic.ID, title, content); err != nil {
		return err
	}
	if err := s.store.Save(ctx, doc); err != nil {
		return err
	}
	s.say("📝 Note saved!")
	return nil
}

func (s *Shell) takeQuiz(ctx context.Context) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	topic, err := s.selectTopic(doc, "Enter Topic ID to take quiz: ")
	if err != nil {
		return err
	}
	if len(topic.Quiz.Questions) == 0 {
		return study.ErrEmptyQuiz
	}

	fmt.Fprintf(s.out, "\n📝 Starting quiz for %s:\n", topic.Name)
	answers := make([]string, 0, len(topic.Quiz.Questions))
	for _, q := range topic.Quiz.Questions {
		ans, err := s.p.text(q.Question + " ")
		if err != nil {
			return err
		}
		answers = append(answers, ans)
	}

	res, err := study.TakeQuiz(doc, topic.ID, answers)
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, doc); err != nil {
		return err
	}

	fmt.Fprintln(s.out)
	s.say(fmt.Sprintf("✅ You scored %d%%", res.Score))
	if res.NewBest {
		s.say(fmt.Sprintf("🏆 New best score for %s!", topic.Name))
	}
	return nil
}

func (s *Shell) dashboard(ctx context.Context) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	return s.renderDashboard(doc)
}

func (s *Shell) renderDashboard(doc *model.Document) error {
	rows, err := report.Dashboard(doc)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out)
	return report.Render(s.out, rows)
}

func (s *Shell) suggestRevision(ctx context.Context) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	topic, err := report.SuggestRevision(doc)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "📌 Suggested revision topic: %s\n", topic.Name)
	return nil
}
