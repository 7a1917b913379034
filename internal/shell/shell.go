// Package shell implements the interactive numbered menu. Every menu action
// is one load/mutate/save cycle against the injected store.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/mededu/internal/store"
	"github.com/abhisek/mededu/internal/study"
	"github.com/abhisek/mededu/internal/timer"
	"github.com/abhisek/mededu/internal/ui/theme"
)

const banner = `🩺 Welcome to MedEdu Companion!
"Medicine is a science of uncertainty and an art of probability." – William Osler`

// Options configures a Shell.
type Options struct {
	Store  store.Store
	Timer  timer.Timer
	Tick   time.Duration // wall-clock length of one study minute
	In     io.Reader
	Out    io.Writer
	Now    func() time.Time
	Logger *slog.Logger
}

// Shell routes menu choices to study operations.
type Shell struct {
	store  store.Store
	timer  timer.Timer
	tick   time.Duration
	p      *prompter
	out    io.Writer
	now    func() time.Time
	logger *slog.Logger

	userName string
}

type menuItem struct {
	key   string
	label string
	run   func(*Shell, context.Context) error
}

var menu = []menuItem{
	{"1", "Set / Update Profile", (*Shell).updateProfile},
	{"2", "Add Topic", (*Shell).addTopic},
	{"3", "Log Study Session", (*Shell).logStudy},
	{"4", "Add Note", (*Shell).addNote},
	{"5", "View Dashboard", (*Shell).dashboard},
	{"6", "Suggest Revision Topic", (*Shell).suggestRevision},
	{"7", "Take Quiz", (*Shell).takeQuiz},
	{"8", "Exit", nil},
}

// New creates a Shell. Store, In and Out are required.
func New(opts Options) *Shell {
	if opts.Timer == nil {
		opts.Timer = timer.New(opts.Out, true)
	}
	if opts.Tick <= 0 {
		opts.Tick = timer.DefaultTick
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Shell{
		store:  opts.Store,
		timer:  opts.Timer,
		tick:   opts.Tick,
		p:      newPrompter(opts.In, opts.Out),
		out:    opts.Out,
		now:    opts.Now,
		logger: opts.Logger,
	}
}

// Run shows the welcome banner, creates the account on first use and then
// serves the menu until the user exits or input ends. Storage failures end
// the loop and are returned.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintf(s.out, "\n%s\n\n", theme.Title.Render(banner))

	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	s.userName = doc.User.Name
	if !doc.User.Exists() {
		if err := s.handle(s.createAccount(ctx)); err != nil {
			return s.exit(err)
		}
	}

	for {
		s.printMenu()
		choice, err := s.p.text("Choose: ")
		if err != nil {
			return s.exit(err)
		}

		item, ok := lookup(choice)
		if !ok {
			s.fail("Invalid choice")
			continue
		}
		if item.run == nil {
			s.say("👋 See you next time!")
			return nil
		}

		s.logger.DebugContext(ctx, "menu action", "choice", item.key, "label", item.label)
		if err := s.handle(item.run(s, ctx)); err != nil {
			return s.exit(err)
		}
	}
}

func lookup(choice string) (menuItem, bool) {
	for _, item := range menu {
		if item.key == choice {
			return item, true
		}
	}
	return menuItem{}, false
}

// handle reports recoverable errors to the user and passes fatal ones on.
func (s *Shell) handle(err error) error {
	if err == nil {
		return nil
	}
	if msg, ok := userMessage(err); ok {
		s.fail(msg)
		return nil
	}
	return err
}

// exit turns end of input into a clean shutdown.
func (s *Shell) exit(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		s.say("👋 See you next time!")
		return nil
	}
	return err
}

// userMessage maps recoverable operation errors to the text shown to the user.
func userMessage(err error) (string, bool) {
	var invalid *errInvalidNumber
	switch {
	case errors.Is(err, study.ErrNoTopics):
		return "No topics yet. Add a topic first.", true
	case study.IsNotFound(err):
		return "Topic not found", true
	case errors.Is(err, study.ErrEmptyQuiz):
		return "Quiz not available for this topic", true
	case errors.Is(err, study.ErrNegativeMinutes):
		return "Minutes must not be negative", true
	case errors.As(err, &invalid):
		return fmt.Sprintf("Please enter a whole number, got %q", invalid.Input), true
	}
	return "", false
}

func (s *Shell) printMenu() {
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("🧠 MedEdu Companion - Hello %s!", s.userName)))
	for _, item := range menu {
		b.WriteString("\n")
		b.WriteString(theme.Highlight.Render(item.key + "."))
		b.WriteString(" " + item.label)
	}
	fmt.Fprintf(s.out, "\n%s\n\n", b.String())
}

func (s *Shell) say(msg string) {
	fmt.Fprintln(s.out, theme.Ok.Render(msg))
}

func (s *Shell) fail(msg string) {
	fmt.Fprintln(s.out, theme.Fail.Render("❌ "+msg))
}
