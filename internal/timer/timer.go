// Package timer runs the blocking countdown of a study session. One nominal
// minute lasts one tick; DefaultTick keeps sessions short enough to demo.
package timer

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-isatty"
)

// DefaultTick is the wall-clock length of one nominal study minute.
// Use time.Minute for real-time sessions.
const DefaultTick = time.Second

// Timer blocks for minutes ticks, reporting progress after each one.
// It offers the user no way to stop early; only ctx cancellation ends it.
type Timer interface {
	Run(ctx context.Context, minutes int, tick time.Duration) error
}

// New returns a TeaTimer when out is a terminal and plain is false,
// otherwise a LineTimer.
func New(out io.Writer, plain bool) Timer {
	if !plain && isTerminal(out) {
		return &TeaTimer{Out: out}
	}
	return &LineTimer{Out: out}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// LineTimer prints "i/N min done..." and rewinds the line after every tick.
type LineTimer struct {
	Out io.Writer
}

func (t *LineTimer) Run(ctx context.Context, minutes int, tick time.Duration) error {
	if minutes <= 0 {
		return nil
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for i := 1; i <= minutes; i++ {
		select {
		case <-ctx.Done():
			fmt.Fprintln(t.Out)
			return ctx.Err()
		case <-ticker.C:
		}
		fmt.Fprintf(t.Out, "%s\r", progressText(i, minutes))
	}
	fmt.Fprintln(t.Out)
	return nil
}

// TeaTimer renders the countdown as a Bubble Tea program and leaves a final
// "N/N min done..." line behind. Keyboard input is not read, so the shell
// keeps sole ownership of stdin.
type TeaTimer struct {
	Out io.Writer
}

func (t *TeaTimer) Run(ctx context.Context, minutes int, tick time.Duration) error {
	if minutes <= 0 {
		return nil
	}

	p := tea.NewProgram(newCountdown(minutes, tick),
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(t.Out),
	)
	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("run countdown: %w", err)
	}
	if c, ok := m.(*countdown); !ok || !c.finished() {
		return fmt.Errorf("run countdown: stopped early")
	}
	_, err = fmt.Fprintln(t.Out, progressText(minutes, minutes))
	return err
}

func progressText(done, total int) string {
	return fmt.Sprintf("%d/%d min done...", done, total)
}
