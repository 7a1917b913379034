package timer

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mededu/internal/ui/theme"
)

const defaultBarWidth = 40

// countdownTickMsg is sent once per elapsed nominal minute.
type countdownTickMsg time.Time

// countdown is the Bubble Tea model behind TeaTimer.
type countdown struct {
	total int
	done  int
	tick  time.Duration
	width int
}

func newCountdown(minutes int, tick time.Duration) *countdown {
	return &countdown{total: minutes, tick: tick, width: defaultBarWidth}
}

func (c *countdown) Init() tea.Cmd {
	return c.tickCmd()
}

func (c *countdown) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case countdownTickMsg:
		c.done++
		if c.finished() {
			return c, tea.Quit
		}
		return c, c.tickCmd()

	case tea.WindowSizeMsg:
		c.width = min(defaultBarWidth, msg.Width-2)
	}
	// Key presses are ignored: a session cannot be cut short.
	return c, nil
}

// View is blank once the countdown finishes; TeaTimer prints the final line.
func (c *countdown) View() tea.View {
	if c.finished() {
		return tea.NewView("")
	}
	return tea.NewView(c.render())
}

func (c *countdown) finished() bool {
	return c.done >= c.total
}

func (c *countdown) render() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("⏱️ Study timer: %d minutes", c.total)))
	b.WriteString("\n\n")
	b.WriteString(renderBar(c.fraction(), c.width))
	b.WriteString("  ")
	b.WriteString(theme.Label.Render(progressText(c.done, c.total)))
	b.WriteString("\n")
	return b.String()
}

func (c *countdown) fraction() float64 {
	if c.total <= 0 {
		return 1
	}
	return float64(c.done) / float64(c.total)
}

func (c *countdown) tickCmd() tea.Cmd {
	return tea.Tick(c.tick, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}

// renderBar draws a horizontal bar of width cells, filled to fraction.
func renderBar(fraction float64, width int) string {
	if width < 4 {
		width = 4
	}

	filled := int(float64(width) * fraction)
	filled = max(0, min(filled, width))

	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", width-filled)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(" %3d%%", int(fraction*100)))
}
