package theme

import (
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
)

// Color palette, clinical blues and greens
var (
	Primary = lipgloss.Color("#0EA5E9") // Sky
	Accent  = lipgloss.Color("#F59E0B") // Amber
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
	BarFill = lipgloss.Color("#14B8A6") // Teal
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Label = lipgloss.NewStyle().
		Foreground(TextDim)

	Value = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Status lines
var (
	Ok = lipgloss.NewStyle().
		Foreground(Success)

	Fail = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Highlight = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// Card frames one dashboard entry.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 1)

// Progress bar segments
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(BarFill)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

// Writer wraps w so styled text is downsampled to the colours the
// destination supports. Output that is not a terminal gets plain text.
// Wrap the real stdout once; a wrapped writer is never a terminal itself.
func Writer(w io.Writer) io.Writer {
	return colorprofile.NewWriter(w, os.Environ())
}
