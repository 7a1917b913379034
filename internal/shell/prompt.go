package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// errInvalidNumber is returned when a numeric prompt gets non-numeric input.
type errInvalidNumber struct {
	Input string
	Err   error
}

func (e *errInvalidNumber) Error() string {
	return fmt.Sprintf("invalid number %q", e.Input)
}

func (e *errInvalidNumber) Unwrap() error { return e.Err }

// prompter writes questions to out and reads one line of answer from in.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// line prints label and returns the next input line without its newline.
// It returns io.EOF only when input ends before any text was read.
func (p *prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	s, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimRight(s, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// text is line with surrounding whitespace removed.
func (p *prompter) text(label string) (string, error) {
	s, err := p.line(label)
	return strings.TrimSpace(s), err
}

func (p *prompter) integer(label string) (int, error) {
	s, err := p.text(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &errInvalidNumber{Input: s, Err: err}
	}
	return n, nil
}

// yes reports whether the answer is "y" in any case.
func (p *prompter) yes(label string) (bool, error) {
	s, err := p.text(label)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(s, "y"), nil
}
