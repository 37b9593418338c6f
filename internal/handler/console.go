package handler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned when the operator's input ends mid-session.
var ErrInputClosed = errors.New("input closed")

// Console is the operator's terminal: prompts go to out and answers are read
// line by line from in.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a Console over the given streams.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Out returns the writer all output goes to.
func (c *Console) Out() io.Writer { return c.out }

// Prompt prints label and returns the next input line without its line
// ending. A final line without a newline is still returned; after that,
// ErrInputClosed.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Pause waits for the operator to press Enter.
func (c *Console) Pause() error {
	_, err := c.Prompt("\nPress Enter to continue...")
	return err
}
