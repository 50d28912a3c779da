package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// Test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

type lineResult struct {
	line string
	err  error
}

type prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int

	// pending holds a background read whose line has not been consumed.
	pending <-chan lineResult
}

func newPrompter(in io.Reader, out io.Writer, fd int) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out, fd: fd}
}

// readLine returns one trimmed line. A final line without newline is
// returned before io.EOF.
func (p *prompter) readLine() (string, error) {
	if p.pending != nil {
		res := <-p.pending
		p.pending = nil
		return res.line, res.err
	}
	return p.read()
}

// readLineAsync reads the next line in the background. A caller that stops
// waiting must hand the channel back with handOff.
func (p *prompter) readLineAsync() <-chan lineResult {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := p.read()
		ch <- lineResult{line: line, err: err}
	}()
	return ch
}

// handOff makes the next readLine take its line from an abandoned
// background read instead of racing it for input.
func (p *prompter) handOff(ch <-chan lineResult) {
	p.pending = ch
}

func (p *prompter) read() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *prompter) ask(label string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "%s: ", label); err != nil {
		return "", err
	}
	return p.readLine()
}

// askPassword reads without echo on a terminal and falls back to a plain
// line when input is piped.
func (p *prompter) askPassword(label string) (string, error) {
	if !isTerminal(p.fd) {
		return p.ask(label)
	}
	if _, err := fmt.Fprintf(p.out, "%s: ", label); err != nil {
		return "", err
	}
	pw, err := readPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
