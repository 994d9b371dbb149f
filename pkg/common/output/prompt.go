package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"golang.org/x/term"
)

var ErrCancelled = errors.New("prompt cancelled")

// Prompter asks questions with survey when attached to a terminal. Piped input
// is read one line per answer so scripts and tests can answer prompts.
type Prompter struct {
	in    io.Reader
	out   io.Writer
	lines *bufio.Reader
}

// NewPrompter reads answers from in and writes questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// Confirm asks a yes/no question defaulting to no.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	return p.ConfirmWithDefault(prompt, false)
}

func (p *Prompter) ConfirmWithDefault(prompt string, def bool) (bool, error) {
	if stdio, ok := p.terminal(); ok {
		var confirmed bool
		err := survey.AskOne(&survey.Confirm{Message: prompt, Default: def}, &confirmed, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
		return confirmed, wrapSurveyError(err)
	}

	suffix := "[y/N]"
	if def {
		suffix = "[Y/n]"
	}
	fmt.Fprintf(p.out, "%s %s: ", prompt, suffix)
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid answer %q, expected yes or no", line)
	}
}

// InputHiddenString reads a secret. validator, if set, rejects an answer; on a
// terminal survey asks again, on piped input the error is returned.
func (p *Prompter) InputHiddenString(message, help string, validator func(string) error) (string, error) {
	if stdio, ok := p.terminal(); ok {
		var answer string
		opts := []survey.AskOpt{survey.WithStdio(stdio.In, stdio.Out, stdio.Err)}
		if validator != nil {
			opts = append(opts, survey.WithValidator(func(ans interface{}) error {
				s, _ := ans.(string)
				return validator(strings.TrimSpace(s))
			}))
		}
		err := survey.AskOne(&survey.Password{Message: message, Help: help}, &answer, opts...)
		return strings.TrimSpace(answer), wrapSurveyError(err)
	}

	fmt.Fprintf(p.out, "%s ", message)
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if validator != nil {
		if err := validator(line); err != nil {
			return "", err
		}
	}
	return line, nil
}

// terminal returns survey stdio when both input and output are terminals.
func (p *Prompter) terminal() (terminal.Stdio, bool) {
	in, ok := p.in.(terminal.FileReader)
	if !ok || !term.IsTerminal(int(in.Fd())) {
		return terminal.Stdio{}, false
	}
	out, ok := p.out.(terminal.FileWriter)
	if !ok || !term.IsTerminal(int(out.Fd())) {
		return terminal.Stdio{}, false
	}
	return terminal.Stdio{In: in, Out: out, Err: out}, true
}

func (p *Prompter) readLine() (string, error) {
	if p.lines == nil {
		p.lines = bufio.NewReader(p.in)
	}
	line, err := p.lines.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: no input", ErrCancelled)
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func wrapSurveyError(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return fmt.Errorf("%w: interrupted", ErrCancelled)
	}
	return err
}
