package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Logger writes human readable output for interactive terminals
type Logger struct {
	out     io.Writer
	verbose bool
}

var (
	titleColor = color.New(color.Bold)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgHiBlack)
)

func NewLogger(verbose bool) *Logger {
	return NewLoggerWithWriter(os.Stdout, verbose)
}

func NewLoggerWithWriter(out io.Writer, verbose bool) *Logger {
	return &Logger{out: out, verbose: verbose}
}

func (l *Logger) Title(msg string, args ...any) {
	l.print(titleColor, "\n"+msg+"\n", args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.print(nil, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.print(warnColor, "Warning: "+msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.print(errorColor, "Error: "+msg, args...)
}

func (l *Logger) Debug(msg string, args ...any) {
	if !l.verbose {
		return
	}
	l.print(debugColor, msg, args...)
}

func (l *Logger) print(c *color.Color, msg string, args ...any) {
	line := fmt.Sprintf(msg, args...)
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	if c == nil {
		_, _ = fmt.Fprint(l.out, line)
		return
	}
	_, _ = c.Fprint(l.out, line)
}
