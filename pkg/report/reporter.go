package report

import (
	"fmt"
	"io"
	"strings"
)

const (
	prefixOk   = "[ OK ] "
	prefixWarn = "[WARN] "
	prefixFail = "[FAIL] "
)

// TextReporter writes check results as plain text lines, it also keeps every reported line.
type TextReporter struct {
	out   io.Writer
	lines []Line
}

type Level uint8

const (
	LevelInfo Level = iota
	LevelOk
	LevelWarn
	LevelFail
)

type Line struct {
	Level   Level
	Message string
}

func NewTextReporter(out io.Writer) *TextReporter {
	if out == nil {
		out = io.Discard
	}

	return &TextReporter{
		out: out,
	}
}

func (r *TextReporter) Info(format string, args ...interface{}) {
	r.write(LevelInfo, "", format, args...)
}

func (r *TextReporter) Ok(format string, args ...interface{}) {
	r.write(LevelOk, prefixOk, format, args...)
}

func (r *TextReporter) Warn(format string, args ...interface{}) {
	r.write(LevelWarn, prefixWarn, format, args...)
}

func (r *TextReporter) Fail(format string, args ...interface{}) {
	r.write(LevelFail, prefixFail, format, args...)
}

func (r *TextReporter) write(level Level, prefix, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	r.lines = append(r.lines, Line{Level: level, Message: message})
	fmt.Fprintf(r.out, "%v%v\n", prefix, message)
}

// Lines returns all reported messages of the given level.
func (r *TextReporter) Lines(level Level) []string {
	messages := []string{}

	for _, line := range r.lines {
		if line.Level == level {
			messages = append(messages, line.Message)
		}
	}

	return messages
}

// Contains reports whether any message of the given level contains substr.
func (r *TextReporter) Contains(level Level, substr string) bool {
	for _, message := range r.Lines(level) {
		if strings.Contains(message, substr) {
			return true
		}
	}

	return false
}
