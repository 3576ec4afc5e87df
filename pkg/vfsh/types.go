package vfsh

import (
	"errors"
	"strings"
)

// Level classifies a message for rendering.
type Level int

const (
	// LevelInfo marks successful or informational output.
	LevelInfo Level = iota
	// LevelError marks a failure the user should notice. State is unchanged by it.
	LevelError
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Message is one line of command output.
type Message struct {
	Level Level
	Text  string

	// Err classifies the outcome. Nil for plain success.
	Err error
}

// Info builds an info-level message.
func Info(text string) Message {
	return Message{Level: LevelInfo, Text: text}
}

// Notice builds an info-level message that still carries a classification,
// such as ErrAlreadyExists.
func Notice(text string, err error) Message {
	return Message{Level: LevelInfo, Text: text, Err: err}
}

// Failure builds an error-level message.
func Failure(text string, err error) Message {
	return Message{Level: LevelError, Text: text, Err: err}
}

// Result is everything a single command line produced, in order.
// An empty Result means the line was a no-op.
type Result struct {
	Messages []Message
}

// Add appends messages to the result.
func (r *Result) Add(msgs ...Message) {
	r.Messages = append(r.Messages, msgs...)
}

// Empty reports whether the command produced no output.
func (r Result) Empty() bool {
	return len(r.Messages) == 0
}

// HasError reports whether any message is error-level.
func (r Result) HasError() bool {
	for _, m := range r.Messages {
		if m.Level == LevelError {
			return true
		}
	}
	return false
}

// Err joins the classifications of all non-informational messages.
// Returns nil when the command fully succeeded.
func (r Result) Err() error {
	var errs []error
	for _, m := range r.Messages {
		if m.Err != nil && !IsInformational(m.Err) {
			errs = append(errs, m.Err)
		}
	}
	return errors.Join(errs...)
}

// Texts returns the message texts in order.
func (r Result) Texts() []string {
	texts := make([]string, 0, len(r.Messages))
	for _, m := range r.Messages {
		texts = append(texts, m.Text)
	}
	return texts
}

// String renders the result as newline-separated plain text.
func (r Result) String() string {
	return strings.Join(r.Texts(), "\n")
}

// Executor runs one raw command line against a shell session.
type Executor interface {
	Execute(line string) Result
}
