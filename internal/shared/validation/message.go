// Package validation carries the coded messages domain operations return for
// expected failures. Domain code never panics on business conditions; it
// returns a *Message (or nil) and lets the caller classify it.
package validation

import "fmt"

// Message is a coded business-rule failure. Code is a stable machine-readable
// identifier, Text the human-readable explanation, Params any structured data
// a client needs to act on the failure (offending ids, limits).
type Message struct {
	Code   string
	Text   string
	Params map[string]any
}

// New creates a message with the given code and text.
func New(code, text string) *Message {
	return &Message{Code: code, Text: text}
}

// Newf creates a message with a formatted text.
func Newf(code, format string, args ...any) *Message {
	return &Message{Code: code, Text: fmt.Sprintf(format, args...)}
}

// WithParam attaches a structured parameter and returns the message.
func (m *Message) WithParam(key string, value any) *Message {
	if m.Params == nil {
		m.Params = make(map[string]any)
	}
	m.Params[key] = value
	return m
}

// Error implements the error interface.
func (m *Message) Error() string {
	if m == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", m.Code, m.Text)
}
