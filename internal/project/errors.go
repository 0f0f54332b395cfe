package project

import (
	"fmt"
	"strings"
)

// InvalidNameError is returned when a project name fails validation.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	if e.Name == "" {
		return "invalid project name: " + e.Reason
	}
	return fmt.Sprintf("invalid project name %q: %s", e.Name, e.Reason)
}

// InvalidTemplateError is returned for a --template value outside the known kinds.
type InvalidTemplateError struct {
	Value      string
	Suggestion string
}

func (e *InvalidTemplateError) Error() string {
	msg := fmt.Sprintf("invalid template %q: choose %s", e.Value, strings.Join(KindNames(), ", "))
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}
