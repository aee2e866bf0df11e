package config

import (
	"fmt"
	"strings"
	"time"
)

// MessageTemplate is the template for the commit message used when the user gives none
type MessageTemplate string

// DefaultMessageTemplate is the default commit message template
const DefaultMessageTemplate MessageTemplate = "Update: {date}"

// DefaultTimeFormat renders {date} like a zh-CN locale timestamp, e.g. 2026/10/19 14:03:05
const DefaultTimeFormat = "2006/1/2 15:04:05"

// NewMessageTemplate creates a new MessageTemplate from a string.
// An empty string yields the default; a blank one is rejected because it would render an empty message.
func NewMessageTemplate(template string) (MessageTemplate, error) {
	if template == "" {
		return DefaultMessageTemplate, nil
	}
	if strings.TrimSpace(template) == "" {
		return "", fmt.Errorf("message template cannot be blank")
	}
	return MessageTemplate(template), nil
}

// String returns the string representation of the template
func (m MessageTemplate) String() string {
	return string(m.WithDefault())
}

// WithDefault returns the template, or the default if blank
func (m MessageTemplate) WithDefault() MessageTemplate {
	if strings.TrimSpace(string(m)) == "" {
		return DefaultMessageTemplate
	}
	return m
}

// Render substitutes {date} with now formatted using layout
func (m MessageTemplate) Render(now time.Time, layout string) string {
	if layout == "" {
		layout = DefaultTimeFormat
	}
	return strings.TrimSpace(strings.ReplaceAll(m.String(), "{date}", now.Format(layout)))
}
