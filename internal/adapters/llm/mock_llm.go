package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/PabloGalante/mawazo/internal/domain"
)

// MockHost answers every surface deterministically, for local runs and tests.
type MockHost struct{}

func NewMockHost() *MockHost {
	return &MockHost{}
}

func (m *MockHost) Create(ctx context.Context, opts domain.SessionOptions) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &mockSession{system: opts.SystemPrompt}, nil
}

type mockSession struct {
	system string
}

// Prompt picks a canned reply from the session's instruction so each task
// gets something shaped like what a model would return.
func (s *mockSession) Prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	sys := strings.ToLower(s.system)
	text = payload(text)
	switch {
	case strings.Contains(sys, "mood analyzer"):
		return "reflective, hopeful", nil
	case strings.Contains(sys, "translation machine"):
		return "[translated] " + text, nil
	case strings.Contains(sys, "spelling and grammar"):
		return strings.Join(strings.Fields(text), " "), nil
	case strings.Contains(sys, "summarize"):
		return "**Summary:** " + firstWords(text, 12), nil
	case strings.Contains(sys, "comedy writer"):
		return text + " And somehow that was the calm part of the day.", nil
	case strings.Contains(sys, "narrator"):
		return "Once upon a time, someone kept a journal. " + firstWords(text, 20), nil
	case strings.Contains(text, "AI is working"):
		return "AI is working", nil
	default:
		return fmt.Sprintf("I hear you. You wrote %q.", firstWords(text, 12)), nil
	}
}

func (m *MockHost) Prompt(ctx context.Context, prompt string) (string, error) {
	return (&mockSession{}).Prompt(ctx, prompt)
}

func (m *MockHost) Rewrite(_ context.Context, text string) (string, error) {
	return text + " (rewritten)", nil
}

func (m *MockHost) Summarize(_ context.Context, text string) (string, error) {
	return "Summary: " + firstWords(text, 12), nil
}

func (m *MockHost) Write(_ context.Context, prompt string) (string, error) {
	return "A story in " + firstWords(prompt, 8), nil
}

func (m *MockHost) Translate(_ context.Context, text, targetLang string) (string, error) {
	return fmt.Sprintf("[%s] %s", targetLang, text), nil
}

func (m *MockHost) Proofread(_ context.Context, text string) (string, error) {
	return strings.Join(strings.Fields(text), " "), nil
}

// payload drops the task phrasing in front of the user's text.
func payload(text string) string {
	if i := strings.Index(text, ":\n\n"); i >= 0 {
		return text[i+3:]
	}
	if i := strings.Index(text, ": "); i >= 0 {
		return text[i+2:]
	}
	return text
}

func firstWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) > n {
		words = append(words[:n:n], "...")
	}
	return strings.Join(words, " ")
}
