package domain

import "context"

// The host surface is what the environment exposes for on-device style
// inference. Every piece of it may be missing, and what is present can change
// between two calls, so callers ask a HostProvider for a fresh snapshot.

// SessionOptions configures a new session.
type SessionOptions struct {
	SystemPrompt string
}

// Session is a conversation handle bound to a system instruction.
type Session interface {
	Prompt(ctx context.Context, text string) (string, error)
}

// SessionCreator creates sessions.
type SessionCreator interface {
	Create(ctx context.Context, opts SessionOptions) (Session, error)
}

// Prompter is a single-shot free-form prompt entry point.
type Prompter interface {
	Prompt(ctx context.Context, prompt string) (string, error)
}

type Rewriter interface {
	Rewrite(ctx context.Context, text string) (string, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

type Writer interface {
	Write(ctx context.Context, prompt string) (string, error)
}

type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

type Proofreader interface {
	Proofread(ctx context.Context, text string) (string, error)
}

// Namespace is the namespaced host surface. Nil fields are absent.
type Namespace struct {
	LanguageModel SessionCreator

	Prompter    Prompter
	Rewriter    Rewriter
	Summarizer  Summarizer
	Writer      Writer
	Translator  Translator
	Proofreader Proofreader
}

// Offers reports whether the namespace exposes anything usable.
func (n *Namespace) Offers() bool {
	if n == nil {
		return false
	}
	return n.LanguageModel != nil ||
		n.Prompter != nil ||
		n.Rewriter != nil ||
		n.Summarizer != nil ||
		n.Writer != nil ||
		n.Translator != nil ||
		n.Proofreader != nil
}

// Host is one snapshot of the environment.
type Host struct {
	// LanguageModel is the direct session-creation entry point.
	LanguageModel SessionCreator
	// AI is the namespaced variant.
	AI *Namespace
}

// Available reports whether at least one recognized interface is present.
func (h *Host) Available() bool {
	if h == nil {
		return false
	}
	return h.LanguageModel != nil || h.AI.Offers()
}

// HostProvider returns the current host snapshot, or nil when the process
// runs without any host integration.
type HostProvider interface {
	Host() *Host
}

// HostProviderFunc adapts a function to HostProvider.
type HostProviderFunc func() *Host

func (f HostProviderFunc) Host() *Host { return f() }
