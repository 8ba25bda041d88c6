package ai

import (
	"context"

	"github.com/PabloGalante/mawazo/internal/domain"
)

type fakeSession struct {
	reply   string
	err     error
	prompts []string
}

func (s *fakeSession) Prompt(_ context.Context, text string) (string, error) {
	s.prompts = append(s.prompts, text)
	return s.reply, s.err
}

type fakeCreator struct {
	session *fakeSession
	err     error
	calls   int
	opts    []domain.SessionOptions
}

func newCreator(reply string, promptErr error) *fakeCreator {
	return &fakeCreator{session: &fakeSession{reply: reply, err: promptErr}}
}

func (c *fakeCreator) Create(_ context.Context, opts domain.SessionOptions) (domain.Session, error) {
	c.calls++
	c.opts = append(c.opts, opts)
	if c.err != nil {
		return nil, c.err
	}
	return c.session, nil
}

// fakeOps implements every single-shot namespaced interface.
type fakeOps struct {
	reply string
	err   error
	calls []string
}

func (f *fakeOps) record(call string) (string, error) {
	f.calls = append(f.calls, call)
	return f.reply, f.err
}

func (f *fakeOps) Prompt(_ context.Context, prompt string) (string, error) {
	return f.record("prompt:" + prompt)
}

func (f *fakeOps) Rewrite(_ context.Context, text string) (string, error) {
	return f.record("rewrite:" + text)
}

func (f *fakeOps) Summarize(_ context.Context, text string) (string, error) {
	return f.record("summarize:" + text)
}

func (f *fakeOps) Write(_ context.Context, prompt string) (string, error) {
	return f.record("write:" + prompt)
}

func (f *fakeOps) Translate(_ context.Context, text, lang string) (string, error) {
	return f.record("translate:" + lang + ":" + text)
}

func (f *fakeOps) Proofread(_ context.Context, text string) (string, error) {
	return f.record("proofread:" + text)
}

func staticHost(h *domain.Host) domain.HostProvider {
	return domain.HostProviderFunc(func() *domain.Host { return h })
}

// namespaceWith exposes every single-shot interface backed by ops.
func namespaceWith(ops *fakeOps) *domain.Namespace {
	return &domain.Namespace{
		Prompter:    ops,
		Rewriter:    ops,
		Summarizer:  ops,
		Writer:      ops,
		Translator:  ops,
		Proofreader: ops,
	}
}
