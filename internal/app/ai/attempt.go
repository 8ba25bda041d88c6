package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/PabloGalante/mawazo/internal/domain"
	"github.com/PabloGalante/mawazo/internal/observability"
)

// attempt is one way of getting an answer out of the host. It returns
// ErrPathAbsent when its interface is missing, and otherwise the name of the
// interface that answered or failed.
type attempt func(ctx context.Context) (out string, api string, err error)

// firstSuccess runs the attempts in order and returns the first sanitized,
// non-empty answer together with the api that produced it.
func firstSuccess(ctx context.Context, task string, attempts []attempt) (string, string, error) {
	log := observability.LoggerFromContext(ctx).With(zap.String("task", task))

	var last error
	for _, run := range attempts {
		start := time.Now()

		raw, api, err := run(ctx)
		if errors.Is(err, ErrPathAbsent) {
			continue
		}
		if err == nil {
			raw = Sanitize(raw)
			if raw == "" {
				err = &PromptError{API: api, Err: ErrEmptyOutput}
			}
		}
		if err != nil {
			log.Warn("ai path failed", zap.String("api", api), zap.Error(err))
			last = err
			continue
		}

		log.Info("ai path succeeded",
			zap.String("api", api),
			zap.Int64("elapsed_ms", time.Since(start).Milliseconds()))
		return raw, api, nil
	}

	return "", "", &ExhaustedError{Task: task, Last: last}
}

// sessionAttempt creates a session bound to instruction and prompts it once.
func sessionAttempt(host *domain.Host, instruction, prompt string) attempt {
	return func(ctx context.Context) (string, string, error) {
		s, err := NewSessionFactory(host).Create(ctx, instruction)
		if errors.Is(err, ErrNoSessionInterface) {
			return "", "", ErrPathAbsent
		}
		if err != nil {
			return "", "session", err
		}

		out, err := s.Prompt(ctx, prompt)
		if err != nil {
			return "", s.API, &PromptError{API: s.API, Err: err}
		}
		return out, s.API, nil
	}
}

// directAttempt wraps a single-shot host call. present is false when the
// interface is missing from the snapshot.
func directAttempt(api string, present bool, call func(ctx context.Context) (string, error)) attempt {
	return func(ctx context.Context) (string, string, error) {
		if !present {
			return "", api, ErrPathAbsent
		}
		out, err := call(ctx)
		if err != nil {
			return "", api, &PromptError{API: api, Err: err}
		}
		return out, api, nil
	}
}

// promptAttempt is the generic free-form prompt path every task ends with.
func promptAttempt(ns *domain.Namespace, prompt string) attempt {
	return directAttempt(APIPrompt, ns.Prompter != nil, func(ctx context.Context) (string, error) {
		return ns.Prompter.Prompt(ctx, prompt)
	})
}

// namespace never returns nil so attempts can check fields directly.
func namespace(host *domain.Host) *domain.Namespace {
	if host == nil || host.AI == nil {
		return &domain.Namespace{}
	}
	return host.AI
}

// faultMessage is the diagnostic appended to degraded results,
// or "" when the attempts ran out without any interface faulting.
func faultMessage(err error) string {
	return strings.TrimSpace(hostFault(err))
}
