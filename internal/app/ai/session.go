package ai

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/PabloGalante/mawazo/internal/domain"
	"github.com/PabloGalante/mawazo/internal/observability"
)

// Names of the host interfaces, as reported in logs and probe results.
const (
	APILanguageModel   = "LanguageModel"
	APINamespacedModel = "ai.languageModel"
	APIPrompt          = "ai.prompt"
	APIRewrite         = "ai.rewrite"
	APISummarize       = "ai.summarize"
	APIWrite           = "ai.write"
	APITranslate       = "ai.translate"
	APIProofread       = "ai.proofread"
)

// Session is a freshly created host session and the interface that produced it.
type Session struct {
	domain.Session
	API string
}

// SessionFactory creates sessions from one host snapshot.
type SessionFactory struct {
	host *domain.Host
}

func NewSessionFactory(host *domain.Host) *SessionFactory {
	return &SessionFactory{host: host}
}

// Create tries the direct session creator, then the namespaced one.
// A creator that fails is not retried; the next one is tried instead.
func (f *SessionFactory) Create(ctx context.Context, instruction string) (*Session, error) {
	candidates := []struct {
		api     string
		creator domain.SessionCreator
	}{
		{APILanguageModel, f.directCreator()},
		{APINamespacedModel, f.namespacedCreator()},
	}

	log := observability.LoggerFromContext(ctx)

	var (
		tried bool
		last  error
	)
	for _, c := range candidates {
		if c.creator == nil {
			continue
		}
		tried = true

		s, err := c.creator.Create(ctx, domain.SessionOptions{SystemPrompt: instruction})
		if err == nil && s == nil {
			err = errors.New("host returned no session")
		}
		if err != nil {
			log.Warn("session creation failed", zap.String("api", c.api), zap.Error(err))
			last = &SessionCreationError{API: c.api, Err: err}
			continue
		}
		return &Session{Session: s, API: c.api}, nil
	}

	if !tried {
		return nil, ErrNoSessionInterface
	}
	return nil, last
}

func (f *SessionFactory) directCreator() domain.SessionCreator {
	if f.host == nil {
		return nil
	}
	return f.host.LanguageModel
}

func (f *SessionFactory) namespacedCreator() domain.SessionCreator {
	if f.host == nil || f.host.AI == nil {
		return nil
	}
	return f.host.AI.LanguageModel
}
