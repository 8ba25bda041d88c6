package llm

import (
	"github.com/PabloGalante/mawazo/internal/config"
	"github.com/PabloGalante/mawazo/internal/domain"
)

// Backend is a model that can serve every host surface.
type Backend interface {
	domain.SessionCreator
	domain.Prompter
	domain.Rewriter
	domain.Summarizer
	domain.Writer
	domain.Translator
	domain.Proofreader
}

// BuildHost exposes the surfaces of b for which enabled returns true.
// Nothing enabled yields a host that reports itself unavailable.
func BuildHost(b Backend, enabled func(surface string) bool) *domain.Host {
	if b == nil {
		return nil
	}
	if enabled == nil {
		enabled = func(string) bool { return true }
	}

	h := &domain.Host{}
	if enabled(config.SurfaceLanguageModel) {
		h.LanguageModel = b
	}

	ns := &domain.Namespace{}
	if enabled(config.SurfaceAILanguageModel) {
		ns.LanguageModel = b
	}
	if enabled(config.SurfaceAIPrompt) {
		ns.Prompter = b
	}
	if enabled(config.SurfaceAIRewrite) {
		ns.Rewriter = b
	}
	if enabled(config.SurfaceAISummarize) {
		ns.Summarizer = b
	}
	if enabled(config.SurfaceAIWrite) {
		ns.Writer = b
	}
	if enabled(config.SurfaceAITranslate) {
		ns.Translator = b
	}
	if enabled(config.SurfaceAIProofread) {
		ns.Proofreader = b
	}
	if ns.Offers() {
		h.AI = ns
	}
	return h
}
