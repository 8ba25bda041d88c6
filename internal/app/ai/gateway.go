package ai

import (
	"context"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"github.com/PabloGalante/mawazo/internal/domain"
	"github.com/PabloGalante/mawazo/internal/observability"
)

// notEnabled is the reason reported when no host interface exists at all.
const notEnabled = "Chrome AI APIs not enabled"

// noSuitableAPI is the reason reported when the host exists but none of a
// task's paths does.
const noSuitableAPI = "No suitable API found"

// Gateway is the only way the rest of the service talks to the host AI.
// It holds no per-call state: every call takes a fresh host snapshot and
// creates its own session.
type Gateway struct {
	hosts domain.HostProvider
	intn  func(n int) int
}

// NewGateway builds a gateway over hosts. A nil provider behaves like an
// environment without any AI integration.
func NewGateway(hosts domain.HostProvider) *Gateway {
	return &Gateway{
		hosts: hosts,
		intn:  rand.IntN,
	}
}

// IsAvailable reports whether the host currently exposes any recognized interface.
func (g *Gateway) IsAvailable() bool {
	return g.host().Available()
}

func (g *Gateway) host() *domain.Host {
	if g == nil || g.hosts == nil {
		return nil
	}
	return g.hosts.Host()
}

// snapshot returns the host for one task call, or nil if the capability is absent.
func (g *Gateway) snapshot(ctx context.Context, task string) *domain.Host {
	h := g.host()
	if !h.Available() {
		observability.LoggerFromContext(ctx).Info("using fallback",
			zap.String("task", task), zap.Error(ErrCapabilityAbsent))
		return nil
	}
	return h
}

// ProbeResult describes a live check of the host.
type ProbeResult struct {
	Available bool   `json:"available"`
	Result    string `json:"result,omitempty"`
	API       string `json:"api,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Probe sends a test prompt through the first working session or prompt interface.
func (g *Gateway) Probe(ctx context.Context) ProbeResult {
	host := g.snapshot(ctx, "probe")
	if host == nil {
		return ProbeResult{Error: "Chrome AI not available"}
	}

	attempts := []attempt{
		sessionAttempt(host, probeInstruction, probePrompt),
		promptAttempt(namespace(host), probePrompt),
	}
	out, api, err := firstSuccess(ctx, "probe", attempts)
	if err != nil {
		msg := faultMessage(err)
		if msg == "" {
			msg = noSuitableAPI
		}
		return ProbeResult{Error: msg}
	}

	return ProbeResult{Available: true, Result: out, API: api}
}

// WarmUpResult reports whether model provisioning was triggered.
type WarmUpResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WarmUp creates a session and sends a trivial prompt so the host starts
// provisioning its model. Faults that look like provisioning in progress count
// as success.
func (g *Gateway) WarmUp(ctx context.Context) WarmUpResult {
	host := g.snapshot(ctx, "warm_up")
	if host == nil {
		return WarmUpResult{Error: "Chrome AI not available"}
	}

	_, _, err := firstSuccess(ctx, "warm_up", []attempt{
		sessionAttempt(host, probeInstruction, "test"),
	})
	if err == nil {
		return WarmUpResult{Success: true, Message: "Model download initiated successfully"}
	}

	msg := faultMessage(err)
	if msg == "" {
		return WarmUpResult{Error: "LanguageModel API not available"}
	}
	if looksLikeProvisioning(msg) {
		return WarmUpResult{Success: true, Message: "Model download initiated - this may take a few minutes"}
	}
	return WarmUpResult{Error: msg}
}

func looksLikeProvisioning(msg string) bool {
	for _, hint := range []string{"download", "model", "initialization"} {
		if strings.Contains(msg, hint) {
			return true
		}
	}
	return false
}
