package llm

import (
	"context"
	"sync"

	"github.com/PabloGalante/mawazo/internal/domain"
)

// BackendFunc builds a backend, typically by dialing a model provider.
type BackendFunc func(ctx context.Context) (Backend, error)

// Connector builds the backend on demand and publishes it in a Registry, so a
// model that becomes reachable after start-up shows up on the next call.
type Connector struct {
	registry *Registry
	build    BackendFunc
	enabled  func(surface string) bool

	mu sync.Mutex
}

func NewConnector(registry *Registry, build BackendFunc, enabled func(surface string) bool) *Connector {
	return &Connector{
		registry: registry,
		build:    build,
		enabled:  enabled,
	}
}

// Connect publishes a host unless one is already published.
// On error the registry is left untouched.
func (c *Connector) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.registry.Host() != nil {
		return nil
	}

	b, err := c.build(ctx)
	if err != nil {
		return err
	}
	c.registry.Publish(hostOrEmpty(BuildHost(b, c.enabled)))
	return nil
}

// Disconnect withdraws the published host.
func (c *Connector) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registry.Withdraw()
}

// hostOrEmpty keeps a connected backend with no surfaces distinguishable
// from one that was never connected.
func hostOrEmpty(h *domain.Host) *domain.Host {
	if h == nil {
		return &domain.Host{}
	}
	return h
}
