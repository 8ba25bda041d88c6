package llm

import (
	"sync/atomic"

	"github.com/PabloGalante/mawazo/internal/domain"
)

// Registry is a HostProvider whose host can be swapped while the process runs.
// Readers always get the host that was current at the time of the call.
type Registry struct {
	current atomic.Pointer[domain.Host]
}

func NewRegistry(initial *domain.Host) *Registry {
	r := &Registry{}
	r.current.Store(initial)
	return r
}

// Host implements domain.HostProvider.
func (r *Registry) Host() *domain.Host {
	return r.current.Load()
}

// Publish makes h the current host.
func (r *Registry) Publish(h *domain.Host) {
	r.current.Store(h)
}

// Withdraw removes the host; callers then see no AI integration.
func (r *Registry) Withdraw() {
	r.current.Store(nil)
}
