package bgs

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// ErrNotFound is returned by Registry.Create when no constructor is
// registered under the requested name.
var ErrNotFound = errors.New("bgs: algorithm not found")

// Constructor builds a fresh, exclusively owned algorithm instance.
type Constructor func() Algorithm

// Registry maps algorithm names to constructors. It is built once at process
// startup (see subtraction.RegisterAll) and is then read-heavy: Create may be
// called concurrently, registration is expected to be complete first.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
	log   zerolog.Logger
}

// NewRegistry returns an empty registry. Registration conflicts are logged
// through log at warn level.
func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		ctors: make(map[string]Constructor),
		log:   log,
	}
}

// Register binds name to ctor. Re-registering an existing name overwrites
// the prior binding and logs a warning.
func (r *Registry) Register(name string, ctor Constructor) {
	if ctor == nil {
		panic(fmt.Sprintf("bgs: nil constructor for algorithm %q", name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ctors[name]; exists {
		r.log.Warn().Str("algorithm", name).Msg("overwriting registered constructor")
	}
	r.ctors[name] = ctor
}

// Create returns a new, exclusively owned instance of the named algorithm,
// or an error wrapping ErrNotFound. The caller must Close the instance when
// finished with it.
func (r *Registry) Create(name string) (Algorithm, error) {
	r.mu.RLock()
	ctor, ok := r.ctors[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return ctor(), nil
}

// Names returns the names of all registered algorithms in no particular
// order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	return names
}
