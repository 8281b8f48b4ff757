// Package measure defines the single interface every similarity or
// distance algorithm implements (spec.md §4.6), a name-keyed dispatch
// registry, and the match-triple helper shared by the set-coefficient
// measure family.
package measure

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/hmatrix/hmatrixcfg"
	"github.com/katalvlaran/hmatrix/strval"
)

// Measure is implemented by every algorithm in the catalog. Configure is
// invoked once after configuration loading and before any Compare call;
// Compare must be pure and safe for concurrent use by the compute driver.
type Measure interface {
	Configure(cfg hmatrixcfg.Config) error
	Compare(a, b strval.StringValue) float32
}

var (
	registryMu sync.RWMutex
	registry   = map[string]func() Measure{}
)

// Register adds a named measure factory to the dispatch table. Intended
// to be called from a catalog measure's init(), mirroring the
// dispatch-by-function-pointer design note in spec.md §9.
func Register(name string, factory func() Measure) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry[name] = factory
}

// Lookup resolves a measure name to its factory. The caller must still
// call Configure on the returned Measure before any Compare.
func Lookup(name string) (func() Measure, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := registry[name]

	return factory, ok
}

// ErrUnknownMeasure is returned by New for a name that was never
// registered. Per spec.md §7 this is a configuration-class warning: the
// host falls back to a default measure and continues.
type ErrUnknownMeasure struct{ Name string }

func (e ErrUnknownMeasure) Error() string {
	return fmt.Sprintf("measure: unknown measure %q", e.Name)
}

// New resolves name, constructs the measure, and configures it in one
// step.
func New(name string, cfg hmatrixcfg.Config) (Measure, error) {
	factory, ok := Lookup(name)
	if !ok {
		return nil, ErrUnknownMeasure{Name: name}
	}
	m := factory()
	if err := m.Configure(cfg); err != nil {
		return nil, err
	}

	return m, nil
}
