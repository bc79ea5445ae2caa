package custom

import (
	"errors"
	"fmt"
	"sort"

	"github.com/weaver-go/weaver/pkg/weaver/entity"
)

var (
	// ErrDuplicateBinding reports a second registration for one name.
	ErrDuplicateBinding = errors.New("weaver/custom: duplicate binding customization")

	// ErrRegistryFrozen reports a registration after the first lookup.
	ErrRegistryFrozen = errors.New("weaver/custom: registry is frozen")

	// ErrNilConstructor reports RegisterCustom with a nil constructor.
	ErrNilConstructor = errors.New("weaver/custom: nil constructor")

	// ErrEmptyName reports a registration without a name.
	ErrEmptyName = errors.New("weaver/custom: empty binding name")

	// ErrNilRegistry reports a registration on a nil *Registry.
	ErrNilRegistry = errors.New("weaver/custom: nil registry")

	// ErrNilEntity reports a constructor that returned neither a unit nor an
	// error.
	ErrNilEntity = errors.New("weaver/custom: constructor returned nil entity")
)

// Wrapper extends the unit the generated code would build. It receives the
// default unit, already constructed against scope, and returns the unit to
// use instead; calling def.Update from the result's Update keeps the
// generated declarations.
type Wrapper func(scope entity.Scope, def entity.Base) (entity.Base, error)

type entry struct {
	ctor     entity.Constructor
	wrap     Wrapper
	disabled bool
}

// Registry maps unit names to replacement constructors. A nil *Registry
// reads as empty and rejects registrations with ErrNilRegistry.
type Registry struct {
	entries map[string]entry
	frozen  bool
}

// NewRegistry returns an empty, writable registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

func disabledCtor(entity.Scope) (entity.Base, error) { return entity.Disabled{}, nil }

// DisableBinding makes name construct as entity.Disabled, whatever kind the
// generated code asks for.
func (r *Registry) DisableBinding(name string) error {
	return r.add(name, entry{ctor: disabledCtor, disabled: true})
}

// RegisterCustom makes name construct through ctor.
func (r *Registry) RegisterCustom(name string, ctor entity.Constructor) error {
	if ctor == nil {
		return fmt.Errorf("%w: %q", ErrNilConstructor, name)
	}
	return r.add(name, entry{ctor: ctor})
}

// RegisterWrapper makes name construct through the default constructor and
// then through wrap.
func (r *Registry) RegisterWrapper(name string, wrap Wrapper) error {
	if wrap == nil {
		return fmt.Errorf("%w: %q", ErrNilConstructor, name)
	}
	return r.add(name, entry{wrap: wrap})
}

func (r *Registry) add(name string, e entry) error {
	if r == nil {
		return fmt.Errorf("%w: cannot register %q", ErrNilRegistry, name)
	}
	if name == "" {
		return ErrEmptyName
	}
	if r.frozen {
		return fmt.Errorf("%w: cannot register %q", ErrRegistryFrozen, name)
	}
	if _, dup := r.entries[name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateBinding, name)
	}
	r.entries[name] = e
	return nil
}

// Lookup returns the constructor registered for name through DisableBinding
// or RegisterCustom and freezes r. Names registered with RegisterWrapper
// report false; see IsWrapped.
func (r *Registry) Lookup(name string) (entity.Constructor, bool) {
	e, ok := r.find(name)
	if !ok || e.ctor == nil {
		return nil, false
	}
	return e.ctor, true
}

func (r *Registry) find(name string) (entry, bool) {
	if r == nil {
		return entry{}, false
	}
	r.frozen = true
	e, ok := r.entries[name]
	return e, ok
}

// IsWrapped reports whether name was registered through RegisterWrapper.
func (r *Registry) IsWrapped(name string) bool {
	if r == nil {
		return false
	}
	return r.entries[name].wrap != nil
}

// IsDisabled reports whether name was registered through DisableBinding.
func (r *Registry) IsDisabled(name string) bool {
	if r == nil {
		return false
	}
	return r.entries[name].disabled
}

// Freeze makes r read-only.
func (r *Registry) Freeze() {
	if r != nil {
		r.frozen = true
	}
}

// Frozen reports whether r is read-only.
func (r *Registry) Frozen() bool {
	return r != nil && r.frozen
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.entries))
	for name := range r.entries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Construct builds the unit called name against scope. A disabled scope
// short-circuits to entity.Disabled; otherwise a constructor registered in
// reg wins over def, and a wrapper registered in reg receives def's unit.
func Construct[K entity.Base](name string, scope entity.Scope, reg *Registry, def func(entity.Scope) (K, error)) (entity.Base, error) {
	if scope.IsDisabled() {
		return entity.Disabled{}, nil
	}
	e, ok := reg.find(name)
	if ok && e.ctor != nil {
		b, err := e.ctor(scope)
		return checked(name, b, err)
	}
	k, err := def(scope)
	if err != nil {
		return nil, fmt.Errorf("weaver/custom: construct %q: %w", name, err)
	}
	if !ok {
		return k, nil
	}
	b, err := e.wrap(scope, k)
	return checked(name, b, err)
}

func checked(name string, b entity.Base, err error) (entity.Base, error) {
	if err != nil {
		return nil, fmt.Errorf("weaver/custom: construct %q: %w", name, err)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: %q", ErrNilEntity, name)
	}
	return b, nil
}
