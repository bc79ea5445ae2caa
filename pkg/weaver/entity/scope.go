package entity

// Target is the opaque declaration target of the binding library a unit
// declares into. Implementations decide what a definition means; weaver only
// forwards names and values.
type Target interface {
	// Define declares value under name in this target.
	Define(name string, value any) error
	// Subscope returns the nested target called name, creating it if the
	// binding library requires that.
	Subscope(name string) (Target, error)
}

// Scope is where a unit declares itself: either disabled, or active over a
// Target. The zero Scope is disabled.
type Scope struct {
	target Target
}

// ActiveScope returns a scope over t. A nil t yields the disabled scope.
func ActiveScope(t Target) Scope {
	return Scope{target: t}
}

// DisabledScope returns the scope that produces no observable declaration.
func DisabledScope() Scope {
	return Scope{}
}

// IsDisabled reports whether s is the disabled scope.
func (s Scope) IsDisabled() bool {
	return s.target == nil
}

// Target returns the underlying target, or false when s is disabled.
func (s Scope) Target() (Target, bool) {
	return s.target, s.target != nil
}

// Define declares value under name. It is a no-op on a disabled scope.
func (s Scope) Define(name string, value any) error {
	if s.target == nil {
		return nil
	}
	return s.target.Define(name, value)
}

// Subscope resolves the nested scope called name. A disabled scope yields
// a disabled scope.
func (s Scope) Subscope(name string) (Scope, error) {
	if s.target == nil {
		return Scope{}, nil
	}
	t, err := s.target.Subscope(name)
	if err != nil {
		return Scope{}, err
	}
	if t == nil {
		return Scope{}, ErrNilTarget
	}
	return Scope{target: t}, nil
}

func (s Scope) String() string {
	if s.target == nil {
		return "scope(disabled)"
	}
	return "scope(active)"
}
