package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName reports an entity without a name.
	ErrEmptyName = errors.New("weaver/entity: empty entity name")

	// ErrAlreadyUpdated reports a second Update on the same unit.
	ErrAlreadyUpdated = errors.New("weaver/entity: unit already updated")

	// ErrNilTarget reports a Target implementation that returned a nil
	// subscope without an error.
	ErrNilTarget = errors.New("weaver/entity: nil target")
)

// Base is the capability every constructed declaration unit exposes.
type Base interface {
	// Update performs the unit's declaration work against its bound scope.
	Update() error
	// AsScope returns the scope children of this unit declare into.
	AsScope() Scope
}

// Constructor builds a unit bound to scope.
type Constructor func(scope Scope) (Base, error)

// Entity is the generator's description of one declaration unit.
//
// Name is the unit's stable, globally unique key; it is derived from the
// fully qualified identity of the native declaration so customizations keep
// matching across regenerations.
type Entity struct {
	Name string
	// Dependencies names the units that must be constructed and updated
	// before this one. Duplicates are ignored.
	Dependencies []string
	// Parent names the unit whose AsScope is this unit's destination. Empty
	// means the root scope. The parent is an implicit dependency.
	Parent string
	// TargetSubscope, when set, makes the unit declare into the named
	// subscope of its destination instead of the destination itself.
	TargetSubscope string
	// Bind does the declaration work. A nil Bind declares nothing.
	Bind func(Scope) error
}

// Requires returns Dependencies followed by Parent, without duplicates, in
// first-seen order.
func (e Entity) Requires() []string {
	out := make([]string, 0, len(e.Dependencies)+1)
	seen := make(map[string]struct{}, len(e.Dependencies)+1)
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	for _, d := range e.Dependencies {
		add(d)
	}
	if e.Parent != "" {
		add(e.Parent)
	}
	return out
}

// Validate checks the fields the runtime relies on.
func (e Entity) Validate() error {
	if e.Name == "" {
		return ErrEmptyName
	}
	if e.Parent == e.Name {
		return fmt.Errorf("weaver/entity: %q is its own parent", e.Name)
	}
	return nil
}

// Unit is the default, generated kind of declaration unit.
type Unit struct {
	entity  Entity
	scope   Scope
	updated bool
}

// NewUnit returns the default constructor for e. The constructor resolves
// TargetSubscope against the destination scope immediately, so a missing
// subscope surfaces at construction rather than at Update.
func NewUnit(e Entity) func(Scope) (*Unit, error) {
	return func(dest Scope) (*Unit, error) {
		scope := dest
		if e.TargetSubscope != "" {
			sub, err := dest.Subscope(e.TargetSubscope)
			if err != nil {
				return nil, fmt.Errorf("weaver/entity: %q: resolve subscope %q: %w", e.Name, e.TargetSubscope, err)
			}
			scope = sub
		}
		return &Unit{entity: e, scope: scope}, nil
	}
}

// Name returns the entity name the unit was built from.
func (u *Unit) Name() string { return u.entity.Name }

// Update runs Bind against the unit's scope. It may only be called once.
func (u *Unit) Update() error {
	if u.updated {
		return fmt.Errorf("%w: %q", ErrAlreadyUpdated, u.entity.Name)
	}
	u.updated = true
	if u.entity.Bind == nil {
		return nil
	}
	if err := u.entity.Bind(u.scope); err != nil {
		return fmt.Errorf("weaver/entity: update %q: %w", u.entity.Name, err)
	}
	return nil
}

// AsScope returns the scope the unit declares into; children attach there.
func (u *Unit) AsScope() Scope { return u.scope }

// Disabled is the unit that declares nothing.
type Disabled struct{}

// Update does nothing.
func (Disabled) Update() error { return nil }

// AsScope returns the disabled scope.
func (Disabled) AsScope() Scope { return Scope{} }

var (
	_ Base = (*Unit)(nil)
	_ Base = Disabled{}
)
