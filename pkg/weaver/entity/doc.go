// Package entity defines declaration units and the scopes they declare into.
//
// An Entity is the record a code generator emits for one unit of declaration
// work: a stable name, the names it depends on, an optional parent whose
// scope it declares into, and a Bind function that performs the work.
//
// At run time each Entity is turned into a value implementing Base, the
// two-method capability the orchestrator drives:
//
//	Update() error   // declare into the bound scope, exactly once
//	AsScope() Scope  // the destination this unit offers its children
//
// Unit is the default implementation. Disabled is the implementation that
// produces nothing; its AsScope is the disabled Scope, so every child built
// under it is disabled as well without the children knowing about it.
//
// A Scope is either disabled or active over a Target, the opaque object of
// whatever binding library sits underneath.
package entity
