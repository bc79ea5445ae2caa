// Package depsort orders declaration units so that every unit comes after
// the units it depends on.
//
// Sort runs Kahn's algorithm. Among units with no ordering constraint
// between them the one given earlier in the input goes first, so the same
// input always yields the same output; generated bindings must be
// reproducible byte for byte.
//
// Failures are reported before anything is constructed:
//
//   - a dependency naming a unit that is not in the input yields a
//     *MissingDependencyError (errors.Is(err, ErrMissingDependency));
//   - a cycle yields a *CycleError listing the units on one cycle
//     (errors.Is(err, ErrCycle));
//   - two units with the same name yield ErrDuplicateEntity.
package depsort
