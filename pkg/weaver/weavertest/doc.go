// Package weavertest provides an in-memory declaration Target for tests and
// examples.
//
// Recorder implements entity.Target by remembering every definition in the
// order it was made, keyed by a dotted path of the subscopes it was made in.
// Tests assert on what a run declared without any binding library:
//
//	root := weavertest.NewRecorder()
//	decl, err := mod.Declare(ctx, root, entities)
//	...
//	require.Equal(t, []string{"earth.creatures.SweetHome"}, root.Names())
//
// FailOn injects a Define error for one qualified name.
package weavertest
