// Package weaver runs generated declaration units against a declaration
// target.
//
// A Module owns the customization registry for one run. Declare sorts the
// units so every dependency and parent comes first, constructs each one
// through the registry (default, override or disabled) and returns a
// Declaration whose Update applies them all, once, in that order:
//
//	m, err := weaver.New(weaver.Config{ProfilePath: "weaver.toml"})
//	if err != nil {
//		return err
//	}
//	if err := m.Registry().RegisterCustom("pkg::Point", newPoint); err != nil {
//		return err
//	}
//	decl, err := m.Declare(ctx, target, units)
//	if err != nil {
//		return err
//	}
//	defer decl.Close()
//	return decl.Update()
//
// Exposing closures to native callbacks lives in the bridge and native
// subpackages and is independent of declaration.
package weaver
