// Package custom lets an integrator disable or replace the construction of
// any generated declaration unit by name, without editing generated code.
//
// A Registry maps stable unit names to constructors. It is populated once,
// before the first Construct, and is read-only afterwards: the first lookup
// freezes it and later registrations fail with ErrRegistryFrozen.
//
//	reg := custom.NewRegistry()
//	_ = reg.DisableBinding("disabled_space")
//	_ = reg.RegisterCustom("earth::creatures::SweetHome", newSweetHome)
//
// RegisterWrapper extends a generated unit instead of replacing it: the
// wrapper gets the default unit and usually embeds it, calling its Update
// before declaring more.
//
//	type sweetHome struct{ entity.Base }
//
//	func (s sweetHome) Update() error {
//		if err := s.Base.Update(); err != nil {
//			return err
//		}
//		return s.AsScope().Define("new_method", newMethod)
//	}
//
//	_ = reg.RegisterWrapper("earth::creatures::SweetHome",
//		func(_ entity.Scope, def entity.Base) (entity.Base, error) {
//			return sweetHome{def}, nil
//		})
//
// Construct resolves one unit. A disabled scope always yields
// entity.Disabled without consulting the registry. Otherwise a registered
// constructor wins over the default one, and a registry miss is not an error.
//
// Registering the same name twice is an error (ErrDuplicateBinding), whatever
// the combination of DisableBinding, RegisterCustom and RegisterWrapper.
//
// Profiles move the disable list out of code into a file (.toml, .yaml or
// .hcl); see LoadProfile.
package custom
