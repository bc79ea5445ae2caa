package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/weaver-go/weaver/pkg/weaver/entity"
)

// manifest is the TOML description of the units a generator would emit.
//
//	[[unit]]
//	name = "geo::Point"
//	parent = "geo"
//	subscope = "Point"
//	depends = ["geo::Base"]
type manifest struct {
	Units []manifestUnit `toml:"unit"`
}

type manifestUnit struct {
	Name     string   `toml:"name"`
	Parent   string   `toml:"parent"`
	Subscope string   `toml:"subscope"`
	Depends  []string `toml:"depends"`
	Define   string   `toml:"define"`
}

func loadManifest(path string) ([]entity.Entity, error) {
	var m manifest
	md, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("manifest parse failed (%s): %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("manifest %s: unknown keys %v", path, undecoded)
	}

	out := make([]entity.Entity, 0, len(m.Units))
	for _, u := range m.Units {
		e := entity.Entity{
			Name:           u.Name,
			Dependencies:   u.Depends,
			Parent:         u.Parent,
			TargetSubscope: u.Subscope,
		}
		if sym := definedSymbol(u); sym != "" {
			e.Bind = func(s entity.Scope) error { return s.Define(sym, u.Name) }
		}
		out = append(out, e)
	}
	return out, nil
}

// definedSymbol is what a unit declares: Define when given, otherwise the
// last component of its name for units that do not open a subscope.
func definedSymbol(u manifestUnit) string {
	if u.Define != "" {
		return u.Define
	}
	if u.Subscope != "" {
		return ""
	}
	if i := strings.LastIndex(u.Name, "::"); i >= 0 {
		return u.Name[i+2:]
	}
	return u.Name
}
