package internalcheck

import (
	"fmt"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

func TestNoGlobalRegistries(t *testing.T) {
	pkgs := loadModule(t, packages.NeedName|packages.NeedTypes|packages.NeedSyntax|packages.NeedTypesInfo)

	var findings []string
	for _, pkg := range pkgs {
		if pkg.PkgPath == modulePath+"/internal/bindings" {
			continue
		}
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			v, ok := scope.Lookup(name).(*types.Var)
			if !ok {
				continue
			}
			if isRegistryState(v.Type()) {
				pos := pkg.Fset.Position(v.Pos())
				findings = append(findings, fmt.Sprintf("%s: package-level %s %s; pass an explicit context instead", pos, name, v.Type()))
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("global state policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func isRegistryState(typ types.Type) bool {
	switch tt := typ.(type) {
	case *types.Map:
		return true
	case *types.Pointer:
		return isRegistryState(tt.Elem())
	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() != nil && obj.Pkg().Path() == "sync" {
			switch obj.Name() {
			case "Mutex", "RWMutex", "Map":
				return true
			}
		}
		return isRegistryState(tt.Underlying())
	default:
		return false
	}
}
