package entity_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weaver-go/weaver/pkg/weaver/entity"
	"github.com/weaver-go/weaver/pkg/weaver/weavertest"
)

func TestScopeVariants(t *testing.T) {
	off := entity.DisabledScope()
	require.True(t, off.IsDisabled())
	require.True(t, entity.Scope{}.IsDisabled())
	require.True(t, entity.ActiveScope(nil).IsDisabled())
	require.NoError(t, off.Define("x", 1))

	sub, err := off.Subscope("ns")
	require.NoError(t, err)
	require.True(t, sub.IsDisabled())

	rec := weavertest.NewRecorder()
	on := entity.ActiveScope(rec)
	require.False(t, on.IsDisabled())
	target, ok := on.Target()
	require.True(t, ok)
	require.Same(t, rec, target)

	require.NoError(t, on.Define("x", 1))
	require.Equal(t, []string{"x"}, rec.Names())
}

func TestRequiresAddsParentOnce(t *testing.T) {
	e := entity.Entity{Name: "c", Dependencies: []string{"a", "b", "a"}, Parent: "b"}
	require.Equal(t, []string{"a", "b"}, e.Requires())

	e = entity.Entity{Name: "c", Parent: "p"}
	require.Equal(t, []string{"p"}, e.Requires())
}

func TestValidate(t *testing.T) {
	require.ErrorIs(t, entity.Entity{}.Validate(), entity.ErrEmptyName)
	require.Error(t, entity.Entity{Name: "a", Parent: "a"}.Validate())
	require.NoError(t, entity.Entity{Name: "a"}.Validate())
}

func TestUnitUpdateOnce(t *testing.T) {
	rec := weavertest.NewRecorder()
	calls := 0
	e := entity.Entity{
		Name: "sample::Foo",
		Bind: func(s entity.Scope) error {
			calls++
			return s.Define("Foo", "fn")
		},
	}

	u, err := entity.NewUnit(e)(entity.ActiveScope(rec))
	require.NoError(t, err)
	require.Equal(t, "sample::Foo", u.Name())

	require.NoError(t, u.Update())
	require.ErrorIs(t, u.Update(), entity.ErrAlreadyUpdated)
	require.Equal(t, 1, calls)
	require.Equal(t, []string{"Foo"}, rec.Names())
}

func TestUnitTargetSubscope(t *testing.T) {
	rec := weavertest.NewRecorder()
	e := entity.Entity{
		Name:           "earth",
		TargetSubscope: "earth",
		Bind: func(s entity.Scope) error {
			return s.Define("Planet", true)
		},
	}

	u, err := entity.NewUnit(e)(entity.ActiveScope(rec))
	require.NoError(t, err)
	require.NoError(t, u.Update())
	require.Equal(t, []string{"earth.Planet"}, rec.Names())

	child, ok := u.AsScope().Target()
	require.True(t, ok)
	require.Equal(t, "earth", child.(*weavertest.Recorder).Path())
}

func TestUnitSubscopeFailureSurfacesAtConstruction(t *testing.T) {
	rec := weavertest.NewRecorder()
	boom := errors.New("no such module")
	rec.FailOn("ghost", boom)

	_, err := entity.NewUnit(entity.Entity{Name: "ghost", TargetSubscope: "ghost"})(entity.ActiveScope(rec))
	require.ErrorIs(t, err, boom)
}

func TestUnitBindErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	u, err := entity.NewUnit(entity.Entity{
		Name: "bad",
		Bind: func(entity.Scope) error { return boom },
	})(entity.ActiveScope(weavertest.NewRecorder()))
	require.NoError(t, err)

	err = u.Update()
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), `"bad"`)
}

func TestDisabledPrunesChildren(t *testing.T) {
	rec := weavertest.NewRecorder()
	var parent entity.Base = entity.Disabled{}
	require.NoError(t, parent.Update())
	require.True(t, parent.AsScope().IsDisabled())

	child, err := entity.NewUnit(entity.Entity{
		Name:           "child",
		TargetSubscope: "inner",
		Bind:           func(s entity.Scope) error { return s.Define("child", 1) },
	})(parent.AsScope())
	require.NoError(t, err)
	require.NoError(t, child.Update())

	require.Empty(t, rec.Definitions())
	require.True(t, child.AsScope().IsDisabled())
}
