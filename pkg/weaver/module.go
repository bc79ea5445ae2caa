package weaver

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/weaver-go/weaver/pkg/weaver/custom"
	"github.com/weaver-go/weaver/pkg/weaver/depsort"
	"github.com/weaver-go/weaver/pkg/weaver/entity"
	"github.com/weaver-go/weaver/pkg/weaver/logging"
)

// Module is one declaration run: a customization registry plus the settings
// Declare applies.
type Module struct {
	reg  *custom.Registry
	root string
	log  logging.Logger
}

// New builds a Module from cfg, loading and applying cfg.ProfilePath if set.
func New(cfg Config) (*Module, error) {
	m := &Module{
		reg:  custom.NewRegistry(),
		root: cfg.RootSubscope,
		log:  logging.OrDefault(cfg.Logger),
	}
	if cfg.ProfilePath == "" {
		return m, nil
	}
	p, err := custom.LoadProfile(cfg.ProfilePath)
	if err != nil {
		return nil, wrap("New", err)
	}
	if err := p.Apply(m.reg); err != nil {
		return nil, wrap("New", err)
	}
	if p.RootSubscope != "" {
		m.root = p.RootSubscope
	}
	m.log.Debug(context.Background(), "profile applied",
		"path", cfg.ProfilePath, "disabled", len(p.Disable))
	return m, nil
}

// Registry returns the module's customization registry. It accepts
// registrations until the first Declare.
func (m *Module) Registry() *custom.Registry { return m.reg }

// Declare orders units and constructs each one against its destination
// scope: its parent's AsScope() when Parent is set, the root scope otherwise.
// Sorting errors are reported before anything is constructed. Nothing is
// declared until the returned Declaration is updated.
func (m *Module) Declare(ctx context.Context, root entity.Target, units []entity.Entity) (*Declaration, error) {
	if root == nil {
		return nil, wrap("Declare", ErrNilTarget)
	}
	ordered, err := depsort.Sort(units)
	if err != nil {
		return nil, wrap("Declare", err)
	}
	m.reg.Freeze()
	m.log.Debug(ctx, "declaration order resolved", "units", len(ordered))

	rootScope := entity.ActiveScope(root)
	if m.root != "" {
		if rootScope, err = rootScope.Subscope(m.root); err != nil {
			return nil, wrap("Declare", fmt.Errorf("root subscope %q: %w", m.root, err))
		}
	}

	d := &Declaration{}
	built := make(map[string]entity.Base, len(ordered))
	for _, e := range ordered {
		if err := ctx.Err(); err != nil {
			return nil, wrap("Declare", err)
		}
		dest := rootScope
		if e.Parent != "" {
			dest = built[e.Parent].AsScope()
		}
		b, err := custom.Construct(e.Name, dest, m.reg, entity.NewUnit(e))
		if err != nil {
			return nil, wrap("Declare", err)
		}
		if b.AsScope().IsDisabled() {
			m.log.Debug(ctx, "unit disabled", logging.KeyEntity, e.Name)
		}
		built[e.Name] = b
		d.names = append(d.names, e.Name)
		d.units = append(d.units, b)
	}
	return d, nil
}

// Declaration is a constructed set of units awaiting Update.
type Declaration struct {
	names   []string
	units   []entity.Base
	once    sync.Once
	updated atomic.Bool
	err     error
}

// Update runs every unit's Update once, in dependency order, and stops at the
// first failure. Later and concurrent calls wait for the first one and return
// its result. A panicking unit is recorded as ErrUnitPanicked before the panic
// propagates.
func (d *Declaration) Update() error {
	d.once.Do(d.run)
	return d.err
}

// Close runs Update if it has not run yet and returns its result.
func (d *Declaration) Close() error {
	return d.Update()
}

// Updated reports whether Update has run.
func (d *Declaration) Updated() bool { return d.updated.Load() }

// Order returns unit names in construction order.
func (d *Declaration) Order() []string {
	return append([]string(nil), d.names...)
}

// Unit returns the constructed unit called name.
func (d *Declaration) Unit(name string) (entity.Base, bool) {
	for i, n := range d.names {
		if n == name {
			return d.units[i], true
		}
	}
	return nil, false
}

func (d *Declaration) run() {
	defer d.updated.Store(true)
	current := ""
	defer func() {
		if r := recover(); r != nil {
			d.err = wrap("Update", fmt.Errorf("%w: unit %q: %v", ErrUnitPanicked, current, r))
			panic(r)
		}
	}()
	for i, u := range d.units {
		current = d.names[i]
		if err := u.Update(); err != nil {
			d.err = wrap("Update", fmt.Errorf("unit %q: %w", current, err))
			return
		}
	}
}
